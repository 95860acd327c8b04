package models

import "time"

type Expense struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Category    string    `json:"category" gorm:"not null;index"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount" gorm:"type:numeric(12,2);not null"`
	SpentAt     time.Time `json:"spent_at" gorm:"index"`
	RecordedBy  string    `json:"recorded_by"`
	CreatedAt   time.Time `json:"created_at"`
}
