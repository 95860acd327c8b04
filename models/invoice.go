package models

import "time"

// Invoice statuses.
const (
	InvoicePending = "pending"
	InvoicePaid    = "paid"
)

// Invoice is a batch-generated demand note for one student and term,
// derived from the student's fee structure at generation time.
type Invoice struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	InvoiceNumber string  `json:"invoice_number" gorm:"unique"`
	StudentID     uint    `json:"-" gorm:"index"`
	Student       Student `json:"student" gorm:"foreignKey:StudentID"`

	StudyingYear string `json:"studying_year" gorm:"index"`
	TermName     string `json:"term_name" gorm:"index"`

	Items []InvoiceItem `json:"items" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
	Total float64       `json:"total" gorm:"type:numeric(12,2)"`

	Status    string    `json:"status" gorm:"type:VARCHAR(20);default:pending;index"`
	CreatedAt time.Time `json:"created_at"`
}

type InvoiceItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	InvoiceID uint    `json:"-" gorm:"index"` // fast join
	FeeType   string  `json:"fee_type"`
	Amount    float64 `json:"amount" gorm:"type:numeric(12,2)"`
}
