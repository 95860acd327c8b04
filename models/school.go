package models

import "time"

// SchoolProfile is a single-row table holding portal branding; the logo URL
// points into object storage and is used verbatim by the frontend.
type SchoolProfile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	LogoURL   string    `json:"logo_url"`
	UpdatedAt time.Time `json:"updated_at"`
}
