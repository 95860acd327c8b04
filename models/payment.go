package models

import "time"

// Payment methods.
const (
	MethodCash = "cash"
	MethodUPI  = "upi"
)

// Payment is an append-only ledger entry. There is no update or void;
// corrections happen out of band.
type Payment struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	StudentID uint    `json:"student_id" gorm:"index:idx_payments_student_created,priority:1"`
	Student   Student `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:RESTRICT"`

	Amount float64 `json:"amount" gorm:"type:numeric(12,2);not null"`

	// Free-text tag, conventionally "<Year> - <Term> - <FeeType>". Parsed
	// with fees.ParseTarget; tags that do not parse stay history-only.
	FeeType string `json:"fee_type" gorm:"not null"`

	PaymentMethod string `json:"payment_method" gorm:"type:VARCHAR(10);not null"`
	UTRNumber     string `json:"utr_number"` // required iff method is upi
	ReceiptNumber string `json:"receipt_number" gorm:"unique;not null"`
	Notes         string `json:"notes"`
	RecordedBy    string `json:"recorded_by"` // cashier email

	CreatedAt time.Time `json:"created_at" gorm:"index:idx_payments_student_created,priority:2"`
}
