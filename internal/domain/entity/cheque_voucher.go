package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChequeVoucher represents a cheque disbursement voucher. AccountNo is typed
// by the clerk and is deliberately decoupled from the cheque number sequence,
// which follows the selected account's stored number instead. Cheque vouchers
// carry no status lifecycle.
type ChequeVoucher struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"account_id"`
	AccountNo    string         `gorm:"size:100;not null" json:"account_no"`
	ChequeNumber string         `gorm:"size:100;unique;not null" json:"cheque_number"`
	PaidTo       string         `gorm:"size:255;not null" json:"paid_to"`
	PayTo        string         `gorm:"size:255;not null" json:"pay_to"`
	Date         time.Time      `gorm:"type:date;not null" json:"date"`
	ChequeDate   time.Time      `gorm:"type:date;not null" json:"cheque_date"`
	Amount       int64          `gorm:"not null" json:"-"` // Stored in centavos, excluded from JSON
	Signature    *string        `gorm:"type:text" json:"signature,omitempty"`
	PrintedName  string         `gorm:"size:255;not null" json:"printed_name"`
	ApprovedDate time.Time      `gorm:"type:date;not null" json:"approved_date"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Account Account `gorm:"foreignKey:AccountID" json:"account,omitempty"`
}

// MarshalJSON custom marshaler to convert centavos to decimal for API responses
func (v ChequeVoucher) MarshalJSON() ([]byte, error) {
	type Alias ChequeVoucher
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(v),
		Amount: float64(v.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new cheque voucher
func (v *ChequeVoucher) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ChequeVoucher model
func (ChequeVoucher) TableName() string {
	return "cheque_vouchers"
}
