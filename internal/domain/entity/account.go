package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account represents a disbursement account. Voucher and cheque numbers are
// sequenced against the account's stored number.
type Account struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountName   string         `gorm:"size:255;not null" json:"account_name"`
	AccountNumber string         `gorm:"size:100;unique;not null" json:"account_number"`
	AccountType   *string        `gorm:"size:100" json:"account_type,omitempty"`
	Balance       *float64       `gorm:"type:decimal(15,2)" json:"balance,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User           User            `gorm:"foreignKey:UserID" json:"-"`
	CashVouchers   []CashVoucher   `gorm:"foreignKey:AccountID" json:"-"`
	ChequeVouchers []ChequeVoucher `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Account model
func (Account) TableName() string {
	return "accounts"
}
