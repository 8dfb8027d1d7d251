package entity

import (
	"encoding/json"
	"time"

	"github.com/abicrealty/voucher-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CashVoucher represents a cash disbursement voucher. Amounts are stored in
// centavos; JSON responses expose them as decimals.
type CashVoucher struct {
	ID                uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID            uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountID         uuid.UUID          `gorm:"type:uuid;not null;index" json:"account_id"`
	VoucherNumber     string             `gorm:"size:100;unique;not null" json:"voucher_number"`
	PaidTo            string             `gorm:"size:255;not null" json:"paid_to"`
	Date              time.Time          `gorm:"type:date;not null" json:"date"`
	Particulars       string             `gorm:"type:text" json:"particulars"`
	Amount            int64              `gorm:"default:0" json:"-"` // Stored in centavos, excluded from JSON
	Signature         *string            `gorm:"type:text" json:"signature,omitempty"`
	PrintedName       string             `gorm:"size:255;not null" json:"printed_name"`
	ApprovedSignature *string            `gorm:"type:text" json:"approved_signature,omitempty"`
	ApprovedName      string             `gorm:"size:255;not null" json:"approved_name"`
	ApprovedDate      time.Time          `gorm:"type:date;not null" json:"approved_date"`
	Status            enum.VoucherStatus `gorm:"default:0" json:"status"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
	DeletedAt         gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	User    User              `gorm:"foreignKey:UserID" json:"-"`
	Account Account           `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	Items   []CashVoucherItem `gorm:"foreignKey:VoucherID" json:"particulars_items,omitempty"`
}

// MarshalJSON custom marshaler to convert centavos to decimal for API responses
func (v CashVoucher) MarshalJSON() ([]byte, error) {
	type Alias CashVoucher
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
		Total  float64 `json:"total"`
	}{
		Alias:  Alias(v),
		Amount: float64(v.Amount) / 100,
		Total:  float64(v.Total()) / 100,
	})
}

// Total returns the voucher total in centavos: the sum of line items when
// any exist, otherwise the flat amount.
func (v *CashVoucher) Total() int64 {
	if len(v.Items) == 0 {
		return v.Amount
	}
	var total int64
	for _, item := range v.Items {
		total += item.Amount
	}
	return total
}

// BeforeCreate generates a UUID before creating a new cash voucher
func (v *CashVoucher) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CashVoucher model
func (CashVoucher) TableName() string {
	return "cash_vouchers"
}

// CashVoucherItem represents one particulars row on a cash voucher
type CashVoucherItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	VoucherID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"voucher_id"`
	Position    int            `gorm:"not null;default:0" json:"position"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Amount      int64          `gorm:"not null" json:"-"` // Stored in centavos, excluded from JSON
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Voucher CashVoucher `gorm:"foreignKey:VoucherID" json:"-"`
}

// MarshalJSON custom marshaler to convert centavos to decimal for API responses
func (i CashVoucherItem) MarshalJSON() ([]byte, error) {
	type Alias CashVoucherItem
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(i),
		Amount: float64(i.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new item
func (i *CashVoucherItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CashVoucherItem model
func (CashVoucherItem) TableName() string {
	return "cash_voucher_items"
}
