package request

// Voucher form payloads carry amounts as decimal strings, matching what the
// form fields hold. Field-level checks live in the service inputs so the
// messages come back in form order; binding only enforces shape.

// CashVoucherItemRequest is one particulars row
type CashVoucherItemRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// CashVoucherRequest represents a cash voucher create or update request
type CashVoucherRequest struct {
	AccountID         string                   `json:"account_id"`
	VoucherNumber     string                   `json:"voucher_number"`
	PaidTo            string                   `json:"paid_to"`
	Date              string                   `json:"date"`
	Particulars       string                   `json:"particulars"`
	Amount            string                   `json:"amount"`
	ParticularsItems  []CashVoucherItemRequest `json:"particulars_items"`
	Signature         *string                  `json:"signature"`
	PrintedName       string                   `json:"printed_name"`
	ApprovedSignature *string                  `json:"approved_signature"`
	ApprovedName      string                   `json:"approved_name"`
	ApprovedDate      string                   `json:"approved_date"`
}

// GenerateNumberRequest selects the account a fresh voucher number is
// sequenced against
type GenerateNumberRequest struct {
	AccountID string `json:"account_id"`
}

// ChequeVoucherRequest represents a cheque voucher create or update request
type ChequeVoucherRequest struct {
	AccountID    string  `json:"account_id"`
	AccountNo    string  `json:"account_no"`
	ChequeNumber string  `json:"cheque_number"`
	PaidTo       string  `json:"paid_to"`
	PayTo        string  `json:"pay_to"`
	Date         string  `json:"date"`
	ChequeDate   string  `json:"cheque_date"`
	Amount       string  `json:"amount"`
	Signature    *string `json:"signature"`
	PrintedName  string  `json:"printed_name"`
	ApprovedDate string  `json:"approved_date"`
}
