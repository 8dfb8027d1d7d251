package request

// AccountRequest represents an account create or update request
type AccountRequest struct {
	AccountName   string   `json:"account_name" binding:"required"`
	AccountNumber string   `json:"account_number" binding:"required"`
	AccountType   *string  `json:"account_type"`
	Balance       *float64 `json:"balance"`
}
