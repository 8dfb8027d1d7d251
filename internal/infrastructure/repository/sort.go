package repository

// sortClause builds an ORDER BY clause from caller-supplied sort parameters.
// Columns outside the allowed set fall back to created_at so the query string
// can never reach the SQL text; anything but an explicit ASC sorts descending.
func sortClause(column, order string, allowed map[string]bool) string {
	if !allowed[column] {
		column = "created_at"
	}
	dir := "DESC"
	if order == "ASC" || order == "asc" {
		dir = "ASC"
	}
	return column + " " + dir
}

var cashVoucherSortColumns = map[string]bool{
	"voucher_number": true,
	"paid_to":        true,
	"date":           true,
	"amount":         true,
	"status":         true,
	"created_at":     true,
	"updated_at":     true,
}

var chequeVoucherSortColumns = map[string]bool{
	"cheque_number": true,
	"paid_to":       true,
	"pay_to":        true,
	"account_no":    true,
	"date":          true,
	"cheque_date":   true,
	"amount":        true,
	"created_at":    true,
	"updated_at":    true,
}

var accountSortColumns = map[string]bool{
	"account_name":   true,
	"account_number": true,
	"account_type":   true,
	"balance":        true,
	"created_at":     true,
	"updated_at":     true,
}
