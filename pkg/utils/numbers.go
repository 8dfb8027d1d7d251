package utils

import "fmt"

// Voucher number prefixes.
const (
	CashVoucherPrefix   = "CV"
	ChequeVoucherPrefix = "CHQ"
)

// FormatVoucherNumber builds a sequential document number scoped to an
// account, e.g. CV-100234-0007.
func FormatVoucherNumber(prefix, accountNumber string, sequence int64) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, accountNumber, sequence)
}
