package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortClause(t *testing.T) {
	assert.Equal(t, "voucher_number ASC", sortClause("voucher_number", "asc", cashVoucherSortColumns))
	assert.Equal(t, "date DESC", sortClause("date", "", cashVoucherSortColumns))
	assert.Equal(t, "created_at DESC", sortClause("", "", cashVoucherSortColumns))

	// Unknown columns and raw SQL fragments never reach the clause
	assert.Equal(t, "created_at DESC", sortClause("secret_col", "", cashVoucherSortColumns))
	assert.Equal(t, "created_at DESC",
		sortClause("amount; DROP TABLE cash_vouchers--", "ASC", cashVoucherSortColumns))
	assert.Equal(t, "created_at DESC",
		sortClause("created_at", "ASC, (SELECT 1)", chequeVoucherSortColumns))

	assert.Equal(t, "account_name ASC", sortClause("account_name", "ASC", accountSortColumns))
	assert.Equal(t, "created_at DESC", sortClause("voucher_number", "", accountSortColumns))
}
