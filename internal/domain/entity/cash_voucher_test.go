package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCashVoucherTotal(t *testing.T) {
	v := &CashVoucher{Amount: 50000}
	assert.Equal(t, int64(50000), v.Total())

	// Line items supersede the flat amount
	v.Items = []CashVoucherItem{
		{Description: "Rent", Amount: 30000},
		{Description: "Utilities", Amount: 12345},
	}
	assert.Equal(t, int64(42345), v.Total())

	// Item order does not matter
	v.Items[0], v.Items[1] = v.Items[1], v.Items[0]
	assert.Equal(t, int64(42345), v.Total())
}
