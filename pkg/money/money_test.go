package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert.Equal(t, 0.0, Parse(""))
	assert.Equal(t, 0.0, Parse("   "))
	assert.Equal(t, 0.0, Parse("abc"))
	assert.Equal(t, 500.0, Parse("500"))
	assert.Equal(t, 1234.5, Parse("1234.5"))
	assert.Equal(t, 1234.5, Parse("1,234.5"))
	assert.Equal(t, 0.0, Parse("0"))
	assert.Equal(t, -25.0, Parse("-25"))
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.0, Sum(nil))
	assert.Equal(t, 0.0, Sum([]string{"", "bad"}))
	assert.Equal(t, 600.0, Sum([]string{"100", "200", "300"}))

	// Invalid entries contribute zero
	assert.Equal(t, 300.0, Sum([]string{"100", "x", "200"}))
}

func TestSumOrderInvariant(t *testing.T) {
	a := Sum([]string{"10.25", "0.1", "99.9"})
	b := Sum([]string{"99.9", "10.25", "0.1"})
	assert.InDelta(t, a, b, 1e-9)
}

func TestCentavosRoundTrip(t *testing.T) {
	assert.Equal(t, int64(123450), ToCentavos(1234.5))
	assert.Equal(t, int64(0), ToCentavos(0))
	assert.Equal(t, int64(-2500), ToCentavos(-25))
	assert.Equal(t, 1234.5, FromCentavos(123450))

	// Rounding at the half-centavo boundary
	assert.Equal(t, int64(100), ToCentavos(0.995))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, Parts{Main: "0", Cents: "00"}, Format(0))
	assert.Equal(t, Parts{Main: "1,234", Cents: "50"}, Format(1234.5))
	assert.Equal(t, Parts{Main: "500", Cents: "00"}, Format(500))
	assert.Equal(t, Parts{Main: "1,000,000", Cents: "25"}, Format(1000000.25))
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, Parts{Main: "0", Cents: "00"}, FormatString(""))
	assert.Equal(t, Parts{Main: "0", Cents: "00"}, FormatString("garbage"))
	assert.Equal(t, Parts{Main: "1,234", Cents: "50"}, FormatString("1234.5"))
}

func TestFormatCentavos(t *testing.T) {
	assert.Equal(t, Parts{Main: "1,234", Cents: "50"}, FormatCentavos(123450))
	assert.Equal(t, "1,234.50", FormatCentavos(123450).String())
}
