// Package money implements the amount parsing and display formatting shared
// by the voucher API responses and the image export pipeline. Parsing is
// display-grade floating point; persisted amounts are integer centavos.
package money

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Parts holds a formatted amount split at the decimal point so the integer
// part can be typeset large and the centavos small, following the printed
// peso voucher convention.
type Parts struct {
	Main  string `json:"main"`
	Cents string `json:"cents"`
}

// String joins the parts back into a plain display amount
func (p Parts) String() string {
	return p.Main + "." + p.Cents
}

// Parse converts a decimal string into a float. Empty or unparseable input
// yields 0. Grouping commas are tolerated.
func Parse(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Sum parses and adds a list of decimal strings
func Sum(amounts []string) float64 {
	var total float64
	for _, a := range amounts {
		total += Parse(a)
	}
	return total
}

// ToCentavos converts a decimal amount to integer centavos
func ToCentavos(v float64) int64 {
	if v >= 0 {
		return int64(v*100 + 0.5)
	}
	return int64(v*100 - 0.5)
}

// FromCentavos converts integer centavos back to a decimal amount
func FromCentavos(c int64) float64 {
	return float64(c) / 100
}

// Format renders an amount with locale grouping and exactly two decimals,
// split at the decimal point
func Format(v float64) Parts {
	s := printer.Sprintf("%.2f", v)
	idx := strings.LastIndex(s, ".")
	if idx < 0 {
		return Parts{Main: s, Cents: "00"}
	}
	return Parts{Main: s[:idx], Cents: s[idx+1:]}
}

// FormatString formats a decimal string, treating empty/invalid input as zero
func FormatString(s string) Parts {
	return Format(Parse(s))
}

// FormatCentavos formats an amount held in integer centavos
func FormatCentavos(c int64) Parts {
	return Format(FromCentavos(c))
}
