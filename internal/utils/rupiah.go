package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders amount with Indonesian digit grouping, e.g.
// "Rp 1.500.000". Fractions are rounded away.
func FormatRupiah(amount float64) string {
	whole := math.Round(amount)
	if whole < 0 {
		return "-Rp " + rupiahPrinter.Sprint(number.Decimal(-whole, number.MaxFractionDigits(0)))
	}
	return "Rp " + rupiahPrinter.Sprint(number.Decimal(whole, number.MaxFractionDigits(0)))
}
