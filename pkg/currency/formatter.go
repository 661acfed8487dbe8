package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const Code = "IDR"

var printer = message.NewPrinter(language.Indonesian)

// FormatIDR renders whole rupiah the way id-ID locale currency formatting does,
// e.g. 1200000 -> "Rp 1.200.000".
func FormatIDR(amount int64) string {
	if amount < 0 {
		return "-Rp " + printer.Sprintf("%d", -amount)
	}
	return "Rp " + printer.Sprintf("%d", amount)
}
