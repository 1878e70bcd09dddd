package msgtree

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatNumber renders value as plain decimal text without exponent or trailing zeros.
func FormatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// LocaleNumberFormatter returns a NumberFormatter that groups digits and picks the
// decimal separator of tag. Malformed tags fall back to the root locale.
func LocaleNumberFormatter(tag string, opts ...number.Option) NumberFormatter {
	lang, err := language.Parse(tag)
	if err != nil {
		lang = language.Und
	}
	printer := message.NewPrinter(lang)
	return func(value float64) string {
		return printer.Sprint(number.Decimal(value, opts...))
	}
}
