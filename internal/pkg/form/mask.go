package form

import (
	"fmt"
	"strconv"
	"strings"

	"rovera-leads/internal/domain/lead"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// maxCurrencyDigits keeps the parsed centavos inside int64.
const maxCurrencyDigits = 18

const phoneMaxDigits = 11

// Digits strips every non-digit character.
func Digits(s string) string {
	return lead.OnlyDigits(s)
}

// FormatPhone renders up to 11 digits as "(DD) NNNNN-NNNN", progressively while typing.
// Extra digits are dropped.
func FormatPhone(value string) string {
	d := Digits(value)
	if len(d) > phoneMaxDigits {
		d = d[:phoneMaxDigits]
	}
	switch {
	case len(d) <= 2:
		return d
	case len(d) <= 7:
		return "(" + d[:2] + ") " + d[2:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}

// FormatCurrency reads the digits of value as centavos and renders them as
// Brazilian Real, e.g. "123456" -> "R$ 1.234,56". Text ParseCurrency
// rejects yields "".
func FormatCurrency(value string) string {
	cents, ok := ParseCurrency(value)
	if !ok {
		return ""
	}
	return FormatCents(cents)
}

// FormatCents renders an amount in centavos with pt-BR grouping.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	reais, rest := lead.Money(cents).Reais()
	p := message.NewPrinter(language.BrazilianPortuguese)
	return sign + "R$ " + p.Sprintf("%d", reais) + "," + fmt.Sprintf("%02d", rest)
}

// ParseCurrency extracts the centavos typed into a currency field.
// ok is false when value holds no digits or more than 18 significant ones.
func ParseCurrency(value string) (int64, bool) {
	d := Digits(value)
	if d == "" {
		return 0, false
	}
	if len(strings.TrimLeft(d, "0")) > maxCurrencyDigits {
		return 0, false
	}
	n, err := strconv.ParseInt(d, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
