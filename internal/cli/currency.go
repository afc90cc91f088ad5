package cli

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrencySymbol is the symbol used when none is configured.
const DefaultCurrencySymbol = "₱"

// ErrInvalidAmount is returned when an amount cannot be parsed.
var ErrInvalidAmount = errors.New("invalid amount")

// Currency formats monetary values with a symbol and two decimals.
type Currency struct {
	Symbol string
}

// NewCurrency returns a formatter for symbol, falling back to the peso sign.
func NewCurrency(symbol string) Currency {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	return Currency{Symbol: symbol}
}

// Format renders d as "₱1,234.56", with a leading minus for negatives.
func (c Currency) Format(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	return sign + c.Symbol + groupThousands(whole) + "." + frac
}

// FormatFloat is Format for a stored float amount.
func (c Currency) FormatFloat(f float64) string {
	return c.Format(decimal.NewFromFloat(f))
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// ParseAmount parses user input such as "₱1,234.50" by dropping everything
// except digits, '.' and '-'.
func ParseAmount(s string) (float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return 0, ErrInvalidAmount
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return d.InexactFloat64(), nil
}
