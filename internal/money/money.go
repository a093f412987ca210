package money

import (
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("invalid amount")

// ToMinorUnits converts a decimal major-unit amount ("10.00") into integer
// minor units (1000). The conversion is exact: the string is parsed as fixed
// point, never through a float. Amounts with more than two fraction digits
// cannot be represented in minor units and are rejected, as are negative and
// non-numeric inputs.
func ToMinorUnits(amount string) (int64, error) {
	s := strings.TrimSpace(amount)
	if s == "" || s[0] == '-' || s[0] == '+' {
		return 0, ErrInvalidAmount
	}

	whole := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}

	if whole == "" && frac == "" {
		return 0, ErrInvalidAmount
	}
	if len(frac) > 2 || !isDigits(whole) || !isDigits(frac) {
		return 0, ErrInvalidAmount
	}

	// Pad to exactly two fraction digits so "10.5" means 1050, not 105.
	for len(frac) < 2 {
		frac += "0"
	}

	cents, err := strconv.ParseInt(whole+frac, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return cents, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
