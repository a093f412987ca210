package currency

import (
	"errors"
	"strconv"
)

var ErrUnsupportedCurrency = errors.New("unsupported currency")

// Currency is the closed set of alphabetic currency codes the gateway
// accepts. Anything outside the set is a client error, not a provider error.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	RUB Currency = "RUB"
)

// ISO 4217 numeric codes. Providers sign and bill against the numeric form.
var numericCodes = map[Currency]int{
	USD: 840,
	EUR: 978,
	RUB: 643,
}

// Parse validates a raw currency string against the closed enumeration.
func Parse(s string) (Currency, error) {
	c := Currency(s)
	if _, ok := numericCodes[c]; !ok {
		return "", ErrUnsupportedCurrency
	}
	return c, nil
}

// NumericCode returns the ISO 4217 numeric code for a parsed currency.
func (c Currency) NumericCode() int {
	return numericCodes[c]
}

// NumericString is NumericCode formatted the way providers expect it in
// signing strings and JSON bodies ("840", not "0840").
func (c Currency) NumericString() string {
	return strconv.Itoa(numericCodes[c])
}
