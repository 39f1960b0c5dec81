package kernel

import (
	"fmt"
	"strings"

	"freight/internal/pkg/errs"
)

// CountryCode is an ISO 3166-1 alpha-2 code, always uppercase.
type CountryCode string

// NewCountryCode trims and uppercases s. Only two ASCII letters are accepted.
func NewCountryCode(s string) (CountryCode, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	if code == "" {
		return "", errs.NewValueIsRequiredError("country")
	}
	if len(code) != 2 || !IsASCIILetters(code) {
		return "", errs.NewValueIsInvalidErrorWithCause("country", fmt.Errorf("%q is not a two-letter country code", s))
	}
	return CountryCode(code), nil
}

func (c CountryCode) String() string {
	return string(c)
}

// Currency is an ISO 4217 alphabetic code, always uppercase.
type Currency string

func NewCurrency(s string) (Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	if code == "" {
		return "", errs.NewValueIsRequiredError("currency")
	}
	if len(code) != 3 || !IsASCIILetters(code) {
		return "", errs.NewValueIsInvalidErrorWithCause("currency", fmt.Errorf("%q is not a three-letter currency code", s))
	}
	return Currency(code), nil
}

func (c Currency) String() string {
	return string(c)
}

// Money amounts are kept in cents and quantities in four decimal places, the
// scale they are stored with.
const (
	MoneyPlaces    = 2
	QuantityPlaces = 4
)

// IsASCIILetters reports whether s is non-empty and made of ASCII letters only.
func IsASCIILetters(s string) bool {
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return s != ""
}

// IsASCIIAlphanumeric reports whether s is non-empty and made of ASCII letters and digits only.
func IsASCIIAlphanumeric(s string) bool {
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return s != ""
}

// IsASCIIDigits reports whether s is non-empty and made of ASCII digits only.
func IsASCIIDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
