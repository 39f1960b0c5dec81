package registry

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// Kind names one of the reference registries.
type Kind string

const (
	KindPort      Kind = "port"
	KindVessel    Kind = "vessel"
	KindAirline   Kind = "airline"
	KindIncoterm  Kind = "incoterm"
	KindContainer Kind = "container"
)

// Kinds lists every registry in the order they are seeded and documented.
func Kinds() []Kind {
	return []Kind{KindPort, KindVessel, KindAirline, KindIncoterm, KindContainer}
}

func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("registry kind", fmt.Errorf("%q is not a registry", s))
}

func (k Kind) String() string {
	return string(k)
}

// Record is what every registry entry exposes to uniqueness checks, soft
// deletion and list views.
type Record interface {
	Validate() error
	ID() kernel.UUID
	Code() string
	Name() string
	IsActive() bool
	SetActive(active bool)
	DisplayName() string
}

// NormalizeCode trims the code and checks it is present and at most maxLen characters.
// The comparison used for uniqueness stays case-sensitive, so no case folding happens here.
func NormalizeCode(code string, maxLen int) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", errs.NewValueIsRequiredError("code")
	}
	if n := utf8.RuneCountInString(code); n > maxLen {
		return "", errs.NewValueIsOutOfRangeError("code length", n, 1, maxLen)
	}
	return code, nil
}

func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errs.NewValueIsRequiredError("name")
	}
	return name, nil
}

// NonNegative reports a negative measurement such as tonnage or fleet size. Zero means unset and passes.
func NonNegative[T int | float64](param string, v T) error {
	if v < 0 {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%v must not be negative", v))
	}
	return nil
}
