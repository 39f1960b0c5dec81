package airline

import (
	"errors"
	"fmt"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/registry"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

const CodeMaxLength = 10

var ErrAirlineIsNotConstructed = errors.New("Airline must be created via NewAirline or RestoreAirline")

// Type is the kind of service an airline flies.
type Type string

const (
	TypePassenger Type = "passenger"
	TypeCargo     Type = "cargo"
	TypeMixed     Type = "mixed"
	TypeCharter   Type = "charter"
)

func (t Type) Validate() error {
	switch t {
	case TypePassenger, TypeCargo, TypeMixed, TypeCharter:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("airline type", fmt.Errorf("%q is not an airline type", string(t)))
	}
}

// Details are the optional identification, contact and fleet attributes.
// An empty Type defaults to TypeMixed.
type Details struct {
	IATA                 string
	ICAO                 string
	Type                 Type
	Website              string
	Phone                string
	Email                string
	FleetSize            int
	CargoFleetSize       int
	DomesticService      bool
	InternationalService bool
	Notes                string
}

// Airline is a carrier that air shipments can be booked with.
type Airline struct {
	id      kernel.UUID
	code    string
	name    string
	country kernel.CountryCode
	details Details
	active  bool
	guard   guard.ConstructorGuard
}

func NewAirline(id kernel.UUID, code, name string, country kernel.CountryCode, details Details) (*Airline, error) {
	return RestoreAirline(id, code, name, country, details, true)
}

func RestoreAirline(
	id kernel.UUID,
	code, name string,
	country kernel.CountryCode,
	details Details,
	active bool,
) (*Airline, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	a := &Airline{
		id:     id,
		active: active,
		guard:  guard.NewConstructorGuard(),
	}
	if err := a.apply(code, name, country, details); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *Airline) Validate() error {
	if a == nil {
		return ErrAirlineIsNotConstructed
	}
	return a.guard.Validate(ErrAirlineIsNotConstructed)
}

func (a *Airline) Update(code, name string, country kernel.CountryCode, details Details) error {
	next := *a
	if err := next.apply(code, name, country, details); err != nil {
		return err
	}
	*a = next
	return nil
}

func (a *Airline) ID() kernel.UUID {
	return a.id
}

func (a *Airline) Code() string {
	return a.code
}

func (a *Airline) Name() string {
	return a.name
}

func (a *Airline) Country() kernel.CountryCode {
	return a.country
}

func (a *Airline) Details() Details {
	return a.details
}

func (a *Airline) IsActive() bool {
	return a.active
}

func (a *Airline) SetActive(active bool) {
	a.active = active
}

// DisplayName renders "[CODE] Name (CC)".
func (a *Airline) DisplayName() string {
	name := "[" + a.code + "] " + a.name
	if a.country != "" {
		name += " (" + a.country.String() + ")"
	}
	return name
}

func (a *Airline) apply(code, name string, country kernel.CountryCode, details Details) error {
	var errCode, errName, errCountry error
	a.code, errCode = registry.NormalizeCode(code, CodeMaxLength)
	a.name, errName = registry.NormalizeName(name)
	a.country, errCountry = kernel.NewCountryCode(country.String())

	return errors.Join(errCode, errName, errCountry, a.setDetails(details))
}

func (a *Airline) setDetails(d Details) error {
	d.IATA = strings.TrimSpace(d.IATA)
	d.ICAO = strings.TrimSpace(d.ICAO)
	d.Email = strings.TrimSpace(d.Email)
	if d.Type == "" {
		d.Type = TypeMixed
	}

	if err := errors.Join(
		ValidateIATA(d.IATA),
		ValidateICAO(d.ICAO),
		d.Type.Validate(),
		registry.NonNegative("fleet size", d.FleetSize),
		registry.NonNegative("cargo fleet size", d.CargoFleetSize),
	); err != nil {
		return err
	}

	a.details = d
	return nil
}

// ValidateIATA accepts an empty code or two to three letters.
func ValidateIATA(code string) error {
	if code == "" {
		return nil
	}
	if len(code) != 2 && len(code) != 3 {
		return errs.NewValueIsInvalidErrorWithCause("iata code", fmt.Errorf("%q must be 2 or 3 characters long", code))
	}
	if !kernel.IsASCIILetters(code) {
		return errs.NewValueIsInvalidErrorWithCause("iata code", fmt.Errorf("%q must contain only letters", code))
	}
	return nil
}

// ValidateICAO accepts an empty code or three to four letters and digits.
func ValidateICAO(code string) error {
	if code == "" {
		return nil
	}
	if len(code) != 3 && len(code) != 4 {
		return errs.NewValueIsInvalidErrorWithCause("icao code", fmt.Errorf("%q must be 3 or 4 characters long", code))
	}
	if !kernel.IsASCIIAlphanumeric(code) {
		return errs.NewValueIsInvalidErrorWithCause("icao code", fmt.Errorf("%q must contain only letters and numbers", code))
	}
	return nil
}
