package vessel

import (
	"errors"
	"fmt"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/registry"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

const (
	CodeMaxLength = 20
	imoLength     = 7
)

var ErrVesselIsNotConstructed = errors.New("Vessel must be created via NewVessel or RestoreVessel")

// Type classifies the hull. TypeNone leaves it unset.
type Type string

const (
	TypeNone      Type = ""
	TypeContainer Type = "container"
	TypeBulk      Type = "bulk"
	TypeTanker    Type = "tanker"
	TypeRoRo      Type = "roro"
	TypeGeneral   Type = "general"
	TypeOther     Type = "other"
)

func (t Type) Validate() error {
	switch t {
	case TypeNone, TypeContainer, TypeBulk, TypeTanker, TypeRoRo, TypeGeneral, TypeOther:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("vessel type", fmt.Errorf("%q is not a vessel type", string(t)))
	}
}

// Details are the optional registration, capacity and dimension attributes.
// Owner and Operator reference partners by name.
type Details struct {
	GlobalZone   string
	Type         Type
	IMO          string
	MMSI         string
	CallSign     string
	GrossTonnage float64
	NetTonnage   float64
	Deadweight   float64
	TEUCapacity  int
	Length       float64
	Beam         float64
	Draft        float64
	Owner        string
	Operator     string
	Notes        string
}

// Vessel is a ship that ocean shipments can be booked on.
type Vessel struct {
	id      kernel.UUID
	code    string
	name    string
	country kernel.CountryCode
	details Details
	active  bool
	guard   guard.ConstructorGuard
}

func NewVessel(id kernel.UUID, code, name string, country kernel.CountryCode, details Details) (*Vessel, error) {
	return RestoreVessel(id, code, name, country, details, true)
}

func RestoreVessel(
	id kernel.UUID,
	code, name string,
	country kernel.CountryCode,
	details Details,
	active bool,
) (*Vessel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	v := &Vessel{
		id:     id,
		active: active,
		guard:  guard.NewConstructorGuard(),
	}
	if err := v.apply(code, name, country, details); err != nil {
		return nil, err
	}

	return v, nil
}

func (v *Vessel) Validate() error {
	if v == nil {
		return ErrVesselIsNotConstructed
	}
	return v.guard.Validate(ErrVesselIsNotConstructed)
}

// Update overwrites every editable attribute, or nothing when a value is rejected.
func (v *Vessel) Update(code, name string, country kernel.CountryCode, details Details) error {
	next := *v
	if err := next.apply(code, name, country, details); err != nil {
		return err
	}
	*v = next
	return nil
}

func (v *Vessel) ID() kernel.UUID {
	return v.id
}

func (v *Vessel) Code() string {
	return v.code
}

func (v *Vessel) Name() string {
	return v.name
}

func (v *Vessel) Country() kernel.CountryCode {
	return v.country
}

func (v *Vessel) Details() Details {
	return v.details
}

func (v *Vessel) IsActive() bool {
	return v.active
}

func (v *Vessel) SetActive(active bool) {
	v.active = active
}

// DisplayName renders "[CODE] Name (CC)".
func (v *Vessel) DisplayName() string {
	name := "[" + v.code + "] " + v.name
	if v.country != "" {
		name += " (" + v.country.String() + ")"
	}
	return name
}

func (v *Vessel) apply(code, name string, country kernel.CountryCode, details Details) error {
	var errCode, errName, errCountry error
	v.code, errCode = registry.NormalizeCode(code, CodeMaxLength)
	v.name, errName = registry.NormalizeName(name)
	v.country, errCountry = kernel.NewCountryCode(country.String())

	return errors.Join(errCode, errName, errCountry, v.setDetails(details))
}

func (v *Vessel) setDetails(d Details) error {
	d.IMO = strings.TrimSpace(d.IMO)
	d.MMSI = strings.TrimSpace(d.MMSI)
	d.CallSign = strings.TrimSpace(d.CallSign)

	if err := errors.Join(
		d.Type.Validate(),
		ValidateIMO(d.IMO),
		registry.NonNegative("gross tonnage", d.GrossTonnage),
		registry.NonNegative("net tonnage", d.NetTonnage),
		registry.NonNegative("deadweight", d.Deadweight),
		registry.NonNegative("teu capacity", d.TEUCapacity),
		registry.NonNegative("length", d.Length),
		registry.NonNegative("beam", d.Beam),
		registry.NonNegative("draft", d.Draft),
	); err != nil {
		return err
	}

	v.details = d
	return nil
}

// ValidateIMO accepts an empty number or exactly seven digits.
func ValidateIMO(imo string) error {
	if imo == "" {
		return nil
	}
	if len(imo) != imoLength || !kernel.IsASCIIDigits(imo) {
		return errs.NewValueIsInvalidErrorWithCause("imo number", fmt.Errorf("%q must be exactly %d digits", imo, imoLength))
	}
	return nil
}
