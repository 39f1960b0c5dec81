package port

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/registry"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

const CodeMaxLength = 10

var (
	ErrPortIsNotConstructed = errors.New("Port must be created via NewPort or RestorePort")

	// ErrNoTransportMode is returned whenever a write would leave a port with
	// air, ocean and land support all switched off.
	ErrNoTransportMode = errs.NewBusinessRuleViolationError(
		"port must support at least one transport mode (air, ocean or land)")
)

// Modes holds the transport capability flags of a port.
type Modes struct {
	Air   bool
	Ocean bool
	Land  bool
}

func (m Modes) any() bool {
	return m.Air || m.Ocean || m.Land
}

// Details are the optional descriptive attributes of a port.
type Details struct {
	State    string
	Timezone string
	Location *kernel.GeoPoint
	Notes    string
}

// Port is an airport, seaport or inland terminal that shipments are routed through.
//
// Invariants:
//   - code is present, at most CodeMaxLength characters, unique across ports
//   - name and country are present
//   - at least one of the air, ocean and land flags is set after every write
type Port struct {
	id      kernel.UUID
	code    string
	name    string
	country kernel.CountryCode
	modes   Modes
	details Details
	active  bool
	guard   guard.ConstructorGuard
}

// NewPort creates an active port.
//
//	p, err := port.NewPort(kernel.NewUUID(), "AEJEA", "Jebel Ali", "AE",
//		port.Modes{Ocean: true, Land: true}, port.Details{Timezone: "Asia/Dubai"})
func NewPort(id kernel.UUID, code, name string, country kernel.CountryCode, modes Modes, details Details) (*Port, error) {
	return RestorePort(id, code, name, country, modes, details, true)
}

// RestorePort rebuilds a port from storage and re-checks every invariant.
func RestorePort(
	id kernel.UUID,
	code, name string,
	country kernel.CountryCode,
	modes Modes,
	details Details,
	active bool,
) (*Port, error) {
	p := &Port{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.apply(code, name, country, modes, details),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Port) Validate() error {
	if p == nil {
		return ErrPortIsNotConstructed
	}
	return p.guard.Validate(ErrPortIsNotConstructed)
}

// Update overwrites every editable attribute. Nothing changes when any value is rejected.
func (p *Port) Update(code, name string, country kernel.CountryCode, modes Modes, details Details) error {
	next := *p
	if err := next.apply(code, name, country, modes, details); err != nil {
		return err
	}
	*p = next
	return nil
}

// SetModes replaces the capability flags alone.
func (p *Port) SetModes(modes Modes) error {
	if !modes.any() {
		return ErrNoTransportMode
	}
	p.modes = modes
	return nil
}

// Supports reports whether the port handles the given transport mode.
func (p *Port) Supports(mode kernel.TransportMode) bool {
	switch mode {
	case kernel.TransportModeAir:
		return p.modes.Air
	case kernel.TransportModeOcean:
		return p.modes.Ocean
	case kernel.TransportModeLand:
		return p.modes.Land
	default:
		return false
	}
}

func (p *Port) IsEqual(other *Port) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Port) ID() kernel.UUID {
	return p.id
}

func (p *Port) Code() string {
	return p.code
}

func (p *Port) Name() string {
	return p.name
}

func (p *Port) Country() kernel.CountryCode {
	return p.country
}

func (p *Port) Modes() Modes {
	return p.modes
}

func (p *Port) Details() Details {
	return p.details
}

func (p *Port) IsActive() bool {
	return p.active
}

func (p *Port) SetActive(active bool) {
	p.active = active
}

// DisplayName renders "[CODE] Name, Country".
func (p *Port) DisplayName() string {
	var b strings.Builder
	b.WriteString("[" + p.code + "] " + p.name)
	if p.country != "" {
		b.WriteString(", " + p.country.String())
	}
	return b.String()
}

func (p *Port) apply(code, name string, country kernel.CountryCode, modes Modes, details Details) error {
	return errors.Join(
		p.setCode(code),
		p.setName(name),
		p.setCountry(country),
		p.SetModes(modes),
		p.setDetails(details),
	)
}

func (p *Port) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Port) setCode(code string) error {
	code, err := registry.NormalizeCode(code, CodeMaxLength)
	if err != nil {
		return err
	}
	p.code = code
	return nil
}

func (p *Port) setName(name string) error {
	name, err := registry.NormalizeName(name)
	if err != nil {
		return err
	}
	p.name = name
	return nil
}

func (p *Port) setCountry(country kernel.CountryCode) error {
	c, err := kernel.NewCountryCode(country.String())
	if err != nil {
		return err
	}
	p.country = c
	return nil
}

func (p *Port) setDetails(details Details) error {
	if details.Location != nil {
		if err := details.Location.Validate(); err != nil {
			return err
		}
	}
	details.State = strings.TrimSpace(details.State)
	details.Timezone = strings.TrimSpace(details.Timezone)
	p.details = details
	return nil
}
