package container

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/registry"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	CodeMaxLength = 20

	volumeTolerance = 1e-6
)

var (
	ErrContainerIsNotConstructed = errors.New("Container must be created via NewContainer or RestoreContainer")

	// ErrVolumeIsDerived is returned when a volume is written while length, width
	// and height are all known.
	ErrVolumeIsDerived = errs.NewValueIsInvalidErrorWithCause("volume",
		errors.New("volume is computed from length, width and height"))
)

// Type is the container or package family.
type Type string

const (
	TypeNone     Type = ""
	TypeDry      Type = "dry"
	TypeReefer   Type = "reefer"
	TypeOpenTop  Type = "open_top"
	TypeFlatRack Type = "flat_rack"
	TypeTank     Type = "tank"
	TypeBulk     Type = "bulk"
	TypePackage  Type = "package"
	TypePallet   Type = "pallet"
	TypeOther    Type = "other"
)

func (t Type) Validate() error {
	switch t {
	case TypeNone, TypeDry, TypeReefer, TypeOpenTop, TypeFlatRack, TypeTank, TypeBulk, TypePackage, TypePallet, TypeOther:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("container type", fmt.Errorf("%q is not a container type", string(t)))
	}
}

// Dimensions are measured in meters. Zero means unknown.
type Dimensions struct {
	Length float64
	Width  float64
	Height float64
}

func (d Dimensions) complete() bool {
	return d.Length > 0 && d.Width > 0 && d.Height > 0
}

func (d Dimensions) validate(prefix string) error {
	return errors.Join(
		registry.NonNegative(prefix+"length", d.Length),
		registry.NonNegative(prefix+"width", d.Width),
		registry.NonNegative(prefix+"height", d.Height),
	)
}

// Compatibility flags the transport modes a unit can travel on.
type Compatibility struct {
	Ocean bool
	Air   bool
	Land  bool
}

// DefaultCompatibility mirrors what shipping containers and loose packages usually allow.
func DefaultCompatibility(isContainer bool) Compatibility {
	if isContainer {
		return Compatibility{Ocean: true, Land: true}
	}
	return Compatibility{Ocean: true, Air: true, Land: true}
}

// Details are every attribute of a container besides code and name.
// Volume is only honoured while Internal is incomplete. DailyRate is rounded to cents.
type Details struct {
	IsContainer    bool
	Refrigerated   bool
	Type           Type
	Size           float64
	MaxWeight      float64
	Internal       Dimensions
	External       Dimensions
	Volume         float64
	ISOCode        string
	Compatibility  Compatibility
	HazmatApproved bool
	FoodGrade      bool
	DailyRate      decimal.Decimal
	Currency       kernel.Currency
	Notes          string
}

// Container is a shipping container or package type.
//
// Invariants:
//   - dimensions are positive when set
//   - volume equals length × width × height whenever all three are set
type Container struct {
	id      kernel.UUID
	code    string
	name    string
	details Details
	active  bool
	guard   guard.ConstructorGuard
}

func NewContainer(id kernel.UUID, code, name string, details Details) (*Container, error) {
	return RestoreContainer(id, code, name, details, true)
}

func RestoreContainer(id kernel.UUID, code, name string, details Details, active bool) (*Container, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		id:     id,
		active: active,
		guard:  guard.NewConstructorGuard(),
	}
	if err := c.apply(code, name, details); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) Validate() error {
	if c == nil {
		return ErrContainerIsNotConstructed
	}
	return c.guard.Validate(ErrContainerIsNotConstructed)
}

// Update replaces every attribute. When the internal dimensions change and are
// complete, the incoming volume is ignored and recomputed from them.
func (c *Container) Update(code, name string, details Details) error {
	if details.Internal != c.details.Internal && details.Internal.complete() {
		details.Volume = 0
	}
	next := *c
	if err := next.apply(code, name, details); err != nil {
		return err
	}
	*c = next
	return nil
}

func (c *Container) ID() kernel.UUID {
	return c.id
}

func (c *Container) Code() string {
	return c.code
}

func (c *Container) Name() string {
	return c.name
}

func (c *Container) Details() Details {
	return c.details
}

// Volume returns the internal volume in cubic meters.
func (c *Container) Volume() float64 {
	return c.details.Volume
}

func (c *Container) IsActive() bool {
	return c.active
}

func (c *Container) SetActive(active bool) {
	c.active = active
}

// DisplayName renders "[CODE] Name (20ft)", falling back to the volume when the size is unknown.
func (c *Container) DisplayName() string {
	name := "[" + c.code + "] " + c.name
	switch {
	case c.details.Size != 0:
		name += " (" + formatFloat(c.details.Size) + "ft)"
	case c.details.Volume != 0:
		name += " (" + formatFloat(c.details.Volume) + "m³)"
	}
	return name
}

func (c *Container) apply(code, name string, details Details) error {
	var errCode, errName error
	c.code, errCode = registry.NormalizeCode(code, CodeMaxLength)
	c.name, errName = registry.NormalizeName(name)

	return errors.Join(errCode, errName, c.setDetails(details))
}

func (c *Container) setDetails(d Details) error {
	d.ISOCode = strings.TrimSpace(d.ISOCode)
	d.DailyRate = d.DailyRate.Round(kernel.MoneyPlaces)

	err := errors.Join(
		d.Type.Validate(),
		d.Internal.validate(""),
		d.External.validate("external "),
		registry.NonNegative("size", d.Size),
		registry.NonNegative("max weight", d.MaxWeight),
		registry.NonNegative("volume", d.Volume),
		validateRate(d.DailyRate),
		validateCurrency(d.Currency),
	)
	if err != nil {
		return err
	}

	if d.Internal.complete() {
		computed := d.Internal.Length * d.Internal.Width * d.Internal.Height
		if d.Volume != 0 && math.Abs(d.Volume-computed) > volumeTolerance {
			return ErrVolumeIsDerived
		}
		d.Volume = computed
	}

	c.details = d
	return nil
}

func validateRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("daily rate", fmt.Errorf("%s must not be negative", rate))
	}
	return nil
}

func validateCurrency(currency kernel.Currency) error {
	if currency == "" {
		return nil
	}
	_, err := kernel.NewCurrency(currency.String())
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
