package incoterm

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
	CodeMinLength = 2
	CodeMaxLength = 10

	DefaultYearVersion = "2020"
)

var ErrIncotermIsNotConstructed = errors.New("Incoterm must be created via NewIncoterm or RestoreIncoterm")

// Group is the Incoterms family letter.
type Group string

const (
	GroupNone Group = ""
	GroupE    Group = "e"
	GroupF    Group = "f"
	GroupC    Group = "c"
	GroupD    Group = "d"
)

// Mode restricts the transport a term may be used with.
type Mode string

const (
	ModeAny        Mode = "any"
	ModeSeaInland  Mode = "sea_inland"
	ModeMultimodal Mode = "multimodal"
)

// Clearance names the party responsible for customs formalities.
type Clearance string

const (
	ClearanceSeller        Clearance = "seller"
	ClearanceBuyer         Clearance = "buyer"
	ClearanceNotApplicable Clearance = "na"
)

// Details are the descriptive attributes of a term. Empty Mode, clearances and
// YearVersion take the defaults any, seller (export), buyer (import) and 2020.
type Details struct {
	Group              Group
	Mode               Mode
	RiskTransferPoint  string
	CostResponsibility string
	InsuranceRequired  bool
	ExportClearance    Clearance
	ImportClearance    Clearance
	YearVersion        string
	Notes              string
}

// Incoterm is a trade term such as FOB or DAP. Its code is stored uppercase.
type Incoterm struct {
	id      kernel.UUID
	code    string
	name    string
	details Details
	active  bool
	guard   guard.ConstructorGuard
}

func NewIncoterm(id kernel.UUID, code, name string, details Details) (*Incoterm, error) {
	return RestoreIncoterm(id, code, name, details, true)
}

func RestoreIncoterm(id kernel.UUID, code, name string, details Details, active bool) (*Incoterm, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	i := &Incoterm{
		id:     id,
		active: active,
		guard:  guard.NewConstructorGuard(),
	}
	if err := i.apply(code, name, details); err != nil {
		return nil, err
	}

	return i, nil
}

func (i *Incoterm) Validate() error {
	if i == nil {
		return ErrIncotermIsNotConstructed
	}
	return i.guard.Validate(ErrIncotermIsNotConstructed)
}

// Update overwrites the term. The new code is uppercased like on creation.
func (i *Incoterm) Update(code, name string, details Details) error {
	next := *i
	if err := next.apply(code, name, details); err != nil {
		return err
	}
	*i = next
	return nil
}

func (i *Incoterm) ID() kernel.UUID {
	return i.id
}

func (i *Incoterm) Code() string {
	return i.code
}

func (i *Incoterm) Name() string {
	return i.name
}

func (i *Incoterm) Details() Details {
	return i.details
}

func (i *Incoterm) IsActive() bool {
	return i.active
}

func (i *Incoterm) SetActive(active bool) {
	i.active = active
}

// DisplayName renders "CODE - Name".
func (i *Incoterm) DisplayName() string {
	return i.code + " - " + i.name
}

func (i *Incoterm) apply(code, name string, details Details) error {
	var errCode, errName error
	i.code, errCode = NormalizeCode(code)
	i.name, errName = registry.NormalizeName(name)

	return errors.Join(errCode, errName, i.setDetails(details))
}

// NormalizeCode uppercases the code and checks it is 2 to 10 letters.
func NormalizeCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", errs.NewValueIsRequiredError("code")
	}
	if len(code) < CodeMinLength || len(code) > CodeMaxLength || !kernel.IsASCIILetters(code) {
		return "", errs.NewValueIsInvalidErrorWithCause("incoterm code",
			fmt.Errorf("%q should be %d-%d alphabetic characters", code, CodeMinLength, CodeMaxLength))
	}
	return code, nil
}

func (i *Incoterm) setDetails(d Details) error {
	if d.Mode == "" {
		d.Mode = ModeAny
	}
	if d.ExportClearance == "" {
		d.ExportClearance = ClearanceSeller
	}
	if d.ImportClearance == "" {
		d.ImportClearance = ClearanceBuyer
	}
	d.YearVersion = strings.TrimSpace(d.YearVersion)
	if d.YearVersion == "" {
		d.YearVersion = DefaultYearVersion
	}

	if err := errors.Join(
		validateGroup(d.Group),
		validateMode(d.Mode),
		validateClearance("export clearance", d.ExportClearance),
		validateClearance("import clearance", d.ImportClearance),
	); err != nil {
		return err
	}

	i.details = d
	return nil
}

func validateGroup(g Group) error {
	switch g {
	case GroupNone, GroupE, GroupF, GroupC, GroupD:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("incoterm group", fmt.Errorf("%q is not an incoterm group", string(g)))
	}
}

func validateMode(m Mode) error {
	switch m {
	case ModeAny, ModeSeaInland, ModeMultimodal:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("incoterm transport mode", fmt.Errorf("%q is not supported", string(m)))
	}
}

func validateClearance(param string, c Clearance) error {
	switch c {
	case ClearanceSeller, ClearanceBuyer, ClearanceNotApplicable:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%q is not seller, buyer or na", string(c)))
	}
}
