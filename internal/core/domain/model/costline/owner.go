package costline

import (
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// OwnerKind names the record type a cost line belongs to.
type OwnerKind string

const (
	OwnerQuotation OwnerKind = "quotation"
	OwnerShipment  OwnerKind = "shipment"
)

// Owner identifies the single parent of a cost line.
type Owner struct {
	Kind OwnerKind
	ID   kernel.UUID
}

func (o Owner) Validate() error {
	if o.Kind != OwnerQuotation && o.Kind != OwnerShipment {
		return errs.NewValueIsInvalidErrorWithCause("cost line owner", fmt.Errorf("%q is neither quotation nor shipment", string(o.Kind)))
	}
	return o.ID.Validate()
}
