package kernel

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// ServiceType is the commercial load unit of a quotation or shipment. It is optional:
// ServiceTypeNone is a valid value.
type ServiceType string

const (
	ServiceTypeNone       ServiceType = ""
	ServiceTypeFCL        ServiceType = "fcl"
	ServiceTypeLCL        ServiceType = "lcl"
	ServiceTypeFTL        ServiceType = "ftl"
	ServiceTypeLTL        ServiceType = "ltl"
	ServiceTypeAirFreight ServiceType = "air_freight"
	ServiceTypeExpress    ServiceType = "express"
)

func getValidServiceTypes() map[ServiceType]string {
	return map[ServiceType]string{
		ServiceTypeNone:       "",
		ServiceTypeFCL:        "Full Container Load (FCL)",
		ServiceTypeLCL:        "Less than Container Load (LCL)",
		ServiceTypeFTL:        "Full Truck Load (FTL)",
		ServiceTypeLTL:        "Less than Truck Load (LTL)",
		ServiceTypeAirFreight: "Air Freight",
		ServiceTypeExpress:    "Express Service",
	}
}

func (s ServiceType) Validate() error {
	if _, ok := getValidServiceTypes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("service type", fmt.Errorf("%q is not a valid service type", string(s)))
	}
	return nil
}

func (s ServiceType) Label() string {
	return getValidServiceTypes()[s]
}

// Direction tells whether goods enter or leave the forwarder's home market.
type Direction string

const (
	DirectionImport Direction = "import"
	DirectionExport Direction = "export"
)

func (d Direction) Validate() error {
	if d != DirectionImport && d != DirectionExport {
		return errs.NewValueIsInvalidErrorWithCause("direction", fmt.Errorf("%q is neither import nor export", string(d)))
	}
	return nil
}
