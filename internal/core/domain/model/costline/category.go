package costline

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Category groups charges for reporting and becomes the product of a sale order line.
type Category string

const (
	CategoryFreight       Category = "freight"
	CategoryDocumentation Category = "documentation"
	CategoryHandling      Category = "handling"
	CategoryInsurance     Category = "insurance"
	CategoryCustoms       Category = "customs"
	CategoryDelivery      Category = "delivery"
	CategoryStorage       Category = "storage"
	CategoryFuel          Category = "fuel"
	CategorySecurity      Category = "security"
	CategoryOther         Category = "other"
)

func getCategoryLabels() map[Category]string {
	return map[Category]string{
		CategoryFreight:       "Freight Charges",
		CategoryDocumentation: "Documentation",
		CategoryHandling:      "Handling Charges",
		CategoryInsurance:     "Insurance",
		CategoryCustoms:       "Customs Clearance",
		CategoryDelivery:      "Delivery Charges",
		CategoryStorage:       "Storage/Demurrage",
		CategoryFuel:          "Fuel Surcharge",
		CategorySecurity:      "Security Charges",
		CategoryOther:         "Other Charges",
	}
}

func (c Category) Validate() error {
	if _, ok := getCategoryLabels()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("cost category", fmt.Errorf("%q is not a cost category", string(c)))
	}
	return nil
}

// Label is the printable product name, e.g. "Fuel Surcharge".
func (c Category) Label() string {
	return getCategoryLabels()[c]
}
