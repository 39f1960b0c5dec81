package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
)

// ShipmentRepository persists shipments together with their cost lines.
type ShipmentRepository interface {
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update saves the shipment header and replaces its cost lines.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)
}
