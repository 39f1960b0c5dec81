package postgres

import (
	"context"

	"freight/internal/adapters/out/postgres/costlinerepo"
	"freight/internal/adapters/out/postgres/quotationrepo"
	"freight/internal/adapters/out/postgres/registryrepo"
	"freight/internal/adapters/out/postgres/saleorderrepo"
	"freight/internal/adapters/out/postgres/sequencerepo"
	"freight/internal/adapters/out/postgres/shipmentrepo"

	"gorm.io/gorm"
)

// Models lists every table of the service in migration order.
func Models() []any {
	return []any{
		&registryrepo.PortDTO{},
		&registryrepo.VesselDTO{},
		&registryrepo.AirlineDTO{},
		&registryrepo.IncotermDTO{},
		&registryrepo.ContainerDTO{},
		&quotationrepo.QuotationDTO{},
		&shipmentrepo.ShipmentDTO{},
		&costlinerepo.CostLineDTO{},
		&saleorderrepo.SaleOrderDTO{},
		&saleorderrepo.SaleOrderLineDTO{},
		&sequencerepo.SequenceDTO{},
	}
}

// Migrate creates or updates the schema and seeds the document sequences.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return err
	}
	return sequencerepo.Seed(ctx, db)
}
