// Package postgres provides the GORM implementation of the Unit of Work pattern
// and the schema migration of the service.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	ref, err := uow.SequenceGenerator().Next(ctx, ports.SequenceQuotation)
//	if err != nil {
//	    return err
//	}
//	// build the quotation with ref ...
//	if err := uow.QuotationRepository().Add(ctx, q); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance provides one isolated transaction; goroutines must
// not share an instance.
package postgres

import (
	"context"

	"freight/internal/adapters/out/postgres/quotationrepo"
	"freight/internal/adapters/out/postgres/registryrepo"
	"freight/internal/adapters/out/postgres/saleorderrepo"
	"freight/internal/adapters/out/postgres/sequencerepo"
	"freight/internal/adapters/out/postgres/shipmentrepo"
	"freight/internal/core/domain/model/airline"
	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/incoterm"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/port"
	"freight/internal/core/domain/model/vessel"
	"freight/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state and aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the aggregates
// written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}
	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}
	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}
	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is open, which makes a
// deferred Rollback after a successful Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}
	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) PortRepository() ports.RegistryRepository[*port.Port] {
	return registryrepo.NewGormPortRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) VesselRepository() ports.RegistryRepository[*vessel.Vessel] {
	return registryrepo.NewGormVesselRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) AirlineRepository() ports.RegistryRepository[*airline.Airline] {
	return registryrepo.NewGormAirlineRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) IncotermRepository() ports.RegistryRepository[*incoterm.Incoterm] {
	return registryrepo.NewGormIncotermRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ContainerRepository() ports.RegistryRepository[*container.Container] {
	return registryrepo.NewGormContainerRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) QuotationRepository() ports.QuotationRepository {
	return quotationrepo.NewGormQuotationRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) SaleOrderRepository() ports.SaleOrderRepository {
	return saleorderrepo.NewGormSaleOrderRepository(uow.conn(), uow)
}

// SequenceGenerator draws numbers inside the open transaction, so the row lock
// is held until Commit or Rollback.
func (uow *GormUnitOfWork) SequenceGenerator() ports.SequenceGenerator {
	return sequencerepo.NewGormSequenceGenerator(uow.conn())
}

// TrackAggregate registers an aggregate written within this unit of work.
// Called by the repositories on every Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregateIDs lists the ids of the aggregates written so far, in write order.
func (uow *GormUnitOfWork) TrackedAggregateIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		ids = append(ids, t.ID)
	}
	return ids
}

// conn returns the open transaction, or the pool when none is open.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
