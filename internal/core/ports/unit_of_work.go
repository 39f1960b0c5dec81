package ports

import (
	"context"

	"freight/internal/core/domain/model/airline"
	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/incoterm"
	"freight/internal/core/domain/model/port"
	"freight/internal/core/domain/model/vessel"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle. Repositories
// returned after Begin use the transaction started by it.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	PortRepository() RegistryRepository[*port.Port]
	VesselRepository() RegistryRepository[*vessel.Vessel]
	AirlineRepository() RegistryRepository[*airline.Airline]
	IncotermRepository() RegistryRepository[*incoterm.Incoterm]
	ContainerRepository() RegistryRepository[*container.Container]

	QuotationRepository() QuotationRepository
	ShipmentRepository() ShipmentRepository
	SaleOrderRepository() SaleOrderRepository

	SequenceGenerator() SequenceGenerator
}
