// Package commands contains business operations that modify system state.
// Every handler runs its command inside one unit of work: validation, transaction
// management and persistence follow the same sequence in each of them.
package commands

import (
	"context"

	"freight/internal/core/domain/model/airline"
	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/incoterm"
	"freight/internal/core/domain/model/port"
	"freight/internal/core/domain/model/vessel"
	"freight/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	PortRepoFactory interface {
		PortRepository() ports.RegistryRepository[*port.Port]
	}

	// RegistryRepoFactory exposes the five reference registries.
	RegistryRepoFactory interface {
		PortRepoFactory
		VesselRepository() ports.RegistryRepository[*vessel.Vessel]
		AirlineRepository() ports.RegistryRepository[*airline.Airline]
		IncotermRepository() ports.RegistryRepository[*incoterm.Incoterm]
		ContainerRepository() ports.RegistryRepository[*container.Container]
	}

	QuotationRepoFactory interface {
		QuotationRepository() ports.QuotationRepository
	}

	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	SaleOrderRepoFactory interface {
		SaleOrderRepository() ports.SaleOrderRepository
	}

	// SequenceFactory gives access to document numbering inside the transaction.
	SequenceFactory interface {
		SequenceGenerator() ports.SequenceGenerator
	}

	// RegistryUoW manages transactions for registry maintenance and seeding.
	RegistryUoW interface {
		TxManager
		RegistryRepoFactory
	}

	RegistryUoWFactory interface {
		Create() RegistryUoW
	}

	// QuotationUoW manages transactions touching quotations only, ports being
	// read to check the route.
	QuotationUoW interface {
		TxManager
		PortRepoFactory
		QuotationRepoFactory
		SequenceFactory
	}

	QuotationUoWFactory interface {
		Create() QuotationUoW
	}

	// ShipmentUoW manages transactions for shipments opened and moved directly.
	ShipmentUoW interface {
		TxManager
		PortRepoFactory
		ShipmentRepoFactory
		SequenceFactory
	}

	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// CostLineUoW manages transactions editing the lines of either owner.
	CostLineUoW interface {
		TxManager
		QuotationRepoFactory
		ShipmentRepoFactory
	}

	CostLineUoWFactory interface {
		Create() CostLineUoW
	}

	// UoW manages transactions spanning quotations and the documents they spawn.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   q, err := uow.QuotationRepository().Get(ctx, id)
	//   ref, err := uow.SequenceGenerator().Next(ctx, ports.SequenceSaleOrder)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		PortRepoFactory
		QuotationRepoFactory
		ShipmentRepoFactory
		SaleOrderRepoFactory
		SequenceFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
