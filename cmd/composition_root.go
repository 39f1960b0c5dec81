package cmd

import (
	"log/slog"

	httpin "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/postgres"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) registryUoWFactory() commands.RegistryUoWFactory {
	return FuncRegistryUoWFactory(func() commands.RegistryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) quotationUoWFactory() commands.QuotationUoWFactory {
	return FuncQuotationUoWFactory(func() commands.QuotationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) costLineUoWFactory() commands.CostLineUoWFactory {
	return FuncCostLineUoWFactory(func() commands.CostLineUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSeedReferenceDataCommandHandler() commands.SeedReferenceDataCommandHandler {
	return commands.NewSeedReferenceDataCommandHandler(c.registryUoWFactory())
}

func (c *CompositionRoot) CreateRegistryHandlers() httpin.RegistryHandlers {
	f := c.registryUoWFactory()
	return httpin.RegistryHandlers{
		CreatePort:      commands.NewCreatePortCommandHandler(f),
		UpdatePort:      commands.NewUpdatePortCommandHandler(f),
		CreateVessel:    commands.NewCreateVesselCommandHandler(f),
		UpdateVessel:    commands.NewUpdateVesselCommandHandler(f),
		CreateAirline:   commands.NewCreateAirlineCommandHandler(f),
		UpdateAirline:   commands.NewUpdateAirlineCommandHandler(f),
		CreateIncoterm:  commands.NewCreateIncotermCommandHandler(f),
		UpdateIncoterm:  commands.NewUpdateIncotermCommandHandler(f),
		CreateContainer: commands.NewCreateContainerCommandHandler(f),
		UpdateContainer: commands.NewUpdateContainerCommandHandler(f),
		SetActive:       commands.NewSetRegistryRecordActiveCommandHandler(f),
		List:            queries.NewListRegistryRecordsQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateQuotationHandlers() httpin.QuotationHandlers {
	defaults := commands.QuotationDefaults{
		ValidityDays: c.config.QuotationValidityDays,
		Currency:     c.config.DefaultCurrency,
	}
	return httpin.QuotationHandlers{
		Create:       commands.NewCreateQuotationCommandHandler(c.quotationUoWFactory(), defaults, commands.SystemClock),
		Update:       commands.NewUpdateQuotationCommandHandler(c.quotationUoWFactory()),
		ChangeState:  commands.NewChangeQuotationStateCommandHandler(c.quotationUoWFactory()),
		Confirm:      commands.NewConfirmQuotationCommandHandler(c.fullUoWFactory(), commands.SystemClock),
		ToShipment:   commands.NewCreateShipmentFromQuotationCommandHandler(c.fullUoWFactory(), commands.SystemClock),
		Get:          queries.NewGetQuotationQueryHandler(c.gormDB),
		GetSaleOrder: queries.NewGetSaleOrderQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateShipmentHandlers() httpin.ShipmentHandlers {
	f := c.shipmentUoWFactory()
	return httpin.ShipmentHandlers{
		Create:  commands.NewCreateShipmentCommandHandler(f, c.config.DefaultCurrency, commands.SystemClock),
		Update:  commands.NewUpdateShipmentCommandHandler(f),
		Reroute: commands.NewUpdateShipmentRouteCommandHandler(f),
		Advance: commands.NewAdvanceShipmentCommandHandler(f, commands.SystemClock),
		Get:     queries.NewGetShipmentQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateCostLineHandlers() httpin.CostLineHandlers {
	f := c.costLineUoWFactory()
	return httpin.CostLineHandlers{
		Add:         commands.NewAddCostLineCommandHandler(f),
		Update:      commands.NewUpdateCostLineCommandHandler(f),
		Remove:      commands.NewRemoveCostLineCommandHandler(f),
		LinkInvoice: commands.NewLinkCostLineInvoiceCommandHandler(f),
	}
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateRegistryHandlers(),
		c.CreateQuotationHandlers(),
		c.CreateShipmentHandlers(),
		c.CreateCostLineHandlers(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	expiry := jobs.NewQuotationExpiryJob(
		commands.NewExpireOverdueQuotationsCommandHandler(c.quotationUoWFactory()),
		c.config.QuotationExpirySchedule,
		commands.SystemClock,
		c.logger,
	)
	return jobs.NewJobManager(expiry)
}

type FuncRegistryUoWFactory func() commands.RegistryUoW

func (f FuncRegistryUoWFactory) Create() commands.RegistryUoW {
	return f()
}

type FuncQuotationUoWFactory func() commands.QuotationUoW

func (f FuncQuotationUoWFactory) Create() commands.QuotationUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncCostLineUoWFactory func() commands.CostLineUoW

func (f FuncCostLineUoWFactory) Create() commands.CostLineUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
