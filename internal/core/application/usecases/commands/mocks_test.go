package commands_test

import (
	"context"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/airline"
	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/incoterm"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/port"
	"freight/internal/core/domain/model/quotation"
	"freight/internal/core/domain/model/registry"
	"freight/internal/core/domain/model/saleorder"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/model/vessel"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockRegistryRepository[T registry.Record] struct{ mock.Mock }

func (m *MockRegistryRepository[T]) Add(ctx context.Context, record T) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRegistryRepository[T]) Update(ctx context.Context, record T) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRegistryRepository[T]) Get(ctx context.Context, id kernel.UUID) (T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		var zero T
		return zero, args.Error(1)
	}
	return args.Get(0).(T), args.Error(1)
}

func (m *MockRegistryRepository[T]) CodeExists(ctx context.Context, code string, excludeID *kernel.UUID) (bool, error) {
	args := m.Called(ctx, code, excludeID)
	return args.Bool(0), args.Error(1)
}

type MockQuotationRepository struct{ mock.Mock }

func (m *MockQuotationRepository) Add(ctx context.Context, q *quotation.Quotation) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQuotationRepository) Update(ctx context.Context, q *quotation.Quotation) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQuotationRepository) Get(ctx context.Context, id kernel.UUID) (*quotation.Quotation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quotation.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) GetAllOverdue(ctx context.Context, asOf time.Time) ([]*quotation.Quotation, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*quotation.Quotation), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

type MockSaleOrderRepository struct{ mock.Mock }

func (m *MockSaleOrderRepository) Add(ctx context.Context, o *saleorder.SaleOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockSaleOrderRepository) Get(ctx context.Context, id kernel.UUID) (*saleorder.SaleOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*saleorder.SaleOrder), args.Error(1)
}

type MockSequenceGenerator struct{ mock.Mock }

func (m *MockSequenceGenerator) Next(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) PortRepository() ports.RegistryRepository[*port.Port] {
	args := m.Called()
	return args.Get(0).(ports.RegistryRepository[*port.Port])
}

func (m *MockUoW) VesselRepository() ports.RegistryRepository[*vessel.Vessel] {
	args := m.Called()
	return args.Get(0).(ports.RegistryRepository[*vessel.Vessel])
}

func (m *MockUoW) AirlineRepository() ports.RegistryRepository[*airline.Airline] {
	args := m.Called()
	return args.Get(0).(ports.RegistryRepository[*airline.Airline])
}

func (m *MockUoW) IncotermRepository() ports.RegistryRepository[*incoterm.Incoterm] {
	args := m.Called()
	return args.Get(0).(ports.RegistryRepository[*incoterm.Incoterm])
}

func (m *MockUoW) ContainerRepository() ports.RegistryRepository[*container.Container] {
	args := m.Called()
	return args.Get(0).(ports.RegistryRepository[*container.Container])
}

func (m *MockUoW) QuotationRepository() ports.QuotationRepository {
	args := m.Called()
	return args.Get(0).(ports.QuotationRepository)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) SaleOrderRepository() ports.SaleOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.SaleOrderRepository)
}

func (m *MockUoW) SequenceGenerator() ports.SequenceGenerator {
	args := m.Called()
	return args.Get(0).(ports.SequenceGenerator)
}

type MockRegistryUoWFactory struct{ mock.Mock }

func (m *MockRegistryUoWFactory) Create() commands.RegistryUoW {
	args := m.Called()
	return args.Get(0).(commands.RegistryUoW)
}

type MockQuotationUoWFactory struct{ mock.Mock }

func (m *MockQuotationUoWFactory) Create() commands.QuotationUoW {
	args := m.Called()
	return args.Get(0).(commands.QuotationUoW)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockCostLineUoWFactory struct{ mock.Mock }

func (m *MockCostLineUoWFactory) Create() commands.CostLineUoW {
	args := m.Called()
	return args.Get(0).(commands.CostLineUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
