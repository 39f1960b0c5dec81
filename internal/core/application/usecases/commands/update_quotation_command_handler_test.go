package commands_test

import (
	"testing"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/costline"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/port"
	"freight/internal/core/domain/model/quotation"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quotationFields(origin, destination *port.Port) commands.QuotationFields {
	return commands.QuotationFields{
		Customer:    " Globex Corp ",
		Origin:      origin.ID(),
		Destination: destination.ID(),
		Mode:        kernel.TransportModeOcean,
		Direction:   kernel.DirectionExport,
		ServiceType: kernel.ServiceTypeLCL,
		Cargo:       quotation.Cargo{Description: "Machinery parts, 4 crates", EstimatedWeight: 3200},
		Conditions:  "Subject to space availability",
	}
}

func TestUpdateQuotationCommandHandler_Handle_KeepsUnsetDatesAndCurrency(t *testing.T) {
	ctx := t.Context()
	origin := newSeaport(t, "AEJEA", "Jebel Ali", "AE")
	destination := newSeaport(t, "NLRTM", "Rotterdam", "NL")
	q := newQuotation(t, origin, destination)
	require.NoError(t, q.Send())
	before := q.Terms()

	cmd, err := commands.NewUpdateQuotationCommand(q.ID(), quotationFields(origin, destination))
	require.NoError(t, err)

	quotationRepo := new(MockQuotationRepository)
	portRepo := new(MockRegistryRepository[*port.Port])
	uow := new(MockUoW)
	factory := new(MockQuotationUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuotationRepository").Return(quotationRepo).Once(),
		quotationRepo.On("Get", ctx, q.ID()).Return(q, nil).Once(),
		uow.On("PortRepository").Return(portRepo).Once(),
		portRepo.On("Get", ctx, origin.ID()).Return(origin, nil).Once(),
		portRepo.On("Get", ctx, destination.ID()).Return(destination, nil).Once(),
		quotationRepo.On("Update", ctx, q).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateQuotationCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Globex Corp", q.Customer())
	assert.Equal(t, kernel.ServiceTypeLCL, q.Terms().ServiceType)
	assert.Equal(t, "Subject to space availability", q.Terms().Conditions)
	assert.Equal(t, before.QuotationDate, q.Terms().QuotationDate)
	assert.Equal(t, before.ValidityDate, q.Terms().ValidityDate)
	assert.Equal(t, kernel.Currency("USD"), q.Currency())
	assert.Equal(t, quotation.Sent, q.Status())
	uow.AssertExpectations(t)
}

func TestUpdateQuotationCommandHandler_Handle_ExplicitDates(t *testing.T) {
	ctx := t.Context()
	origin := newSeaport(t, "AEJEA", "Jebel Ali", "AE")
	destination := newSeaport(t, "NLRTM", "Rotterdam", "NL")
	q := newQuotation(t, origin, destination)

	fields := quotationFields(origin, destination)
	fields.ValidityDate = time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC)
	fields.Currency = "EUR"
	cmd, err := commands.NewUpdateQuotationCommand(q.ID(), fields)
	require.NoError(t, err)

	quotationRepo := new(MockQuotationRepository)
	quotationRepo.On("Get", ctx, q.ID()).Return(q, nil).Once()
	quotationRepo.On("Update", ctx, q).Return(nil).Once()
	portRepo := new(MockRegistryRepository[*port.Port])
	portRepo.On("Get", ctx, origin.ID()).Return(origin, nil).Once()
	portRepo.On("Get", ctx, destination.ID()).Return(destination, nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("QuotationRepository").Return(quotationRepo).Once()
	uow.On("PortRepository").Return(portRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockQuotationUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewUpdateQuotationCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, fields.ValidityDate, q.Terms().ValidityDate)
	assert.Equal(t, kernel.Currency("EUR"), q.Currency())
}

func TestUpdateQuotationCommandHandler_Handle_ConfirmedQuotationIsClosed(t *testing.T) {
	ctx := t.Context()
	origin := newSeaport(t, "AEJEA", "Jebel Ali", "AE")
	destination := newSeaport(t, "NLRTM", "Rotterdam", "NL")
	q := newQuotation(t, origin, destination)
	require.NoError(t, q.AddCostLine(newLine(t, costline.TypeSell, costline.CategoryFreight, 1200)))
	require.NoError(t, q.Confirm(kernel.NewUUID()))

	cmd, err := commands.NewUpdateQuotationCommand(q.ID(), quotationFields(origin, destination))
	require.NoError(t, err)

	quotationRepo := new(MockQuotationRepository)
	quotationRepo.On("Get", ctx, q.ID()).Return(q, nil).Once()
	portRepo := new(MockRegistryRepository[*port.Port])
	portRepo.On("Get", ctx, origin.ID()).Return(origin, nil).Once()
	portRepo.On("Get", ctx, destination.ID()).Return(destination, nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("QuotationRepository").Return(quotationRepo).Once()
	uow.On("PortRepository").Return(portRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockQuotationUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewUpdateQuotationCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, quotation.ErrQuotationIsClosed)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleIsViolated)
	assert.Equal(t, "Acme Trading LLC", q.Customer())
	quotationRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewUpdateQuotationCommand_Validation(t *testing.T) {
	_, err := commands.NewUpdateQuotationCommand(kernel.NewUUID(), commands.QuotationFields{Mode: "rail"})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	var zero commands.UpdateQuotationCommand
	assert.ErrorIs(t, zero.Validate(), commands.ErrUpdateQuotationCommandIsNotConstructed)
}
