package commands_test

import (
	"errors"
	"testing"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/costline"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/port"
	"freight/internal/core/domain/model/quotation"
	"freight/internal/core/domain/model/saleorder"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmQuotationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	q := newQuotation(t, newSeaport(t, "AEJEA", "Jebel Ali", "AE"), newSeaport(t, "NLRTM", "Rotterdam", "NL"))
	require.NoError(t, q.AddCostLine(newLine(t, costline.TypeSell, costline.CategoryFreight, 2400)))
	require.NoError(t, q.AddCostLine(newLine(t, costline.TypeBuy, costline.CategoryFreight, 1800)))
	require.NoError(t, q.AddCostLine(newLine(t, costline.TypeSell, costline.CategoryCustoms, 120)))

	cmd, err := commands.NewConfirmQuotationCommand(q.ID())
	require.NoError(t, err)

	quotationRepo := new(MockQuotationRepository)
	saleOrderRepo := new(MockSaleOrderRepository)
	sequence := new(MockSequenceGenerator)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	var order *saleorder.SaleOrder
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuotationRepository").Return(quotationRepo).Once(),
		quotationRepo.On("Get", ctx, q.ID()).Return(q, nil).Once(),
		uow.On("SequenceGenerator").Return(sequence).Once(),
		sequence.On("Next", ctx, ports.SequenceSaleOrder).Return("SO/00003", nil).Once(),
		uow.On("SaleOrderRepository").Return(saleOrderRepo).Once(),
		saleOrderRepo.On("Add", ctx, mock.AnythingOfType("*saleorder.SaleOrder")).
			Run(func(args mock.Arguments) { order = args.Get(1).(*saleorder.SaleOrder) }).
			Return(nil).Once(),
		quotationRepo.On("Update", ctx, q).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewConfirmQuotationCommandHandler(factory, clock)
	action, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, commands.ModelSaleOrder, action.Model)
	assert.True(t, action.ID.IsEqual(order.ID()))
	assert.Equal(t, "SO/00003", order.Reference())
	assert.Len(t, order.Lines(), 2)
	assert.True(t, order.Total().Equal(decimal.NewFromInt(2520)))
	assert.Equal(t, quotation.Confirmed, q.Status())
	require.NotNil(t, q.SaleOrderID())
	assert.True(t, q.SaleOrderID().IsEqual(order.ID()))
	uow.AssertExpectations(t)
}

func TestConfirmQuotationCommandHandler_Handle_NoCostLines(t *testing.T) {
	ctx := t.Context()
	q := newQuotation(t, newSeaport(t, "AEJEA", "Jebel Ali", "AE"), newSeaport(t, "NLRTM", "Rotterdam", "NL"))
	cmd, err := commands.NewConfirmQuotationCommand(q.ID())
	require.NoError(t, err)

	quotationRepo := new(MockQuotationRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuotationRepository").Return(quotationRepo).Once(),
		quotationRepo.On("Get", ctx, q.ID()).Return(q, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewConfirmQuotationCommandHandler(factory, clock)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, quotation.ErrNoCostLines)
	require.ErrorIs(t, err, errs.ErrBusinessRuleIsViolated)
	assert.Equal(t, quotation.Draft, q.Status())
	uow.AssertNotCalled(t, "SequenceGenerator")
	uow.AssertNotCalled(t, "SaleOrderRepository")
}

func confirmedQuotation(t *testing.T) (*quotation.Quotation, *port.Port, *port.Port) {
	t.Helper()
	origin := newSeaport(t, "AEJEA", "Jebel Ali", "AE")
	destination := newSeaport(t, "NLRTM", "Rotterdam", "NL")
	q := newQuotation(t, origin, destination)
	require.NoError(t, q.AddCostLine(newLine(t, costline.TypeSell, costline.CategoryFreight, 2400)))
	require.NoError(t, q.AddCostLine(newLine(t, costline.TypeBuy, costline.CategoryHandling, 300)))
	require.NoError(t, q.Confirm(kernel.NewUUID()))
	return q, origin, destination
}

func TestCreateShipmentFromQuotationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	q, origin, destination := confirmedQuotation(t)
	cmd, err := commands.NewCreateShipmentFromQuotationCommand(q.ID())
	require.NoError(t, err)

	quotationRepo := new(MockQuotationRepository)
	portRepo := new(MockRegistryRepository[*port.Port])
	shipmentRepo := new(MockShipmentRepository)
	sequence := new(MockSequenceGenerator)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	var booked *shipment.Shipment
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuotationRepository").Return(quotationRepo).Once(),
		quotationRepo.On("Get", ctx, q.ID()).Return(q, nil).Once(),
		uow.On("PortRepository").Return(portRepo).Once(),
		portRepo.On("Get", ctx, origin.ID()).Return(origin, nil).Once(),
		portRepo.On("Get", ctx, destination.ID()).Return(destination, nil).Once(),
		uow.On("SequenceGenerator").Return(sequence).Once(),
		sequence.On("Next", ctx, ports.SequenceShipment).Return("FS/00011", nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).
			Run(func(args mock.Arguments) { booked = args.Get(1).(*shipment.Shipment) }).
			Return(nil).Once(),
		quotationRepo.On("Update", ctx, q).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateShipmentFromQuotationCommandHandler(factory, clock)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.True(t, result.OK)
	require.NotNil(t, booked)
	assert.Equal(t, commands.OpenForm(commands.ModelShipment, booked.ID()), result.Action)
	assert.Equal(t, "FS/00011", booked.Reference())
	assert.Equal(t, shipment.StatusBooking, booked.Status())
	assert.Equal(t, fixedNow, booked.Booking().BookingDate)
	assert.True(t, booked.TotalSellCost().Equal(decimal.NewFromInt(2700)))
	assert.True(t, booked.TotalBuyCost().IsZero())
	require.NotNil(t, q.ShipmentID())
	assert.True(t, q.ShipmentID().IsEqual(booked.ID()))
	uow.AssertExpectations(t)
}

func TestCreateShipmentFromQuotationCommandHandler_Handle_NotConfirmed(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(t *testing.T) *quotation.Quotation
	}{
		{
			name: "draft",
			prepare: func(t *testing.T) *quotation.Quotation {
				return newQuotation(t, newSeaport(t, "AEJEA", "Jebel Ali", "AE"), newSeaport(t, "NLRTM", "Rotterdam", "NL"))
			},
		},
		{
			name: "already converted",
			prepare: func(t *testing.T) *quotation.Quotation {
				q, _, _ := confirmedQuotation(t)
				require.NoError(t, q.LinkShipment(kernel.NewUUID()))
				return q
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			q := tt.prepare(t)
			cmd, err := commands.NewCreateShipmentFromQuotationCommand(q.ID())
			require.NoError(t, err)

			quotationRepo := new(MockQuotationRepository)
			uow := new(MockUoW)
			factory := new(MockUoWFactory)

			mock.InOrder(
				factory.On("Create").Return(uow).Once(),
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("QuotationRepository").Return(quotationRepo).Once(),
				quotationRepo.On("Get", ctx, q.ID()).Return(q, nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			handler := commands.NewCreateShipmentFromQuotationCommandHandler(factory, clock)
			result, err := handler.Handle(ctx, cmd)

			require.NoError(t, err)
			assert.False(t, result.OK)
			uow.AssertNotCalled(t, "SequenceGenerator")
			uow.AssertNotCalled(t, "ShipmentRepository")
			uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestChangeQuotationStateCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name    string
		start   func(q *quotation.Quotation)
		action  commands.QuotationAction
		want    quotation.Status
		wantErr error
	}{
		{name: "send draft", action: commands.QuotationActionSend, want: quotation.Sent},
		{name: "cancel draft", action: commands.QuotationActionCancel, want: quotation.Cancelled},
		{name: "expire sent", start: func(q *quotation.Quotation) { _ = q.Send() }, action: commands.QuotationActionExpire, want: quotation.Expired},
		{name: "reset cancelled", start: func(q *quotation.Quotation) { q.Cancel() }, action: commands.QuotationActionResetToDraft, want: quotation.Draft},
		{
			name:    "send cancelled",
			start:   func(q *quotation.Quotation) { q.Cancel() },
			action:  commands.QuotationActionSend,
			want:    quotation.Cancelled,
			wantErr: errs.ErrBusinessRuleIsViolated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			q := newQuotation(t, newSeaport(t, "AEJEA", "Jebel Ali", "AE"), newSeaport(t, "NLRTM", "Rotterdam", "NL"))
			if tt.start != nil {
				tt.start(q)
			}
			cmd, err := commands.NewChangeQuotationStateCommand(q.ID(), tt.action)
			require.NoError(t, err)

			repo := new(MockQuotationRepository)
			repo.On("Get", ctx, q.ID()).Return(q, nil).Once()
			uow := new(MockUoW)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("QuotationRepository").Return(repo).Once()
			uow.On("Rollback", ctx).Return(nil).Once()
			if tt.wantErr == nil {
				repo.On("Update", ctx, q).Return(nil).Once()
				uow.On("Commit", ctx).Return(nil).Once()
			}
			factory := new(MockQuotationUoWFactory)
			factory.On("Create").Return(uow).Once()

			handler := commands.NewChangeQuotationStateCommandHandler(factory)
			err = handler.Handle(ctx, cmd)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, q.Status())
			assert.Equal(t, "FQ/00001", q.Reference())
			repo.AssertExpectations(t)
			uow.AssertExpectations(t)
		})
	}
}

func TestNewChangeQuotationStateCommand_UnknownAction(t *testing.T) {
	_, err := commands.NewChangeQuotationStateCommand(kernel.NewUUID(), "confirm")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestExpireOverdueQuotationsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	origin := newSeaport(t, "AEJEA", "Jebel Ali", "AE")
	destination := newSeaport(t, "NLRTM", "Rotterdam", "NL")
	first := newQuotation(t, origin, destination)
	second := newQuotation(t, origin, destination)
	require.NoError(t, second.Send())

	asOf := fixedNow.AddDate(0, 2, 0)
	cmd, err := commands.NewExpireOverdueQuotationsCommand(asOf)
	require.NoError(t, err)

	repo := new(MockQuotationRepository)
	uow := new(MockUoW)
	factory := new(MockQuotationUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuotationRepository").Return(repo).Once(),
		repo.On("GetAllOverdue", ctx, asOf).Return([]*quotation.Quotation{first, second}, nil).Once(),
		repo.On("Update", ctx, first).Return(nil).Once(),
		repo.On("Update", ctx, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewExpireOverdueQuotationsCommandHandler(factory)
	expired, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, expired)
	assert.Equal(t, quotation.Expired, first.Status())
	assert.Equal(t, quotation.Expired, second.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestExpireOverdueQuotationsCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	q := newQuotation(t, newSeaport(t, "AEJEA", "Jebel Ali", "AE"), newSeaport(t, "NLRTM", "Rotterdam", "NL"))
	cmd, err := commands.NewExpireOverdueQuotationsCommand(fixedNow.AddDate(0, 2, 0))
	require.NoError(t, err)

	repo := new(MockQuotationRepository)
	repo.On("GetAllOverdue", ctx, mock.Anything).Return([]*quotation.Quotation{q}, nil).Once()
	repo.On("Update", ctx, q).Return(errors.New("database error")).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("QuotationRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockQuotationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewExpireOverdueQuotationsCommandHandler(factory)
	expired, err := handler.Handle(ctx, cmd)

	require.EqualError(t, err, "database error")
	assert.Zero(t, expired)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestExpireOverdueQuotationsCommandHandler_Handle_NothingOverdue(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewExpireOverdueQuotationsCommand(fixedNow)
	require.NoError(t, err)

	repo := new(MockQuotationRepository)
	repo.On("GetAllOverdue", ctx, fixedNow).Return([]*quotation.Quotation{}, nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("QuotationRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockQuotationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewExpireOverdueQuotationsCommandHandler(factory)
	expired, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, expired)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewExpireOverdueQuotationsCommand_ZeroDate(t *testing.T) {
	_, err := commands.NewExpireOverdueQuotationsCommand(time.Time{})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
