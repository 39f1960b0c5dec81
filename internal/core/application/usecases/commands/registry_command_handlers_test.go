package commands_test

import (
	"errors"
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/incoterm"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/port"
	"freight/internal/core/domain/model/vessel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jebelAliFields() commands.PortFields {
	return commands.PortFields{
		Code:    "AEJEA",
		Name:    "Jebel Ali",
		Country: "AE",
		Modes:   port.Modes{Ocean: true, Land: true},
		Details: port.Details{Timezone: "Asia/Dubai"},
	}
}

func TestCreatePortCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePortCommand(jebelAliFields())
	require.NoError(t, err)

	repo := new(MockRegistryRepository[*port.Port])
	uow := new(MockUoW)
	factory := new(MockRegistryUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PortRepository").Return(repo).Once(),
		repo.On("CodeExists", ctx, "AEJEA", (*kernel.UUID)(nil)).Return(false, nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*port.Port")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreatePortCommandHandler(factory)
	action, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "port", action.Model)
	assert.Equal(t, commands.ViewModeForm, action.ViewMode)
	assert.False(t, action.ID.IsZero())

	added := repo.Calls[1].Arguments.Get(1).(*port.Port)
	assert.True(t, added.ID().IsEqual(action.ID))
	assert.True(t, added.IsActive())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreatePortCommandHandler_Handle_DuplicateCode(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePortCommand(jebelAliFields())
	require.NoError(t, err)

	repo := new(MockRegistryRepository[*port.Port])
	uow := new(MockUoW)
	factory := new(MockRegistryUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PortRepository").Return(repo).Once(),
		repo.On("CodeExists", ctx, "AEJEA", (*kernel.UUID)(nil)).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreatePortCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreatePortCommandHandler_Handle_NoTransportMode(t *testing.T) {
	ctx := t.Context()
	fields := jebelAliFields()
	fields.Modes = port.Modes{}
	cmd, err := commands.NewCreatePortCommand(fields)
	require.NoError(t, err)

	repo := new(MockRegistryRepository[*port.Port])
	uow := new(MockUoW)
	factory := new(MockRegistryUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PortRepository").Return(repo).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreatePortCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, port.ErrNoTransportMode)
	repo.AssertNotCalled(t, "CodeExists", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePortCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePortCommand(jebelAliFields())
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockRegistryUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewCreatePortCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}

func TestCreatePortCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockRegistryUoWFactory)
	handler := commands.NewCreatePortCommandHandler(factory)

	_, err := handler.Handle(t.Context(), commands.CreatePortCommand{})

	require.ErrorIs(t, err, commands.ErrCreatePortCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateIncotermCommandHandler_Handle_ChecksNormalizedCode(t *testing.T) {
	ctx := t.Context()
	existing, err := incoterm.NewIncoterm(kernel.NewUUID(), "FOB", "Free on Board", incoterm.Details{Group: incoterm.GroupF})
	require.NoError(t, err)
	id := existing.ID()

	cmd, err := commands.NewUpdateIncotermCommand(id, commands.IncotermFields{
		Code:    "fca",
		Name:    "Free Carrier",
		Details: incoterm.Details{Group: incoterm.GroupF},
	})
	require.NoError(t, err)

	repo := new(MockRegistryRepository[*incoterm.Incoterm])
	uow := new(MockUoW)
	factory := new(MockRegistryUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("IncotermRepository").Return(repo).Once(),
		repo.On("Get", ctx, id).Return(existing, nil).Once(),
		repo.On("CodeExists", ctx, "FCA", &id).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateIncotermCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	var already *errs.ObjectAlreadyExistsError
	require.ErrorAs(t, err, &already)
	assert.Equal(t, "FCA", already.Value)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateVesselCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing, err := vessel.NewVessel(kernel.NewUUID(), "MSCGUL", "MSC Gulsun", "PA", vessel.Details{})
	require.NoError(t, err)
	id := existing.ID()

	cmd, err := commands.NewUpdateVesselCommand(id, commands.VesselFields{
		Code:    "MSCGUL",
		Name:    "MSC Gülsün",
		Country: "PA",
		Details: vessel.Details{IMO: "9839430", TEUCapacity: 23756},
	})
	require.NoError(t, err)

	repo := new(MockRegistryRepository[*vessel.Vessel])
	uow := new(MockUoW)
	factory := new(MockRegistryUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VesselRepository").Return(repo).Once(),
		repo.On("Get", ctx, id).Return(existing, nil).Once(),
		repo.On("CodeExists", ctx, "MSCGUL", &id).Return(false, nil).Once(),
		repo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateVesselCommandHandler(factory)
	action, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, action.ID.IsEqual(id))
	assert.Equal(t, "9839430", existing.Details().IMO)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateVesselCommandHandler_Handle_InvalidIMOKeepsRecord(t *testing.T) {
	ctx := t.Context()
	existing, err := vessel.NewVessel(kernel.NewUUID(), "MSCGUL", "MSC Gulsun", "PA", vessel.Details{})
	require.NoError(t, err)
	id := existing.ID()

	cmd, err := commands.NewUpdateVesselCommand(id, commands.VesselFields{
		Code:    "MSCGUL2",
		Name:    "MSC Gulsun",
		Country: "PA",
		Details: vessel.Details{IMO: "98394"},
	})
	require.NoError(t, err)

	repo := new(MockRegistryRepository[*vessel.Vessel])
	uow := new(MockUoW)
	factory := new(MockRegistryUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VesselRepository").Return(repo).Once(),
		repo.On("Get", ctx, id).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateVesselCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, "MSCGUL", existing.Code())
}

func TestUpdatePortCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdatePortCommand(id, jebelAliFields())
	require.NoError(t, err)

	repo := new(MockRegistryRepository[*port.Port])
	uow := new(MockUoW)
	factory := new(MockRegistryUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PortRepository").Return(repo).Once(),
		repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("port", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdatePortCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
