package commands

import (
	"context"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/registry"
	"freight/internal/core/ports"
)

// SetRegistryRecordActiveCommandHandler flips the active flag of a record of any kind.
type SetRegistryRecordActiveCommandHandler struct {
	uowFactory RegistryUoWFactory
}

func NewSetRegistryRecordActiveCommandHandler(uowFactory RegistryUoWFactory) SetRegistryRecordActiveCommandHandler {
	return SetRegistryRecordActiveCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h SetRegistryRecordActiveCommandHandler) Handle(ctx context.Context, cmd SetRegistryRecordActiveCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var err error
	switch cmd.Kind() {
	case registry.KindPort:
		err = setActive(ctx, uow.PortRepository(), cmd.ID(), cmd.Active())
	case registry.KindVessel:
		err = setActive(ctx, uow.VesselRepository(), cmd.ID(), cmd.Active())
	case registry.KindAirline:
		err = setActive(ctx, uow.AirlineRepository(), cmd.ID(), cmd.Active())
	case registry.KindIncoterm:
		err = setActive(ctx, uow.IncotermRepository(), cmd.ID(), cmd.Active())
	case registry.KindContainer:
		err = setActive(ctx, uow.ContainerRepository(), cmd.ID(), cmd.Active())
	default:
		err = fmt.Errorf("unsupported registry kind %q", cmd.Kind())
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func setActive[T registry.Record](ctx context.Context, repo ports.RegistryRepository[T], id kernel.UUID, active bool) error {
	record, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if record.IsActive() == active {
		return nil
	}
	record.SetActive(active)
	return repo.Update(ctx, record)
}
