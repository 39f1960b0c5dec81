package commands

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/registry"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// registryWriter runs the create and update flows shared by every registry kind.
type registryWriter[T registry.Record] struct {
	uowFactory RegistryUoWFactory
	kind       registry.Kind
	repo       func(RegistryUoW) ports.RegistryRepository[T]
}

func (w registryWriter[T]) create(ctx context.Context, build func(id kernel.UUID) (T, error)) (Action, error) {
	uow := w.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return Action{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := w.repo(uow)
	record, err := build(kernel.NewUUID())
	if err != nil {
		return Action{}, err
	}

	if err = w.ensureUniqueCode(ctx, repo, record, nil); err != nil {
		return Action{}, err
	}

	if err = repo.Add(ctx, record); err != nil {
		return Action{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return Action{}, err
	}

	return OpenForm(w.kind.String(), record.ID()), nil
}

func (w registryWriter[T]) update(ctx context.Context, id kernel.UUID, apply func(T) error) (Action, error) {
	uow := w.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return Action{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := w.repo(uow)
	record, err := repo.Get(ctx, id)
	if err != nil {
		return Action{}, err
	}

	if err = apply(record); err != nil {
		return Action{}, err
	}

	if err = w.ensureUniqueCode(ctx, repo, record, &id); err != nil {
		return Action{}, err
	}

	if err = repo.Update(ctx, record); err != nil {
		return Action{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return Action{}, err
	}

	return OpenForm(w.kind.String(), record.ID()), nil
}

// ensureUniqueCode compares the normalized code exactly, so "jfk" and "JFK" are distinct ports.
func (w registryWriter[T]) ensureUniqueCode(
	ctx context.Context,
	repo ports.RegistryRepository[T],
	record T,
	excludeID *kernel.UUID,
) error {
	exists, err := repo.CodeExists(ctx, record.Code(), excludeID)
	if err != nil {
		return err
	}
	if exists {
		return errs.NewObjectAlreadyExistsError(w.kind.String()+" code", record.Code())
	}
	return nil
}
