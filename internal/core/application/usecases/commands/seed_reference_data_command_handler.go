package commands

import (
	"context"

	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/incoterm"
	"freight/internal/core/domain/model/kernel"
)

// SeedResult counts the records inserted by one seeding run.
type SeedResult struct {
	Incoterms  int
	Containers int
}

// SeedReferenceDataCommandHandler inserts the Incoterms 2020 rules and the standard
// ISO containers whose codes are not registered yet. Running it again inserts nothing.
type SeedReferenceDataCommandHandler struct {
	uowFactory RegistryUoWFactory
}

func NewSeedReferenceDataCommandHandler(uowFactory RegistryUoWFactory) SeedReferenceDataCommandHandler {
	return SeedReferenceDataCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h SeedReferenceDataCommandHandler) Handle(ctx context.Context, cmd SeedReferenceDataCommand) (SeedResult, error) {
	if err := cmd.Validate(); err != nil {
		return SeedResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SeedResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var result SeedResult

	incoterms := uow.IncotermRepository()
	for _, std := range incoterm.Standard2020() {
		exists, err := incoterms.CodeExists(ctx, std.Code, nil)
		if err != nil {
			return SeedResult{}, err
		}
		if exists {
			continue
		}

		term, err := incoterm.NewIncoterm(kernel.NewUUID(), std.Code, std.Name, std.Details)
		if err != nil {
			return SeedResult{}, err
		}
		if err = incoterms.Add(ctx, term); err != nil {
			return SeedResult{}, err
		}
		result.Incoterms++
	}

	containers := uow.ContainerRepository()
	for _, std := range container.StandardContainers() {
		exists, err := containers.CodeExists(ctx, std.Code, nil)
		if err != nil {
			return SeedResult{}, err
		}
		if exists {
			continue
		}

		box, err := container.NewContainer(kernel.NewUUID(), std.Code, std.Name, std.Details())
		if err != nil {
			return SeedResult{}, err
		}
		if err = containers.Add(ctx, box); err != nil {
			return SeedResult{}, err
		}
		result.Containers++
	}

	if err := uow.Commit(ctx); err != nil {
		return SeedResult{}, err
	}

	return result, nil
}
