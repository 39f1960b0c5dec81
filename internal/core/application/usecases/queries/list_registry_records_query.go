// Package queries contains the read side of the service. Handlers read straight
// from the database and return flat read models for list and detail views.
package queries

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/registry"
	"freight/internal/pkg/guard"
)

var ErrListRegistryRecordsQueryIsNotConstructed = errors.New(
	"ListRegistryRecordsQuery must be created via NewListRegistryRecordsQuery constructor",
)

// ListRegistryRecordsQuery searches one registry by code or name.
//
// Example:
//
//	query, err := NewListRegistryRecordsQuery(registry.KindPort, "jebel", false)
//	if err != nil {
//	    return err
//	}
//	ports, err := NewListRegistryRecordsQueryHandler(db).Handle(ctx, query)
type ListRegistryRecordsQuery struct {
	kind            registry.Kind
	search          string
	includeArchived bool

	guard guard.ConstructorGuard
}

func NewListRegistryRecordsQuery(kind registry.Kind, search string, includeArchived bool) (ListRegistryRecordsQuery, error) {
	if _, err := registry.ParseKind(kind.String()); err != nil {
		return ListRegistryRecordsQuery{}, err
	}
	return ListRegistryRecordsQuery{
		kind:            kind,
		search:          strings.TrimSpace(search),
		includeArchived: includeArchived,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (q ListRegistryRecordsQuery) Validate() error {
	return q.guard.Validate(ErrListRegistryRecordsQueryIsNotConstructed)
}

func (q ListRegistryRecordsQuery) Kind() registry.Kind {
	return q.kind
}

func (q ListRegistryRecordsQuery) Search() string {
	return q.search
}

func (q ListRegistryRecordsQuery) IncludeArchived() bool {
	return q.includeArchived
}

// RegistryRecordResponse is one row of a registry list view.
type RegistryRecordResponse struct {
	ID          kernel.UUID
	Code        string
	Name        string
	DisplayName string
	Active      bool
}
