package queries

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/registry"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// registryListing describes how one registry table is searched and labelled.
type registryListing struct {
	table   string
	extra   string
	search  []string
	orderBy string
	label   func(code, name string, extra sql.NullString) string
}

func getRegistryListings() map[registry.Kind]registryListing {
	return map[registry.Kind]registryListing{
		registry.KindPort: {
			table:   "ports",
			extra:   "country",
			search:  []string{"code", "name"},
			orderBy: "name",
			label: func(code, name string, country sql.NullString) string {
				label := "[" + code + "] " + name
				if country.String != "" {
					label += ", " + country.String
				}
				return label
			},
		},
		registry.KindVessel: {
			table:   "vessels",
			extra:   "country",
			search:  []string{"code", "name"},
			orderBy: "name",
			label:   withCountry,
		},
		registry.KindAirline: {
			table:   "airlines",
			extra:   "country",
			search:  []string{"code", "name", "iata"},
			orderBy: "name",
			label:   withCountry,
		},
		registry.KindIncoterm: {
			table:   "incoterms",
			extra:   "NULL",
			search:  []string{"code", "name"},
			orderBy: "code",
			label: func(code, name string, _ sql.NullString) string {
				return code + " - " + name
			},
		},
		// float8 casts to text in its shortest form, so 20 prints as "20" and 33.2 as "33.2".
		registry.KindContainer: {
			table: "container_types",
			extra: `CASE
				WHEN size_ft <> 0 THEN size_ft::text || 'ft'
				WHEN volume <> 0 THEN volume::text || 'm³'
			END`,
			search:  []string{"code", "name"},
			orderBy: "name",
			label: func(code, name string, size sql.NullString) string {
				label := "[" + code + "] " + name
				if size.Valid {
					label += " (" + size.String + ")"
				}
				return label
			},
		},
	}
}

func withCountry(code, name string, country sql.NullString) string {
	label := "[" + code + "] " + name
	if country.String != "" {
		label += " (" + country.String + ")"
	}
	return label
}

// ListRegistryRecordsQueryHandler serves the registry list and autocomplete views.
type ListRegistryRecordsQueryHandler struct {
	db *gorm.DB
}

func NewListRegistryRecordsQueryHandler(db *gorm.DB) ListRegistryRecordsQueryHandler {
	return ListRegistryRecordsQueryHandler{db: db}
}

// Handle returns matching records. Archived records are left out unless the query asks for them.
func (h ListRegistryRecordsQueryHandler) Handle(
	ctx context.Context,
	query ListRegistryRecordsQuery,
) ([]RegistryRecordResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	listing, ok := getRegistryListings()[query.Kind()]
	if !ok {
		return nil, fmt.Errorf("no listing for registry %s", query.Kind())
	}

	var (
		where []string
		args  []any
	)
	if !query.IncludeArchived() {
		where = append(where, "active")
	}
	if search := query.Search(); search != "" {
		codeSearch := search
		if query.Kind() == registry.KindIncoterm {
			codeSearch = strings.ToUpper(search)
		}
		var or []string
		for _, column := range listing.search {
			or = append(or, column+" ILIKE ?")
			if column == "code" {
				args = append(args, "%"+codeSearch+"%")
			} else {
				args = append(args, "%"+search+"%")
			}
		}
		where = append(where, "("+strings.Join(or, " OR ")+")")
	}

	stmt := "SELECT id, code, name, active, " + listing.extra + " FROM " + listing.table
	if len(where) > 0 {
		stmt += " WHERE " + strings.Join(where, " AND ")
	}
	stmt += " ORDER BY " + listing.orderBy + ", code"

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]RegistryRecordResponse, 0)
	for rows.Next() {
		var (
			record RegistryRecordResponse
			id     uuid.UUID
			extra  sql.NullString
		)
		if err = rows.Scan(&id, &record.Code, &record.Name, &record.Active, &extra); err != nil {
			return nil, err
		}
		record.ID = kernel.UUIDFromGoogle(id)
		record.DisplayName = listing.label(record.Code, record.Name, extra)
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
