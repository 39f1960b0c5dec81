// Package registryrepo persists the reference registries (ports, vessels,
// airlines, incoterms and container types). All five share one generic gorm
// repository and differ only in their DTO and its mapping functions.
package registryrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/airline"
	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/incoterm"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/port"
	"freight/internal/core/domain/model/registry"
	"freight/internal/core/domain/model/vessel"
	"freight/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormRepository implements ports.RegistryRepository for one registry kind.
// T is the domain record, D its gorm DTO.
type GormRepository[T registry.Record, D any] struct {
	db         *gorm.DB
	tracker    aggregateTracker
	kind       registry.Kind
	fromDomain func(T) D
	toDomain   func(D) (T, error)
}

func NewGormPortRepository(db *gorm.DB, tracker aggregateTracker) *GormRepository[*port.Port, PortDTO] {
	return &GormRepository[*port.Port, PortDTO]{
		db: db, tracker: tracker, kind: registry.KindPort, fromDomain: portFromDomain, toDomain: portToDomain,
	}
}

func NewGormVesselRepository(db *gorm.DB, tracker aggregateTracker) *GormRepository[*vessel.Vessel, VesselDTO] {
	return &GormRepository[*vessel.Vessel, VesselDTO]{
		db: db, tracker: tracker, kind: registry.KindVessel, fromDomain: vesselFromDomain, toDomain: vesselToDomain,
	}
}

func NewGormAirlineRepository(db *gorm.DB, tracker aggregateTracker) *GormRepository[*airline.Airline, AirlineDTO] {
	return &GormRepository[*airline.Airline, AirlineDTO]{
		db: db, tracker: tracker, kind: registry.KindAirline, fromDomain: airlineFromDomain, toDomain: airlineToDomain,
	}
}

func NewGormIncotermRepository(db *gorm.DB, tracker aggregateTracker) *GormRepository[*incoterm.Incoterm, IncotermDTO] {
	return &GormRepository[*incoterm.Incoterm, IncotermDTO]{
		db: db, tracker: tracker, kind: registry.KindIncoterm, fromDomain: incotermFromDomain, toDomain: incotermToDomain,
	}
}

func NewGormContainerRepository(db *gorm.DB, tracker aggregateTracker) *GormRepository[*container.Container, ContainerDTO] {
	return &GormRepository[*container.Container, ContainerDTO]{
		db: db, tracker: tracker, kind: registry.KindContainer, fromDomain: containerFromDomain, toDomain: containerToDomain,
	}
}

// Add saves a new record.
func (r *GormRepository[T, D]) Add(ctx context.Context, record T) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := r.fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return r.translate(record, err)
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Update saves an existing record, active flag included.
func (r *GormRepository[T, D]) Update(ctx context.Context, record T) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := r.fromDomain(record)
	// Select("*") writes zero values too, so clearing a field or archiving sticks.
	result := r.db.WithContext(ctx).Model(new(D)).Where("id = ?", record.ID().Bytes()).Select("*").Updates(&dto)
	if result.Error != nil {
		return r.translate(record, result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(r.kind.String(), record.ID().String())
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Get retrieves a record by id.
func (r *GormRepository[T, D]) Get(ctx context.Context, id kernel.UUID) (T, error) {
	var zero T
	if err := id.Validate(); err != nil {
		return zero, err
	}

	var dto D
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, errs.NewObjectNotFoundError(r.kind.String(), id.String())
		}
		return zero, err
	}

	return r.toDomain(dto)
}

// CodeExists reports whether a record other than excludeID uses code.
func (r *GormRepository[T, D]) CodeExists(ctx context.Context, code string, excludeID *kernel.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(new(D)).Where("code = ?", code)
	if excludeID != nil {
		query = query.Where("id <> ?", excludeID.Bytes())
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// translate maps a unique violation on the code column to ObjectAlreadyExistsError.
func (r *GormRepository[T, D]) translate(record T, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errs.NewObjectAlreadyExistsErrorWithCause(r.kind.String()+" code", record.Code(), err)
	}
	return err
}
