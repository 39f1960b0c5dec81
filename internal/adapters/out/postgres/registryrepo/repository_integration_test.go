package registryrepo_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/registryrepo"
	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/incoterm"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/port"
	"freight/internal/core/domain/model/vessel"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// RegistryRepositoryIntegrationTestSuite covers the generic registry repository
// through the port, vessel, incoterm and container instantiations.
type RegistryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	tracker   *MockAggregateTracker
}

func (suite *RegistryRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pg, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = pg

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&registryrepo.PortDTO{},
		&registryrepo.VesselDTO{},
		&registryrepo.AirlineDTO{},
		&registryrepo.IncotermDTO{},
		&registryrepo.ContainerDTO{},
	))
}

func (suite *RegistryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE ports, vessels, airlines, incoterms, container_types").Error)
	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *RegistryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RegistryRepositoryIntegrationTestSuite) TestPort_RoundTrip() {
	ctx := context.Background()
	repo := registryrepo.NewGormPortRepository(suite.db, suite.tracker)

	location, err := kernel.NewGeoPoint(25.0112, 55.0612)
	suite.Require().NoError(err)
	p, err := port.NewPort(kernel.NewUUID(), "AEJEA", "Jebel Ali", "ae", port.Modes{Ocean: true, Land: true},
		port.Details{State: "Dubai", Timezone: "Asia/Dubai", Location: &location})
	suite.Require().NoError(err)

	suite.Require().NoError(repo.Add(ctx, p))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", p.ID(), p)

	stored, err := repo.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal("AEJEA", stored.Code())
	suite.Equal(kernel.CountryCode("AE"), stored.Country())
	suite.Equal(port.Modes{Ocean: true, Land: true}, stored.Modes())
	suite.Require().NotNil(stored.Details().Location)
	suite.InDelta(25.0112, stored.Details().Location.Latitude(), 1e-9)
	suite.True(stored.IsActive())
}

func (suite *RegistryRepositoryIntegrationTestSuite) TestPort_UpdateArchivesAndClearsLocation() {
	ctx := context.Background()
	repo := registryrepo.NewGormPortRepository(suite.db, suite.tracker)

	location, err := kernel.NewGeoPoint(51.95, 4.14)
	suite.Require().NoError(err)
	p, err := port.NewPort(kernel.NewUUID(), "NLRTM", "Rotterdam", "NL", port.Modes{Ocean: true},
		port.Details{Location: &location})
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(ctx, p))

	suite.Require().NoError(p.Update("NLRTM", "Port of Rotterdam", "NL", port.Modes{Ocean: true}, port.Details{}))
	p.SetActive(false)
	suite.Require().NoError(repo.Update(ctx, p))

	stored, err := repo.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal("Port of Rotterdam", stored.Name())
	suite.Nil(stored.Details().Location)
	suite.False(stored.IsActive())
}

func (suite *RegistryRepositoryIntegrationTestSuite) TestCodeUniqueness() {
	ctx := context.Background()
	repo := registryrepo.NewGormVesselRepository(suite.db, suite.tracker)

	first, err := vessel.NewVessel(kernel.NewUUID(), "MSC-OSCAR", "MSC Oscar", "PA", vessel.Details{IMO: "9703291"})
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(ctx, first))

	exists, err := repo.CodeExists(ctx, "MSC-OSCAR", nil)
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = repo.CodeExists(ctx, "MSC-OSCAR", ptr(first.ID()))
	suite.Require().NoError(err)
	suite.False(exists, "a record does not collide with itself")

	exists, err = repo.CodeExists(ctx, "msc-oscar", nil)
	suite.Require().NoError(err)
	suite.False(exists, "codes compare case-sensitively")

	second, err := vessel.NewVessel(kernel.NewUUID(), "MSC-OSCAR", "Another", "PA", vessel.Details{})
	suite.Require().NoError(err)
	err = repo.Add(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *RegistryRepositoryIntegrationTestSuite) TestIncotermAndContainer_RoundTrip() {
	ctx := context.Background()
	incoterms := registryrepo.NewGormIncotermRepository(suite.db, suite.tracker)
	containers := registryrepo.NewGormContainerRepository(suite.db, suite.tracker)

	std := incoterm.Standard2020()[0]
	term, err := incoterm.NewIncoterm(kernel.NewUUID(), std.Code, std.Name, std.Details)
	suite.Require().NoError(err)
	suite.Require().NoError(incoterms.Add(ctx, term))

	storedTerm, err := incoterms.Get(ctx, term.ID())
	suite.Require().NoError(err)
	suite.Equal(term.Code(), storedTerm.Code())
	suite.Equal(term.Details(), storedTerm.Details())

	box, err := container.NewContainer(kernel.NewUUID(), "20DC", "20ft Dry", container.Details{
		IsContainer: true,
		Type:        container.TypeDry,
		Size:        20,
		Internal:    container.Dimensions{Length: 5.9, Width: 2.35, Height: 2.39},
		DailyRate:   decimal.RequireFromString("12.50"),
		Currency:    "USD",
	})
	suite.Require().NoError(err)
	suite.Require().NoError(containers.Add(ctx, box))

	storedBox, err := containers.Get(ctx, box.ID())
	suite.Require().NoError(err)
	suite.InDelta(box.Volume(), storedBox.Volume(), 1e-9)
	suite.True(storedBox.Details().DailyRate.Equal(decimal.RequireFromString("12.5")))
	suite.Equal(box.DisplayName(), storedBox.DisplayName())
}

func (suite *RegistryRepositoryIntegrationTestSuite) TestGetAndUpdateMissing() {
	ctx := context.Background()
	repo := registryrepo.NewGormPortRepository(suite.db, suite.tracker)

	_, err := repo.Get(ctx, kernel.NewUUID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	p, err := port.NewPort(kernel.NewUUID(), "DXB", "Dubai Intl", "AE", port.Modes{Air: true}, port.Details{})
	suite.Require().NoError(err)
	suite.ErrorIs(repo.Update(ctx, p), errs.ErrObjectNotFound)
}

func ptr[T any](v T) *T {
	return &v
}

func TestRegistryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryRepositoryIntegrationTestSuite))
}
