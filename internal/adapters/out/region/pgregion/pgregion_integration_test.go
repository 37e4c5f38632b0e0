package pgregion_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"supplychain/internal/adapters/out/region/pgregion"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ProviderIntegrationTestSuite runs the region contract against a PostgreSQL container.
type ProviderIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *ProviderIntegrationTestSuite) SetupSuite() {
	if testing.Short() {
		suite.T().Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	container, err := postgres.Run(ctx,
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
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *ProviderIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.AutoMigrate(&pgregion.RegionDTO{}, &pgregion.RegionBlockDTO{}))
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE regions, region_blocks").Error)
}

func (suite *ProviderIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProviderIntegrationTestSuite) TestWriteAt_SpansBlocks() {
	ctx := context.Background()
	provider, err := pgregion.New(suite.db)
	suite.Require().NoError(err)

	r, err := provider.Region(ctx, "order/records")
	suite.Require().NoError(err)

	payload := make([]byte, 6000)
	for i := range payload {
		payload[i] = byte(i)
	}
	suite.Require().NoError(r.WriteAt(ctx, payload, 3000))

	got := make([]byte, len(payload))
	suite.Require().NoError(r.ReadAt(ctx, got, 3000))
	suite.Equal(payload, got)

	size, err := r.Size(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(9000), size)

	var blocks int64
	suite.Require().NoError(suite.db.Model(&pgregion.RegionBlockDTO{}).Count(&blocks).Error)
	suite.Equal(int64(3), blocks)
}

func (suite *ProviderIntegrationTestSuite) TestRegion_SurvivesNewProvider() {
	ctx := context.Background()

	first, err := pgregion.New(suite.db)
	suite.Require().NoError(err)
	r, err := first.Region(ctx, "user/counter")
	suite.Require().NoError(err)
	suite.Require().NoError(r.WriteAt(ctx, []byte{0, 0, 0, 0, 0, 0, 0, 3}, 0))

	second, err := pgregion.New(suite.db)
	suite.Require().NoError(err)
	r, err = second.Region(ctx, "user/counter")
	suite.Require().NoError(err)

	buf := make([]byte, 8)
	suite.Require().NoError(r.ReadAt(ctx, buf, 0))
	suite.Equal([]byte{0, 0, 0, 0, 0, 0, 0, 3}, buf)
}

func (suite *ProviderIntegrationTestSuite) TestWriteAt_ConcurrentWritersOnOneBlock() {
	ctx := context.Background()
	provider, err := pgregion.New(suite.db)
	suite.Require().NoError(err)
	r, err := provider.Region(ctx, "shipment/records")
	suite.Require().NoError(err)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			suite.NoError(r.WriteAt(ctx, []byte{byte(i + 1)}, int64(i)))
		}(i)
	}
	wg.Wait()

	buf := make([]byte, 16)
	suite.Require().NoError(r.ReadAt(ctx, buf, 0))
	for i := range buf {
		suite.Equal(byte(i+1), buf[i])
	}
}

func (suite *ProviderIntegrationTestSuite) TestSize_UnknownTagIsZero() {
	provider, err := pgregion.New(suite.db)
	suite.Require().NoError(err)
	r, err := provider.Region(context.Background(), "never/written")
	suite.Require().NoError(err)

	size, err := r.Size(context.Background())
	suite.Require().NoError(err)
	suite.Zero(size)
}

func TestProviderIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProviderIntegrationTestSuite))
}
