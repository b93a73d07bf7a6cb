//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"rovera-leads/cmd/bootstrap"
	"rovera-leads/cmd/bootstrap/components"
	"rovera-leads/internal/pkg/config"
	"rovera-leads/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/fx"
)

var (
	mongoContainerOnce sync.Once
	mongoTestContainer testcontainers.Container
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// ------------------------------------------------------------
// Per test process setup
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*mongo.Collection, *gin.Engine, config.Config) {
	mongoInfo := startContainers(t)

	cfg := createTestConfig(mongoInfo)

	coll, router, app := buildE2EApp(cfg)
	require.NotNil(t, router, "Failed to set up router")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		// each process owns its database, drop it before the client closes
		if err := coll.Database().Drop(ctx); err != nil {
			slog.Warn("Failed to drop test database", "database", cfg.Mongo.Database, "error", err.Error())
		}
		if err := app.Stop(ctx); err != nil {
			slog.Warn("Failed to stop fx application", "error", err.Error())
		}
	})

	slog.Info("E2E environment ready",
		"mongo_host", mongoInfo.Host,
		"mongo_port", mongoInfo.Port.Port(),
		"database", cfg.Mongo.Database)

	return coll, router, cfg
}

func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startMongoContainerOnce(t)

	mongoInfo, err := getContainerHostPort(mongoTestContainer, "27017/tcp")
	require.NoError(t, err, "Failed to read mongo container address")

	return mongoInfo
}

func createTestConfig(mongoInfo ContainerInfo) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.Mongo.URI = fmt.Sprintf("mongodb://%s:%s", mongoInfo.Host, mongoInfo.Port.Port())
	// a database per process keeps parallel packages apart
	testConfig.Mongo.Database = "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	return testConfig
}

// ------------------------------------------------------------
// Builds the application graph the way cmd/main.go does, minus the HTTP server.
// Returns the leads collection, router and fx.App for lifecycle management.
// ------------------------------------------------------------
func buildE2EApp(testConfig config.Config) (*mongo.Collection, *gin.Engine, *fx.App) {
	var (
		router *gin.Engine
		coll   *mongo.Collection
	)

	testConfigModule := fx.Module("testconfig",
		fx.Provide(
			func() config.Config { return testConfig },
			func(cfg config.Config) config.PaginationConfig { return cfg.Pagination },
		),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		bootstrap.SessionModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &coll),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil || coll == nil {
		panic("fx application started without a router or collection")
	}

	return coll, router, app
}

func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

// ------------------------------------------------------------
// Starts the MongoDB container once per process
// ------------------------------------------------------------
func startMongoContainerOnce(t *testing.T) {
	mongoContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			Tmpfs: map[string]string{
				"/data/db": "rw,size=512m",
			},
			Cmd:        []string{"mongod", "--quiet"},
			WaitingFor: wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
			Labels:     map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		mongoTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "Failed to start mongo container")

		t.Cleanup(func() {
			if mongoTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := mongoTestContainer.Terminate(ctx); err != nil {
					slog.Warn("Failed to terminate mongo container", "error", err.Error())
				}
			}
		})
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Shared setup for e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Leads  *mongo.Collection
	Config config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	coll, router, cfg := setupE2EEnvironment(t)
	s.Leads = coll
	s.Router = router
	s.Config = cfg
	require.NotNil(t, s.Leads, "Failed to set up leads collection")
	require.NotEmpty(t, s.Config, "Failed to load config")
	require.NotNil(t, s.Router, "Failed to set up router")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	err := dbtest.ResetDB(s.Leads)
	require.NoError(s.T(), err, "Failed to reset database state")
}
