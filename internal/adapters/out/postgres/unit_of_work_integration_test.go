package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "deliverytrack/internal/adapters/out/postgres"
	"deliverytrack/internal/adapters/out/postgres/orderrepo"
	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/core/domain/model/order"
	"deliverytrack/internal/core/ports"
	"deliverytrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction lifecycle, isolation
// and aggregate tracking of the GORM unit of work against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIsolatedInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Repeated begin calls must not open nested transactions.
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_ReturnsError() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.WaitingForAcceptance, retrieved.AgentStatus())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoryWithoutBegin_WritesDirectly() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	// No transaction: the repository runs against the main connection.
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTrackedAggregates_RecordWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	gormUow, ok := uow.(*postgres_adapter.GormUnitOfWork)
	suite.Require().True(ok)
	tracked := gormUow.GetTrackedAggregates()
	suite.Require().Len(tracked, 1)
	suite.Same(testOrder, tracked[0])
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentUnitsOfWork_VersionConflictSurfaces() {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, testOrder))

	// Two units of work read the same version of the order.
	uow1 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	first, err := uow1.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	uow2 := suite.factory.Create()
	second, err := uow2.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Transition(order.ReadyForPickup, "", now))
	suite.Require().NoError(uow1.OrderRepository().Update(ctx, first))
	suite.Require().NoError(uow1.Commit(ctx))

	suite.Require().NoError(second.Transition(order.ReadyForPickup, "", now))
	suite.Require().NoError(uow2.Begin(ctx))
	err = uow2.OrderRepository().Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrVersionConflict)
	suite.Require().NoError(uow2.Rollback(ctx))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
