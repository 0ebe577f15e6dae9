package queries_test

import (
	"context"
	"testing"
	"time"

	"deliverytrack/internal/adapters/out/postgres/orderrepo"
	"deliverytrack/internal/core/application/usecases/queries"
	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetStalledOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetStalledOrdersQueryHandler
}

func (suite *GetStalledOrdersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetStalledOrdersQueryHandler(db)
}

func (suite *GetStalledOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetStalledOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *GetStalledOrdersQueryHandlerTestSuite) TestHandle_NoStalledOrders_ReturnsEmptySlice() {
	suite.seedActiveOrder(kernel.NewUUID(), order.PickedUp)

	// Everything was written just now, so a cutoff in the past matches nothing.
	query, err := queries.NewGetStalledOrdersQuery(time.Now().Add(-time.Hour))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetStalledOrdersQueryHandlerTestSuite) TestHandle_ActiveOrdersPastCutoff_AreReported() {
	agentID := kernel.NewUUID()
	stalled := suite.seedActiveOrder(agentID, order.OutForDelivery)

	query, err := queries.NewGetStalledOrdersQuery(time.Now().Add(time.Hour))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(stalled.ID(), result[0].ID)
	suite.Equal(agentID, result[0].AssignedAgent)
	suite.Equal(order.OutForDelivery, result[0].AgentStatus)
	suite.False(result[0].LastChangedAt.IsZero())
}

func (suite *GetStalledOrdersQueryHandlerTestSuite) TestHandle_TerminalOrders_AreNeverReported() {
	agentID := kernel.NewUUID()
	suite.seedTerminalOrder(agentID, order.DeliveredSuccessful)
	suite.seedTerminalOrder(agentID, order.Declined)

	query, err := queries.NewGetStalledOrdersQuery(time.Now().Add(time.Hour))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetStalledOrdersQueryHandlerTestSuite) TestHandle_OrdersComeBackOldestFirst() {
	agentID := kernel.NewUUID()
	newer := suite.seedActiveOrder(agentID, order.PickedUp)
	older := suite.seedActiveOrder(agentID, order.ReadyForPickup)

	// Backdate one row past the other; raw SQL bypasses GORM's auto timestamp.
	backdated := time.Now().Add(-48 * time.Hour)
	err := suite.db.Exec(
		"UPDATE orders SET updated_at = ? WHERE id = ?",
		backdated, older.ID().Bytes(),
	).Error
	suite.Require().NoError(err)

	query, err := queries.NewGetStalledOrdersQuery(time.Now().Add(time.Hour))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(older.ID(), result[0].ID)
	suite.Equal(newer.ID(), result[1].ID)
	suite.True(result[0].LastChangedAt.Before(result[1].LastChangedAt))
}

func (suite *GetStalledOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetStalledOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetStalledOrdersQuery constructor")
}

func (suite *GetStalledOrdersQueryHandlerTestSuite) seedActiveOrder(
	agentID kernel.UUID, status order.Status,
) *order.Order {
	var acceptedAt *time.Time
	if status != order.WaitingForAcceptance {
		accepted := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
		acceptedAt = &accepted
	}

	seeded, err := order.RestoreOrder(
		kernel.NewUUID(), agentID, status, order.DisplayStatusOf(status),
		"", acceptedAt, nil, "", "", 1,
	)
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), seeded))

	return seeded
}

func (suite *GetStalledOrdersQueryHandlerTestSuite) seedTerminalOrder(
	agentID kernel.UUID, status order.Status,
) *order.Order {
	var deliveredAt *time.Time
	var proof string
	if status == order.DeliveredSuccessful {
		delivered := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		deliveredAt = &delivered
		proof = "proof.jpg"
	}

	seeded, err := order.RestoreOrder(
		kernel.NewUUID(), agentID, status, order.DisplayStatusOf(status),
		"", nil, deliveredAt, proof, "", 1,
	)
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), seeded))

	return seeded
}

func TestGetStalledOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetStalledOrdersQueryHandlerTestSuite))
}
