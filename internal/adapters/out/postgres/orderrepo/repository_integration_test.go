package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// OrderRepositoryIntegrationTestSuite tests the GORM order repository against
// a real PostgreSQL database, including the JSONB items round trip.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.repo = orderrepo.NewGormOrderRepository(db)
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(userID kernel.UUID) *order.Order {
	item, err := order.NewItem("prod-1", "Widget", 2, 10)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), userID, []order.Item{item}, "1 Main St", "leave at door", testNow)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSaveAndGetByID() {
	ctx := context.Background()
	o := suite.createTestOrder(kernel.NewUUID())

	err := suite.repo.Save(ctx, o)
	suite.Require().NoError(err)

	got, err := suite.repo.GetByID(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(got.IsEqual(o))
	suite.Equal(order.Pending, got.Status())
	suite.InDelta(20.0, got.Total(), 0.0001)
	suite.Equal("1 Main St", got.ShippingAddress())
	suite.Equal("leave at door", got.Notes())

	items := got.Items()
	suite.Require().Len(items, 1)
	suite.Equal("prod-1", items[0].ProductID())
	suite.Equal("Widget", items[0].ProductName())
	suite.Equal(2, items[0].Quantity())
	suite.InDelta(10.0, items[0].UnitPrice(), 0.0001)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByID_NotFound() {
	ctx := context.Background()

	_, err := suite.repo.GetByID(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByUserID() {
	ctx := context.Background()
	userID := kernel.NewUUID()

	suite.Require().NoError(suite.repo.Save(ctx, suite.createTestOrder(userID)))
	suite.Require().NoError(suite.repo.Save(ctx, suite.createTestOrder(userID)))
	suite.Require().NoError(suite.repo.Save(ctx, suite.createTestOrder(kernel.NewUUID())))

	mine, err := suite.repo.GetByUserID(ctx, userID)
	suite.Require().NoError(err)
	suite.Len(mine, 2)
	for _, o := range mine {
		suite.True(o.UserID().IsEqual(userID))
	}

	none, err := suite.repo.GetByUserID(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByStatus() {
	ctx := context.Background()

	pending := suite.createTestOrder(kernel.NewUUID())
	confirmed := suite.createTestOrder(kernel.NewUUID())
	suite.Require().NoError(confirmed.Confirm(testNow))

	suite.Require().NoError(suite.repo.Save(ctx, pending))
	suite.Require().NoError(suite.repo.Save(ctx, confirmed))

	got, err := suite.repo.GetByStatus(ctx, order.Confirmed)
	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.True(got[0].IsEqual(confirmed))

	empty, err := suite.repo.GetByStatus(ctx, order.Delivered)
	suite.Require().NoError(err)
	suite.Empty(empty)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSave_UpsertsByID() {
	ctx := context.Background()
	o := suite.createTestOrder(kernel.NewUUID())
	suite.Require().NoError(suite.repo.Save(ctx, o))

	item, err := order.NewItem("prod-2", "Gadget", 1, 7.5)
	suite.Require().NoError(err)
	suite.Require().NoError(o.AddItem(item, testNow.Add(time.Hour)))
	suite.Require().NoError(suite.repo.Save(ctx, o))

	got, err := suite.repo.GetByID(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Len(got.Items(), 2)
	suite.InDelta(27.5, got.Total(), 0.0001)
	suite.Require().NotNil(got.UpdatedAt())
	suite.True(got.UpdatedAt().Equal(testNow.Add(time.Hour)))

	all, err := suite.repo.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	o := suite.createTestOrder(kernel.NewUUID())
	suite.Require().NoError(suite.repo.Save(ctx, o))

	existed, err := suite.repo.Delete(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(existed)

	existed, err = suite.repo.Delete(ctx, o.ID())
	suite.Require().NoError(err)
	suite.False(existed)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
