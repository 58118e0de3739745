package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"waterdrop/internal/adapters/out/postgres/orderrepo"
	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/order"
	"waterdrop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite exercises GormOrderRepository against a
// real PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.StatusHistoryDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_items, order_status_history CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_RoundTripsItemsAndHistory() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal(testOrder.Number().String(), retrieved.Number().String())
	suite.Equal(testOrder.CustomerID(), retrieved.CustomerID())
	suite.Equal("12 Lake View Road", retrieved.Address())
	suite.Equal(160, retrieved.Subtotal())
	suite.Equal(0, retrieved.DeliveryFee())
	suite.Equal(160, retrieved.Total())
	suite.Equal(order.CashOnDelivery, retrieved.PaymentMethod())
	suite.Equal(order.PaymentPending, retrieved.PaymentStatus())
	suite.Equal(order.Placed, retrieved.Status())
	suite.Nil(retrieved.Partner())

	suite.Require().Len(retrieved.Items(), 1)
	item := retrieved.Items()[0]
	suite.Equal("Aqua Pure 20L", item.ProductName())
	suite.Equal("20L", item.ProductSize())
	suite.Equal(2, item.Quantity())
	suite.Equal(80, item.UnitPrice())

	suite.Require().Len(retrieved.History(), 1)
	suite.Equal(order.Placed, retrieved.History()[0].Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_ReturnsConstraintViolation() {
	ctx := context.Background()

	first := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	// Same number, different identity.
	duplicate, err := order.NewOrder(
		kernel.NewUUID(), first.Number(), kernel.NewUUID(),
		suite.createTestItems(), "34 Hill Street",
		order.CashOnDelivery, 20, 0, "", time.Now(),
	)
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, duplicate)
	suite.Require().ErrorIs(err, errs.ErrConstraintViolation)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_ReturnsOrder() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.GetByNumber(ctx, testOrder.Number())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_DeliveredOrderKeepsTimelineAndRating() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	partnerID := kernel.NewUUID()
	suite.Require().NoError(testOrder.Assign(partnerID, 30, time.Now()))
	suite.Require().NoError(testOrder.TransitionTo(order.Preparing, "", time.Now()))
	suite.Require().NoError(testOrder.TransitionTo(order.OutForDelivery, "", time.Now()))
	suite.Require().NoError(testOrder.TransitionTo(order.Delivered, "", time.Now()))

	rating, err := order.NewRating(5, "quick delivery")
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.AttachRating(rating))

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(order.Delivered, retrieved.Status())
	suite.Equal(order.PaymentPaid, retrieved.PaymentStatus())
	suite.Require().NotNil(retrieved.Partner())
	suite.True(retrieved.Partner().IsEqual(partnerID))
	suite.Equal(30, retrieved.PartnerEarning())
	suite.NotNil(retrieved.DeliveredAt())
	suite.Require().NotNil(retrieved.Rating())
	suite.Equal(5, retrieved.Rating().Value())
	suite.Equal("quick delivery", retrieved.Rating().Feedback())
	suite.Len(retrieved.History(), 5)

	// A second save of the same aggregate must not duplicate history rows.
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))
	retrieved, err = suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Len(retrieved.History(), 5)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	missing := suite.createTestOrder()

	err := suite.repository.Update(context.Background(), missing)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAvailable_SkipsAssignedOrders() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	unassignedOld := suite.addTestOrder(ctx)
	unassignedNew := suite.addTestOrder(ctx)

	assigned := suite.createTestOrder()
	suite.Require().NoError(assigned.Assign(kernel.NewUUID(), 30, time.Now()))
	suite.Require().NoError(suite.repository.Add(ctx, assigned))

	available, err := suite.repository.GetAvailable(ctx, 10)
	suite.Require().NoError(err)

	suite.Require().Len(available, 2)
	ids := []kernel.UUID{available[0].ID(), available[1].ID()}
	suite.Contains(ids, unassignedOld.ID())
	suite.Contains(ids, unassignedNew.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetFirstUnassigned_ReturnsOldestPlacedOrder() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	oldest := suite.addTestOrderPlacedAt(ctx, time.Now().Add(-2*time.Hour))
	suite.addTestOrderPlacedAt(ctx, time.Now().Add(-1*time.Hour))

	first, err := suite.repository.GetFirstUnassigned(ctx)
	suite.Require().NoError(err)
	suite.Equal(oldest.ID(), first.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetFirstUnassigned_NoPlacedOrders_ReturnsNotFoundError() {
	first, err := suite.repository.GetFirstUnassigned(context.Background())

	suite.Nil(first)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByCustomer_ReturnsOnlyOwnOrders() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	customerID := kernel.NewUUID()
	mine1 := suite.addTestOrderForCustomer(ctx, customerID)
	mine2 := suite.addTestOrderForCustomer(ctx, customerID)
	suite.addTestOrder(ctx)

	orders, err := suite.repository.GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)

	suite.Require().Len(orders, 2)
	ids := []kernel.UUID{orders[0].ID(), orders[1].ID()}
	suite.Contains(ids, mine1.ID())
	suite.Contains(ids, mine2.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetDeliveredByPartnerWithin_BoundsAreInclusive() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(4)

	partnerID := kernel.NewUUID()
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 7, 23, 59, 59, 0, time.UTC)

	inside := suite.addDeliveredOrder(ctx, partnerID, from.Add(48*time.Hour))
	onLowerBound := suite.addDeliveredOrder(ctx, partnerID, from)
	suite.addDeliveredOrder(ctx, partnerID, to.Add(time.Hour))
	suite.addDeliveredOrder(ctx, kernel.NewUUID(), from.Add(48*time.Hour))

	period, err := kernel.NewPeriod(from, to)
	suite.Require().NoError(err)

	delivered, err := suite.repository.GetDeliveredByPartnerWithin(ctx, partnerID, period)
	suite.Require().NoError(err)

	suite.Require().Len(delivered, 2)
	suite.Equal(onLowerBound.ID(), delivered[0].ID())
	suite.Equal(inside.ID(), delivered[1].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAssign_SecondWriterLosesTheRace() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	placed := suite.addTestOrder(ctx)

	winner := suite.restoreCopy(placed)
	suite.Require().NoError(winner.Assign(kernel.NewUUID(), 30, time.Now()))
	suite.Require().NoError(suite.repository.Assign(ctx, winner))

	loser := suite.restoreCopy(placed)
	suite.Require().NoError(loser.Assign(kernel.NewUUID(), 30, time.Now()))
	err := suite.repository.Assign(ctx, loser)
	suite.Require().ErrorIs(err, order.ErrOrderAlreadyAssigned)

	retrieved, err := suite.repository.Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.Partner())
	suite.True(retrieved.Partner().IsEqual(*winner.Partner()))
	suite.Equal(order.Accepted, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAssign_ConcurrentWriters_ExactlyOneWins() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Maybe()

	placed := suite.addTestOrder(ctx)

	const contenders = 4
	results := make(chan error, contenders)

	for range contenders {
		go func() {
			contender := suite.restoreCopy(placed)
			if err := contender.Assign(kernel.NewUUID(), 30, time.Now()); err != nil {
				results <- err
				return
			}
			results <- suite.repository.Assign(ctx, contender)
		}()
	}

	winners := 0
	for range contenders {
		err := <-results
		if err == nil {
			winners++
		} else {
			suite.Require().ErrorIs(err, order.ErrOrderAlreadyAssigned)
		}
	}

	suite.Equal(1, winners)
}

// createTestItems returns a single snapshotted line item worth 160.
func (suite *OrderRepositoryIntegrationTestSuite) createTestItems() []order.Item {
	item, err := order.NewItem(kernel.NewUUID(), "Aqua Pure 20L", "20L", 2, 80)
	suite.Require().NoError(err)
	return []order.Item{item}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	return suite.createTestOrderFor(kernel.NewUUID(), time.Now())
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderFor(
	customerID kernel.UUID, placedAt time.Time,
) *order.Order {
	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewOrderNumber(placedAt), customerID,
		suite.createTestItems(), "12 Lake View Road",
		order.CashOnDelivery, 0, 0, "", placedAt,
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) addTestOrder(ctx context.Context) *order.Order {
	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) addTestOrderPlacedAt(
	ctx context.Context, placedAt time.Time,
) *order.Order {
	testOrder := suite.createTestOrderFor(kernel.NewUUID(), placedAt)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) addTestOrderForCustomer(
	ctx context.Context, customerID kernel.UUID,
) *order.Order {
	testOrder := suite.createTestOrderFor(customerID, time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	return testOrder
}

// addDeliveredOrder persists an order delivered by the partner at the given
// time.
func (suite *OrderRepositoryIntegrationTestSuite) addDeliveredOrder(
	ctx context.Context, partnerID kernel.UUID, deliveredAt time.Time,
) *order.Order {
	testOrder := suite.createTestOrderFor(kernel.NewUUID(), deliveredAt.Add(-time.Hour))
	suite.Require().NoError(testOrder.Assign(partnerID, 30, deliveredAt.Add(-50*time.Minute)))
	suite.Require().NoError(testOrder.TransitionTo(order.Preparing, "", deliveredAt.Add(-40*time.Minute)))
	suite.Require().NoError(testOrder.TransitionTo(order.OutForDelivery, "", deliveredAt.Add(-20*time.Minute)))
	suite.Require().NoError(testOrder.TransitionTo(order.Delivered, "", deliveredAt))
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	return testOrder
}

// restoreCopy rebuilds an independent aggregate from another one's state, the
// way separate request handlers each load their own copy.
func (suite *OrderRepositoryIntegrationTestSuite) restoreCopy(source *order.Order) *order.Order {
	restored, err := order.RestoreOrder(
		source.ID(), source.Number(), source.CustomerID(), source.Items(),
		source.Address(), source.PaymentMethod(), source.PaymentStatus(),
		source.Status(), source.DeliveryFee(), source.Discount(), source.CouponCode(),
		source.Partner(), source.PartnerEarning(), source.PlacedAt(),
		source.DeliveredAt(), source.Rating(), source.History(),
	)
	suite.Require().NoError(err)
	return restored
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
