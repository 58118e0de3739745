package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"waterdrop/internal/core/application/usecases/commands"
	"waterdrop/internal/core/domain/model/coupon"
	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/order"
	"waterdrop/internal/core/domain/model/product"
	"waterdrop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCatalogProduct(t *testing.T, name, size string, price int) *product.Product {
	t.Helper()

	p, err := product.NewProduct(kernel.NewUUID(), name, "", size, price)
	require.NoError(t, err)
	return p
}

func newPlaceOrderCommand(t *testing.T, items []commands.ItemRequest, couponCode string) commands.PlaceOrderCommand {
	t.Helper()

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), items,
		"12 Lake View Road", order.CashOnDelivery, couponCode,
	)
	require.NoError(t, err)
	return cmd
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	// 2 x 20 + 1 x 15 = 55 subtotal, below the free delivery threshold
	productA := newCatalogProduct(t, "Mineral Water", "1L", 20)
	productB := newCatalogProduct(t, "Sparkling Water", "500ml", 15)
	cmd := newPlaceOrderCommand(t, []commands.ItemRequest{
		{ProductID: productA.ID(), Quantity: 2},
		{ProductID: productB.ID(), Quantity: 1},
	}, "")

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	payments := new(MockPaymentProvider)
	uow := new(MockCheckoutUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, productA.ID()).Return(productA, nil).Once(),
		productRepo.On("Get", ctx, productB.ID()).Return(productB, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		payments.On("AcknowledgeCashOnDelivery", ctx, cmd.OrderID().String(), 75).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, payments, testLogger())
	placed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 55, placed.Subtotal())
	assert.Equal(t, 20, placed.DeliveryFee())
	assert.Equal(t, 75, placed.Total())
	assert.Equal(t, order.Placed, placed.Status())
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	payments.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_FreeDeliveryAboveThreshold(t *testing.T) {
	ctx := t.Context()

	bigBottle := newCatalogProduct(t, "Mineral Water", "20L", 80)
	cmd := newPlaceOrderCommand(t, []commands.ItemRequest{
		{ProductID: bigBottle.ID(), Quantity: 2},
	}, "")

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	payments := new(MockPaymentProvider)
	uow := new(MockCheckoutUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Get", ctx, bigBottle.ID()).Return(bigBottle, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	payments.On("AcknowledgeCashOnDelivery", ctx, cmd.OrderID().String(), 160).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, payments, testLogger())
	placed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 160, placed.Subtotal())
	assert.Equal(t, 0, placed.DeliveryFee())
	assert.Equal(t, 160, placed.Total())
}

func TestPlaceOrderCommandHandler_Handle_SnapshotsDiscountPrice(t *testing.T) {
	ctx := t.Context()

	discounted := newCatalogProduct(t, "Mineral Water", "20L", 80)
	require.NoError(t, discounted.ApplyDiscountPrice(65))
	cmd := newPlaceOrderCommand(t, []commands.ItemRequest{
		{ProductID: discounted.ID(), Quantity: 1},
	}, "")

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	payments := new(MockPaymentProvider)
	uow := new(MockCheckoutUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Get", ctx, discounted.ID()).Return(discounted, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	payments.On("AcknowledgeCashOnDelivery", ctx, cmd.OrderID().String(), 85).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, payments, testLogger())
	placed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, placed.Items(), 1)
	assert.Equal(t, 65, placed.Items()[0].UnitPrice())
	assert.Equal(t, 65, placed.Subtotal())
}

func TestPlaceOrderCommandHandler_Handle_ProductUnavailable(t *testing.T) {
	ctx := t.Context()

	offMenu := newCatalogProduct(t, "Mineral Water", "20L", 80)
	offMenu.MarkUnavailable()
	cmd := newPlaceOrderCommand(t, []commands.ItemRequest{
		{ProductID: offMenu.ID(), Quantity: 1},
	}, "")

	productRepo := new(MockProductRepository)
	payments := new(MockPaymentProvider)
	uow := new(MockCheckoutUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Get", ctx, offMenu.ID()).Return(offMenu, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, payments, testLogger())
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrProductUnavailable)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestPlaceOrderCommandHandler_Handle_CouponApplied(t *testing.T) {
	ctx := t.Context()

	bigBottle := newCatalogProduct(t, "Mineral Water", "20L", 80)
	cmd := newPlaceOrderCommand(t, []commands.ItemRequest{
		{ProductID: bigBottle.ID(), Quantity: 2},
	}, "WATER10")

	// 10% of 160 = 16 off
	testCoupon, err := coupon.NewCoupon(kernel.NewUUID(), "WATER10", "", coupon.Percentage,
		10, 0, 100, time.Now().Add(-time.Hour), time.Now().Add(time.Hour), 0)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	couponRepo := new(MockCouponRepository)
	payments := new(MockPaymentProvider)
	uow := new(MockCheckoutUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Get", ctx, bigBottle.ID()).Return(bigBottle, nil).Once()
	uow.On("CouponRepository").Return(couponRepo).Once()
	couponRepo.On("GetByCode", ctx, "WATER10").Return(testCoupon, nil).Once()
	couponRepo.On("IncrementUsage", ctx, testCoupon.ID()).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	payments.On("AcknowledgeCashOnDelivery", ctx, cmd.OrderID().String(), 144).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, payments, testLogger())
	placed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 16, placed.Discount())
	assert.Equal(t, 144, placed.Total())
	assert.Equal(t, "WATER10", placed.CouponCode())
	couponRepo.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_CouponFailureFailsPlacement(t *testing.T) {
	ctx := t.Context()

	smallBottle := newCatalogProduct(t, "Sparkling Water", "500ml", 15)
	cmd := newPlaceOrderCommand(t, []commands.ItemRequest{
		{ProductID: smallBottle.ID(), Quantity: 1},
	}, "WATER10")

	testCoupon, err := coupon.NewCoupon(kernel.NewUUID(), "WATER10", "", coupon.Percentage,
		10, 0, 100, time.Now().Add(-time.Hour), time.Now().Add(time.Hour), 0)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	couponRepo := new(MockCouponRepository)
	payments := new(MockPaymentProvider)
	uow := new(MockCheckoutUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Get", ctx, smallBottle.ID()).Return(smallBottle, nil).Once()
	uow.On("CouponRepository").Return(couponRepo).Once()
	couponRepo.On("GetByCode", ctx, "WATER10").Return(testCoupon, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, payments, testLogger())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, coupon.ErrBelowMinimumOrder)
	couponRepo.AssertNotCalled(t, "IncrementUsage", ctx, testCoupon.ID())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestPlaceOrderCommandHandler_Handle_RetriesOnOrderNumberCollision(t *testing.T) {
	ctx := t.Context()

	bottle := newCatalogProduct(t, "Mineral Water", "1L", 20)
	cmd := newPlaceOrderCommand(t, []commands.ItemRequest{
		{ProductID: bottle.ID(), Quantity: 1},
	}, "")

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	payments := new(MockPaymentProvider)
	uow := new(MockCheckoutUoW)

	collision := errs.NewConstraintViolationError("order number", "WD-20260828-AAAAAA")

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Get", ctx, bottle.ID()).Return(bottle, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(collision).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	payments.On("AcknowledgeCashOnDelivery", ctx, cmd.OrderID().String(), 40).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, payments, testLogger())
	placed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, placed)
	orderRepo.AssertNumberOfCalls(t, "Add", 2)
}

func TestPlaceOrderCommandHandler_Handle_PaymentAckFailureDoesNotFailOrder(t *testing.T) {
	ctx := t.Context()

	bottle := newCatalogProduct(t, "Mineral Water", "1L", 20)
	cmd := newPlaceOrderCommand(t, []commands.ItemRequest{
		{ProductID: bottle.ID(), Quantity: 1},
	}, "")

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	payments := new(MockPaymentProvider)
	uow := new(MockCheckoutUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Get", ctx, bottle.ID()).Return(bottle, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	payments.On("AcknowledgeCashOnDelivery", ctx, cmd.OrderID().String(), 40).
		Return(errors.New("ledger offline")).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, payments, testLogger())
	placed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, placed)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockCheckoutUoWFactory)
	payments := new(MockPaymentProvider)

	handler := commands.NewPlaceOrderCommandHandler(factory, payments, testLogger())
	_, err := handler.Handle(ctx, commands.PlaceOrderCommand{})

	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewPlaceOrderCommand_Validation(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	items := []commands.ItemRequest{{ProductID: kernel.NewUUID(), Quantity: 1}}

	_, err := commands.NewPlaceOrderCommand(orderID, customerID, nil, "addr", order.CashOnDelivery, "")
	require.ErrorIs(t, err, commands.ErrNoItemsRequested)

	_, err = commands.NewPlaceOrderCommand(orderID, customerID,
		[]commands.ItemRequest{{ProductID: kernel.NewUUID(), Quantity: 0}}, "addr", order.CashOnDelivery, "")
	require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)

	_, err = commands.NewPlaceOrderCommand(orderID, customerID, items, "", order.CashOnDelivery, "")
	require.ErrorIs(t, err, commands.ErrAddressIsRequired)

	_, err = commands.NewPlaceOrderCommand(orderID, customerID, items, "addr", order.PaymentMethodUnknown, "")
	require.Error(t, err)
}
