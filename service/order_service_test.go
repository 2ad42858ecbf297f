package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	food_errors "github.com/EivorRrz/restro/api/errors"
	"github.com/EivorRrz/restro/api/model"
	dao_mock "github.com/EivorRrz/restro/api/test/mock"
)

type orderFixture struct {
	env      *testEnv
	orderDAO *dao_mock.MockOrderDAO
	foodDAO  *dao_mock.MockFoodDAO
	svc      *OrderService
}

func newOrderFixture(t *testing.T) *orderFixture {
	env := newTestEnv(t)
	orderDAO := new(dao_mock.MockOrderDAO)
	foodDAO := new(dao_mock.MockFoodDAO)
	foods := newFoodService(env, foodDAO)
	return &orderFixture{
		env:      env,
		orderDAO: orderDAO,
		foodDAO:  foodDAO,
		svc:      NewOrderService(orderDAO, foods, env.u.Validation, env.u.EventBus),
	}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("PricesFromCatalog", func(t *testing.T) {
		f := newOrderFixture(t)
		pizza := validFood("f1", "c1", "r1")
		pizza.Price = 10.10
		soda := validFood("f2", "c2", "r1")
		soda.Price = 2.05
		f.foodDAO.On("GetFood", mock.Anything, "f1").Return(pizza, nil).Once()
		f.foodDAO.On("GetFood", mock.Anything, "f2").Return(soda, nil).Once()

		f.orderDAO.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
			return o.Buyer == "u1" &&
				o.Status == model.OrderPending &&
				o.TotalAmount == 22.25 &&
				len(o.Foods) == 2 &&
				o.Foods[0].Price == 10.10 && o.Foods[0].Quantity == 2 &&
				o.Foods[1].Quantity == 1 &&
				o.Payment.Method == "cash" && o.Payment.Status == "pending"
		})).Return(&model.Order{ID: "o1", Buyer: "u1", Status: model.OrderPending, TotalAmount: 22.25}, nil)

		order, err := f.svc.PlaceOrder(ctx, "u1", model.PlaceOrderRequest{Cart: []model.CartItem{
			{Food: "f1", Quantity: 2},
			{Food: "f2"},
		}})
		require.NoError(t, err)
		assert.Equal(t, "o1", order.ID)
		f.orderDAO.AssertExpectations(t)
		f.foodDAO.AssertExpectations(t)
	})

	t.Run("EmptyCart", func(t *testing.T) {
		f := newOrderFixture(t)
		_, err := f.svc.PlaceOrder(ctx, "u1", model.PlaceOrderRequest{})
		assert.ErrorIs(t, err, food_errors.ErrEmptyCart)
	})

	t.Run("UnknownFood", func(t *testing.T) {
		f := newOrderFixture(t)
		f.foodDAO.On("GetFood", mock.Anything, "ghost").Return(nil, food_errors.ErrFoodNotFound)

		_, err := f.svc.PlaceOrder(ctx, "u1", model.PlaceOrderRequest{Cart: []model.CartItem{{Food: "ghost"}}})
		assert.ErrorIs(t, err, food_errors.ErrFoodNotFound)
		f.orderDAO.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("UnavailableFood", func(t *testing.T) {
		f := newOrderFixture(t)
		food := validFood("f1", "c1", "r1")
		food.IsAvailable = false
		f.foodDAO.On("GetFood", mock.Anything, "f1").Return(food, nil)

		_, err := f.svc.PlaceOrder(ctx, "u1", model.PlaceOrderRequest{Cart: []model.CartItem{{Food: "f1"}}})
		assert.ErrorIs(t, err, food_errors.ErrFoodUnavailable)
	})
}

func TestOrderService_Access(t *testing.T) {
	ctx := context.Background()
	order := &model.Order{ID: "o1", Buyer: "u1", Status: model.OrderPending}

	f := newOrderFixture(t)
	f.orderDAO.On("GetOrder", mock.Anything, "o1").Return(order, nil)

	_, err := f.svc.GetOrder(ctx, "o1", &model.User{ID: "u1"})
	assert.NoError(t, err)

	_, err = f.svc.GetOrder(ctx, "o1", &model.User{ID: "admin", UserType: model.UserTypeAdmin})
	assert.NoError(t, err)

	_, err = f.svc.GetOrder(ctx, "o1", &model.User{ID: "u2"})
	assert.ErrorIs(t, err, food_errors.ErrForbidden)

	_, err = f.svc.GetOrder(ctx, "o1", nil)
	assert.ErrorIs(t, err, food_errors.ErrForbidden)
}

func TestOrderService_Status(t *testing.T) {
	ctx := context.Background()

	t.Run("LegalTransition", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orderDAO.On("GetOrder", mock.Anything, "o1").Return(&model.Order{ID: "o1", Status: model.OrderPending}, nil)
		f.orderDAO.On("UpdateOrderStatus", mock.Anything, "o1", model.OrderConfirmed).
			Return(&model.Order{ID: "o1", Status: model.OrderConfirmed}, nil)

		order, err := f.svc.UpdateOrderStatus(ctx, "o1", model.OrderConfirmed)
		require.NoError(t, err)
		assert.Equal(t, model.OrderConfirmed, order.Status)
	})

	t.Run("IllegalTransition", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orderDAO.On("GetOrder", mock.Anything, "o1").Return(&model.Order{ID: "o1", Status: model.OrderDelivered}, nil)

		_, err := f.svc.UpdateOrderStatus(ctx, "o1", model.OrderPending)
		assert.ErrorIs(t, err, food_errors.ErrIllegalOrderTransition)
		f.orderDAO.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		f := newOrderFixture(t)
		_, err := f.svc.UpdateOrderStatus(ctx, "o1", "LOST")
		assert.ErrorIs(t, err, food_errors.ErrInvalidOrderStatus)
	})

	t.Run("BuyerCancelsConfirmedOrder", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orderDAO.On("GetOrder", mock.Anything, "o1").Return(&model.Order{ID: "o1", Buyer: "u1", Status: model.OrderConfirmed}, nil)
		f.orderDAO.On("UpdateOrderStatus", mock.Anything, "o1", model.OrderCancelled).
			Return(&model.Order{ID: "o1", Buyer: "u1", Status: model.OrderCancelled}, nil)

		order, err := f.svc.CancelOrder(ctx, "o1", &model.User{ID: "u1"})
		require.NoError(t, err)
		assert.Equal(t, model.OrderCancelled, order.Status)
	})

	t.Run("CannotCancelOncePreparing", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orderDAO.On("GetOrder", mock.Anything, "o1").Return(&model.Order{ID: "o1", Buyer: "u1", Status: model.OrderPreparing}, nil)

		_, err := f.svc.CancelOrder(ctx, "o1", &model.User{ID: "u1"})
		assert.ErrorIs(t, err, food_errors.ErrIllegalOrderTransition)
	})

	t.Run("OtherBuyerCannotCancel", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orderDAO.On("GetOrder", mock.Anything, "o1").Return(&model.Order{ID: "o1", Buyer: "u1", Status: model.OrderPending}, nil)

		_, err := f.svc.CancelOrder(ctx, "o1", &model.User{ID: "u2"})
		assert.ErrorIs(t, err, food_errors.ErrForbidden)
	})
}

func TestOrderService_ListsAreNeverCached(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	f.orderDAO.On("ListOrdersByBuyer", mock.Anything, "u1", 20, 0).Return([]*model.Order{{ID: "o1"}}, nil).Twice()

	for i := 0; i < 2; i++ {
		orders, err := f.svc.ListUserOrders(ctx, "u1", 20, 0)
		require.NoError(t, err)
		assert.Len(t, orders, 1)
	}
	f.orderDAO.AssertExpectations(t)
}
