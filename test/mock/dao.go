// test/mock/dao.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/EivorRrz/restro/api/model"
)

// MockUserDAO is a mock implementation of dao.IUserDAO
type MockUserDAO struct {
	mock.Mock
}

func (m *MockUserDAO) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserDAO) GetUser(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserDAO) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserDAO) ListUsers(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*model.User)
	return users, args.Error(1)
}

func (m *MockUserDAO) UpdateUser(ctx context.Context, user model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserDAO) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserDAO) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockRestaurantDAO is a mock implementation of dao.IRestaurantDAO
type MockRestaurantDAO struct {
	mock.Mock
}

func (m *MockRestaurantDAO) CreateRestaurant(ctx context.Context, restaurant model.Restaurant) (*model.Restaurant, error) {
	args := m.Called(ctx, restaurant)
	r, _ := args.Get(0).(*model.Restaurant)
	return r, args.Error(1)
}

func (m *MockRestaurantDAO) GetRestaurant(ctx context.Context, restaurantID string) (*model.Restaurant, error) {
	args := m.Called(ctx, restaurantID)
	r, _ := args.Get(0).(*model.Restaurant)
	return r, args.Error(1)
}

func (m *MockRestaurantDAO) ListRestaurants(ctx context.Context) ([]*model.Restaurant, error) {
	args := m.Called(ctx)
	rs, _ := args.Get(0).([]*model.Restaurant)
	return rs, args.Error(1)
}

func (m *MockRestaurantDAO) SearchRestaurants(ctx context.Context, query string) ([]*model.Restaurant, error) {
	args := m.Called(ctx, query)
	rs, _ := args.Get(0).([]*model.Restaurant)
	return rs, args.Error(1)
}

func (m *MockRestaurantDAO) UpdateRestaurant(ctx context.Context, restaurant model.Restaurant) (*model.Restaurant, error) {
	args := m.Called(ctx, restaurant)
	r, _ := args.Get(0).(*model.Restaurant)
	return r, args.Error(1)
}

func (m *MockRestaurantDAO) DeleteRestaurant(ctx context.Context, restaurantID string) error {
	args := m.Called(ctx, restaurantID)
	return args.Error(0)
}

// MockCategoryDAO is a mock implementation of dao.ICategoryDAO
type MockCategoryDAO struct {
	mock.Mock
}

func (m *MockCategoryDAO) CreateCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	args := m.Called(ctx, category)
	c, _ := args.Get(0).(*model.Category)
	return c, args.Error(1)
}

func (m *MockCategoryDAO) GetCategory(ctx context.Context, categoryID string) (*model.Category, error) {
	args := m.Called(ctx, categoryID)
	c, _ := args.Get(0).(*model.Category)
	return c, args.Error(1)
}

func (m *MockCategoryDAO) ListCategories(ctx context.Context) ([]*model.Category, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]*model.Category)
	return cs, args.Error(1)
}

func (m *MockCategoryDAO) UpdateCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	args := m.Called(ctx, category)
	c, _ := args.Get(0).(*model.Category)
	return c, args.Error(1)
}

func (m *MockCategoryDAO) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// MockFoodDAO is a mock implementation of dao.IFoodDAO
type MockFoodDAO struct {
	mock.Mock
}

func (m *MockFoodDAO) CreateFood(ctx context.Context, food model.Food) (*model.Food, error) {
	args := m.Called(ctx, food)
	f, _ := args.Get(0).(*model.Food)
	return f, args.Error(1)
}

func (m *MockFoodDAO) GetFood(ctx context.Context, foodID string) (*model.Food, error) {
	args := m.Called(ctx, foodID)
	f, _ := args.Get(0).(*model.Food)
	return f, args.Error(1)
}

func (m *MockFoodDAO) ListFoods(ctx context.Context) ([]*model.Food, error) {
	args := m.Called(ctx)
	fs, _ := args.Get(0).([]*model.Food)
	return fs, args.Error(1)
}

func (m *MockFoodDAO) ListFoodsByCategory(ctx context.Context, categoryID string) ([]*model.Food, error) {
	args := m.Called(ctx, categoryID)
	fs, _ := args.Get(0).([]*model.Food)
	return fs, args.Error(1)
}

func (m *MockFoodDAO) ListFoodsByRestaurant(ctx context.Context, restaurantID string) ([]*model.Food, error) {
	args := m.Called(ctx, restaurantID)
	fs, _ := args.Get(0).([]*model.Food)
	return fs, args.Error(1)
}

func (m *MockFoodDAO) SearchFoods(ctx context.Context, query string) ([]*model.Food, error) {
	args := m.Called(ctx, query)
	fs, _ := args.Get(0).([]*model.Food)
	return fs, args.Error(1)
}

func (m *MockFoodDAO) UpdateFood(ctx context.Context, food model.Food) (*model.Food, error) {
	args := m.Called(ctx, food)
	f, _ := args.Get(0).(*model.Food)
	return f, args.Error(1)
}

func (m *MockFoodDAO) DeleteFood(ctx context.Context, foodID string) error {
	args := m.Called(ctx, foodID)
	return args.Error(0)
}

// MockOrderDAO is a mock implementation of dao.IOrderDAO
type MockOrderDAO struct {
	mock.Mock
}

func (m *MockOrderDAO) CreateOrder(ctx context.Context, order model.Order) (*model.Order, error) {
	args := m.Called(ctx, order)
	o, _ := args.Get(0).(*model.Order)
	return o, args.Error(1)
}

func (m *MockOrderDAO) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(*model.Order)
	return o, args.Error(1)
}

func (m *MockOrderDAO) ListOrders(ctx context.Context, limit, offset int) ([]*model.Order, error) {
	args := m.Called(ctx, limit, offset)
	os, _ := args.Get(0).([]*model.Order)
	return os, args.Error(1)
}

func (m *MockOrderDAO) ListOrdersByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*model.Order, error) {
	args := m.Called(ctx, buyerID, limit, offset)
	os, _ := args.Get(0).([]*model.Order)
	return os, args.Error(1)
}

func (m *MockOrderDAO) UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	args := m.Called(ctx, orderID, status)
	o, _ := args.Get(0).(*model.Order)
	return o, args.Error(1)
}
