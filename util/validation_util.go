// api/util/validation_util.go

package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	food_errors "github.com/EivorRrz/restro/api/errors"
	"github.com/EivorRrz/restro/api/model"
)

type ValidationUtil struct {
	validate *validator.Validate
}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks the struct tags of v and wraps failures in sentinel.
func (v *ValidationUtil) Validate(value interface{}, sentinel error) error {
	err := v.validate.Struct(value)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", sentinel, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", sentinel, strings.Join(fields, ", "))
}

func (v *ValidationUtil) ValidateRegister(req model.RegisterRequest) error {
	return v.Validate(req, food_errors.ErrInvalidUserData)
}

func (v *ValidationUtil) ValidateRestaurant(r model.Restaurant) error {
	return v.Validate(r, food_errors.ErrInvalidRestaurantData)
}

func (v *ValidationUtil) ValidateCategory(c model.Category) error {
	return v.Validate(c, food_errors.ErrInvalidCategoryData)
}

func (v *ValidationUtil) ValidateFood(f model.Food) error {
	return v.Validate(f, food_errors.ErrInvalidFoodData)
}

func (v *ValidationUtil) ValidatePlaceOrder(req model.PlaceOrderRequest) error {
	if len(req.Cart) == 0 {
		return food_errors.ErrEmptyCart
	}
	return v.Validate(req, food_errors.ErrInvalidOrderData)
}

func (v *ValidationUtil) ValidateOrderStatus(status model.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", food_errors.ErrInvalidOrderStatus, status)
	}
	return nil
}
