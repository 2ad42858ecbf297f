// api/errors/catalog_errors.go
package errors

import "errors"

var (
	ErrRestaurantNotFound    = errors.New("restaurant not found")
	ErrInvalidRestaurantData = errors.New("invalid restaurant data")

	ErrCategoryNotFound    = errors.New("category not found")
	ErrInvalidCategoryData = errors.New("invalid category data")

	ErrFoodNotFound    = errors.New("food not found")
	ErrInvalidFoodData = errors.New("invalid food data")
	ErrFoodUnavailable = errors.New("food is not available")
)
