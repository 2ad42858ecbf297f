// api/errors/order_errors.go
package errors

import "errors"

var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrInvalidOrderData       = errors.New("invalid order data")
	ErrEmptyCart              = errors.New("cart is required and cannot be empty")
	ErrInvalidOrderStatus     = errors.New("invalid order status")
	ErrIllegalOrderTransition = errors.New("illegal order status transition")
)
