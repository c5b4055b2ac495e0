// api/errors/order_errors.go
package errors

import "errors"

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidOrderData    = errors.New("invalid order data")
	ErrOrderConflict       = errors.New("order already submitted")
	ErrOrderProvider       = errors.New("print provider order submission failed")
	ErrPriceDrift          = errors.New("order total no longer matches current quote")
	ErrOrderNotCancellable = errors.New("order can no longer be cancelled")
)
