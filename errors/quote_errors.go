// api/errors/quote_errors.go
package errors

import "errors"

var (
	ErrInvalidQuoteRequest = errors.New("invalid quote request")
	ErrQuoteProvider       = errors.New("print provider quote failed")
	ErrQuoteExpired        = errors.New("quote expired")
	ErrInternalServer      = errors.New("internal server error")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidPagination   = errors.New("invalid pagination parameters")
	ErrCacheOperation      = errors.New("cache operation failed")
)
