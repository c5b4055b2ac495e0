// api/errors/catalog_errors.go
package errors

import "errors"

var (
	ErrProductNotFound       = errors.New("product not found")
	ErrInvalidProductData    = errors.New("invalid product data")
	ErrProductConflict       = errors.New("product already exists")
	ErrCollectionNotFound    = errors.New("collection not found")
	ErrInvalidCollectionData = errors.New("invalid collection data")
	ErrDatabaseOperation     = errors.New("database operation failed")
	ErrInvalidSearchCriteria = errors.New("invalid search criteria")
)
