// api/errors/common_errors.go
package errors

import "errors"

var (
	ErrDatabaseOperation     = errors.New("database operation failed")
	ErrInternalServer        = errors.New("internal server error")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrInvalidPagination     = errors.New("invalid pagination parameters")
	ErrInvalidSearchCriteria = errors.New("invalid search criteria")
	ErrRateLimited           = errors.New("rate limit exceeded")
	ErrUnknownCacheKind      = errors.New("unknown cache kind")
)
