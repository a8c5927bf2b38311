package domain

import "errors"

var (
	ErrApiNotFound       = errors.New("api not found")
	ErrApiIllegalState   = errors.New("api cannot be updated in its current state")
	ErrInvalidPageable   = errors.New("page number and page size must not be negative")
	ErrInvalidCriteria   = errors.New("invalid api search criteria")
	ErrUnsupportedExport = errors.New("unsupported export format")
)
