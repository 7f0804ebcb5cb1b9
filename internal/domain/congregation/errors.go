package congregation

import "errors"

var (
	ErrOrganizationRequired = errors.New("organization id is required")
	ErrInvalidDateRange     = errors.New("invalid date range")
)
