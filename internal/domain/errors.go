package domain

import "errors"

var (
	// ErrNoData is returned when a computation needs at least one record and none exist
	ErrNoData = errors.New("no data available")

	// ErrMissingCredentials is returned when a vendor client is constructed without credentials
	ErrMissingCredentials = errors.New("missing vendor credentials")
)
