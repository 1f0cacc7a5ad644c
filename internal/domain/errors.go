package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product id is not in the loaded catalog
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrCatalogNotLoaded is returned when no catalog has been successfully loaded yet
	ErrCatalogNotLoaded = errors.New("catalog not loaded")

	// ErrFeedUnavailable is returned when the catalog feed request fails
	ErrFeedUnavailable = errors.New("catalog feed request failed")

	// ErrRefreshInFlight is returned when a catalog refresh is already running
	ErrRefreshInFlight = errors.New("catalog refresh already in flight")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrSessionNotFound is returned when a session id is unknown or expired
	ErrSessionNotFound = errors.New("session not found")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
