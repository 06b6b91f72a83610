package domain

import "errors"

var (
	// ErrProviderDisabled is returned when a catalog provider has no
	// configuration and must be skipped from fan-out
	ErrProviderDisabled = errors.New("catalog provider disabled")

	// ErrProviderCallFailed is returned when a provider call fails at the
	// transport or decode level
	ErrProviderCallFailed = errors.New("catalog provider call failed")

	// ErrNoResults is returned when a lookup legitimately matched nothing
	ErrNoResults = errors.New("no matching products")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrTextGenFailure is returned when the text-generation service fails
	ErrTextGenFailure = errors.New("text generation request failed")
)
