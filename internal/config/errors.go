package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrInvalidMonths is returned when the lookback length is negative.
	// Zero is valid: it means no window is queried and no events are found.
	ErrInvalidMonths = errors.New("invalid lookback: months must be non-negative")

	// ErrInvalidTimeout is returned when the query timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrNoNearNetworks is returned when no near network is configured.
	// With nothing to report on, a run would do no work at all.
	ErrNoNearNetworks = errors.New("no near networks configured")

	// ErrNoFarNetworks is returned when no far network is configured.
	ErrNoFarNetworks = errors.New("no far networks configured")

	// ErrNoAPIBaseURL is returned when the measurement API base URL is empty.
	ErrNoAPIBaseURL = errors.New("measurement API base URL must not be empty")
)
