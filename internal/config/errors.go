package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates an empty refresh-server base URL.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidTimeoutConfigs indicates a non-positive endpoint timeout.
	ErrInvalidTimeoutConfigs = errors.New("invalid timeout configuration")
	// ErrInvalidBatchConfigs indicates a negative inter-request batch delay.
	ErrInvalidBatchConfigs = errors.New("invalid batch configuration")
	// ErrInvalidOutputConfigs indicates an empty report output directory.
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
)
