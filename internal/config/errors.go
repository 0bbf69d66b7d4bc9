package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrEmptyTokenSignKey indicates that no token signing secret was
	// provided (APP_TOKEN_SIGN_KEY or JWT_SECRET).
	ErrEmptyTokenSignKey = errors.New("token sign key is required")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a negative token duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidPasswordHashCost indicates a bcrypt cost outside of the
	// range accepted by golang.org/x/crypto/bcrypt.
	ErrInvalidPasswordHashCost = errors.New("invalid password hash cost")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
