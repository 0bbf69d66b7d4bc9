package service

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown login and a wrong
	// password so callers cannot probe for existing accounts.
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrNoPhotoProvided = errors.New("no photo provided")
)
