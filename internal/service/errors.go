package service

import "errors"

// Sentinel errors mapped to HTTP statuses at the handler boundary.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrPreferenceNotFound = errors.New("preference not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidAdminKey    = errors.New("invalid admin key")
	ErrEmailTaken         = errors.New("email already registered")
	ErrAdminExists        = errors.New("admin already exists")
)
