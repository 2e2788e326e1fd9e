package admin

import "errors"

var (
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAdminInactive      = errors.New("admin account is inactive")
	ErrAccountLocked      = errors.New("account temporarily locked")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrCannotManageRole   = errors.New("cannot manage admin with equal or higher role")
	ErrEmailTaken         = errors.New("email already in use")
	ErrUserNotFound       = errors.New("user not found")
)
