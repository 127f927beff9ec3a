package admin

import "errors"

var (
	ErrAdminNotFound      = errors.New("admin not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrCannotDeleteSelf   = errors.New("cannot delete your own admin account")
)
