package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrInvalidClaim = errors.New("invalid claim data")
	ErrForbidden    = errors.New("operation requires the admin role")

	ErrNothingToExport = errors.New("nothing to export")
)
