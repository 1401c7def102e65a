package auth

import "errors"

// Login failures share one message so response text cannot be used to
// enumerate accounts, but keep distinct identities: an unknown email maps to
// 404 and a wrong password to 400, matching the original contract.
var (
	ErrEmailNotRegistered = errors.New("password or email incorrect")
	ErrPasswordMismatch   = errors.New("password or email incorrect")

	ErrInvalidToken         = errors.New("invalid token")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrTokenExpired         = errors.New("token expired")
)
