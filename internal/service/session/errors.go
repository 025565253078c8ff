package session

import "errors"

var (
	ErrEmptyToken   = errors.New("access token is empty")
	ErrTokenExpired = errors.New("access token already expired")
)
