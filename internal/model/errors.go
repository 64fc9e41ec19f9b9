package model

import "errors"

// Common errors used across the application
var (
	ErrPlayerNotFound      = errors.New("player not found")
	ErrItemNotFound        = errors.New("item not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrIdentityNotFound    = errors.New("identity not found")
)
