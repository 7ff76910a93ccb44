package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInsufficientBalance indicates an expense exceeding the wallet balance.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrStorage indicates a serialization failure or unavailable storage.
var ErrStorage = errors.New("storage error")

// ErrUnauthorized indicates a failed credential check.
var ErrUnauthorized = errors.New("unauthorized")
