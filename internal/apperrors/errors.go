package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// Ownership failures collapse into this error too: a transaction that
// exists under a different owner is reported as not found, never as
// forbidden, so the API does not leak which IDs exist.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")
