package domain

import "errors"

// Sentinel errors returned by the core services. Handlers map these to HTTP
// status codes with errors.Is; everything else is treated as internal.
var (
	// ErrValidation indicates a required field was missing or empty.
	ErrValidation = errors.New("validation failed")

	// ErrSelfRelation indicates an attempt to relate a record to itself.
	ErrSelfRelation = errors.New("relation to self is not allowed")

	// ErrInvalidEndpoints indicates one or both relation endpoints do not
	// exist or belong to a different company.
	ErrInvalidEndpoints = errors.New("invalid record ids")

	// ErrAuthorization indicates the caller lacks the required tenant scope.
	ErrAuthorization = errors.New("not authorized")

	// ErrNotFound indicates the target entity does not exist, or exists
	// under a company the caller cannot see. The two cases are deliberately
	// indistinguishable.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken indicates a user with that email already exists.
	ErrEmailTaken = errors.New("email already taken")
)
