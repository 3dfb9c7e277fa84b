package services

import "errors"

// Sentinel errors returned at service boundaries. Handlers translate
// these into HTTP statuses with errors.Is.
var (
	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so callers cannot tell the two cases apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned by the token service when a token's
	// signature, algorithm or expiry does not check out.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnauthenticated is returned when a request carries no usable
	// identity: missing, invalid or expired token, or unknown subject.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden is returned for a valid identity whose account has
	// been deactivated.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict is returned when a create would violate a uniqueness
	// rule of the domain.
	ErrConflict = errors.New("conflict")

	// ErrValidation is returned for malformed input rejected before any
	// store access.
	ErrValidation = errors.New("validation failed")

	// ErrOAuthExchange is returned when the identity provider rejects
	// the authorization code exchange.
	ErrOAuthExchange = errors.New("oauth exchange failed")

	// ErrMissingEmail is returned when the provider's identity claims
	// carry no email. Terminal, no recovery.
	ErrMissingEmail = errors.New("identity provider returned no email")

	// ErrProvisioningConflict is returned when auto-provisioning loses
	// the insert race and the winning record cannot be found either.
	ErrProvisioningConflict = errors.New("could not provision user")
)
