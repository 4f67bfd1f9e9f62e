package domain

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrStaleState        = errors.New("stale state")
	ErrImmutableState    = errors.New("immutable state")
	ErrAlreadyResolved   = errors.New("dispute already resolved")
	ErrAlreadyInactive   = errors.New("ad already inactive")
	ErrAlreadyAccepted   = errors.New("ad already accepted")
	ErrSelfAcceptance    = errors.New("loader cannot accept own ad")

	ErrLoginTaken         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidState is a ledger release or settle against insufficient escrow.
	ErrInvalidState   = errors.New("invalid ledger state")
	ErrIntegrity      = errors.New("ledger integrity fault")
	ErrPlatformFrozen = errors.New("platform is in emergency mode")
)
