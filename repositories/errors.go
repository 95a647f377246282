package repositories

import "errors"

// Domain errors surfaced to the HTTP boundary. Handlers translate these into
// structured client-facing failures; anything else is an internal error.
var (
	// ErrNotAuthorized covers a linked doctor whose category grant was
	// revoked, and any attempt to act on a link the caller does not own.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrNotLinked means no doctor-patient link exists between the
	// requester and the record owner.
	ErrNotLinked = errors.New("doctor is not linked to patient")

	// ErrInvalidCode means a share code or invite code resolves to nothing,
	// including share codes already spent by a claim.
	ErrInvalidCode = errors.New("invalid code")

	// ErrAlreadyLinked means a link for the (doctor, patient) pair exists.
	ErrAlreadyLinked = errors.New("doctor and patient are already linked")

	// ErrDuplicateEmail means the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrNotFound means the referenced user or record does not exist.
	ErrNotFound = errors.New("record not found")
)
