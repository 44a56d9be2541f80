package repository

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicatePending is returned by RequestRepository.Create when the
	// partial unique index on (user_id, declaration_id, status='pending')
	// rejects the insert. The index, not the caller's pre-check, is the
	// authority for the one-pending-per-pair invariant.
	ErrDuplicatePending = errors.New("pending request already exists for this user and declaration")
)
