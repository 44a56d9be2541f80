package service

import "errors"

var (
	// ErrPermissionDenied means the caller lacks the role the operation
	// requires (admin for generation, status updates and analytics;
	// non-admin for creating requests).
	ErrPermissionDenied = errors.New("you do not have permission to perform this action")

	// ErrNotFound means a referenced user, declaration or request does not
	// exist or is no longer active.
	ErrNotFound = errors.New("not found")

	// ErrPendingRequestExists means the caller already has an unresolved
	// request for the same declaration.
	ErrPendingRequestExists = errors.New("you already have a pending request for this declaration")
)
