package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrCaseNotFound       = errors.New("case not found")
	ErrDocumentNotFound   = errors.New("document not found")

	// ErrNoCaseRole means the acting identity has no role on the case: not
	// assigned in any capacity and holding neither generic capability. This is
	// rejected before policy classification completes.
	ErrNoCaseRole = errors.New("user has no role on this case")

	// ErrUnclassifiedCaseStatus means the case's raw state matched none of the
	// defined status combinations. It must never be silently folded into a
	// defined status.
	ErrUnclassifiedCaseStatus = errors.New("case state does not classify to any defined status")

	// ErrArchivedParent and ErrAnswersParent mark documents that can never be
	// a parent; deriving a parent kind from them is a hard failure, not a
	// policy-table lookup.
	ErrArchivedParent = errors.New("an archived document cannot be a parent")
	ErrAnswersParent  = errors.New("a reviewer-answer document cannot be a parent")
)
