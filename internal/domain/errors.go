// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

var (
	// Kinds
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidArgument = errors.New("invalid argument")

	// Cache-related errors
	ErrCacheMiss = fmt.Errorf("cache entry %w", ErrNotFound)

	// User-related errors
	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrEmailAlreadyExists = fmt.Errorf("email already exists: %w", ErrConflict)
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")

	// Club-related errors
	ErrClubNotFound = fmt.Errorf("club %w", ErrNotFound)
	ErrSlugTaken    = fmt.Errorf("slug already in use: %w", ErrConflict)
	ErrUnitNotFound = fmt.Errorf("unit %w", ErrNotFound)

	// Regional-related errors
	ErrRegionalLinkNotFound = fmt.Errorf("regional link %w", ErrNotFound)
	ErrRegionalLinkExists   = fmt.Errorf("regional link already exists: %w", ErrConflict)

	// Membership-related errors
	ErrMembershipNotFound = fmt.Errorf("membership %w", ErrNotFound)
	ErrMembershipExists   = fmt.Errorf("membership already exists for this club: %w", ErrConflict)

	// Exam-related errors
	ErrExamNotFound     = fmt.Errorf("exam %w", ErrNotFound)
	ErrQuestionNotFound = fmt.Errorf("question %w", ErrNotFound)

	// Audit-related errors
	ErrAuditLogNotFound = fmt.Errorf("audit log %w", ErrNotFound)
)
