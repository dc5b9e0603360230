// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"harvest/internal/domain/entity"
	"harvest/internal/errors"
)

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID string
	Role   entity.Role
}

// IsAdmin reports whether the actor administers the catalog and orders.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}

// CanAccess reports whether the actor may read or act on a resource owned by userID.
func (a Actor) CanAccess(userID string) bool {
	return a.IsAdmin() || (a.UserID != "" && a.UserID == userID)
}

// FileUpload is a file received from a client.
type FileUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// RetryableError marks a failure the transport should redeliver.
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return "retryable: " + e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether err asks for redelivery.
func IsRetryable(err error) bool {
	_, ok := errors.AsType[*RetryableError](err)

	return ok
}
