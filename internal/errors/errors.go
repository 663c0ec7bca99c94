package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError.
// Only the entity is compared so ErrComponentNotFound matches any missing component.
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConflictError is returned when a request is valid but the current state forbids it
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// StorageError wraps a failure of the underlying database or transaction.
// Callers may retry; no partial effect is left behind.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrComponentNotFound      = &NotFoundError{Entity: "component"}
	ErrBuildNotFound          = &NotFoundError{Entity: "build"}
	ErrBuildComponentNotFound = &NotFoundError{Entity: "build-component association"}
)

// Authorization Errors
var (
	ErrBuildNotOwned          = &AuthorizationError{Message: "build belongs to another user"}
	ErrCatalogComponentLocked = &AuthorizationError{Message: "catalog components cannot be modified"}
	ErrMissingUserIdentity    = &AuthorizationError{Message: "user identity is required"}
)

// Conflict Errors
var (
	ErrComponentInUse         = &ConflictError{Message: "component is used by at least one build"}
	ErrAssociationChanged     = &ConflictError{Message: "build component changed concurrently"}
	ErrSingletonCategoryTaken = &ConflictError{Message: "build already has a component of this category"}
)

// Validation Errors
var (
	ErrEmptyPatch       = &ValidationError{Message: "no updatable fields supplied"}
	ErrNoComponents     = &ValidationError{Field: "component_ids", Message: "at least one component is required"}
	ErrEmptyBuildName   = &ValidationError{Field: "name", Message: "must not be empty"}
	ErrUnsupportedImage = &ValidationError{Field: "image", Message: "unsupported content type"}
	ErrImageTooLarge    = &ValidationError{Field: "image", Message: "image exceeds maximum size"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsStorage checks if an error is a StorageError
func IsStorage(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewStorageError wraps err as a StorageError for the named operation
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
