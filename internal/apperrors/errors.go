// Package apperrors defines the typed error taxonomy shared by all
// services. Controllers match these with errors.As to pick a status code;
// services never collapse them into generic errors.
package apperrors

import "fmt"

// ValidationError reports a malformed input value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError reports an absent workspace, member, link or user.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}

	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// AuthorizationError reports a missing capability or a role hierarchy
// violation. Capability and Role carry the context the boundary layer
// needs for an actionable message.
type AuthorizationError struct {
	Message    string
	Capability string
	Role       string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

func NewAuthorizationError(message, capability, role string) *AuthorizationError {
	return &AuthorizationError{Message: message, Capability: capability, Role: role}
}

// ConflictError reports a duplicate active membership, link or
// workspace name.
type ConflictError struct {
	Resource      string
	ConflictingID string
	Message       string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(resource, conflictingID, message string) *ConflictError {
	return &ConflictError{Resource: resource, ConflictingID: conflictingID, Message: message}
}

// BusinessLogicError reports an operation that is well-formed and
// authorized but violates a domain rule: self-targeting, last-owner
// leave, default-workspace protection, expired account link.
type BusinessLogicError struct {
	Message string
}

func (e *BusinessLogicError) Error() string {
	return e.Message
}

func NewBusinessLogicError(message string) *BusinessLogicError {
	return &BusinessLogicError{Message: message}
}
