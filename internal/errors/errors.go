package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this author"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a rejected write with a field-level message.
// Code identifies the rule that failed; two validation errors with the same
// non-empty Code compare equal under errors.Is regardless of message.
type ValidationError struct {
	Code    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is enables errors.Is() comparison for ValidationError
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	if t.Code == "" {
		return false
	}
	return e.Code == t.Code
}

// Detailf returns a copy of the error carrying a more specific message.
func (e *ValidationError) Detailf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Code: e.Code, Field: e.Field, Message: fmt.Sprintf(format, args...)}
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrRecipeNotFound     = &NotFoundError{Entity: "recipe"}
	ErrIngredientNotFound = &NotFoundError{Entity: "ingredient"}
	ErrTagNotFound        = &NotFoundError{Entity: "tag"}
	ErrUnitNotFound       = &NotFoundError{Entity: "measurement unit"}
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
)

// Already Exists Errors
var (
	ErrDuplicateRecipeName = &AlreadyExistsError{Entity: "recipe", Context: "with this name for this author"}
	ErrUserExists          = &AlreadyExistsError{Entity: "user", Context: "with this email or username"}
	ErrTagExists           = &AlreadyExistsError{Entity: "tag", Context: "with this name, color or slug"}
)

// Recipe composition errors
var (
	ErrEmptyIngredients    = &ValidationError{Code: "empty_ingredients", Field: "ingredients", Message: "recipe must contain at least one ingredient"}
	ErrDuplicateIngredient = &ValidationError{Code: "duplicate_ingredient", Field: "ingredients", Message: "ingredients must not repeat"}
	ErrUnknownIngredient   = &ValidationError{Code: "unknown_ingredient", Field: "ingredients", Message: "ingredient does not exist"}
	ErrInvalidAmount       = &ValidationError{Code: "invalid_amount", Field: "ingredients", Message: "amount must be a positive integer"}
	ErrInvalidCookingTime  = &ValidationError{Code: "invalid_cooking_time", Field: "cooking_time", Message: "cooking time is out of range"}
	ErrUnknownTag          = &ValidationError{Code: "unknown_tag", Field: "tags", Message: "tag does not exist"}
	ErrMissingField        = &ValidationError{Code: "missing_field", Message: "field is required"}
	ErrInvalidImage        = &ValidationError{Code: "invalid_image", Field: "image", Message: "image must be a base64 encoded data URI"}
)

// Membership errors
var (
	ErrSelfSubscription = &ValidationError{Code: "self_subscription", Field: "author", Message: "cannot subscribe to yourself"}
)

// Authentication / authorization errors
var (
	ErrAuthenticationRequired = &AuthenticationError{Message: "authentication credentials were not provided"}
	ErrNotRecipeAuthor        = &AuthorizationError{Message: "only the author can modify this recipe"}
	ErrInvalidQueryParam      = errors.New("invalid query parameter")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// AsValidation extracts the ValidationError from an error chain.
func AsValidation(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewMissingFieldError reports a required draft field that was not supplied.
func NewMissingFieldError(field string) error {
	return &ValidationError{Code: ErrMissingField.Code, Field: field, Message: ErrMissingField.Message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
