package services

import "errors"

// Error kinds. Handlers classify service errors with errors.Is against these.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError reports input rejected before any write.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// kindError carries a client facing message and unwraps to its kind.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

var (
	ErrEmailTaken               = &kindError{kind: ErrConflict, msg: "email is already registered"}
	ErrCollectionNameTaken      = &kindError{kind: ErrConflict, msg: "collection name already exists"}
	ErrCategoryNameTaken        = &kindError{kind: ErrConflict, msg: "category name already exists"}
	ErrCollectionNotFound       = &kindError{kind: ErrNotFound, msg: "collection not found"}
	ErrTargetCollectionNotFound = &kindError{kind: ErrNotFound, msg: "target collection not found"}
	ErrCategoryNotFound         = &kindError{kind: ErrNotFound, msg: "category not found"}
	ErrLinkNotFound             = &kindError{kind: ErrNotFound, msg: "link not found"}
)

// Validation messages.
const (
	MsgNameRequired             = "name is required"
	MsgURLRequired              = "url is required"
	MsgURLTooLong               = "url is too long (max 2048)"
	MsgInvalidCategory          = "invalid categoryId"
	MsgTargetCollectionRequired = "targetCollectionId is required"
	MsgPasswordTooLong          = "password is too long (max 72 bytes)"
)
