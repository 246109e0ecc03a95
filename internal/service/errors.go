package service

// Shared ownership failure message
const msgNotOwner = "Este recurso não pertence ao usuário"

// ValidationError reports missing or malformed caller input. Nothing was
// written when it is returned.
type ValidationError struct {
	Message string // User-facing message
}

func (e *ValidationError) Error() string { return e.Message }

// ForbiddenError reports an authenticated caller touching a resource owned
// by another user.
type ForbiddenError struct {
	Message string // User-facing message
}

func (e *ForbiddenError) Error() string { return e.Message }

// NotFoundError reports a resource id that does not resolve.
type NotFoundError struct {
	Message string // User-facing message
}

func (e *NotFoundError) Error() string { return e.Message }

// ConflictError reports a write that would violate a uniqueness or
// referential rule. The surrounding store transaction is rolled back.
type ConflictError struct {
	Message string // User-facing message
}

func (e *ConflictError) Error() string { return e.Message }
