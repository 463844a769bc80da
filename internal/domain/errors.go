package domain

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// ConflictErr represents an error when an operation conflicts with current
// state, such as booking an occupied slot or editing a cancelled reservation.
type ConflictErr struct {
	domainErr
}

// NewConflictErr creates a new ConflictErr with the given message.
func NewConflictErr(message string) *ConflictErr {
	return &ConflictErr{
		domainErr: domainErr{message: message},
	}
}

// PersistenceErr represents a storage failure surfaced by a repository.
type PersistenceErr struct {
	domainErr
	cause error
}

// NewPersistenceErr creates a new PersistenceErr wrapping the underlying cause.
func NewPersistenceErr(message string, cause error) *PersistenceErr {
	return &PersistenceErr{
		domainErr: domainErr{message: message},
		cause:     cause,
	}
}

// Unwrap returns the underlying storage error.
func (e *PersistenceErr) Unwrap() error {
	return e.cause
}
