package apperrors

// ErrorCode identifies a member of the application error taxonomy.
type ErrorCode string

const (
	// System and unknown failures
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"

	// Business-logic errors
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidID        ErrorCode = "INVALID_ID"

	// Credentials (login endpoint only; there is no authorization layer)
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
)
