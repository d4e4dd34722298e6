package apperrors

import "net/http"

// Factories for the directory domain. The messages are part of the REST
// contract ("Mentor not found", "Email already exists", ...) so they are built
// here once and reused by both record kinds.

// ErrNotFound maps a missing record to 404. kind is "Mentor" or "Mentee".
func ErrNotFound(err error, kind string) *AppError {
	return Wrap(err, CodeNotFound, "profile", kind+" not found", http.StatusNotFound)
}

// ErrInvalidID rejects a malformed identifier before any lookup happens.
func ErrInvalidID(kind string) *AppError {
	return New(CodeInvalidID, "profile", "Invalid "+kind+" ID format", http.StatusBadRequest)
}

// ErrEmailAlreadyExists maps a unique-constraint violation on the email
// column. The original API answers 400 here, not 409, so that is kept.
func ErrEmailAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "profile", "Email already exists", http.StatusBadRequest)
}

// ErrInvalidCredentials is returned by the login endpoints. Deliberately does
// not distinguish unknown email from wrong password.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)
