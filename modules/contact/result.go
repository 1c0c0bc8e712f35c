package contact

import "github.com/northlight-studio/website/pkg/validator"

// Result is the outcome of a single submission attempt: success, a generic
// failure message, or per-field validation errors. Exactly one failure
// payload is ever set. Results are produced once per attempt and consumed by
// the form renderer; they are never persisted.
type Result struct {
	OK bool

	// Err is a generic, non-technical message set on transport or
	// unexpected failures. Never populated together with FieldErrors.
	Err string

	// FieldErrors maps a form field to its ordered validation messages.
	FieldErrors map[string][]string
}

// Accepted returns a successful result.
func Accepted() Result {
	return Result{OK: true}
}

// Rejected returns a failed result with a generic error message.
func Rejected(message string) Result {
	return Result{Err: message}
}

// Invalid returns a failed result carrying per-field validation messages.
func Invalid(verrs validator.ValidationErrors) Result {
	return Result{FieldErrors: verrs.ByField()}
}

// HasFieldErrors reports whether the failure is field-level.
func (r Result) HasFieldErrors() bool {
	return len(r.FieldErrors) > 0
}

// FieldError returns the first message for a field, or "".
func (r Result) FieldError(field string) string {
	if msgs := r.FieldErrors[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}
