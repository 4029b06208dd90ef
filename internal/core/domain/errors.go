package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a load target is absent or the store was unreachable.
	ErrNotFound = errors.New("not found")

	// ErrAlreadySaved indicates a save was attempted on a locked document.
	// It is detected locally and never reaches the store.
	ErrAlreadySaved = errors.New("document already saved")

	// ErrSaveRejected indicates the store refused a save with a message.
	ErrSaveRejected = errors.New("save rejected")

	// ErrMalformedErrorResponse indicates the store failed a save without a
	// parseable error body.
	ErrMalformedErrorResponse = errors.New("malformed error response")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Session Errors.

	// ErrEmptyDocument indicates a lock was requested with blank content.
	ErrEmptyDocument = errors.New("document is empty")

	// ErrNotSaved indicates an operation that needs a locked document
	// (duplicate, raw, share) was requested on an editable one.
	ErrNotSaved = errors.New("document not saved")

	// ErrActionDisabled indicates an action whose precondition does not hold.
	ErrActionDisabled = errors.New("action disabled")

	// ErrUnknownAction indicates an action name that is not in the table.
	ErrUnknownAction = errors.New("unknown action")

	// ErrStaleCompletion indicates a request finished for a document that
	// is no longer active. It is safe to ignore.
	ErrStaleCompletion = errors.New("completion for inactive document")

	// ErrRequestInFlight indicates the document already has a store request running.
	ErrRequestInFlight = errors.New("request in flight")
)

// GenericSaveFailure is shown when the store fails without a usable message.
const GenericSaveFailure = "Something went wrong!"

// SaveError is a failed save as reported to the user.
// Kind is ErrSaveRejected or ErrMalformedErrorResponse.
type SaveError struct {
	Message string
	Kind    error
}

// NewSaveError builds a SaveError from the store's message.
// A blank message means the response could not be interpreted.
func NewSaveError(message string) *SaveError {
	if message == "" {
		return &SaveError{Message: GenericSaveFailure, Kind: ErrMalformedErrorResponse}
	}
	return &SaveError{Message: message, Kind: ErrSaveRejected}
}

func (e *SaveError) Error() string {
	return e.Message
}

func (e *SaveError) Unwrap() error {
	return e.Kind
}
