package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input, such as a
	// threshold outside [0,100].
	ErrInvalidInput = errors.New("invalid input")

	// ErrInputNotFound indicates a referenced document does not exist
	// or cannot be opened. Reported before any processing begins.
	ErrInputNotFound = errors.New("input document not found")

	// ErrUnsupportedFormat indicates no extractor is registered for the
	// document's container format.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrExtractionFailed indicates the extractor rejected malformed
	// document content. Fatal for the run; never retried.
	ErrExtractionFailed = errors.New("text extraction failed")

	// ErrFuzzyUnavailable indicates the fuzzy scoring capability is not
	// configured. Alignment has no meaningful fallback, so this is a
	// hard error rather than a silent degradation.
	ErrFuzzyUnavailable = errors.New("fuzzy scorer unavailable")
)
