package adapter

import "errors"

// Sentinel errors returned by the external service adapters. Callers match
// them with [errors.Is] to decide between a user-facing message and a
// gateway failure.
var (
	// ErrNoTextRecognized is returned when the OCR provider processes the
	// image successfully but produces no parsed results. The original
	// behavior silently did nothing here; surfacing the condition lets the
	// caller tell the user that the scan was empty.
	ErrNoTextRecognized = errors.New("no text recognized in the uploaded image")

	// ErrOCRFailed is returned when the OCR provider reports a processing
	// failure or responds with a non-2xx status.
	ErrOCRFailed = errors.New("OCR provider failed to process the image")

	// ErrEmptyCompletion is returned when the chat-completion provider
	// responds without any choices.
	ErrEmptyCompletion = errors.New("completion response contains no choices")

	// ErrLLMFailed is returned when the chat-completion provider responds
	// with a non-2xx status.
	ErrLLMFailed = errors.New("chat-completion provider request failed")
)
