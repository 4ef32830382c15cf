// Package adapter implements clients for the external hosted services the
// application delegates to: the OCR provider that extracts text from bill
// images and the chat-completion provider that drafts appeal letters.
//
// Adapters hide the provider wire formats behind small interfaces; the
// service layer never sees resty or provider-specific JSON.
package adapter

import "context"

// OCRClient extracts text from an uploaded bill image via the external OCR
// provider.
type OCRClient interface {
	// ExtractText submits the image bytes and returns the recognized text
	// of the first parsed result.
	//
	// Returns ErrNoTextRecognized when the provider parses the file but
	// finds no text, and ErrOCRFailed when the provider reports a
	// processing failure.
	ExtractText(ctx context.Context, filename string, image []byte) (string, error)
}

// LLMClient drafts an appeal letter from extracted bill text via the
// external chat-completion provider.
type LLMClient interface {
	// DraftAppealLetter sends the fixed advocate prompt pair with the
	// extracted text and returns the first completion choice's content.
	//
	// Returns ErrEmptyCompletion when the provider returns no choices.
	DraftAppealLetter(ctx context.Context, extractedText string) (string, error)
}
