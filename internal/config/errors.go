package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidOCRConfigs indicates invalid OCR provider settings
	// (for example, a missing API key).
	ErrInvalidOCRConfigs = errors.New("invalid OCR configuration")
	// ErrInvalidLLMConfigs indicates invalid chat-completion provider
	// settings (for example, a missing API key).
	ErrInvalidLLMConfigs = errors.New("invalid LLM configuration")
)
