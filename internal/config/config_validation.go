package config

import "time"

// Fallback values applied after all configuration sources are merged.
// They mirror the public endpoints and model the hosted revisions targeted.
const (
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultTokenIssuer    = "claimshield"
	defaultTokenDuration  = 24 * time.Hour
	defaultOCRBaseURL     = "https://api.ocr.space"
	defaultOCREngine      = 2
	defaultOCRTimeout     = 30 * time.Second
	defaultLLMBaseURL     = "https://api.groq.com/openai"
	defaultLLMModel       = "llama-3.1-70b-versatile"
	defaultLLMTimeout     = time.Minute
)

// applyDefaults fills non-secret fields that remained zero after the merge.
// Secrets (token sign key, API keys, DSN) have no defaults and must be
// supplied explicitly; validate rejects their absence.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.OCR.BaseURL == "" {
		cfg.OCR.BaseURL = defaultOCRBaseURL
	}
	if cfg.OCR.Engine == 0 {
		cfg.OCR.Engine = defaultOCREngine
	}
	if cfg.OCR.Timeout == 0 {
		cfg.OCR.Timeout = defaultOCRTimeout
	}
	if cfg.LLM.BaseURL == "" {
		cfg.LLM.BaseURL = defaultLLMBaseURL
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = defaultLLMModel
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = defaultLLMTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Missing secrets are
// rejected here rather than surfacing later as opaque provider errors.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.OCR.APIKey == "" {
		return ErrInvalidOCRConfigs
	}

	if cfg.LLM.APIKey == "" {
		return ErrInvalidLLMConfigs
	}

	return nil
}
