package service

import (
	"context"
	"fmt"

	"github.com/complyra/claimshield/internal/adapter"
	"github.com/complyra/claimshield/internal/logger"
	"github.com/complyra/claimshield/models"
)

// appealService is the concrete implementation of AppealService.
// It chains the OCR provider and the chat-completion provider: the recognized
// bill text is fed straight into the letter-drafting prompt.
type appealService struct {
	ocr    adapter.OCRClient
	llm    adapter.LLMClient
	logger *logger.Logger
}

func NewAppealService(ocr adapter.OCRClient, llm adapter.LLMClient, logger *logger.Logger) AppealService {
	return &appealService{
		ocr:    ocr,
		llm:    llm,
		logger: logger,
	}
}

// Analyze runs the full analysis pipeline on one uploaded bill image.
//
// The image is submitted to the OCR provider first; only when text was
// recognized is the chat-completion provider asked to draft a letter. An
// image with no recognizable text never reaches the drafting step.
//
// Returns both the extracted text and the drafted letter, or:
//   - ErrInvalidDataProvided if the image is empty.
//   - adapter.ErrNoTextRecognized (wrapped) when OCR finds no text.
//   - A wrapped adapter error for any provider failure.
func (a *appealService) Analyze(ctx context.Context, filename string, image []byte) (models.AnalyzeResult, error) {
	log := logger.FromContext(ctx)

	if len(image) == 0 {
		log.Error().Str("filename", filename).Msg("empty image provided for analysis")
		return models.AnalyzeResult{}, ErrInvalidDataProvided
	}

	extractedText, err := a.ocr.ExtractText(ctx, filename, image)
	if err != nil {
		log.Err(err).Str("filename", filename).Msg("text extraction failed")
		return models.AnalyzeResult{}, fmt.Errorf("text extraction failed: %w", err)
	}

	appealLetter, err := a.llm.DraftAppealLetter(ctx, extractedText)
	if err != nil {
		log.Err(err).Str("filename", filename).Msg("appeal letter drafting failed")
		return models.AnalyzeResult{}, fmt.Errorf("appeal letter drafting failed: %w", err)
	}

	return models.AnalyzeResult{
		ExtractedText: extractedText,
		AppealLetter:  appealLetter,
	}, nil
}
