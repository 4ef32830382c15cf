package service

import (
	"context"

	"github.com/complyra/claimshield/models"
)

type AuthService interface {
	Register(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppealService runs the two-step analysis pipeline: OCR the uploaded bill
// image, then draft an appeal letter from the recognized text.
type AppealService interface {
	Analyze(ctx context.Context, filename string, image []byte) (models.AnalyzeResult, error)
}

type ClaimService interface {
	// Save persists a claim on behalf of the session identity. The claim
	// owner is always the identity's user, regardless of request payload.
	Save(ctx context.Context, identity models.Identity, claim models.Claim) (models.Claim, error)

	// History lists saved claims newest first. Non-admin sessions are
	// forced onto their own rows; admin sessions see everything.
	History(ctx context.Context, identity models.Identity, filter models.ClaimFilter) ([]models.Claim, error)

	// Summary aggregates all claims for the analytics view. Admin only.
	Summary(ctx context.Context, identity models.Identity) (models.ClaimSummary, error)
}

// ExportService renders downloadable documents from claim data.
type ExportService interface {
	LetterPDF(letter string) ([]byte, error)
	SummaryXLSX(summary models.ClaimSummary, claims []models.Claim) ([]byte, error)
}
