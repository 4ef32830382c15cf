package store

import (
	"context"

	"github.com/complyra/claimshield/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields populated. Fails with ErrEmailAlreadyExists on duplicates.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves the account whose email matches the one
	// in the given user. Fails with ErrNoUserWasFound when absent.
	FindUserByEmail(ctx context.Context, user models.User) (models.User, error)
}

// ClaimRepository persists and queries saved appeal claims.
type ClaimRepository interface {
	// SaveClaim inserts one claim row and returns it with server-assigned
	// fields (ClaimID, Status, CreatedAt) populated. Inserts are never
	// deduplicated: saving the same claim twice creates two rows.
	SaveClaim(ctx context.Context, claim models.Claim) (models.Claim, error)

	// ListClaims returns claims matching the filter, newest first.
	// A zero filter UserID returns rows for all users.
	ListClaims(ctx context.Context, filter models.ClaimFilter) ([]models.Claim, error)

	// Summarize aggregates the whole claims table for the analytics view.
	Summarize(ctx context.Context) (models.ClaimSummary, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implemented by [PostgresErrorClassifier].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
