package service

import (
	"context"
	"fmt"

	"github.com/complyra/claimshield/internal/logger"
	"github.com/complyra/claimshield/internal/store"
	"github.com/complyra/claimshield/models"
)

// claimService is the concrete implementation of ClaimService.
// All authorization decisions happen here, based solely on the session
// identity passed in by the caller.
type claimService struct {
	claimRepository store.ClaimRepository
	logger          *logger.Logger
}

func NewClaimService(claimRepository store.ClaimRepository, logger *logger.Logger) ClaimService {
	return &claimService{
		claimRepository: claimRepository,
		logger:          logger,
	}
}

// Save persists one claim for the session identity.
//
// The insurance company and appeal letter must be non-empty and the bill
// amount non-negative. The claim owner is always stamped from the identity;
// any UserID in the incoming claim is discarded.
//
// Returns the saved claim with server-assigned fields populated, or:
//   - ErrInvalidClaim if validation fails.
//   - A wrapped storage error if the insert fails.
func (c *claimService) Save(ctx context.Context, identity models.Identity, claim models.Claim) (models.Claim, error) {
	log := logger.FromContext(ctx)

	if claim.InsuranceCompany == "" || claim.AppealLetter == "" || claim.BillAmount < 0 {
		log.Error().
			Str("insurance_company", claim.InsuranceCompany).
			Float64("bill_amount", claim.BillAmount).
			Msg("invalid claim data provided")
		return models.Claim{}, ErrInvalidClaim
	}

	claim.UserID = identity.UserID

	savedClaim, err := c.claimRepository.SaveClaim(ctx, claim)
	if err != nil {
		log.Err(err).Int64("user_id", identity.UserID).Msg("claim saving ended with error")
		return models.Claim{}, fmt.Errorf("claim saving ended with error: %w", err)
	}

	return savedClaim, nil
}

// History lists saved claims newest first.
//
// Non-admin identities are forced onto their own rows: the filter's UserID
// is overwritten with the session's. Admin identities keep the filter as
// requested, so a zero UserID lists claims across all accounts.
func (c *claimService) History(ctx context.Context, identity models.Identity, filter models.ClaimFilter) ([]models.Claim, error) {
	log := logger.FromContext(ctx)

	if !identity.IsAdmin() {
		filter.UserID = identity.UserID
	}

	claims, err := c.claimRepository.ListClaims(ctx, filter)
	if err != nil {
		log.Err(err).Int64("user_id", identity.UserID).Msg("claim history query failed")
		return nil, fmt.Errorf("claim history query failed: %w", err)
	}

	return claims, nil
}

// Summary aggregates the whole claims table for the analytics view.
//
// Returns ErrForbidden for non-admin identities.
func (c *claimService) Summary(ctx context.Context, identity models.Identity) (models.ClaimSummary, error) {
	log := logger.FromContext(ctx)

	if !identity.IsAdmin() {
		log.Error().Int64("user_id", identity.UserID).Str("role", identity.Role).Msg("analytics requested without admin role")
		return models.ClaimSummary{}, ErrForbidden
	}

	summary, err := c.claimRepository.Summarize(ctx)
	if err != nil {
		log.Err(err).Msg("claim summary query failed")
		return models.ClaimSummary{}, fmt.Errorf("claim summary query failed: %w", err)
	}

	return summary, nil
}
