package store

import (
	"context"
	"fmt"

	"github.com/complyra/claimshield/internal/logger"
	"github.com/complyra/claimshield/models"
	"github.com/jackc/pgerrcode"
)

// claimRepository is the PostgreSQL-backed implementation of
// [ClaimRepository]. It handles inserts and role-scoped history queries
// against the "claims" table.
type claimRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewClaimRepository constructs a [ClaimRepository] backed by the provided
// database connection and logger.
func NewClaimRepository(db *DB, logger *logger.Logger) ClaimRepository {
	logger.Debug().Msg("creating claim repository")
	return &claimRepository{
		db:     db,
		logger: logger,
	}
}

// SaveClaim persists one claim row and returns the fully populated
// [models.Claim] with server-assigned fields (ClaimID, Status, CreatedAt).
//
// Inserts are intentionally not deduplicated: saving identical data twice
// produces two rows, matching the save semantics of the appeal workflow.
//
// Error handling:
//   - PostgreSQL check_violation (23514, negative amount) and
//     foreign_key_violation (23503, unknown user) → [ErrClaimNotSaved].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *claimRepository) SaveClaim(ctx context.Context, claim models.Claim) (models.Claim, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, saveClaim, claim.UserID, claim.InsuranceCompany, claim.BillAmount, claim.AppealLetter)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*claimRepository.SaveClaim").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.CheckViolation, pgerrcode.ForeignKeyViolation:
			return models.Claim{}, ErrClaimNotSaved
		default:
			return models.Claim{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&claim.ClaimID, &claim.UserID, &claim.InsuranceCompany, &claim.BillAmount, &claim.AppealLetter, &claim.Status, &claim.CreatedAt); err != nil {
		log.Err(err).Str("func", "*claimRepository.SaveClaim").Msg("error: scanning error")

		switch postgresError(err) {
		case pgerrcode.CheckViolation, pgerrcode.ForeignKeyViolation:
			return models.Claim{}, ErrClaimNotSaved
		default:
			return models.Claim{}, err
		}
	}

	return claim, nil
}

// ListClaims returns claims matching the filter, ordered newest first.
//
// The SELECT is built dynamically by [buildListClaimsQuery]: a zero filter
// UserID produces the unfiltered admin variant, a non-zero Limit/Offset pages
// the result set.
func (r *claimRepository) ListClaims(ctx context.Context, filter models.ClaimFilter) ([]models.Claim, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListClaimsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*claimRepository.ListClaims").Msg("error building list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*claimRepository.ListClaims").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	claims := make([]models.Claim, 0)
	for rows.Next() {
		var claim models.Claim
		if err := rows.Scan(&claim.ClaimID, &claim.UserID, &claim.InsuranceCompany, &claim.BillAmount, &claim.AppealLetter, &claim.Status, &claim.CreatedAt); err != nil {
			log.Err(err).Str("func", "*claimRepository.ListClaims").Msg("error scanning claim row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		claims = append(claims, claim)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return claims, nil
}

// Summarize aggregates the whole claims table: the overall claim count and
// disputed sum plus a per-company breakdown ordered by disputed amount.
func (r *claimRepository) Summarize(ctx context.Context) (models.ClaimSummary, error) {
	log := logger.FromContext(ctx)

	var summary models.ClaimSummary

	row := r.db.QueryRowContext(ctx, summarizeTotals)
	if err := row.Scan(&summary.TotalClaims, &summary.TotalDisputed); err != nil {
		log.Err(err).Str("func", "*claimRepository.Summarize").Msg("error scanning totals")
		return models.ClaimSummary{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	rows, err := r.db.QueryContext(ctx, summarizePerCompany)
	if err != nil {
		log.Err(err).Str("func", "*claimRepository.Summarize").Msg("error executing per-company query")
		return models.ClaimSummary{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var total models.CompanyTotal
		if err := rows.Scan(&total.InsuranceCompany, &total.Claims, &total.Disputed); err != nil {
			return models.ClaimSummary{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		summary.PerCompany = append(summary.PerCompany, total)
	}

	if err := rows.Err(); err != nil {
		return models.ClaimSummary{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return summary, nil
}
