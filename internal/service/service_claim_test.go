package service

import (
	"context"
	"testing"

	"github.com/complyra/claimshield/internal/logger"
	"github.com/complyra/claimshield/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.ClaimRepository
// ─────────────────────────────────────────────

type mockClaimRepository struct {
	saveClaimFn  func(ctx context.Context, claim models.Claim) (models.Claim, error)
	listClaimsFn func(ctx context.Context, filter models.ClaimFilter) ([]models.Claim, error)
	summarizeFn  func(ctx context.Context) (models.ClaimSummary, error)
}

func (m *mockClaimRepository) SaveClaim(ctx context.Context, claim models.Claim) (models.Claim, error) {
	if m.saveClaimFn != nil {
		return m.saveClaimFn(ctx, claim)
	}
	return claim, nil
}

func (m *mockClaimRepository) ListClaims(ctx context.Context, filter models.ClaimFilter) ([]models.Claim, error) {
	if m.listClaimsFn != nil {
		return m.listClaimsFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockClaimRepository) Summarize(ctx context.Context) (models.ClaimSummary, error) {
	if m.summarizeFn != nil {
		return m.summarizeFn(ctx)
	}
	return models.ClaimSummary{}, nil
}

var (
	userIdentity  = models.Identity{UserID: 42, Role: models.RoleUser}
	adminIdentity = models.Identity{UserID: 1, Role: models.RoleAdmin}
)

// ─────────────────────────────────────────────
// Save
// ─────────────────────────────────────────────

func TestClaimService_Save_StampsOwnerFromIdentity(t *testing.T) {
	repo := &mockClaimRepository{
		saveClaimFn: func(_ context.Context, claim models.Claim) (models.Claim, error) {
			assert.Equal(t, int64(42), claim.UserID, "owner must come from the session identity")

			claim.ClaimID = 7
			claim.Status = models.StatusSubmitted
			return claim, nil
		},
	}
	svc := NewClaimService(repo, logger.Nop())

	saved, err := svc.Save(context.Background(), userIdentity, models.Claim{
		UserID:           999, // payload value must be discarded
		InsuranceCompany: "Acme Health",
		BillAmount:       1200.50,
		AppealLetter:     "Dear Sir or Madam...",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), saved.ClaimID)
	assert.Equal(t, int64(42), saved.UserID)
	assert.Equal(t, models.StatusSubmitted, saved.Status)
}

func TestClaimService_Save_InvalidClaim(t *testing.T) {
	svc := NewClaimService(&mockClaimRepository{}, logger.Nop())

	tests := []struct {
		name  string
		claim models.Claim
	}{
		{"no insurance company", models.Claim{BillAmount: 10, AppealLetter: "letter"}},
		{"no appeal letter", models.Claim{InsuranceCompany: "Acme Health", BillAmount: 10}},
		{"negative bill amount", models.Claim{InsuranceCompany: "Acme Health", BillAmount: -1, AppealLetter: "letter"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Save(context.Background(), userIdentity, tt.claim)
			require.ErrorIs(t, err, ErrInvalidClaim)
		})
	}
}

func TestClaimService_Save_ZeroAmountIsValid(t *testing.T) {
	svc := NewClaimService(&mockClaimRepository{}, logger.Nop())

	_, err := svc.Save(context.Background(), userIdentity, models.Claim{
		InsuranceCompany: "Acme Health",
		BillAmount:       0,
		AppealLetter:     "letter",
	})

	require.NoError(t, err)
}

func TestClaimService_Save_RepositoryError(t *testing.T) {
	repo := &mockClaimRepository{
		saveClaimFn: func(_ context.Context, _ models.Claim) (models.Claim, error) {
			return models.Claim{}, errRepository
		},
	}
	svc := NewClaimService(repo, logger.Nop())

	_, err := svc.Save(context.Background(), userIdentity, models.Claim{
		InsuranceCompany: "Acme Health",
		BillAmount:       10,
		AppealLetter:     "letter",
	})

	require.ErrorIs(t, err, errRepository)
}

// ─────────────────────────────────────────────
// History
// ─────────────────────────────────────────────

func TestClaimService_History_UserIsForcedOntoOwnRows(t *testing.T) {
	repo := &mockClaimRepository{
		listClaimsFn: func(_ context.Context, filter models.ClaimFilter) ([]models.Claim, error) {
			assert.Equal(t, int64(42), filter.UserID)
			assert.Equal(t, uint64(10), filter.Limit)
			return []models.Claim{{ClaimID: 7, UserID: 42}}, nil
		},
	}
	svc := NewClaimService(repo, logger.Nop())

	// A non-admin asking for someone else's rows gets their own instead.
	claims, err := svc.History(context.Background(), userIdentity, models.ClaimFilter{UserID: 999, Limit: 10})

	require.NoError(t, err)
	require.Len(t, claims, 1)
	assert.Equal(t, int64(42), claims[0].UserID)
}

func TestClaimService_History_AdminSeesAllRows(t *testing.T) {
	repo := &mockClaimRepository{
		listClaimsFn: func(_ context.Context, filter models.ClaimFilter) ([]models.Claim, error) {
			assert.Zero(t, filter.UserID)
			return []models.Claim{{ClaimID: 1, UserID: 42}, {ClaimID: 2, UserID: 43}}, nil
		},
	}
	svc := NewClaimService(repo, logger.Nop())

	claims, err := svc.History(context.Background(), adminIdentity, models.ClaimFilter{})

	require.NoError(t, err)
	assert.Len(t, claims, 2)
}

func TestClaimService_History_RepositoryError(t *testing.T) {
	repo := &mockClaimRepository{
		listClaimsFn: func(_ context.Context, _ models.ClaimFilter) ([]models.Claim, error) {
			return nil, errRepository
		},
	}
	svc := NewClaimService(repo, logger.Nop())

	_, err := svc.History(context.Background(), userIdentity, models.ClaimFilter{})

	require.ErrorIs(t, err, errRepository)
}

// ─────────────────────────────────────────────
// Summary
// ─────────────────────────────────────────────

func TestClaimService_Summary_AdminOnly(t *testing.T) {
	called := false
	repo := &mockClaimRepository{
		summarizeFn: func(_ context.Context) (models.ClaimSummary, error) {
			called = true
			return models.ClaimSummary{}, nil
		},
	}
	svc := NewClaimService(repo, logger.Nop())

	_, err := svc.Summary(context.Background(), userIdentity)

	require.ErrorIs(t, err, ErrForbidden)
	assert.False(t, called, "the repository must not be queried for a forbidden request")
}

func TestClaimService_Summary_Success(t *testing.T) {
	expected := models.ClaimSummary{
		TotalClaims:   3,
		TotalDisputed: 4521.75,
		PerCompany: []models.CompanyTotal{
			{InsuranceCompany: "Acme Health", Claims: 2, Disputed: 3200.00},
			{InsuranceCompany: "Umbrella Care", Claims: 1, Disputed: 1321.75},
		},
	}
	repo := &mockClaimRepository{
		summarizeFn: func(_ context.Context) (models.ClaimSummary, error) {
			return expected, nil
		},
	}
	svc := NewClaimService(repo, logger.Nop())

	summary, err := svc.Summary(context.Background(), adminIdentity)

	require.NoError(t, err)
	assert.Equal(t, expected, summary)
}
