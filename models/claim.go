package models

import "time"

// StatusSubmitted is the server-assigned default status of a freshly
// saved claim.
const StatusSubmitted = "submitted"

// Claim represents one saved appeal case: the insurance provider, the
// disputed bill amount, the drafted appeal letter, and the owning account.
//
// Claims are insert-only: the service never updates or deletes a saved
// claim, and resubmitting the same data creates a new row.
type Claim struct {
	// ClaimID is the server-assigned unique identifier of the claim.
	ClaimID int64 `json:"claim_id"`

	// UserID is the owner of the claim. It is always stamped from the
	// authenticated session identity, never taken from the request body.
	UserID int64 `json:"user_id"`

	// InsuranceCompany is the name of the insurance provider the appeal
	// is addressed to.
	InsuranceCompany string `json:"insurance_company"`

	// BillAmount is the disputed bill value in dollars. Must be >= 0.
	BillAmount float64 `json:"bill_amount"`

	// AppealLetter is the final (possibly user-edited) appeal letter text.
	AppealLetter string `json:"appeal_letter"`

	// Status is the processing status of the claim. Defaults to
	// StatusSubmitted on insert.
	Status string `json:"status"`

	// CreatedAt is the server-assigned creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Claim model.
func (c Claim) TableName() string {
	return "claims"
}

// ClaimFilter narrows and pages a claim-history query.
type ClaimFilter struct {
	// UserID restricts results to one owner. Zero means unfiltered;
	// only admin sessions may query unfiltered.
	UserID int64

	// Limit caps the number of returned rows. Zero means no limit,
	// matching the unbounded behavior of the hosted-table original.
	Limit uint64

	// Offset skips rows for pagination. Ignored when zero.
	Offset uint64
}

// ClaimSummary aggregates the claims table for the admin analytics view.
type ClaimSummary struct {
	// TotalClaims is the number of saved claims across all users.
	TotalClaims int64 `json:"total_claims"`

	// TotalDisputed is the sum of all disputed bill amounts.
	TotalDisputed float64 `json:"total_disputed"`

	// PerCompany breaks totals down by insurance provider,
	// ordered by disputed amount descending.
	PerCompany []CompanyTotal `json:"per_company"`
}

// CompanyTotal is one per-provider row of the analytics breakdown.
type CompanyTotal struct {
	InsuranceCompany string  `json:"insurance_company"`
	Claims           int64   `json:"claims"`
	Disputed         float64 `json:"disputed"`
}
