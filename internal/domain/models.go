package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

type Campaign struct {
	ID           int             `db:"id"`
	Title        string          `db:"title"`
	Description  string          `db:"description"`
	TargetAmount decimal.Decimal `db:"target_amount"`
	RaisedAmount decimal.Decimal `db:"raised_amount"`
	Status       string          `db:"status"`
	EndDate      *time.Time      `db:"end_date"`
	Images       []string        `db:"images"`
	CreatedBy    *int            `db:"created_by"`
	CreatedAt    time.Time       `db:"created_at"`
}

type Donation struct {
	ID              int             `db:"id"`
	CampaignID      int             `db:"campaign_id"`
	DonorID         *int            `db:"donor_id"`
	Amount          decimal.Decimal `db:"amount"`
	Message         string          `db:"message"`
	ReferenceNumber string          `db:"reference_number"`
	ProofImage      string          `db:"proof_image"`
	IsAnonymous     bool            `db:"is_anonymous"`
	DonatedAt       time.Time       `db:"donated_at"`
}

// AttributedDonation is a ledger row joined with its donor, as consumed by
// the ranking engine. Anonymous donations never appear here.
type AttributedDonation struct {
	DonorID   int
	DonorName string
	Amount    decimal.Decimal
	DonatedAt time.Time
}

// DonorAggregate is a per-donor rollup computed from the donation ledger
// for a single ranking query. It is never persisted.
type DonorAggregate struct {
	DonorID       int
	DonorName     string
	TotalAmount   decimal.Decimal
	DonationCount int
	LastDonatedAt time.Time
}

type RankedDonor struct {
	Rank          int
	DonorID       int
	DonorName     string
	TotalAmount   decimal.Decimal
	DonationCount int
	LastDonatedAt time.Time
}
