package rankingservice

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/pawhaven/fundraising/internal/domain"
)

type DonationRepo interface {
	FindAttributedSince(ctx context.Context, since *time.Time, campaignID *int) ([]domain.AttributedDonation, error)
}

type Service struct {
	donationRepo DonationRepo
	defaultDays  int
	defaultLimit int
}

func New(donationRepo DonationRepo, defaultDays, defaultLimit int) *Service {
	return &Service{
		donationRepo: donationRepo,
		defaultDays:  defaultDays,
		defaultLimit: defaultLimit,
	}
}

// Query parameterizes one leaderboard computation. Days 0 with AllTime set
// means no lower bound; otherwise Days defaults to the configured window.
type Query struct {
	AllTime    bool
	Days       int
	Limit      int
	CampaignID *int
}

type Leaderboard struct {
	Window      string
	GeneratedAt time.Time
	Donors      []domain.RankedDonor
}

// TopDonors recomputes the leaderboard from the raw ledger on every call.
// The cached campaign totals are never consulted, so reconciliation drift
// cannot leak into rankings.
func (s *Service) TopDonors(ctx context.Context, query Query) (*Leaderboard, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}

	var since *time.Time
	window := "all time"
	if !query.AllTime {
		days := query.Days
		if days <= 0 {
			days = s.defaultDays
		}
		lowerBound := time.Now().AddDate(0, 0, -days)
		since = &lowerBound
		window = fmt.Sprintf("last %d days", days)
	}

	donations, err := s.donationRepo.FindAttributedSince(ctx, since, query.CampaignID)
	if err != nil {
		zap.L().Error("failed to fetch ledger for ranking", zap.Error(err))
		return nil, err
	}

	aggregates := make(map[int]*domain.DonorAggregate)
	for _, donation := range donations {
		agg, ok := aggregates[donation.DonorID]
		if !ok {
			agg = &domain.DonorAggregate{
				DonorID:   donation.DonorID,
				DonorName: donation.DonorName,
			}
			aggregates[donation.DonorID] = agg
		}
		agg.TotalAmount = agg.TotalAmount.Add(donation.Amount)
		agg.DonationCount++
		if donation.DonatedAt.After(agg.LastDonatedAt) {
			agg.LastDonatedAt = donation.DonatedAt
		}
	}

	ranked := make([]domain.DonorAggregate, 0, len(aggregates))
	for _, agg := range aggregates {
		ranked = append(ranked, *agg)
	}

	// Total amount first, then donation count, then most recent donation.
	sort.SliceStable(ranked, func(i, j int) bool {
		if !ranked[i].TotalAmount.Equal(ranked[j].TotalAmount) {
			return ranked[i].TotalAmount.GreaterThan(ranked[j].TotalAmount)
		}
		if ranked[i].DonationCount != ranked[j].DonationCount {
			return ranked[i].DonationCount > ranked[j].DonationCount
		}
		return ranked[i].LastDonatedAt.After(ranked[j].LastDonatedAt)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	donors := make([]domain.RankedDonor, len(ranked))
	for i, agg := range ranked {
		donors[i] = domain.RankedDonor{
			Rank:          i + 1,
			DonorID:       agg.DonorID,
			DonorName:     agg.DonorName,
			TotalAmount:   agg.TotalAmount,
			DonationCount: agg.DonationCount,
			LastDonatedAt: agg.LastDonatedAt,
		}
	}

	return &Leaderboard{
		Window:      window,
		GeneratedAt: time.Now(),
		Donors:      donors,
	}, nil
}
