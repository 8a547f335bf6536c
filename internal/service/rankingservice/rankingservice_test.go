package rankingservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/pawhaven/fundraising/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockDonationRepo) {
	ctrl := gomock.NewController(t)
	donationRepo := NewMockDonationRepo(ctrl)
	service := New(donationRepo, 7, 10)
	defer ctrl.Finish()
	return service, donationRepo
}

func TestService_TopDonors(t *testing.T) {
	service, donationRepo := NewMock(t)
	jan1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	jan5 := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	t.Run("Donations aggregated per donor and ranked by total", func(t *testing.T) {
		donationRepo.EXPECT().FindAttributedSince(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, since *time.Time, campaignID *int) ([]domain.AttributedDonation, error) {
				assert.NotNil(t, since)
				assert.Nil(t, campaignID)
				return []domain.AttributedDonation{
					{DonorID: 1, DonorName: "Jamie", Amount: decimal.NewFromInt(100), DonatedAt: jan1},
					{DonorID: 2, DonorName: "Sam", Amount: decimal.NewFromInt(300), DonatedAt: jan1},
					{DonorID: 1, DonorName: "Jamie", Amount: decimal.NewFromInt(250), DonatedAt: jan5},
				}, nil
			})

		board, err := service.TopDonors(context.Background(), Query{})
		assert.NoError(t, err)
		assert.Equal(t, "last 7 days", board.Window)
		assert.Len(t, board.Donors, 2)

		assert.Equal(t, 1, board.Donors[0].Rank)
		assert.Equal(t, 1, board.Donors[0].DonorID)
		assert.True(t, decimal.NewFromInt(350).Equal(board.Donors[0].TotalAmount))
		assert.Equal(t, 2, board.Donors[0].DonationCount)
		assert.Equal(t, jan5, board.Donors[0].LastDonatedAt)

		assert.Equal(t, 2, board.Donors[1].Rank)
		assert.Equal(t, 2, board.Donors[1].DonorID)
	})

	t.Run("Equal totals broken by count then recency", func(t *testing.T) {
		donationRepo.EXPECT().FindAttributedSince(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]domain.AttributedDonation{
				// A: 500 over 2 donations, last Jan 5.
				{DonorID: 1, DonorName: "A", Amount: decimal.NewFromInt(250), DonatedAt: jan1},
				{DonorID: 1, DonorName: "A", Amount: decimal.NewFromInt(250), DonatedAt: jan5},
				// B: 500 over 3 donations, last Jan 1.
				{DonorID: 2, DonorName: "B", Amount: decimal.NewFromInt(200), DonatedAt: jan1},
				{DonorID: 2, DonorName: "B", Amount: decimal.NewFromInt(200), DonatedAt: jan1},
				{DonorID: 2, DonorName: "B", Amount: decimal.NewFromInt(100), DonatedAt: jan1},
				// C: 500 over 2 donations, last Jan 1: loses to A on recency.
				{DonorID: 3, DonorName: "C", Amount: decimal.NewFromInt(250), DonatedAt: jan1},
				{DonorID: 3, DonorName: "C", Amount: decimal.NewFromInt(250), DonatedAt: jan1},
			}, nil)

		board, err := service.TopDonors(context.Background(), Query{})
		assert.NoError(t, err)
		assert.Len(t, board.Donors, 3)
		assert.Equal(t, "B", board.Donors[0].DonorName)
		assert.Equal(t, "A", board.Donors[1].DonorName)
		assert.Equal(t, "C", board.Donors[2].DonorName)
	})

	t.Run("All-time query passes no lower bound", func(t *testing.T) {
		donationRepo.EXPECT().FindAttributedSince(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, since *time.Time, _ *int) ([]domain.AttributedDonation, error) {
				assert.Nil(t, since)
				return nil, nil
			})

		board, err := service.TopDonors(context.Background(), Query{AllTime: true})
		assert.NoError(t, err)
		assert.Equal(t, "all time", board.Window)
		assert.Empty(t, board.Donors)
	})

	t.Run("Limit truncates after ranking", func(t *testing.T) {
		donationRepo.EXPECT().FindAttributedSince(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]domain.AttributedDonation{
				{DonorID: 1, DonorName: "A", Amount: decimal.NewFromInt(100), DonatedAt: jan1},
				{DonorID: 2, DonorName: "B", Amount: decimal.NewFromInt(300), DonatedAt: jan1},
				{DonorID: 3, DonorName: "C", Amount: decimal.NewFromInt(200), DonatedAt: jan1},
			}, nil)

		board, err := service.TopDonors(context.Background(), Query{Limit: 2})
		assert.NoError(t, err)
		assert.Len(t, board.Donors, 2)
		assert.Equal(t, "B", board.Donors[0].DonorName)
		assert.Equal(t, "C", board.Donors[1].DonorName)
	})

	t.Run("Campaign filter forwarded to the ledger", func(t *testing.T) {
		campaignID := 5
		donationRepo.EXPECT().FindAttributedSince(gomock.Any(), gomock.Any(), &campaignID).
			Return(nil, nil)

		board, err := service.TopDonors(context.Background(), Query{Days: 30, CampaignID: &campaignID})
		assert.NoError(t, err)
		assert.Equal(t, "last 30 days", board.Window)
	})

	t.Run("Ledger error", func(t *testing.T) {
		donationRepo.EXPECT().FindAttributedSince(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("some error"))

		board, err := service.TopDonors(context.Background(), Query{})
		assert.Error(t, err)
		assert.Nil(t, board)
	})
}
