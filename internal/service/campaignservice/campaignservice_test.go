package campaignservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/pawhaven/fundraising/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockCampaignRepo, *MockUserRepo, *MockDonationCounter) {
	ctrl := gomock.NewController(t)
	campaignRepo := NewMockCampaignRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	donationCount := NewMockDonationCounter(ctrl)
	service := New(campaignRepo, userRepo, donationCount)
	defer ctrl.Finish()
	return service, campaignRepo, userRepo, donationCount
}

func TestService_Create(t *testing.T) {
	service, campaignRepo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		campaign      *domain.Campaign
		prepareMock   func()
		expectedError error
	}{
		{
			name: "New campaign defaults to PENDING",
			campaign: &domain.Campaign{
				Title:        "Shelter roof repair",
				TargetAmount: decimal.NewFromInt(25000),
			},
			prepareMock: func() {
				campaignRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *domain.Campaign) (*domain.Campaign, error) {
						assert.Equal(t, PendingStatus, c.Status)
						c.ID = 1
						return c, nil
					})
			},
		},
		{
			name: "Incoming raised amount is discarded",
			campaign: &domain.Campaign{
				Title:        "Vet fund",
				TargetAmount: decimal.NewFromInt(5000),
				RaisedAmount: decimal.NewFromInt(999),
				Status:       OngoingStatus,
			},
			prepareMock: func() {
				campaignRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *domain.Campaign) (*domain.Campaign, error) {
						assert.True(t, c.RaisedAmount.IsZero())
						c.ID = 2
						return c, nil
					})
			},
		},
		{
			name: "Terminal status rejected at creation",
			campaign: &domain.Campaign{
				Title:        "Old drive",
				TargetAmount: decimal.NewFromInt(100),
				Status:       CompleteStatus,
			},
			expectedError: &ValidationError{Field: "status", Reason: "new campaigns start as PENDING or ONGOING"},
		},
		{
			name: "Missing title",
			campaign: &domain.Campaign{
				TargetAmount: decimal.NewFromInt(100),
			},
			expectedError: &ValidationError{Field: "title", Reason: "is required"},
		},
		{
			name: "Negative target amount",
			campaign: &domain.Campaign{
				Title:        "Broken",
				TargetAmount: decimal.NewFromInt(-1),
			},
			expectedError: &ValidationError{Field: "target_amount", Reason: "must not be negative"},
		},
		{
			name: "Repository error",
			campaign: &domain.Campaign{
				Title:        "Vet fund",
				TargetAmount: decimal.NewFromInt(5000),
			},
			prepareMock: func() {
				campaignRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			created, err := service.Create(context.Background(), tt.campaign)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, created)
			}
		})
	}
}

func TestService_Get(t *testing.T) {
	service, campaignRepo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Campaign found",
			prepareMock: func() {
				campaignRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Campaign{ID: 1, Status: OngoingStatus}, nil)
			},
		},
		{
			name: "Campaign not found",
			prepareMock: func() {
				campaignRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrCampaignNotFound,
		},
		{
			name: "Repository error",
			prepareMock: func() {
				campaignRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			campaign, err := service.Get(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, campaign)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, campaign)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    string
		to      string
		allowed bool
	}{
		{PendingStatus, OngoingStatus, true},
		{PendingStatus, CancelledStatus, true},
		{PendingStatus, RejectedStatus, true},
		{PendingStatus, CompleteStatus, false},
		{OngoingStatus, CompleteStatus, true},
		{OngoingStatus, CancelledStatus, true},
		{OngoingStatus, RejectedStatus, true},
		{OngoingStatus, PendingStatus, false},
		{CompleteStatus, OngoingStatus, false},
		{CancelledStatus, OngoingStatus, false},
		{RejectedStatus, PendingStatus, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+" to "+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestService_Update(t *testing.T) {
	service, campaignRepo, _, _ := NewMock(t)
	newTitle := "Renamed"
	ongoing := OngoingStatus
	complete := CompleteStatus
	pending := PendingStatus

	tests := []struct {
		name          string
		upd           UpdateCampaign
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Fields updated without status change",
			upd:  UpdateCampaign{Title: &newTitle},
			prepareMock: func() {
				campaignRepo.EXPECT().FindByID(gomock.Any(), 1).
					Return(&domain.Campaign{ID: 1, Title: "Roof", TargetAmount: decimal.NewFromInt(100), Status: OngoingStatus}, nil)
				campaignRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *domain.Campaign) error {
						assert.Equal(t, "Renamed", c.Title)
						return nil
					})
			},
		},
		{
			name: "Valid status transition applied",
			upd:  UpdateCampaign{Status: &complete},
			prepareMock: func() {
				campaignRepo.EXPECT().FindByID(gomock.Any(), 1).
					Return(&domain.Campaign{ID: 1, Title: "Roof", TargetAmount: decimal.NewFromInt(100), Status: OngoingStatus}, nil)
				campaignRepo.EXPECT().UpdateStatus(gomock.Any(), 1, OngoingStatus, CompleteStatus).Return(true, nil)
				campaignRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "Terminal campaign cannot be reopened",
			upd:  UpdateCampaign{Status: &ongoing},
			prepareMock: func() {
				campaignRepo.EXPECT().FindByID(gomock.Any(), 1).
					Return(&domain.Campaign{ID: 1, Title: "Roof", TargetAmount: decimal.NewFromInt(100), Status: CompleteStatus}, nil)
			},
			expectedError: ErrInvalidTransition,
		},
		{
			name: "Ongoing campaign cannot return to pending",
			upd:  UpdateCampaign{Status: &pending},
			prepareMock: func() {
				campaignRepo.EXPECT().FindByID(gomock.Any(), 1).
					Return(&domain.Campaign{ID: 1, Title: "Roof", TargetAmount: decimal.NewFromInt(100), Status: OngoingStatus}, nil)
			},
			expectedError: ErrInvalidTransition,
		},
		{
			name: "Concurrent transition reported as conflict",
			upd:  UpdateCampaign{Status: &complete},
			prepareMock: func() {
				campaignRepo.EXPECT().FindByID(gomock.Any(), 1).
					Return(&domain.Campaign{ID: 1, Title: "Roof", TargetAmount: decimal.NewFromInt(100), Status: OngoingStatus}, nil)
				campaignRepo.EXPECT().UpdateStatus(gomock.Any(), 1, OngoingStatus, CompleteStatus).Return(false, nil)
			},
			expectedError: ErrTransitionConflict,
		},
		{
			name: "Campaign not found",
			upd:  UpdateCampaign{Title: &newTitle},
			prepareMock: func() {
				campaignRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrCampaignNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			campaign, err := service.Update(context.Background(), 1, tt.upd)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, campaign)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, campaign)
			}
		})
	}
}

func TestService_Delete(t *testing.T) {
	service, campaignRepo, _, donationCount := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Campaign without donations is deleted",
			prepareMock: func() {
				campaignRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Campaign{ID: 1, Status: PendingStatus}, nil)
				donationCount.EXPECT().CountByCampaignID(gomock.Any(), 1).Return(0, nil)
				campaignRepo.EXPECT().Delete(gomock.Any(), 1).Return(nil)
			},
		},
		{
			name: "Campaign with ledger history is protected",
			prepareMock: func() {
				campaignRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Campaign{ID: 1, Status: OngoingStatus}, nil)
				donationCount.EXPECT().CountByCampaignID(gomock.Any(), 1).Return(3, nil)
			},
			expectedError: ErrHasDependentDonations,
		},
		{
			name: "Campaign not found",
			prepareMock: func() {
				campaignRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrCampaignNotFound,
		},
		{
			name: "Count error",
			prepareMock: func() {
				campaignRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Campaign{ID: 1}, nil)
				donationCount.EXPECT().CountByCampaignID(gomock.Any(), 1).Return(0, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Delete(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
