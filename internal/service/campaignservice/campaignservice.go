package campaignservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pawhaven/fundraising/internal/domain"
)

type CampaignRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Campaign, error)
	FindByStatuses(ctx context.Context, statuses []string, limit, offset int) ([]domain.Campaign, error)
	Save(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error)
	Update(ctx context.Context, campaign *domain.Campaign) error
	UpdateStatus(ctx context.Context, id int, from, to string) (bool, error)
	Delete(ctx context.Context, id int) error
	AddToRaised(ctx context.Context, id int, amount decimal.Decimal) (*domain.Campaign, error)
	SubtractFromRaised(ctx context.Context, id int, amount decimal.Decimal) (*domain.Campaign, error)
	FindExpiredOngoing(ctx context.Context, today time.Time, limit uint32) ([]domain.Campaign, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindFirstAdmin(ctx context.Context) (*domain.User, error)
}

type DonationCounter interface {
	CountByCampaignID(ctx context.Context, campaignID int) (int, error)
}

type Service struct {
	campaignRepo  CampaignRepo
	userRepo      UserRepo
	donationCount DonationCounter
}

func New(campaignRepo CampaignRepo, userRepo UserRepo, donationCount DonationCounter) *Service {
	return &Service{
		campaignRepo:  campaignRepo,
		userRepo:      userRepo,
		donationCount: donationCount,
	}
}

const (
	// PendingStatus awaits administrative approval.
	PendingStatus string = "PENDING"
	// OngoingStatus is the only status accepting donations.
	OngoingStatus string = "ONGOING"
	// CompleteStatus is reached by administrative action or end-date expiry.
	CompleteStatus string = "COMPLETE"
	// RejectedStatus terminates a campaign that was never approved.
	RejectedStatus string = "REJECTED"
	// CancelledStatus terminates a campaign while preserving its ledger.
	CancelledStatus string = "CANCELLED"
)

var (
	ErrCampaignNotFound      = errors.New("campaign not found")
	ErrHasDependentDonations = errors.New("campaign has donations and cannot be deleted")
	ErrStatusNotAllowed      = errors.New("requested status is not visible for this role")
	ErrInvalidTransition     = errors.New("status transition not allowed")
	ErrTransitionConflict    = errors.New("campaign status changed concurrently")
)

// ValidationError carries the offending field so callers can correct the
// request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// COMPLETE, REJECTED and CANCELLED are terminal. Re-opening a terminal
// campaign is intentionally not supported.
var allowedTransitions = map[string][]string{
	PendingStatus: {OngoingStatus, CancelledStatus, RejectedStatus},
	OngoingStatus: {CompleteStatus, CancelledStatus, RejectedStatus},
}

func validStatus(status string) bool {
	switch status {
	case PendingStatus, OngoingStatus, CompleteStatus, RejectedStatus, CancelledStatus:
		return true
	}
	return false
}

func CanTransition(from, to string) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func validateCampaign(campaign *domain.Campaign) error {
	if campaign.Title == "" {
		return &ValidationError{Field: "title", Reason: "is required"}
	}
	if campaign.TargetAmount.IsNegative() {
		return &ValidationError{Field: "target_amount", Reason: "must not be negative"}
	}
	if !validStatus(campaign.Status) {
		return &ValidationError{Field: "status", Reason: "unknown status " + campaign.Status}
	}
	return nil
}

func (s *Service) Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	if campaign.Status == "" {
		campaign.Status = PendingStatus
	}
	if campaign.Status != PendingStatus && campaign.Status != OngoingStatus {
		return nil, &ValidationError{Field: "status", Reason: "new campaigns start as PENDING or ONGOING"}
	}
	if err := validateCampaign(campaign); err != nil {
		return nil, err
	}

	// A new campaign has no ledger entries yet.
	campaign.RaisedAmount = decimal.Zero

	created, err := s.campaignRepo.Save(ctx, campaign)
	if err != nil {
		zap.L().Error("failed to create campaign", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get campaign", zap.Error(err))
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	return campaign, nil
}

// UpdateCampaign lists the mutable fields; nil means leave unchanged.
type UpdateCampaign struct {
	Title        *string
	Description  *string
	TargetAmount *decimal.Decimal
	EndDate      *time.Time
	Images       *[]string
	Status       *string
}

func (s *Service) Update(ctx context.Context, id int, upd UpdateCampaign) (*domain.Campaign, error) {
	campaign, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Status != nil && *upd.Status != campaign.Status {
		if err := s.Transition(ctx, campaign, *upd.Status); err != nil {
			return nil, err
		}
	}

	if upd.Title != nil {
		campaign.Title = *upd.Title
	}
	if upd.Description != nil {
		campaign.Description = *upd.Description
	}
	if upd.TargetAmount != nil {
		campaign.TargetAmount = *upd.TargetAmount
	}
	if upd.EndDate != nil {
		campaign.EndDate = upd.EndDate
	}
	if upd.Images != nil {
		campaign.Images = *upd.Images
	}
	if err := validateCampaign(campaign); err != nil {
		return nil, err
	}

	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		zap.L().Error("failed to update campaign", zap.Error(err))
		return nil, err
	}
	return campaign, nil
}

// Transition applies a status change after checking it against the
// transition table. The repository re-checks the from-status, so a campaign
// transitioned concurrently is reported as a conflict instead of being
// overwritten.
func (s *Service) Transition(ctx context.Context, campaign *domain.Campaign, to string) error {
	if !validStatus(to) {
		return &ValidationError{Field: "status", Reason: "unknown status " + to}
	}
	if !CanTransition(campaign.Status, to) {
		zap.L().Info("transition rejected",
			zap.Int("campaignID", campaign.ID),
			zap.String("from", campaign.Status),
			zap.String("to", to),
		)
		return ErrInvalidTransition
	}

	changed, err := s.campaignRepo.UpdateStatus(ctx, campaign.ID, campaign.Status, to)
	if err != nil {
		zap.L().Error("failed to transition campaign", zap.Error(err))
		return err
	}
	if !changed {
		return ErrTransitionConflict
	}
	campaign.Status = to
	return nil
}

// Delete refuses to erase a campaign with ledger history; such campaigns
// should be cancelled instead.
func (s *Service) Delete(ctx context.Context, id int) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	count, err := s.donationCount.CountByCampaignID(ctx, id)
	if err != nil {
		zap.L().Error("failed to count donations", zap.Error(err))
		return err
	}
	if count > 0 {
		return ErrHasDependentDonations
	}

	return s.campaignRepo.Delete(ctx, id)
}
