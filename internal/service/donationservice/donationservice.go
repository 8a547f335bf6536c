package donationservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pawhaven/fundraising/internal/domain"
	"github.com/pawhaven/fundraising/internal/notify"
)

type DonationRepo interface {
	Save(ctx context.Context, donation *domain.Donation) error
	FindByID(ctx context.Context, id int) (*domain.Donation, error)
	Delete(ctx context.Context, id int) error
	UpdateMessage(ctx context.Context, id int, message string) (*domain.Donation, error)
	FindByCampaignID(ctx context.Context, campaignID, limit, offset int) ([]domain.Donation, error)
	FindAll(ctx context.Context, limit, offset int) ([]domain.Donation, error)
	CountByCampaignID(ctx context.Context, campaignID int) (int, error)
	FindAttributedSince(ctx context.Context, since *time.Time, campaignID *int) ([]domain.AttributedDonation, error)
}

type CampaignRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Campaign, error)
	AddToRaised(ctx context.Context, id int, amount decimal.Decimal) (*domain.Campaign, error)
	SubtractFromRaised(ctx context.Context, id int, amount decimal.Decimal) (*domain.Campaign, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Service struct {
	donationRepo DonationRepo
	campaignRepo CampaignRepo
	userRepo     UserRepo
	notifier     notify.Notifier
}

func New(donationRepo DonationRepo, campaignRepo CampaignRepo, userRepo UserRepo, notifier notify.Notifier) *Service {
	return &Service{
		donationRepo: donationRepo,
		campaignRepo: campaignRepo,
		userRepo:     userRepo,
		notifier:     notifier,
	}
}

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrDonationNotFound = errors.New("donation not found")
	ErrDonorNotFound    = errors.New("donor not found")
	ErrInvalidAmount    = errors.New("donation amount must be positive")
)

// NotAcceptingDonationsError reports the actual campaign status so the
// caller can tell an expired campaign from a rejected one.
type NotAcceptingDonationsError struct {
	Status string
}

func (e *NotAcceptingDonationsError) Error() string {
	return fmt.Sprintf("campaign is not accepting donations (status %s)", e.Status)
}

const warningTotalNotUpdated = "donation recorded, but the campaign total could not be updated"

const ongoingStatus = "ONGOING"

type CreateDonation struct {
	CampaignID      int
	DonorID         *int
	Amount          decimal.Decimal
	Message         string
	ReferenceNumber string
	ProofImage      string
	IsAnonymous     bool
}

// CreateResult carries the recorded donation plus the campaign totals after
// reconciliation. Campaign is nil and Warning set when the ledger row was
// written but the cached total could not be updated; the ledger entry is
// never rolled back in that case.
type CreateResult struct {
	Donation *domain.Donation
	Campaign *domain.Campaign
	Warning  string
}

func (s *Service) Create(ctx context.Context, input CreateDonation) (*CreateResult, error) {
	if !input.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	campaign, err := s.campaignRepo.FindByID(ctx, input.CampaignID)
	if err != nil {
		zap.L().Error("failed to get campaign", zap.Error(err))
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	// Status is checked at donation time, never from an earlier read, so a
	// donation racing the auto-completion sweep is rejected here.
	if campaign.Status != ongoingStatus {
		return nil, &NotAcceptingDonationsError{Status: campaign.Status}
	}

	if input.DonorID != nil {
		donor, err := s.userRepo.FindByID(ctx, *input.DonorID)
		if err != nil {
			zap.L().Error("failed to get donor", zap.Error(err))
			return nil, err
		}
		if donor == nil {
			return nil, ErrDonorNotFound
		}
	}

	donation := &domain.Donation{
		CampaignID:      input.CampaignID,
		DonorID:         input.DonorID,
		Amount:          input.Amount,
		Message:         input.Message,
		ReferenceNumber: input.ReferenceNumber,
		ProofImage:      input.ProofImage,
		IsAnonymous:     input.IsAnonymous,
		DonatedAt:       time.Now(),
	}
	if err := s.donationRepo.Save(ctx, donation); err != nil {
		zap.L().Error("can't save donation", zap.Error(err))
		return nil, err
	}

	result := &CreateResult{Donation: donation}

	updated, err := s.campaignRepo.AddToRaised(ctx, input.CampaignID, input.Amount)
	if err != nil {
		// The ledger row is the source of truth and stays; the cached total
		// will be reconciled later.
		zap.L().Error("donation saved but campaign total not updated",
			zap.Int("donationID", donation.ID),
			zap.Int("campaignID", input.CampaignID),
			zap.Error(err),
		)
		result.Warning = warningTotalNotUpdated
	} else {
		result.Campaign = updated
	}

	amount := donation.Amount
	s.notifier.Notify(ctx, notify.Event{
		Type:        notify.EventDonationReceived,
		CampaignID:  campaign.ID,
		DonationID:  donation.ID,
		Amount:      &amount,
		RecipientID: campaign.CreatedBy,
	})

	return result, nil
}

// Delete removes a ledger row and symmetrically reconciles the parent
// campaign's total, flooring at zero. A failed reconciliation after a
// successful delete is reported as a warning, not an error.
func (s *Service) Delete(ctx context.Context, id int) (string, error) {
	donation, err := s.donationRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get donation", zap.Error(err))
		return "", err
	}
	if donation == nil {
		return "", ErrDonationNotFound
	}

	if err := s.donationRepo.Delete(ctx, id); err != nil {
		zap.L().Error("can't delete donation", zap.Error(err))
		return "", err
	}

	if _, err := s.campaignRepo.SubtractFromRaised(ctx, donation.CampaignID, donation.Amount); err != nil {
		zap.L().Error("donation deleted but campaign total not updated",
			zap.Int("donationID", id),
			zap.Int("campaignID", donation.CampaignID),
			zap.Error(err),
		)
		return warningTotalNotUpdated, nil
	}
	return "", nil
}

// UpdateMessage edits the only mutable field of a recorded donation.
func (s *Service) UpdateMessage(ctx context.Context, id int, message string) (*domain.Donation, error) {
	donation, err := s.donationRepo.UpdateMessage(ctx, id, message)
	if err != nil {
		zap.L().Error("can't update donation message", zap.Error(err))
		return nil, err
	}
	if donation == nil {
		return nil, ErrDonationNotFound
	}
	return donation, nil
}

func (s *Service) List(ctx context.Context, campaignID *int, limit, offset int) ([]domain.Donation, error) {
	var donations []domain.Donation
	var err error
	if campaignID != nil {
		donations, err = s.donationRepo.FindByCampaignID(ctx, *campaignID, limit, offset)
	} else {
		donations, err = s.donationRepo.FindAll(ctx, limit, offset)
	}
	if err != nil {
		zap.L().Error("failed to list donations", zap.Error(err))
		return nil, err
	}
	return donations, nil
}
