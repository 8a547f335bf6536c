package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateDonationRequestDTO struct {
	CampaignID int             `json:"campaign_id" example:"1"`
	Amount     decimal.Decimal `json:"amount" example:"150.50"`
	// DonorID attributes a manually attested donation to a named donor.
	// Honored only for administrators; everyone else donates as themselves.
	DonorID         *int   `json:"donor_id,omitempty" example:"42"`
	Message         string `json:"message,omitempty" example:"Get well soon, Rex!"`
	ReferenceNumber string `json:"reference_number,omitempty" example:"TRX-2024-00017"`
	ProofImage      string `json:"proof_image,omitempty" example:"uploads/proof-00017.jpg"`
	IsAnonymous     bool   `json:"is_anonymous,omitempty"`
}

type DonationResponseDTO struct {
	ID              int             `json:"id" example:"10"`
	CampaignID      int             `json:"campaign_id" example:"1"`
	DonorID         *int            `json:"donor_id,omitempty" example:"42"`
	Amount          decimal.Decimal `json:"amount" example:"150.50"`
	Message         string          `json:"message,omitempty"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	ProofImage      string          `json:"proof_image,omitempty"`
	IsAnonymous     bool            `json:"is_anonymous"`
	DonatedAt       time.Time       `json:"donated_at"`
}

type CreateDonationResponseDTO struct {
	Donation       DonationResponseDTO `json:"donation"`
	CampaignRaised *decimal.Decimal    `json:"campaign_raised,omitempty" example:"1401.00"`
	Warning        string              `json:"warning,omitempty"`
}

type DeleteDonationResponseDTO struct {
	Message string `json:"message" example:"donation deleted"`
	Warning string `json:"warning,omitempty"`
}

type UpdateDonationMessageRequestDTO struct {
	Message string `json:"message" example:"In memory of Whiskers"`
}
