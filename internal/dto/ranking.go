package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type RankedDonorDTO struct {
	Rank          int             `json:"rank" example:"1"`
	DonorID       int             `json:"donor_id" example:"42"`
	DonorName     string          `json:"donor_name" example:"Jamie Woods"`
	TotalAmount   decimal.Decimal `json:"total_amount" example:"500"`
	DonationCount int             `json:"donation_count" example:"3"`
	LastDonatedAt time.Time       `json:"last_donated_at"`
}

type TopDonorsResponseDTO struct {
	Window      string           `json:"window" example:"last 7 days"`
	GeneratedAt time.Time        `json:"generated_at"`
	Donors      []RankedDonorDTO `json:"donors"`
}
