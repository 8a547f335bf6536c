package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateCampaignRequestDTO struct {
	Title        string          `json:"title" example:"Shelter roof repair"`
	Description  string          `json:"description,omitempty" example:"Replace the leaking roof of the main shelter"`
	TargetAmount decimal.Decimal `json:"target_amount" example:"25000"`
	Status       string          `json:"status,omitempty" example:"PENDING"`
	EndDate      string          `json:"end_date,omitempty" example:"2026-12-31"`
	Images       []string        `json:"images,omitempty"`
}

type UpdateCampaignRequestDTO struct {
	Title        *string          `json:"title,omitempty"`
	Description  *string          `json:"description,omitempty"`
	TargetAmount *decimal.Decimal `json:"target_amount,omitempty" example:"30000"`
	Status       *string          `json:"status,omitempty" example:"ONGOING"`
	EndDate      *string          `json:"end_date,omitempty" example:"2026-12-31"`
	Images       *[]string        `json:"images,omitempty"`
}

type CampaignResponseDTO struct {
	ID           int             `json:"id" example:"1"`
	Title        string          `json:"title" example:"Shelter roof repair"`
	Description  string          `json:"description,omitempty"`
	TargetAmount decimal.Decimal `json:"target_amount" example:"25000"`
	RaisedAmount decimal.Decimal `json:"raised_amount" example:"1250.50"`
	Status       string          `json:"status" example:"ONGOING"`
	EndDate      string          `json:"end_date,omitempty" example:"2026-12-31"`
	Images       []string        `json:"images,omitempty"`
	CreatedBy    *int            `json:"created_by,omitempty" example:"1"`
	CreatedAt    time.Time       `json:"created_at"`
}

type ImportCampaignRecordDTO struct {
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	TargetAmount any    `json:"target_amount,omitempty"`
	RaisedAmount any    `json:"raised_amount,omitempty"`
	Status       string `json:"status,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	Images       any    `json:"images,omitempty"`
	CreatedBy    *int   `json:"created_by,omitempty"`
}

type BulkImportCampaignsRequestDTO struct {
	Records []ImportCampaignRecordDTO `json:"records"`
}

type ImportErrorDTO struct {
	Index   int    `json:"index" example:"2"`
	Message string `json:"message" example:"title: is required"`
}

type BulkImportCampaignsResponseDTO struct {
	BatchID string                `json:"batch_id" example:"7f9c6f84-3f49-44a4-8b0e-6a9c6b3d51d2"`
	Created []CampaignResponseDTO `json:"created"`
	Errors  []ImportErrorDTO      `json:"errors"`
}

type SweepFailureDTO struct {
	CampaignID int    `json:"campaign_id" example:"5"`
	Reason     string `json:"reason"`
}

type SweepResponseDTO struct {
	Completed []int             `json:"completed"`
	Failed    []SweepFailureDTO `json:"failed"`
}
