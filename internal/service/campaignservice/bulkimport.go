package campaignservice

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pawhaven/fundraising/internal/domain"
)

// ImportRecord is a campaign as delivered by an external source. Numeric and
// list fields arrive loosely typed and are normalized before validation.
type ImportRecord struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	TargetAmount any    `json:"target_amount"`
	RaisedAmount any    `json:"raised_amount"`
	Status       string `json:"status"`
	EndDate      string `json:"end_date"`
	Images       any    `json:"images"`
	CreatedBy    *int   `json:"created_by"`
}

type ImportError struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	BatchID string
	Created []domain.Campaign
	Errors  []ImportError
}

const endDateLayout = "2006-01-02"

func coerceAmount(v any) (decimal.Decimal, bool) {
	switch value := v.(type) {
	case nil:
		return decimal.Zero, true
	case float64:
		return decimal.NewFromFloat(value), true
	case int:
		return decimal.NewFromInt(int64(value)), true
	case json.Number:
		d, err := decimal.NewFromString(value.String())
		return d, err == nil
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return decimal.Zero, true
		}
		d, err := decimal.NewFromString(trimmed)
		return d, err == nil
	case decimal.Decimal:
		return value, true
	}
	return decimal.Zero, false
}

// normalizeImages accepts an array, a JSON-encoded array string, or a
// delimiter-separated string (";" preferred, "," fallback) and returns a
// cleaned list. An empty result drops the field.
func normalizeImages(v any) []string {
	var raw []string
	switch value := v.(type) {
	case nil:
		return nil
	case []string:
		raw = value
	case []any:
		for _, item := range value {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return nil
		}
		var decoded []string
		if err := json.Unmarshal([]byte(trimmed), &decoded); err == nil {
			raw = decoded
		} else if strings.Contains(trimmed, ";") {
			raw = strings.Split(trimmed, ";")
		} else {
			raw = strings.Split(trimmed, ",")
		}
	}

	images := make([]string, 0, len(raw))
	for _, img := range raw {
		img = strings.TrimSpace(img)
		if img != "" {
			images = append(images, img)
		}
	}
	if len(images) == 0 {
		return nil
	}
	return images
}

func (s *Service) normalizeRecord(ctx context.Context, record ImportRecord, fallbackOwner *int) (*domain.Campaign, error) {
	target, ok := coerceAmount(record.TargetAmount)
	if !ok {
		return nil, &ValidationError{Field: "target_amount", Reason: "is not a number"}
	}

	status := strings.ToUpper(strings.TrimSpace(record.Status))
	if status == "" {
		status = PendingStatus
	}

	campaign := &domain.Campaign{
		Title:        strings.TrimSpace(record.Title),
		Description:  strings.TrimSpace(record.Description),
		TargetAmount: target,
		// Imported campaigns have no backing ledger entries, so any
		// incoming raised_amount is discarded.
		RaisedAmount: decimal.Zero,
		Status:       status,
		Images:       normalizeImages(record.Images),
		CreatedBy:    record.CreatedBy,
	}

	if endDate := strings.TrimSpace(record.EndDate); endDate != "" {
		parsed, err := time.Parse(endDateLayout, endDate)
		if err != nil {
			return nil, &ValidationError{Field: "end_date", Reason: "expected format " + endDateLayout}
		}
		campaign.EndDate = &parsed
	}

	if campaign.CreatedBy == nil {
		campaign.CreatedBy = fallbackOwner
	}

	if err := validateCampaign(campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// BulkImport normalizes and inserts a batch of externally sourced campaigns.
// Records are processed independently; one invalid record never aborts the
// batch.
func (s *Service) BulkImport(ctx context.Context, records []ImportRecord) (*ImportResult, error) {
	result := &ImportResult{
		BatchID: uuid.NewString(),
	}

	fallbackOwner, err := s.importFallbackOwner(ctx)
	if err != nil {
		return nil, err
	}

	for i, record := range records {
		campaign, err := s.normalizeRecord(ctx, record, fallbackOwner)
		if err != nil {
			result.Errors = append(result.Errors, ImportError{Index: i, Reason: err.Error()})
			continue
		}

		created, err := s.campaignRepo.Save(ctx, campaign)
		if err != nil {
			zap.L().Error("failed to insert imported campaign",
				zap.String("batchID", result.BatchID),
				zap.Int("index", i),
				zap.Error(err),
			)
			result.Errors = append(result.Errors, ImportError{Index: i, Reason: "insert failed"})
			continue
		}
		result.Created = append(result.Created, *created)
	}

	zap.L().Info("bulk import finished",
		zap.String("batchID", result.BatchID),
		zap.Int("created", len(result.Created)),
		zap.Int("failed", len(result.Errors)),
	)
	return result, nil
}

func (s *Service) importFallbackOwner(ctx context.Context) (*int, error) {
	admin, err := s.userRepo.FindFirstAdmin(ctx)
	if err != nil {
		zap.L().Error("failed to find fallback owner", zap.Error(err))
		return nil, err
	}
	if admin == nil {
		return nil, nil
	}
	return &admin.ID, nil
}
