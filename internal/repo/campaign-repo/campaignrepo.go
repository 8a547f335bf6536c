package campaignrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pawhaven/fundraising/internal/domain"
	"github.com/pawhaven/fundraising/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanCampaign(row pgx.Row, c *domain.Campaign) error {
	return row.Scan(&c.ID, &c.Title, &c.Description, &c.TargetAmount, &c.RaisedAmount,
		&c.Status, &c.EndDate, &c.Images, &c.CreatedBy, &c.CreatedAt)
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Campaign, error) {
	query := `
        SELECT id, title, description, target_amount, raised_amount, status, end_date, images, created_by, created_at
        FROM campaigns
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var campaign domain.Campaign
	err := scanCampaign(row, &campaign)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get campaign", zap.Error(err))
		return nil, err
	}
	return &campaign, nil
}

func (r *Repository) FindByStatuses(ctx context.Context, statuses []string, limit, offset int) ([]domain.Campaign, error) {
	query := `
        SELECT id, title, description, target_amount, raised_amount, status, end_date, images, created_by, created_at
        FROM campaigns
        WHERE $1::text[] IS NULL OR cardinality($1::text[]) = 0 OR status = ANY($1::text[])
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, statuses, limit, offset)
	if err != nil {
		zap.L().Error("can't get campaigns", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var campaigns []domain.Campaign
	for rows.Next() {
		var campaign domain.Campaign
		err := scanCampaign(rows, &campaign)
		if err != nil {
			zap.L().Error("can't scan campaign row", zap.Error(err))
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}
	return campaigns, nil
}

func (r *Repository) Save(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	query := `
        INSERT INTO campaigns (title, description, target_amount, raised_amount, status, end_date, images, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		campaign.Title, campaign.Description, campaign.TargetAmount, campaign.RaisedAmount,
		campaign.Status, campaign.EndDate, campaign.Images, campaign.CreatedBy,
	).Scan(&campaign.ID, &campaign.CreatedAt)
	if err != nil {
		zap.L().Error("can't save campaign", zap.Error(err))
		return nil, err
	}
	return campaign, nil
}

func (r *Repository) Update(ctx context.Context, campaign *domain.Campaign) error {
	query := `
        UPDATE campaigns
        SET title = $1, description = $2, target_amount = $3, end_date = $4, images = $5
        WHERE id = $6
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			campaign.Title, campaign.Description, campaign.TargetAmount,
			campaign.EndDate, campaign.Images, campaign.ID)
		if err != nil {
			zap.L().Error("failed to update campaign", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

// UpdateStatus transitions a campaign only when it is still in the expected
// state, so a concurrent transition loses cleanly instead of overwriting.
func (r *Repository) UpdateStatus(ctx context.Context, id int, from, to string) (bool, error) {
	query := `
        UPDATE campaigns
        SET status = $1
        WHERE id = $2 AND status = $3
    `
	tag, err := r.db.Exec(ctx, query, to, id, from)
	if err != nil {
		zap.L().Error("failed to update campaign status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	query := `
        DELETE FROM campaigns
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to delete campaign", zap.Error(err))
		return err
	}
	return nil
}

// AddToRaised increments the cached total in a single statement. The
// increment happens in the database, so concurrent donations to the same
// campaign cannot lose each other's update.
func (r *Repository) AddToRaised(ctx context.Context, id int, amount decimal.Decimal) (*domain.Campaign, error) {
	query := `
        UPDATE campaigns
        SET raised_amount = raised_amount + $1
        WHERE id = $2
        RETURNING id, title, description, target_amount, raised_amount, status, end_date, images, created_by, created_at
    `
	row := r.db.QueryRow(ctx, query, amount, id)
	var campaign domain.Campaign
	if err := scanCampaign(row, &campaign); err != nil {
		zap.L().Error("failed to increment raised amount", zap.Error(err))
		return nil, err
	}
	return &campaign, nil
}

// SubtractFromRaised decrements the cached total, flooring at zero. The floor
// is policy: totals never go negative even if bookkeeping drifted.
func (r *Repository) SubtractFromRaised(ctx context.Context, id int, amount decimal.Decimal) (*domain.Campaign, error) {
	query := `
        UPDATE campaigns
        SET raised_amount = GREATEST(raised_amount - $1, 0)
        WHERE id = $2
        RETURNING id, title, description, target_amount, raised_amount, status, end_date, images, created_by, created_at
    `
	row := r.db.QueryRow(ctx, query, amount, id)
	var campaign domain.Campaign
	if err := scanCampaign(row, &campaign); err != nil {
		zap.L().Error("failed to decrement raised amount", zap.Error(err))
		return nil, err
	}
	return &campaign, nil
}

func (r *Repository) FindExpiredOngoing(ctx context.Context, today time.Time, limit uint32) ([]domain.Campaign, error) {
	query := `
        SELECT id, title, description, target_amount, raised_amount, status, end_date, images, created_by, created_at
        FROM campaigns
        WHERE status = 'ONGOING' AND end_date IS NOT NULL AND end_date <= $1::date
        ORDER BY end_date ASC
        LIMIT $2
    `
	// The boundary is the caller's calendar date. Sent as text so the cast
	// never routes through the session timezone the way a timestamptz would.
	rows, err := r.db.Query(ctx, query, today.Format("2006-01-02"), int(limit))
	if err != nil {
		zap.L().Error("can't get expired campaigns", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var campaigns []domain.Campaign
	for rows.Next() {
		var campaign domain.Campaign
		err := scanCampaign(rows, &campaign)
		if err != nil {
			zap.L().Error("can't scan expired campaign row", zap.Error(err))
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}
	return campaigns, nil
}
