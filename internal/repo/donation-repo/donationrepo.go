package donationrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
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

func scanDonation(row pgx.Row, d *domain.Donation) error {
	return row.Scan(&d.ID, &d.CampaignID, &d.DonorID, &d.Amount, &d.Message,
		&d.ReferenceNumber, &d.ProofImage, &d.IsAnonymous, &d.DonatedAt)
}

func (r *Repository) Save(ctx context.Context, donation *domain.Donation) error {
	query := `
        INSERT INTO donations (campaign_id, donor_id, amount, message, reference_number, proof_image, is_anonymous, donated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query,
			donation.CampaignID, donation.DonorID, donation.Amount, donation.Message,
			donation.ReferenceNumber, donation.ProofImage, donation.IsAnonymous, donation.DonatedAt,
		).Scan(&donation.ID)
		if err != nil {
			zap.L().Error("can't save donation", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Donation, error) {
	query := `
        SELECT id, campaign_id, donor_id, amount, message, reference_number, proof_image, is_anonymous, donated_at
        FROM donations
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var donation domain.Donation
	err := scanDonation(row, &donation)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find donation", zap.Error(err))
		return nil, err
	}
	return &donation, nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	query := `
        DELETE FROM donations
        WHERE id = $1
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, id)
		if err != nil {
			zap.L().Error("can't delete donation", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

// UpdateMessage is the only mutation allowed on a recorded donation.
func (r *Repository) UpdateMessage(ctx context.Context, id int, message string) (*domain.Donation, error) {
	query := `
        UPDATE donations
        SET message = $1
        WHERE id = $2
        RETURNING id, campaign_id, donor_id, amount, message, reference_number, proof_image, is_anonymous, donated_at
    `
	row := r.db.QueryRow(ctx, query, message, id)
	var donation domain.Donation
	err := scanDonation(row, &donation)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't update donation message", zap.Error(err))
		return nil, err
	}
	return &donation, nil
}

func (r *Repository) FindByCampaignID(ctx context.Context, campaignID, limit, offset int) ([]domain.Donation, error) {
	query := `
        SELECT id, campaign_id, donor_id, amount, message, reference_number, proof_image, is_anonymous, donated_at
        FROM donations
        WHERE campaign_id = $1
        ORDER BY donated_at DESC
        LIMIT $2 OFFSET $3
    `
	return r.queryDonations(ctx, query, campaignID, limit, offset)
}

func (r *Repository) FindAll(ctx context.Context, limit, offset int) ([]domain.Donation, error) {
	query := `
        SELECT id, campaign_id, donor_id, amount, message, reference_number, proof_image, is_anonymous, donated_at
        FROM donations
        ORDER BY donated_at DESC
        LIMIT $1 OFFSET $2
    `
	return r.queryDonations(ctx, query, limit, offset)
}

func (r *Repository) queryDonations(ctx context.Context, query string, args ...any) ([]domain.Donation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get donations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var donations []domain.Donation
	for rows.Next() {
		var donation domain.Donation
		err := scanDonation(rows, &donation)
		if err != nil {
			zap.L().Error("can't scan donation row", zap.Error(err))
			return nil, err
		}
		donations = append(donations, donation)
	}
	return donations, nil
}

func (r *Repository) CountByCampaignID(ctx context.Context, campaignID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM donations
        WHERE campaign_id = $1
    `
	var count int
	if err := r.db.QueryRow(ctx, query, campaignID).Scan(&count); err != nil {
		zap.L().Error("can't count donations", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// FindAttributedSince feeds the ranking engine straight from the ledger.
// Anonymous donations and donations without a donor are excluded from
// attribution.
func (r *Repository) FindAttributedSince(ctx context.Context, since *time.Time, campaignID *int) ([]domain.AttributedDonation, error) {
	query := `
        SELECT d.donor_id, u.name, d.amount, d.donated_at
        FROM donations d
        JOIN users u ON u.id = d.donor_id
        WHERE d.donor_id IS NOT NULL AND NOT d.is_anonymous
          AND ($1::timestamptz IS NULL OR d.donated_at >= $1)
          AND ($2::int IS NULL OR d.campaign_id = $2)
        ORDER BY d.donated_at ASC
    `
	rows, err := r.db.Query(ctx, query, since, campaignID)
	if err != nil {
		zap.L().Error("can't get attributed donations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var donations []domain.AttributedDonation
	for rows.Next() {
		var donation domain.AttributedDonation
		err := rows.Scan(&donation.DonorID, &donation.DonorName, &donation.Amount, &donation.DonatedAt)
		if err != nil {
			zap.L().Error("can't scan attributed donation row", zap.Error(err))
			return nil, err
		}
		donations = append(donations, donation)
	}
	return donations, nil
}
