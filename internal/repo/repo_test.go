package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/pawhaven/fundraising/internal/pg"
	campaignrepo "github.com/pawhaven/fundraising/internal/repo/campaign-repo"
	donationrepo "github.com/pawhaven/fundraising/internal/repo/donation-repo"
	userrepo "github.com/pawhaven/fundraising/internal/repo/user-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.CampaignRepo)
	assert.NotNil(t, repo.DonationRepo)
	assert.NotNil(t, repo.UserRepo)

	assert.IsType(t, &campaignrepo.Repository{}, repo.CampaignRepo)
	assert.IsType(t, &donationrepo.Repository{}, repo.DonationRepo)
	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
