package repo

import (
	"github.com/pawhaven/fundraising/internal/pg"
	campaignrepo "github.com/pawhaven/fundraising/internal/repo/campaign-repo"
	donationrepo "github.com/pawhaven/fundraising/internal/repo/donation-repo"
	userrepo "github.com/pawhaven/fundraising/internal/repo/user-repo"
	"github.com/pawhaven/fundraising/internal/service/campaignservice"
	"github.com/pawhaven/fundraising/internal/service/donationservice"
)

type Repositories struct {
	CampaignRepo campaignservice.CampaignRepo
	DonationRepo donationservice.DonationRepo
	UserRepo     campaignservice.UserRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	campaignRepo := campaignrepo.New(conn, txManager)
	donationRepo := donationrepo.New(conn, txManager)
	userRepo := userrepo.New(conn)

	return &Repositories{
		CampaignRepo: campaignRepo,
		DonationRepo: donationRepo,
		UserRepo:     userRepo,
	}
}
