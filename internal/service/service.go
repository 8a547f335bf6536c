package service

import (
	"github.com/pawhaven/fundraising/internal/config"
	"github.com/pawhaven/fundraising/internal/handlers/campaigns"
	"github.com/pawhaven/fundraising/internal/handlers/donations"
	"github.com/pawhaven/fundraising/internal/handlers/ranking"
	"github.com/pawhaven/fundraising/internal/notify"
	"github.com/pawhaven/fundraising/internal/repo"
	campaignservice "github.com/pawhaven/fundraising/internal/service/campaignservice"
	donationservice "github.com/pawhaven/fundraising/internal/service/donationservice"
	rankingservice "github.com/pawhaven/fundraising/internal/service/rankingservice"
)

type Services struct {
	CampaignService campaigns.Service
	DonationService donations.Service
	RankingService  ranking.Service
}

func New(repo *repo.Repositories, cfg *config.Config, notifier notify.Notifier) *Services {
	campaignService := campaignservice.New(repo.CampaignRepo, repo.UserRepo, repo.DonationRepo)
	donationService := donationservice.New(repo.DonationRepo, repo.CampaignRepo, repo.UserRepo, notifier)
	rankingService := rankingservice.New(repo.DonationRepo, cfg.RankingDays, cfg.RankingLimit)

	return &Services{
		CampaignService: campaignService,
		DonationService: donationService,
		RankingService:  rankingService,
	}
}
