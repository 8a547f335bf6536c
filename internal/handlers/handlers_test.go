package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/pawhaven/fundraising/internal/handlers/campaigns"
	"github.com/pawhaven/fundraising/internal/handlers/donations"
	"github.com/pawhaven/fundraising/internal/handlers/ranking"
	"github.com/pawhaven/fundraising/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		CampaignService: campaigns.NewMockService(ctrl),
		DonationService: donations.NewMockService(ctrl),
		RankingService:  ranking.NewMockService(ctrl),
	}

	h := New(services, campaigns.NewMockSweeper(ctrl))
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaignHandler := NewMockCampaignHandler(ctrl)
	mockDonationHandler := NewMockDonationHandler(ctrl)
	mockRankingHandler := NewMockRankingHandler(ctrl)

	mockCampaignHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockCampaignHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	mockCampaignHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockCampaignHandler.EXPECT().Update(gomock.Any(), gomock.Any()).AnyTimes()
	mockCampaignHandler.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
	mockCampaignHandler.EXPECT().Import(gomock.Any(), gomock.Any()).AnyTimes()
	mockCampaignHandler.EXPECT().Sweep(gomock.Any(), gomock.Any()).AnyTimes()
	mockDonationHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockDonationHandler.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
	mockDonationHandler.EXPECT().UpdateMessage(gomock.Any(), gomock.Any()).AnyTimes()
	mockDonationHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockDonationHandler.EXPECT().ListByCampaign(gomock.Any(), gomock.Any()).AnyTimes()
	mockRankingHandler.EXPECT().TopDonors(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		CampaignHandler: mockCampaignHandler,
		DonationHandler: mockDonationHandler,
		RankingHandler:  mockRankingHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/api/campaigns", http.StatusOK},
		{"GET", "/api/campaigns/1", http.StatusOK},
		{"GET", "/api/campaigns/1/donations", http.StatusOK},
		{"POST", "/api/campaigns", http.StatusUnauthorized},
		{"PUT", "/api/campaigns/1", http.StatusUnauthorized},
		{"DELETE", "/api/campaigns/1", http.StatusUnauthorized},
		{"POST", "/api/campaigns/import", http.StatusUnauthorized},
		{"POST", "/api/campaigns/sweep", http.StatusUnauthorized},
		{"POST", "/api/donations", http.StatusOK},
		{"GET", "/api/donations", http.StatusUnauthorized},
		{"DELETE", "/api/donations/1", http.StatusUnauthorized},
		{"PATCH", "/api/donations/1/message", http.StatusUnauthorized},
		{"GET", "/api/donors/top", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
