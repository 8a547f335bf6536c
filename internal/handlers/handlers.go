package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/pawhaven/fundraising/docs"
	campaignhandlers "github.com/pawhaven/fundraising/internal/handlers/campaigns"
	donationhandlers "github.com/pawhaven/fundraising/internal/handlers/donations"
	rankinghandlers "github.com/pawhaven/fundraising/internal/handlers/ranking"
	"github.com/pawhaven/fundraising/internal/service"
	"github.com/pawhaven/fundraising/pkg/auth"
)

type CampaignHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
	Sweep(w http.ResponseWriter, r *http.Request)
}

type DonationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	UpdateMessage(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByCampaign(w http.ResponseWriter, r *http.Request)
}

type RankingHandler interface {
	TopDonors(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	CampaignHandler CampaignHandler
	DonationHandler DonationHandler
	RankingHandler  RankingHandler
}

func New(s *service.Services, sweep campaignhandlers.Sweeper) *Handlers {
	return &Handlers{
		CampaignHandler: campaignhandlers.New(s.CampaignService, sweep),
		DonationHandler: donationhandlers.New(s.DonationService),
		RankingHandler:  rankinghandlers.New(s.RankingService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(auth.OptionalAuthMiddleware)
				r.Get("/", h.CampaignHandler.List)
				r.Get("/{id}", h.CampaignHandler.Get)
				r.Get("/{id}/donations", h.DonationHandler.ListByCampaign)
			})
			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware, auth.AdminOnlyMiddleware)
				r.Post("/", h.CampaignHandler.Create)
				r.Put("/{id}", h.CampaignHandler.Update)
				r.Delete("/{id}", h.CampaignHandler.Delete)
				r.Post("/import", h.CampaignHandler.Import)
				r.Post("/sweep", h.CampaignHandler.Sweep)
			})
		})
		r.Route("/donations", func(r chi.Router) {
			r.With(auth.OptionalAuthMiddleware).Post("/", h.DonationHandler.Create)
			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware, auth.AdminOnlyMiddleware)
				r.Get("/", h.DonationHandler.List)
				r.Delete("/{id}", h.DonationHandler.Delete)
				r.Patch("/{id}/message", h.DonationHandler.UpdateMessage)
			})
		})
		r.Get("/donors/top", h.RankingHandler.TopDonors)
	})

	return r
}
