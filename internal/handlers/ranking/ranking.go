package ranking

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pawhaven/fundraising/internal/dto"
	rankingservice "github.com/pawhaven/fundraising/internal/service/rankingservice"
	"github.com/pawhaven/fundraising/pkg/utils"
)

type Service interface {
	TopDonors(ctx context.Context, query rankingservice.Query) (*rankingservice.Leaderboard, error)
}

type RankingHandler struct {
	rankingService Service
}

func New(rankingService Service) *RankingHandler {
	return &RankingHandler{
		rankingService: rankingService,
	}
}

// TopDonors godoc
//
//	@Summary		Donor leaderboard
//	@Description	Rank donors by donated amount over a time window, recomputed from the ledger on every request.
//	@Tags			Ranking
//	@Produce		json
//	@Param			window		query		string	false	"\"all\" or a number of trailing days"
//	@Param			limit		query		int		false	"Result size"
//	@Param			campaign_id	query		int		false	"Campaign scope"
//	@Success		200			{object}	dto.TopDonorsResponseDTO	"Ranked donors"
//	@Failure		400			{object}	utils.Response				"Invalid query"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/donors/top [get]
func (h *RankingHandler) TopDonors(w http.ResponseWriter, r *http.Request) {
	var query rankingservice.Query

	switch window := r.URL.Query().Get("window"); window {
	case "", "all":
		query.AllTime = window == "all"
	default:
		days, err := strconv.Atoi(window)
		if err != nil || days <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "window must be \"all\" or a positive number of days")
			return
		}
		query.Days = days
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "limit must be a positive number")
			return
		}
		query.Limit = limit
	}

	if v := r.URL.Query().Get("campaign_id"); v != "" {
		campaignID, err := strconv.Atoi(v)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid campaign id")
			return
		}
		query.CampaignID = &campaignID
	}

	leaderboard, err := h.rankingService.TopDonors(r.Context(), query)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.TopDonorsResponseDTO{
		Window:      leaderboard.Window,
		GeneratedAt: leaderboard.GeneratedAt,
		Donors:      make([]dto.RankedDonorDTO, len(leaderboard.Donors)),
	}
	for i, donor := range leaderboard.Donors {
		resp.Donors[i] = dto.RankedDonorDTO{
			Rank:          donor.Rank,
			DonorID:       donor.DonorID,
			DonorName:     donor.DonorName,
			TotalAmount:   donor.TotalAmount,
			DonationCount: donor.DonationCount,
			LastDonatedAt: donor.LastDonatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
