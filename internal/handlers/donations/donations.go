package donations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pawhaven/fundraising/internal/domain"
	"github.com/pawhaven/fundraising/internal/dto"
	donationservice "github.com/pawhaven/fundraising/internal/service/donationservice"
	"github.com/pawhaven/fundraising/pkg/auth"
	"github.com/pawhaven/fundraising/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, input donationservice.CreateDonation) (*donationservice.CreateResult, error)
	Delete(ctx context.Context, id int) (string, error)
	UpdateMessage(ctx context.Context, id int, message string) (*domain.Donation, error)
	List(ctx context.Context, campaignID *int, limit, offset int) ([]domain.Donation, error)
}

type DonationHandler struct {
	donationService Service
}

func New(donationService Service) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
	}
}

const (
	defaultLimit = 50
	maxLimit     = 200
)

func toDonationDTO(d *domain.Donation) dto.DonationResponseDTO {
	return dto.DonationResponseDTO{
		ID:              d.ID,
		CampaignID:      d.CampaignID,
		DonorID:         d.DonorID,
		Amount:          d.Amount,
		Message:         d.Message,
		ReferenceNumber: d.ReferenceNumber,
		ProofImage:      d.ProofImage,
		IsAnonymous:     d.IsAnonymous,
		DonatedAt:       d.DonatedAt,
	}
}

func limitOffset(r *http.Request) (int, int) {
	limit := defaultLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= maxLimit {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}

// Create godoc
//
//	@Summary		Record a donation
//	@Description	Append a donation to the ledger of an ongoing campaign and update the campaign total.
//	@Tags			Donations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateDonationRequestDTO	true	"Donation payload"
//	@Success		201		{object}	dto.CreateDonationResponseDTO	"Donation recorded"
//	@Failure		400		{object}	utils.Response					"Invalid payload"
//	@Failure		403		{object}	utils.Response					"Donor attribution requires an administrator"
//	@Failure		404		{object}	utils.Response					"Campaign or donor not found"
//	@Failure		409		{object}	utils.Response					"Campaign not accepting donations"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/donations [post]
func (h *DonationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDonationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := donationservice.CreateDonation{
		CampaignID:      req.CampaignID,
		Amount:          req.Amount,
		Message:         req.Message,
		ReferenceNumber: req.ReferenceNumber,
		ProofImage:      req.ProofImage,
		IsAnonymous:     req.IsAnonymous,
	}
	if req.DonorID != nil {
		if role, ok := auth.CallerRole(r.Context()); !ok || role != auth.AdminRole {
			utils.RespondWithError(w, http.StatusForbidden, "only administrators may attribute a donation to another donor")
			return
		}
		input.DonorID = req.DonorID
	} else if donorID, ok := auth.CallerID(r.Context()); ok {
		input.DonorID = &donorID
	}

	result, err := h.donationService.Create(r.Context(), input)
	if err != nil {
		var notAccepting *donationservice.NotAcceptingDonationsError
		switch {
		case errors.Is(err, donationservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, donationservice.ErrCampaignNotFound),
			errors.Is(err, donationservice.ErrDonorNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.As(err, &notAccepting):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	resp := dto.CreateDonationResponseDTO{
		Donation: toDonationDTO(result.Donation),
		Warning:  result.Warning,
	}
	if result.Campaign != nil {
		raised := result.Campaign.RaisedAmount
		resp.CampaignRaised = &raised
	}
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}

// Delete godoc
//
//	@Summary		Delete a donation
//	@Description	Administrative correction: removes a ledger entry and reconciles the campaign total.
//	@Tags			Donations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int								true	"Donation ID"
//	@Success		200	{object}	dto.DeleteDonationResponseDTO	"Donation deleted"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		404	{object}	utils.Response					"Donation not found"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/donations/{id} [delete]
func (h *DonationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid donation id")
		return
	}

	warning, err := h.donationService.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, donationservice.ErrDonationNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.DeleteDonationResponseDTO{
		Message: "donation deleted",
		Warning: warning,
	})
}

// UpdateMessage godoc
//
//	@Summary		Edit a donation message
//	@Description	The message is the only mutable field of a recorded donation.
//	@Tags			Donations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Donation ID"
//	@Param			request	body		dto.UpdateDonationMessageRequestDTO	true	"New message"
//	@Success		200		{object}	dto.DonationResponseDTO			"Updated donation"
//	@Failure		404		{object}	utils.Response					"Donation not found"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/donations/{id}/message [patch]
func (h *DonationHandler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid donation id")
		return
	}

	var req dto.UpdateDonationMessageRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	donation, err := h.donationService.UpdateMessage(r.Context(), id, req.Message)
	if err != nil {
		if errors.Is(err, donationservice.ErrDonationNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toDonationDTO(donation))
}

// List godoc
//
//	@Summary		List donations
//	@Description	Donation history, newest first, optionally scoped to a campaign.
//	@Tags			Donations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			campaign_id	query		int	false	"Campaign scope"
//	@Param			limit		query		int	false	"Page size"
//	@Param			offset		query		int	false	"Page offset"
//	@Success		200			{array}		dto.DonationResponseDTO	"Donations"
//	@Success		204			{object}	utils.Response			"No donations found"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/donations [get]
func (h *DonationHandler) List(w http.ResponseWriter, r *http.Request) {
	var campaignID *int
	if v := r.URL.Query().Get("campaign_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid campaign id")
			return
		}
		campaignID = &id
	}

	limit, offset := limitOffset(r)
	h.respondWithDonations(w, r, campaignID, limit, offset)
}

// ListByCampaign godoc
//
//	@Summary		List donations of a campaign
//	@Tags			Donations
//	@Produce		json
//	@Param			id		path		int	true	"Campaign ID"
//	@Param			limit	query		int	false	"Page size"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{array}		dto.DonationResponseDTO	"Donations"
//	@Success		204		{object}	utils.Response			"No donations found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/campaigns/{id}/donations [get]
func (h *DonationHandler) ListByCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}

	limit, offset := limitOffset(r)
	h.respondWithDonations(w, r, &id, limit, offset)
}

func (h *DonationHandler) respondWithDonations(w http.ResponseWriter, r *http.Request, campaignID *int, limit, offset int) {
	donations, err := h.donationService.List(r.Context(), campaignID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch donations")
		return
	}

	if len(donations) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Donations not found")
		return
	}

	response := make([]dto.DonationResponseDTO, len(donations))
	for i, donation := range donations {
		donation := donation
		response[i] = toDonationDTO(&donation)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
