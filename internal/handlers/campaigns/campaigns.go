package campaigns

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pawhaven/fundraising/internal/domain"
	"github.com/pawhaven/fundraising/internal/dto"
	campaignservice "github.com/pawhaven/fundraising/internal/service/campaignservice"
	"github.com/pawhaven/fundraising/internal/sweeper"
	"github.com/pawhaven/fundraising/pkg/auth"
	"github.com/pawhaven/fundraising/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error)
	Get(ctx context.Context, id int) (*domain.Campaign, error)
	Update(ctx context.Context, id int, upd campaignservice.UpdateCampaign) (*domain.Campaign, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, caller campaignservice.Caller, statusFilter string, limit, offset int) ([]domain.Campaign, error)
	BulkImport(ctx context.Context, records []campaignservice.ImportRecord) (*campaignservice.ImportResult, error)
}

type Sweeper interface {
	RunSweep(ctx context.Context) (*sweeper.Result, error)
}

type CampaignHandler struct {
	campaignService Service
	sweeper         Sweeper
}

func New(campaignService Service, sweep Sweeper) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
		sweeper:         sweep,
	}
}

const (
	defaultLimit  = 50
	maxLimit      = 200
	endDateLayout = "2006-01-02"
)

func toCampaignDTO(c *domain.Campaign) dto.CampaignResponseDTO {
	resp := dto.CampaignResponseDTO{
		ID:           c.ID,
		Title:        c.Title,
		Description:  c.Description,
		TargetAmount: c.TargetAmount,
		RaisedAmount: c.RaisedAmount,
		Status:       c.Status,
		Images:       c.Images,
		CreatedBy:    c.CreatedBy,
		CreatedAt:    c.CreatedAt,
	}
	if c.EndDate != nil {
		resp.EndDate = c.EndDate.Format(endDateLayout)
	}
	return resp
}

func respondServiceError(w http.ResponseWriter, err error) {
	var validationErr *campaignservice.ValidationError
	switch {
	case errors.Is(err, campaignservice.ErrCampaignNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, campaignservice.ErrStatusNotAllowed):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, campaignservice.ErrInvalidTransition),
		errors.Is(err, campaignservice.ErrTransitionConflict),
		errors.Is(err, campaignservice.ErrHasDependentDonations):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.As(err, &validationErr):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// List godoc
//
//	@Summary		List campaigns
//	@Description	Campaigns visible to the caller's role. Administrators see all statuses; other roles see ONGOING and COMPLETE.
//	@Tags			Campaigns
//	@Produce		json
//	@Param			status	query		string	false	"Status filter"
//	@Param			limit	query		int		false	"Page size"
//	@Param			offset	query		int		false	"Page offset"
//	@Success		200		{array}		dto.CampaignResponseDTO	"Campaigns"
//	@Failure		403		{object}	utils.Response			"Status not visible for this role"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/campaigns [get]
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	var caller campaignservice.Caller
	if id, ok := auth.CallerID(r.Context()); ok {
		caller.ID = &id
	}
	if role, ok := auth.CallerRole(r.Context()); ok {
		caller.Role = role
	}

	limit := defaultLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= maxLimit {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		offset = v
	}

	campaigns, err := h.campaignService.List(r.Context(), caller, r.URL.Query().Get("status"), limit, offset)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response := make([]dto.CampaignResponseDTO, len(campaigns))
	for i, campaign := range campaigns {
		campaign := campaign
		response[i] = toCampaignDTO(&campaign)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary	Get a campaign
//	@Tags		Campaigns
//	@Produce	json
//	@Param		id	path		int	true	"Campaign ID"
//	@Success	200	{object}	dto.CampaignResponseDTO	"Campaign"
//	@Failure	404	{object}	utils.Response			"Campaign not found"
//	@Failure	500	{object}	utils.Response			"Internal server error"
//	@Router		/api/campaigns/{id} [get]
func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}

	campaign, err := h.campaignService.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCampaignDTO(campaign))
}

// Create godoc
//
//	@Summary		Create a campaign
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateCampaignRequestDTO	true	"Campaign payload"
//	@Success		201		{object}	dto.CampaignResponseDTO			"Created campaign"
//	@Failure		400		{object}	utils.Response					"Validation error"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/campaigns [post]
func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCampaignRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	campaign := &domain.Campaign{
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		Status:       req.Status,
		Images:       req.Images,
	}
	if id, ok := auth.CallerID(r.Context()); ok {
		campaign.CreatedBy = &id
	}
	if req.EndDate != "" {
		endDate, err := time.Parse(endDateLayout, req.EndDate)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid end_date, expected "+endDateLayout)
			return
		}
		campaign.EndDate = &endDate
	}

	created, err := h.campaignService.Create(r.Context(), campaign)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toCampaignDTO(created))
}

// Update godoc
//
//	@Summary		Update a campaign
//	@Description	Update mutable fields and optionally transition the status.
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Campaign ID"
//	@Param			request	body		dto.UpdateCampaignRequestDTO	true	"Fields to update"
//	@Success		200		{object}	dto.CampaignResponseDTO			"Updated campaign"
//	@Failure		404		{object}	utils.Response					"Campaign not found"
//	@Failure		409		{object}	utils.Response					"Transition not allowed"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/campaigns/{id} [put]
func (h *CampaignHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}

	var req dto.UpdateCampaignRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	upd := campaignservice.UpdateCampaign{
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		Images:       req.Images,
		Status:       req.Status,
	}
	if req.EndDate != nil {
		endDate, err := time.Parse(endDateLayout, *req.EndDate)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid end_date, expected "+endDateLayout)
			return
		}
		upd.EndDate = &endDate
	}

	campaign, err := h.campaignService.Update(r.Context(), id, upd)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCampaignDTO(campaign))
}

// Delete godoc
//
//	@Summary		Delete a campaign
//	@Description	Only campaigns without donations can be deleted; cancel campaigns with ledger history instead.
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Campaign ID"
//	@Success		204	{string}	string			"Campaign deleted"
//	@Failure		404	{object}	utils.Response	"Campaign not found"
//	@Failure		409	{object}	utils.Response	"Campaign has donations"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns/{id} [delete]
func (h *CampaignHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}

	if err := h.campaignService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// Import godoc
//
//	@Summary		Bulk import campaigns
//	@Description	Normalize and insert externally sourced campaigns. Invalid records are reported per index and never abort the batch.
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BulkImportCampaignsRequestDTO	true	"Batch of records"
//	@Success		201		{object}	dto.BulkImportCampaignsResponseDTO	"All records imported"
//	@Success		207		{object}	dto.BulkImportCampaignsResponseDTO	"Partially imported"
//	@Failure		400		{object}	dto.BulkImportCampaignsResponseDTO	"No valid records"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/api/campaigns/import [post]
func (h *CampaignHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkImportCampaignsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Records) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "records must not be empty")
		return
	}

	records := make([]campaignservice.ImportRecord, len(req.Records))
	for i, record := range req.Records {
		records[i] = campaignservice.ImportRecord{
			Title:        record.Title,
			Description:  record.Description,
			TargetAmount: record.TargetAmount,
			RaisedAmount: record.RaisedAmount,
			Status:       record.Status,
			EndDate:      record.EndDate,
			Images:       record.Images,
			CreatedBy:    record.CreatedBy,
		}
	}

	result, err := h.campaignService.BulkImport(r.Context(), records)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := dto.BulkImportCampaignsResponseDTO{
		BatchID: result.BatchID,
		Created: make([]dto.CampaignResponseDTO, len(result.Created)),
		Errors:  make([]dto.ImportErrorDTO, len(result.Errors)),
	}
	for i, campaign := range result.Created {
		campaign := campaign
		resp.Created[i] = toCampaignDTO(&campaign)
	}
	for i, importErr := range result.Errors {
		resp.Errors[i] = dto.ImportErrorDTO{Index: importErr.Index, Message: importErr.Reason}
	}

	switch {
	case len(resp.Created) == 0:
		utils.RespondWithJSON(w, http.StatusBadRequest, resp)
	case len(resp.Errors) > 0:
		utils.RespondWithJSON(w, http.StatusMultiStatus, resp)
	default:
		utils.RespondWithJSON(w, http.StatusCreated, resp)
	}
}

// Sweep godoc
//
//	@Summary		Run the auto-completion sweep
//	@Description	Transition every ongoing campaign whose end date has passed to COMPLETE. Campaigns succeed or fail independently.
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SweepResponseDTO	"Sweep result"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/campaigns/sweep [post]
func (h *CampaignHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	result, err := h.sweeper.RunSweep(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.SweepResponseDTO{
		Completed: result.Completed,
		Failed:    make([]dto.SweepFailureDTO, len(result.Failed)),
	}
	for i, failure := range result.Failed {
		resp.Failed[i] = dto.SweepFailureDTO{CampaignID: failure.CampaignID, Reason: failure.Reason}
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
