package disputes

//go:generate mockgen -source=disputes.go -destination=mock_disputes.go -package=disputes

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/loadermarket/internal/domain"
	"github.com/GlebRadaev/loadermarket/internal/dto"
	"github.com/GlebRadaev/loadermarket/internal/handlers/httpx"
	"github.com/GlebRadaev/loadermarket/pkg/utils"
	"github.com/shopspring/decimal"
)

type Service interface {
	List(ctx context.Context, actor domain.Actor, status string) ([]domain.LoaderDispute, error)
	Get(ctx context.Context, actor domain.Actor, disputeID int) (*domain.LoaderDispute, error)
	MarkInReview(ctx context.Context, actor domain.Actor, disputeID int) (*domain.LoaderDispute, error)
	Resolve(ctx context.Context, actor domain.Actor, disputeID int, outcome string, loaderShare *decimal.Decimal, notes string) (*domain.LoaderDispute, *domain.LoaderOrder, error)
}

type DisputeHandler struct {
	disputeService Service
}

func New(disputeService Service) *DisputeHandler {
	return &DisputeHandler{
		disputeService: disputeService,
	}
}

// ListDisputes godoc
//
//	@Summary		List disputes
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"open, in_review or a resolved_* status"
//	@Success		200		{array}		dto.DisputeResponseDTO
//	@Failure		403		{object}	utils.Response	"Administrator role required"
//	@Failure		422		{object}	utils.Response	"Unknown status"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/disputes [get]
func (h *DisputeHandler) ListDisputes(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.Actor(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	disputes, err := h.disputeService.List(r.Context(), actor, r.URL.Query().Get("status"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	response := make([]dto.DisputeResponseDTO, 0, len(disputes))
	for i := range disputes {
		response = append(response, dto.NewDisputeResponse(&disputes[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetDispute godoc
//
//	@Summary		Get dispute
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Dispute id"
//	@Success		200	{object}	dto.DisputeResponseDTO
//	@Failure		403	{object}	utils.Response	"Administrator role required"
//	@Failure		404	{object}	utils.Response	"Dispute not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/disputes/{id} [get]
func (h *DisputeHandler) GetDispute(w http.ResponseWriter, r *http.Request) {
	actor, disputeID, ok := h.target(w, r)
	if !ok {
		return
	}

	dispute, err := h.disputeService.Get(r.Context(), actor, disputeID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDisputeResponse(dispute))
}

// Review godoc
//
//	@Summary		Take a dispute into review
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Dispute id"
//	@Success		200	{object}	dto.DisputeResponseDTO
//	@Failure		403	{object}	utils.Response	"Administrator role required"
//	@Failure		404	{object}	utils.Response	"Dispute not found"
//	@Failure		409	{object}	utils.Response	"Dispute is not open"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/disputes/{id}/review [post]
func (h *DisputeHandler) Review(w http.ResponseWriter, r *http.Request) {
	actor, disputeID, ok := h.target(w, r)
	if !ok {
		return
	}

	dispute, err := h.disputeService.MarkInReview(r.Context(), actor, disputeID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDisputeResponse(dispute))
}

// Resolve godoc
//
//	@Summary		Resolve a dispute
//	@Description	Settles the order: the winner takes the loser's frozen funds, or a mutual split by loader_share (default 0.5)
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Dispute id"
//	@Param			request	body		dto.ResolveDisputeRequestDTO	true	"Outcome"
//	@Success		200		{object}	dto.ResolveDisputeResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Administrator role required"
//	@Failure		404		{object}	utils.Response	"Dispute not found"
//	@Failure		409		{object}	utils.Response	"Dispute already resolved"
//	@Failure		422		{object}	utils.Response	"Unknown outcome or share out of range"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/disputes/{id}/resolve [post]
func (h *DisputeHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	actor, disputeID, ok := h.target(w, r)
	if !ok {
		return
	}
	var req dto.ResolveDisputeRequestDTO
	if err := httpx.DecodeJSON(r, &req, false); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	dispute, order, err := h.disputeService.Resolve(r.Context(), actor, disputeID, req.Outcome, req.LoaderShare, req.AdminNotes)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ResolveDisputeResponseDTO{
		Dispute: dto.NewDisputeResponse(dispute),
		Order:   dto.NewOrderResponse(order),
	})
}

func (h *DisputeHandler) target(w http.ResponseWriter, r *http.Request) (domain.Actor, int, bool) {
	actor, ok := httpx.Actor(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return domain.Actor{}, 0, false
	}
	disputeID, err := httpx.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return domain.Actor{}, 0, false
	}
	return actor, disputeID, true
}
