package ads

//go:generate mockgen -source=ads.go -destination=mock_ads.go -package=ads

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/loadermarket/internal/domain"
	"github.com/GlebRadaev/loadermarket/internal/dto"
	"github.com/GlebRadaev/loadermarket/internal/handlers/httpx"
	"github.com/GlebRadaev/loadermarket/pkg/utils"
)

type Service interface {
	PostAd(ctx context.Context, controls domain.PlatformControls, loaderID int, draft domain.AdDraft) (*domain.LoaderAd, error)
	CancelAd(ctx context.Context, adID, requesterID int) (*domain.LoaderAd, error)
	AcceptAd(ctx context.Context, controls domain.PlatformControls, adID, receiverID int) (*domain.LoaderOrder, error)
	GetAd(ctx context.Context, adID int) (*domain.LoaderAd, error)
	ListAds(ctx context.Context, assetType string) ([]domain.LoaderAd, error)
}

// Controls returns the operator switches in force for the current request.
type Controls func() domain.PlatformControls

type AdHandler struct {
	adService Service
	controls  Controls
}

func New(adService Service, controls Controls) *AdHandler {
	return &AdHandler{
		adService: adService,
		controls:  controls,
	}
}

// ListAds godoc
//
//	@Summary		List active ads
//	@Description	Open loader ads, newest first, optionally filtered by asset
//	@Tags			Ads
//	@Security		BearerAuth
//	@Produce		json
//	@Param			asset_type	query		string	false	"Asset filter, e.g. USDT"
//	@Success		200			{array}		dto.AdResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/ads [get]
func (h *AdHandler) ListAds(w http.ResponseWriter, r *http.Request) {
	ads, err := h.adService.ListAds(r.Context(), strings.TrimSpace(r.URL.Query().Get("asset_type")))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	response := make([]dto.AdResponseDTO, 0, len(ads))
	for i := range ads {
		response = append(response, dto.NewAdResponse(&ads[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetAd godoc
//
//	@Summary		Get ad
//	@Tags			Ads
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Ad id"
//	@Success		200	{object}	dto.AdResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid ad id"
//	@Failure		404	{object}	utils.Response	"Ad not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/ads/{id} [get]
func (h *AdHandler) GetAd(w http.ResponseWriter, r *http.Request) {
	adID, err := httpx.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ad, err := h.adService.GetAd(r.Context(), adID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAdResponse(ad))
}

// PostAd godoc
//
//	@Summary		Post a loader ad
//	@Description	Freezes 10% collateral and a 3% fee reserve of the deal amount from the loader's available balance
//	@Tags			Ads
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PostAdRequestDTO	true	"Ad payload"
//	@Success		201		{object}	dto.AdResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		422		{object}	utils.Response	"Invalid ad"
//	@Failure		503		{object}	utils.Response	"Platform is in emergency mode"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/ads [post]
func (h *AdHandler) PostAd(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.Actor(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.PostAdRequestDTO
	if err := httpx.DecodeJSON(r, &req, false); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	draft, err := req.Draft()
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	ad, err := h.adService.PostAd(r.Context(), h.controls(), actor.ID, draft)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewAdResponse(ad))
}

// CancelAd godoc
//
//	@Summary		Cancel an ad
//	@Description	Deactivates the ad and releases its collateral and fee reserve
//	@Tags			Ads
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Ad id"
//	@Success		200	{object}	dto.AdResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid ad id"
//	@Failure		403	{object}	utils.Response	"Not the ad owner"
//	@Failure		404	{object}	utils.Response	"Ad not found"
//	@Failure		409	{object}	utils.Response	"Ad already inactive"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/ads/{id}/cancel [post]
func (h *AdHandler) CancelAd(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.Actor(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	adID, err := httpx.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ad, err := h.adService.CancelAd(r.Context(), adID, actor.ID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAdResponse(ad))
}

// AcceptAd godoc
//
//	@Summary		Accept an ad
//	@Description	Converts the ad into an order and freezes the receiver's upfront share
//	@Tags			Ads
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Ad id"
//	@Success		201	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid ad id"
//	@Failure		402	{object}	utils.Response	"Insufficient funds"
//	@Failure		404	{object}	utils.Response	"Ad not found"
//	@Failure		409	{object}	utils.Response	"Ad already accepted"
//	@Failure		422	{object}	utils.Response	"Loader cannot accept own ad"
//	@Failure		503	{object}	utils.Response	"Platform is in emergency mode"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/ads/{id}/accept [post]
func (h *AdHandler) AcceptAd(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.Actor(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	adID, err := httpx.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.adService.AcceptAd(r.Context(), h.controls(), adID, actor.ID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewOrderResponse(order))
}
