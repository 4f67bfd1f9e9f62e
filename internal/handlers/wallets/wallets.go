package wallets

//go:generate mockgen -source=wallets.go -destination=mock_wallets.go -package=wallets

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
	GetWallets(ctx context.Context, userID int) ([]domain.Wallet, error)
	ListEntries(ctx context.Context, userID, limit int) ([]domain.LedgerEntry, error)
	Deposit(ctx context.Context, actor domain.Actor, userID int, currency string, amount decimal.Decimal) (*domain.Wallet, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetWallets godoc
//
//	@Summary		Get wallets
//	@Description	Available and escrowed balance of the authenticated user per currency
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WalletResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallets [get]
func (h *WalletHandler) GetWallets(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.Actor(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	wallets, err := h.walletService.GetWallets(r.Context(), actor.ID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	response := make([]dto.WalletResponseDTO, 0, len(wallets))
	for i := range wallets {
		response = append(response, dto.NewWalletResponse(&wallets[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetEntries godoc
//
//	@Summary		Get ledger journal
//	@Description	Latest ledger entries of the authenticated user, newest first
//	@Tags			Wallets
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum number of entries (default 100)"
//	@Success		200		{array}		dto.LedgerEntryResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallets/entries [get]
func (h *WalletHandler) GetEntries(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.Actor(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	entries, err := h.walletService.ListEntries(r.Context(), actor.ID, httpx.LimitParam(r))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	response := make([]dto.LedgerEntryResponseDTO, 0, len(entries))
	for i := range entries {
		response = append(response, dto.NewLedgerEntryResponse(&entries[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Deposit godoc
//
//	@Summary		Fund a wallet
//	@Description	Credit a user's available balance from an external funding source
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit request payload"
//	@Success		200		{object}	dto.WalletResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Administrator role required"
//	@Failure		422		{object}	utils.Response	"Invalid amount or currency"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/wallets/deposit [post]
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.Actor(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.DepositRequestDTO
	if err := httpx.DecodeJSON(r, &req, false); err != nil || req.UserID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	wallet, err := h.walletService.Deposit(r.Context(), actor, req.UserID, req.Currency, req.Amount)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWalletResponse(wallet))
}
