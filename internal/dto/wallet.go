package dto

import (
	"time"

	"github.com/GlebRadaev/loadermarket/internal/domain"
	"github.com/shopspring/decimal"
)

type WalletResponseDTO struct {
	Currency  string          `json:"currency" example:"USDT"`
	Available decimal.Decimal `json:"available" swaggertype:"string" example:"870.5"`
	Escrow    decimal.Decimal `json:"escrow" swaggertype:"string" example:"130"`
	UpdatedAt time.Time       `json:"updated_at" example:"2024-05-01T12:00:00Z"`
}

type LedgerEntryResponseDTO struct {
	ID        int             `json:"id" example:"12"`
	Currency  string          `json:"currency" example:"USDT"`
	Kind      string          `json:"kind" example:"freeze"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"130"`
	AdID      *int            `json:"ad_id,omitempty" example:"3"`
	OrderID   *int            `json:"order_id,omitempty" example:"7"`
	CreatedAt time.Time       `json:"created_at" example:"2024-05-01T12:00:00Z"`
}

type DepositRequestDTO struct {
	UserID   int             `json:"user_id" example:"1"`
	Currency string          `json:"currency" example:"USDT"`
	Amount   decimal.Decimal `json:"amount" swaggertype:"string" example:"1000"`
}

func NewWalletResponse(w *domain.Wallet) WalletResponseDTO {
	return WalletResponseDTO{
		Currency:  w.Currency,
		Available: w.AvailableBalance,
		Escrow:    w.EscrowBalance,
		UpdatedAt: w.UpdatedAt,
	}
}

func NewLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponseDTO {
	return LedgerEntryResponseDTO{
		ID:        e.ID,
		Currency:  e.Currency,
		Kind:      string(e.Kind),
		Amount:    e.Amount,
		AdID:      e.AdID,
		OrderID:   e.OrderID,
		CreatedAt: e.CreatedAt,
	}
}
