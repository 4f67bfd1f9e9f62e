package dto

import (
	"time"

	"github.com/GlebRadaev/loadermarket/internal/domain"
	"github.com/shopspring/decimal"
)

type DisputeResponseDTO struct {
	ID           int             `json:"id" example:"4"`
	OrderID      int             `json:"order_id" example:"7"`
	OpenedBy     int             `json:"opened_by" example:"2"`
	Reason       string          `json:"reason" example:"payment never arrived"`
	EvidenceURLs []string        `json:"evidence_urls"`
	Status       string          `json:"status" example:"open"`
	Resolution   string          `json:"resolution,omitempty" example:"loader_wins"`
	ResolvedBy   *int            `json:"resolved_by,omitempty"`
	WinnerID     *int            `json:"winner_id,omitempty"`
	LoserID      *int            `json:"loser_id,omitempty"`
	LoaderShare  decimal.Decimal `json:"loader_share" swaggertype:"string" example:"0.5"`
	AdminNotes   string          `json:"admin_notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	ResolvedAt   *time.Time      `json:"resolved_at,omitempty"`
}

type ResolveDisputeRequestDTO struct {
	Outcome     string           `json:"outcome" example:"mutual"`
	LoaderShare *decimal.Decimal `json:"loader_share,omitempty" swaggertype:"string" example:"0.5"`
	AdminNotes  string           `json:"admin_notes,omitempty" example:"both parties share the fault"`
}

type ResolveDisputeResponseDTO struct {
	Dispute DisputeResponseDTO `json:"dispute"`
	Order   OrderResponseDTO   `json:"order"`
}

func NewDisputeResponse(d *domain.LoaderDispute) DisputeResponseDTO {
	evidence := d.EvidenceURLs
	if evidence == nil {
		evidence = []string{}
	}
	return DisputeResponseDTO{
		ID:           d.ID,
		OrderID:      d.OrderID,
		OpenedBy:     d.OpenedBy,
		Reason:       d.Reason,
		EvidenceURLs: evidence,
		Status:       string(d.Status),
		Resolution:   d.Resolution,
		ResolvedBy:   d.ResolvedBy,
		WinnerID:     d.WinnerID,
		LoserID:      d.LoserID,
		LoaderShare:  d.LoaderShare,
		AdminNotes:   d.AdminNotes,
		CreatedAt:    d.CreatedAt,
		ResolvedAt:   d.ResolvedAt,
	}
}
