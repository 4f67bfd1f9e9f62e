package dto

import (
	"time"

	"github.com/GlebRadaev/loadermarket/internal/domain"
	"github.com/shopspring/decimal"
)

type PostAdRequestDTO struct {
	AssetType         string          `json:"asset_type" example:"USDT"`
	DealAmount        decimal.Decimal `json:"deal_amount" swaggertype:"string" example:"1000"`
	LoadingTerms      string          `json:"loading_terms,omitempty" example:"repay within a week"`
	UpfrontPercentage int             `json:"upfront_percentage" example:"20"`
	CountdownTime     string          `json:"countdown_time" example:"30min"`
	PaymentMethods    []string        `json:"payment_methods" example:"card,sepa"`
}

type AdResponseDTO struct {
	ID                int             `json:"id" example:"3"`
	LoaderID          int             `json:"loader_id" example:"1"`
	AssetType         string          `json:"asset_type" example:"USDT"`
	DealAmount        decimal.Decimal `json:"deal_amount" swaggertype:"string" example:"1000"`
	LoadingTerms      string          `json:"loading_terms,omitempty"`
	UpfrontPercentage int             `json:"upfront_percentage" example:"20"`
	CountdownTime     string          `json:"countdown_time" example:"30min"`
	PaymentMethods    []string        `json:"payment_methods"`
	FrozenCommitment  decimal.Decimal `json:"frozen_commitment" swaggertype:"string" example:"100"`
	LoaderFeeReserve  decimal.Decimal `json:"loader_fee_reserve" swaggertype:"string" example:"30"`
	IsActive          bool            `json:"is_active"`
	CreatedAt         time.Time       `json:"created_at"`
}

func (d PostAdRequestDTO) Draft() (domain.AdDraft, error) {
	countdown, err := domain.ParseCountdownTime(d.CountdownTime)
	if err != nil {
		return domain.AdDraft{}, err
	}
	return domain.AdDraft{
		AssetType:         d.AssetType,
		DealAmount:        d.DealAmount,
		LoadingTerms:      d.LoadingTerms,
		UpfrontPercentage: d.UpfrontPercentage,
		CountdownTime:     countdown,
		PaymentMethods:    d.PaymentMethods,
	}, nil
}

func NewAdResponse(a *domain.LoaderAd) AdResponseDTO {
	return AdResponseDTO{
		ID:                a.ID,
		LoaderID:          a.LoaderID,
		AssetType:         a.AssetType,
		DealAmount:        a.DealAmount,
		LoadingTerms:      a.LoadingTerms,
		UpfrontPercentage: a.UpfrontPercentage,
		CountdownTime:     string(a.CountdownTime),
		PaymentMethods:    a.PaymentMethods,
		FrozenCommitment:  a.FrozenCommitment,
		LoaderFeeReserve:  a.LoaderFeeReserve,
		IsActive:          a.IsActive,
		CreatedAt:         a.CreatedAt,
	}
}
