package dto

import (
	"time"

	"github.com/GlebRadaev/loadermarket/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderResponseDTO struct {
	ID                         int             `json:"id" example:"7"`
	AdID                       int             `json:"ad_id" example:"3"`
	LoaderID                   int             `json:"loader_id" example:"1"`
	ReceiverID                 int             `json:"receiver_id" example:"2"`
	AssetType                  string          `json:"asset_type" example:"USDT"`
	DealAmount                 decimal.Decimal `json:"deal_amount" swaggertype:"string" example:"1000"`
	LoaderFrozenAmount         decimal.Decimal `json:"loader_frozen_amount" swaggertype:"string" example:"100"`
	LoaderFeeReserve           decimal.Decimal `json:"loader_fee_reserve" swaggertype:"string" example:"30"`
	ReceiverFrozenAmount       decimal.Decimal `json:"receiver_frozen_amount" swaggertype:"string" example:"200"`
	ReceiverFeeReserve         decimal.Decimal `json:"receiver_fee_reserve" swaggertype:"string" example:"0"`
	Status                     string          `json:"status" example:"awaiting_liability_confirmation"`
	CountdownTime              string          `json:"countdown_time" example:"30min"`
	CountdownExpiresAt         *time.Time      `json:"countdown_expires_at,omitempty"`
	CountdownStopped           bool            `json:"countdown_stopped"`
	PaymentMethod              string          `json:"payment_method,omitempty" example:"card"`
	PaymentDetails             string          `json:"payment_details,omitempty"`
	LoaderSentPaymentDetails   bool            `json:"loader_sent_payment_details"`
	ReceiverSentPaymentDetails bool            `json:"receiver_sent_payment_details"`
	LoaderMarkedPaymentSent    bool            `json:"loader_marked_payment_sent"`
	ReceiverConfirmedPayment   bool            `json:"receiver_confirmed_payment"`
	LoaderConfirmedReceipt     bool            `json:"loader_confirmed_receipt"`
	LiabilityType              *string         `json:"liability_type,omitempty" example:"partial_25"`
	ReceiverLiabilityConfirmed bool            `json:"receiver_liability_confirmed"`
	LoaderLiabilityConfirmed   bool            `json:"loader_liability_confirmed"`
	LiabilityLockedAt          *time.Time      `json:"liability_locked_at,omitempty"`
	LiabilityDeadline          *time.Time      `json:"liability_deadline,omitempty"`
	CancelledBy                *int            `json:"cancelled_by,omitempty"`
	CancelReason               string          `json:"cancel_reason,omitempty"`
	LoaderFeeDeducted          bool            `json:"loader_fee_deducted"`
	ReceiverFeeDeducted        bool            `json:"receiver_fee_deducted"`
	PenaltyAmount              decimal.Decimal `json:"penalty_amount" swaggertype:"string" example:"0"`
	PenaltyPaidBy              *int            `json:"penalty_paid_by,omitempty"`
	CreatedAt                  time.Time       `json:"created_at"`
	CompletedAt                *time.Time      `json:"completed_at,omitempty"`
}

type LiabilityRequestDTO struct {
	LiabilityType string `json:"liability_type" example:"partial_25"`
}

type PaymentDetailsRequestDTO struct {
	Method  string `json:"method" example:"card"`
	Details string `json:"details" example:"4539 1488 0343 6467, J. Doe"`
}

type CancelOrderRequestDTO struct {
	Reason string `json:"reason,omitempty" example:"changed my mind"`
}

type OpenDisputeRequestDTO struct {
	Reason       string   `json:"reason" example:"payment never arrived"`
	EvidenceURLs []string `json:"evidence_urls,omitempty" example:"https://files.example.com/receipt.png"`
}

type OpenDisputeResponseDTO struct {
	Order   OrderResponseDTO   `json:"order"`
	Dispute DisputeResponseDTO `json:"dispute"`
}

type OrderEventResponseDTO struct {
	ID         uuid.UUID `json:"id" swaggertype:"string" example:"0b8f3c1e-8a57-4c36-9df4-2f1b0f7a9e11"`
	FromStatus string    `json:"from_status" example:"created"`
	ToStatus   string    `json:"to_status" example:"awaiting_liability_confirmation"`
	Event      string    `json:"event" example:"initialize"`
	ActorID    *int      `json:"actor_id,omitempty" example:"2"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewOrderResponse(o *domain.LoaderOrder) OrderResponseDTO {
	var liability *string
	if o.LiabilityType != nil {
		l := string(*o.LiabilityType)
		liability = &l
	}
	return OrderResponseDTO{
		ID:                         o.ID,
		AdID:                       o.AdID,
		LoaderID:                   o.LoaderID,
		ReceiverID:                 o.ReceiverID,
		AssetType:                  o.AssetType,
		DealAmount:                 o.DealAmount,
		LoaderFrozenAmount:         o.LoaderFrozenAmount,
		LoaderFeeReserve:           o.LoaderFeeReserve,
		ReceiverFrozenAmount:       o.ReceiverFrozenAmount,
		ReceiverFeeReserve:         o.ReceiverFeeReserve,
		Status:                     string(o.Status),
		CountdownTime:              string(o.CountdownTime),
		CountdownExpiresAt:         o.CountdownExpiresAt,
		CountdownStopped:           o.CountdownStopped,
		PaymentMethod:              o.PaymentMethod,
		PaymentDetails:             o.PaymentDetails,
		LoaderSentPaymentDetails:   o.LoaderSentPaymentDetails,
		ReceiverSentPaymentDetails: o.ReceiverSentPaymentDetails,
		LoaderMarkedPaymentSent:    o.LoaderMarkedPaymentSent,
		ReceiverConfirmedPayment:   o.ReceiverConfirmedPayment,
		LoaderConfirmedReceipt:     o.LoaderConfirmedReceipt,
		LiabilityType:              liability,
		ReceiverLiabilityConfirmed: o.ReceiverLiabilityConfirmed,
		LoaderLiabilityConfirmed:   o.LoaderLiabilityConfirmed,
		LiabilityLockedAt:          o.LiabilityLockedAt,
		LiabilityDeadline:          o.LiabilityDeadline,
		CancelledBy:                o.CancelledBy,
		CancelReason:               o.CancelReason,
		LoaderFeeDeducted:          o.LoaderFeeDeducted,
		ReceiverFeeDeducted:        o.ReceiverFeeDeducted,
		PenaltyAmount:              o.PenaltyAmount,
		PenaltyPaidBy:              o.PenaltyPaidBy,
		CreatedAt:                  o.CreatedAt,
		CompletedAt:                o.CompletedAt,
	}
}

func NewOrderEventResponse(e *domain.OrderEvent) OrderEventResponseDTO {
	return OrderEventResponseDTO{
		ID:         e.ID,
		FromStatus: string(e.FromStatus),
		ToStatus:   string(e.ToStatus),
		Event:      string(e.Event),
		ActorID:    e.ActorID,
		CreatedAt:  e.CreatedAt,
	}
}
