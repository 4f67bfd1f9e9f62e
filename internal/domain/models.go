package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID   int
	Role Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

type Wallet struct {
	ID               int             `db:"id"`
	UserID           int             `db:"user_id"`
	Currency         string          `db:"currency"`
	AvailableBalance decimal.Decimal `db:"available_balance"`
	EscrowBalance    decimal.Decimal `db:"escrow_balance"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

// Total is the sum a wallet holds regardless of escrow.
func (w *Wallet) Total() decimal.Decimal {
	return w.AvailableBalance.Add(w.EscrowBalance)
}

type LedgerEntry struct {
	ID        int             `db:"id"`
	UserID    int             `db:"user_id"`
	Currency  string          `db:"currency"`
	Kind      EntryKind       `db:"kind"`
	Amount    decimal.Decimal `db:"amount"`
	AdID      *int            `db:"ad_id"`
	OrderID   *int            `db:"order_id"`
	CreatedAt time.Time       `db:"created_at"`
}

// LedgerRef ties a ledger mutation to the ad or order that caused it.
type LedgerRef struct {
	AdID    *int
	OrderID *int
}

func AdRef(id int) LedgerRef {
	return LedgerRef{AdID: &id}
}

func OrderRef(id int) LedgerRef {
	return LedgerRef{OrderID: &id}
}

type LoaderAd struct {
	ID                int             `db:"id"`
	LoaderID          int             `db:"loader_id"`
	AssetType         string          `db:"asset_type"`
	DealAmount        decimal.Decimal `db:"deal_amount"`
	LoadingTerms      string          `db:"loading_terms"`
	UpfrontPercentage int             `db:"upfront_percentage"`
	CountdownTime     CountdownTime   `db:"countdown_time"`
	PaymentMethods    []string        `db:"payment_methods"`
	FrozenCommitment  decimal.Decimal `db:"frozen_commitment"`
	LoaderFeeReserve  decimal.Decimal `db:"loader_fee_reserve"`
	IsActive          bool            `db:"is_active"`
	CreatedAt         time.Time       `db:"created_at"`
}

// AdDraft is the loader's input for a new ad.
type AdDraft struct {
	AssetType         string
	DealAmount        decimal.Decimal
	LoadingTerms      string
	UpfrontPercentage int
	CountdownTime     CountdownTime
	PaymentMethods    []string
}

// Held is what the ad keeps out of the loader's available balance.
func (a *LoaderAd) Held() decimal.Decimal {
	return a.FrozenCommitment.Add(a.LoaderFeeReserve)
}

func (a *LoaderAd) AcceptsMethod(method string) bool {
	for _, m := range a.PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

type LoaderOrder struct {
	ID                         int             `db:"id"`
	AdID                       int             `db:"ad_id"`
	LoaderID                   int             `db:"loader_id"`
	ReceiverID                 int             `db:"receiver_id"`
	AssetType                  string          `db:"asset_type"`
	DealAmount                 decimal.Decimal `db:"deal_amount"`
	LoaderFrozenAmount         decimal.Decimal `db:"loader_frozen_amount"`
	LoaderFeeReserve           decimal.Decimal `db:"loader_fee_reserve"`
	ReceiverFrozenAmount       decimal.Decimal `db:"receiver_frozen_amount"`
	ReceiverFeeReserve         decimal.Decimal `db:"receiver_fee_reserve"`
	Status                     OrderStatus     `db:"status"`
	CountdownTime              CountdownTime   `db:"countdown_time"`
	CountdownExpiresAt         *time.Time      `db:"countdown_expires_at"`
	CountdownStopped           bool            `db:"countdown_stopped"`
	PaymentMethod              string          `db:"payment_method"`
	PaymentDetails             string          `db:"payment_details"`
	LoaderSentPaymentDetails   bool            `db:"loader_sent_payment_details"`
	ReceiverSentPaymentDetails bool            `db:"receiver_sent_payment_details"`
	LoaderMarkedPaymentSent    bool            `db:"loader_marked_payment_sent"`
	ReceiverConfirmedPayment   bool            `db:"receiver_confirmed_payment"`
	LoaderConfirmedReceipt     bool            `db:"loader_confirmed_receipt"`
	LiabilityType              *LiabilityType  `db:"liability_type"`
	ReceiverLiabilityConfirmed bool            `db:"receiver_liability_confirmed"`
	LoaderLiabilityConfirmed   bool            `db:"loader_liability_confirmed"`
	LiabilityLockedAt          *time.Time      `db:"liability_locked_at"`
	LiabilityDeadline          *time.Time      `db:"liability_deadline"`
	CancelledBy                *int            `db:"cancelled_by"`
	CancelReason               string          `db:"cancel_reason"`
	LoaderFeeDeducted          bool            `db:"loader_fee_deducted"`
	ReceiverFeeDeducted        bool            `db:"receiver_fee_deducted"`
	PenaltyAmount              decimal.Decimal `db:"penalty_amount"`
	PenaltyPaidBy              *int            `db:"penalty_paid_by"`
	Version                    int             `db:"version"`
	CreatedAt                  time.Time       `db:"created_at"`
	CompletedAt                *time.Time      `db:"completed_at"`
}

// Party reports which side of the order userID is on.
func (o *LoaderOrder) Party(userID int) (Party, bool) {
	switch userID {
	case o.LoaderID:
		return PartyLoader, true
	case o.ReceiverID:
		return PartyReceiver, true
	}
	return "", false
}

func (o *LoaderOrder) Counterparty(userID int) int {
	if userID == o.LoaderID {
		return o.ReceiverID
	}
	return o.LoaderID
}

// LoaderHeld is the loader's escrow tied to the order: collateral plus fee reserve.
func (o *LoaderOrder) LoaderHeld() decimal.Decimal {
	return o.LoaderFrozenAmount.Add(o.LoaderFeeReserve)
}

func (o *LoaderOrder) ReceiverHeld() decimal.Decimal {
	return o.ReceiverFrozenAmount.Add(o.ReceiverFeeReserve)
}

func (o *LoaderOrder) HeldBy(userID int) decimal.Decimal {
	if userID == o.LoaderID {
		return o.LoaderHeld()
	}
	return o.ReceiverHeld()
}

// Countdown re-arms the deadline for the next required action.
func (o *LoaderOrder) Countdown(now time.Time) {
	expires := now.Add(o.CountdownTime.Duration())
	o.CountdownExpiresAt = &expires
}

func (o *LoaderOrder) Expired(now time.Time) bool {
	return !o.Status.Terminal() &&
		o.Status != OrderDisputed &&
		!o.CountdownStopped &&
		o.CountdownExpiresAt != nil &&
		o.CountdownExpiresAt.Before(now)
}

type LoaderDispute struct {
	ID           int             `db:"id"`
	OrderID      int             `db:"order_id"`
	OpenedBy     int             `db:"opened_by"`
	Reason       string          `db:"reason"`
	EvidenceURLs []string        `db:"evidence_urls"`
	Status       DisputeStatus   `db:"status"`
	Resolution   string          `db:"resolution"`
	ResolvedBy   *int            `db:"resolved_by"`
	WinnerID     *int            `db:"winner_id"`
	LoserID      *int            `db:"loser_id"`
	LoaderShare  decimal.Decimal `db:"loader_share"`
	AdminNotes   string          `db:"admin_notes"`
	CreatedAt    time.Time       `db:"created_at"`
	ResolvedAt   *time.Time      `db:"resolved_at"`
}

type OrderEvent struct {
	ID         uuid.UUID   `db:"id"`
	OrderID    int         `db:"order_id"`
	FromStatus OrderStatus `db:"from_status"`
	ToStatus   OrderStatus `db:"to_status"`
	Event      Event       `db:"event"`
	ActorID    *int        `db:"actor_id"`
	CreatedAt  time.Time   `db:"created_at"`
}

type Notification struct {
	ID        int              `db:"id"`
	UserID    int              `db:"user_id"`
	Type      NotificationType `db:"type"`
	Title     string           `db:"title"`
	Message   string           `db:"message"`
	Link      string           `db:"link"`
	CreatedAt time.Time        `db:"created_at"`
}
