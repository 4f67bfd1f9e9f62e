package domain

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleUser, RoleAdmin:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q: %w", s, ErrValidation)
}

type Party string

const (
	PartyLoader   Party = "loader"
	PartyReceiver Party = "receiver"
)

// CountdownTime is the window a party has to take the next required action.
type CountdownTime string

const (
	Countdown15Min CountdownTime = "15min"
	Countdown30Min CountdownTime = "30min"
	Countdown1Hr   CountdownTime = "1hr"
	Countdown2Hr   CountdownTime = "2hr"
)

var countdownDurations = map[CountdownTime]time.Duration{
	Countdown15Min: 15 * time.Minute,
	Countdown30Min: 30 * time.Minute,
	Countdown1Hr:   time.Hour,
	Countdown2Hr:   2 * time.Hour,
}

func ParseCountdownTime(s string) (CountdownTime, error) {
	c := CountdownTime(s)
	if _, ok := countdownDurations[c]; !ok {
		return "", fmt.Errorf("unknown countdown time %q: %w", s, ErrValidation)
	}
	return c, nil
}

func (c CountdownTime) Duration() time.Duration {
	return countdownDurations[c]
}

type LiabilityType string

const (
	LiabilityFullPayment     LiabilityType = "full_payment"
	LiabilityPartial10       LiabilityType = "partial_10"
	LiabilityPartial25       LiabilityType = "partial_25"
	LiabilityPartial50       LiabilityType = "partial_50"
	LiabilityTimeBound24h    LiabilityType = "time_bound_24h"
	LiabilityTimeBound48h    LiabilityType = "time_bound_48h"
	LiabilityTimeBound72h    LiabilityType = "time_bound_72h"
	LiabilityTimeBound1Week  LiabilityType = "time_bound_1week"
	LiabilityTimeBound1Month LiabilityType = "time_bound_1month"
)

func ParseLiabilityType(s string) (LiabilityType, error) {
	switch l := LiabilityType(s); l {
	case LiabilityFullPayment, LiabilityPartial10, LiabilityPartial25, LiabilityPartial50,
		LiabilityTimeBound24h, LiabilityTimeBound48h, LiabilityTimeBound72h,
		LiabilityTimeBound1Week, LiabilityTimeBound1Month:
		return l, nil
	}
	return "", fmt.Errorf("unknown liability type %q: %w", s, ErrValidation)
}

// Deadline returns the repayment deadline for time-bound liabilities and nil otherwise.
func (l LiabilityType) Deadline(lockedAt time.Time) *time.Time {
	var d time.Time
	switch l {
	case LiabilityTimeBound24h:
		d = lockedAt.Add(24 * time.Hour)
	case LiabilityTimeBound48h:
		d = lockedAt.Add(48 * time.Hour)
	case LiabilityTimeBound72h:
		d = lockedAt.Add(72 * time.Hour)
	case LiabilityTimeBound1Week:
		d = lockedAt.AddDate(0, 0, 7)
	case LiabilityTimeBound1Month:
		d = lockedAt.AddDate(0, 1, 0)
	default:
		return nil
	}
	return &d
}

type OrderStatus string

const (
	OrderCreated                       OrderStatus = "created"
	OrderAwaitingLiabilityConfirmation OrderStatus = "awaiting_liability_confirmation"
	OrderAwaitingPaymentDetails        OrderStatus = "awaiting_payment_details"
	OrderPaymentDetailsSent            OrderStatus = "payment_details_sent"
	OrderPaymentSent                   OrderStatus = "payment_sent"
	OrderCompleted                     OrderStatus = "completed"
	OrderCancelledAuto                 OrderStatus = "cancelled_auto"
	OrderCancelledLoader               OrderStatus = "cancelled_loader"
	OrderCancelledReceiver             OrderStatus = "cancelled_receiver"
	OrderDisputed                      OrderStatus = "disputed"
	OrderResolvedLoaderWins            OrderStatus = "resolved_loader_wins"
	OrderResolvedReceiverWins          OrderStatus = "resolved_receiver_wins"
	OrderResolvedMutual                OrderStatus = "resolved_mutual"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(s)
	if _, ok := transitions[st]; !ok && !st.Terminal() {
		return "", fmt.Errorf("unknown order status %q: %w", s, ErrValidation)
	}
	return st, nil
}

func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderCompleted, OrderCancelledAuto, OrderCancelledLoader, OrderCancelledReceiver,
		OrderResolvedLoaderWins, OrderResolvedReceiverWins, OrderResolvedMutual:
		return true
	}
	return false
}

// Event names a state machine input.
type Event string

const (
	EventInitialize         Event = "initialize"
	EventConfirmLiability   Event = "confirm_liability"
	EventLockLiability      Event = "lock_liability"
	EventSendPaymentDetails Event = "send_payment_details"
	EventMarkPaymentSent    Event = "mark_payment_sent"
	EventConfirmReceipt     Event = "confirm_receipt"
	EventCountdownExpired   Event = "countdown_expired"
	EventManualCancel       Event = "manual_cancel"
	EventOpenDispute        Event = "open_dispute"
	EventAdminResolve       Event = "admin_resolve"
)

type DisputeStatus string

const (
	DisputeOpen                 DisputeStatus = "open"
	DisputeInReview             DisputeStatus = "in_review"
	DisputeResolvedLoaderWins   DisputeStatus = "resolved_loader_wins"
	DisputeResolvedReceiverWins DisputeStatus = "resolved_receiver_wins"
	DisputeResolvedMutual       DisputeStatus = "resolved_mutual"
)

func ParseDisputeStatus(s string) (DisputeStatus, error) {
	switch d := DisputeStatus(s); d {
	case DisputeOpen, DisputeInReview, DisputeResolvedLoaderWins, DisputeResolvedReceiverWins, DisputeResolvedMutual:
		return d, nil
	}
	return "", fmt.Errorf("unknown dispute status %q: %w", s, ErrValidation)
}

func (s DisputeStatus) Resolvable() bool {
	return s == DisputeOpen || s == DisputeInReview
}

// DisputeOutcome is the administrator's verdict.
type DisputeOutcome string

const (
	OutcomeLoaderWins   DisputeOutcome = "loader_wins"
	OutcomeReceiverWins DisputeOutcome = "receiver_wins"
	OutcomeMutual       DisputeOutcome = "mutual"
)

func ParseDisputeOutcome(s string) (DisputeOutcome, error) {
	switch o := DisputeOutcome(s); o {
	case OutcomeLoaderWins, OutcomeReceiverWins, OutcomeMutual:
		return o, nil
	}
	return "", fmt.Errorf("unknown dispute outcome %q: %w", s, ErrValidation)
}

func (o DisputeOutcome) OrderStatus() OrderStatus {
	switch o {
	case OutcomeLoaderWins:
		return OrderResolvedLoaderWins
	case OutcomeReceiverWins:
		return OrderResolvedReceiverWins
	}
	return OrderResolvedMutual
}

func (o DisputeOutcome) DisputeStatus() DisputeStatus {
	switch o {
	case OutcomeLoaderWins:
		return DisputeResolvedLoaderWins
	case OutcomeReceiverWins:
		return DisputeResolvedReceiverWins
	}
	return DisputeResolvedMutual
}

// EntryKind classifies ledger journal lines.
type EntryKind string

const (
	EntryDeposit     EntryKind = "deposit"
	EntryFreeze      EntryKind = "freeze"
	EntryRelease     EntryKind = "release"
	EntryFee         EntryKind = "fee"
	EntryTransferOut EntryKind = "transfer_out"
	EntryTransferIn  EntryKind = "transfer_in"
)

type NotificationType string

const (
	NotifyAdAccepted      NotificationType = "ad_accepted"
	NotifyLiability       NotificationType = "liability_update"
	NotifyPaymentDetails  NotificationType = "payment_details"
	NotifyPaymentSent     NotificationType = "payment_sent"
	NotifyOrderCompleted  NotificationType = "order_completed"
	NotifyOrderCancelled  NotificationType = "order_cancelled"
	NotifyDisputeOpened   NotificationType = "dispute_opened"
	NotifyDisputeResolved NotificationType = "dispute_resolved"
)
