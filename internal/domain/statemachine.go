package domain

import "fmt"

// transitions lists the fixed-target moves of a loader order. Cancellation and
// dispute resolution pick their target from the actor and the verdict, see
// CancelTarget and ResolveTarget.
var transitions = map[OrderStatus]map[Event]OrderStatus{
	OrderCreated: {
		EventInitialize: OrderAwaitingLiabilityConfirmation,
	},
	OrderAwaitingLiabilityConfirmation: {
		EventConfirmLiability: OrderAwaitingLiabilityConfirmation,
		EventLockLiability:    OrderAwaitingPaymentDetails,
	},
	OrderAwaitingPaymentDetails: {
		EventSendPaymentDetails: OrderPaymentDetailsSent,
	},
	OrderPaymentDetailsSent: {
		EventMarkPaymentSent: OrderPaymentSent,
	},
	OrderPaymentSent: {
		EventConfirmReceipt: OrderCompleted,
	},
	OrderDisputed: {},
}

// active holds the events every live, undisputed order accepts.
var active = map[Event]OrderStatus{
	EventCountdownExpired: OrderCancelledAuto,
	EventOpenDispute:      OrderDisputed,
}

// Next returns the status an order moves to on ev, or ErrStaleState when the
// order is not in a state that accepts it.
func (s OrderStatus) Next(ev Event) (OrderStatus, error) {
	if to, ok := transitions[s][ev]; ok {
		return to, nil
	}
	if s.live() {
		if to, ok := active[ev]; ok {
			return to, nil
		}
	}
	return "", fmt.Errorf("order is %s, cannot %s: %w", s, ev, ErrStaleState)
}

func (s OrderStatus) CancelTarget(p Party) (OrderStatus, error) {
	if !s.live() {
		return "", fmt.Errorf("order is %s, cannot cancel: %w", s, ErrStaleState)
	}
	if p == PartyLoader {
		return OrderCancelledLoader, nil
	}
	return OrderCancelledReceiver, nil
}

func (s OrderStatus) ResolveTarget(o DisputeOutcome) (OrderStatus, error) {
	if s != OrderDisputed {
		return "", fmt.Errorf("order is %s, cannot resolve: %w", s, ErrStaleState)
	}
	return o.OrderStatus(), nil
}

// live orders are neither terminal nor frozen by a dispute.
func (s OrderStatus) live() bool {
	return !s.Terminal() && s != OrderDisputed
}
