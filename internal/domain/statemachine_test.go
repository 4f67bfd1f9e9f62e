package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_Next(t *testing.T) {
	tests := []struct {
		name     string
		from     OrderStatus
		event    Event
		expected OrderStatus
		wantErr  error
	}{
		{"initialize", OrderCreated, EventInitialize, OrderAwaitingLiabilityConfirmation, nil},
		{"confirm liability keeps negotiating", OrderAwaitingLiabilityConfirmation, EventConfirmLiability, OrderAwaitingLiabilityConfirmation, nil},
		{"lock liability", OrderAwaitingLiabilityConfirmation, EventLockLiability, OrderAwaitingPaymentDetails, nil},
		{"send payment details", OrderAwaitingPaymentDetails, EventSendPaymentDetails, OrderPaymentDetailsSent, nil},
		{"mark payment sent", OrderPaymentDetailsSent, EventMarkPaymentSent, OrderPaymentSent, nil},
		{"confirm receipt", OrderPaymentSent, EventConfirmReceipt, OrderCompleted, nil},
		{"countdown from payment details", OrderAwaitingPaymentDetails, EventCountdownExpired, OrderCancelledAuto, nil},
		{"dispute from payment sent", OrderPaymentSent, EventOpenDispute, OrderDisputed, nil},
		{"skip ahead is stale", OrderAwaitingPaymentDetails, EventConfirmReceipt, "", ErrStaleState},
		{"terminal order is stale", OrderCompleted, EventCountdownExpired, "", ErrStaleState},
		{"disputed order does not expire", OrderDisputed, EventCountdownExpired, "", ErrStaleState},
		{"disputed order cannot be disputed again", OrderDisputed, EventOpenDispute, "", ErrStaleState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			to, err := tt.from.Next(tt.event)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, to)
		})
	}
}

func TestOrderStatus_CancelTarget(t *testing.T) {
	to, err := OrderPaymentDetailsSent.CancelTarget(PartyLoader)
	assert.NoError(t, err)
	assert.Equal(t, OrderCancelledLoader, to)

	to, err = OrderAwaitingLiabilityConfirmation.CancelTarget(PartyReceiver)
	assert.NoError(t, err)
	assert.Equal(t, OrderCancelledReceiver, to)

	_, err = OrderCancelledAuto.CancelTarget(PartyLoader)
	assert.ErrorIs(t, err, ErrStaleState)

	_, err = OrderDisputed.CancelTarget(PartyLoader)
	assert.ErrorIs(t, err, ErrStaleState)
}

func TestOrderStatus_ResolveTarget(t *testing.T) {
	to, err := OrderDisputed.ResolveTarget(OutcomeReceiverWins)
	assert.NoError(t, err)
	assert.Equal(t, OrderResolvedReceiverWins, to)

	_, err = OrderPaymentSent.ResolveTarget(OutcomeMutual)
	assert.ErrorIs(t, err, ErrStaleState)
}

func TestParseEnums(t *testing.T) {
	_, err := ParseOrderStatus("maintenance_mode")
	assert.ErrorIs(t, err, ErrValidation)

	st, err := ParseOrderStatus("resolved_mutual")
	assert.NoError(t, err)
	assert.Equal(t, OrderResolvedMutual, st)

	_, err = ParseCountdownTime("45min")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ParseLiabilityType("partial_75")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ParseDisputeOutcome("draw")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ParseRole("root")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLiabilityType_Deadline(t *testing.T) {
	locked := time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)

	assert.Nil(t, LiabilityFullPayment.Deadline(locked))
	assert.Nil(t, LiabilityPartial25.Deadline(locked))
	assert.Equal(t, locked.Add(48*time.Hour), *LiabilityTimeBound48h.Deadline(locked))
	assert.Equal(t, locked.AddDate(0, 0, 7), *LiabilityTimeBound1Week.Deadline(locked))
	assert.Equal(t, locked.AddDate(0, 1, 0), *LiabilityTimeBound1Month.Deadline(locked))
}

func TestLoaderOrder_Expired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	tests := []struct {
		name     string
		order    LoaderOrder
		expected bool
	}{
		{"deadline passed", LoaderOrder{Status: OrderAwaitingPaymentDetails, CountdownExpiresAt: &past}, true},
		{"deadline ahead", LoaderOrder{Status: OrderAwaitingPaymentDetails, CountdownExpiresAt: &future}, false},
		{"countdown stopped", LoaderOrder{Status: OrderPaymentSent, CountdownExpiresAt: &past, CountdownStopped: true}, false},
		{"no deadline", LoaderOrder{Status: OrderAwaitingPaymentDetails}, false},
		{"already cancelled", LoaderOrder{Status: OrderCancelledAuto, CountdownExpiresAt: &past}, false},
		{"disputed", LoaderOrder{Status: OrderDisputed, CountdownExpiresAt: &past}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.order.Expired(now))
		})
	}
}
