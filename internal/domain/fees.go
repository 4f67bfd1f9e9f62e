package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Precision is the number of fractional digits money is kept at.
const Precision = 8

const (
	MinUpfrontPercentage = 10
	MaxUpfrontPercentage = 100
	MaxLoadingTerms      = 200
)

var (
	MinDealAmount  = decimal.NewFromInt(1)
	CollateralRate = decimal.RequireFromString("0.10")
	FeeRate        = decimal.RequireFromString("0.03")
	PenaltyRate    = decimal.RequireFromString("0.05")
	hundred        = decimal.NewFromInt(100)
)

func Collateral(deal decimal.Decimal) decimal.Decimal {
	return deal.Mul(CollateralRate).Round(Precision)
}

func PlatformFee(deal decimal.Decimal) decimal.Decimal {
	return deal.Mul(FeeRate).Round(Precision)
}

func Penalty(deal decimal.Decimal) decimal.Decimal {
	return deal.Mul(PenaltyRate).Round(Precision)
}

func Upfront(deal decimal.Decimal, percentage int) decimal.Decimal {
	return deal.Mul(decimal.NewFromInt(int64(percentage))).Div(hundred).Round(Precision)
}

type MoveKind string

const (
	MoveRelease   MoveKind = "release"
	MoveSettleFee MoveKind = "settle_fee"
	MoveTransfer  MoveKind = "transfer"
)

// Move is one ledger operation a terminal transition applies. From is the
// escrow it draws on; To is only set for transfers.
type Move struct {
	Kind   MoveKind
	From   int
	To     int
	Amount decimal.Decimal
}

type plan []Move

func (p plan) add(kind MoveKind, from, to int, amount decimal.Decimal) plan {
	if !amount.IsPositive() {
		return p
	}
	return append(p, Move{Kind: kind, From: from, To: to, Amount: amount})
}

// PlanCompletion returns collateral to both parties and keeps both fee reserves.
func PlanCompletion(o *LoaderOrder) []Move {
	var p plan
	p = p.add(MoveRelease, o.LoaderID, 0, o.LoaderFrozenAmount)
	p = p.add(MoveSettleFee, o.LoaderID, 0, o.LoaderFeeReserve)
	p = p.add(MoveRelease, o.ReceiverID, 0, o.ReceiverFrozenAmount)
	p = p.add(MoveSettleFee, o.ReceiverID, 0, o.ReceiverFeeReserve)
	return p
}

// PlanAutoCancel gives every party its whole escrow back.
func PlanAutoCancel(o *LoaderOrder) []Move {
	var p plan
	p = p.add(MoveRelease, o.LoaderID, 0, o.LoaderHeld())
	p = p.add(MoveRelease, o.ReceiverID, 0, o.ReceiverHeld())
	return p
}

// PlanManualCancel charges the canceller the penalty, paid to the counterparty,
// and returns everything else. The penalty never exceeds what the canceller holds.
func PlanManualCancel(o *LoaderOrder, canceller int) ([]Move, decimal.Decimal) {
	counterparty := o.Counterparty(canceller)
	held := o.HeldBy(canceller)
	penalty := decimal.Min(Penalty(o.DealAmount), held)

	var p plan
	p = p.add(MoveTransfer, canceller, counterparty, penalty)
	p = p.add(MoveRelease, canceller, 0, held.Sub(penalty))
	p = p.add(MoveRelease, counterparty, 0, o.HeldBy(counterparty))
	return p, penalty
}

// PlanResolution settles a disputed order. loaderShare is only read for a
// mutual outcome and is the loader's fraction of the pooled escrow.
func PlanResolution(o *LoaderOrder, outcome DisputeOutcome, loaderShare decimal.Decimal) ([]Move, error) {
	var p plan
	switch outcome {
	case OutcomeLoaderWins, OutcomeReceiverWins:
		winner, loser := o.LoaderID, o.ReceiverID
		winnerFrozen, winnerFee := o.LoaderFrozenAmount, o.LoaderFeeReserve
		if outcome == OutcomeReceiverWins {
			winner, loser = o.ReceiverID, o.LoaderID
			winnerFrozen, winnerFee = o.ReceiverFrozenAmount, o.ReceiverFeeReserve
		}
		p = p.add(MoveTransfer, loser, winner, o.HeldBy(loser))
		p = p.add(MoveRelease, winner, 0, winnerFrozen)
		p = p.add(MoveSettleFee, winner, 0, winnerFee)
	case OutcomeMutual:
		if loaderShare.IsNegative() || loaderShare.GreaterThan(decimal.NewFromInt(1)) {
			return nil, fmt.Errorf("loader share %s outside [0,1]: %w", loaderShare, ErrValidation)
		}
		loaderHeld, receiverHeld := o.LoaderHeld(), o.ReceiverHeld()
		target := loaderHeld.Add(receiverHeld).Mul(loaderShare).Truncate(Precision)
		if target.GreaterThanOrEqual(loaderHeld) {
			diff := target.Sub(loaderHeld)
			p = p.add(MoveRelease, o.LoaderID, 0, loaderHeld)
			p = p.add(MoveTransfer, o.ReceiverID, o.LoaderID, diff)
			p = p.add(MoveRelease, o.ReceiverID, 0, receiverHeld.Sub(diff))
		} else {
			diff := loaderHeld.Sub(target)
			p = p.add(MoveTransfer, o.LoaderID, o.ReceiverID, diff)
			p = p.add(MoveRelease, o.LoaderID, 0, target)
			p = p.add(MoveRelease, o.ReceiverID, 0, receiverHeld)
		}
	default:
		return nil, fmt.Errorf("unknown outcome %q: %w", outcome, ErrValidation)
	}
	return p, nil
}
