package domain

import "github.com/shopspring/decimal"

// PlatformControls is a per-request snapshot of the operator switches.
type PlatformControls struct {
	EmergencyMode   bool
	MaxDealAmount   decimal.Decimal
	DefaultCurrency string
	ReceiverFeeRate decimal.Decimal
}

// AllowsDeal reports whether amount fits under the operator cap; a zero cap means no limit.
func (c PlatformControls) AllowsDeal(amount decimal.Decimal) bool {
	if c.MaxDealAmount.IsZero() {
		return true
	}
	return amount.LessThanOrEqual(c.MaxDealAmount)
}
