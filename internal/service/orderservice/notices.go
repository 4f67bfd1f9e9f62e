package orderservice

import (
	"fmt"

	"github.com/GlebRadaev/loadermarket/internal/domain"
)

// notices builds the in-app messages that follow an order transition.
// actorID is zero for transitions nobody triggered.
func notices(o *domain.LoaderOrder, event domain.Event, actorID int) []domain.Notification {
	link := fmt.Sprintf("/orders/%d", o.ID)
	to := func(userID int, typ domain.NotificationType, title, msg string) domain.Notification {
		return domain.Notification{UserID: userID, Type: typ, Title: title, Message: msg, Link: link}
	}
	both := func(typ domain.NotificationType, title, msg string) []domain.Notification {
		return []domain.Notification{to(o.LoaderID, typ, title, msg), to(o.ReceiverID, typ, title, msg)}
	}
	other := o.Counterparty(actorID)

	switch event {
	case domain.EventConfirmLiability:
		return []domain.Notification{to(other, domain.NotifyLiability, "Liability proposed",
			fmt.Sprintf("Order #%d: the other party agreed to %s liability", o.ID, *o.LiabilityType))}
	case domain.EventLockLiability:
		return both(domain.NotifyLiability, "Liability locked",
			fmt.Sprintf("Order #%d: both parties agreed to %s liability", o.ID, *o.LiabilityType))
	case domain.EventSendPaymentDetails:
		return []domain.Notification{to(o.ReceiverID, domain.NotifyPaymentDetails, "Payment details received",
			fmt.Sprintf("Order #%d: pay %s %s via %s", o.ID, o.DealAmount, o.AssetType, o.PaymentMethod))}
	case domain.EventMarkPaymentSent:
		return []domain.Notification{to(other, domain.NotifyPaymentSent, "Payment sent",
			fmt.Sprintf("Order #%d: payment was marked as sent", o.ID))}
	case domain.EventConfirmReceipt:
		return both(domain.NotifyOrderCompleted, "Order completed",
			fmt.Sprintf("Order #%d is completed", o.ID))
	case domain.EventManualCancel:
		msg := fmt.Sprintf("Order #%d was cancelled by the other party", o.ID)
		if o.PenaltyAmount.IsPositive() {
			msg += fmt.Sprintf(", penalty of %s %s credited to you", o.PenaltyAmount, o.AssetType)
		}
		return []domain.Notification{to(other, domain.NotifyOrderCancelled, "Order cancelled", msg)}
	case domain.EventOpenDispute:
		return []domain.Notification{to(other, domain.NotifyDisputeOpened, "Dispute opened",
			fmt.Sprintf("Order #%d is disputed and frozen until an administrator resolves it", o.ID))}
	case domain.EventCountdownExpired:
		return both(domain.NotifyOrderCancelled, "Order expired",
			fmt.Sprintf("Order #%d was cancelled because the countdown ran out, escrow returned", o.ID))
	}
	return nil
}
