package orders

//go:generate mockgen -source=orders.go -destination=mock_orders.go -package=orders

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/loadermarket/internal/domain"
	"github.com/GlebRadaev/loadermarket/internal/dto"
	"github.com/GlebRadaev/loadermarket/internal/handlers/httpx"
	"github.com/GlebRadaev/loadermarket/pkg/utils"
)

type Service interface {
	ListOrders(ctx context.Context, userID int) ([]domain.LoaderOrder, error)
	GetOrder(ctx context.Context, orderID int, actor domain.Actor) (*domain.LoaderOrder, error)
	ListEvents(ctx context.Context, orderID int, actor domain.Actor) ([]domain.OrderEvent, error)
	ConfirmLiability(ctx context.Context, orderID, actorID int, liability domain.LiabilityType) (*domain.LoaderOrder, error)
	SendPaymentDetails(ctx context.Context, orderID, actorID int, method, details string) (*domain.LoaderOrder, error)
	MarkPaymentSent(ctx context.Context, orderID, actorID int) (*domain.LoaderOrder, error)
	ConfirmPaymentReceipt(ctx context.Context, orderID, actorID int) (*domain.LoaderOrder, error)
	CancelOrder(ctx context.Context, orderID, actorID int, reason string) (*domain.LoaderOrder, error)
	OpenDispute(ctx context.Context, orderID, actorID int, reason string, evidence []string) (*domain.LoaderOrder, *domain.LoaderDispute, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// GetOrders godoc
//
//	@Summary		List orders
//	@Description	Orders where the authenticated user is the loader or the receiver, newest first
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.Actor(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orders, err := h.orderService.ListOrders(r.Context(), actor.ID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	response := make([]dto.OrderResponseDTO, 0, len(orders))
	for i := range orders {
		response = append(response, dto.NewOrderResponse(&orders[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetOrder godoc
//
//	@Summary		Get order
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Order id"
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid order id"
//	@Failure		403	{object}	utils.Response	"Not a party to the order"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	actor, orderID, ok := h.target(w, r)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), orderID, actor)
	h.respondOrder(w, order, err)
}

// GetEvents godoc
//
//	@Summary		Order history
//	@Description	Audit trail of the order's state transitions, oldest first
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Order id"
//	@Success		200	{array}		dto.OrderEventResponseDTO
//	@Failure		403	{object}	utils.Response	"Not a party to the order"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/events [get]
func (h *OrderHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	actor, orderID, ok := h.target(w, r)
	if !ok {
		return
	}

	events, err := h.orderService.ListEvents(r.Context(), orderID, actor)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	response := make([]dto.OrderEventResponseDTO, 0, len(events))
	for i := range events {
		response = append(response, dto.NewOrderEventResponse(&events[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ConfirmLiability godoc
//
//	@Summary		Confirm liability terms
//	@Description	Both parties must confirm the same liability type; proposing a different type resets both confirmations
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Order id"
//	@Param			request	body		dto.LiabilityRequestDTO	true	"Liability type"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Not a party to the order"
//	@Failure		409		{object}	utils.Response	"Order state does not allow this action"
//	@Failure		422		{object}	utils.Response	"Unknown liability type"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/liability [post]
func (h *OrderHandler) ConfirmLiability(w http.ResponseWriter, r *http.Request) {
	actor, orderID, ok := h.target(w, r)
	if !ok {
		return
	}
	var req dto.LiabilityRequestDTO
	if err := httpx.DecodeJSON(r, &req, false); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.ConfirmLiability(r.Context(), orderID, actor.ID, domain.LiabilityType(req.LiabilityType))
	h.respondOrder(w, order, err)
}

// SendPaymentDetails godoc
//
//	@Summary		Send payment details
//	@Description	Loader shares where the receiver should pay, using one of the ad's payment methods
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Order id"
//	@Param			request	body		dto.PaymentDetailsRequestDTO	true	"Payment details"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Only the loader may send payment details"
//	@Failure		409		{object}	utils.Response	"Order state does not allow this action"
//	@Failure		422		{object}	utils.Response	"Invalid payment details"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/payment-details [post]
func (h *OrderHandler) SendPaymentDetails(w http.ResponseWriter, r *http.Request) {
	actor, orderID, ok := h.target(w, r)
	if !ok {
		return
	}
	var req dto.PaymentDetailsRequestDTO
	if err := httpx.DecodeJSON(r, &req, false); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.SendPaymentDetails(r.Context(), orderID, actor.ID, req.Method, req.Details)
	h.respondOrder(w, order, err)
}

// MarkPaymentSent godoc
//
//	@Summary		Mark payment sent
//	@Description	Records that the payment was made and stops the countdown
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Order id"
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		403	{object}	utils.Response	"Not a party to the order"
//	@Failure		409	{object}	utils.Response	"Order state does not allow this action"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/payment-sent [post]
func (h *OrderHandler) MarkPaymentSent(w http.ResponseWriter, r *http.Request) {
	actor, orderID, ok := h.target(w, r)
	if !ok {
		return
	}

	order, err := h.orderService.MarkPaymentSent(r.Context(), orderID, actor.ID)
	h.respondOrder(w, order, err)
}

// ConfirmReceipt godoc
//
//	@Summary		Confirm payment receipt
//	@Description	Loader confirms the funds arrived; the order completes and fees are settled
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Order id"
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		403	{object}	utils.Response	"Only the loader may confirm receipt"
//	@Failure		409	{object}	utils.Response	"Order state does not allow this action"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/confirm-receipt [post]
func (h *OrderHandler) ConfirmReceipt(w http.ResponseWriter, r *http.Request) {
	actor, orderID, ok := h.target(w, r)
	if !ok {
		return
	}

	order, err := h.orderService.ConfirmPaymentReceipt(r.Context(), orderID, actor.ID)
	h.respondOrder(w, order, err)
}

// CancelOrder godoc
//
//	@Summary		Cancel order
//	@Description	The canceller pays a 5% penalty to the counterparty; remaining funds are released
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Order id"
//	@Param			request	body		dto.CancelOrderRequestDTO	false	"Cancellation reason"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Not a party to the order"
//	@Failure		409		{object}	utils.Response	"Order state does not allow this action"
//	@Failure		422		{object}	utils.Response	"Reason too long"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	actor, orderID, ok := h.target(w, r)
	if !ok {
		return
	}
	var req dto.CancelOrderRequestDTO
	if err := httpx.DecodeJSON(r, &req, true); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.CancelOrder(r.Context(), orderID, actor.ID, req.Reason)
	h.respondOrder(w, order, err)
}

// OpenDispute godoc
//
//	@Summary		Open a dispute
//	@Description	Freezes the order until an administrator resolves it
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Order id"
//	@Param			request	body		dto.OpenDisputeRequestDTO	true	"Dispute reason and evidence"
//	@Success		201		{object}	dto.OpenDisputeResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Not a party to the order"
//	@Failure		409		{object}	utils.Response	"Order state does not allow this action"
//	@Failure		422		{object}	utils.Response	"Invalid reason or evidence"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/dispute [post]
func (h *OrderHandler) OpenDispute(w http.ResponseWriter, r *http.Request) {
	actor, orderID, ok := h.target(w, r)
	if !ok {
		return
	}
	var req dto.OpenDisputeRequestDTO
	if err := httpx.DecodeJSON(r, &req, false); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, dispute, err := h.orderService.OpenDispute(r.Context(), orderID, actor.ID, req.Reason, req.EvidenceURLs)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.OpenDisputeResponseDTO{
		Order:   dto.NewOrderResponse(order),
		Dispute: dto.NewDisputeResponse(dispute),
	})
}

func (h *OrderHandler) target(w http.ResponseWriter, r *http.Request) (domain.Actor, int, bool) {
	actor, ok := httpx.Actor(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return domain.Actor{}, 0, false
	}
	orderID, err := httpx.IDParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return domain.Actor{}, 0, false
	}
	return actor, orderID, true
}

func (h *OrderHandler) respondOrder(w http.ResponseWriter, order *domain.LoaderOrder, err error) {
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderResponse(order))
}
