package notifications

//go:generate mockgen -source=notifications.go -destination=mock_notifications.go -package=notifications

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/loadermarket/internal/domain"
	"github.com/GlebRadaev/loadermarket/internal/dto"
	"github.com/GlebRadaev/loadermarket/internal/handlers/httpx"
	"github.com/GlebRadaev/loadermarket/pkg/utils"
)

type Service interface {
	List(ctx context.Context, userID, limit int) ([]domain.Notification, error)
}

type NotificationHandler struct {
	notifyService Service
}

func New(notifyService Service) *NotificationHandler {
	return &NotificationHandler{
		notifyService: notifyService,
	}
}

// GetNotifications godoc
//
//	@Summary		Get notifications
//	@Description	Latest notifications of the authenticated user, newest first
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum number of notifications (default 50)"
//	@Success		200		{array}		dto.NotificationResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/notifications [get]
func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	actor, ok := httpx.Actor(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	list, err := h.notifyService.List(r.Context(), actor.ID, httpx.LimitParam(r))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	response := make([]dto.NotificationResponseDTO, 0, len(list))
	for i := range list {
		response = append(response, dto.NewNotificationResponse(&list[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
