package dto

import (
	"time"

	"github.com/GlebRadaev/loadermarket/internal/domain"
)

type NotificationResponseDTO struct {
	ID        int       `json:"id" example:"11"`
	Type      string    `json:"type" example:"order_cancelled"`
	Title     string    `json:"title" example:"Order expired"`
	Message   string    `json:"message"`
	Link      string    `json:"link,omitempty" example:"/orders/7"`
	CreatedAt time.Time `json:"created_at"`
}

func NewNotificationResponse(n *domain.Notification) NotificationResponseDTO {
	return NotificationResponseDTO{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		CreatedAt: n.CreatedAt,
	}
}
