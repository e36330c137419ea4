package notification

import (
	"time"

	"github.com/volatiletech/null/v8"
)

type Notification struct {
	ID        string      `json:"notificationId"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Type      null.String `json:"notificationType,omitempty"`
	Read      bool        `json:"readStatus"`
	CreatedAt time.Time   `json:"createdAt,omitempty"`
}

type NewNotification struct {
	Title   string      `json:"title" validate:"required"`
	Content string      `json:"content" validate:"required"`
	Type    null.String `json:"notificationType,omitempty"`
}

type UpdateNotification struct {
	Title   string      `json:"title,omitempty"`
	Content string      `json:"content,omitempty"`
	Type    null.String `json:"notificationType,omitempty"`
}
