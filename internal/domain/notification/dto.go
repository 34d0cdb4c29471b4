package notification

import "time"

type NotificationResponse struct {
	ID            string        `json:"id"`
	RequestID     string        `json:"request_id"`
	Kind          Kind          `json:"kind"`
	RecipientRole RecipientRole `json:"recipient_role"`
	Title         string        `json:"title"`
	Message       string        `json:"message"`
	IsRead        bool          `json:"is_read"`
	ReadAt        *time.Time    `json:"read_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

func ToResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:            n.ID,
		RequestID:     n.RequestID,
		Kind:          n.Kind,
		RecipientRole: n.RecipientRole,
		Title:         n.Title,
		Message:       n.Message,
		IsRead:        n.IsRead,
		ReadAt:        n.ReadAt,
		CreatedAt:     n.CreatedAt,
	}
}

type ListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
	UnreadCount   int                    `json:"unread_count"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
}

type MarkAsReadRequest struct {
	NotificationIDs []string `json:"notification_ids"`
}
