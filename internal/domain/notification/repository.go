package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	CreateBatch(ctx context.Context, ns []Notification) error
	ListByRecipient(ctx context.Context, recipientID string, unreadOnly bool, page, limit int) ([]Notification, int64, error)
	UnreadCount(ctx context.Context, recipientID string) (int, error)
	// MarkAsRead stamps read_at on the recipient's unread notifications
	// only; already-read rows keep their original timestamp.
	MarkAsRead(ctx context.Context, recipientID string, ids []string) error
	MarkAllAsRead(ctx context.Context, recipientID string) error
	// HasReminder reports whether a reminder was already issued for the
	// request to the recipient, so daily job runs stay idempotent.
	HasReminder(ctx context.Context, requestID, recipientID string) (bool, error)
}
