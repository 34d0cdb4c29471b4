package postgresql

import (
	"context"

	"github.com/ikaze-hr/leave-backend-go/internal/domain/notification"
	"github.com/ikaze-hr/leave-backend-go/internal/pkg/database"
)

type notificationRepositoryImpl struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepositoryImpl{db: db}
}

func (r *notificationRepositoryImpl) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notifications (
			id, request_id, recipient_id, kind, recipient_role,
			title, message, is_read, created_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, FALSE, $8
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		n.ID, n.RequestID, n.RecipientID, n.Kind, n.RecipientRole,
		n.Title, n.Message, n.CreatedAt,
	).Scan(&n.CreatedAt)

	if err != nil {
		return notification.Notification{}, err
	}
	return n, nil
}

func (r *notificationRepositoryImpl) CreateBatch(ctx context.Context, ns []notification.Notification) error {
	if len(ns) == 0 {
		return nil
	}

	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		for _, n := range ns {
			if _, err := r.Create(txCtx, n); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *notificationRepositoryImpl) ListByRecipient(ctx context.Context, recipientID string, unreadOnly bool, page, limit int) ([]notification.Notification, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE recipient_id = $1"
	if unreadOnly {
		whereClause += " AND NOT is_read"
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := `
		SELECT id, request_id, recipient_id, kind, recipient_role,
			   title, message, is_read, read_at, created_at
		FROM notifications ` + whereClause + `
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, recipientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		var n notification.Notification
		err := rows.Scan(
			&n.ID, &n.RequestID, &n.RecipientID, &n.Kind, &n.RecipientRole,
			&n.Title, &n.Message, &n.IsRead, &n.ReadAt, &n.CreatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM notifications ` + whereClause
	if err := q.QueryRow(ctx, countQuery, recipientID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

func (r *notificationRepositoryImpl) UnreadCount(ctx context.Context, recipientID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND NOT is_read`,
		recipientID,
	).Scan(&count)
	return count, err
}

// MarkAsRead only touches unread rows, so read_at is written at most once.
func (r *notificationRepositoryImpl) MarkAsRead(ctx context.Context, recipientID string, ids []string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE notifications
		SET is_read = TRUE, read_at = NOW()
		WHERE recipient_id = $1 AND id = ANY($2) AND NOT is_read
	`, recipientID, ids)
	return err
}

func (r *notificationRepositoryImpl) MarkAllAsRead(ctx context.Context, recipientID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE notifications
		SET is_read = TRUE, read_at = NOW()
		WHERE recipient_id = $1 AND NOT is_read
	`, recipientID)
	return err
}

func (r *notificationRepositoryImpl) HasReminder(ctx context.Context, requestID, recipientID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM notifications
			WHERE request_id = $1 AND recipient_id = $2 AND kind = $3
		)
	`, requestID, recipientID, notification.KindApprovalReminder).Scan(&exists)
	return exists, err
}
