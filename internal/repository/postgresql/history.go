package postgresql

import (
	"context"

	"github.com/ikaze-hr/leave-backend-go/internal/domain/leave"
	"github.com/ikaze-hr/leave-backend-go/internal/pkg/database"
)

type historyRepositoryImpl struct {
	db *database.DB
}

func NewHistoryRepository(db *database.DB) leave.HistoryRepository {
	return &historyRepositoryImpl{db: db}
}

// Append inserts one audit entry. There is deliberately no update or delete
// on this table.
func (r *historyRepositoryImpl) Append(ctx context.Context, entry leave.HistoryEntry) (leave.HistoryEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_request_history (
			id, request_id, actor_id, action, from_status, to_status, comment, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		entry.ID, entry.RequestID, entry.ActorID, entry.Action,
		entry.FromStatus, entry.ToStatus, entry.Comment, entry.CreatedAt,
	).Scan(&entry.CreatedAt)

	if err != nil {
		return leave.HistoryEntry{}, err
	}
	return entry, nil
}

func (r *historyRepositoryImpl) ListByRequest(ctx context.Context, requestID string) ([]leave.HistoryEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, request_id, actor_id, action, from_status, to_status, comment, created_at
		FROM leave_request_history
		WHERE request_id = $1
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []leave.HistoryEntry
	for rows.Next() {
		var e leave.HistoryEntry
		err := rows.Scan(
			&e.ID, &e.RequestID, &e.ActorID, &e.Action,
			&e.FromStatus, &e.ToStatus, &e.Comment, &e.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
