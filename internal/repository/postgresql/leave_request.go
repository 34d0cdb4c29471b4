package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ikaze-hr/leave-backend-go/internal/domain/leave"
	"github.com/ikaze-hr/leave-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.leave_type_id,
	lr.start_date, lr.end_date, lr.working_days,
	lr.reason, lr.attachment_url, lr.priority,
	lr.status,
	lr.approver_id, lr.decided_at, lr.rejection_reason,
	lr.replacement_id, lr.replacement_instructions,
	lr.submitted_at, lr.created_at, lr.updated_at,
	lt.name AS leave_type_name,
	e.full_name AS employee_name
`

const leaveRequestJoins = `
	FROM leave_requests lr
	JOIN leave_types lt ON lr.leave_type_id = lt.id
	JOIN employees e ON lr.employee_id = e.id
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.LeaveTypeID,
		&req.StartDate, &req.EndDate, &req.WorkingDays,
		&req.Reason, &req.AttachmentURL, &req.Priority,
		&req.Status,
		&req.ApproverID, &req.DecidedAt, &req.RejectionReason,
		&req.ReplacementID, &req.ReplacementInstructions,
		&req.SubmittedAt, &req.CreatedAt, &req.UpdatedAt,
		&req.LeaveTypeName,
		&req.EmployeeName,
	)
	return req, err
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type_id,
			start_date, end_date, working_days,
			reason, attachment_url, priority,
			status,
			replacement_id, replacement_instructions,
			submitted_at, created_at, updated_at
		) VALUES (
			$1, $2, $3,
			$4, $5, $6,
			$7, $8, $9,
			$10,
			$11, $12,
			$13, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.ID, request.EmployeeID, request.LeaveTypeID,
		request.StartDate, request.EndDate, request.WorkingDays,
		request.Reason, request.AttachmentURL, request.Priority,
		request.Status,
		request.ReplacementID, request.ReplacementInstructions,
		request.SubmittedAt,
	).Scan(&request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins + ` WHERE lr.id = $1`

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return req, nil
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.RequestFilter) ([]leave.LeaveRequest, int64, error) {
	whereClause, args := buildRequestWhere(filter, "WHERE 1=1", nil)
	return r.listFiltered(ctx, whereClause, args, filter)
}

func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, filter leave.RequestFilter) ([]leave.LeaveRequest, int64, error) {
	whereClause, args := buildRequestWhere(filter, "WHERE lr.employee_id = $1", []interface{}{employeeID})
	return r.listFiltered(ctx, whereClause, args, filter)
}

// buildRequestWhere appends the optional filter conditions to a base WHERE
// clause, continuing the placeholder numbering from the base args.
func buildRequestWhere(filter leave.RequestFilter, base string, args []interface{}) (string, []interface{}) {
	whereClause := base
	argIndex := len(args) + 1

	add := func(condition string, value interface{}) {
		whereClause += fmt.Sprintf(" AND "+condition, argIndex)
		args = append(args, value)
		argIndex++
	}

	if filter.EmployeeID != nil {
		add("lr.employee_id = $%d", *filter.EmployeeID)
	}
	if filter.EmployeeName != nil {
		add("e.full_name ILIKE $%d", "%"+*filter.EmployeeName+"%")
	}
	if filter.LeaveTypeID != nil {
		add("lr.leave_type_id = $%d", *filter.LeaveTypeID)
	}
	if filter.Status != nil {
		add("lr.status = $%d", *filter.Status)
	}
	if filter.StartDate != nil {
		add("lr.start_date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		add("lr.end_date <= $%d", *filter.EndDate)
	}

	return whereClause, args
}

func (r *leaveRequestRepositoryImpl) listFiltered(ctx context.Context, whereClause string, args []interface{}, filter leave.RequestFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	sortColumn := map[string]string{
		"submitted_at": "lr.submitted_at",
		"start_date":   "lr.start_date",
		"status":       "lr.status",
	}[filter.SortBy]
	if sortColumn == "" {
		sortColumn = "lr.submitted_at"
	}
	sortOrder := "DESC"
	if filter.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`SELECT %s %s %s ORDER BY %s %s LIMIT %d OFFSET %d`,
		leaveRequestColumns, leaveRequestJoins, whereClause, sortColumn, sortOrder, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery := `SELECT COUNT(*)` + leaveRequestJoins + whereClause
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *leaveRequestRepositoryImpl) ListApprovedByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins + `
		WHERE lr.employee_id = $1
		  AND lr.status = $2
		  AND EXTRACT(YEAR FROM lr.start_date) = $3
		ORDER BY lr.start_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, leave.StatusApproved, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *leaveRequestRepositoryImpl) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins + `
		WHERE lr.status = $1 AND lr.submitted_at <= $2
		ORDER BY lr.submitted_at ASC
	`

	rows, err := q.Query(ctx, query, leave.StatusPending, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// UpdateStatusIf is the compare-and-set behind every state transition. The
// status predicate in the WHERE clause means exactly one of two racing
// decisions can see RowsAffected() == 1.
func (r *leaveRequestRepositoryImpl) UpdateStatusIf(ctx context.Context, id string, from leave.RequestStatus, upd leave.StatusUpdate) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1,
			approver_id = $2,
			decided_at = $3,
			rejection_reason = $4,
			updated_at = NOW()
		WHERE id = $5 AND status = $6
	`

	commandTag, err := q.Exec(ctx, query,
		upd.To, upd.ApproverID, upd.DecidedAt, upd.RejectionReason,
		id, from,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		// Either the id is unknown or a concurrent transition won.
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM leave_requests WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return leave.ErrLeaveRequestNotFound
		}
		return leave.ErrStaleState
	}
	return nil
}
