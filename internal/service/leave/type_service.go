package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ikaze-hr/leave-backend-go/internal/domain/leave"
)

// TypeService manages the leave-type catalog. Types are soft-retired via the
// Active flag so historical requests keep a valid reference.
type TypeService struct {
	types leave.LeaveTypeRepository
	now   func() time.Time
}

func NewTypeService(types leave.LeaveTypeRepository) *TypeService {
	return &TypeService{types: types, now: time.Now}
}

func (s *TypeService) Create(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveType, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveType{}, err
	}

	now := s.now()
	lt := leave.LeaveType{
		ID:                    uuid.New().String(),
		Kind:                  leave.LeaveKind(req.Kind),
		Name:                  req.Name,
		Description:           req.Description,
		RequiresJustification: req.RequiresJustification,
		MaxDurationDays:       req.MaxDurationDays,
		ApproverRole:          leave.ApproverRole(req.ApproverRole),
		NoticeDays:            req.NoticeDays,
		Active:                true,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	created, err := s.types.Create(ctx, lt)
	if err != nil {
		return leave.LeaveType{}, fmt.Errorf("failed to create leave type: %w", err)
	}
	return created, nil
}

func (s *TypeService) Get(ctx context.Context, id string) (leave.LeaveType, error) {
	return s.types.GetByID(ctx, id)
}

// List returns the whole catalog when includeInactive is set, otherwise only
// the types open for new requests.
func (s *TypeService) List(ctx context.Context, includeInactive bool) ([]leave.LeaveType, error) {
	if includeInactive {
		return s.types.List(ctx)
	}
	return s.types.ListActive(ctx)
}

func (s *TypeService) Update(ctx context.Context, req leave.UpdateLeaveTypeRequest) (leave.LeaveType, error) {
	if _, err := s.types.GetByID(ctx, req.ID); err != nil {
		return leave.LeaveType{}, err
	}

	if req.ApproverRole != nil {
		valid := false
		for _, role := range leave.AllApproverRoles() {
			if *req.ApproverRole == string(role) {
				valid = true
				break
			}
		}
		if !valid {
			return leave.LeaveType{}, fmt.Errorf("unknown approver role %q", *req.ApproverRole)
		}
	}

	if err := s.types.Update(ctx, req); err != nil {
		return leave.LeaveType{}, fmt.Errorf("failed to update leave type: %w", err)
	}
	return s.types.GetByID(ctx, req.ID)
}
