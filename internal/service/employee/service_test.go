package employee

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ikaze-hr/leave-backend-go/internal/domain/employee"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/holiday"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/leave"
	leavesvc "github.com/ikaze-hr/leave-backend-go/internal/service/leave"
)

type fakeEmployeeRepo struct {
	byID map[string]employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{byID: make(map[string]employee.Employee)}
	for _, e := range emps {
		r.byID[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	r.byID[emp.ID] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, emp := range r.byID {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(_ context.Context, _ employee.Filter) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(r.byID))
	for _, emp := range r.byID {
		out = append(out, emp)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) ListActiveByRole(_ context.Context, _ employee.Role) ([]employee.Employee, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, req employee.UpdateEmployeeRequest) error {
	emp, ok := r.byID[req.ID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.AnnualAllocationDays != nil {
		emp.AnnualAllocationDays = *req.AnnualAllocationDays
	}
	if req.Active != nil {
		emp.Active = *req.Active
	}
	r.byID[req.ID] = emp
	return nil
}

type fakeRequestRepo struct {
	approved []leave.LeaveRequest
}

func (r *fakeRequestRepo) Create(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	return req, nil
}

func (r *fakeRequestRepo) GetByID(_ context.Context, _ string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (r *fakeRequestRepo) List(_ context.Context, _ leave.RequestFilter) ([]leave.LeaveRequest, int64, error) {
	return nil, 0, nil
}

func (r *fakeRequestRepo) ListByEmployee(_ context.Context, _ string, _ leave.RequestFilter) ([]leave.LeaveRequest, int64, error) {
	return nil, 0, nil
}

func (r *fakeRequestRepo) ListApprovedByEmployeeAndYear(_ context.Context, employeeID string, year int) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range r.approved {
		if req.EmployeeID == employeeID && req.StartDate.Year() == year {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) ListPendingOlderThan(_ context.Context, _ time.Time) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (r *fakeRequestRepo) UpdateStatusIf(_ context.Context, _ string, _ leave.RequestStatus, _ leave.StatusUpdate) error {
	return nil
}

func newTestService(requests *fakeRequestRepo, emps ...employee.Employee) (*Service, *fakeEmployeeRepo) {
	repo := newFakeEmployeeRepo(emps...)
	calc := leavesvc.NewWorkingDaysCalculator(holiday.NewMemoryCalendar(), "BI")
	tracker := leavesvc.NewBalanceTracker(requests, calc)
	return NewService(repo, tracker), repo
}

func TestEmployeeService_Create(t *testing.T) {
	svc, repo := newTestService(&fakeRequestRepo{})

	created, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		FullName:             "Jean D",
		Email:                "jean@example.com",
		Password:             "password123",
		Role:                 string(employee.RoleEmployee),
		AnnualAllocationDays: 30,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.Active)
	assert.NotEqual(t, "password123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("password123")))
	assert.Len(t, repo.byID, 1)
}

func TestEmployeeService_Create_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService(&fakeRequestRepo{}, employee.Employee{
		ID: "emp-1", Email: "jean@example.com",
	})

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		FullName:             "Jean D",
		Email:                "jean@example.com",
		Password:             "password123",
		Role:                 string(employee.RoleEmployee),
		AnnualAllocationDays: 30,
	})

	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestEmployeeService_Balance(t *testing.T) {
	requests := &fakeRequestRepo{approved: []leave.LeaveRequest{
		{
			ID: "r1", EmployeeID: "emp-1", Status: leave.StatusApproved,
			// Mon Jun 8 - Fri Jun 12 2026: 5 working days
			StartDate: time.Date(2026, time.June, 8, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, time.June, 12, 0, 0, 0, 0, time.UTC),
		},
	}}
	svc, _ := newTestService(requests, employee.Employee{
		ID: "emp-1", AnnualAllocationDays: 30, Active: true,
	})

	balance, err := svc.Balance(context.Background(), "emp-1", 2026)

	require.NoError(t, err)
	assert.Equal(t, 30, balance.Allocation)
	assert.Equal(t, 5, balance.ConsumedDays)
	assert.Equal(t, 25, balance.RemainingDays)
}

func TestEmployeeService_Balance_UnknownEmployee(t *testing.T) {
	svc, _ := newTestService(&fakeRequestRepo{})

	_, err := svc.Balance(context.Background(), "missing", 2026)

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
