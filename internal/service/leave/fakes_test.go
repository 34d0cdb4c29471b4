package leave

import (
	"context"
	"sort"
	"time"

	"github.com/ikaze-hr/leave-backend-go/internal/domain/employee"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/leave"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/org"
)

// In-memory repository fakes shared by the service tests.

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
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeEmployeeRepo) ListActiveByRole(_ context.Context, role employee.Role) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range r.byID {
		if emp.Role == role && emp.Active {
			out = append(out, emp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, req employee.UpdateEmployeeRequest) error {
	emp, ok := r.byID[req.ID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if req.Active != nil {
		emp.Active = *req.Active
	}
	r.byID[req.ID] = emp
	return nil
}

type fakeOrgRepo struct {
	directions  map[string]org.Direction
	services    map[string]org.Service
	departments map[string]org.Department
}

func newFakeOrgRepo() *fakeOrgRepo {
	return &fakeOrgRepo{
		directions:  make(map[string]org.Direction),
		services:    make(map[string]org.Service),
		departments: make(map[string]org.Department),
	}
}

func (r *fakeOrgRepo) GetDirection(_ context.Context, id string) (org.Direction, error) {
	d, ok := r.directions[id]
	if !ok {
		return org.Direction{}, org.ErrDirectionNotFound
	}
	return d, nil
}

func (r *fakeOrgRepo) GetService(_ context.Context, id string) (org.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return org.Service{}, org.ErrServiceNotFound
	}
	return s, nil
}

func (r *fakeOrgRepo) GetDepartment(_ context.Context, id string) (org.Department, error) {
	d, ok := r.departments[id]
	if !ok {
		return org.Department{}, org.ErrDepartmentNotFound
	}
	return d, nil
}

func (r *fakeOrgRepo) ListDirections(_ context.Context) ([]org.Direction, error)   { return nil, nil }
func (r *fakeOrgRepo) ListServices(_ context.Context) ([]org.Service, error)       { return nil, nil }
func (r *fakeOrgRepo) ListDepartments(_ context.Context) ([]org.Department, error) { return nil, nil }

type fakeTypeRepo struct {
	byID map[string]leave.LeaveType
}

func newFakeTypeRepo(types ...leave.LeaveType) *fakeTypeRepo {
	r := &fakeTypeRepo{byID: make(map[string]leave.LeaveType)}
	for _, lt := range types {
		r.byID[lt.ID] = lt
	}
	return r
}

func (r *fakeTypeRepo) Create(_ context.Context, lt leave.LeaveType) (leave.LeaveType, error) {
	r.byID[lt.ID] = lt
	return lt, nil
}

func (r *fakeTypeRepo) GetByID(_ context.Context, id string) (leave.LeaveType, error) {
	lt, ok := r.byID[id]
	if !ok {
		return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
	}
	return lt, nil
}

func (r *fakeTypeRepo) ListActive(_ context.Context) ([]leave.LeaveType, error) {
	var out []leave.LeaveType
	for _, lt := range r.byID {
		if lt.Active {
			out = append(out, lt)
		}
	}
	return out, nil
}

func (r *fakeTypeRepo) List(_ context.Context) ([]leave.LeaveType, error) {
	out := make([]leave.LeaveType, 0, len(r.byID))
	for _, lt := range r.byID {
		out = append(out, lt)
	}
	return out, nil
}

func (r *fakeTypeRepo) Update(_ context.Context, req leave.UpdateLeaveTypeRequest) error {
	lt, ok := r.byID[req.ID]
	if !ok {
		return leave.ErrLeaveTypeNotFound
	}
	if req.Name != nil {
		lt.Name = *req.Name
	}
	if req.NoticeDays != nil {
		lt.NoticeDays = *req.NoticeDays
	}
	if req.Active != nil {
		lt.Active = *req.Active
	}
	r.byID[req.ID] = lt
	return nil
}

type fakeRequestRepo struct {
	byID map[string]leave.LeaveRequest
}

func newFakeRequestRepo(reqs ...leave.LeaveRequest) *fakeRequestRepo {
	r := &fakeRequestRepo{byID: make(map[string]leave.LeaveRequest)}
	for _, req := range reqs {
		r.byID[req.ID] = req
	}
	return r
}

func (r *fakeRequestRepo) Create(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.byID[req.ID] = req
	return req, nil
}

func (r *fakeRequestRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	req, ok := r.byID[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (r *fakeRequestRepo) List(_ context.Context, _ leave.RequestFilter) ([]leave.LeaveRequest, int64, error) {
	out := r.all()
	return out, int64(len(out)), nil
}

func (r *fakeRequestRepo) ListByEmployee(_ context.Context, employeeID string, _ leave.RequestFilter) ([]leave.LeaveRequest, int64, error) {
	var out []leave.LeaveRequest
	for _, req := range r.all() {
		if req.EmployeeID == employeeID {
			out = append(out, req)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeRequestRepo) ListApprovedByEmployeeAndYear(_ context.Context, employeeID string, year int) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range r.all() {
		if req.EmployeeID == employeeID && req.Status == leave.StatusApproved && req.StartDate.Year() == year {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) ListPendingOlderThan(_ context.Context, cutoff time.Time) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range r.all() {
		if req.Status == leave.StatusPending && !req.SubmittedAt.After(cutoff) {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) UpdateStatusIf(_ context.Context, id string, from leave.RequestStatus, upd leave.StatusUpdate) error {
	req, ok := r.byID[id]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	if req.Status != from {
		return leave.ErrStaleState
	}
	req.Status = upd.To
	req.ApproverID = upd.ApproverID
	req.DecidedAt = upd.DecidedAt
	req.RejectionReason = upd.RejectionReason
	r.byID[id] = req
	return nil
}

func (r *fakeRequestRepo) all() []leave.LeaveRequest {
	out := make([]leave.LeaveRequest, 0, len(r.byID))
	for _, req := range r.byID {
		out = append(out, req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type fakeHistoryRepo struct {
	entries []leave.HistoryEntry
}

func (r *fakeHistoryRepo) Append(_ context.Context, entry leave.HistoryEntry) (leave.HistoryEntry, error) {
	r.entries = append(r.entries, entry)
	return entry, nil
}

func (r *fakeHistoryRepo) ListByRequest(_ context.Context, requestID string) ([]leave.HistoryEntry, error) {
	var out []leave.HistoryEntry
	for _, e := range r.entries {
		if e.RequestID == requestID {
			out = append(out, e)
		}
	}
	return out, nil
}

// fakeNotifier records each fan-out call so tests can assert on recipients.
type fakeNotifier struct {
	newRequests   []fakeNotifyCall
	decisions     []fakeNotifyCall
	cancellations []fakeNotifyCall
}

type fakeNotifyCall struct {
	request    leave.LeaveRequest
	requester  employee.Employee
	recipients []employee.Employee
}

func (n *fakeNotifier) NotifyNewRequest(_ context.Context, req leave.LeaveRequest, requester employee.Employee, _ leave.LeaveType, approvers []employee.Employee) {
	n.newRequests = append(n.newRequests, fakeNotifyCall{request: req, requester: requester, recipients: approvers})
}

func (n *fakeNotifier) NotifyDecision(_ context.Context, req leave.LeaveRequest, requester employee.Employee, _ leave.LeaveType) {
	n.decisions = append(n.decisions, fakeNotifyCall{request: req, requester: requester})
}

func (n *fakeNotifier) NotifyCancellation(_ context.Context, req leave.LeaveRequest, requester employee.Employee, approvers []employee.Employee) {
	n.cancellations = append(n.cancellations, fakeNotifyCall{request: req, requester: requester, recipients: approvers})
}
