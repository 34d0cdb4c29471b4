package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ikaze-hr/leave-backend-go/internal/domain/employee"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/leave"
	"github.com/ikaze-hr/leave-backend-go/internal/handler/http/response"
	leavesvc "github.com/ikaze-hr/leave-backend-go/internal/service/leave"
)

type LeaveHandler interface {
	CreateType(w http.ResponseWriter, r *http.Request)
	UpdateType(w http.ResponseWriter, r *http.Request)
	ListTypes(w http.ResponseWriter, r *http.Request)

	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	GetRequestHistory(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
	CancelRequest(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	requestService  *leavesvc.RequestService
	typeService     *leavesvc.TypeService
	employeeService employeeGetter
}

// employeeGetter is the slice of the employee service the leave handler
// needs to load the acting employee.
type employeeGetter interface {
	Get(ctx context.Context, id string) (employee.Employee, error)
}

func NewLeaveHandler(requestService *leavesvc.RequestService, typeService *leavesvc.TypeService, employeeService employeeGetter) LeaveHandler {
	return &LeaveHandlerImpl{
		requestService:  requestService,
		typeService:     typeService,
		employeeService: employeeService,
	}
}

// CreateType implements LeaveHandler.
func (h *LeaveHandlerImpl) CreateType(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.typeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave type created successfully", leave.ToTypeResponse(created))
}

// UpdateType implements LeaveHandler.
func (h *LeaveHandlerImpl) UpdateType(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateLeaveTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.typeService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave type updated successfully", leave.ToTypeResponse(updated))
}

// ListTypes implements LeaveHandler.
func (h *LeaveHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("include_inactive") == "true"

	types, err := h.typeService.List(r.Context(), includeInactive)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, lt := range types {
		responses = append(responses, leave.ToTypeResponse(lt))
	}
	response.Success(w, responses)
}

// CreateRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := currentEmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// The requester comes from the token, never the body.
	req.EmployeeID = employeeID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.requestService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", leave.ToRequestResponse(created))
}

// GetMyRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := currentEmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	filter := parseRequestFilter(r)
	requests, total, err := h.requestService.ListEmployeeRequests(r.Context(), employeeID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeRequestPage(w, requests, total, filter)
}

// ListRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	filter := parseRequestFilter(r)

	requests, total, err := h.requestService.ListRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeRequestPage(w, requests, total, filter)
}

// GetRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	req, ok := h.loadVisibleRequest(w, r)
	if !ok {
		return
	}
	response.Success(w, leave.ToRequestResponse(req))
}

// GetRequestHistory implements LeaveHandler.
func (h *LeaveHandlerImpl) GetRequestHistory(w http.ResponseWriter, r *http.Request) {
	req, ok := h.loadVisibleRequest(w, r)
	if !ok {
		return
	}

	entries, err := h.requestService.GetHistory(r.Context(), req.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]leave.HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, leave.ToHistoryResponse(e))
	}
	response.Success(w, responses)
}

// loadVisibleRequest fetches the request and enforces visibility: the
// requester, reviewer roles, and the request's eligible approvers may see
// it. Everyone else gets a 404 rather than confirmation that it exists.
func (h *LeaveHandlerImpl) loadVisibleRequest(w http.ResponseWriter, r *http.Request) (leave.LeaveRequest, bool) {
	employeeID, ok := currentEmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return leave.LeaveRequest{}, false
	}

	req, err := h.requestService.GetRequest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return leave.LeaveRequest{}, false
	}

	if req.EmployeeID != employeeID {
		role, _ := currentRole(r)
		viewer := employee.Employee{Role: role}
		if !viewer.CanReviewRequests() {
			actor, err := h.employeeService.Get(r.Context(), employeeID)
			if err != nil {
				response.HandleError(w, err)
				return leave.LeaveRequest{}, false
			}
			eligible, err := h.requestService.IsEligibleApprover(r.Context(), req, actor)
			if err != nil {
				response.HandleError(w, err)
				return leave.LeaveRequest{}, false
			}
			if !eligible {
				response.NotFound(w, "Leave request not found")
				return leave.LeaveRequest{}, false
			}
		}
	}

	return req, true
}

// ApproveRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.loadActor(w, r)
	if !ok {
		return
	}

	approved, err := h.requestService.Approve(r.Context(), chi.URLParam(r, "id"), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved successfully", leave.ToRequestResponse(approved))
}

// RejectRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.loadActor(w, r)
	if !ok {
		return
	}

	var req leave.RejectRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RejectRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RequestID = chi.URLParam(r, "id")

	rejected, err := h.requestService.Reject(r.Context(), req, actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", leave.ToRequestResponse(rejected))
}

// CancelRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) CancelRequest(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := currentEmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	cancelled, err := h.requestService.Cancel(r.Context(), chi.URLParam(r, "id"), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request cancelled", leave.ToRequestResponse(cancelled))
}

func (h *LeaveHandlerImpl) loadActor(w http.ResponseWriter, r *http.Request) (employee.Employee, bool) {
	employeeID, ok := currentEmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return employee.Employee{}, false
	}

	actor, err := h.employeeService.Get(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return employee.Employee{}, false
	}
	return actor, true
}

func parseRequestFilter(r *http.Request) leave.RequestFilter {
	q := r.URL.Query()
	filter := leave.RequestFilter{
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}

	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := q.Get("leave_type_id"); v != "" {
		filter.LeaveTypeID = &v
	}
	if v := q.Get("employee_name"); v != "" {
		filter.EmployeeName = &v
	}
	if v := q.Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := q.Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		filter.Page = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		filter.Limit = v
	}

	return filter
}

func writeRequestPage(w http.ResponseWriter, requests []leave.LeaveRequest, total int64, filter leave.RequestFilter) {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.ToRequestResponse(req))
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	response.SuccessWithMeta(w, responses, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	})
}
