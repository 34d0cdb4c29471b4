package http

import (
	"net/http"

	"github.com/ikaze-hr/leave-backend-go/internal/domain/org"
	"github.com/ikaze-hr/leave-backend-go/internal/handler/http/response"
)

type OrgHandler interface {
	ListDirections(w http.ResponseWriter, r *http.Request)
	ListServices(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
}

type OrgHandlerImpl struct {
	orgs org.OrgRepository
}

func NewOrgHandler(orgs org.OrgRepository) OrgHandler {
	return &OrgHandlerImpl{orgs: orgs}
}

// ListDirections implements OrgHandler.
func (h *OrgHandlerImpl) ListDirections(w http.ResponseWriter, r *http.Request) {
	directions, err := h.orgs.ListDirections(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]org.DirectionResponse, 0, len(directions))
	for _, d := range directions {
		responses = append(responses, org.ToDirectionResponse(d))
	}
	response.Success(w, responses)
}

// ListServices implements OrgHandler.
func (h *OrgHandlerImpl) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.orgs.ListServices(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]org.ServiceResponse, 0, len(services))
	for _, s := range services {
		responses = append(responses, org.ToServiceResponse(s))
	}
	response.Success(w, responses)
}

// ListDepartments implements OrgHandler.
func (h *OrgHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.orgs.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]org.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, org.ToDepartmentResponse(d))
	}
	response.Success(w, responses)
}
