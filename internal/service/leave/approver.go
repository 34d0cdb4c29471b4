package leave

import (
	"context"
	"errors"
	"fmt"

	"github.com/ikaze-hr/leave-backend-go/internal/domain/employee"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/leave"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/org"
)

// ApproverResolver maps a requester and a leave type's approver role to the
// concrete set of employees allowed to decide the request. A missing org
// link (no manager, no chief appointed) yields an empty set, never an error:
// routing gaps are data problems for the caller to surface, not failures.
type ApproverResolver struct {
	employees employee.EmployeeRepository
	orgs      org.OrgRepository
}

func NewApproverResolver(employees employee.EmployeeRepository, orgs org.OrgRepository) *ApproverResolver {
	return &ApproverResolver{employees: employees, orgs: orgs}
}

// Resolve returns the distinct approvers for the requester under the given
// role. The requester is never their own approver.
func (r *ApproverResolver) Resolve(ctx context.Context, requester employee.Employee, role leave.ApproverRole) ([]employee.Employee, error) {
	var (
		approvers []employee.Employee
		err       error
	)

	switch role {
	case leave.ApproverManager:
		approvers, err = r.resolveByLink(ctx, requester.ManagerID)
	case leave.ApproverSecretary:
		approvers, err = r.employees.ListActiveByRole(ctx, employee.RoleSecretary)
	case leave.ApproverHR:
		approvers, err = r.employees.ListActiveByRole(ctx, employee.RoleHR)
	case leave.ApproverDeptChief:
		approvers, err = r.resolveDeptChief(ctx, requester)
	case leave.ApproverServiceChief:
		approvers, err = r.resolveServiceChief(ctx, requester)
	case leave.ApproverDirector:
		approvers, err = r.resolveDirector(ctx, requester)
	default:
		return nil, fmt.Errorf("unknown approver role %q", role)
	}
	if err != nil {
		return nil, err
	}

	return dedupeApprovers(approvers, requester.ID), nil
}

func (r *ApproverResolver) resolveDeptChief(ctx context.Context, requester employee.Employee) ([]employee.Employee, error) {
	if requester.DepartmentID == nil {
		return nil, nil
	}
	dept, err := r.orgs.GetDepartment(ctx, *requester.DepartmentID)
	if errors.Is(err, org.ErrDepartmentNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return r.resolveByLink(ctx, dept.ChiefID)
}

func (r *ApproverResolver) resolveServiceChief(ctx context.Context, requester employee.Employee) ([]employee.Employee, error) {
	serviceID := requester.ServiceID

	// An employee placed only at department level still routes to the chief
	// of the service their department belongs to.
	if serviceID == nil && requester.DepartmentID != nil {
		dept, err := r.orgs.GetDepartment(ctx, *requester.DepartmentID)
		if errors.Is(err, org.ErrDepartmentNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get department: %w", err)
		}
		serviceID = dept.ServiceID
	}
	if serviceID == nil {
		return nil, nil
	}

	svc, err := r.orgs.GetService(ctx, *serviceID)
	if errors.Is(err, org.ErrServiceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return r.resolveByLink(ctx, svc.ChiefID)
}

func (r *ApproverResolver) resolveDirector(ctx context.Context, requester employee.Employee) ([]employee.Employee, error) {
	directionID := requester.DirectionID

	if directionID == nil && requester.ServiceID != nil {
		svc, err := r.orgs.GetService(ctx, *requester.ServiceID)
		if errors.Is(err, org.ErrServiceNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get service: %w", err)
		}
		directionID = svc.DirectionID
	}
	if directionID == nil {
		return nil, nil
	}

	dir, err := r.orgs.GetDirection(ctx, *directionID)
	if errors.Is(err, org.ErrDirectionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get direction: %w", err)
	}
	return r.resolveByLink(ctx, dir.DirectorID)
}

// resolveByLink follows an optional employee reference. A dangling reference
// (link set but record gone or inactive) resolves to the empty set.
func (r *ApproverResolver) resolveByLink(ctx context.Context, id *string) ([]employee.Employee, error) {
	if id == nil {
		return nil, nil
	}
	emp, err := r.employees.GetByID(ctx, *id)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	if !emp.Active {
		return nil, nil
	}
	return []employee.Employee{emp}, nil
}

func dedupeApprovers(approvers []employee.Employee, requesterID string) []employee.Employee {
	seen := make(map[string]struct{}, len(approvers))
	result := make([]employee.Employee, 0, len(approvers))
	for _, emp := range approvers {
		if emp.ID == requesterID {
			continue
		}
		if _, ok := seen[emp.ID]; ok {
			continue
		}
		seen[emp.ID] = struct{}{}
		result = append(result, emp)
	}
	return result
}
