package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context, filter Filter) ([]Employee, error)
	// ListActiveByRole returns active employees holding the given role,
	// used by approver resolution for role-wide routing (secretary, HR).
	ListActiveByRole(ctx context.Context, role Role) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
}

type Filter struct {
	Role   *Role
	Active *bool
	Name   *string
}
