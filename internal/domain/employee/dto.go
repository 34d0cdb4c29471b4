package employee

import (
	"github.com/ikaze-hr/leave-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName             string  `json:"full_name"`
	Email                string  `json:"email"`
	Password             string  `json:"password"`
	Role                 string  `json:"role"`
	AnnualAllocationDays int     `json:"annual_allocation_days"`
	DirectionID          *string `json:"direction_id"`
	ServiceID            *string `json:"service_id"`
	DepartmentID         *string `json:"department_id"`
	ManagerID            *string `json:"manager_id"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "Full name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Valid email is required"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "Password must be at least 8 characters"})
	}
	if !validator.IsInSlice(r.Role, []string{
		string(RoleEmployee), string(RoleManager), string(RoleSecretary), string(RoleHR), string(RoleAdmin),
	}) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "Unknown role"})
	}
	if r.AnnualAllocationDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "annual_allocation_days", Message: "Allocation cannot be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                   string  `json:"-"`
	FullName             *string `json:"full_name"`
	Role                 *string `json:"role"`
	AnnualAllocationDays *int    `json:"annual_allocation_days"`
	DirectionID          *string `json:"direction_id"`
	ServiceID            *string `json:"service_id"`
	DepartmentID         *string `json:"department_id"`
	ManagerID            *string `json:"manager_id"`
	Active               *bool   `json:"active"`
}

type EmployeeResponse struct {
	ID                   string  `json:"id"`
	FullName             string  `json:"full_name"`
	Email                string  `json:"email"`
	Role                 Role    `json:"role"`
	AnnualAllocationDays int     `json:"annual_allocation_days"`
	DirectionID          *string `json:"direction_id,omitempty"`
	ServiceID            *string `json:"service_id,omitempty"`
	DepartmentID         *string `json:"department_id,omitempty"`
	ManagerID            *string `json:"manager_id,omitempty"`
	Active               bool    `json:"active"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                   e.ID,
		FullName:             e.FullName,
		Email:                e.Email,
		Role:                 e.Role,
		AnnualAllocationDays: e.AnnualAllocationDays,
		DirectionID:          e.DirectionID,
		ServiceID:            e.ServiceID,
		DepartmentID:         e.DepartmentID,
		ManagerID:            e.ManagerID,
		Active:               e.Active,
	}
}

// BalanceResponse is the per-year leave balance view.
type BalanceResponse struct {
	EmployeeID    string `json:"employee_id"`
	Year          int    `json:"year"`
	Allocation    int    `json:"allocation"`
	ConsumedDays  int    `json:"consumed_days"`
	RemainingDays int    `json:"remaining_days"`
}
