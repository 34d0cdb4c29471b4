package employee

import (
	"time"
)

type Role string

const (
	RoleEmployee  Role = "employee"
	RoleManager   Role = "manager"
	RoleSecretary Role = "secretary"
	RoleHR        Role = "hr"
	RoleAdmin     Role = "admin"
)

// Employee is the plain personnel record. Credentials (PasswordHash) are only
// ever touched by the auth boundary; the leave engine never reads them.
type Employee struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	Role         Role

	// Days of annual leave granted per year.
	AnnualAllocationDays int

	// Org placement. Any subset may be unset; each missing link simply
	// narrows who can be resolved as an approver.
	DirectionID  *string
	ServiceID    *string
	DepartmentID *string

	// ManagerID is a back-reference to the direct manager, never ownership.
	ManagerID *string

	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e Employee) IsManager() bool {
	return e.Role == RoleManager
}

func (e Employee) IsHR() bool {
	return e.Role == RoleHR
}

func (e Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

// CanReviewRequests reports whether the employee may list and decide other
// employees' leave requests.
func (e Employee) CanReviewRequests() bool {
	return e.IsManager() || e.IsHR() || e.IsAdmin()
}
