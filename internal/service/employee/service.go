package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ikaze-hr/leave-backend-go/internal/domain/employee"
	leavesvc "github.com/ikaze-hr/leave-backend-go/internal/service/leave"
)

// Service manages personnel records and exposes the per-year balance view.
type Service struct {
	employees employee.EmployeeRepository
	balance   *leavesvc.BalanceTracker
	now       func() time.Time
}

func NewService(employees employee.EmployeeRepository, balance *leavesvc.BalanceTracker) *Service {
	return &Service{employees: employees, balance: balance, now: time.Now}
}

func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	_, err := s.employees.GetByEmail(ctx, req.Email)
	if err == nil {
		return employee.Employee{}, employee.ErrEmailExists
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	emp := employee.Employee{
		ID:                   uuid.New().String(),
		FullName:             req.FullName,
		Email:                req.Email,
		PasswordHash:         string(hash),
		Role:                 employee.Role(req.Role),
		AnnualAllocationDays: req.AnnualAllocationDays,
		DirectionID:          req.DirectionID,
		ServiceID:            req.ServiceID,
		DepartmentID:         req.DepartmentID,
		ManagerID:            req.ManagerID,
		Active:               true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	created, err := s.employees.Create(ctx, emp)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, id string) (employee.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, error) {
	return s.employees.List(ctx, filter)
}

func (s *Service) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if _, err := s.employees.GetByID(ctx, req.ID); err != nil {
		return employee.Employee{}, err
	}
	if err := s.employees.Update(ctx, req); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return s.employees.GetByID(ctx, req.ID)
}

// Balance returns the employee's annual leave position for the given year.
// Consumption is recomputed from approved requests on every call.
func (s *Service) Balance(ctx context.Context, employeeID string, year int) (employee.BalanceResponse, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return employee.BalanceResponse{}, err
	}

	consumed, err := s.balance.ConsumedDays(ctx, emp, year)
	if err != nil {
		return employee.BalanceResponse{}, err
	}

	return employee.BalanceResponse{
		EmployeeID:    emp.ID,
		Year:          year,
		Allocation:    emp.AnnualAllocationDays,
		ConsumedDays:  consumed,
		RemainingDays: emp.AnnualAllocationDays - consumed,
	}, nil
}
