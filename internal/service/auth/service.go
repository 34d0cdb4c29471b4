package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/ikaze-hr/leave-backend-go/internal/domain/auth"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/employee"
	"github.com/ikaze-hr/leave-backend-go/internal/pkg/jwt"
)

// Service authenticates employees and issues token pairs. Lookup failures
// and bad passwords collapse into the same error so the response does not
// reveal which accounts exist.
type Service struct {
	employees employee.EmployeeRepository
	jwt       jwt.Service
}

func NewService(employees employee.EmployeeRepository, jwtSvc jwt.Service) *Service {
	return &Service{employees: employees, jwt: jwtSvc}
}

func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	emp, err := s.employees.GetByEmail(ctx, req.Email)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err != nil {
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if !emp.Active {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	return s.issueTokens(emp)
}

// RefreshToken exchanges a valid refresh token for a new access token.
func (s *Service) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	employeeID, err := s.jwt.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	emp, err := s.employees.GetByID(ctx, employeeID)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}
	if !emp.Active {
		return auth.AccessTokenResponse{}, auth.ErrAccountInactive
	}

	accessToken, accessExp, err := s.jwt.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}

	return auth.AccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: accessExp,
	}, nil
}

func (s *Service) issueTokens(emp employee.Employee) (auth.TokenResponse, error) {
	accessToken, accessExp, err := s.jwt.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	refreshToken, refreshExp, err := s.jwt.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExp,
		Employee:              employee.ToResponse(emp),
	}, nil
}
