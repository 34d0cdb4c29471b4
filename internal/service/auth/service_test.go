package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ikaze-hr/leave-backend-go/internal/domain/auth"
	"github.com/ikaze-hr/leave-backend-go/internal/domain/employee"
	"github.com/ikaze-hr/leave-backend-go/internal/pkg/jwt"
)

type fakeEmployeeRepo struct {
	byID map[string]employee.Employee
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
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
	return nil, nil
}

func (r *fakeEmployeeRepo) ListActiveByRole(_ context.Context, _ employee.Role) ([]employee.Employee, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) error {
	return nil
}

func newTestService(emps ...employee.Employee) *Service {
	repo := &fakeEmployeeRepo{byID: make(map[string]employee.Employee)}
	for _, e := range emps {
		repo.byID[e.ID] = e
	}
	jwtSvc := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	return NewService(repo, jwtSvc)
}

func testEmployee() employee.Employee {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	return employee.Employee{
		ID:           "emp-1",
		FullName:     "Jean D",
		Email:        "jean@example.com",
		PasswordHash: string(hash),
		Role:         employee.RoleEmployee,
		Active:       true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := newTestService(testEmployee())

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "jean@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Greater(t, resp.AccessTokenExpiresIn, int64(0))
	assert.Equal(t, "emp-1", resp.Employee.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newTestService(testEmployee())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "jean@example.com",
		Password: "wrongpassword",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newTestService(testEmployee())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	emp := testEmployee()
	emp.Active = false
	svc := newTestService(emp)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "jean@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, auth.ErrAccountInactive)
}

func TestAuthService_RefreshToken(t *testing.T) {
	svc := newTestService(testEmployee())

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "jean@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	resp, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestAuthService_RefreshToken_AccessTokenRejected(t *testing.T) {
	svc := newTestService(testEmployee())

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "jean@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: login.AccessToken,
	})

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
