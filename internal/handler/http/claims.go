package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/ikaze-hr/leave-backend-go/internal/domain/employee"
)

// currentEmployeeID extracts the authenticated employee id from the JWT
// claims. Routes behind AuthRequired always have one.
func currentEmployeeID(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	id, ok := claims["employee_id"].(string)
	return id, ok && id != ""
}

func currentRole(r *http.Request) (employee.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	return employee.Role(roleStr), ok
}
