package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/ikaze-hr/leave-backend-go/internal/domain/employee"
	"github.com/ikaze-hr/leave-backend-go/internal/handler/http/response"
)

func claimedRole(r *http.Request) (employee.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return employee.Role(roleStr), true
}

// RequireAdmin restricts a route to administrators.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := claimedRole(r)
		if !ok || role != employee.RoleAdmin {
			response.Forbidden(w, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireHR restricts a route to HR staff and administrators.
func RequireHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := claimedRole(r)
		if !ok || (role != employee.RoleHR && role != employee.RoleAdmin) {
			response.Forbidden(w, "HR access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireReviewer restricts a route to the roles allowed to see and decide
// other employees' requests.
func RequireReviewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := claimedRole(r)
		if !ok {
			response.Forbidden(w, "Reviewer access required")
			return
		}
		emp := employee.Employee{Role: role}
		if !emp.CanReviewRequests() {
			response.Forbidden(w, "Reviewer access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
