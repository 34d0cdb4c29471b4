package postgresql

import "strings"

func joinClauses(clauses []string) string {
	return strings.Join(clauses, ", ")
}
