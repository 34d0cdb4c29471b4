package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/ikaze-hr/leave-backend-go/internal/domain/org"
	"github.com/ikaze-hr/leave-backend-go/internal/pkg/database"
)

type orgRepositoryImpl struct {
	db *database.DB
}

func NewOrgRepository(db *database.DB) org.OrgRepository {
	return &orgRepositoryImpl{db: db}
}

func (r *orgRepositoryImpl) GetDirection(ctx context.Context, id string) (org.Direction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, director_id, created_at, updated_at
		FROM directions WHERE id = $1
	`

	var d org.Direction
	err := q.QueryRow(ctx, query, id).Scan(&d.ID, &d.Name, &d.DirectorID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return org.Direction{}, org.ErrDirectionNotFound
		}
		return org.Direction{}, err
	}
	return d, nil
}

func (r *orgRepositoryImpl) GetService(ctx context.Context, id string) (org.Service, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, direction_id, chief_id, created_at, updated_at
		FROM services WHERE id = $1
	`

	var s org.Service
	err := q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.DirectionID, &s.ChiefID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return org.Service{}, org.ErrServiceNotFound
		}
		return org.Service{}, err
	}
	return s, nil
}

func (r *orgRepositoryImpl) GetDepartment(ctx context.Context, id string) (org.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, service_id, chief_id, created_at, updated_at
		FROM departments WHERE id = $1
	`

	var d org.Department
	err := q.QueryRow(ctx, query, id).Scan(&d.ID, &d.Name, &d.ServiceID, &d.ChiefID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return org.Department{}, org.ErrDepartmentNotFound
		}
		return org.Department{}, err
	}
	return d, nil
}

func (r *orgRepositoryImpl) ListDirections(ctx context.Context) ([]org.Direction, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, director_id, created_at, updated_at
		FROM directions ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var directions []org.Direction
	for rows.Next() {
		var d org.Direction
		if err := rows.Scan(&d.ID, &d.Name, &d.DirectorID, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		directions = append(directions, d)
	}
	return directions, rows.Err()
}

func (r *orgRepositoryImpl) ListServices(ctx context.Context) ([]org.Service, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, direction_id, chief_id, created_at, updated_at
		FROM services ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []org.Service
	for rows.Next() {
		var s org.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.DirectionID, &s.ChiefID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *orgRepositoryImpl) ListDepartments(ctx context.Context) ([]org.Department, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, service_id, chief_id, created_at, updated_at
		FROM departments ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []org.Department
	for rows.Next() {
		var d org.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.ServiceID, &d.ChiefID, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}
