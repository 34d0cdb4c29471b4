package org

import "context"

type OrgRepository interface {
	GetDirection(ctx context.Context, id string) (Direction, error)
	GetService(ctx context.Context, id string) (Service, error)
	GetDepartment(ctx context.Context, id string) (Department, error)
	ListDirections(ctx context.Context) ([]Direction, error)
	ListServices(ctx context.Context) ([]Service, error)
	ListDepartments(ctx context.Context) ([]Department, error)
}
