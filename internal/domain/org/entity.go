package org

import "time"

// Direction is the top organizational unit. Services hang off directions and
// departments off services, but every link is optional: a freshly created
// unit may not have its chief appointed yet, and an employee may be placed at
// any level.

type Direction struct {
	ID         string
	Name       string
	DirectorID *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Service struct {
	ID          string
	Name        string
	DirectionID *string
	ChiefID     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Department struct {
	ID        string
	Name      string
	ServiceID *string
	ChiefID   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
