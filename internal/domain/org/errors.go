package org

import "errors"

var (
	ErrDirectionNotFound  = errors.New("direction not found")
	ErrServiceNotFound    = errors.New("service not found")
	ErrDepartmentNotFound = errors.New("department not found")
)
