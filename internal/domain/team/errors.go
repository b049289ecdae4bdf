package team

import "errors"

var (
	ErrAlreadyAssigned    = errors.New("employee is already assigned to this manager")
	ErrAssignmentNotFound = errors.New("assignment not found")
)
