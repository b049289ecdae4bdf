package activity

import "errors"

var (
	ErrEntryNotFound = errors.New("activity log entry not found")
)
