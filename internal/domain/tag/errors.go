package tag

import "errors"

var (
	ErrTagNotFound = errors.New("tag not found")
)
