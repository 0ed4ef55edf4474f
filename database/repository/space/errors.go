package spaceRepo

import "errors"

// ErrNotFound is returned when no space matches the query scope.
var ErrNotFound = errors.New("space not found")
