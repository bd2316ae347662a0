package repository

import "errors"

// ErrNotFound is returned by single-record lookups that match nothing.
var ErrNotFound = errors.New("record not found")
