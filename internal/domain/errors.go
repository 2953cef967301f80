package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrInvalidReference is returned by the store when a write names a
	// parent row that does not exist (foreign key rejection).
	ErrInvalidReference = errors.New("invalid reference")
)

// FieldErrors carries validation failures keyed by the JSON field name.
// It is returned by the write paths and rendered as a 400 body as-is.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
