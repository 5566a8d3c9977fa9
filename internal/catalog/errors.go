package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidItem matches any *InvalidItemError via errors.Is.
	ErrInvalidItem = errors.New("invalid catalog item")

	// ErrInvalidFilter matches any *InvalidFilterError via errors.Is.
	ErrInvalidFilter = errors.New("invalid filter")
)

// InvalidItemError reports a shirt whose size or color is not a member of
// its enumeration.
type InvalidItemError struct {
	Index   int
	ShirtID string
	Field   string
	Value   string
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("invalid catalog item %d (id %q): unknown %s %q", e.Index, e.ShirtID, e.Field, e.Value)
}

func (e *InvalidItemError) Is(target error) bool { return target == ErrInvalidItem }

// InvalidFilterError reports a filter value that is not a member of its
// enumeration.
type InvalidFilterError struct {
	Field string
	Value string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid filter: unknown %s %q", e.Field, e.Value)
}

func (e *InvalidFilterError) Is(target error) bool { return target == ErrInvalidFilter }
