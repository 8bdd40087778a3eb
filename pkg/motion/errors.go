package motion

import (
	"errors"
	"fmt"
)

// Selection errors.
var (
	ErrGroupNotFound   = errors.New("motion group not found")
	ErrIndexOutOfRange = errors.New("motion index out of range")
	ErrEmptyCatalog    = errors.New("motion catalog is empty")
	ErrEmptyGroup      = errors.New("motion group is empty")
	ErrModelNotReady   = errors.New("model is not ready for animation")
)

// SelectionError describes a failed selection with the identifiers involved.
// Count is the size of Group when known, otherwise -1.
type SelectionError struct {
	Err   error
	Group string
	Index int
	Count int
}

func (e *SelectionError) Error() string {
	switch e.Err {
	case ErrGroupNotFound:
		return fmt.Sprintf("%v: %s", e.Err, e.Group)
	case ErrIndexOutOfRange:
		if e.Count <= 0 {
			return fmt.Sprintf("%v: %s[%d] (group has no motions)", e.Err, e.Group, e.Index)
		}
		return fmt.Sprintf("%v: %s[%d] (valid 0-%d)", e.Err, e.Group, e.Index, e.Count-1)
	case ErrEmptyGroup:
		return fmt.Sprintf("%v: %s", e.Err, e.Group)
	}
	return e.Err.Error()
}

func (e *SelectionError) Unwrap() error {
	return e.Err
}

func groupNotFound(group string) error {
	return &SelectionError{Err: ErrGroupNotFound, Group: group, Index: -1, Count: -1}
}

func indexOutOfRange(group string, index, count int) error {
	return &SelectionError{Err: ErrIndexOutOfRange, Group: group, Index: index, Count: count}
}

func emptyGroup(group string) error {
	return &SelectionError{Err: ErrEmptyGroup, Group: group, Index: -1, Count: 0}
}
