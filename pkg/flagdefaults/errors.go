package flagdefaults

import (
	"errors"
	"fmt"
)

// ErrUnknownFlag is returned when a lookup names a flag that is not declared.
var ErrUnknownFlag = errors.New("unknown flag")

// UnknownFlagError describes a failed lookup. It matches ErrUnknownFlag with errors.Is.
type UnknownFlagError struct {
	Group string
	Name  string
}

func (e *UnknownFlagError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("unknown flag group %q", e.Group)
	}
	return fmt.Sprintf("unknown flag %q in group %q", e.Name, e.Group)
}

func (e *UnknownFlagError) Is(target error) bool {
	return target == ErrUnknownFlag
}
