package definition

import (
	"errors"
	"fmt"
	"strings"

	"github.com/danmuck/qmigen/internal/version"
)

var (
	ErrUndeclaredVersion      = version.ErrUndeclared
	ErrUndefinedReference     = errors.New("definition: undefined common reference")
	ErrStructTLV              = errors.New("definition: TLVs cannot be structs, use sequence")
	ErrInvalidDefinition      = errors.New("definition: invalid definition")
	ErrDuplicateID            = errors.New("definition: duplicate id")
	ErrMandatoryPrerequisites = errors.New("definition: mandatory TLVs cannot have prerequisites")
)

// ValidationError locates a failure inside the definition tree.
type ValidationError struct {
	Container string
	Field     string
	Reason    string
	Err       error
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("definition")
	if e.Container != "" {
		b.WriteString(": " + e.Container)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ": TLV '%s'", e.Field)
	}
	if e.Reason != "" {
		b.WriteString(": " + e.Reason)
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(container, field string, err error, format string, args ...any) error {
	return &ValidationError{
		Container: container,
		Field:     field,
		Reason:    fmt.Sprintf(format, args...),
		Err:       err,
	}
}
