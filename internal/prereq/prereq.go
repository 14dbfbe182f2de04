// Package prereq resolves TLV prerequisites and renders them as the guard
// evaluated before an optional TLV is written.
package prereq

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUndefined        = errors.New("prereq: undefined common prerequisite")
	ErrDuplicate        = errors.New("prereq: duplicate common prerequisite")
	ErrInvalidOperator  = errors.New("prereq: invalid operator")
	ErrInvalidValue     = errors.New("prereq: invalid value")
	ErrMissingField     = errors.New("prereq: missing field")
	ErrForwardReference = errors.New("prereq: reference to a field not declared earlier")
	ErrNotInteger       = errors.New("prereq: referenced field is not an integer")
	ErrValueRange       = errors.New("prereq: value out of range for field")
)

// Spec is a prerequisite as written in a definition file. A Spec carrying only
// CommonRef points into the shared library.
type Spec struct {
	CommonRef string `yaml:"common-ref,omitempty" json:"common-ref,omitempty"`
	Name      string `yaml:"name,omitempty" json:"name,omitempty"`
	Type      string `yaml:"type,omitempty" json:"type,omitempty"`
	Field     string `yaml:"field,omitempty" json:"field,omitempty"`
	Operation string `yaml:"operation,omitempty" json:"operation,omitempty"`
	Value     string `yaml:"value,omitempty" json:"value,omitempty"`
}

func (s Spec) isReference() bool {
	return s.CommonRef != "" && s.Field == ""
}

// Library holds the shared prerequisites keyed by common-ref.
type Library struct {
	specs map[string]Spec
}

func NewLibrary() *Library {
	return &Library{specs: make(map[string]Spec)}
}

// Add registers a shared prerequisite under its common-ref.
func (l *Library) Add(s Spec) error {
	if s.CommonRef == "" {
		return fmt.Errorf("%w: shared prerequisite %q has no common-ref", ErrMissingField, s.Name)
	}
	if _, ok := l.specs[s.CommonRef]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicate, s.CommonRef)
	}
	l.specs[s.CommonRef] = s
	return nil
}

func (l *Library) Len() int {
	return len(l.specs)
}

// Resolve returns a copy of list with every reference replaced, in place, by the
// shared definition it names.
func (l *Library) Resolve(list []Spec) ([]Spec, error) {
	if len(list) == 0 {
		return nil, nil
	}
	out := make([]Spec, len(list))
	for i, s := range list {
		if !s.isReference() {
			out[i] = s
			continue
		}
		shared, ok := l.specs[s.CommonRef]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUndefined, s.CommonRef)
		}
		out[i] = shared
	}
	return out, nil
}

// Operator is a comparison operator.
type Operator string

const (
	OpEqual        Operator = "=="
	OpNotEqual     Operator = "!="
	OpLess         Operator = "<"
	OpLessEqual    Operator = "<="
	OpGreater      Operator = ">"
	OpGreaterEqual Operator = ">="
)

func parseOperator(raw string) (Operator, error) {
	switch op := Operator(strings.TrimSpace(raw)); op {
	case OpEqual, OpNotEqual, OpLess, OpLessEqual, OpGreater, OpGreaterEqual:
		return op, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidOperator, raw)
	}
}

// Condition is a parsed prerequisite. Path is the TLV name followed by the
// member names leading to the compared value.
type Condition struct {
	Path  []string
	Op    Operator
	Value int64
}

func (c Condition) String() string {
	return fmt.Sprintf("%s %s %d", strings.Join(c.Path, "."), c.Op, c.Value)
}

// Parse validates s. Values are integer literals in any base strconv accepts, or
// symbols resolved through lookup.
func Parse(s Spec, lookup func(symbol string) (int64, bool)) (Condition, error) {
	if strings.TrimSpace(s.Field) == "" {
		return Condition{}, fmt.Errorf("%w: prerequisite %q", ErrMissingField, s.Name)
	}
	op, err := parseOperator(s.Operation)
	if err != nil {
		return Condition{}, err
	}
	raw := strings.TrimSpace(s.Value)
	v, err := strconv.ParseInt(raw, 0, 64)
	if err != nil {
		var ok bool
		if lookup == nil {
			return Condition{}, fmt.Errorf("%w: %q", ErrInvalidValue, s.Value)
		}
		if v, ok = lookup(raw); !ok {
			return Condition{}, fmt.Errorf("%w: %q", ErrInvalidValue, s.Value)
		}
	}
	path := strings.Split(s.Field, ".")
	for i := range path {
		path[i] = strings.TrimSpace(path[i])
		if path[i] == "" {
			return Condition{}, fmt.Errorf("%w: empty segment in %q", ErrMissingField, s.Field)
		}
	}
	return Condition{Path: path, Op: op, Value: v}, nil
}
