package prereq

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Slot describes the generated storage a condition compares against.
type Slot struct {
	Presence string
	Value    string
	Integer  bool
	Signed   bool
	Bits     int
}

// Resolver maps a condition path to a slot of a field declared before the
// guarded one. ok is false for unknown or later fields.
type Resolver interface {
	Slot(path []string) (Slot, bool)
}

// Bound is a condition attached to its storage.
type Bound struct {
	Condition
	Slot Slot
}

// Bind attaches every condition to its slot, rejecting forward references,
// non-integer slots and literals the slot cannot hold.
func Bind(conds []Condition, r Resolver) ([]Bound, error) {
	out := make([]Bound, 0, len(conds))
	for _, c := range conds {
		slot, ok := r.Slot(c.Path)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrForwardReference, strings.Join(c.Path, "."))
		}
		if !slot.Integer {
			return nil, fmt.Errorf("%w: %s", ErrNotInteger, strings.Join(c.Path, "."))
		}
		if !fits(c.Value, slot) {
			return nil, fmt.Errorf("%w: %d for %d-bit %s", ErrValueRange, c.Value, slot.Bits, strings.Join(c.Path, "."))
		}
		out = append(out, Bound{Condition: c, Slot: slot})
	}
	return out, nil
}

func fits(v int64, s Slot) bool {
	bits := s.Bits
	if bits <= 0 || bits > 64 {
		bits = 64
	}
	if s.Signed {
		if bits == 64 {
			return true
		}
		limit := int64(1) << (bits - 1)
		return v >= -limit && v < limit
	}
	if v < 0 {
		return false
	}
	if bits == 64 {
		return true
	}
	return uint64(v) <= uint64(math.MaxUint64)>>(64-bits)
}

// Expression renders the conjunction guarding a write, with every slot read
// through recv. An empty list renders "true".
func Expression(bound []Bound, recv string) string {
	if len(bound) == 0 {
		return "true"
	}
	parts := make([]string, 0, 2*len(bound))
	seen := make(map[string]bool)
	for _, b := range bound {
		if !seen[b.Slot.Presence] {
			seen[b.Slot.Presence] = true
			parts = append(parts, recv+"."+b.Slot.Presence)
		}
		parts = append(parts, recv+"."+b.Slot.Value+" "+string(b.Op)+" "+strconv.FormatInt(b.Value, 10))
	}
	return strings.Join(parts, " && ")
}
