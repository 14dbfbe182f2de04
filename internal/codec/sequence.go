package codec

import (
	"fmt"

	"github.com/danmuck/qmigen/internal/definition"
	"github.com/danmuck/qmigen/internal/emit"
)

type member struct {
	v     *definition.Value
	codec Codec
	// suffix joins the member name to the parent storage name.
	suffix string
	label  string
}

func newMembers(v *definition.Value, typeName string, public bool) ([]member, error) {
	out := make([]member, 0, len(v.Members))
	for _, m := range v.Members {
		c, err := New(m, typeName+emit.Camel(m.Name), public)
		if err != nil {
			return nil, fmt.Errorf("member '%s': %w", m.Name, err)
		}
		out = append(out, member{v: m, codec: c, suffix: emit.Camel(m.Name), label: emit.Underscore(m.Name)})
	}
	return out, nil
}

// sequence flattens its members into separate bundle slots.
type sequence struct {
	v       *definition.Value
	members []member
}

func newSequence(v *definition.Value, typeName string) (*sequence, error) {
	members, err := newMembers(v, typeName, false)
	if err != nil {
		return nil, err
	}
	return &sequence{v: v, members: members}, nil
}

func (s *sequence) Value() *definition.Value { return s.v }

func (s *sequence) Slots(field, param string) []Slot {
	var out []Slot
	for _, m := range s.members {
		for _, slot := range m.codec.Slots(field+m.suffix, emit.LowerCamel(m.v.Name)) {
			slot.Path = append([]string{m.v.Name}, slot.Path...)
			out = append(out, slot)
		}
	}
	return out
}

func (s *sequence) StorageType() string { return "" }

func (s *sequence) PublicType() string { return "" }

func (s *sequence) Zero() string { return "" }

func (s *sequence) Assign(dst, src string) string { return "" }

func (s *sequence) Expose(src string) string { return "" }

func (s *sequence) NeedsRelease() bool {
	for _, m := range s.members {
		if m.codec.NeedsRelease() {
			return true
		}
	}
	return false
}

func (s *sequence) EmitTypes(b *emit.Builder) {
	for _, m := range s.members {
		m.codec.EmitTypes(b)
	}
}

func (s *sequence) EmitRead(b *emit.Builder, sc *Scope, lv string) {
	for _, m := range s.members {
		m.codec.EmitRead(b, sc, lv+m.suffix)
	}
}

func (s *sequence) EmitWrite(b *emit.Builder, sc *Scope, lv string) {
	for _, m := range s.members {
		m.codec.EmitWrite(b, sc, lv+m.suffix)
	}
}

func (s *sequence) EmitPrintable(b *emit.Builder, sc *Scope, personal bool) {
	emitMembersPrintable(b, sc, s.members, personal || s.v.Personal)
}

func emitMembersPrintable(b *emit.Builder, sc *Scope, members []member, personal bool) {
	b.L(`out.WriteString("[")`)
	for _, m := range members {
		b.P("out.WriteString(%s)", emit.Quote(" "+m.label+" = '"))
		m.codec.EmitPrintable(b, sc, personal)
		b.L(`out.WriteString("'")`)
	}
	b.L(`out.WriteString(" ]")`)
}

func (s *sequence) EmitValidate(b *emit.Builder, sc *Scope, expr string) {}

func (s *sequence) EmitRelease(b *emit.Builder, lv string) {
	for _, m := range s.members {
		m.codec.EmitRelease(b, lv+m.suffix)
	}
}

// structValue is an array element with named members. It generates its own
// public struct type.
type structValue struct {
	v        *definition.Value
	typeName string
	members  []member
}

func newStruct(v *definition.Value, typeName string) (*structValue, error) {
	members, err := newMembers(v, typeName, true)
	if err != nil {
		return nil, err
	}
	for i := range members {
		members[i].suffix = "." + members[i].suffix
	}
	return &structValue{v: v, typeName: typeName, members: members}, nil
}

func (s *structValue) Value() *definition.Value { return s.v }

func (s *structValue) Slots(field, param string) []Slot { return leafSlot(s, field, param) }

func (s *structValue) StorageType() string { return s.typeName }

func (s *structValue) PublicType() string { return s.typeName }

func (s *structValue) Zero() string { return s.typeName + "{}" }

func (s *structValue) Assign(dst, src string) string { return dst + " = " + src }

func (s *structValue) Expose(src string) string { return src }

func (s *structValue) NeedsRelease() bool { return true }

func (s *structValue) EmitTypes(b *emit.Builder) {
	for _, m := range s.members {
		m.codec.EmitTypes(b)
	}
	b.P("// %s is one array element.", s.typeName)
	b.P("type %s struct {", s.typeName)
	b.In()
	for _, m := range s.members {
		b.P("%s %s", m.suffix[1:], m.codec.StorageType())
	}
	b.Out()
	b.L("}")
	b.Blank()
}

func (s *structValue) EmitRead(b *emit.Builder, sc *Scope, lv string) {
	for _, m := range s.members {
		m.codec.EmitRead(b, sc, lv+m.suffix)
	}
}

func (s *structValue) EmitWrite(b *emit.Builder, sc *Scope, lv string) {
	for _, m := range s.members {
		m.codec.EmitWrite(b, sc, lv+m.suffix)
	}
}

func (s *structValue) EmitPrintable(b *emit.Builder, sc *Scope, personal bool) {
	emitMembersPrintable(b, sc, s.members, personal || s.v.Personal)
}

func (s *structValue) EmitValidate(b *emit.Builder, sc *Scope, expr string) {
	for _, m := range s.members {
		m.codec.EmitValidate(b, sc, expr+m.suffix)
	}
}

func (s *structValue) EmitRelease(b *emit.Builder, lv string) {}
