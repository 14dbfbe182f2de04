package envelope

import (
	"strings"

	"github.com/danmuck/qmigen/internal/codec"
	"github.com/danmuck/qmigen/internal/emit"
	"github.com/danmuck/qmigen/internal/version"
)

func visibleSlots(f *Field) []codec.Slot {
	out := make([]codec.Slot, 0, len(f.Slots))
	for _, s := range f.Slots {
		if s.Visible {
			out = append(out, s)
		}
	}
	return out
}

// useRuntime records imports the expression needs.
func useRuntime(b *emit.Builder, expr string) string {
	if strings.Contains(expr, "slices.") {
		b.Import("slices")
	}
	return expr
}

func emitSince(b *emit.Builder, v version.Version) {
	b.L("//")
	b.P("// Since: %s", v)
}

func params(slots []codec.Slot, typeOf func(codec.Slot) string) string {
	parts := make([]string, 0, len(slots))
	for _, s := range slots {
		parts = append(parts, s.Param+" "+typeOf(s))
	}
	return strings.Join(parts, ", ")
}

func names(slots []codec.Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Param)
	}
	return out
}

func publicType(s codec.Slot) string {
	return s.Codec.PublicType()
}

func refType(s codec.Slot) string {
	if structArray(s.Codec) {
		return "[]*" + strings.TrimPrefix(s.Codec.PublicType(), "[]")
	}
	return s.Codec.PublicType()
}

func (bu *Bundle) emitGetter(b *emit.Builder, f *Field) {
	slots := visibleSlots(f)
	b.P("// Get%s returns the %s TLV.", f.Name, emit.Quote(f.TLV.Name))
	emitSince(b, f.TLV.Since)
	results := params(slots, publicType)
	if results != "" {
		results += ", "
	}
	b.P("func (b *%s) Get%s() (%serr error) {", bu.Name, f.Name, results)
	b.In()
	b.P("if b == nil || !b.%s {", f.Present)
	b.In()
	b.P("return %s", strings.Join(append(names(slots), "qmi.FieldNotFound("+emit.Quote(f.TLV.Name)+")"), ", "))
	b.Out()
	b.L("}")
	values := make([]string, 0, len(slots)+1)
	for _, s := range slots {
		values = append(values, useRuntime(b, s.Codec.Expose("b."+s.Field)))
	}
	b.P("return %s", strings.Join(append(values, "nil"), ", "))
	b.Out()
	b.L("}")
	b.Blank()
}

func (bu *Bundle) emitSetter(b *emit.Builder, f *Field) {
	slots := visibleSlots(f)
	b.P("// Set%s sets the %s TLV.", f.Name, emit.Quote(f.TLV.Name))
	emitSince(b, f.TLV.Since)
	b.P("func (b *%s) Set%s(%s) error {", bu.Name, f.Name, params(slots, publicType))
	b.In()
	sc := codec.ValidateFail()
	for _, s := range slots {
		s.Codec.EmitValidate(b, sc, s.Param)
	}
	for _, s := range f.Slots {
		if s.Visible {
			b.L(useRuntime(b, s.Codec.Assign("b."+s.Field, s.Param)))
		} else {
			b.P("b.%s = %s", s.Field, s.Codec.Zero())
		}
	}
	b.P("b.%s = true", f.Present)
	b.L("return nil")
	b.Out()
	b.L("}")
	b.Blank()
}

// emitCompat writes the pointer-slice accessors of TLVs holding struct arrays.
func (bu *Bundle) emitCompat(b *emit.Builder, f *Field) {
	slots := visibleSlots(f)
	since := bu.gate.CompatSince(f.TLV.Since)

	b.P("// Get%sRefs returns the %s TLV with struct array elements behind pointers.", f.Name, emit.Quote(f.TLV.Name))
	emitSince(b, since)
	b.P("func (b *%s) Get%sRefs() (%s, err error) {", bu.Name, f.Name, params(slots, refType))
	b.In()
	b.P("if b == nil || !b.%s {", f.Present)
	b.In()
	b.P("return %s", strings.Join(append(names(slots), "qmi.FieldNotFound("+emit.Quote(f.TLV.Name)+")"), ", "))
	b.Out()
	b.L("}")
	values := make([]string, 0, len(slots)+1)
	for _, s := range slots {
		if structArray(s.Codec) {
			values = append(values, "qmi.Refs(b."+s.Field+")")
		} else {
			values = append(values, useRuntime(b, s.Codec.Expose("b."+s.Field)))
		}
	}
	b.P("return %s", strings.Join(append(values, "nil"), ", "))
	b.Out()
	b.L("}")
	b.Blank()

	b.P("// Set%sRefs sets the %s TLV from struct array elements behind pointers.", f.Name, emit.Quote(f.TLV.Name))
	emitSince(b, since)
	b.P("func (b *%s) Set%sRefs(%s) error {", bu.Name, f.Name, params(slots, refType))
	b.In()
	args := make([]string, 0, len(slots))
	for _, s := range slots {
		if !structArray(s.Codec) {
			args = append(args, s.Param)
			continue
		}
		elems := s.Param + "Elems"
		b.P("%s, err := qmi.Deref(%s)", elems, s.Param)
		b.L("if err != nil {")
		b.In()
		b.L("return err")
		b.Out()
		b.L("}")
		args = append(args, elems)
	}
	b.P("return b.Set%s(%s)", f.Name, strings.Join(args, ", "))
	b.Out()
	b.L("}")
	b.Blank()
}

func (bu *Bundle) emitRelease(b *emit.Builder) {
	b.L("// Release drops every value held by the bundle and clears all presence")
	b.L("// flags. It is safe to call more than once.")
	b.P("func (b *%s) Release() {", bu.Name)
	b.In()
	b.L("if b == nil {")
	b.In()
	b.L("return")
	b.Out()
	b.L("}")
	for _, f := range bu.Fields {
		for _, s := range f.Slots {
			s.Codec.EmitRelease(b, "b."+s.Field)
		}
		b.P("b.%s = false", f.Present)
	}
	b.Out()
	b.L("}")
	b.Blank()
}
