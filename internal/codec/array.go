package codec

import (
	"fmt"
	"math"

	"github.com/danmuck/qmigen/internal/definition"
	"github.com/danmuck/qmigen/internal/emit"
)

// array is a slice owned by the bundle. The element count is either a size
// prefix or fixed by the definition.
type array struct {
	v    *definition.Value
	elem Codec
}

func newArray(v *definition.Value, typeName string) (*array, error) {
	elem, err := New(v.Element, typeName+"Element", true)
	if err != nil {
		return nil, err
	}
	return &array{v: v, elem: elem}, nil
}

func (a *array) Value() *definition.Value { return a.v }

// Element returns the codec of the array elements.
func (a *array) Element() Codec { return a.elem }

// StructElement reports an array of structs, which gets pointer-slice compat accessors.
func (a *array) StructElement() bool {
	return a.v.Element.Format == definition.FormatStruct
}

func (a *array) Slots(field, param string) []Slot { return leafSlot(a, field, param) }

func (a *array) StorageType() string { return "[]" + a.elem.StorageType() }

func (a *array) PublicType() string { return "[]" + a.elem.PublicType() }

func (a *array) Zero() string { return "nil" }

func (a *array) Assign(dst, src string) string {
	return dst + " = slices.Clone(" + src + ")"
}

func (a *array) Expose(src string) string {
	return "slices.Clone(" + src + ")"
}

func (a *array) NeedsRelease() bool { return true }

func (a *array) EmitTypes(b *emit.Builder) {
	a.elem.EmitTypes(b)
}

// count emits the element count and returns the expression holding it.
func (a *array) count(b *emit.Builder, sc *Scope) string {
	if a.v.FixedSize > 0 {
		return fmt.Sprint(a.v.FixedSize)
	}
	n := sc.temp("n")
	b.P("%s, err := r.Size(%d)", n, a.v.PrefixBytes)
	emitCheck(b, sc)
	return n
}

func (a *array) EmitRead(b *emit.Builder, sc *Scope, lv string) {
	n := a.count(b, sc)
	b.P("%s = make(%s, %s)", lv, a.StorageType(), n)
	i := sc.index()
	b.P("for %s := range %s {", i, lv)
	b.In()
	a.elem.EmitRead(b, sc, lv+"["+i+"]")
	b.Out()
	b.L("}")
	sc.done()
}

func (a *array) EmitWrite(b *emit.Builder, sc *Scope, lv string) {
	if a.v.FixedSize > 0 {
		emitInvalid(b, sc, fmt.Sprintf("len(%s) != %d", lv, a.v.FixedSize),
			fmt.Sprintf("array must have %d elements, got %%d", a.v.FixedSize), "len("+lv+")")
	} else {
		emitCall(b, sc, fmt.Sprintf("msg.PutSize(%d, len(%s))", a.v.PrefixBytes, lv))
	}
	i := sc.index()
	b.P("for %s := range %s {", i, lv)
	b.In()
	a.elem.EmitWrite(b, sc, lv+"["+i+"]")
	b.Out()
	b.L("}")
	sc.done()
}

func (a *array) EmitPrintable(b *emit.Builder, sc *Scope, personal bool) {
	n := a.count(b, sc)
	b.Import("fmt")
	b.L(`out.WriteString("{")`)
	i := sc.index()
	b.P("for %s := 0; %s < %s; %s++ {", i, i, n, i)
	b.In()
	b.P(`fmt.Fprintf(&out, " [%%d] = '", %s)`, i)
	a.elem.EmitPrintable(b, sc, personal || a.v.Personal)
	b.L(`out.WriteString("'")`)
	b.Out()
	b.L("}")
	sc.done()
	b.L(`out.WriteString(" }")`)
}

func (a *array) EmitValidate(b *emit.Builder, sc *Scope, expr string) {
	switch {
	case a.v.FixedSize > 0:
		emitInvalid(b, sc, fmt.Sprintf("len(%s) != %d", expr, a.v.FixedSize),
			fmt.Sprintf("array must have %d elements, got %%d", a.v.FixedSize), "len("+expr+")")
	case a.v.PrefixBytes == 1:
		emitInvalid(b, sc, fmt.Sprintf("len(%s) > %d", expr, math.MaxUint8),
			fmt.Sprintf("array of %%d elements exceeds %d", math.MaxUint8), "len("+expr+")")
	case a.v.PrefixBytes == 2:
		emitInvalid(b, sc, fmt.Sprintf("len(%s) > %d", expr, math.MaxUint16),
			fmt.Sprintf("array of %%d elements exceeds %d", math.MaxUint16), "len("+expr+")")
	}
	if !Validates(a.elem) {
		return
	}
	e := sc.temp("e")
	b.P("for _, %s := range %s {", e, expr)
	b.In()
	a.elem.EmitValidate(b, sc, e)
	b.Out()
	b.L("}")
}

func (a *array) EmitRelease(b *emit.Builder, lv string) {
	b.P("%s = nil", lv)
}
