package codec

import (
	"fmt"
	"strings"

	"github.com/danmuck/qmigen/internal/definition"
	"github.com/danmuck/qmigen/internal/emit"
)

type number struct {
	v      *definition.Value
	goType string
	method string
}

func newNumber(v *definition.Value) *number {
	n := &number{v: v}
	switch v.Format {
	case definition.FormatFloat:
		n.goType, n.method = "float32", "Float32"
	case definition.FormatDouble:
		n.goType, n.method = "float64", "Float64"
	default:
		bits := fmt.Sprint(v.Format.Bits())
		if v.Format.Signed() {
			n.goType, n.method = "int"+bits, "Int"+bits
		} else {
			n.goType, n.method = "uint"+bits, "Uint"+bits
		}
	}
	return n
}

func (n *number) Value() *definition.Value { return n.v }

func (n *number) Slots(field, param string) []Slot { return leafSlot(n, field, param) }

func (n *number) StorageType() string { return n.PublicType() }

func (n *number) PublicType() string {
	if n.v.Enum != nil {
		return EnumType(n.v.Enum)
	}
	return n.goType
}

func (n *number) Zero() string { return "0" }

func (n *number) Assign(dst, src string) string { return dst + " = " + src }

func (n *number) Expose(src string) string { return src }

func (n *number) NeedsRelease() bool { return false }

func (n *number) EmitTypes(b *emit.Builder) {}

func (n *number) endian() string {
	if n.v.Endian == definition.Big {
		return "qmi.BigEndian"
	}
	return "qmi.LittleEndian"
}

func (n *number) readCall() string {
	if n.v.Format.Bits() == 8 {
		return "r." + n.method + "()"
	}
	return "r." + n.method + "(" + n.endian() + ")"
}

// read emits the wire read into a fresh temporary holding the public value.
func (n *number) read(b *emit.Builder, sc *Scope) string {
	tmp := sc.temp("v")
	b.P("%s, err := %s", tmp, n.readCall())
	emitCheck(b, sc)
	if n.v.Enum != nil {
		return n.PublicType() + "(" + tmp + ")"
	}
	return tmp
}

func (n *number) EmitRead(b *emit.Builder, sc *Scope, lv string) {
	b.P("%s = %s", lv, n.read(b, sc))
}

func (n *number) EmitWrite(b *emit.Builder, sc *Scope, lv string) {
	src := lv
	if n.v.Enum != nil {
		src = n.goType + "(" + lv + ")"
	}
	if n.v.Format.Bits() == 8 {
		b.P("msg.Put%s(%s)", n.method, src)
		return
	}
	b.P("msg.Put%s(%s, %s)", n.method, src, n.endian())
}

func (n *number) EmitPrintable(b *emit.Builder, sc *Scope, personal bool) {
	val := n.read(b, sc)
	verb := "%d"
	switch {
	case n.v.Enum != nil:
		verb = "%s"
	case n.v.Format.IsFloat():
		verb = "%f"
	}
	b.Import("fmt")
	emitShow(b, personal || n.v.Personal, fmt.Sprintf("fmt.Fprintf(&out, %s, %s)", emit.Quote(verb), val))
}

// EmitValidate rejects enum values wider than the wire format.
func (n *number) EmitValidate(b *emit.Builder, sc *Scope, expr string) {
	e := n.v.Enum
	if e == nil || e.Format.Bits() <= n.v.Format.Bits() {
		return
	}
	bits := n.v.Format.Bits()
	if n.v.Format.Signed() {
		limit := int64(1) << (bits - 1)
		emitInvalid(b, sc, fmt.Sprintf("int64(%s) < %d || int64(%s) > %d", expr, -limit, expr, limit-1),
			"value %d does not fit a "+strings.TrimPrefix(string(n.v.Format), "g")+" field", expr)
		return
	}
	emitInvalid(b, sc, fmt.Sprintf("uint64(%s) > %d", expr, uint64(1)<<bits-1),
		"value %d does not fit a "+strings.TrimPrefix(string(n.v.Format), "g")+" field", expr)
}

func (n *number) EmitRelease(b *emit.Builder, lv string) {}
