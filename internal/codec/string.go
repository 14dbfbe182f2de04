package codec

import (
	"fmt"
	"math"

	"github.com/danmuck/qmigen/internal/definition"
	"github.com/danmuck/qmigen/internal/emit"
)

// fixedString is stored inline as [N]byte inside bundles and as string when
// exposed through public struct or slice types.
type fixedString struct {
	v      *definition.Value
	public bool
}

func (s *fixedString) Value() *definition.Value { return s.v }

func (s *fixedString) Slots(field, param string) []Slot { return leafSlot(s, field, param) }

func (s *fixedString) StorageType() string {
	if s.public {
		return "string"
	}
	return fmt.Sprintf("[%d]byte", s.v.FixedSize)
}

func (s *fixedString) PublicType() string { return "string" }

func (s *fixedString) Zero() string {
	if s.public {
		return `""`
	}
	return s.StorageType() + "{}"
}

func (s *fixedString) Assign(dst, src string) string {
	if s.public {
		return dst + " = " + src
	}
	return "copy(" + dst + "[:], " + src + ")"
}

func (s *fixedString) Expose(src string) string {
	if s.public {
		return src
	}
	return "string(" + src + "[:])"
}

func (s *fixedString) NeedsRelease() bool { return s.public }

func (s *fixedString) EmitTypes(b *emit.Builder) {}

func (s *fixedString) EmitRead(b *emit.Builder, sc *Scope, lv string) {
	if !s.public {
		emitCall(b, sc, "r.FixedBytes("+lv+"[:])")
		return
	}
	tmp := sc.temp("v")
	b.P("%s, err := r.FixedString(%d)", tmp, s.v.FixedSize)
	emitCheck(b, sc)
	b.P("%s = %s", lv, tmp)
}

func (s *fixedString) EmitWrite(b *emit.Builder, sc *Scope, lv string) {
	if !s.public {
		b.P("msg.PutBytes(%s[:])", lv)
		return
	}
	emitCall(b, sc, fmt.Sprintf("msg.PutString(0, %s, %d)", lv, s.v.FixedSize))
}

func (s *fixedString) EmitPrintable(b *emit.Builder, sc *Scope, personal bool) {
	tmp := sc.temp("v")
	b.P("%s, err := r.FixedString(%d)", tmp, s.v.FixedSize)
	emitCheck(b, sc)
	emitShow(b, personal || s.v.Personal, "out.WriteString("+tmp+")")
}

func (s *fixedString) EmitValidate(b *emit.Builder, sc *Scope, expr string) {
	emitInvalid(b, sc, fmt.Sprintf("len(%s) != %d", expr, s.v.FixedSize),
		fmt.Sprintf("string '%%s' must be %d characters long", s.v.FixedSize), expr)
}

func (s *fixedString) EmitRelease(b *emit.Builder, lv string) {
	if s.public {
		b.P(`%s = ""`, lv)
	}
}

// prefixedString carries its length in a 0, 1 or 2 byte prefix.
type prefixedString struct {
	v *definition.Value
}

func (s *prefixedString) Value() *definition.Value { return s.v }

func (s *prefixedString) Slots(field, param string) []Slot { return leafSlot(s, field, param) }

func (s *prefixedString) StorageType() string { return "string" }

func (s *prefixedString) PublicType() string { return "string" }

func (s *prefixedString) Zero() string { return `""` }

func (s *prefixedString) Assign(dst, src string) string { return dst + " = " + src }

func (s *prefixedString) Expose(src string) string { return src }

func (s *prefixedString) NeedsRelease() bool { return true }

func (s *prefixedString) EmitTypes(b *emit.Builder) {}

func (s *prefixedString) read(b *emit.Builder, sc *Scope) string {
	tmp := sc.temp("v")
	b.P("%s, err := r.String(%d, %d)", tmp, s.v.PrefixBytes, s.v.MaxSize)
	emitCheck(b, sc)
	return tmp
}

func (s *prefixedString) EmitRead(b *emit.Builder, sc *Scope, lv string) {
	b.P("%s = %s", lv, s.read(b, sc))
}

func (s *prefixedString) EmitWrite(b *emit.Builder, sc *Scope, lv string) {
	emitCall(b, sc, fmt.Sprintf("msg.PutString(%d, %s, 0)", s.v.PrefixBytes, lv))
}

func (s *prefixedString) EmitPrintable(b *emit.Builder, sc *Scope, personal bool) {
	tmp := s.read(b, sc)
	emitShow(b, personal || s.v.Personal, "out.WriteString("+tmp+")")
}

func (s *prefixedString) EmitValidate(b *emit.Builder, sc *Scope, expr string) {
	limit := s.v.MaxSize
	if limit == 0 {
		switch s.v.PrefixBytes {
		case 1:
			limit = math.MaxUint8
		case 2:
			limit = math.MaxUint16
		default:
			return
		}
	}
	emitInvalid(b, sc, fmt.Sprintf("len(%s) > %d", expr, limit),
		fmt.Sprintf("string of %%d bytes exceeds the maximum size of %d", limit), "len("+expr+")")
}

func (s *prefixedString) EmitRelease(b *emit.Builder, lv string) {
	b.P(`%s = ""`, lv)
}
