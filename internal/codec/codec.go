// Package codec holds the per-shape strategies that emit the read, write,
// validate, printable and release code of a value.
package codec

import (
	"errors"
	"fmt"

	"github.com/danmuck/qmigen/internal/definition"
	"github.com/danmuck/qmigen/internal/emit"
)

var ErrUnsupported = errors.New("codec: unsupported value")

// Codec emits the code handling one value shape. Sequence codecs only emit
// read, write and printable code; everything else goes through their Slots.
type Codec interface {
	Value() *definition.Value
	// Slots returns the bundle storage of the value. field is the storage
	// name, param the public parameter name.
	Slots(field, param string) []Slot
	StorageType() string
	PublicType() string
	Zero() string
	// Assign returns the statement storing the public value src into dst.
	Assign(dst, src string) string
	// Expose returns the expression converting storage src to its public form.
	Expose(src string) string
	NeedsRelease() bool

	EmitTypes(b *emit.Builder)
	EmitRead(b *emit.Builder, sc *Scope, lv string)
	EmitWrite(b *emit.Builder, sc *Scope, lv string)
	EmitPrintable(b *emit.Builder, sc *Scope, personal bool)
	EmitValidate(b *emit.Builder, sc *Scope, expr string)
	EmitRelease(b *emit.Builder, lv string)
}

// Slot is one storage field of a generated bundle.
type Slot struct {
	Field   string
	Param   string
	Path    []string
	Visible bool
	Codec   Codec
}

// Scope tracks the temporaries of the function being emitted and how it fails.
type Scope struct {
	// Fail renders the statement returning err.
	Fail func(err string) string
	next int
	loop int
}

func NewScope(fail func(err string) string) *Scope {
	return &Scope{Fail: fail}
}

// ReadFail returns a scope for read functions of the named TLV.
func ReadFail(field string) *Scope {
	return NewScope(func(err string) string {
		return fmt.Sprintf("return qmi.ReadError(%s, %s)", emit.Quote(field), err)
	})
}

// WriteFail returns a scope for write functions of the named TLV.
func WriteFail(field string) *Scope {
	return NewScope(func(err string) string {
		return fmt.Sprintf("return qmi.WriteError(%s, %s)", emit.Quote(field), err)
	})
}

// PrintFail returns a scope for printable functions writing to out.
func PrintFail() *Scope {
	return NewScope(func(err string) string {
		return fmt.Sprintf("return qmi.PrintableError(&out, %s)", err)
	})
}

// ValidateFail returns a scope for setters.
func ValidateFail() *Scope {
	return NewScope(func(err string) string {
		return "return " + err
	})
}

func (s *Scope) temp(prefix string) string {
	name := fmt.Sprintf("%s%d", prefix, s.next)
	s.next++
	return name
}

func (s *Scope) index() string {
	name := fmt.Sprintf("i%d", s.loop)
	s.loop++
	return name
}

func (s *Scope) done() {
	s.loop--
}

// emitCheck writes `if err != nil { fail }`.
func emitCheck(b *emit.Builder, sc *Scope) {
	b.L("if err != nil {")
	b.In()
	b.L(sc.Fail("err"))
	b.Out()
	b.L("}")
}

// emitCall writes `if err := call; err != nil { fail }`.
func emitCall(b *emit.Builder, sc *Scope, call string) {
	b.P("if err := %s; err != nil {", call)
	b.In()
	b.L(sc.Fail("err"))
	b.Out()
	b.L("}")
}

// emitInvalid writes `if cond { fail(InvalidArgumentf(...)) }`.
func emitInvalid(b *emit.Builder, sc *Scope, cond, format string, args ...string) {
	b.P("if %s {", cond)
	b.In()
	call := "qmi.InvalidArgumentf(" + emit.Quote(format)
	for _, a := range args {
		call += ", " + a
	}
	b.L(sc.Fail(call + ")"))
	b.Out()
	b.L("}")
}

// emitShow writes the personal-info guard around a printable statement.
func emitShow(b *emit.Builder, personal bool, stmt string) {
	if !personal {
		b.L(stmt)
		return
	}
	b.L("if qmi.ShowPersonalInfo() {")
	b.In()
	b.L(stmt)
	b.Out()
	b.L("} else {")
	b.In()
	b.L("out.WriteString(qmi.PersonalInfoPlaceholder)")
	b.Out()
	b.L("}")
}

// New selects the codec of v. typeName prefixes generated struct types; public
// is set for values exposed through public struct and slice types.
func New(v *definition.Value, typeName string, public bool) (Codec, error) {
	switch {
	case v.Format.IsNumeric():
		return newNumber(v), nil
	case v.Format == definition.FormatString && v.FixedSize > 0:
		return &fixedString{v: v, public: public}, nil
	case v.Format == definition.FormatString:
		return &prefixedString{v: v}, nil
	case v.Format == definition.FormatArray:
		return newArray(v, typeName)
	case v.Format == definition.FormatSequence:
		return newSequence(v, typeName)
	case v.Format == definition.FormatStruct:
		return newStruct(v, typeName)
	}
	return nil, fmt.Errorf("%w: format '%s'", ErrUnsupported, v.Format)
}

// EnumType is the Go type emitted for an enum.
func EnumType(e *definition.Enum) string {
	return emit.Camel(e.Name)
}

// Validates reports whether c emits any setter validation.
func Validates(c Codec) bool {
	probe := emit.NewBuilder("probe")
	c.EmitValidate(probe, ValidateFail(), "x")
	return probe.Len() > 0
}

func leafSlot(c Codec, field, param string) []Slot {
	return []Slot{{Field: field, Param: param, Visible: c.Value().Visible, Codec: c}}
}
