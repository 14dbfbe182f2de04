package codec

import (
	"errors"
	"strings"
	"testing"

	"github.com/danmuck/qmigen/internal/definition"
	"github.com/danmuck/qmigen/internal/emit"
	"github.com/google/go-cmp/cmp"
)

func mustCodec(t *testing.T, v *definition.Value) Codec {
	t.Helper()
	c, err := New(v, "EchoInputValue", false)
	if err != nil {
		t.Fatalf("codec: %v", err)
	}
	return c
}

func emitted(fn func(b *emit.Builder)) string {
	b := emit.NewBuilder("probe")
	fn(b)
	return string(b.Source())
}

func requireLines(t *testing.T, src string, lines ...string) {
	t.Helper()
	for _, l := range lines {
		if !strings.Contains(src, l) {
			t.Fatalf("missing %q in:\n%s", l, src)
		}
	}
}

func TestNumberEndianAndWidth(t *testing.T) {
	be := mustCodec(t, &definition.Value{Format: definition.FormatUint16, Endian: definition.Big, Visible: true})
	src := emitted(func(b *emit.Builder) {
		be.EmitRead(b, ReadFail("Window"), "b.argWindow")
		be.EmitWrite(b, WriteFail("Window"), "b.argWindow")
	})
	requireLines(t, src,
		"v0, err := r.Uint16(qmi.BigEndian)",
		`return qmi.ReadError("Window", err)`,
		"b.argWindow = v0",
		"msg.PutUint16(b.argWindow, qmi.BigEndian)",
	)

	u8 := mustCodec(t, &definition.Value{Format: definition.FormatInt8, Visible: true})
	src = emitted(func(b *emit.Builder) {
		u8.EmitRead(b, ReadFail("Mode"), "x")
		u8.EmitWrite(b, WriteFail("Mode"), "x")
	})
	requireLines(t, src, "v0, err := r.Int8()", "msg.PutInt8(x)")
	if u8.StorageType() != "int8" {
		t.Fatalf("unexpected storage type: %s", u8.StorageType())
	}
}

func TestEnumNumberValidatesNarrowWire(t *testing.T) {
	enum := &definition.Enum{Name: "Echo Mode", Format: definition.FormatUint32}
	c := mustCodec(t, &definition.Value{Format: definition.FormatUint8, Enum: enum, Visible: true})
	if c.PublicType() != "EchoMode" {
		t.Fatalf("unexpected public type: %s", c.PublicType())
	}
	src := emitted(func(b *emit.Builder) {
		c.EmitRead(b, ReadFail("Mode"), "x")
		c.EmitWrite(b, WriteFail("Mode"), "x")
		c.EmitValidate(b, ValidateFail(), "value")
	})
	requireLines(t, src,
		"x = EchoMode(v0)",
		"msg.PutUint8(uint8(x))",
		"if uint64(value) > 255 {",
		`return qmi.InvalidArgumentf("value %d does not fit a uint8 field", value)`,
	)

	same := mustCodec(t, &definition.Value{Format: definition.FormatUint32, Enum: enum, Visible: true})
	if Validates(same) {
		t.Fatalf("enum as wide as its wire format needs no validation")
	}
}

func TestFixedStringStorage(t *testing.T) {
	v := &definition.Value{Format: definition.FormatString, FixedSize: 4, Visible: true}
	private := mustCodec(t, v)
	if private.StorageType() != "[4]byte" || private.PublicType() != "string" {
		t.Fatalf("unexpected types: %s %s", private.StorageType(), private.PublicType())
	}
	if got := private.Assign("b.argCode", "value"); got != "copy(b.argCode[:], value)" {
		t.Fatalf("unexpected assign: %s", got)
	}
	if private.NeedsRelease() {
		t.Fatalf("inline arrays need no release")
	}
	src := emitted(func(b *emit.Builder) {
		private.EmitRead(b, ReadFail("Code"), "b.argCode")
		private.EmitWrite(b, WriteFail("Code"), "b.argCode")
		private.EmitValidate(b, ValidateFail(), "value")
	})
	requireLines(t, src,
		"if err := r.FixedBytes(b.argCode[:]); err != nil {",
		"msg.PutBytes(b.argCode[:])",
		"if len(value) != 4 {",
	)

	public, err := New(v, "X", true)
	if err != nil {
		t.Fatalf("codec: %v", err)
	}
	if public.StorageType() != "string" || !public.NeedsRelease() {
		t.Fatalf("public fixed strings are stored as string")
	}
	src = emitted(func(b *emit.Builder) { public.EmitWrite(b, WriteFail("Tag"), "e.Tag") })
	requireLines(t, src, "if err := msg.PutString(0, e.Tag, 4); err != nil {")
}

func TestPrefixedStringValidation(t *testing.T) {
	tests := []struct {
		name   string
		value  definition.Value
		limits string
	}{
		{name: "one-byte", value: definition.Value{Format: definition.FormatString, PrefixBytes: 1}, limits: "if len(value) > 255 {"},
		{name: "two-byte", value: definition.Value{Format: definition.FormatString, PrefixBytes: 2}, limits: "if len(value) > 65535 {"},
		{name: "max-size", value: definition.Value{Format: definition.FormatString, PrefixBytes: 1, MaxSize: 8}, limits: "if len(value) > 8 {"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := mustCodec(t, &tc.value)
			src := emitted(func(b *emit.Builder) { c.EmitValidate(b, ValidateFail(), "value") })
			requireLines(t, src, tc.limits)
		})
	}
	whole := mustCodec(t, &definition.Value{Format: definition.FormatString})
	if Validates(whole) {
		t.Fatalf("strings spanning the whole TLV have no size limit")
	}
}

func TestArrayReadLoop(t *testing.T) {
	v := &definition.Value{
		Format:      definition.FormatArray,
		PrefixBytes: 2,
		Visible:     true,
		Element:     &definition.Value{Format: definition.FormatUint32, Visible: true},
	}
	c := mustCodec(t, v)
	if c.StorageType() != "[]uint32" {
		t.Fatalf("unexpected storage type: %s", c.StorageType())
	}
	src := emitted(func(b *emit.Builder) {
		sc := ReadFail("Counters")
		c.EmitRead(b, sc, "b.argCounters")
		if got := sc.index(); got != "i0" {
			t.Fatalf("loop index not released: %s", got)
		}
	})
	requireLines(t, src,
		"n0, err := r.Size(2)",
		"b.argCounters = make([]uint32, n0)",
		"for i0 := range b.argCounters {",
		"v1, err := r.Uint32(qmi.LittleEndian)",
		"b.argCounters[i0] = v1",
	)

	fixed := mustCodec(t, &definition.Value{
		Format:    definition.FormatArray,
		FixedSize: 3,
		Element:   &definition.Value{Format: definition.FormatUint8},
	})
	src = emitted(func(b *emit.Builder) { fixed.EmitWrite(b, WriteFail("Fixed"), "x") })
	requireLines(t, src, "if len(x) != 3 {", "msg.PutUint8(x[i0])")
}

func TestSequenceSlots(t *testing.T) {
	v := &definition.Value{
		Format:  definition.FormatSequence,
		Visible: true,
		Members: []*definition.Value{
			{Name: "Start", Format: definition.FormatUint16, Visible: true},
			{Name: "Reserved", Format: definition.FormatUint8},
			{Name: "Stop", Format: definition.FormatUint16, Visible: true},
		},
	}
	c := mustCodec(t, v)
	type slot struct {
		Field, Param string
		Visible      bool
	}
	var got []slot
	for _, s := range c.Slots("argWindow", "value") {
		got = append(got, slot{s.Field, s.Param, s.Visible})
	}
	want := []slot{
		{"argWindowStart", "start", true},
		{"argWindowReserved", "reserved", false},
		{"argWindowStop", "stop", true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("slots mismatch (-want +got):\n%s", diff)
	}
	src := emitted(func(b *emit.Builder) { c.EmitPrintable(b, PrintFail(), false) })
	requireLines(t, src, `out.WriteString(" start = '")`, `out.WriteString(" ]")`)
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := New(&definition.Value{Format: "gpointer"}, "X", false)
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}
