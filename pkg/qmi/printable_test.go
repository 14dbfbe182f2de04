package qmi

import (
	"strings"
	"testing"

	"github.com/danmuck/qmigen/internal/testutil/testlog"
)

func testTable() TLVTable {
	return TLVTable{
		0x01: {Name: "Label", Print: func(r *Reader) string {
			var out strings.Builder
			s, err := r.String(1, 0)
			if err != nil {
				return PrintableError(&out, err)
			}
			out.WriteString("'" + s + "'")
			return PrintableDone(&out, r)
		}},
		0x14: {Name: "Secret", Personal: true, Print: func(r *Reader) string {
			if !ShowPersonalInfo() {
				return PersonalInfoPlaceholder
			}
			s, _ := r.String(0, 0)
			return "'" + s + "'"
		}},
	}
}

func buildPrintableMessage(t *testing.T) *Message {
	t.Helper()
	msg := NewMessage(0x0001)
	for _, rec := range []Record{
		{Tag: 0x01, Value: []byte{0x02, 'h', 'i', 0x00}},
		{Tag: 0x14, Value: []byte("pw")},
		{Tag: 0x30, Value: []byte{0xde, 0xad}},
	} {
		off := msg.BeginTLV(rec.Tag)
		msg.PutBytes(rec.Value)
		if err := msg.EndTLV(off); err != nil {
			t.Fatalf("end tlv: %v", err)
		}
	}
	return msg
}

func TestPrintableTranslatesKnownTLVs(t *testing.T) {
	testlog.Start(t)
	SetShowPersonalInfo(false)
	out := Printable(buildPrintableMessage(t), "<< ", "Echo", testTable())

	for _, want := range []string{
		"<< message     = \"Echo\" (0x0001)\n",
		"<<   type       = \"Label\" (0x01)\n",
		"<<   translated = 'hi'Additional unexpected '1' bytes\n",
		"<<   type       = \"Secret\" (0x14)\n",
		"<<   value      = '###'\n",
		"<<   translated = '###'\n",
		"<<   type       = 0x30\n",
		"<<   value      = de:ad\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "'pw'") {
		t.Fatalf("personal info leaked:\n%s", out)
	}
}

func TestPrintableShowsPersonalInfoWhenEnabled(t *testing.T) {
	testlog.Start(t)
	SetShowPersonalInfo(true)
	t.Cleanup(func() { SetShowPersonalInfo(false) })
	out := Printable(buildPrintableMessage(t), "", "Echo", testTable())
	if !strings.Contains(out, "  value      = 70:77\n") || !strings.Contains(out, "  translated = 'pw'\n") {
		t.Fatalf("expected personal info rendered:\n%s", out)
	}
}

func TestPrintableErrorNeverFails(t *testing.T) {
	testlog.Start(t)
	msg := NewMessage(0x0001)
	off := msg.BeginTLV(0x01)
	msg.PutBytes([]byte{0x09, 'x'})
	if err := msg.EndTLV(off); err != nil {
		t.Fatalf("end tlv: %v", err)
	}
	out := Printable(msg, "", "Echo", testTable())
	if !strings.Contains(out, "translated =  ERROR: ") {
		t.Fatalf("expected inline error annotation:\n%s", out)
	}
}

func TestHexString(t *testing.T) {
	if got := HexString([]byte{0x00, 0x0a, 0xff}, ':'); got != "00:0a:ff" {
		t.Fatalf("unexpected hex: %s", got)
	}
	if got := HexString(nil, ':'); got != "" {
		t.Fatalf("unexpected hex for empty input: %q", got)
	}
}
