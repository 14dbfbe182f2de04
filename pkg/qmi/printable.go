package qmi

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// PersonalInfoPlaceholder replaces sensitive values in printable output.
const PersonalInfoPlaceholder = "'###'"

var showPersonalInfo atomic.Bool

// SetShowPersonalInfo toggles whether sensitive values are rendered.
func SetShowPersonalInfo(show bool) {
	showPersonalInfo.Store(show)
}

func ShowPersonalInfo() bool {
	return showPersonalInfo.Load()
}

// TLVPrinter renders one known TLV.
type TLVPrinter struct {
	Name     string
	Personal bool
	Print    func(r *Reader) string
}

// TLVTable maps tags to their printers.
type TLVTable map[uint8]TLVPrinter

// PrintableError appends an inline error annotation and returns the text so far.
func PrintableError(out *strings.Builder, err error) string {
	fmt.Fprintf(out, " ERROR: %v", err)
	return out.String()
}

// PrintableDone appends a note about unread bytes and returns the text.
func PrintableDone(out *strings.Builder, r *Reader) string {
	if n := r.Remaining(); n > 0 {
		fmt.Fprintf(out, "Additional unexpected '%d' bytes", n)
	}
	return out.String()
}

// Printable renders every TLV of msg, translating the ones found in table.
func Printable(msg *Message, linePrefix, name string, table TLVTable) string {
	var out strings.Builder
	fmt.Fprintf(&out, "%smessage     = \"%s\" (0x%04x)\n", linePrefix, name, msg.ID())
	fmt.Fprintf(&out, "%stlv_length  = %d\n", linePrefix, msg.Len())
	for _, rec := range msg.Records() {
		fmt.Fprintf(&out, "%sTLV:\n", linePrefix)
		p, known := table[rec.Tag]
		if known {
			fmt.Fprintf(&out, "%s  type       = \"%s\" (0x%02x)\n", linePrefix, p.Name, rec.Tag)
		} else {
			fmt.Fprintf(&out, "%s  type       = 0x%02x\n", linePrefix, rec.Tag)
		}
		fmt.Fprintf(&out, "%s  length     = %d\n", linePrefix, len(rec.Value))
		if known && p.Personal && !ShowPersonalInfo() {
			fmt.Fprintf(&out, "%s  value      = %s\n", linePrefix, PersonalInfoPlaceholder)
		} else {
			fmt.Fprintf(&out, "%s  value      = %s\n", linePrefix, HexString(rec.Value, ':'))
		}
		if known && p.Print != nil {
			fmt.Fprintf(&out, "%s  translated = %s\n", linePrefix, p.Print(NewReader(rec.Tag, rec.Value)))
		}
	}
	return out.String()
}

// HexString renders b as two-digit hex bytes joined by sep.
func HexString(b []byte, sep byte) string {
	const digits = "0123456789abcdef"
	if len(b) == 0 {
		return ""
	}
	out := make([]byte, 0, len(b)*3-1)
	for i, c := range b {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, digits[c>>4], digits[c&0x0f])
	}
	return string(out)
}
