package definition

import (
	"github.com/danmuck/qmigen/internal/prereq"
	"github.com/danmuck/qmigen/internal/version"
)

// Format is the wire shape of a value.
type Format string

const (
	FormatUint8    Format = "guint8"
	FormatUint16   Format = "guint16"
	FormatUint32   Format = "guint32"
	FormatUint64   Format = "guint64"
	FormatInt8     Format = "gint8"
	FormatInt16    Format = "gint16"
	FormatInt32    Format = "gint32"
	FormatInt64    Format = "gint64"
	FormatFloat    Format = "gfloat"
	FormatDouble   Format = "gdouble"
	FormatString   Format = "string"
	FormatArray    Format = "array"
	FormatSequence Format = "sequence"
	FormatStruct   Format = "struct"
)

// IsInteger reports whether f is one of the integer formats.
func (f Format) IsInteger() bool {
	switch f {
	case FormatUint8, FormatUint16, FormatUint32, FormatUint64,
		FormatInt8, FormatInt16, FormatInt32, FormatInt64:
		return true
	}
	return false
}

func (f Format) IsFloat() bool {
	return f == FormatFloat || f == FormatDouble
}

// IsNumeric reports whether f is an integer or a float.
func (f Format) IsNumeric() bool {
	return f.IsInteger() || f.IsFloat()
}

func (f Format) Signed() bool {
	switch f {
	case FormatInt8, FormatInt16, FormatInt32, FormatInt64, FormatFloat, FormatDouble:
		return true
	}
	return false
}

// Holds reports whether v is representable by the integer format f.
func (f Format) Holds(v int64) bool {
	bits := f.Bits()
	if f.Signed() {
		if bits >= 64 {
			return true
		}
		limit := int64(1) << (bits - 1)
		return v >= -limit && v < limit
	}
	if v < 0 {
		return false
	}
	return bits >= 64 || v < int64(1)<<bits
}

// Bits returns the width of a numeric format, 0 otherwise.
func (f Format) Bits() int {
	switch f {
	case FormatUint8, FormatInt8:
		return 8
	case FormatUint16, FormatInt16:
		return 16
	case FormatUint32, FormatInt32, FormatFloat:
		return 32
	case FormatUint64, FormatInt64, FormatDouble:
		return 64
	}
	return 0
}

// Endian of a numeric value on the wire.
type Endian int

const (
	Little Endian = iota
	Big
)

// Service is a resolved definition document.
type Service struct {
	Name        string
	Messages    []*Message
	Indications []*Message
	Enums       []*Enum
}

// Enum finds an enum by name.
func (s *Service) Enum(name string) (*Enum, bool) {
	for _, e := range s.Enums {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

// MessageKind distinguishes requests from indications.
type MessageKind int

const (
	KindRequest MessageKind = iota
	KindIndication
)

func (k MessageKind) String() string {
	if k == KindIndication {
		return "indication"
	}
	return "request"
}

// Message is a request/response pair or an indication. Indications only carry
// output TLVs.
type Message struct {
	Name   string
	Kind   MessageKind
	ID     uint16
	Since  version.Version
	Input  []*TLV
	Output []*TLV
}

// TLV is one resolved record of a message container.
type TLV struct {
	Name          string
	ID            uint8
	Mandatory     bool
	Since         version.Version
	Personal      bool
	Prerequisites []prereq.Condition
	Value         *Value
}

// Value describes how a TLV, a sequence member, a struct member or an array
// element is stored and encoded.
type Value struct {
	Name      string
	Format    Format
	Endian    Endian
	Enum      *Enum
	FixedSize int
	MaxSize   int
	// PrefixBytes is the length prefix width of strings (0, 1 or 2) and the
	// size prefix width of arrays (1, 2 or 4). Fixed arrays use 0.
	PrefixBytes int
	Visible     bool
	Personal    bool
	Members     []*Value
	Element     *Value
}

// IsFixedString reports a string with a fixed size and no prefix.
func (v *Value) IsFixedString() bool {
	return v.Format == FormatString && v.FixedSize > 0
}

// ContainsPersonal reports whether v or anything below it is sensitive.
func (v *Value) ContainsPersonal() bool {
	if v.Personal {
		return true
	}
	for _, m := range v.Members {
		if m.ContainsPersonal() {
			return true
		}
	}
	return v.Element != nil && v.Element.ContainsPersonal()
}

// HasStructArray reports whether v or any member is an array of structs.
func (v *Value) HasStructArray() bool {
	if v.Format == FormatArray && v.Element.Format == FormatStruct {
		return true
	}
	for _, m := range v.Members {
		if m.HasStructArray() {
			return true
		}
	}
	return false
}

// Enum is a named set of integer values.
type Enum struct {
	Name   string
	Format Format
	Since  version.Version
	Values []EnumValue
}

type EnumValue struct {
	Name  string
	Value int64
}
