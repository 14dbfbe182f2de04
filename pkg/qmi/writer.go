package qmi

import (
	"encoding/binary"
	"math"
)

// BeginTLV appends the tag and a length placeholder and returns the record offset
// to hand back to EndTLV.
func (m *Message) BeginTLV(tag uint8) int {
	offset := len(m.tlvs)
	m.tlvs = append(m.tlvs, tag, 0, 0)
	return offset
}

// EndTLV back-patches the length of the record started at offset.
func (m *Message) EndTLV(offset int) error {
	if offset < 0 || offset+TLVHeaderSize > len(m.tlvs) {
		return newError(KindInvalidArgument, "invalid TLV offset %d", offset)
	}
	l := len(m.tlvs) - offset - TLVHeaderSize
	if l > MaxTLVLength {
		return newError(KindMalformedLength, "TLV 0x%02x value of %d bytes exceeds %d", m.tlvs[offset], l, MaxTLVLength)
	}
	if len(m.tlvs) > MaxTLVLength {
		return newError(KindMalformedLength, "message TLV area of %d bytes exceeds %d", len(m.tlvs), MaxTLVLength)
	}
	binary.LittleEndian.PutUint16(m.tlvs[offset+1:offset+3], uint16(l))
	return nil
}

// PutUint8 and the other fixed-width writers append to the open TLV.
func (m *Message) PutUint8(v uint8) {
	m.tlvs = append(m.tlvs, v)
}

func (m *Message) PutInt8(v int8) {
	m.tlvs = append(m.tlvs, byte(v))
}

func (m *Message) PutUint16(v uint16, e Endian) {
	m.tlvs = e.order().AppendUint16(m.tlvs, v)
}

func (m *Message) PutInt16(v int16, e Endian) {
	m.PutUint16(uint16(v), e)
}

func (m *Message) PutUint32(v uint32, e Endian) {
	m.tlvs = e.order().AppendUint32(m.tlvs, v)
}

func (m *Message) PutInt32(v int32, e Endian) {
	m.PutUint32(uint32(v), e)
}

func (m *Message) PutUint64(v uint64, e Endian) {
	m.tlvs = e.order().AppendUint64(m.tlvs, v)
}

func (m *Message) PutInt64(v int64, e Endian) {
	m.PutUint64(uint64(v), e)
}

// PutFloat32 appends the IEEE 754 bits of v.
func (m *Message) PutFloat32(v float32, e Endian) {
	m.PutUint32(math.Float32bits(v), e)
}

func (m *Message) PutFloat64(v float64, e Endian) {
	m.PutUint64(math.Float64bits(v), e)
}

// PutBytes appends raw bytes.
func (m *Message) PutBytes(b []byte) {
	m.tlvs = append(m.tlvs, b...)
}

// PutSize appends an element count using a 1, 2 or 4 byte prefix.
func (m *Message) PutSize(prefixBytes int, n int) error {
	switch prefixBytes {
	case 1:
		if n > math.MaxUint8 {
			return newError(KindInvalidArgument, "%d elements do not fit a 1-byte size prefix", n)
		}
		m.PutUint8(uint8(n))
	case 2:
		if n > math.MaxUint16 {
			return newError(KindInvalidArgument, "%d elements do not fit a 2-byte size prefix", n)
		}
		m.PutUint16(uint16(n), LittleEndian)
	case 4:
		if uint64(n) > math.MaxUint32 {
			return newError(KindInvalidArgument, "%d elements do not fit a 4-byte size prefix", n)
		}
		m.PutUint32(uint32(n), LittleEndian)
	default:
		return newError(KindInvalidArgument, "invalid size prefix width %d", prefixBytes)
	}
	return nil
}

// PutString appends a string. A positive fixedSize writes exactly that many bytes
// with no prefix; otherwise the length goes in a prefixBytes wide prefix (0, 1 or 2).
func (m *Message) PutString(prefixBytes int, value string, fixedSize int) error {
	if fixedSize > 0 {
		if len(value) != fixedSize {
			return newError(KindInvalidArgument, "string '%s' must be %d characters long", value, fixedSize)
		}
		m.tlvs = append(m.tlvs, value...)
		return nil
	}
	switch prefixBytes {
	case 0:
	case 1:
		if len(value) > math.MaxUint8 {
			return newError(KindInvalidArgument, "string of %d bytes does not fit a 1-byte length prefix", len(value))
		}
		m.PutUint8(uint8(len(value)))
	case 2:
		if len(value) > math.MaxUint16 {
			return newError(KindInvalidArgument, "string of %d bytes does not fit a 2-byte length prefix", len(value))
		}
		m.PutUint16(uint16(len(value)), LittleEndian)
	default:
		return newError(KindInvalidArgument, "invalid string prefix width %d", prefixBytes)
	}
	m.tlvs = append(m.tlvs, value...)
	return nil
}
