package qmi

import (
	"encoding/binary"
	"math"

	"github.com/rs/zerolog/log"
)

// Endian selects the byte order of a multi-byte integer.
type Endian int

const (
	LittleEndian Endian = iota
	BigEndian
)

func (e Endian) order() binary.AppendByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (e Endian) byteOrder() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Reader is a cursor over one TLV value. Every read advances the cursor by
// exactly the bytes it consumed, or leaves it untouched on error.
type Reader struct {
	tag   uint8
	value []byte
	off   int
}

// NewReader returns a reader positioned at the start of value.
func NewReader(tag uint8, value []byte) *Reader {
	return &Reader{tag: tag, value: value}
}

// Tag returns the tag of the TLV being read.
func (r *Reader) Tag() uint8 {
	return r.tag
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.off
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.value) - r.off
}

func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, newError(KindTruncatedInput, "TLV 0x%02x: need %d bytes at offset %d, %d available", r.tag, n, r.off, r.Remaining())
	}
	b := r.value[r.off : r.off+n]
	r.off += n
	return b, nil
}

// Uint8 and the other fixed-width readers fail with ErrTruncatedInput and
// leave the cursor unchanged when too few bytes remain.
func (r *Reader) Uint8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) Int8() (int8, error) {
	v, err := r.Uint8()
	return int8(v), err
}

func (r *Reader) Uint16(e Endian) (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return e.byteOrder().Uint16(b), nil
}

func (r *Reader) Int16(e Endian) (int16, error) {
	v, err := r.Uint16(e)
	return int16(v), err
}

func (r *Reader) Uint32(e Endian) (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return e.byteOrder().Uint32(b), nil
}

func (r *Reader) Int32(e Endian) (int32, error) {
	v, err := r.Uint32(e)
	return int32(v), err
}

func (r *Reader) Uint64(e Endian) (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return e.byteOrder().Uint64(b), nil
}

func (r *Reader) Int64(e Endian) (int64, error) {
	v, err := r.Uint64(e)
	return int64(v), err
}

// Float32 reads an IEEE 754 value in the given byte order.
func (r *Reader) Float32(e Endian) (float32, error) {
	v, err := r.Uint32(e)
	return math.Float32frombits(v), err
}

func (r *Reader) Float64(e Endian) (float64, error) {
	v, err := r.Uint64(e)
	return math.Float64frombits(v), err
}

// Bytes returns a copy of the next n bytes.
func (r *Reader) Bytes(n int) ([]byte, error) {
	b, err := r.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// FixedBytes fills dst completely, or leaves it untouched on error.
func (r *Reader) FixedBytes(dst []byte) error {
	b, err := r.take(len(dst))
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

// FixedString reads exactly size bytes.
func (r *Reader) FixedString(size int) (string, error) {
	b, err := r.take(size)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// String reads a length-prefixed string. A zero prefixBytes consumes the rest of
// the TLV value. A positive maxSize bounds the declared length.
func (r *Reader) String(prefixBytes int, maxSize int) (string, error) {
	start := r.off
	var n int
	switch prefixBytes {
	case 0:
		n = r.Remaining()
	case 1:
		v, err := r.Uint8()
		if err != nil {
			return "", err
		}
		n = int(v)
	case 2:
		v, err := r.Uint16(LittleEndian)
		if err != nil {
			return "", err
		}
		n = int(v)
	default:
		return "", newError(KindInvalidArgument, "invalid string prefix width %d", prefixBytes)
	}
	if maxSize > 0 && n > maxSize {
		r.off = start
		return "", newError(KindMalformedLength, "TLV 0x%02x: string length %d exceeds maximum %d", r.tag, n, maxSize)
	}
	if n > r.Remaining() {
		r.off = start
		return "", newError(KindMalformedLength, "TLV 0x%02x: string length %d exceeds %d remaining bytes", r.tag, n, r.Remaining())
	}
	b, _ := r.take(n)
	return string(b), nil
}

// Size reads an element count stored in a 1, 2 or 4 byte prefix.
func (r *Reader) Size(prefixBytes int) (int, error) {
	switch prefixBytes {
	case 1:
		v, err := r.Uint8()
		return int(v), err
	case 2:
		v, err := r.Uint16(LittleEndian)
		return int(v), err
	case 4:
		v, err := r.Uint32(LittleEndian)
		if err != nil {
			return 0, err
		}
		if uint64(v) > uint64(r.Remaining()) {
			r.off -= 4
			return 0, newError(KindMalformedLength, "TLV 0x%02x: %d elements cannot fit %d remaining bytes", r.tag, v, r.Remaining())
		}
		return int(v), nil
	default:
		return 0, newError(KindInvalidArgument, "invalid size prefix width %d", prefixBytes)
	}
}

// Finish logs a warning when bytes were left unread and returns their count.
// Leftover bytes never fail the decode.
func (r *Reader) Finish(field string) int {
	n := r.Remaining()
	if n > 0 {
		log.Warn().
			Str("field", field).
			Uint8("tlv", r.tag).
			Int("unread", n).
			Msgf("left '%d' bytes unread when getting the '%s' TLV", n, field)
	}
	return n
}
