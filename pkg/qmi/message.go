// Package qmi is the runtime used by generated QMI service packages.
//
// A Message is the service-level body of a QMI message: a 2-byte message id,
// a 2-byte TLV area length and the TLV records. Records are a 1-byte tag, a
// 2-byte length and that many value bytes. All multi-byte lengths are
// unsigned little-endian.
package qmi

import (
	"encoding/binary"
	"math"
)

const (
	// MessageHeaderSize is the message id plus the TLV area length.
	MessageHeaderSize = 4
	// TLVHeaderSize is the tag plus the record length.
	TLVHeaderSize = 3
	// MaxTLVLength is the largest value a record length can carry.
	MaxTLVLength = math.MaxUint16
)

// Record is one raw TLV inside a message.
type Record struct {
	Tag   uint8
	Value []byte
}

// Message is a QMI service message body.
type Message struct {
	id   uint16
	tlvs []byte
}

// NewMessage returns an empty message with the given id.
func NewMessage(id uint16) *Message {
	return &Message{id: id}
}

// ParseMessage validates b as a message body and returns a message holding a copy of it.
func ParseMessage(b []byte) (*Message, error) {
	if len(b) < MessageHeaderSize {
		return nil, newError(KindTruncatedInput, "short message header: %d bytes", len(b))
	}
	id := binary.LittleEndian.Uint16(b[0:2])
	l := int(binary.LittleEndian.Uint16(b[2:4]))
	if l != len(b)-MessageHeaderSize {
		return nil, newError(KindMalformedLength, "message length %d does not match %d available bytes", l, len(b)-MessageHeaderSize)
	}
	tlvs := make([]byte, l)
	copy(tlvs, b[MessageHeaderSize:])
	if _, err := splitRecords(tlvs); err != nil {
		return nil, err
	}
	return &Message{id: id, tlvs: tlvs}, nil
}

// ID returns the message id.
func (m *Message) ID() uint16 {
	return m.id
}

// Len returns the length of the TLV area.
func (m *Message) Len() int {
	return len(m.tlvs)
}

// Bytes returns the encoded message body.
func (m *Message) Bytes() []byte {
	out := make([]byte, MessageHeaderSize+len(m.tlvs))
	binary.LittleEndian.PutUint16(out[0:2], m.id)
	binary.LittleEndian.PutUint16(out[2:4], uint16(len(m.tlvs)))
	copy(out[MessageHeaderSize:], m.tlvs)
	return out
}

// Records returns every TLV in wire order.
func (m *Message) Records() []Record {
	records, err := splitRecords(m.tlvs)
	if err != nil {
		return nil
	}
	return records
}

// TLV seeks the first record with the given tag and returns a reader over its value.
func (m *Message) TLV(tag uint8) (*Reader, bool) {
	for i := 0; i+TLVHeaderSize <= len(m.tlvs); {
		t := m.tlvs[i]
		l := int(binary.LittleEndian.Uint16(m.tlvs[i+1 : i+3]))
		i += TLVHeaderSize
		if len(m.tlvs)-i < l {
			return nil, false
		}
		if t == tag {
			return NewReader(tag, m.tlvs[i:i+l]), true
		}
		i += l
	}
	return nil, false
}

func splitRecords(tlvs []byte) ([]Record, error) {
	records := make([]Record, 0, 4)
	for i := 0; i < len(tlvs); {
		if len(tlvs)-i < TLVHeaderSize {
			return nil, newError(KindTruncatedInput, "short TLV header at offset %d", i)
		}
		tag := tlvs[i]
		l := int(binary.LittleEndian.Uint16(tlvs[i+1 : i+3]))
		i += TLVHeaderSize
		if l > len(tlvs)-i {
			return nil, newError(KindMalformedLength, "TLV 0x%02x length %d exceeds %d remaining bytes", tag, l, len(tlvs)-i)
		}
		records = append(records, Record{Tag: tag, Value: tlvs[i : i+l]})
		i += l
	}
	return records, nil
}

// MessageKind tells requests, responses and indications apart, since
// indications may reuse request ids.
type MessageKind int

const (
	Request MessageKind = iota
	Response
	Indication
)

func (k MessageKind) String() string {
	switch k {
	case Request:
		return "request"
	case Response:
		return "response"
	case Indication:
		return "indication"
	default:
		return "unknown"
	}
}
