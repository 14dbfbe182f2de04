package qmi

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/danmuck/qmigen/internal/testutil/testlog"
)

func TestMessageRoundTripPreservesRecords(t *testing.T) {
	testlog.Start(t)
	msg := NewMessage(0x0028)
	off := msg.BeginTLV(0x01)
	msg.PutUint8(0x01)
	if err := msg.PutString(1, "1234", 0); err != nil {
		t.Fatalf("put string: %v", err)
	}
	if err := msg.EndTLV(off); err != nil {
		t.Fatalf("end tlv: %v", err)
	}

	want := []byte{0x28, 0x00, 0x09, 0x00, 0x01, 0x06, 0x00, 0x01, 0x04, '1', '2', '3', '4'}
	if got := msg.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("unexpected encoding: % x", got)
	}

	parsed, err := ParseMessage(want)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.ID() != 0x0028 {
		t.Fatalf("unexpected id: 0x%04x", parsed.ID())
	}
	recs := parsed.Records()
	if len(recs) != 1 || recs[0].Tag != 0x01 || len(recs[0].Value) != 6 {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestParseMessageTruncatedHeaderIsDeterministic(t *testing.T) {
	testlog.Start(t)
	_, err := ParseMessage([]byte{0x01, 0x00, 0x05})
	if !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("expected ErrTruncatedInput, got %v", err)
	}
}

func TestParseMessageRecordLengthPastEnd(t *testing.T) {
	testlog.Start(t)
	// tag=0x10, len=5, value only 2 bytes
	b := []byte{0x01, 0x00, 0x05, 0x00, 0x10, 0x05, 0x00, 'a', 'b'}
	_, err := ParseMessage(b)
	if !errors.Is(err, ErrMalformedLength) {
		t.Fatalf("expected ErrMalformedLength, got %v", err)
	}
}

func TestParseMessageShortRecordHeader(t *testing.T) {
	testlog.Start(t)
	b := []byte{0x01, 0x00, 0x02, 0x00, 0x10, 0x05}
	_, err := ParseMessage(b)
	if !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("expected ErrTruncatedInput, got %v", err)
	}
}

func TestParseMessageLengthMismatch(t *testing.T) {
	testlog.Start(t)
	b := []byte{0x01, 0x00, 0x09, 0x00, 0x10, 0x00, 0x00}
	_, err := ParseMessage(b)
	if !errors.Is(err, ErrMalformedLength) {
		t.Fatalf("expected ErrMalformedLength, got %v", err)
	}
}

func TestTLVSeekFindsFirstMatchAndMissingTag(t *testing.T) {
	testlog.Start(t)
	msg := NewMessage(1)
	for _, tag := range []uint8{0x02, 0x10, 0x10} {
		off := msg.BeginTLV(tag)
		msg.PutUint8(tag)
		if err := msg.EndTLV(off); err != nil {
			t.Fatalf("end tlv: %v", err)
		}
	}
	r, ok := msg.TLV(0x10)
	if !ok {
		t.Fatalf("expected tag 0x10")
	}
	if r.Remaining() != 1 {
		t.Fatalf("unexpected value length: %d", r.Remaining())
	}
	if _, ok := msg.TLV(0x11); ok {
		t.Fatalf("tag 0x11 should be absent")
	}
}

func TestEndTLVRejectsOversizeValue(t *testing.T) {
	testlog.Start(t)
	msg := NewMessage(1)
	off := msg.BeginTLV(0x10)
	msg.PutBytes(make([]byte, MaxTLVLength+1))
	err := msg.EndTLV(off)
	if !errors.Is(err, ErrMalformedLength) {
		t.Fatalf("expected ErrMalformedLength, got %v", err)
	}
}

func TestPutStringConstraints(t *testing.T) {
	testlog.Start(t)
	msg := NewMessage(1)
	if err := msg.PutString(0, "abc", 4); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for short fixed string, got %v", err)
	}
	if err := msg.PutString(0, "abcde", 4); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for long fixed string, got %v", err)
	}
	if err := msg.PutString(1, strings.Repeat("x", 256), 0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for 1-byte prefix overflow, got %v", err)
	}
	if msg.Len() != 0 {
		t.Fatalf("failed writes must not append, got %d bytes", msg.Len())
	}
	if err := msg.PutString(2, strings.Repeat("x", 256), 0); err != nil {
		t.Fatalf("2-byte prefix should hold 256 bytes: %v", err)
	}
	if msg.Len() != 258 {
		t.Fatalf("unexpected length: %d", msg.Len())
	}
}

func TestPutSizeWidths(t *testing.T) {
	testlog.Start(t)
	msg := NewMessage(1)
	if err := msg.PutSize(1, 3); err != nil {
		t.Fatalf("put size: %v", err)
	}
	if err := msg.PutSize(2, 0x0102); err != nil {
		t.Fatalf("put size: %v", err)
	}
	if err := msg.PutSize(4, 1); err != nil {
		t.Fatalf("put size: %v", err)
	}
	want := []byte{0x01, 0x00, 0x07, 0x00, 0x03, 0x02, 0x01, 0x01, 0x00, 0x00, 0x00}
	if !bytes.Equal(msg.Bytes(), want) {
		t.Fatalf("unexpected encoding: % x", msg.Bytes())
	}
	if err := msg.PutSize(1, 256); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if err := msg.PutSize(3, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for bad width, got %v", err)
	}
}

func TestErrorKindsMatchThroughWrapping(t *testing.T) {
	err := ReadError("Info", FieldNotFound("Info"))
	if !errors.Is(err, ErrFieldNotFound) {
		t.Fatalf("expected ErrFieldNotFound, got %v", err)
	}
	if errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("kinds must not cross-match")
	}
	if KindOf(err) != KindFieldNotFound {
		t.Fatalf("unexpected kind: %v", KindOf(err))
	}
	var qe *Error
	if !errors.As(err, &qe) || qe.Kind != KindFieldNotFound {
		t.Fatalf("expected *Error in chain, got %T", err)
	}
	if KindOf(errors.New("plain")) != 0 {
		t.Fatalf("plain errors have no kind")
	}
}
