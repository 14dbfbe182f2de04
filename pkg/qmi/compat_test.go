package qmi

import (
	"errors"
	"testing"
)

type element struct {
	Kind uint16
	Text string
}

func TestRefsCopiesElements(t *testing.T) {
	src := []element{{Kind: 1, Text: "a"}, {Kind: 2, Text: "b"}}
	refs := Refs(src)
	if len(refs) != 2 || refs[1].Text != "b" {
		t.Fatalf("unexpected refs: %+v", refs)
	}
	refs[0].Kind = 9
	if src[0].Kind != 1 {
		t.Fatalf("refs must not alias the source")
	}
	if Refs[element](nil) != nil {
		t.Fatalf("nil in, nil out")
	}
}

func TestDerefRejectsNil(t *testing.T) {
	got, err := Deref([]*element{{Kind: 1}, {Kind: 2}})
	if err != nil || len(got) != 2 || got[1].Kind != 2 {
		t.Fatalf("deref: %v %+v", err, got)
	}
	if _, err := Deref([]*element{{Kind: 1}, nil}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
