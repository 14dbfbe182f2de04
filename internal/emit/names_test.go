package emit

import "testing"

func TestCamel(t *testing.T) {
	tests := map[string]string{
		"UIM Verify PIN":        "UIMVerifyPIN",
		"Get IDs":               "GetIDs",
		"IMEI Software Version": "IMEISoftwareVersion",
		"PIN1 Status":           "PIN1Status",
		"error status":          "ErrorStatus",
		"Result.Error Status":   "ResultErrorStatus",
		"3GPP":                  "X3GPP",
	}
	for in, want := range tests {
		if got := Camel(in); got != want {
			t.Fatalf("Camel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLowerCamel(t *testing.T) {
	tests := map[string]string{
		"PIN ID":              "pinID",
		"Verify Retries Left": "verifyRetriesLeft",
		"Start":               "start",
		"Type":                "typeValue",
		"String":              "stringValue",
		"err":                 "errValue",
		"":                    "value",
	}
	for in, want := range tests {
		if got := LowerCamel(in); got != want {
			t.Fatalf("LowerCamel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUnderscoreAndNick(t *testing.T) {
	if got := Underscore("PIN ID"); got != "pin_id" {
		t.Fatalf("Underscore = %q", got)
	}
	if got := Nick("Enabled Not Verified"); got != "enabled-not-verified" {
		t.Fatalf("Nick = %q", got)
	}
}

func TestBuilderFormatsAndSortsImports(t *testing.T) {
	b := NewBuilder("sample")
	b.Header("// Code generated by qmigen. DO NOT EDIT.")
	b.Import("github.com/danmuck/qmigen/pkg/qmi")
	b.Import("strings")
	b.Import("fmt")
	b.P("func f() string {")
	b.In()
	b.P("return fmt.Sprint(strings.ToUpper(%q), qmi.MessageHeaderSize)", "x")
	b.Out()
	b.P("}")
	got, err := b.Bytes()
	if err != nil {
		t.Fatalf("bytes: %v", err)
	}
	want := `// Code generated by qmigen. DO NOT EDIT.

package sample

import (
	"fmt"
	"strings"

	"github.com/danmuck/qmigen/pkg/qmi"
)

func f() string {
	return fmt.Sprint(strings.ToUpper("x"), qmi.MessageHeaderSize)
}
`
	if string(got) != want {
		t.Fatalf("unexpected output:\n%s", got)
	}
}

func TestBuilderReportsInvalidSource(t *testing.T) {
	b := NewBuilder("sample")
	b.P("func {")
	if _, err := b.Bytes(); err == nil {
		t.Fatalf("expected format error")
	}
}

func TestUnexport(t *testing.T) {
	tests := map[string]string{
		"EchoInput":         "echoInput",
		"UIMVerifyPINInput": "uimVerifyPINInput",
		"GetIDsOutput":      "getIDsOutput",
		"PING":              "ping",
	}
	for in, want := range tests {
		if got := Unexport(in); got != want {
			t.Fatalf("Unexport(%q) = %q, want %q", in, got, want)
		}
	}
}
