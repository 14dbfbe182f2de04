package codegen

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/qmigen/internal/definition"
	"github.com/danmuck/qmigen/internal/testutil/testlog"
	"github.com/danmuck/qmigen/internal/version"
)

func loadService(t *testing.T, name string) *definition.Service {
	t.Helper()
	dir := filepath.Join("..", "..", "data")
	common, err := definition.LoadFile(filepath.Join(dir, "qmi-common.yaml"))
	if err != nil {
		t.Fatalf("load common: %v", err)
	}
	doc, err := definition.LoadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("load %s: %v", name, err)
	}
	svc, err := definition.Resolve(doc, common)
	if err != nil {
		t.Fatalf("resolve %s: %v", name, err)
	}
	return svc
}

// declared parses src and returns its top-level names. Methods are listed as
// Type.Method.
func declared(t *testing.T, src []byte) map[string]bool {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "generated.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, src)
	}
	out := make(map[string]bool)
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			name := d.Name.Name
			if d.Recv != nil && len(d.Recv.List) == 1 {
				typ := d.Recv.List[0].Type
				if star, ok := typ.(*ast.StarExpr); ok {
					typ = star.X
				}
				if id, ok := typ.(*ast.Ident); ok {
					name = id.Name + "." + name
				}
			}
			out[name] = true
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					out[s.Name.Name] = true
				case *ast.ValueSpec:
					for _, n := range s.Names {
						out[n.Name] = true
					}
				}
			}
		}
	}
	return out
}

func generate(t *testing.T, svc *definition.Service, opts Options) []byte {
	t.Helper()
	src, err := New(opts).Generate(svc)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return src
}

func TestGenerateTestService(t *testing.T) {
	testlog.Start(t)
	src := generate(t, loadService(t, "qmi-service-test.yaml"), Options{Package: "testsvc"})
	names := declared(t, src)

	for _, want := range []string{
		"Service", "MessageEcho", "IndicationPing",
		"EchoMode", "EchoModePlain", "EchoModeDetailed", "EchoMode.String",
		"Status", "ProtocolError",
		"EchoInput", "EchoOutput", "PingIndication",
		"EchoInputItemsElement", "EchoInputTLVDetail", "EchoOutputTLVResult",
		"EchoInput.GetLabel", "EchoInput.SetCode", "EchoInput.GetItemsRefs", "EchoInput.SetItemsRefs",
		"EchoInput.Encode", "ParseEchoInput", "EchoInput.Release", "PrintableEchoInput",
		"EchoOutput.GetWindow", "EchoOutput.SetResult", "ParseEchoOutput",
		"PingIndication.GetSequenceNumber", "ParsePingIndication",
		"PrintableMessage",
	} {
		if !names[want] {
			t.Fatalf("missing declaration %s in:\n%s", want, src)
		}
	}
	if names["EchoOutput.GetWindowRefs"] {
		t.Fatalf("compat accessors only exist for struct arrays")
	}

	text := string(src)
	for _, want := range []string{
		"// Code generated by qmigen. DO NOT EDIT.",
		`"github.com/danmuck/qmigen/pkg/qmi"`,
		"if !(b.argModeSet && b.argMode == 1) {",
		"func (b *EchoOutput) GetWindow() (start uint16, stop uint16, err error) {",
		"b.argWindowReserved = 0",
		"return qmi.MissingMandatoryInput(\"Label\", \"Echo\")",
		"r.Finish(\"Items\")",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("missing %q in:\n%s", want, src)
		}
	}
}

func TestGenerateDMSGatesOnAPIVersion(t *testing.T) {
	testlog.Start(t)
	svc := loadService(t, "qmi-service-dms.yaml")

	full := declared(t, generate(t, svc, Options{Package: "dms"}))
	if !full["GetIDsOutput.GetIMEISoftwareVersion"] {
		t.Fatalf("IMEI Software Version must be emitted without a limit")
	}

	gated := declared(t, generate(t, svc, Options{
		Package: "dms",
		Gate:    version.Gate{Limit: version.MustParse("1.25")},
	}))
	if gated["GetIDsOutput.GetIMEISoftwareVersion"] {
		t.Fatalf("IMEI Software Version is since 1.26 and must be hidden at 1.25")
	}
	if !gated["GetIDsOutput.GetESN"] {
		t.Fatalf("ESN must stay visible")
	}
}

func TestGenerateCompatFollowsFloor(t *testing.T) {
	testlog.Start(t)
	svc := loadService(t, "qmi-service-test.yaml")

	below := declared(t, generate(t, svc, Options{Gate: version.Gate{Limit: version.MustParse("1.31")}}))
	if !below["EchoInput.GetItems"] || below["EchoInput.GetItemsRefs"] {
		t.Fatalf("compat accessors must not appear below the compat floor")
	}
	at := declared(t, generate(t, svc, Options{Gate: version.Gate{Limit: version.MustParse("1.32")}}))
	if !at["EchoInput.GetItemsRefs"] {
		t.Fatalf("compat accessors must appear at the compat floor")
	}
	hidden := declared(t, generate(t, svc, Options{Gate: version.Gate{Limit: version.MustParse("1.3")}}))
	if hidden["EchoInput.GetItems"] || hidden["EchoInput.GetItemsRefs"] {
		t.Fatalf("Items is since 1.4 and must be hidden at 1.3")
	}
	if !hidden["EchoInput.GetDetail"] {
		t.Fatalf("Detail is since 1.2 and must stay visible at 1.3")
	}
}

func TestGenerateHidesDependentsOfHiddenTLVs(t *testing.T) {
	testlog.Start(t)
	doc, err := definition.Parse([]byte(`- name: Gate
  type: Service
- name: M
  type: Message
  id: "0x0010"
  since: "1.0"
  input:
    - name: Mode
      id: "0x10"
      type: TLV
      since: "1.5"
      format: guint8
    - name: Extra
      id: "0x11"
      type: TLV
      since: "1.0"
      format: guint8
      prerequisites:
        - field: Mode
          operation: "=="
          value: "1"
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	svc, err := definition.Resolve(doc, nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	names := declared(t, generate(t, svc, Options{Gate: version.Gate{Limit: version.MustParse("1.0")}}))
	if names["MInput.GetMode"] || names["MInput.GetExtra"] {
		t.Fatalf("Extra depends on the hidden Mode TLV and must be hidden too")
	}
	if !names["MInput"] || !names["MInput.Encode"] {
		t.Fatalf("the bundle itself stays")
	}

	names = declared(t, generate(t, svc, Options{}))
	if !names["MInput.GetMode"] || !names["MInput.GetExtra"] {
		t.Fatalf("without a limit both TLVs are emitted")
	}
}

func TestGenerateMessageFilter(t *testing.T) {
	testlog.Start(t)
	svc := loadService(t, "qmi-service-test.yaml")

	names := declared(t, generate(t, svc, Options{Messages: []string{"Ping"}}))
	if !names["PingIndication"] || names["EchoInput"] {
		t.Fatalf("filter must keep only Ping")
	}
	if !names["EchoMode"] {
		t.Fatalf("declared enums are emitted even when unused")
	}

	_, err := New(Options{Messages: []string{"Nope"}}).Generate(svc)
	if !errors.Is(err, ErrUnknownMessage) {
		t.Fatalf("expected ErrUnknownMessage, got %v", err)
	}
}

func TestGenerateMessageAboveLimitIsSkipped(t *testing.T) {
	testlog.Start(t)
	svc := loadService(t, "qmi-service-test.yaml")
	names := declared(t, generate(t, svc, Options{Gate: version.Gate{Limit: version.MustParse("0.9")}}))
	if names["EchoInput"] || names["PingIndication"] || names["MessageEcho"] {
		t.Fatalf("messages since 1.0 must be hidden at 0.9")
	}
	if !names["PrintableMessage"] {
		t.Fatalf("the dispatcher is always emitted")
	}
}

func TestGenerateDefaultPackageName(t *testing.T) {
	testlog.Start(t)
	src := generate(t, loadService(t, "qmi-service-dms.yaml"), Options{})
	if !strings.Contains(string(src), "\npackage dms\n") {
		t.Fatalf("expected package dms:\n%s", src)
	}
}
