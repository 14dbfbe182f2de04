package envelope

import (
	"fmt"

	"github.com/danmuck/qmigen/internal/codec"
	"github.com/danmuck/qmigen/internal/emit"
	"github.com/danmuck/qmigen/internal/prereq"
)

func (bu *Bundle) emitRead(b *emit.Builder, f *Field) {
	name := emit.Quote(f.TLV.Name)
	b.P("func (b *%s) read%s(msg *qmi.Message) error {", bu.Name, f.Name)
	b.In()
	b.P("r, ok := msg.TLV(%s)", bu.TLVConst(f))
	b.L("if !ok {")
	b.In()
	if f.TLV.Mandatory {
		b.P("return qmi.MissingMandatory(%s)", name)
	} else {
		b.L("return nil")
	}
	b.Out()
	b.L("}")
	f.Codec.EmitRead(b, codec.ReadFail(f.TLV.Name), "b.arg"+f.Name)
	b.P("r.Finish(%s)", name)
	b.P("b.%s = true", f.Present)
	b.L("return nil")
	b.Out()
	b.L("}")
	b.Blank()
}

func (bu *Bundle) emitWrite(b *emit.Builder, f *Field) {
	name := emit.Quote(f.TLV.Name)
	b.P("func (b *%s) write%s(msg *qmi.Message) error {", bu.Name, f.Name)
	b.In()
	b.P("if !b.%s {", f.Present)
	b.In()
	if f.TLV.Mandatory {
		b.P("return qmi.MissingMandatoryInput(%s, %s)", name, emit.Quote(bu.Message))
	} else {
		b.L("return nil")
	}
	b.Out()
	b.L("}")
	if len(f.Conds) > 0 {
		b.P("if !(%s) {", prereq.Expression(f.Conds, "b"))
		b.In()
		b.L("return nil")
		b.Out()
		b.L("}")
	}
	b.P("off := msg.BeginTLV(%s)", bu.TLVConst(f))
	f.Codec.EmitWrite(b, codec.WriteFail(f.TLV.Name), "b.arg"+f.Name)
	b.L("if err := msg.EndTLV(off); err != nil {")
	b.In()
	b.P("return qmi.WriteError(%s, err)", name)
	b.Out()
	b.L("}")
	b.L("return nil")
	b.Out()
	b.L("}")
	b.Blank()
}

func (bu *Bundle) emitEncode(b *emit.Builder) {
	b.P("// Encode builds the %s %s. Optional TLVs that were never set, or whose", emit.Quote(bu.Message), bu.Kind)
	b.L("// prerequisites do not hold, are left out.")
	b.P("func (b *%s) Encode() (*qmi.Message, error) {", bu.Name)
	b.In()
	b.P("msg := qmi.NewMessage(%s)", bu.IDConst)
	bu.emitLoop(b, "write", "msg", "return nil, err")
	b.L("return msg, nil")
	b.Out()
	b.L("}")
	b.Blank()
}

func (bu *Bundle) emitParse(b *emit.Builder) {
	b.P("// Parse%s decodes the %s %s. A missing mandatory TLV or malformed", bu.Name, emit.Quote(bu.Message), bu.Kind)
	b.L("// content under any known tag fails the whole message.")
	b.P("func Parse%s(msg *qmi.Message) (*%s, error) {", bu.Name, bu.Name)
	b.In()
	b.P("if msg.ID() != %s {", bu.IDConst)
	b.In()
	b.P("return nil, qmi.UnexpectedMessage(%s, msg.ID())", bu.IDConst)
	b.Out()
	b.L("}")
	b.P("b := &%s{}", bu.Name)
	bu.emitLoop(b, "read", "msg", "b.Release()\nreturn nil, err")
	b.L("return b, nil")
	b.Out()
	b.L("}")
	b.Blank()
}

func (bu *Bundle) emitLoop(b *emit.Builder, prefix, arg, onErr string) {
	if len(bu.Fields) == 0 {
		return
	}
	b.P("for _, step := range []func(*qmi.Message) error{")
	b.In()
	for _, f := range bu.Fields {
		b.P("b.%s%s,", prefix, f.Name)
	}
	b.Out()
	b.L("} {")
	b.In()
	b.P("if err := step(%s); err != nil {", arg)
	b.In()
	for _, line := range splitLines(onErr) {
		b.L(line)
	}
	b.Out()
	b.L("}")
	b.Out()
	b.L("}")
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}

func (bu *Bundle) emitPrintable(b *emit.Builder) {
	if len(bu.Fields) > 0 {
		b.Import("strings")
	}
	for _, f := range bu.Fields {
		b.P("func %s(r *qmi.Reader) string {", bu.printer(f))
		b.In()
		b.L("var out strings.Builder")
		f.Codec.EmitPrintable(b, codec.PrintFail(), f.TLV.Personal)
		b.L("return qmi.PrintableDone(&out, r)")
		b.Out()
		b.L("}")
		b.Blank()
	}

	b.P("var %s = qmi.TLVTable{", bu.PrintersVar())
	b.In()
	for _, f := range bu.Fields {
		personal := ""
		if f.TLV.Personal || f.TLV.Value.ContainsPersonal() {
			personal = " Personal: true,"
		}
		b.P("%s: {Name: %s,%s Print: %s},", bu.TLVConst(f), emit.Quote(f.TLV.Name), personal, bu.printer(f))
	}
	b.Out()
	b.L("}")
	b.Blank()

	b.P("// Printable%s renders a %s %s for diagnostics. It never fails;", bu.Name, emit.Quote(bu.Message), bu.Kind)
	b.L("// undecodable values are annotated inline.")
	b.P("func Printable%s(msg *qmi.Message, linePrefix string) string {", bu.Name)
	b.In()
	b.P("return qmi.Printable(msg, linePrefix, %s, %s)", emit.Quote(bu.Message), bu.PrintersVar())
	b.Out()
	b.L("}")
	b.Blank()
}

// String is a short description used in logs.
func (bu *Bundle) String() string {
	return fmt.Sprintf("%s (%d TLVs)", bu.Name, len(bu.Fields))
}
