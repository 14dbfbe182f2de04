// Package codegen walks a resolved service and assembles its generated Go file.
package codegen

import (
	"errors"
	"fmt"
	"time"

	"github.com/danmuck/qmigen/internal/definition"
	"github.com/danmuck/qmigen/internal/emit"
	"github.com/danmuck/qmigen/internal/envelope"
	"github.com/danmuck/qmigen/internal/observability"
	"github.com/danmuck/qmigen/internal/version"
	"github.com/rs/zerolog/log"
)

// Header marks generated files.
const Header = "// Code generated by qmigen. DO NOT EDIT."

var ErrUnknownMessage = errors.New("codegen: message filter names an unknown message")

// Options controls what is emitted for one service.
type Options struct {
	Package string
	Gate    version.Gate
	// Messages limits generation to the named messages and indications.
	Messages []string
	// Source is noted in the file header when set.
	Source string
}

// Generator emits one Go file per service.
type Generator struct {
	opts Options
}

func New(opts Options) *Generator {
	if opts.Gate.CompatFloor.IsZero() {
		opts.Gate.CompatFloor = version.DefaultCompatFloor
	}
	return &Generator{opts: opts}
}

type unit struct {
	msg     *definition.Message
	bundles []*envelope.Bundle
}

// Generate returns the gofmt'ed source of svc.
func (g *Generator) Generate(svc *definition.Service) ([]byte, error) {
	start := time.Now()
	out, err := g.generate(svc)
	observability.RecordDuration(svc.Name, time.Since(start))
	if err != nil {
		observability.RecordFailure(svc.Name, "generate")
		return nil, err
	}
	return out, nil
}

func (g *Generator) generate(svc *definition.Service) ([]byte, error) {
	pkg := g.opts.Package
	if pkg == "" {
		pkg = emit.Underscore(svc.Name)
	}
	selected, err := g.selected(svc)
	if err != nil {
		return nil, err
	}

	var units []unit
	for _, msg := range append(append([]*definition.Message(nil), svc.Messages...), svc.Indications...) {
		if selected != nil && !selected[msg.Name] {
			observability.RecordSkipped(svc.Name, "filter")
			continue
		}
		if !g.opts.Gate.Visible(msg.Since) {
			log.Debug().Str("service", svc.Name).Str("message", msg.Name).Stringer("since", msg.Since).Msg("message above the API limit")
			observability.RecordSkipped(svc.Name, "api_version")
			continue
		}
		u, err := g.unit(msg)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}

	b := emit.NewBuilder(pkg)
	b.Header(Header)
	if g.opts.Source != "" {
		b.Header("// Source: " + g.opts.Source)
	}
	b.Import(envelope.RuntimeImport())

	b.P("// Service is the QMI service these messages belong to.")
	b.P("const Service = %s", emit.Quote(svc.Name))
	b.Blank()
	emitMessageIDs(b, units)
	for _, e := range g.enums(svc, units) {
		emitEnum(b, e)
	}
	for _, u := range units {
		tlvs := 0
		for _, bu := range u.bundles {
			bu.Emit(b)
			tlvs += len(bu.Fields)
		}
		observability.RecordMessage(svc.Name, u.msg.Kind.String(), tlvs)
	}
	emitDispatch(b, units)

	src, err := b.Bytes()
	if err != nil {
		return nil, err
	}
	log.Info().Str("service", svc.Name).Str("package", pkg).Int("messages", len(units)).Int("bytes", len(src)).Msg("service generated")
	return src, nil
}

func (g *Generator) selected(svc *definition.Service) (map[string]bool, error) {
	if len(g.opts.Messages) == 0 {
		return nil, nil
	}
	known := make(map[string]bool)
	for _, m := range append(append([]*definition.Message(nil), svc.Messages...), svc.Indications...) {
		known[m.Name] = true
	}
	out := make(map[string]bool, len(g.opts.Messages))
	for _, name := range g.opts.Messages {
		if !known[name] {
			return nil, fmt.Errorf("%w: '%s' in service '%s'", ErrUnknownMessage, name, svc.Name)
		}
		out[name] = true
	}
	return out, nil
}

func messageConst(msg *definition.Message) string {
	if msg.Kind == definition.KindIndication {
		return "Indication" + emit.Camel(msg.Name)
	}
	return "Message" + emit.Camel(msg.Name)
}

func (g *Generator) unit(msg *definition.Message) (unit, error) {
	u := unit{msg: msg}
	base := emit.Camel(msg.Name)
	idConst := messageConst(msg)
	type dir struct {
		name, kind string
		tlvs       []*definition.TLV
	}
	var dirs []dir
	if msg.Kind == definition.KindIndication {
		dirs = []dir{{name: base + "Indication", kind: "indication", tlvs: msg.Output}}
	} else {
		dirs = []dir{
			{name: base + "Input", kind: "request", tlvs: msg.Input},
			{name: base + "Output", kind: "response", tlvs: msg.Output},
		}
	}
	for _, d := range dirs {
		bu, err := envelope.NewBundle(d.name, msg.Name, idConst, d.kind, msg.Since, d.tlvs, g.opts.Gate)
		if err != nil {
			return unit{}, err
		}
		u.bundles = append(u.bundles, bu)
	}
	return u, nil
}

func emitMessageIDs(b *emit.Builder, units []unit) {
	if len(units) == 0 {
		return
	}
	b.L("// Message ids.")
	b.L("const (")
	b.In()
	for _, u := range units {
		b.P("%s uint16 = 0x%04x", messageConst(u.msg), u.msg.ID)
	}
	b.Out()
	b.L(")")
	b.Blank()
}

// enums returns the enums used by emitted values plus every other enum the
// gate lets through, in declaration order.
func (g *Generator) enums(svc *definition.Service, units []unit) []*definition.Enum {
	used := make(map[*definition.Enum]bool)
	var walk func(v *definition.Value)
	walk = func(v *definition.Value) {
		if v == nil {
			return
		}
		if v.Enum != nil {
			used[v.Enum] = true
		}
		for _, m := range v.Members {
			walk(m)
		}
		walk(v.Element)
	}
	for _, u := range units {
		for _, bu := range u.bundles {
			for _, f := range bu.Fields {
				walk(f.TLV.Value)
			}
		}
	}
	var out []*definition.Enum
	for _, e := range svc.Enums {
		if used[e] || g.opts.Gate.Visible(e.Since) {
			out = append(out, e)
		}
	}
	return out
}

func emitEnum(b *emit.Builder, e *definition.Enum) {
	typ := emit.Camel(e.Name)
	underlying := goInteger(e.Format)
	b.P("// %s enumerates the %s values.", typ, emit.Quote(e.Name))
	if !e.Since.IsZero() {
		b.L("//")
		b.P("// Since: %s", e.Since)
	}
	b.P("type %s %s", typ, underlying)
	b.Blank()
	b.L("const (")
	b.In()
	for _, v := range e.Values {
		b.P("%s%s %s = %d", typ, emit.Camel(v.Name), typ, v.Value)
	}
	b.Out()
	b.L(")")
	b.Blank()

	b.Import("fmt")
	b.L("// String returns the nickname of the value.")
	b.P("func (v %s) String() string {", typ)
	b.In()
	b.L("switch v {")
	seen := make(map[int64]bool)
	for _, v := range e.Values {
		if seen[v.Value] {
			continue
		}
		seen[v.Value] = true
		b.P("case %s%s:", typ, emit.Camel(v.Name))
		b.In()
		b.P("return %s", emit.Quote(emit.Nick(v.Name)))
		b.Out()
	}
	b.L("default:")
	b.In()
	b.P(`return fmt.Sprintf("unknown (%%d)", %s(v))`, underlying)
	b.Out()
	b.L("}")
	b.Out()
	b.L("}")
	b.Blank()
}

func goInteger(f definition.Format) string {
	bits := f.Bits()
	if f.Signed() {
		return fmt.Sprintf("int%d", bits)
	}
	return fmt.Sprintf("uint%d", bits)
}

func emitDispatch(b *emit.Builder, units []unit) {
	byKind := map[string][]*envelope.Bundle{}
	for _, u := range units {
		for _, bu := range u.bundles {
			byKind[bu.Kind] = append(byKind[bu.Kind], bu)
		}
	}
	kinds := map[string]string{"request": "qmi.Request", "response": "qmi.Response", "indication": "qmi.Indication"}
	order := []string{"request", "response", "indication"}

	b.L("// PrintableMessage renders any message of the service. ok is false for ids")
	b.L("// the service does not define for kind.")
	b.L("func PrintableMessage(msg *qmi.Message, linePrefix string, kind qmi.MessageKind) (string, bool) {")
	b.In()
	b.L("switch kind {")
	for _, k := range order {
		bundles := byKind[k]
		if len(bundles) == 0 {
			continue
		}
		b.P("case %s:", kinds[k])
		b.In()
		b.L("switch msg.ID() {")
		for _, bu := range bundles {
			b.P("case %s:", bu.IDConst)
			b.In()
			b.P("return Printable%s(msg, linePrefix), true", bu.Name)
			b.Out()
		}
		b.L("}")
		b.Out()
	}
	b.L("}")
	b.L(`return "", false`)
	b.Out()
	b.L("}")
}
