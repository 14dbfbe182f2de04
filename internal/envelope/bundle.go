// Package envelope emits the TLV framing around each codec: tag lookup,
// mandatory and optional handling, prerequisites, accessors and release.
package envelope

import (
	"errors"
	"fmt"
	"slices"

	"github.com/danmuck/qmigen/internal/codec"
	"github.com/danmuck/qmigen/internal/definition"
	"github.com/danmuck/qmigen/internal/emit"
	"github.com/danmuck/qmigen/internal/prereq"
	"github.com/danmuck/qmigen/internal/version"
	"github.com/rs/zerolog/log"
)

// Bundle is the generated container of one message direction.
type Bundle struct {
	// Name is the Go type, e.g. "UIMVerifyPINInput".
	Name string
	// Message is the definition name used in error messages.
	Message string
	// IDConst names the message id constant.
	IDConst string
	Kind    string
	Since   version.Version
	Fields  []*Field
	gate    version.Gate
}

// Field is one TLV of a bundle with its codec and storage.
type Field struct {
	TLV     *definition.TLV
	Name    string
	Codec   codec.Codec
	Slots   []codec.Slot
	Conds   []prereq.Bound
	Compat  bool
	Present string
}

// NewBundle builds the codecs of every TLV visible through gate. TLVs whose
// prerequisites reference a hidden TLV are hidden too.
func NewBundle(name, message, idConst, kind string, since version.Version, tlvs []*definition.TLV, gate version.Gate) (*Bundle, error) {
	bundle := &Bundle{Name: name, Message: message, IDConst: idConst, Kind: kind, Since: since, gate: gate}
	for _, tlv := range tlvs {
		if !gate.Visible(tlv.Since) {
			log.Debug().Str("bundle", name).Str("tlv", tlv.Name).Stringer("since", tlv.Since).Msg("TLV above the API limit")
			continue
		}
		goName := emit.Camel(tlv.Name)
		c, err := codec.New(tlv.Value, name+goName, false)
		if err != nil {
			return nil, fmt.Errorf("%s: TLV '%s': %w", name, tlv.Name, err)
		}
		f := &Field{
			TLV:     tlv,
			Name:    goName,
			Codec:   c,
			Present: "arg" + goName + "Set",
		}
		f.Slots = c.Slots("arg"+goName, "value")
		for _, s := range f.Slots {
			if s.Visible && structArray(s.Codec) {
				f.Compat = true
			}
		}
		bound, err := prereq.Bind(tlv.Prerequisites, earlier(bundle.Fields))
		if err != nil {
			if errors.Is(err, prereq.ErrForwardReference) && !gate.Limit.IsZero() {
				log.Debug().Str("bundle", name).Str("tlv", tlv.Name).Err(err).Msg("TLV prerequisites reference a hidden TLV")
				continue
			}
			return nil, fmt.Errorf("%s: TLV '%s': %w", name, tlv.Name, err)
		}
		f.Conds = bound
		bundle.Fields = append(bundle.Fields, f)
	}
	return bundle, nil
}

func structArray(c codec.Codec) bool {
	a, ok := c.(interface{ StructElement() bool })
	return ok && a.StructElement()
}

// earlier resolves prerequisite paths against the fields already added.
type earlier []*Field

func (e earlier) Slot(path []string) (prereq.Slot, bool) {
	for _, f := range e {
		if f.TLV.Name != path[0] {
			continue
		}
		for _, s := range f.Slots {
			if !slices.Equal(s.Path, path[1:]) {
				continue
			}
			v := s.Codec.Value()
			return prereq.Slot{
				Presence: f.Present,
				Value:    s.Field,
				Integer:  v.Format.IsInteger(),
				Signed:   v.Format.Signed(),
				Bits:     v.Format.Bits(),
			}, true
		}
	}
	return prereq.Slot{}, false
}

// TLVConst names the id constant of f.
func (bu *Bundle) TLVConst(f *Field) string {
	return bu.Name + "TLV" + f.Name
}

func (bu *Bundle) printer(f *Field) string {
	return "print" + bu.Name + f.Name
}

// PrintersVar names the printable table of the bundle.
func (bu *Bundle) PrintersVar() string {
	return emit.Unexport(bu.Name) + "Printers"
}

// Emit writes the whole bundle: ids, types, storage, accessors, codecs.
func (bu *Bundle) Emit(b *emit.Builder) {
	b.Import(runtimeImport)
	bu.emitConsts(b)
	for _, f := range bu.Fields {
		f.Codec.EmitTypes(b)
	}
	bu.emitStruct(b)
	for _, f := range bu.Fields {
		bu.emitGetter(b, f)
		bu.emitSetter(b, f)
		if f.Compat && bu.gate.CompatVisible(f.TLV.Since) {
			bu.emitCompat(b, f)
		}
	}
	bu.emitEncode(b)
	bu.emitParse(b)
	bu.emitRelease(b)
	for _, f := range bu.Fields {
		bu.emitRead(b, f)
		bu.emitWrite(b, f)
	}
	bu.emitPrintable(b)
}

var runtimeImport = "github.com/danmuck/qmigen/pkg/qmi"

// SetRuntimeImport changes the import path of the runtime package.
func SetRuntimeImport(path string) {
	if path != "" {
		runtimeImport = path
	}
}

// RuntimeImport returns the current runtime import path.
func RuntimeImport() string {
	return runtimeImport
}

func (bu *Bundle) emitConsts(b *emit.Builder) {
	if len(bu.Fields) == 0 {
		return
	}
	b.P("// TLV ids of %s.", bu.Name)
	b.L("const (")
	b.In()
	for _, f := range bu.Fields {
		b.P("%s uint8 = 0x%02x", bu.TLVConst(f), f.TLV.ID)
	}
	b.Out()
	b.L(")")
	b.Blank()
}

func (bu *Bundle) emitStruct(b *emit.Builder) {
	b.P("// %s holds the TLVs of the %s %s.", bu.Name, emit.Quote(bu.Message), bu.Kind)
	b.L("//")
	b.P("// Since: %s", bu.Since)
	b.P("type %s struct {", bu.Name)
	b.In()
	for _, f := range bu.Fields {
		for _, s := range f.Slots {
			b.P("%s %s", s.Field, s.Codec.StorageType())
		}
		b.P("%s bool", f.Present)
	}
	b.Out()
	b.L("}")
	b.Blank()
}
