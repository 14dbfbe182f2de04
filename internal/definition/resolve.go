package definition

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/danmuck/qmigen/internal/prereq"
	"github.com/danmuck/qmigen/internal/version"
	"github.com/rs/zerolog/log"
)

type position int

const (
	posTLV position = iota
	posMember
	posStructMember
	posElement
)

type resolver struct {
	tlvs    map[string]FieldSpec
	prereqs *prereq.Library
	enums   []*Enum
	symbols map[string]int64
}

// Resolve turns a service document into an immutable tree. Shared TLVs,
// prerequisites and enums are looked up in common first, then in doc. common
// may be nil.
func Resolve(doc *Document, common *Document) (*Service, error) {
	if doc == nil {
		return nil, invalid("", "", ErrInvalidDefinition, "no document")
	}
	r := &resolver{
		tlvs:    make(map[string]FieldSpec),
		prereqs: prereq.NewLibrary(),
		symbols: make(map[string]int64),
	}
	for _, d := range []*Document{common, doc} {
		if d == nil {
			continue
		}
		if err := r.collectShared(d); err != nil {
			return nil, err
		}
	}

	svc := &Service{Enums: r.enums}
	messages := make(map[string]bool)
	ids := make(map[string]bool)
	for _, obj := range doc.Objects {
		switch obj.Type {
		case TypeService:
			if svc.Name != "" {
				return nil, invalid("Service '"+obj.Name+"'", "", ErrInvalidDefinition, "service already declared as '%s'", svc.Name)
			}
			svc.Name = strings.TrimSpace(obj.Name)
		case TypeMessage, TypeIndication:
			msg, err := r.message(obj)
			if err != nil {
				return nil, err
			}
			key := msg.Kind.String() + ":" + msg.Name
			if messages[key] {
				return nil, invalid(containerName(msg.Kind, msg.Name), "", ErrInvalidDefinition, "declared twice")
			}
			messages[key] = true
			idKey := fmt.Sprintf("%s:%d", msg.Kind, msg.ID)
			if ids[idKey] {
				return nil, invalid(containerName(msg.Kind, msg.Name), "", ErrDuplicateID, "id 0x%04x", msg.ID)
			}
			ids[idKey] = true
			if msg.Kind == KindIndication {
				svc.Indications = append(svc.Indications, msg)
			} else {
				svc.Messages = append(svc.Messages, msg)
			}
		case TypeEnum, TypeTLV, TypePrerequisite:
		default:
			return nil, invalid("", "", ErrInvalidDefinition, "unknown object type '%s' for '%s'", obj.Type, obj.Name)
		}
	}
	if svc.Name == "" {
		return nil, invalid("", "", ErrInvalidDefinition, "no Service object")
	}
	log.Debug().
		Str("service", svc.Name).
		Int("messages", len(svc.Messages)).
		Int("indications", len(svc.Indications)).
		Int("enums", len(svc.Enums)).
		Msg("definition resolved")
	return svc, nil
}

func (r *resolver) collectShared(d *Document) error {
	for _, obj := range d.Objects {
		switch obj.Type {
		case TypeTLV:
			if obj.CommonRef == "" {
				return invalid("", obj.Name, ErrInvalidDefinition, "shared TLV without common-ref")
			}
			if _, ok := r.tlvs[obj.CommonRef]; ok {
				return invalid("", obj.Name, ErrInvalidDefinition, "common-ref '%s' declared twice", obj.CommonRef)
			}
			spec := obj.FieldSpec
			spec.CommonRef = ""
			r.tlvs[obj.CommonRef] = spec
		case TypePrerequisite:
			if err := r.prereqs.Add(obj.prerequisite()); err != nil {
				return invalid("", "", err, "shared prerequisite '%s'", obj.Name)
			}
		case TypeEnum:
			e, err := r.enum(obj)
			if err != nil {
				return err
			}
			r.enums = append(r.enums, e)
		}
	}
	return nil
}

func (r *resolver) enum(obj Object) (*Enum, error) {
	name := strings.TrimSpace(obj.Name)
	where := "Enum '" + name + "'"
	if name == "" {
		return nil, invalid(where, "", ErrInvalidDefinition, "missing name")
	}
	for _, e := range r.enums {
		if e.Name == name {
			return nil, invalid(where, "", ErrInvalidDefinition, "declared twice")
		}
	}
	e := &Enum{Name: name, Format: FormatUint32}
	if obj.Format != "" {
		e.Format = Format(obj.Format)
		if !e.Format.IsInteger() {
			return nil, invalid(where, "", ErrInvalidDefinition, "enum format '%s' is not an integer", obj.Format)
		}
	}
	if obj.Since != "" {
		v, err := version.Parse(obj.Since)
		if err != nil {
			return nil, invalid(where, "", err, "since")
		}
		e.Since = v
	}
	if len(obj.Values) == 0 {
		return nil, invalid(where, "", ErrInvalidDefinition, "no values")
	}
	seen := make(map[string]bool)
	for _, raw := range obj.Values {
		vname := strings.TrimSpace(raw.Name)
		if vname == "" || seen[vname] {
			return nil, invalid(where, "", ErrInvalidDefinition, "missing or duplicate value name '%s'", vname)
		}
		seen[vname] = true
		v, err := strconv.ParseInt(strings.TrimSpace(raw.Value), 0, 64)
		if err != nil {
			return nil, invalid(where, "", ErrInvalidDefinition, "value '%s' of '%s' is not an integer", raw.Value, vname)
		}
		if !e.Format.Holds(v) {
			return nil, invalid(where, "", ErrInvalidDefinition, "value %d of '%s' does not fit %s", v, vname, e.Format)
		}
		e.Values = append(e.Values, EnumValue{Name: vname, Value: v})
		r.symbols[name+"."+vname] = v
		if _, ok := r.symbols[vname]; !ok {
			r.symbols[vname] = v
		}
	}
	return e, nil
}

func (r *resolver) lookupEnum(name string) (*Enum, bool) {
	for _, e := range r.enums {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

func (r *resolver) lookupSymbol(sym string) (int64, bool) {
	v, ok := r.symbols[sym]
	return v, ok
}

func containerName(kind MessageKind, name string) string {
	if kind == KindIndication {
		return "Indication '" + name + "'"
	}
	return "Message '" + name + "'"
}

func (r *resolver) message(obj Object) (*Message, error) {
	kind := KindRequest
	if obj.Type == TypeIndication {
		kind = KindIndication
	}
	name := strings.TrimSpace(obj.Name)
	where := containerName(kind, name)
	if name == "" {
		return nil, invalid(where, "", ErrInvalidDefinition, "missing name")
	}
	id, err := strconv.ParseUint(strings.TrimSpace(obj.ID), 0, 16)
	if err != nil {
		return nil, invalid(where, "", ErrInvalidDefinition, "id '%s' is not a 16-bit integer", obj.ID)
	}
	since, err := version.Parse(obj.Since)
	if err != nil {
		return nil, invalid(where, "", err, "requires a 'since' tag with the version it was introduced in")
	}
	msg := &Message{Name: name, Kind: kind, ID: uint16(id), Since: since}
	if kind == KindIndication && len(obj.Input) > 0 {
		return nil, invalid(where, "", ErrInvalidDefinition, "indications have no input")
	}
	if msg.Input, err = r.container(where+" input", obj.Input); err != nil {
		return nil, err
	}
	if msg.Output, err = r.container(where+" output", obj.Output); err != nil {
		return nil, err
	}
	return msg, nil
}

func (r *resolver) container(where string, specs []FieldSpec) ([]*TLV, error) {
	out := make([]*TLV, 0, len(specs))
	ids := make(map[uint8]string)
	names := make(map[string]bool)
	for _, spec := range specs {
		if spec.CommonRef != "" {
			shared, ok := r.tlvs[spec.CommonRef]
			if !ok {
				return nil, invalid(where, spec.Name, ErrUndefinedReference, "common-ref '%s'", spec.CommonRef)
			}
			spec = shared
		}
		tlv, err := r.tlv(where, spec)
		if err != nil {
			return nil, err
		}
		if prev, ok := ids[tlv.ID]; ok {
			return nil, invalid(where, tlv.Name, ErrDuplicateID, "id 0x%02x already used by '%s'", tlv.ID, prev)
		}
		if names[tlv.Name] {
			return nil, invalid(where, tlv.Name, ErrInvalidDefinition, "declared twice")
		}
		ids[tlv.ID] = tlv.Name
		names[tlv.Name] = true
		if err := r.prerequisites(where, tlv, spec.Prerequisites, out); err != nil {
			return nil, err
		}
		out = append(out, tlv)
	}
	return out, nil
}

func (r *resolver) tlv(where string, spec FieldSpec) (*TLV, error) {
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return nil, invalid(where, "", ErrInvalidDefinition, "TLV without name")
	}
	id, err := strconv.ParseUint(strings.TrimSpace(spec.ID), 0, 8)
	if err != nil {
		return nil, invalid(where, name, ErrInvalidDefinition, "id '%s' is not a one byte integer", spec.ID)
	}
	since, err := version.Parse(spec.Since)
	if err != nil {
		return nil, invalid(where, name, err, "requires a 'since' tag with the version it was introduced in")
	}
	if Format(spec.Format) == FormatStruct {
		return nil, invalid(where, name, ErrStructTLV, "")
	}
	tlv := &TLV{
		Name:     name,
		ID:       uint8(id),
		Since:    since,
		Personal: flag(spec.PersonalInfo),
	}
	switch strings.ToLower(strings.TrimSpace(spec.Mandatory)) {
	case "":
		tlv.Mandatory = tlv.ID < 0x10
	case "yes", "true":
		tlv.Mandatory = true
	case "no", "false":
		tlv.Mandatory = false
	default:
		return nil, invalid(where, name, ErrInvalidDefinition, "mandatory must be yes or no, got '%s'", spec.Mandatory)
	}
	v, err := r.value(spec, posTLV)
	if err != nil {
		return nil, invalid(where, name, err, "")
	}
	tlv.Value = v
	return tlv, nil
}

func (r *resolver) prerequisites(where string, tlv *TLV, specs []prereq.Spec, earlier []*TLV) error {
	if len(specs) == 0 {
		return nil
	}
	if tlv.Mandatory {
		return invalid(where, tlv.Name, ErrMandatoryPrerequisites, "")
	}
	resolved, err := r.prereqs.Resolve(specs)
	if err != nil {
		return invalid(where, tlv.Name, errors.Join(ErrUndefinedReference, err), "prerequisites")
	}
	conds := make([]prereq.Condition, 0, len(resolved))
	for _, s := range resolved {
		c, err := prereq.Parse(s, r.lookupSymbol)
		if err != nil {
			return invalid(where, tlv.Name, err, "prerequisites")
		}
		conds = append(conds, c)
	}
	if _, err := prereq.Bind(conds, earlierFields(earlier)); err != nil {
		return invalid(where, tlv.Name, err, "prerequisites")
	}
	tlv.Prerequisites = conds
	return nil
}

// earlierFields resolves prerequisite paths against the TLVs declared before
// the guarded one.
type earlierFields []*TLV

func (e earlierFields) Slot(path []string) (prereq.Slot, bool) {
	v, ok := Lookup(e, path)
	if !ok {
		return prereq.Slot{}, false
	}
	return prereq.Slot{
		Integer: v.Format.IsInteger(),
		Signed:  v.Format.Signed(),
		Bits:    v.Format.Bits(),
	}, true
}

// Lookup walks path (TLV name, then sequence member names) through tlvs.
func Lookup(tlvs []*TLV, path []string) (*Value, bool) {
	if len(path) == 0 {
		return nil, false
	}
	var v *Value
	for _, t := range tlvs {
		if t.Name == path[0] {
			v = t.Value
			break
		}
	}
	if v == nil {
		return nil, false
	}
	for _, seg := range path[1:] {
		var next *Value
		for _, m := range v.Members {
			if v.Format == FormatSequence && m.Name == seg {
				next = m
				break
			}
		}
		if next == nil {
			return nil, false
		}
		v = next
	}
	return v, true
}

func flag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "no", "false":
		return false
	}
	return true
}

func parseSize(raw string, max int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 0, 64)
	if err != nil || n <= 0 || n > int64(max) {
		return 0, fmt.Errorf("%w: size '%s' must be between 1 and %d", ErrInvalidDefinition, raw, max)
	}
	return int(n), nil
}
