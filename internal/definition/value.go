package definition

import (
	"fmt"
	"math"
	"strings"
)

func (r *resolver) value(spec FieldSpec, pos position) (*Value, error) {
	v := &Value{
		Name:     strings.TrimSpace(spec.Name),
		Format:   Format(strings.TrimSpace(spec.Format)),
		Visible:  true,
		Personal: flag(spec.PersonalInfo),
	}
	if pos == posTLV || pos == posElement {
		v.Name = ""
	} else if v.Name == "" {
		return nil, fmt.Errorf("%w: member without name", ErrInvalidDefinition)
	}
	switch strings.ToLower(strings.TrimSpace(spec.Visible)) {
	case "", "yes", "true":
	case "no", "false":
		if pos != posMember {
			return nil, fmt.Errorf("%w: only sequence members can be hidden", ErrInvalidDefinition)
		}
		v.Visible = false
	default:
		return nil, fmt.Errorf("%w: visible must be yes or no, got '%s'", ErrInvalidDefinition, spec.Visible)
	}
	if len(spec.Contents) > 0 && v.Format != FormatSequence && v.Format != FormatStruct {
		return nil, fmt.Errorf("%w: '%s' values cannot have contents", ErrInvalidDefinition, v.Format)
	}
	if spec.ArrayElement != nil && v.Format != FormatArray {
		return nil, fmt.Errorf("%w: '%s' values cannot have an array-element", ErrInvalidDefinition, v.Format)
	}

	var err error
	switch {
	case v.Format.IsNumeric():
		err = r.numeric(v, spec)
	case v.Format == FormatString:
		err = r.stringValue(v, spec, pos)
	case v.Format == FormatArray:
		err = r.array(v, spec, pos)
	case v.Format == FormatSequence:
		if pos != posTLV {
			return nil, fmt.Errorf("%w: sequences are only allowed as the TLV value", ErrInvalidDefinition)
		}
		err = r.members(v, spec, posMember)
	case v.Format == FormatStruct:
		if pos == posTLV {
			return nil, ErrStructTLV
		}
		if pos != posElement {
			return nil, fmt.Errorf("%w: structs are only allowed as array elements", ErrInvalidDefinition)
		}
		err = r.members(v, spec, posStructMember)
	case v.Format == "":
		return nil, fmt.Errorf("%w: missing format", ErrInvalidDefinition)
	default:
		return nil, fmt.Errorf("%w: unknown format '%s'", ErrInvalidDefinition, v.Format)
	}
	if err != nil {
		if v.Name != "" {
			return nil, fmt.Errorf("member '%s': %w", v.Name, err)
		}
		return nil, err
	}
	return v, nil
}

func (r *resolver) numeric(v *Value, spec FieldSpec) error {
	switch strings.ToLower(strings.TrimSpace(spec.Endian)) {
	case "", "little":
		v.Endian = Little
	case "big", "network":
		v.Endian = Big
	default:
		return fmt.Errorf("%w: invalid endian '%s'", ErrInvalidDefinition, spec.Endian)
	}
	if spec.PublicFormat != "" {
		if !v.Format.IsInteger() {
			return fmt.Errorf("%w: public-format requires an integer format", ErrInvalidDefinition)
		}
		e, ok := r.lookupEnum(strings.TrimSpace(spec.PublicFormat))
		if !ok {
			return fmt.Errorf("%w: enum '%s'", ErrUndefinedReference, spec.PublicFormat)
		}
		v.Enum = e
	}
	if spec.FixedSize != "" || spec.MaxSize != "" || spec.SizePrefixFormat != "" {
		return fmt.Errorf("%w: size attributes on a '%s' value", ErrInvalidDefinition, v.Format)
	}
	return nil
}

func (r *resolver) stringValue(v *Value, spec FieldSpec, pos position) error {
	fixed, err := parseSize(spec.FixedSize, math.MaxUint16)
	if err != nil {
		return err
	}
	if fixed > 0 {
		if spec.SizePrefixFormat != "" || spec.MaxSize != "" {
			return fmt.Errorf("%w: fixed-size strings take no size prefix or max-size", ErrInvalidDefinition)
		}
		v.FixedSize = fixed
		return nil
	}
	switch spec.SizePrefixFormat {
	case "guint8":
		v.PrefixBytes = 1
	case "guint16":
		v.PrefixBytes = 2
	case "":
		// A string filling the whole TLV value needs no prefix.
		if pos == posTLV {
			v.PrefixBytes = 0
		} else {
			v.PrefixBytes = 1
		}
	default:
		return fmt.Errorf("%w: invalid string size prefix format '%s': not guint8 or guint16", ErrInvalidDefinition, spec.SizePrefixFormat)
	}
	limit := math.MaxUint16
	if v.PrefixBytes == 1 {
		limit = math.MaxUint8
	}
	if v.MaxSize, err = parseSize(spec.MaxSize, limit); err != nil {
		return err
	}
	return nil
}

func (r *resolver) array(v *Value, spec FieldSpec, pos position) error {
	if pos != posTLV && pos != posMember {
		return fmt.Errorf("%w: arrays are not allowed inside structs or arrays", ErrInvalidDefinition)
	}
	if spec.ArrayElement == nil {
		return fmt.Errorf("%w: array without array-element", ErrInvalidDefinition)
	}
	fixed, err := parseSize(spec.FixedSize, math.MaxUint16)
	if err != nil {
		return err
	}
	if fixed > 0 {
		if spec.SizePrefixFormat != "" {
			return fmt.Errorf("%w: fixed-size arrays take no size prefix", ErrInvalidDefinition)
		}
		v.FixedSize = fixed
	} else {
		switch spec.SizePrefixFormat {
		case "", "guint8":
			v.PrefixBytes = 1
		case "guint16":
			v.PrefixBytes = 2
		case "guint32":
			v.PrefixBytes = 4
		default:
			return fmt.Errorf("%w: invalid array size prefix format '%s'", ErrInvalidDefinition, spec.SizePrefixFormat)
		}
	}
	if spec.MaxSize != "" {
		return fmt.Errorf("%w: max-size on an array", ErrInvalidDefinition)
	}
	elem, err := r.value(*spec.ArrayElement, posElement)
	if err != nil {
		return fmt.Errorf("array-element: %w", err)
	}
	switch {
	case elem.Format.IsNumeric(), elem.Format == FormatString, elem.Format == FormatStruct:
	default:
		return fmt.Errorf("%w: array elements cannot be '%s'", ErrInvalidDefinition, elem.Format)
	}
	v.Element = elem
	return nil
}

func (r *resolver) members(v *Value, spec FieldSpec, pos position) error {
	if len(spec.Contents) == 0 {
		return fmt.Errorf("%w: '%s' without contents", ErrInvalidDefinition, v.Format)
	}
	seen := make(map[string]bool)
	for _, c := range spec.Contents {
		m, err := r.value(c, pos)
		if err != nil {
			return err
		}
		if pos == posStructMember && !m.Format.IsNumeric() && m.Format != FormatString {
			return fmt.Errorf("%w: struct member '%s' cannot be '%s'", ErrInvalidDefinition, m.Name, m.Format)
		}
		if seen[m.Name] {
			return fmt.Errorf("%w: member '%s' declared twice", ErrInvalidDefinition, m.Name)
		}
		seen[m.Name] = true
		v.Members = append(v.Members, m)
	}
	return nil
}
