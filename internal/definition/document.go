package definition

import (
	"github.com/danmuck/qmigen/internal/prereq"
)

// Object types found at the top level of a definition document.
const (
	TypeService      = "Service"
	TypeMessage      = "Message"
	TypeIndication   = "Indication"
	TypeEnum         = "Enum"
	TypeTLV          = "TLV"
	TypePrerequisite = "prerequisite"
)

// FieldSpec is a TLV or a TLV member as written in a definition document.
// Numeric attributes are kept as strings so "0x10" and 16 both load.
type FieldSpec struct {
	Name             string        `yaml:"name,omitempty"`
	ID               string        `yaml:"id,omitempty"`
	Type             string        `yaml:"type,omitempty"`
	Mandatory        string        `yaml:"mandatory,omitempty"`
	Since            string        `yaml:"since,omitempty"`
	Format           string        `yaml:"format,omitempty"`
	PublicFormat     string        `yaml:"public-format,omitempty"`
	FixedSize        string        `yaml:"fixed-size,omitempty"`
	MaxSize          string        `yaml:"max-size,omitempty"`
	SizePrefixFormat string        `yaml:"size-prefix-format,omitempty"`
	Endian           string        `yaml:"endian,omitempty"`
	Visible          string        `yaml:"visible,omitempty"`
	PersonalInfo     string        `yaml:"personal-info,omitempty"`
	CommonRef        string        `yaml:"common-ref,omitempty"`
	Contents         []FieldSpec   `yaml:"contents,omitempty"`
	ArrayElement     *FieldSpec    `yaml:"array-element,omitempty"`
	Prerequisites    []prereq.Spec `yaml:"prerequisites,omitempty"`
}

// EnumValueSpec is one named value of an Enum object.
type EnumValueSpec struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Object is one top-level entry of a definition document.
type Object struct {
	FieldSpec `yaml:",inline"`

	Service string          `yaml:"service,omitempty"`
	Input   []FieldSpec     `yaml:"input,omitempty"`
	Output  []FieldSpec     `yaml:"output,omitempty"`
	Values  []EnumValueSpec `yaml:"values,omitempty"`

	// Set on shared prerequisite objects.
	Field     string `yaml:"field,omitempty"`
	Operation string `yaml:"operation,omitempty"`
	Value     string `yaml:"value,omitempty"`
}

// Document is the object list of one definition file.
type Document struct {
	Path    string
	Objects []Object
}

func (o Object) prerequisite() prereq.Spec {
	return prereq.Spec{
		CommonRef: o.CommonRef,
		Name:      o.Name,
		Type:      o.Type,
		Field:     o.Field,
		Operation: o.Operation,
		Value:     o.Value,
	}
}
