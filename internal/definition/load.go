package definition

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML or JSON definition document.
func LoadFile(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition %s: %w", path, err)
	}
	doc, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse definition %s: %w", path, err)
	}
	doc.Path = path
	log.Debug().Str("path", path).Int("objects", len(doc.Objects)).Msg("definition loaded")
	return doc, nil
}

// Parse decodes an object list. JSON documents are valid YAML and load the same way.
func Parse(raw []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var objects []Object
	if err := dec.Decode(&objects); err != nil {
		if errors.Is(err, io.EOF) {
			return &Document{}, nil
		}
		return nil, err
	}
	return &Document{Objects: objects}, nil
}
