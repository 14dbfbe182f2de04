package config

import (
	"path/filepath"

	"github.com/danmuck/qmigen/internal/codegen"
)

// GeneratorOptions builds the codegen options of one configured service.
func (c Config) GeneratorOptions(s ServiceConfig) codegen.Options {
	return codegen.Options{
		Package:  s.Package,
		Gate:     c.Gate(),
		Messages: s.Messages,
		Source:   filepath.Base(s.Definition),
	}
}
