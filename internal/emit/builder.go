// Package emit assembles generated Go source.
package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"
)

// Builder accumulates indented source lines. Imports are collected while the
// body is written and placed after the package clause by Bytes.
type Builder struct {
	header  []string
	pkg     string
	body    bytes.Buffer
	indent  int
	imports map[string]bool
}

func NewBuilder(pkg string) *Builder {
	return &Builder{pkg: pkg, imports: make(map[string]bool)}
}

// Header adds a comment line above the package clause.
func (b *Builder) Header(line string) {
	b.header = append(b.header, line)
}

// P writes one formatted line at the current indentation.
func (b *Builder) P(format string, args ...any) {
	b.L(fmt.Sprintf(format, args...))
}

// L writes one literal line at the current indentation.
func (b *Builder) L(line string) {
	if line != "" {
		for i := 0; i < b.indent; i++ {
			b.body.WriteByte('\t')
		}
		b.body.WriteString(line)
	}
	b.body.WriteByte('\n')
}

func (b *Builder) Blank() {
	b.body.WriteByte('\n')
}

// Len returns the size of the body written so far.
func (b *Builder) Len() int {
	return b.body.Len()
}

func (b *Builder) In()  { b.indent++ }
func (b *Builder) Out() { b.indent-- }

// Import records an import path used by the body.
func (b *Builder) Import(path string) {
	b.imports[path] = true
}

// Source returns the unformatted file.
func (b *Builder) Source() []byte {
	var out bytes.Buffer
	for _, h := range b.header {
		out.WriteString(h + "\n")
	}
	if len(b.header) > 0 {
		out.WriteByte('\n')
	}
	fmt.Fprintf(&out, "package %s\n\n", b.pkg)
	if len(b.imports) > 0 {
		std, other := b.sortedImports()
		out.WriteString("import (\n")
		for _, p := range std {
			fmt.Fprintf(&out, "\t%q\n", p)
		}
		if len(std) > 0 && len(other) > 0 {
			out.WriteByte('\n')
		}
		for _, p := range other {
			fmt.Fprintf(&out, "\t%q\n", p)
		}
		out.WriteString(")\n\n")
	}
	out.Write(b.body.Bytes())
	return out.Bytes()
}

// Bytes returns the gofmt'ed file.
func (b *Builder) Bytes() ([]byte, error) {
	src := b.Source()
	formatted, err := format.Source(src)
	if err != nil {
		return nil, fmt.Errorf("emit: format %s: %w", b.pkg, err)
	}
	return formatted, nil
}

func (b *Builder) sortedImports() (std, other []string) {
	for p := range b.imports {
		first, _, _ := strings.Cut(p, "/")
		if strings.Contains(first, ".") {
			other = append(other, p)
		} else {
			std = append(std, p)
		}
	}
	sort.Strings(std)
	sort.Strings(other)
	return std, other
}
