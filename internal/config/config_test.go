package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/qmigen/internal/version"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "qmigen.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	path := writeConfig(t, `
output_dir = "gen"
common = "defs/common.yaml"
api_version = "1.26"
metrics_textfile = "/var/lib/node_exporter/qmigen.prom"

[[services]]
definition = "defs/dms.yaml"
package = "dms"
messages = ["Get IDs"]

[[services]]
definition = "/abs/test.yaml"
package = "testsvc"
output = "custom/test_gen.go"
`)
	dir := filepath.Dir(path)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RuntimeImport != DefaultRuntimeImport {
		t.Fatalf("unexpected runtime import: %q", cfg.RuntimeImport)
	}
	if cfg.OutputDir != filepath.Join(dir, "gen") {
		t.Fatalf("unexpected output dir: %q", cfg.OutputDir)
	}
	if cfg.Common != filepath.Join(dir, "defs", "common.yaml") {
		t.Fatalf("unexpected common path: %q", cfg.Common)
	}
	if cfg.MetricsTextfile != "/var/lib/node_exporter/qmigen.prom" {
		t.Fatalf("absolute paths stay as they are: %q", cfg.MetricsTextfile)
	}
	gate := cfg.Gate()
	if gate.Limit != version.MustParse("1.26") || gate.CompatFloor != version.DefaultCompatFloor {
		t.Fatalf("unexpected gate: %+v", gate)
	}

	dms := cfg.Services[0]
	if dms.Definition != filepath.Join(dir, "defs", "dms.yaml") {
		t.Fatalf("unexpected definition: %q", dms.Definition)
	}
	if dms.Output != filepath.Join(dir, "gen", "dms", "dms.go") {
		t.Fatalf("unexpected default output: %q", dms.Output)
	}
	if cfg.Services[1].Output != filepath.Join(dir, "gen", "custom", "test_gen.go") {
		t.Fatalf("unexpected output: %q", cfg.Services[1].Output)
	}

	opts := cfg.GeneratorOptions(dms)
	if opts.Package != "dms" || opts.Source != "dms.yaml" || len(opts.Messages) != 1 || opts.Gate != gate {
		t.Fatalf("unexpected generator options: %+v", opts)
	}
}

func TestLoadWithoutAPIVersionEmitsEverything(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[[services]]
definition = "dms.yaml"
package = "dms"
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.APIVersion.IsZero() || !cfg.Gate().Visible(version.MustParse("99.0")) {
		t.Fatalf("no api_version must not limit the output")
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "no-services", content: `output_dir = "gen"`},
		{name: "bad-package", content: "[[services]]\ndefinition = \"a.yaml\"\npackage = \"not-a-package\"\n"},
		{name: "missing-definition", content: "[[services]]\npackage = \"dms\"\n"},
		{name: "duplicate-output", content: "[[services]]\ndefinition = \"a.yaml\"\npackage = \"dms\"\n\n[[services]]\ndefinition = \"b.yaml\"\npackage = \"dms\"\n"},
		{name: "unknown-key", content: "colour = \"blue\"\n[[services]]\ndefinition = \"a.yaml\"\npackage = \"dms\"\n"},
		{name: "empty-runtime-import", content: "runtime_import = \"\"\n[[services]]\ndefinition = \"a.yaml\"\npackage = \"dms\"\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}

	_, err := Load(writeConfig(t, "api_version = \"one\"\n[[services]]\ndefinition = \"a.yaml\"\npackage = \"dms\"\n"))
	if !errors.Is(err, version.ErrInvalid) {
		t.Fatalf("expected version.ErrInvalid, got %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for a missing file")
	}
}

func TestWriteTemplateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qmigen.toml")
	if err := WriteTemplate(path, false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	if err := WriteTemplate(path, false); err == nil {
		t.Fatalf("expected refusal to overwrite")
	}
	if err := WriteTemplate(path, true); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("template must load: %v", err)
	}
	if len(cfg.Services) != 2 || cfg.Services[1].Package != "testsvc" {
		t.Fatalf("unexpected services: %+v", cfg.Services)
	}
}
