package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/qmigen/internal/testutil/testlog"
)

func dataPath(t *testing.T, name string) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("..", "..", "data", name))
	if err != nil {
		t.Fatalf("abs: %v", err)
	}
	return path
}

func writeTestConfig(t *testing.T, extra string) string {
	t.Helper()
	dir := t.TempDir()
	content := "output_dir = \"gen\"\n" +
		"common = " + tomlLiteral(dataPath(t, "qmi-common.yaml")) + "\n" +
		"metrics_textfile = \"qmigen.prom\"\n" + extra +
		"\n[[services]]\ndefinition = " + tomlLiteral(dataPath(t, "qmi-service-dms.yaml")) + "\npackage = \"dms\"\n" +
		"\n[[services]]\ndefinition = " + tomlLiteral(dataPath(t, "qmi-service-test.yaml")) + "\npackage = \"testsvc\"\n"
	path := filepath.Join(dir, "qmigen.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func tomlLiteral(s string) string {
	return "'" + s + "'"
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateWritesEveryService(t *testing.T) {
	testlog.Start(t)
	path := writeTestConfig(t, "")
	out, err := execute(t, "generate", "--config", path)
	if err != nil {
		t.Fatalf("generate: %v\n%s", err, out)
	}
	dir := filepath.Dir(path)
	for _, rel := range []string{"gen/dms/dms.go", "gen/testsvc/testsvc.go"} {
		src, err := os.ReadFile(filepath.Join(dir, rel))
		if err != nil {
			t.Fatalf("read %s: %v", rel, err)
		}
		if !bytes.HasPrefix(src, []byte("// Code generated by qmigen. DO NOT EDIT.")) {
			t.Fatalf("%s lacks the generated header", rel)
		}
	}
	metrics, err := os.ReadFile(filepath.Join(dir, "qmigen.prom"))
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	if !strings.Contains(string(metrics), `qmigen_codegen_messages_total{kind="request",service="DMS"}`) {
		t.Fatalf("unexpected metrics:\n%s", metrics)
	}
}

func TestGenerateAPIVersionFlag(t *testing.T) {
	testlog.Start(t)
	path := writeTestConfig(t, "")
	if out, err := execute(t, "generate", "--config", path, "--api-version", "1.25"); err != nil {
		t.Fatalf("generate: %v\n%s", err, out)
	}
	src, err := os.ReadFile(filepath.Join(filepath.Dir(path), "gen", "dms", "dms.go"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.Contains(string(src), "IMEISoftwareVersion") {
		t.Fatalf("IMEI Software Version must be hidden at 1.25")
	}

	if _, err := execute(t, "generate", "--config", path, "--api-version", "x.y"); err == nil {
		t.Fatalf("expected an invalid --api-version to fail")
	}
}

func TestGenerateDryRunWritesNothing(t *testing.T) {
	testlog.Start(t)
	path := writeTestConfig(t, "")
	out, err := execute(t, "generate", "--config", path, "--dry-run")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, "not written") {
		t.Fatalf("unexpected output: %s", out)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(path), "gen")); !os.IsNotExist(err) {
		t.Fatalf("dry run created the output dir: %v", err)
	}
}

func TestValidateArguments(t *testing.T) {
	testlog.Start(t)
	out, err := execute(t, "validate", "--common", dataPath(t, "qmi-common.yaml"), dataPath(t, "qmi-service-dms.yaml"))
	if err != nil {
		t.Fatalf("validate: %v\n%s", err, out)
	}
	if !strings.Contains(out, "ok ") || !strings.Contains(out, "DMS: 3 messages") {
		t.Fatalf("unexpected output: %s", out)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("- name: Bad\n  type: Service\n- name: M\n  type: Message\n  id: \"1\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err = execute(t, "validate", bad)
	if err == nil || !strings.Contains(out, "FAIL "+bad) {
		t.Fatalf("expected a failure report, got %v\n%s", err, out)
	}
}

func TestValidateFromConfig(t *testing.T) {
	testlog.Start(t)
	out, err := execute(t, "validate", "--config", writeTestConfig(t, ""))
	if err != nil {
		t.Fatalf("validate: %v\n%s", err, out)
	}
	if strings.Count(out, "ok ") != 2 {
		t.Fatalf("expected two services checked: %s", out)
	}
}

func TestInitConfig(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "qmigen.toml")
	if _, err := execute(t, "init-config", path); err != nil {
		t.Fatalf("init-config: %v", err)
	}
	if _, err := execute(t, "init-config", path); err == nil {
		t.Fatalf("expected refusal to overwrite")
	}
	if _, err := execute(t, "init-config", "--force", path); err != nil {
		t.Fatalf("init-config --force: %v", err)
	}
}

func TestVersionShort(t *testing.T) {
	out, err := execute(t, "version", "--short")
	if err != nil || strings.TrimSpace(out) != buildVersion {
		t.Fatalf("unexpected version output %q: %v", out, err)
	}
}
