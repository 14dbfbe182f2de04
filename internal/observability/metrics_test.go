package observability

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danmuck/qmigen/internal/testutil/testlog"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	testlog.Start(t)
	RegisterMetrics()
	RegisterMetrics()

	before := testutil.ToFloat64(generatedTLVs.WithLabelValues("metrics-test"))
	RecordMessage("metrics-test", "request", 3)
	RecordMessage("metrics-test", "indication", 1)
	RecordSkipped("metrics-test", "api_version")
	RecordFailure("metrics-test", "resolve")
	RecordDuration("metrics-test", 12*time.Millisecond)

	if got := testutil.ToFloat64(generatedTLVs.WithLabelValues("metrics-test")) - before; got != 4 {
		t.Fatalf("expected 4 TLVs recorded, got %v", got)
	}
	if got := testutil.ToFloat64(generatedMessages.WithLabelValues("metrics-test", "request")); got < 1 {
		t.Fatalf("expected a request recorded, got %v", got)
	}
	if got := testutil.ToFloat64(generationFailures.WithLabelValues("metrics-test", "resolve")); got < 1 {
		t.Fatalf("expected a failure recorded, got %v", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	testlog.Start(t)
	RecordMessage("textfile-test", "request", 1)
	path := filepath.Join(t.TempDir(), "qmigen.prom")
	if err := WriteTextfile(path); err != nil {
		t.Fatalf("write textfile: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	if !strings.Contains(string(raw), `qmigen_codegen_messages_total{kind="request",service="textfile-test"} 1`) {
		t.Fatalf("missing counter in textfile:\n%s", raw)
	}
}
