package config

import (
	"fmt"
	"os"
)

// Template returns a starter qmigen.toml.
func Template() string {
	return defaultTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(defaultTemplate), 0o644)
}

const defaultTemplate = `# qmigen generator configuration
output_dir = "pkg/qmi"
runtime_import = "github.com/danmuck/qmigen/pkg/qmi"
common = "data/qmi-common.yaml"
# api_version = "1.32"
compat_floor = "1.32"
# metrics_textfile = "qmigen.prom"

[[services]]
definition = "data/qmi-service-dms.yaml"
package = "dms"

[[services]]
definition = "data/qmi-service-test.yaml"
package = "testsvc"
messages = ["Echo", "Ping"]
`
