package main

import (
	"fmt"
	"os"

	"github.com/danmuck/qmigen/internal/logging"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	buildVersion = "dev"
	buildCommit  = "none"
)

func main() {
	logging.ConfigureRuntime()
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "qmigen: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "qmigen",
		Short: "Generate Go bindings for QMI services",
		Long: `qmigen reads QMI service definitions (YAML or JSON) and writes one Go
file per service with typed request, response and indication containers,
their TLV codecs and printable renderers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		generateCmd(),
		validateCmd(),
		initConfigCmd(),
		versionCmd(),
	)
	return root
}
