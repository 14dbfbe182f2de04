package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/danmuck/qmigen/internal/codegen"
	"github.com/danmuck/qmigen/internal/config"
	"github.com/danmuck/qmigen/internal/definition"
	"github.com/danmuck/qmigen/internal/envelope"
	"github.com/danmuck/qmigen/internal/observability"
	"github.com/danmuck/qmigen/internal/version"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "qmigen.toml"

func generateCmd() *cobra.Command {
	var (
		configPath string
		apiVersion string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the configured services",
		Long: `Generate one Go file per [[services]] entry of the configuration.

--api-version overrides api_version from the file. Anything introduced after
the limit is left out, as is every TLV whose prerequisites depend on it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, apiVersion)
			if err != nil {
				return err
			}
			return runGenerate(cmd.OutOrStdout(), cfg, dryRun)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "Generator configuration")
	cmd.Flags().StringVar(&apiVersion, "api-version", "", "Highest API version to emit (e.g. 1.26)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Generate without writing files")
	return cmd
}

func loadConfig(path, apiVersion string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if apiVersion != "" {
		v, err := version.Parse(apiVersion)
		if err != nil {
			return config.Config{}, fmt.Errorf("--api-version: %w", err)
		}
		cfg.APIVersion = v
	}
	return cfg, nil
}

func loadCommon(path string) (*definition.Document, error) {
	if path == "" {
		return nil, nil
	}
	return definition.LoadFile(path)
}

func resolveService(path string, common *definition.Document) (*definition.Service, error) {
	doc, err := definition.LoadFile(path)
	if err != nil {
		return nil, err
	}
	svc, err := definition.Resolve(doc, common)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return svc, nil
}

// runGenerate writes every configured service. Nothing is written once a
// service fails, so a broken definition never leaves a partial tree.
func runGenerate(out io.Writer, cfg config.Config, dryRun bool) error {
	envelope.SetRuntimeImport(cfg.RuntimeImport)
	observability.RegisterMetrics()

	common, err := loadCommon(cfg.Common)
	if err != nil {
		return err
	}
	type output struct {
		path string
		src  []byte
	}
	outputs := make([]output, 0, len(cfg.Services))
	for _, s := range cfg.Services {
		svc, err := resolveService(s.Definition, common)
		if err != nil {
			observability.RecordFailure(filepath.Base(s.Definition), "resolve")
			return err
		}
		src, err := codegen.New(cfg.GeneratorOptions(s)).Generate(svc)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Definition, err)
		}
		outputs = append(outputs, output{path: s.Output, src: src})
	}

	for _, o := range outputs {
		if dryRun {
			fmt.Fprintf(out, "%s (%d bytes, not written)\n", o.path, len(o.src))
			continue
		}
		if err := os.MkdirAll(filepath.Dir(o.path), 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		if err := os.WriteFile(o.path, o.src, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", o.path, err)
		}
		log.Debug().Str("path", o.path).Int("bytes", len(o.src)).Msg("output written")
		fmt.Fprintf(out, "wrote %s\n", o.path)
	}

	if cfg.MetricsTextfile != "" && !dryRun {
		if err := observability.WriteTextfile(cfg.MetricsTextfile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
