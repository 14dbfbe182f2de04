package main

import (
	"fmt"
	"io"

	"github.com/danmuck/qmigen/internal/codegen"
	"github.com/danmuck/qmigen/internal/config"
	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	var (
		configPath string
		common     string
	)

	cmd := &cobra.Command{
		Use:   "validate [definition...]",
		Short: "Check service definitions without writing code",
		Long: `Resolve and generate every definition in memory and report the first
error of each. Without arguments the services of the configuration are
checked; with arguments only the named documents are, against --common.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return runValidate(cmd.OutOrStdout(), common, args, codegen.Options{})
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			paths := make([]string, 0, len(cfg.Services))
			for _, s := range cfg.Services {
				paths = append(paths, s.Definition)
			}
			return runValidate(cmd.OutOrStdout(), cfg.Common, paths, codegen.Options{Gate: cfg.Gate()})
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "Generator configuration")
	cmd.Flags().StringVar(&common, "common", "", "Shared definitions for documents given as arguments")
	return cmd
}

func runValidate(out io.Writer, commonPath string, paths []string, opts codegen.Options) error {
	common, err := loadCommon(commonPath)
	if err != nil {
		return err
	}
	failed := 0
	for _, path := range paths {
		svc, err := resolveService(path, common)
		if err == nil {
			_, err = codegen.New(opts).Generate(svc)
		}
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(out, "ok   %s (%s: %d messages, %d indications)\n", path, svc.Name, len(svc.Messages), len(svc.Indications))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d definitions failed", failed, len(paths))
	}
	return nil
}
