package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/leengari/schema-columns/internal/config"
	domainerrors "github.com/leengari/schema-columns/internal/domain/errors"
	"github.com/leengari/schema-columns/internal/domain/schema"
	"github.com/leengari/schema-columns/internal/logging"
	"github.com/leengari/schema-columns/internal/report"
	"github.com/leengari/schema-columns/internal/storage"
)

// app holds what every command needs once flags are parsed
type app struct {
	cfgFile    string
	schemaPath string

	cfg     *config.Config
	logger  *slog.Logger
	closeFn func()
}

func newApp() *app {
	return &app{closeFn: func() {}}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "listcols [table...]",
		Short: "Print the columns of tables defined in a JSON schema document",
		Long: `listcols reads a JSON schema document (schema.json by default) and prints
the sorted property names under definitions.<table>.properties.

With no arguments it reports the configured tables, which default to:
  services, plans, transactions`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.loadDocument()
			if err != nil {
				return err
			}

			tables := a.cfg.Tables
			if len(args) > 0 {
				tables = args
			}

			return report.Run(cmd.OutOrStdout(), doc, tables, a.logger)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().StringVarP(&a.schemaPath, "schema", "s", "", "schema document path (default from config, "+storage.DefaultSchemaPath+")")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(newTablesCmd(a))

	return rootCmd
}

func newTablesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List every table defined in the schema document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.loadDocument()
			if err != nil {
				return err
			}
			return report.PrintTableNames(cmd.OutOrStdout(), doc)
		},
	}
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWithFallback(a.cfgFile)
	if err != nil {
		return err
	}
	if a.schemaPath != "" {
		cfg.Schema.Path = a.schemaPath
	}
	a.cfg = cfg

	logger, closeFn, err := logging.SetupLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	a.logger = logger.With("run_id", uuid.NewString())
	a.closeFn = closeFn
	slog.SetDefault(a.logger)

	a.logger.Debug("configuration loaded",
		"config", a.cfgFile,
		"schema", cfg.Schema.Path,
		"tables", cfg.Tables,
	)
	return nil
}

// close flushes log sinks; safe to call when setup never ran
func (a *app) close() {
	a.closeFn()
	a.closeFn = func() {}
}

func (a *app) loadDocument() (*schema.Document, error) {
	doc, err := storage.LoadSchemaDocument(a.cfg.Schema.Path, a.logger)
	if err != nil {
		var loadErr *domainerrors.LoadError
		if errors.As(err, &loadErr) {
			a.logger.Debug("schema document load failed",
				"op", loadErr.Op,
				"path", loadErr.Path,
				"stack", fmt.Sprintf("%+v", loadErr.Err),
			)
		}
		return nil, err
	}
	return doc, nil
}
