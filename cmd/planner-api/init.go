package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/renovplan/renovation-planner/internal/catalog"
	"github.com/renovplan/renovation-planner/internal/config"
	"github.com/renovplan/renovation-planner/pkg/log"
)

var overwriteCatalog bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in lot catalog to the configured catalog file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			zap.S().Fatalw("reading configuration", "error", err)
		}

		undo := log.Setup(cfg.Service.LogLevel)
		defer undo()

		path := cfg.Service.CatalogFile
		if path == "" {
			return fmt.Errorf("RENOVATION_PLANNER_CATALOG_FILE is not set")
		}

		if _, err := os.Stat(path); err == nil && !overwriteCatalog {
			zap.S().Infow("catalog file already exists", "path", path)
			return nil
		}

		data, err := catalog.Marshal(catalog.Default())
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing catalog file: %w", err)
		}

		zap.S().Infow("catalog initialized", "path", path, "version", catalog.Default().Version())
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&overwriteCatalog, "overwrite", false, "Replace an existing catalog file")
}
