package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/renovplan/renovation-planner/internal/catalog"
)

type GlobalOptions struct {
	CatalogFile string

	out io.Writer
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{
		CatalogFile: "",
	}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.CatalogFile, "catalog", o.CatalogFile, "Path to a lot catalog file. The built-in catalog is used when empty.")
}

func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	o.out = cmd.OutOrStdout()
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	return nil
}

// Catalog returns the catalog the command works on.
func (o *GlobalOptions) Catalog() (*catalog.Catalog, error) {
	if o.CatalogFile == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.LoadFile(o.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return cat, nil
}
