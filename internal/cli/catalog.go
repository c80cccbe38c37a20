package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/renovplan/renovation-planner/internal/catalog"
)

type CatalogOptions struct {
	GlobalOptions

	Category string
	RGE      bool
	Search   string
	Output   string
}

func DefaultCatalogOptions() *CatalogOptions {
	return &CatalogOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdCatalog() *cobra.Command {
	o := DefaultCatalogOptions()
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the renovation lots of the catalog.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *CatalogOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVar(&o.Category, "category", o.Category, "Only list the lots of this category.")
	fs.BoolVar(&o.RGE, "rge", o.RGE, "Only list the lots eligible to RGE subsidies.")
	fs.StringVar(&o.Search, "search", o.Search, "Only list the lots whose name or description contains this term.")
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
}

func (o *CatalogOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *CatalogOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if o.Category != "" && !catalog.Category(o.Category).IsValid() {
		return fmt.Errorf("unknown category %q", o.Category)
	}
	return validateOutput(o.Output)
}

func (o *CatalogOptions) Run(ctx context.Context, args []string) error {
	cat, err := o.Catalog()
	if err != nil {
		return err
	}

	criteria := catalog.Criteria{
		Category:   catalog.Category(o.Category),
		SearchTerm: o.Search,
	}
	if o.RGE {
		criteria.RGEEligible = &o.RGE
	}
	entries := cat.Filter(criteria)

	if printed, err := printObject(o.out, entries, o.Output); printed {
		return err
	}

	w := tabwriter.NewWriter(o.out, 0, 8, 1, '\t', 0)
	fmt.Fprintln(w, "TYPE\tCATEGORY\tPRICE\tDAYS\tRGE")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%.0f - %.0f %s\t%d\t%t\n",
			e.Type, e.Category, e.BasePrice.Min, e.BasePrice.Max, e.BasePrice.Unit, e.TypicalDurationDays, e.RGEEligible)
	}
	return w.Flush()
}
