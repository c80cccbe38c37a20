package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/renovplan/renovation-planner/internal/catalog"
	"github.com/renovplan/renovation-planner/internal/service"
)

type CompatibilityOptions struct {
	GlobalOptions

	Output string
}

func DefaultCompatibilityOptions() *CompatibilityOptions {
	return &CompatibilityOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdCompatibility() *cobra.Command {
	o := DefaultCompatibilityOptions()
	cmd := &cobra.Command{
		Use:   "compatibility LOT...",
		Short: "Check a lot selection and print the recommended execution order.",
		Args:  cobra.MinimumNArgs(1),
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

func (o *CompatibilityOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
}

func (o *CompatibilityOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *CompatibilityOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	return validateOutput(o.Output)
}

func (o *CompatibilityOptions) Run(ctx context.Context, args []string) error {
	cat, err := o.Catalog()
	if err != nil {
		return err
	}

	lots := make([]catalog.LotType, 0, len(args))
	for _, arg := range args {
		lots = append(lots, catalog.LotType(arg))
	}

	srv := service.NewEstimationService(nil, service.NewDefaultEngine(cat))
	report, err := srv.CheckCompatibility(ctx, lots)
	if err != nil {
		return err
	}

	if printed, err := printObject(o.out, report, o.Output); printed {
		return err
	}

	if report.Compatible {
		fmt.Fprintln(o.out, "Selection is compatible.")
	} else {
		fmt.Fprintln(o.out, "Selection is not compatible.")
	}
	for _, w := range report.Warnings {
		fmt.Fprintf(o.out, "warning: %s\n", w)
	}
	for _, s := range report.Suggestions {
		fmt.Fprintf(o.out, "suggestion: %s\n", s)
	}
	if len(report.ComplementaryLots) > 0 {
		fmt.Fprintf(o.out, "complementary lots: %s\n", joinLots(report.ComplementaryLots))
	}
	fmt.Fprintf(o.out, "execution order: %s\n", joinLots(report.ExecutionOrder))
	return nil
}

func joinLots(lots []catalog.LotType) string {
	names := make([]string, 0, len(lots))
	for _, l := range lots {
		names = append(names, string(l))
	}
	return strings.Join(names, ", ")
}
