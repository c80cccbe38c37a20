package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/renovplan/renovation-planner/internal/estimation"
	"github.com/renovplan/renovation-planner/internal/service"
)

type EstimateOptions struct {
	GlobalOptions

	File   string
	Output string
}

func DefaultEstimateOptions() *EstimateOptions {
	return &EstimateOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdEstimate() *cobra.Command {
	o := DefaultEstimateOptions()
	cmd := &cobra.Command{
		Use:   "estimate -f FILE",
		Short: "Estimate the budget and duration of a renovation project.",
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

func (o *EstimateOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.File, "file", "f", o.File, "Project description file (yaml or json).")
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
}

func (o *EstimateOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *EstimateOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if o.File == "" {
		return fmt.Errorf("a project file is required")
	}
	return validateOutput(o.Output)
}

func (o *EstimateOptions) Run(ctx context.Context, args []string) error {
	cat, err := o.Catalog()
	if err != nil {
		return err
	}

	file, err := readProjectFile(o.File, cat)
	if err != nil {
		return err
	}

	srv := service.NewEstimationService(nil, service.NewDefaultEngine(cat))
	result := srv.Estimate(ctx, snapshot(file))

	if printed, err := printObject(o.out, result, o.Output); printed {
		return err
	}

	printEstimation(o, file.Name, result)
	return nil
}

func printEstimation(o *EstimateOptions, name string, result estimation.ProjectEstimation) {
	w := tabwriter.NewWriter(o.out, 0, 8, 1, '\t', 0)
	defer w.Flush()

	fmt.Fprintf(w, "PROJECT\t%s\n", name)
	fmt.Fprintf(w, "BUDGET\t%s\n", formatRange(result.Budget.Total, "EUR"))
	fmt.Fprintf(w, "DURATION\t%s\n", formatRange(result.Duration.TotalDays, "days"))
	fmt.Fprintf(w, "CONFIDENCE\t%d%%\n", result.Confidence)

	if len(result.Budget.ByLot) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "LOT\tCATEGORY\tESTIMATE")
		for _, lb := range result.Budget.ByLot {
			fmt.Fprintf(w, "%s\t%s\t%s\n", lb.LotName, lb.Category, formatRange(lb.Estimate, "EUR"))
		}
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "WARNING\t%s\n", warning)
	}
}
