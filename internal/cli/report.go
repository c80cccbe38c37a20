package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"

	"github.com/renovplan/renovation-planner/internal/service"
)

type ReportOptions struct {
	GlobalOptions

	File            string
	Format          string
	Out             string
	IncludeWarnings bool
}

func DefaultReportOptions() *ReportOptions {
	return &ReportOptions{
		GlobalOptions:   DefaultGlobalOptions(),
		Format:          string(service.ReportFormatCSV),
		IncludeWarnings: true,
	}
}

func NewCmdReport() *cobra.Command {
	o := DefaultReportOptions()
	cmd := &cobra.Command{
		Use:   "report -f FILE",
		Short: "Render the estimation report of a renovation project.",
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

func (o *ReportOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.File, "file", "f", o.File, "Project description file (yaml or json).")
	fs.StringVar(&o.Format, "format", o.Format, fmt.Sprintf("Report format. One of: (%s).", strings.Join(reportFormats(), ", ")))
	fs.StringVar(&o.Out, "out", o.Out, "Destination file. Defaults to a name derived from the project in the current directory.")
	fs.BoolVar(&o.IncludeWarnings, "warnings", o.IncludeWarnings, "Include the estimation warnings in the report.")
}

func (o *ReportOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *ReportOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if o.File == "" {
		return fmt.Errorf("a project file is required")
	}
	if !funk.ContainsString(reportFormats(), o.Format) {
		return fmt.Errorf("report format must be one of %s", strings.Join(reportFormats(), ", "))
	}
	return nil
}

func (o *ReportOptions) Run(ctx context.Context, args []string) error {
	cat, err := o.Catalog()
	if err != nil {
		return err
	}

	file, err := readProjectFile(o.File, cat)
	if err != nil {
		return err
	}

	project := snapshot(file)
	result := service.NewEstimationService(nil, service.NewDefaultEngine(cat)).Estimate(ctx, project)

	report, err := service.NewReportService(nil).GenerateReport(file.Name, project, result, service.ReportOptions{
		Format:          service.ReportFormat(o.Format),
		IncludeWarnings: o.IncludeWarnings,
	})
	if err != nil {
		return err
	}

	out := o.Out
	if out == "" {
		out = report.Name
	}
	if err := os.WriteFile(out, report.Content, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	fmt.Fprintf(o.out, "report written to %s\n", out)
	return nil
}

func reportFormats() []string {
	formats := service.NewReportService(nil).Formats()
	res := make([]string, 0, len(formats))
	for _, f := range formats {
		res = append(res, string(f))
	}
	return res
}
