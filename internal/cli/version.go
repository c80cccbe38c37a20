package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/renovplan/renovation-planner/internal/catalog"
	"github.com/renovplan/renovation-planner/pkg/version"
)

type VersionOptions struct {
	Output string

	cmd *cobra.Command
}

func DefaultVersionOptions() *VersionOptions {
	return &VersionOptions{
		Output: "",
	}
}

func NewCmdVersion() *cobra.Command {
	o := DefaultVersionOptions()
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print Planner version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			o.cmd = cmd
			if err := validateOutput(o.Output); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
	}
	cmd.Flags().StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
	return cmd
}

func (o *VersionOptions) Run(ctx context.Context, args []string) error {
	versionInfo := version.Get()
	out := o.cmd.OutOrStdout()

	if printed, err := printObject(out, versionInfo, o.Output); printed {
		return err
	}

	fmt.Fprintf(out, "Planner Version: %s\n", versionInfo.String())
	fmt.Fprintf(out, "Catalog Version: %s\n", catalog.Default().Version())
	return nil
}
