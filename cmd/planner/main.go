package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/renovplan/renovation-planner/internal/cli"
)

func main() {
	command := NewPlannerCtlCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewPlannerCtlCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "planner [flags] [options]",
		Short: "planner estimates renovation projects offline.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdEstimate())
	cmd.AddCommand(cli.NewCmdCompatibility())
	cmd.AddCommand(cli.NewCmdCatalog())
	cmd.AddCommand(cli.NewCmdReport())
	cmd.AddCommand(cli.NewCmdVersion())
	return cmd
}
