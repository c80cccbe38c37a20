package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "planner-api",
	Short: "Renovation planner API service",
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(initCmd)
}
