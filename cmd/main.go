package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "smc-workout-form",
		Short: "SMC Workout Form",
		Long:  "Server-side form sessions for workout applications: personal data, photo, calendar with holidays and submission",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "Config file path")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(calendarCmd())
	rootCmd.AddCommand(holidaysCmd())
	rootCmd.AddCommand(applicationsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
