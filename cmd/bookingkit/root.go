package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFile    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "bookingkit",
		Short:         "Terminal components for the car booking front end",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a bookingkit YAML file (built-in form when empty)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Append logs to this file instead of stderr")

	cmd.AddCommand(newShowcaseCmd(flags))
	cmd.AddCommand(newFormCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
