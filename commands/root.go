// Package commands defines the payroll CLI command tree.
package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Config carries shared dependencies into the commands.
type Config struct {
	Log *logrus.Logger
}

// New builds the root command with all subcommands attached.
func New(config *Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "payroll",
		Short: "Computes monthly payroll from CSV inputs",
		Long: "Loads employee, rate, overtime, tax-class, calendar, and payment data\n" +
			"from semicolon-delimited CSV files, validates it, computes one payment\n" +
			"result per eligible employee per payment period, and writes a results file.",
	}

	rootCmd.AddCommand(newRunCmd(config))
	rootCmd.AddCommand(newServeCmd(config))

	return rootCmd
}
