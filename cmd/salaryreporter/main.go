package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"salary-reporter/internal/gateway"
	"salary-reporter/internal/report"
	"salary-reporter/internal/usecase"
)

var (
	reportType string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "salaryreporter FILE [FILE...]",
	Short: "Generates salary reports from employee CSV files",
	Long: `salaryreporter reads one or more comma-delimited employee data files
and prints a grouped report to standard output.

Input files must carry a header row naming the id, email, name, department,
hours_worked and hourly_rate columns; column order is free and the hours and
rate columns accept the usual alias spellings (hours, rate, salary).`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := gateway.NewCSVEmployeeRepository(logger)
		uc := usecase.NewReportUseCase(repo)

		output, err := uc.Run(cmd.Context(), args, reportType)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), output)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&reportType, "report", "payout",
		fmt.Sprintf("report type to generate (available: %s)", strings.Join(report.Available(), ", ")))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
