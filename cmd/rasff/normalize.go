package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rasff-insights-go/internal/export"
	"rasff-insights-go/internal/logger"
	"rasff-insights-go/internal/session"
)

var normalizeOut string

var normalizeCmd = &cobra.Command{
	Use:   "normalize <extract>",
	Short: "Normalize a raw extract into canonical records",
	Long: `Reads a CSV or spreadsheet extract, applies country, category and
hazard normalization, and writes the canonical records as CSV.`,
	Args: cobra.ExactArgs(1),
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeOut, "out", "o", "", "output CSV path (default stdout)")
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	raws, err := loadRaws(args[0])
	if err != nil {
		return fmt.Errorf("load extract: %w", err)
	}
	sess := session.New(cfg, raws, logger.New())

	out := os.Stdout
	if normalizeOut != "" {
		f, err := os.Create(normalizeOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := export.WriteCSV(out, sess.Records); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	unmapped := sess.UnmappedCounts()
	if len(unmapped.ProductCategory) > 0 || len(unmapped.HazardCategory) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "unmapped categories: %d product, %d hazard\n",
			len(unmapped.ProductCategory), len(unmapped.HazardCategory))
	}
	return nil
}
