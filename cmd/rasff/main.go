package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"rasff-insights-go/internal/dataset"
	"rasff-insights-go/internal/refdata"
	"rasff-insights-go/internal/types"
)

var refdataPath string

var rootCmd = &cobra.Command{
	Use:   "rasff",
	Short: "Batch tools for the RASFF notification feed",
	Long: `Normalizes raw RASFF extracts into canonical records and runs
aggregations and association tests over them.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&refdataPath, "refdata", "", "TOML reference data override file")
}

func loadConfig() (refdata.Config, error) {
	return refdata.LoadConfig(refdataPath)
}

func loadRaws(path string) ([]types.RawRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return dataset.LoadXLSX(path)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return dataset.LoadCSV(f)
	}
}

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
