package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"rasff-insights-go/internal/logger"
	"rasff-insights-go/internal/session"
	"rasff-insights-go/internal/types"
)

var (
	analyzeRows string
	analyzeCols string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <extract>",
	Short: "Chi-square association test between two dimensions",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeRows, "rows", "prodcat", "row dimension")
	analyzeCmd.Flags().StringVar(&analyzeCols, "cols", "hazcat", "column dimension")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	rows, ok := types.ParseField(analyzeRows)
	if !ok {
		return fmt.Errorf("unknown dimension %q", analyzeRows)
	}
	cols, ok := types.ParseField(analyzeCols)
	if !ok {
		return fmt.Errorf("unknown dimension %q", analyzeCols)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	raws, err := loadRaws(args[0])
	if err != nil {
		return fmt.Errorf("load extract: %w", err)
	}
	sess := session.New(cfg, raws, logger.New())

	res, err := sess.ChiSquare(rows, cols)
	if err != nil {
		return fmt.Errorf("chi-square: %w", err)
	}
	cmd.Printf("chi2 statistic:     %.2f\n", res.Statistic)
	cmd.Printf("p-value:            %.4f\n", res.PValue)
	cmd.Printf("degrees of freedom: %d\n", res.DegreesOfFreedom)
	cmd.Println(res.Interpretation())
	if res.LowExpectedWarning() {
		cmd.Printf("caveat: %d expected cell(s) below 5; the test's validity is questionable on this table\n", res.LowExpectedCells)
	}
	return nil
}

var summaryCmd = &cobra.Command{
	Use:   "summary <extract>",
	Short: "Key statistics and top-10 frequency tables",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		raws, err := loadRaws(args[0])
		if err != nil {
			return fmt.Errorf("load extract: %w", err)
		}
		sess := session.New(cfg, raws, logger.New())
		data, err := json.MarshalIndent(sess.Summary(), "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
