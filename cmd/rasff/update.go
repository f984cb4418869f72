package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"rasff-insights-go/internal/export"
	"rasff-insights-go/internal/feed"
	"rasff-insights-go/internal/logger"
	"rasff-insights-go/internal/session"
)

var (
	updateYear     int
	updateFromWeek int
	updateBaseURL  string
	updateOut      string
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Download weekly incremental files and normalize them",
	Long: `Fetches the weekly feed files from the given week up to the current
week, skipping weeks that are unavailable, and writes the merged canonical
records as CSV.`,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().IntVar(&updateYear, "year", time.Now().Year(), "feed year")
	updateCmd.Flags().IntVar(&updateFromWeek, "from-week", 1, "first ISO week to fetch")
	updateCmd.Flags().StringVar(&updateBaseURL, "base-url", feed.DefaultBaseURL, "weekly file mirror")
	updateCmd.Flags().StringVarP(&updateOut, "out", "o", "", "output CSV path (default stdout)")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	log := logger.New()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client := feed.NewClient(log)
	client.BaseURL = updateBaseURL

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()
	raws, reports := client.UpdateSince(ctx, updateYear, updateFromWeek)

	failed := 0
	for _, r := range reports {
		if r.Error != "" {
			failed++
		}
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "fetched %d week(s), %d unavailable, %d raw records\n",
		len(reports)-failed, failed, len(raws))

	sess := session.New(cfg, raws, log)
	out := os.Stdout
	if updateOut != "" {
		f, err := os.Create(updateOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	return export.WriteCSV(out, sess.Records)
}
