package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"

	"rasff-insights-go/internal/dataset"
	"rasff-insights-go/internal/export"
	"rasff-insights-go/internal/feed"
	"rasff-insights-go/internal/logger"
	"rasff-insights-go/internal/refdata"
	"rasff-insights-go/internal/session"
	"rasff-insights-go/internal/types"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "rasff-insights-go").Info("starting service")

	cfg, err := refdata.LoadConfig(os.Getenv("REFDATA_PATH"))
	if err != nil {
		log.WithError(err).Fatal("failed to load reference data")
	}

	dataPath := envOr("DATASET_PATH", "unified_rasff_data.csv")
	log.WithField("dataset_path", dataPath).Info("loading dataset")
	raws, err := loadRaws(dataPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load dataset")
	}

	var mu sync.Mutex
	sess := session.New(cfg, raws, log)
	log.WithField("records", len(sess.Records)).Info("dataset normalized")

	feedClient := feed.NewClient(log)
	if base := os.Getenv("FEED_BASE_URL"); base != "" {
		feedClient.BaseURL = base
	}

	mux := http.NewServeMux()

	// health
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).Info("health check")
		fmt.Fprint(w, "ok")
	})

	// key statistics + top-10 frequency tables
	mux.HandleFunc("/summary", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "summary")
		reqLog.Info("summary request received")
		mu.Lock()
		out := sess.Summary()
		mu.Unlock()
		writeJSON(w, out)
	})

	// one-dimensional frequency table
	mux.HandleFunc("/aggregate", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "aggregate")
		dim, ok := types.ParseField(r.URL.Query().Get("dim"))
		if !ok {
			reqLog.Warn("missing or unknown dim")
			http.Error(w, "missing or unknown dim", http.StatusBadRequest)
			return
		}
		mu.Lock()
		out := sess.Count(dim)
		mu.Unlock()
		reqLog.WithField("dim", string(dim)).WithField("buckets", len(out)).Info("aggregated")
		writeJSON(w, out)
	})

	// two-dimensional contingency table
	mux.HandleFunc("/crosstab", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "crosstab")
		rows, cols, ok := parseDims(r)
		if !ok {
			reqLog.Warn("missing or unknown rows/cols")
			http.Error(w, "missing or unknown rows/cols", http.StatusBadRequest)
			return
		}
		mu.Lock()
		tbl := sess.Crosstab(rows, cols)
		mu.Unlock()
		writeJSON(w, tbl)
	})

	// chi-square test of independence between two dimensions
	mux.HandleFunc("/chisquare", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "chisquare")
		rows, cols, ok := parseDims(r)
		if !ok {
			reqLog.Warn("missing or unknown rows/cols")
			http.Error(w, "missing or unknown rows/cols", http.StatusBadRequest)
			return
		}
		mu.Lock()
		res, err := sess.ChiSquare(rows, cols)
		mu.Unlock()
		if err != nil {
			reqLog.WithError(err).Warn("chi-square not computable")
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		reqLog.WithField("p_value", res.PValue).
			WithField("low_expected_cells", res.LowExpectedCells).
			Info("chi-square computed")
		writeJSON(w, map[string]interface{}{
			"result":               res,
			"significant":          res.Significant(),
			"interpretation":       res.Interpretation(),
			"low_expected_warning": res.LowExpectedWarning(),
		})
	})

	// merge weekly incremental files into the running session
	mux.HandleFunc("/update", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "update")
		year := time.Now().Year()
		fmt.Sscanf(r.URL.Query().Get("year"), "%d", &year)
		startWeek := 1
		fmt.Sscanf(r.URL.Query().Get("week"), "%d", &startWeek)
		reqLog = reqLog.WithField("year", year).WithField("start_week", startWeek)
		reqLog.Info("weekly update requested")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Minute)
		defer cancel()
		raws, reports := feedClient.UpdateSince(ctx, year, startWeek)
		mu.Lock()
		added := sess.AppendRaw(raws)
		total := len(sess.Records)
		mu.Unlock()
		reqLog.WithField("added", added).Info("update merged")
		writeJSON(w, map[string]interface{}{
			"added": added,
			"total": total,
			"weeks": reports,
		})
	})

	// canonical CSV dump
	mux.HandleFunc("/export", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "export")
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="rasff_canonical.csv"`)
		mu.Lock()
		records := sess.Records
		mu.Unlock()
		if err := export.WriteCSV(w, records); err != nil {
			reqLog.WithError(err).Error("failed to write export")
		}
	})

	addr := fmt.Sprintf(":%s", envOr("PORT", "8080"))
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
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

func parseDims(r *http.Request) (types.Field, types.Field, bool) {
	rows, ok := types.ParseField(r.URL.Query().Get("rows"))
	if !ok {
		return "", "", false
	}
	cols, ok := types.ParseField(r.URL.Query().Get("cols"))
	if !ok {
		return "", "", false
	}
	return rows, cols, true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
