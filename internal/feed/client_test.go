package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func weeklyWorkbookBytes(t *testing.T, reference string) []byte {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Date of Case", "Reference", "Notification From", "Country Origin", "Product", "Product Category", "Hazard Substance", "Hazard Category"},
		{"2024-05-13", reference, "France", "China", "noodles", "cereals and bakery products", "Salmonella", "pathogenic micro-organisms"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestWeeklyURL(t *testing.T) {
	c := NewClient(nil)
	assert.Equal(t,
		"https://www.sirene-diffusion.fr/regia/000-rasff/24/rasff-2024-07.xls",
		c.WeeklyURL(2024, 7))
}

func TestFetchWeekly(t *testing.T) {
	body := weeklyWorkbookBytes(t, "2024.1000")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/24/rasff-2024-03.xls", r.URL.Path)
		w.Write(body)
	}))
	defer srv.Close()

	c := NewClient(nil)
	c.BaseURL = srv.URL
	raws, err := c.FetchWeekly(context.Background(), 2024, 3)
	require.NoError(t, err)
	require.Len(t, raws, 1)
	assert.Equal(t, "2024.1000", raws[0].Reference)
	assert.Equal(t, "cereals and bakery products", raws[0].ProductCategory)
}

func TestFetchWeeklyMissingWeek(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	c := NewClient(nil)
	c.BaseURL = srv.URL
	_, err := c.FetchWeekly(context.Background(), 2024, 3)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestUpdateRangeSkipsFailedWeeks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/24/rasff-2024-01.xls":
			w.Write(weeklyWorkbookBytes(t, "2024.0001"))
		case "/24/rasff-2024-03.xls":
			w.Write(weeklyWorkbookBytes(t, "2024.0003"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(nil)
	c.BaseURL = srv.URL
	raws, reports := c.UpdateRange(context.Background(), 2024, 1, 4)

	require.Len(t, raws, 2)
	assert.Equal(t, "2024.0001", raws[0].Reference)
	assert.Equal(t, "2024.0003", raws[1].Reference)

	require.Len(t, reports, 3)
	assert.Empty(t, reports[0].Error)
	assert.NotEmpty(t, reports[1].Error) // week 2 unavailable, run continued
	assert.Empty(t, reports[2].Error)
}

func TestUpdateRangeAllWeeksFail(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	c := NewClient(nil)
	c.BaseURL = srv.URL
	raws, reports := c.UpdateRange(context.Background(), 2024, 1, 3)
	assert.Empty(t, raws)
	assert.Len(t, reports, 2)
}

func TestFetchMainExtract(t *testing.T) {
	csv := "Reference,Product Category,Hazard Category\n2024.1,wine,mycotoxins\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, csv)
	}))
	defer srv.Close()

	c := NewClient(nil)
	raws, err := c.FetchMainExtract(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, raws, 1)
	assert.Equal(t, "wine", raws[0].ProductCategory)
}

func TestFetchMainExtractRetriesServerErrors(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			http.Error(w, "flaky", http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, "Reference,Product Category\n2024.1,wine\n")
	}))
	defer srv.Close()

	c := NewClient(nil)
	raws, err := c.FetchMainExtract(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, raws, 1)
	assert.GreaterOrEqual(t, attempts, 3)
}

func TestFetchMainExtractDoesNotRetryClientErrors(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(nil)
	_, err := c.FetchMainExtract(context.Background(), srv.URL)
	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}
