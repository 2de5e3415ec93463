package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"TrendCast/internal/model"
)

var dateFormats = []string{"2006-01-02", "2006/01/02", "20060102"}

// Save writes the series to path as CSV with a Date,Open,High,Low,Close,Volume
// header. Prices keep four decimal places.
func Save(path string, series *model.Series) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Date", "Open", "High", "Low", "Close", "Volume"}); err != nil {
		return err
	}
	for _, b := range series.Bars {
		row := []string{
			b.Date.Format("2006-01-02"),
			fmt.Sprintf("%.4f", b.Open),
			fmt.Sprintf("%.4f", b.High),
			fmt.Sprintf("%.4f", b.Low),
			fmt.Sprintf("%.4f", b.Close),
			fmt.Sprintf("%.0f", b.Volume),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// Load reads a price history CSV from disk and returns it as a sorted series.
// Malformed rows are skipped with a warning; a file with no usable rows is an error.
func Load(path, ticker string) (*model.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	bars, skipped, err := ParseBars(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if skipped > 0 {
		log.Printf("[WARN] %s: skipped %d malformed rows", path, skipped)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("no usable rows in %s", path)
	}
	return &model.Series{Ticker: ticker, Bars: bars, FetchedAt: time.Now()}, nil
}

// ParseBars reads CSV rows into bars. It accepts Date,Open,High,Low,Close,Volume
// rows as well as bare Date,Close rows, with or without a leading header line.
// Rows that fail to parse are dropped and counted in the second return value.
// Bars come back sorted by date ascending.
func ParseBars(r io.Reader) ([]model.Bar, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("read csv: %w", err)
	}

	bars := make([]model.Bar, 0, len(records))
	skipped := 0
	for i, rec := range records {
		bar, ok := parseRow(rec)
		if !ok {
			// An unparseable first row is almost always the header.
			if i > 0 {
				skipped++
			}
			continue
		}
		bars = append(bars, bar)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars, skipped, nil
}

func parseRow(rec []string) (model.Bar, bool) {
	if len(rec) < 2 {
		return model.Bar{}, false
	}
	date, err := parseDate(strings.TrimSpace(rec[0]))
	if err != nil {
		return model.Bar{}, false
	}

	// Date,Close layout: treat the close as the whole bar.
	if len(rec) == 2 {
		c, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return model.Bar{}, false
		}
		return model.Bar{Date: date, Open: c, High: c, Low: c, Close: c}, true
	}
	if len(rec) < 5 {
		return model.Bar{}, false
	}

	var vals [4]float64
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[i+1]), 64)
		if err != nil {
			return model.Bar{}, false
		}
		vals[i] = v
	}
	bar := model.Bar{Date: date, Open: vals[0], High: vals[1], Low: vals[2], Close: vals[3]}
	if len(rec) > 5 {
		// Volume is optional; some sources leave it blank for indices.
		if v, err := strconv.ParseFloat(strings.TrimSpace(rec[5]), 64); err == nil {
			bar.Volume = v
		}
	}
	return bar, true
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateFormats {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
