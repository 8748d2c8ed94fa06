// Package export renders forecast rows as CSV or JSON for download.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"airdash/internal/types"
)

// Format identifies an export output format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat validates a format string from a request
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// csvHeader is the stable column order of CSV exports
var csvHeader = []string{"timestamp", "aqi", "category", "dominant_pollutant",
	"pm25", "pm10", "o3", "no2", "so2", "co"}

// WriteCSV writes exactly the given rows in stable column order.
// An empty input produces a header-only document.
func WriteCSV(w io.Writer, rows []types.ForecastRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Timestamp.UTC().Format(time.RFC3339),
			strconv.Itoa(row.AQI),
			row.Category,
			string(row.Dominant),
		}
		for _, p := range types.Pollutants {
			record = append(record, strconv.FormatFloat(row.Values[p], 'f', -1, 64))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// WriteJSON writes exactly the given rows as a JSON array.
// An empty input produces an empty array, never null.
func WriteJSON(w io.Writer, rows []types.ForecastRow) error {
	if rows == nil {
		rows = []types.ForecastRow{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("failed to encode rows: %w", err)
	}
	return nil
}

// Write dispatches to the writer for the given format
func Write(w io.Writer, format Format, rows []types.ForecastRow) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, rows)
	case FormatJSON:
		return WriteJSON(w, rows)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// ContentType returns the MIME type for the format
func (f Format) ContentType() string {
	if f == FormatCSV {
		return "text/csv"
	}
	return "application/json"
}

// Filename builds the download filename for a location export
func Filename(location string, format Format, at time.Time) string {
	return fmt.Sprintf("%s-aqi-%s.%s", types.Slugify(location), at.UTC().Format("20060102-150405"), format)
}
