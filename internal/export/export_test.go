package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"airdash/internal/types"
)

func sampleRows() []types.ForecastRow {
	return []types.ForecastRow{
		{
			Timestamp: time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC),
			AQI:       182,
			Category:  "Unhealthy",
			Dominant:  types.PollutantPM25,
			Values: map[types.Pollutant]float64{
				types.PollutantPM25: 112.4,
				types.PollutantPM10: 180,
				types.PollutantO3:   41.2,
				types.PollutantNO2:  33,
				types.PollutantSO2:  8.1,
				types.PollutantCO:   0.9,
			},
		},
		{
			Timestamp: time.Date(2026, 8, 25, 11, 0, 0, 0, time.UTC),
			AQI:       95,
			Category:  "Moderate",
			Dominant:  types.PollutantPM10,
			Values: map[types.Pollutant]float64{
				types.PollutantPM25: 40.1,
				types.PollutantPM10: 92,
			},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleRows()); err != nil {
		t.Fatalf("WriteCSV() failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}

	// Header plus one record per input row, nothing dropped
	if len(records) != 3 {
		t.Fatalf("got %d csv records, want 3", len(records))
	}

	wantHeader := "timestamp,aqi,category,dominant_pollutant,pm25,pm10,o3,no2,so2,co"
	if got := strings.Join(records[0], ","); got != wantHeader {
		t.Errorf("header = %q, want %q", got, wantHeader)
	}

	first := records[1]
	if first[0] != "2026-08-25T10:00:00Z" {
		t.Errorf("timestamp column = %q", first[0])
	}
	if first[1] != "182" || first[2] != "Unhealthy" || first[3] != "pm25" {
		t.Errorf("row columns = %v", first[1:4])
	}
	if first[4] != "112.4" {
		t.Errorf("pm25 column = %q, want 112.4", first[4])
	}

	// Missing pollutant values render as zero rather than being dropped
	second := records[2]
	if second[6] != "0" {
		t.Errorf("absent o3 column = %q, want 0", second[6])
	}
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV() failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records for empty input, want header only", len(records))
	}
}

func TestWriteJSON(t *testing.T) {
	rows := sampleRows()

	var buf bytes.Buffer
	if err := WriteJSON(&buf, rows); err != nil {
		t.Fatalf("WriteJSON() failed: %v", err)
	}

	var decoded []types.ForecastRow
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}
	if len(decoded) != len(rows) {
		t.Fatalf("got %d rows, want %d", len(decoded), len(rows))
	}
	for i := range rows {
		if decoded[i].AQI != rows[i].AQI || !decoded[i].Timestamp.Equal(rows[i].Timestamp) {
			t.Errorf("row %d = %+v, want %+v", i, decoded[i], rows[i])
		}
	}
}

func TestWriteJSON_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("WriteJSON() failed: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("empty export = %q, want []", got)
	}
}

func TestParseFormat(t *testing.T) {
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) expected error")
	}
	for _, s := range []string{"csv", "json"} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%s) failed: %v", s, err)
		}
	}
}

func TestFilename(t *testing.T) {
	at := time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)
	got := Filename("New Delhi", FormatCSV, at)
	want := "new-delhi-aqi-20260825-103000.csv"
	if got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}
