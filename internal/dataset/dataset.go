package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Record is one symptom report row. Fields are parsed once at load time;
// Symptoms is decoded from the JSON-array column and SymptomCount always
// equals len(Symptoms).
type Record struct {
	UserID         string
	Timestamp      time.Time
	Severity       float64
	Sleep          float64
	Stress         float64
	Exercise       float64
	Age            float64
	Gender         string
	MedicalHistory string
	Symptoms       []string
	SymptomCount   int
}

// Dataset is an ordered, immutable-after-load collection of records.
// Reporters derive values from it; nothing mutates it after Load returns.
type Dataset struct {
	Name    string
	Path    string
	Records []Record
}

// Required CSV columns, matched by header name.
var requiredColumns = []string{
	"userId", "timestamp", "symptoms", "severity", "sleep",
	"stress", "exercise", "age", "gender", "medical_history",
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Load reads a symptom-report CSV into memory. A missing file, missing
// required column, malformed numeric field, or unparseable timestamp is a
// load error for the whole file. Malformed symptoms JSON is not: that field
// degrades to an empty list.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read header: %s is empty", path)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing required column %q in %s", col, path)
		}
	}

	ds := &Dataset{Name: filepath.Base(path), Path: path}
	row := 1
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", row+1, err)
		}
		row++

		field := func(name string) string {
			i := idx[name]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		ts, err := parseTimestamp(field("timestamp"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		var rc Record
		rc.UserID = field("userId")
		rc.Timestamp = ts
		rc.Gender = field("gender")
		rc.MedicalHistory = field("medical_history")
		rc.Symptoms = ParseSymptoms(field("symptoms"))
		rc.SymptomCount = len(rc.Symptoms)

		for _, nc := range []struct {
			name string
			dst  *float64
		}{
			{"severity", &rc.Severity},
			{"sleep", &rc.Sleep},
			{"stress", &rc.Stress},
			{"exercise", &rc.Exercise},
			{"age", &rc.Age},
		} {
			v, err := strconv.ParseFloat(field(nc.name), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: parse %s: %w", row, nc.name, err)
			}
			*nc.dst = v
		}

		ds.Records = append(ds.Records, rc)
	}
	return ds, nil
}

// ParseSymptoms decodes the JSON-array symptoms field. Any malformed value
// yields an empty list rather than an error.
func ParseSymptoms(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil
	}
	return out
}

func parseTimestamp(s string) (time.Time, error) {
	for _, l := range timestampLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse timestamp %q: no known layout", s)
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.Records) }

// UniqueUsers counts distinct userId values.
func (d *Dataset) UniqueUsers() int {
	seen := make(map[string]struct{}, len(d.Records))
	for _, r := range d.Records {
		seen[r.UserID] = struct{}{}
	}
	return len(seen)
}

// DateRange returns the earliest and latest timestamps in the dataset.
func (d *Dataset) DateRange() (min, max time.Time) {
	for i, r := range d.Records {
		if i == 0 || r.Timestamp.Before(min) {
			min = r.Timestamp
		}
		if i == 0 || r.Timestamp.After(max) {
			max = r.Timestamp
		}
	}
	return min, max
}
