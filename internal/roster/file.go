package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// DecodeJSON reads a JSON array of roster records.
func DecodeJSON(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode roster json: %w", err)
	}
	return records, nil
}

var csvColumns = []string{"Name", "Role", "PreferredLane", "WinRate", "FeedbackBoostedWinRate", "Tier"}

// DecodeCSV reads roster records from CSV with a header row. Columns are matched by
// header name, ignoring case; unknown columns are skipped and only Name is required.
func DecodeCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read roster csv header: %w", err)
	}

	index := map[string]int{}
	for i, h := range header {
		for _, col := range csvColumns {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				index[col] = i
			}
		}
	}
	if _, ok := index["Name"]; !ok {
		return nil, fmt.Errorf("%w: csv header has no Name column", ErrInvalidRecord)
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read roster csv: %w", err)
		}

		field := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		rec := Record{
			Name:          field("Name"),
			Role:          field("Role"),
			PreferredLane: field("PreferredLane"),
			Tier:          field("Tier"),
		}
		if rec.WinRate, rec.winRateFraction, err = parseRate(field("WinRate")); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if rec.FeedbackBoostedWinRate, rec.boostedFraction, err = parseRate(field("FeedbackBoostedWinRate")); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// parseRate reads a win rate cell. A trailing "%" makes the unit explicit: the value
// is divided by 100 here and reported as a fraction so Entry does not rescale it.
func parseRate(s string) (rate *float64, fraction bool, err error) {
	if s == "" {
		return nil, false, nil
	}
	num, percent := strings.CutSuffix(s, "%")
	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return nil, false, fmt.Errorf("%w: bad win rate %q", ErrInvalidRecord, s)
	}
	if percent {
		v /= 100
	}
	return &v, percent, nil
}
