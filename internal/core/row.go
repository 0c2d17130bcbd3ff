package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Row is one parsed spreadsheet row: column label → raw cell value. Upstream
// parsers hand cells over as strings, numbers or timestamps; the pipeline
// never sees the file itself.
type Row map[string]any

// cellTimeLayouts covers the timestamp renderings the dispatch exports
// actually produce.
var cellTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/06 15:04",
	"2006-01-02",
	"1/2/2006",
}

// CellString renders the cell under label as trimmed text. Absent or nil
// cells yield the empty string.
func (r Row) CellString(label string) string {
	v, ok := r[label]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// CellRef returns the cell as a nullable text column value: nil for blank or
// absent cells.
func (r Row) CellRef(label string) *string {
	s := r.CellString(label)
	if s == "" {
		return nil
	}
	return &s
}

// CellTime interprets the cell under label as a timestamp. Native time values
// pass through; text is tried against the known export layouts. Blank or
// unparseable cells yield nil — a bad timestamp never blocks the row.
func (r Row) CellTime(label string) *time.Time {
	v, ok := r[label]
	if !ok || v == nil {
		return nil
	}
	if ts, ok := v.(time.Time); ok {
		utc := ts.UTC()
		return &utc
	}
	s := r.CellString(label)
	if s == "" {
		return nil
	}
	for _, layout := range cellTimeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			utc := ts.UTC()
			return &utc
		}
	}
	return nil
}
