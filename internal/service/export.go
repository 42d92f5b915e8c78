package service

import (
	"fmt"
	"os"
	"strings"
)

// WorkoutsCSV renders the workout log as CSV. Only the notes column
// can contain commas, so it alone is quoted; embedded quotes are
// doubled per RFC 4180.
func (t *Tracker) WorkoutsCSV() string {
	var b strings.Builder
	b.WriteString("Date,Type,Duration,Rating,Notes\n")
	for _, w := range t.snap.Workouts {
		notes := strings.ReplaceAll(w.Notes, `"`, `""`)
		fmt.Fprintf(&b, "%s,%s,%d,%d,\"%s\"\n",
			w.Date.Format(shortDateLayout), w.Type, w.Duration, w.Rating, notes)
	}
	return b.String()
}

// ExportCSV writes the workout log CSV to path.
func (t *Tracker) ExportCSV(path string) error {
	if err := os.WriteFile(path, []byte(t.WorkoutsCSV()), 0o644); err != nil {
		return fmt.Errorf("writing csv export: %w", err)
	}
	return nil
}
