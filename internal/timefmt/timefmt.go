// Package timefmt renders and parses the display timestamps stored in the
// entry tables. Every persisted time field uses the same layout so the
// importer, query layer, and exporter agree on string comparisons.
package timefmt

import (
	"fmt"
	"time"
)

// Layout is the canonical display form for all persisted timestamps.
const Layout = "2006-01-02 15:04:05"

// Display renders a time in the canonical display form (UTC).
func Display(t time.Time) string {
	return t.UTC().Format(Layout)
}

// DisplayUnix renders a Unix timestamp in the canonical display form.
func DisplayUnix(sec int64) string {
	return Display(time.Unix(sec, 0))
}

// Parse converts a display-form timestamp back into a time.Time.
func Parse(value string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse display time %q: %w", value, err)
	}
	return t, nil
}
