// Package export serializes edited entries back into the underscore-joined
// line format, one row per line, each stamped with the write time.
package export

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"scoutbase/internal/board"
	"scoutbase/internal/entry"
	"scoutbase/internal/timefmt"
)

// Write renders rows to w. Each line is
// match_team_name_starttimehex_boardid_data_comments, then a comma and the
// write timestamp. Board names resolve through the finder; an unknown board
// aborts the export.
func Write(w io.Writer, rows []*entry.Row, boards *board.Finder, now time.Time) error {
	stamp := timefmt.Display(now)

	for _, row := range rows {
		started, err := timefmt.Parse(row.StartTime)
		if err != nil {
			return fmt.Errorf("export row %d: %w", row.ID, err)
		}
		b, err := boards.GetBoardByName(row.Board)
		if err != nil {
			return fmt.Errorf("export row %d: %w", row.ID, err)
		}

		if _, err := fmt.Fprintf(w, "%d_%d_%s_%s_%d_%s_%s, %s\n",
			row.Match,
			row.Team,
			row.Name,
			strconv.FormatInt(started.Unix(), 16),
			b.ID(),
			row.Data,
			row.Comments,
			stamp,
		); err != nil {
			return fmt.Errorf("write export line for row %d: %w", row.ID, err)
		}
	}
	return nil
}
