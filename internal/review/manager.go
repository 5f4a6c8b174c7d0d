package review

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"scoutbase/internal/board"
	"scoutbase/internal/config"
	"scoutbase/internal/entry"
	"scoutbase/internal/export"
	"scoutbase/internal/importer"
	"scoutbase/internal/store"
	"scoutbase/internal/table"
	"scoutbase/internal/timefmt"
)

// Manager coordinates one review session over the entry tables.
type Manager struct {
	cfg     *config.Config
	log     *slog.Logger
	boards  *board.Finder
	store   *store.Store
	scanner *importer.Scanner

	raw      []entry.Raw
	table    *table.Table
	firstRun bool

	now func() time.Time
}

// Open loads the persisted tables and prepares a session. A failed load
// degrades to empty tables with a logged diagnostic rather than refusing
// to start; the next update and save rebuild the database. Open never
// scans source files, so opening a fresh database persists nothing until
// an explicit Update and Save.
func Open(ctx context.Context, cfg *config.Config, st *store.Store, logger *slog.Logger) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}

	boards, err := board.NewFinder(cfg.Paths.BoardDir)
	if err != nil {
		return nil, fmt.Errorf("load boards: %w", err)
	}

	tables := st.Load(ctx)
	if tables.Degraded {
		logger.Warn("entry tables unreadable, starting with empty tables",
			"db", st.Path(), "error", tables.Err)
	}

	return &Manager{
		cfg:      cfg,
		log:      logger,
		boards:   boards,
		store:    st,
		scanner:  importer.NewScanner(cfg.Paths.SourceDir, boards, logger),
		raw:      tables.Raw,
		table:    table.New(tables.Edited),
		firstRun: st.Fresh() && !tables.Degraded,
		now:      time.Now,
	}, nil
}

// FirstRun reports whether this session created the database. Display code
// uses it to prompt for the initial import instead of showing a bare empty
// table.
func (m *Manager) FirstRun() bool { return m.firstRun }

// Boards returns the session's board registry.
func (m *Manager) Boards() *board.Finder { return m.boards }

// Table returns the live edited table.
func (m *Manager) Table() *table.Table { return m.table }

// Raw returns the current raw batch.
func (m *Manager) Raw() []entry.Raw { return m.raw }

// Update rescans the source directory, wholesale-replaces the raw batch,
// and reconciles it into the edited table. Returns the number of newly
// appended rows.
func (m *Manager) Update(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	session := uuid.NewString()
	log := m.log.With("session_id", session)
	log.Info("updating from source files", "dir", m.cfg.Paths.SourceDir)

	raw, err := m.scanner.Scan()
	if err != nil {
		return 0, fmt.Errorf("scan source files: %w", err)
	}

	m.raw = raw
	appended := m.table.Merge(raw)
	log.Info("merge complete", "raw", len(raw), "appended", appended, "rows", m.table.Len())
	return appended, nil
}

// Save persists both tables, replacing the stored snapshot.
func (m *Manager) Save(ctx context.Context) error {
	if err := m.store.SaveRaw(ctx, m.raw); err != nil {
		return err
	}
	if err := m.store.SaveEdited(ctx, m.table.Rows()); err != nil {
		return err
	}
	m.log.Info("tables saved", "db", m.store.Path(), "raw", len(m.raw), "rows", m.table.Len())
	return nil
}

// EntryAt decodes the row with the given identity. Returns (nil, nil) when
// no such row exists; decode and board-resolution failures propagate.
func (m *Manager) EntryAt(id int64) (*entry.Entry, error) {
	row := m.table.Get(id)
	if row == nil {
		return nil, nil
	}
	return m.decodeRow(row)
}

func (m *Manager) decodeRow(row *entry.Row) (*entry.Entry, error) {
	b, err := m.boards.GetBoardByName(row.Board)
	if err != nil {
		return nil, err
	}
	return entry.FromRow(row, b)
}

// Detail returns the decoded edited entry plus, when the row originated
// from a raw import, the pristine raw entry alongside it. The last-edited
// marker is returned separately so display code need not re-read the row.
func (m *Manager) Detail(id int64) (raw *entry.Entry, edited *entry.Entry, lastEdited string, err error) {
	row := m.table.Get(id)
	if row == nil {
		return nil, nil, "", nil
	}

	edited, err = m.decodeRow(row)
	if err != nil {
		return nil, nil, "", err
	}

	if row.RawIndex != nil && *row.RawIndex >= 0 && *row.RawIndex < len(m.raw) {
		original := m.raw[*row.RawIndex]
		b, berr := m.boards.GetBoardByName(original.Board)
		if berr != nil {
			return nil, nil, "", berr
		}
		raw, err = entry.DecodeRaw(original, b)
		if err != nil {
			return nil, nil, "", err
		}
	}

	return raw, edited, row.Edited, nil
}

// SetEntry encodes a modified projection back into its row and refreshes
// the Edited timestamp.
func (m *Manager) SetEntry(e *entry.Entry) error {
	row := m.table.Get(e.RowID)
	if row == nil {
		return fmt.Errorf("set entry: row %d no longer exists", e.RowID)
	}

	data, err := e.EncodeData()
	if err != nil {
		return err
	}

	before := table.Key{Match: row.Match, Team: row.Team, Name: row.Name}
	row.Match = e.Match
	row.Team = e.Team
	row.Name = e.Name
	row.StartTime = e.StartTime
	row.Comments = e.Comments
	row.Board = e.Board.Name()
	row.Data = data
	row.Edited = timefmt.Display(m.now())
	m.table.Touch(row, before)

	m.log.Debug("entry updated", "id", row.ID, "match", row.Match, "team", row.Team)
	return nil
}

// Append adds a manually created entry unless one with the same
// (match, team, name) already exists; either way it returns the decoded
// entry, so a second identical append is a no-op that hands back the first
// row.
func (m *Manager) Append(match, team int, name string) (*entry.Entry, error) {
	if existing := m.table.ExactMatch(match, team, name); existing != nil {
		return m.decodeRow(existing)
	}

	b, err := m.defaultBoard()
	if err != nil {
		return nil, err
	}

	row := m.table.Insert(entry.Row{
		Match:     match,
		Team:      team,
		Name:      name,
		StartTime: timefmt.Display(m.now()),
		Board:     b.Name(),
		Data:      "",
		Comments:  "",
		Edited:    entry.NeverEdited,
	})
	m.log.Info("entry appended", "id", row.ID, "match", match, "team", team, "name", name)
	return m.decodeRow(row)
}

func (m *Manager) defaultBoard() (*board.Board, error) {
	if name := m.cfg.Scouting.DefaultBoard; name != "" {
		return m.boards.GetBoardByName(name)
	}
	return m.boards.First()
}

// Remove deletes the row at id when its identity fields still match.
func (m *Manager) Remove(match, team int, name string, id int64) bool {
	removed := m.table.Remove(match, team, name, id)
	if removed {
		m.log.Info("entry removed", "id", id, "match", match, "team", team, "name", name)
	} else {
		m.log.Warn("remove refused, identity fields do not match", "id", id)
	}
	return removed
}

// Next returns the decoded entry after currentID within the view.
func (m *Manager) Next(v table.View, currentID int64) (*entry.Entry, error) {
	return m.relative(v, currentID, 1)
}

// Previous returns the decoded entry before currentID within the view.
func (m *Manager) Previous(v table.View, currentID int64) (*entry.Entry, error) {
	return m.relative(v, currentID, -1)
}

func (m *Manager) relative(v table.View, currentID int64, offset int) (*entry.Entry, error) {
	row := m.table.Relative(v, currentID, offset)
	if row == nil {
		return nil, nil
	}
	return m.decodeRow(row)
}

// WriteExport serializes the whole edited table, sorted like a blank
// search, to w.
func (m *Manager) WriteExport(w io.Writer) error {
	view := m.table.Filter(table.Criteria{})
	rows := make([]*entry.Row, 0, view.Len())
	for _, id := range view.IDs() {
		if row := m.table.Get(id); row != nil {
			rows = append(rows, row)
		}
	}
	return export.Write(w, rows, m.boards, m.now())
}

// SetClock overrides the session clock. Tests use this to pin timestamps.
func (m *Manager) SetClock(now func() time.Time) {
	if now != nil {
		m.now = now
	}
}
