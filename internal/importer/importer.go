package importer

import (
	"bufio"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"scoutbase/internal/board"
	"scoutbase/internal/entry"
	"scoutbase/internal/timefmt"
)

// lineGrammar is the strict shape of one scanned entry after the trailing
// comma column has been discarded.
var lineGrammar = regexp.MustCompile(`^(\d{1,3})_(\d{1,4})_([^_]+)_([0-9a-f]{8})_([0-9a-f]{8})_((?:[0-9a-f]{4})*)_(.*)$`)

// Scanner imports raw entries from a directory of scanned source files.
type Scanner struct {
	dir    string
	boards *board.Finder
	log    *slog.Logger
}

// NewScanner builds a Scanner over a source directory.
func NewScanner(dir string, boards *board.Finder, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{dir: dir, boards: boards, log: logger}
}

// Scan reads every source file and returns the parsed raw entries in
// first-seen order. A missing source directory is not an error; it simply
// yields no entries.
func (s *Scanner) Scan() ([]entry.Raw, error) {
	lines, err := s.collectLines()
	if err != nil {
		return nil, err
	}

	entries := make([]entry.Raw, 0, len(lines))
	for _, line := range lines {
		raw, err := s.parseLine(line)
		if err != nil {
			return nil, err
		}
		entries = append(entries, raw)
	}

	s.log.Debug("source scan complete", "dir", s.dir, "entries", len(entries))
	return entries, nil
}

// collectLines walks the tree, applies the grammar, and dedupes by exact
// line equality while preserving first-seen order.
func (s *Scanner) collectLines() ([]string, error) {
	if _, err := os.Stat(s.dir); err != nil {
		if os.IsNotExist(err) {
			s.log.Warn("source directory missing, nothing to import", "dir", s.dir)
			return nil, nil
		}
		return nil, fmt.Errorf("stat source directory %q: %w", s.dir, err)
	}

	seen := make(map[string]struct{})
	var ordered []string
	skipped := 0

	walkErr := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".csv") {
			return nil
		}

		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open source file %q: %w", path, err)
		}
		defer file.Close()

		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := stripTrailingColumn(scanner.Text())
			if !lineGrammar.MatchString(line) {
				skipped++
				continue
			}
			if _, dup := seen[line]; dup {
				continue
			}
			seen[line] = struct{}{}
			ordered = append(ordered, line)
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read source file %q: %w", path, err)
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk source directory %q: %w", s.dir, walkErr)
	}

	if skipped > 0 {
		s.log.Debug("skipped non-matching lines", "dir", s.dir, "skipped", skipped)
	}
	return ordered, nil
}

// stripTrailingColumn drops the final comma-separated column and rejoins
// the rest. A line with no comma at all collapses to the empty string,
// which the grammar then rejects.
func stripTrailingColumn(line string) string {
	parts := strings.Split(strings.TrimRight(line, "\r\n"), ",")
	return strings.Join(parts[:len(parts)-1], "")
}

func (s *Scanner) parseLine(line string) (entry.Raw, error) {
	groups := lineGrammar.FindStringSubmatch(line)
	if groups == nil {
		// collectLines only forwards matching lines.
		return entry.Raw{}, fmt.Errorf("line %q does not match entry grammar", line)
	}

	match, err := strconv.Atoi(groups[1])
	if err != nil {
		return entry.Raw{}, fmt.Errorf("parse match number %q: %w", groups[1], err)
	}
	team, err := strconv.Atoi(groups[2])
	if err != nil {
		return entry.Raw{}, fmt.Errorf("parse team number %q: %w", groups[2], err)
	}
	startTime, err := strconv.ParseInt(groups[4], 16, 64)
	if err != nil {
		return entry.Raw{}, fmt.Errorf("parse start time token %q: %w", groups[4], err)
	}
	boardID, err := strconv.ParseInt(groups[5], 16, 64)
	if err != nil {
		return entry.Raw{}, fmt.Errorf("parse board id token %q: %w", groups[5], err)
	}

	// Unknown board ids propagate: they mean the scanned fleet and the local
	// board definitions have diverged, which must not be papered over.
	b, err := s.boards.GetBoardByID(int(boardID))
	if err != nil {
		return entry.Raw{}, fmt.Errorf("resolve board id %#x for line %q: %w", boardID, line, err)
	}

	return entry.Raw{
		Match:     match,
		Team:      team,
		Name:      groups[3],
		StartTime: timefmt.DisplayUnix(startTime),
		Board:     b.Name(),
		Data:      groups[6],
		Comments:  groups[7],
	}, nil
}
