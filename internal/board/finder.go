package board

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrUnknownBoard indicates a board name or id that no loaded definition
// matches.
var ErrUnknownBoard = errors.New("unknown board")

// ErrNoBoards indicates the definition directory holds no usable boards.
var ErrNoBoards = errors.New("no board definitions loaded")

type boardFile struct {
	ID     int         `toml:"id"`
	Name   string      `toml:"name"`
	Fields []FieldType `toml:"fields"`
}

// Finder resolves boards loaded from a directory of TOML definitions.
type Finder struct {
	boards []*Board
	byName map[string]*Board
	byID   map[int]*Board
}

// NewFinder reads every *.toml definition in dir. Board order follows the
// lexicographic file-name order of the directory listing, which pins down
// which board First returns.
func NewFinder(dir string) (*Finder, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read board directory %q: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".toml") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	finder := &Finder{
		byName: make(map[string]*Board, len(names)),
		byID:   make(map[int]*Board, len(names)),
	}

	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read board definition %q: %w", path, err)
		}

		var file boardFile
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse board definition %q: %w", path, err)
		}

		b, err := newBoard(file.ID, file.Name, file.Fields)
		if err != nil {
			return nil, fmt.Errorf("board definition %q: %w", path, err)
		}
		if existing, ok := finder.byID[b.ID()]; ok {
			return nil, fmt.Errorf("board definition %q: id %d already used by %q", path, b.ID(), existing.Name())
		}
		if _, ok := finder.byName[b.Name()]; ok {
			return nil, fmt.Errorf("board definition %q: name %q already defined", path, b.Name())
		}

		finder.boards = append(finder.boards, b)
		finder.byName[b.Name()] = b
		finder.byID[b.ID()] = b
	}

	return finder, nil
}

// GetBoardByName resolves a board by its canonical name.
func (f *Finder) GetBoardByName(name string) (*Board, error) {
	if b, ok := f.byName[name]; ok {
		return b, nil
	}
	return nil, fmt.Errorf("%w: name %q", ErrUnknownBoard, name)
}

// GetBoardByID resolves a board by the numeric id carried in data tokens.
func (f *Finder) GetBoardByID(id int) (*Board, error) {
	if b, ok := f.byID[id]; ok {
		return b, nil
	}
	return nil, fmt.Errorf("%w: id %d", ErrUnknownBoard, id)
}

// First returns the default board: the first definition in load order.
func (f *Finder) First() (*Board, error) {
	if len(f.boards) == 0 {
		return nil, ErrNoBoards
	}
	return f.boards[0], nil
}

// Boards returns all loaded boards in load order.
func (f *Finder) Boards() []*Board {
	return f.boards
}
