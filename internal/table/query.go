package table

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"scoutbase/internal/entry"
)

// Criteria narrows the table by field. A nil or empty slice imposes no
// constraint on its field; supplied fields combine with AND, values within
// one field with OR.
type Criteria struct {
	Match  []int
	Team   []int
	Name   []string
	Board  []string
	Edited []string
}

// View is the ordered identity list produced by Filter or Search. It is a
// snapshot: rows removed after the view was computed simply stop resolving.
type View struct {
	ids []int64
}

// IDs returns the view's row identities in display order.
func (v View) IDs() []int64 { return v.ids }

// Len returns the number of identities in the view.
func (v View) Len() int { return len(v.ids) }

// Empty reports whether the view holds no rows.
func (v View) Empty() bool { return len(v.ids) == 0 }

// caseFold collapses case distinctions for the substring name search.
var caseFold = cases.Fold()

// Filter keeps rows whose fields are exact members of each supplied value
// set, sorted ascending by (Match, Team).
func (t *Table) Filter(c Criteria) View {
	return t.collect(func(row *entry.Row) bool {
		if len(c.Match) > 0 && !containsInt(c.Match, row.Match) {
			return false
		}
		if len(c.Team) > 0 && !containsInt(c.Team, row.Team) {
			return false
		}
		if len(c.Name) > 0 && !containsString(c.Name, row.Name) {
			return false
		}
		return matchBoardEdited(c, row)
	})
}

// Search relaxes Filter's matching: Match and Team compare by decimal-string
// prefix, Name by case-insensitive substring containment. Board and Edited
// stay exact.
func (t *Table) Search(c Criteria) View {
	return t.collect(func(row *entry.Row) bool {
		if len(c.Match) > 0 && !prefixMatch(c.Match, row.Match) {
			return false
		}
		if len(c.Team) > 0 && !prefixMatch(c.Team, row.Team) {
			return false
		}
		if len(c.Name) > 0 && !substringMatch(c.Name, row.Name) {
			return false
		}
		return matchBoardEdited(c, row)
	})
}

func matchBoardEdited(c Criteria, row *entry.Row) bool {
	if len(c.Board) > 0 && !containsString(c.Board, row.Board) {
		return false
	}
	if len(c.Edited) > 0 && !containsString(c.Edited, row.Edited) {
		return false
	}
	return true
}

func (t *Table) collect(keep func(*entry.Row) bool) View {
	matched := make([]*entry.Row, 0, len(t.rows))
	for _, row := range t.rows {
		if keep(row) {
			matched = append(matched, row)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Match != matched[j].Match {
			return matched[i].Match < matched[j].Match
		}
		return matched[i].Team < matched[j].Team
	})

	ids := make([]int64, len(matched))
	for i, row := range matched {
		ids[i] = row.ID
	}
	return View{ids: ids}
}

func containsInt(values []int, v int) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func containsString(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func prefixMatch(prefixes []int, v int) bool {
	decimal := strconv.Itoa(v)
	for _, prefix := range prefixes {
		if strings.HasPrefix(decimal, strconv.Itoa(prefix)) {
			return true
		}
	}
	return false
}

func substringMatch(needles []string, name string) bool {
	folded := caseFold.String(name)
	for _, needle := range needles {
		if strings.Contains(folded, caseFold.String(needle)) {
			return true
		}
	}
	return false
}

// Relative resolves the row at offset positions from currentID within the
// view, wrapping around both ends. When currentID is not in the view the
// first row is returned instead; an empty view resolves to nil. The nil
// return is the empty marker, not an error.
func (t *Table) Relative(v View, currentID int64, offset int) *entry.Row {
	if v.Empty() {
		return nil
	}

	position := 0
	for i, id := range v.ids {
		if id == currentID {
			position = ((i+offset)%len(v.ids) + len(v.ids)) % len(v.ids)
			break
		}
	}
	return t.byID[v.ids[position]]
}

// Next resolves the row after currentID in the view.
func (t *Table) Next(v View, currentID int64) *entry.Row {
	return t.Relative(v, currentID, 1)
}

// Previous resolves the row before currentID in the view.
func (t *Table) Previous(v View, currentID int64) *entry.Row {
	return t.Relative(v, currentID, -1)
}
