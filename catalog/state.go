package catalog

import (
	"fmt"

	"github.com/qyinm/pokedextui/types"
)

// Mode is the view mode of the app screen
type Mode int

const (
	GridMode Mode = iota
	DetailMode
)

func (m Mode) String() string {
	if m == DetailMode {
		return "detail"
	}
	return "grid"
}

// Tab is one of the four detail panels
type Tab int

const (
	TabInfo Tab = iota
	TabStats
	TabMoves
	TabAbout
)

// Tabs lists the detail tabs in cycle order
var Tabs = []Tab{TabInfo, TabStats, TabMoves, TabAbout}

func (t Tab) String() string {
	switch t {
	case TabInfo:
		return "info"
	case TabStats:
		return "stats"
	case TabMoves:
		return "moves"
	case TabAbout:
		return "about"
	default:
		return "unknown"
	}
}

// Next returns the following tab, wrapping after about
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % len(Tabs))
}

// Direction is a D-pad direction
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Token identifies one selection request. Tokens only grow.
type Token uint64

// State is the navigation state of one session. It is not safe for
// concurrent use; the UI event loop owns it.
type State struct {
	generation types.Generation
	start, end int
	roster     []types.CatalogEntry
	term       string
	page       int
	index      int

	selectedID int
	pendingID  int
	token      Token
	committed  Token

	mode Mode
	tab  Tab
}

// New returns an empty state in grid mode on the info tab
func New() *State {
	return &State{mode: GridMode, tab: TabInfo}
}

func (s *State) Generation() types.Generation { return s.generation }

// Bounds returns the inclusive id range of the active generation
func (s *State) Bounds() (start, end int) { return s.start, s.end }

func (s *State) Roster() []types.CatalogEntry { return s.roster }
func (s *State) SearchTerm() string { return s.term }
func (s *State) Index() int { return s.index }
func (s *State) Mode() Mode { return s.mode }
func (s *State) Tab() Tab { return s.tab }

// SelectedID returns the committed selection, 0 when nothing is selected
func (s *State) SelectedID() int { return s.selectedID }

// HasSelection reports whether a selection has been committed
func (s *State) HasSelection() bool { return s.selectedID != 0 }

// BeginGeneration switches to gen, clearing the search, page and selection
// index. The roster stays until SetRoster replaces it.
func (s *State) BeginGeneration(gen types.Generation) error {
	if !gen.Valid() {
		return fmt.Errorf("unknown generation %d", int(gen))
	}
	s.generation = gen
	s.start, s.end = gen.Range()
	s.term = ""
	s.page = 0
	s.index = 0
	return nil
}

// SetRoster replaces the roster and returns the first entry's id for
// auto-selection. ok is false for an empty roster.
func (s *State) SetRoster(entries []types.CatalogEntry) (firstID int, ok bool) {
	s.roster = entries
	s.page = 0
	s.index = 0
	if len(entries) == 0 {
		return 0, false
	}
	return entries[0].ID, true
}

// SetSearchTerm stores term and returns to the first page
func (s *State) SetSearchTerm(term string) {
	s.term = term
	s.page = 0
	s.clampIndex()
}

// Filtered returns the roster entries matching the search term
func (s *State) Filtered() []types.CatalogEntry {
	return Filter(s.roster, s.term)
}

// VisiblePage returns the current page of the filtered roster, clamping the
// stored page number and selection index into range.
func (s *State) VisiblePage() Page {
	p := Paginate(s.Filtered(), s.page, PageSize)
	s.page = p.Number
	s.index = clampIndex(s.index, len(p.Items))
	return p
}

// SetPage moves the page by delta. It returns false and leaves the state
// unchanged when the move would leave [0, totalPages-1].
func (s *State) SetPage(delta int) bool {
	total := TotalPages(len(s.Filtered()), PageSize)
	next := s.page + delta
	if delta == 0 || next < 0 || next > total-1 {
		return false
	}
	s.page = next
	s.clampIndex()
	return true
}

// Select records id as the pending selection and returns its token.
// The selection becomes current only through Commit.
func (s *State) Select(id int) Token {
	s.token++
	s.pendingID = id
	return s.token
}

// Latest returns the token of the most recent Select call
func (s *State) Latest() Token { return s.token }

// Committed returns the token of the selection on display, zero before the
// first Commit. Follow-up fetches for the displayed entry carry it.
func (s *State) Committed() Token { return s.committed }

// IsCurrent reports whether tok belongs to the latest Select call
func (s *State) IsCurrent(tok Token) bool {
	return tok == s.token
}

// Commit applies the pending selection if tok is the latest token. A
// committed selection returns the view to grid mode.
func (s *State) Commit(tok Token) bool {
	if !s.IsCurrent(tok) {
		return false
	}
	s.selectedID = s.pendingID
	s.committed = tok
	s.mode = GridMode
	return true
}

// Navigate moves the selection index by one step in dir within the visible
// page and returns the id now under the cursor.
func (s *State) Navigate(dir Direction) (int, bool) {
	p := s.VisiblePage()
	if len(p.Items) == 0 {
		return 0, false
	}

	idx := s.index
	switch dir {
	case Up:
		idx -= Columns
	case Down:
		idx += Columns
	case Left:
		idx--
	case Right:
		idx++
	}
	s.index = clampIndex(idx, len(p.Items))
	return p.Items[s.index].ID, true
}

// SelectAt moves the cursor to index on the visible page
func (s *State) SelectAt(index int) (int, bool) {
	p := s.VisiblePage()
	if index < 0 || index >= len(p.Items) {
		return 0, false
	}
	s.index = index
	return p.Items[index].ID, true
}

// PressA is the confirm action. In grid mode it opens the detail view on
// the info tab; in detail mode it cycles to the next tab. It returns false
// when there is nothing to show.
func (s *State) PressA() bool {
	switch s.mode {
	case GridMode:
		if !s.HasSelection() {
			return false
		}
		s.mode = DetailMode
		s.tab = TabInfo
	case DetailMode:
		s.tab = s.tab.Next()
	}
	return true
}

// PressB is the cancel action. It leaves detail mode.
func (s *State) PressB() bool {
	if s.mode != DetailMode {
		return false
	}
	s.mode = GridMode
	return true
}

// SetTab jumps straight to tab
func (s *State) SetTab(tab Tab) {
	if tab < TabInfo || tab > TabAbout {
		return
	}
	s.tab = tab
}

func (s *State) clampIndex() {
	p := Paginate(s.Filtered(), s.page, PageSize)
	s.index = clampIndex(s.index, len(p.Items))
}

func clampIndex(idx, n int) int {
	if n == 0 {
		return 0
	}
	return clamp(idx, 0, n-1)
}
