package dex

import (
	"fmt"
	"slices"
	"sync"

	"github.com/FlagBrew/digidex/internal/models"
)

type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewGrid, ViewList:
		return ViewMode(s), nil
	default:
		return "", fmt.Errorf("unknown view mode %q", s)
	}
}

// Session is the state of one viewer: what they searched for, what they
// starred, what they are comparing and which detail they have open.
type Session struct {
	ID string

	mu          sync.Mutex
	filter      Filter
	favorites   Favorites
	compareMode bool
	comparison  Comparison
	sound       bool
	view        ViewMode
	selected    int
	listeners   []func()
}

func NewSession(id string) *Session {
	return &Session{
		ID:     id,
		filter: Filter{Level: AllLevels},
		sound:  true,
		view:   ViewGrid,
	}
}

// OnChange registers fn to run after every change to the session. fn runs on
// the goroutine that made the change, after the session is unlocked, and
// must not block.
func (s *Session) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// update applies fn under the lock, then notifies the listeners.
func (s *Session) update(fn func()) {
	s.mu.Lock()
	fn()
	listeners := s.listeners
	s.mu.Unlock()

	for _, l := range listeners {
		l()
	}
}

func (s *Session) SetSearch(search string) {
	s.update(func() { s.filter.Search = search })
}

func (s *Session) SetLevel(level string) {
	s.update(func() { s.filter.Level = level })
}

func (s *Session) Filter() Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

func (s *Session) SetViewMode(mode ViewMode) {
	s.update(func() { s.view = mode })
}

func (s *Session) ViewMode() ViewMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *Session) SetSound(on bool) {
	s.update(func() { s.sound = on })
}

func (s *Session) ToggleSound() (on bool) {
	s.update(func() {
		s.sound = !s.sound
		on = s.sound
	})
	return on
}

func (s *Session) Sound() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sound
}

// SetCompareMode switches compare mode. Picks survive leaving compare mode.
func (s *Session) SetCompareMode(on bool) {
	s.update(func() { s.compareMode = on })
}

func (s *Session) ToggleCompareMode() (on bool) {
	s.update(func() {
		s.compareMode = !s.compareMode
		on = s.compareMode
	})
	return on
}

func (s *Session) CompareMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.compareMode
}

func (s *Session) ToggleFavorite(id int) (favorite bool) {
	s.update(func() { favorite = s.favorites.Toggle(id) })
	return favorite
}

func (s *Session) IsFavorite(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.Has(id)
}

func (s *Session) ToggleCompare(d models.Digimon) (result CompareResult) {
	s.update(func() { result = s.comparison.Toggle(d) })
	return result
}

func (s *Session) IsComparing(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.comparison.Has(id)
}

// Open shows the detail of id. In compare mode a click picks instead of
// opening, so Open does nothing and returns false.
func (s *Session) Open(id int) (opened bool) {
	s.update(func() {
		if s.compareMode {
			return
		}
		s.selected = id
		opened = true
	})
	return opened
}

func (s *Session) Close() {
	s.update(func() { s.selected = 0 })
}

// Selected is the id with an open detail, or 0.
func (s *Session) Selected() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// View is a point-in-time rendering of a session against a catalog.
type View struct {
	ID          string           `json:"id,omitempty"`
	Loading     bool             `json:"loading"`
	Search      string           `json:"search"`
	Level       string           `json:"level"`
	Levels      []string         `json:"levels"`
	ViewMode    ViewMode         `json:"view_mode"`
	Sound       bool             `json:"sound"`
	CompareMode bool             `json:"compare_mode"`
	Total       int              `json:"total"`
	Digimon     []models.Digimon `json:"digimon"`
	Favorites   []int            `json:"favorites"`
	Comparing   []models.Digimon `json:"comparing"`
	Verdict     *Verdict         `json:"verdict,omitempty"`
	Selected    *models.Digimon  `json:"selected,omitempty"`
}

func (s *Session) Snapshot(cat *Catalog) View {
	entries, loading := cat.State()

	s.mu.Lock()
	defer s.mu.Unlock()

	visible := s.filter.Apply(entries)
	v := View{
		ID:          s.ID,
		Loading:     loading,
		Search:      s.filter.Search,
		Level:       s.filter.Level,
		Levels:      Levels(entries),
		ViewMode:    s.view,
		Sound:       s.sound,
		CompareMode: s.compareMode,
		Total:       len(visible),
		Digimon:     visible,
		Favorites:   s.favorites.IDs(),
		Comparing:   s.comparison.Picks(),
	}

	// The verdict banner only shows while comparing.
	if verdict, ok := s.comparison.Verdict(); ok && s.compareMode {
		v.Verdict = &verdict
	}

	if s.selected != 0 {
		if i := slices.IndexFunc(entries, func(d models.Digimon) bool { return d.ID == s.selected }); i >= 0 {
			v.Selected = &entries[i]
		}
	}

	return v
}
