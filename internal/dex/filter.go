package dex

import (
	"strings"

	"github.com/FlagBrew/digidex/internal/models"
)

// AllLevels is the level selector that matches every entry.
const AllLevels = "all"

// Filter is the search box plus the level dropdown.
type Filter struct {
	Search string
	Level  string
}

// Match reports whether d passes both the name and the level predicate.
// The name match is a case-insensitive substring; the level match is exact.
func (f Filter) Match(d models.Digimon) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(d.Name), strings.ToLower(f.Search)) {
		return false
	}

	return f.Level == AllLevels || f.Level == d.Level
}

// Apply returns the entries matching f, in input order.
func (f Filter) Apply(list []models.Digimon) []models.Digimon {
	out := make([]models.Digimon, 0, len(list))
	for _, d := range list {
		if f.Match(d) {
			out = append(out, d)
		}
	}
	return out
}

// NormalizeLevel maps an empty selector to AllLevels. Used at the edges
// (query strings, flags) where an omitted value means "no filter".
func NormalizeLevel(level string) string {
	if level == "" {
		return AllLevels
	}
	return level
}
