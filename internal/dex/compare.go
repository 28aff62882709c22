package dex

import (
	"fmt"
	"slices"

	"github.com/FlagBrew/digidex/internal/models"
)

// MaxCompare is how many entries the comparison panel holds.
const MaxCompare = 2

// CompareResult says what a Comparison.Toggle did.
type CompareResult int

const (
	CompareAdded CompareResult = iota
	CompareRemoved
	// CompareFull means the panel already held two entries and the new one
	// was ignored.
	CompareFull
)

func (r CompareResult) String() string {
	switch r {
	case CompareAdded:
		return "added"
	case CompareRemoved:
		return "removed"
	case CompareFull:
		return "full"
	default:
		return fmt.Sprintf("CompareResult(%d)", int(r))
	}
}

// Comparison is the ordered list of entries picked for side-by-side view.
type Comparison struct {
	picks []models.Digimon
}

// Toggle removes d when it is already picked, appends it when there is room,
// and otherwise leaves the list alone.
func (c *Comparison) Toggle(d models.Digimon) CompareResult {
	if i := c.index(d.ID); i >= 0 {
		c.picks = slices.Delete(c.picks, i, i+1)
		return CompareRemoved
	}

	if len(c.picks) >= MaxCompare {
		return CompareFull
	}

	c.picks = append(c.picks, d)
	return CompareAdded
}

func (c *Comparison) Has(id int) bool {
	return c.index(id) >= 0
}

func (c *Comparison) Len() int {
	return len(c.picks)
}

// Picks returns a copy of the picked entries in pick order.
func (c *Comparison) Picks() []models.Digimon {
	return append([]models.Digimon{}, c.picks...)
}

func (c *Comparison) Reset() {
	c.picks = nil
}

func (c *Comparison) index(id int) int {
	return slices.IndexFunc(c.picks, func(d models.Digimon) bool { return d.ID == id })
}

// Verdict is the outcome of a two-way comparison.
type Verdict struct {
	Contenders [MaxCompare]models.Digimon `json:"contenders"`
	Totals     [MaxCompare]int            `json:"totals"`
	// Winner is the index into Contenders, or -1 on a tie.
	Winner int  `json:"winner"`
	Tie    bool `json:"tie"`
}

// Message is the banner shown under the comparison panel.
func (v Verdict) Message() string {
	if v.Tie {
		return "It's a Tie!"
	}
	return v.Contenders[v.Winner].Name + " Wins!"
}

// Verdict compares the two picks. ok is false unless exactly two entries are
// picked.
func (c *Comparison) Verdict() (v Verdict, ok bool) {
	if len(c.picks) != MaxCompare {
		return Verdict{}, false
	}
	return Compare(c.picks[0], c.picks[1]), true
}

// Compare declares the entry with the strictly greater power the winner.
func Compare(a, b models.Digimon) Verdict {
	v := Verdict{
		Contenders: [MaxCompare]models.Digimon{a, b},
		Totals:     [MaxCompare]int{a.Power(), b.Power()},
		Winner:     -1,
	}

	switch {
	case v.Totals[0] > v.Totals[1]:
		v.Winner = 0
	case v.Totals[1] > v.Totals[0]:
		v.Winner = 1
	default:
		v.Tie = true
	}

	return v
}
