package dex

import (
	"testing"

	"github.com/FlagBrew/digidex/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withPower builds an entry whose stats add up to total.
func withPower(id int, name string, total int) models.Digimon {
	return models.Digimon{ID: id, Name: name, HP: total - 300, Attack: 100, Defense: 100, Speed: 100}
}

func TestComparisonToggle(t *testing.T) {
	var c Comparison
	a := withPower(1, "Agumon", 1000)
	b := withPower(2, "Gabumon", 900)
	x := withPower(3, "Patamon", 800)

	assert.Equal(t, CompareAdded, c.Toggle(a))
	assert.Equal(t, CompareAdded, c.Toggle(b))
	assert.Equal(t, 2, c.Len())

	assert.Equal(t, CompareFull, c.Toggle(x))
	assert.Equal(t, []models.Digimon{a, b}, c.Picks())
	assert.False(t, c.Has(3))

	assert.Equal(t, CompareRemoved, c.Toggle(a))
	assert.Equal(t, []models.Digimon{b}, c.Picks())

	assert.Equal(t, CompareAdded, c.Toggle(x))
	assert.Equal(t, []models.Digimon{b, x}, c.Picks())

	c.Reset()
	assert.Zero(t, c.Len())
}

func TestComparisonVerdict(t *testing.T) {
	var c Comparison
	_, ok := c.Verdict()
	assert.False(t, ok)

	c.Toggle(withPower(1, "Agumon", 1000))
	_, ok = c.Verdict()
	assert.False(t, ok)

	c.Toggle(withPower(2, "Gabumon", 900))
	v, ok := c.Verdict()
	require.True(t, ok)
	assert.Equal(t, [2]int{1000, 900}, v.Totals)
	assert.Equal(t, 0, v.Winner)
	assert.False(t, v.Tie)
	assert.Equal(t, "Agumon Wins!", v.Message())
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name    string
		a, b    models.Digimon
		winner  int
		tie     bool
		message string
	}{
		{
			name:    "first wins",
			a:       withPower(1, "Agumon", 1000),
			b:       withPower(2, "Gabumon", 900),
			winner:  0,
			message: "Agumon Wins!",
		},
		{
			name:    "second wins",
			a:       withPower(1, "Agumon", 900),
			b:       withPower(2, "Gabumon", 1000),
			winner:  1,
			message: "Gabumon Wins!",
		},
		{
			name:    "tie",
			a:       withPower(1, "Agumon", 950),
			b:       withPower(2, "Gabumon", 950),
			winner:  -1,
			tie:     true,
			message: "It's a Tie!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Compare(tt.a, tt.b)
			assert.Equal(t, tt.winner, v.Winner)
			assert.Equal(t, tt.tie, v.Tie)
			assert.Equal(t, tt.message, v.Message())
		})
	}
}

func TestCompareResultString(t *testing.T) {
	assert.Equal(t, "added", CompareAdded.String())
	assert.Equal(t, "removed", CompareRemoved.String())
	assert.Equal(t, "full", CompareFull.String())
	assert.Equal(t, "CompareResult(9)", CompareResult(9).String())
}
