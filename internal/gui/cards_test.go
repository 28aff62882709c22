package gui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/FlagBrew/digidex/internal/dex"
	"github.com/FlagBrew/digidex/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBar(t *testing.T) {
	tests := []struct {
		percent float64
		filled  int
	}{
		{0, 0},
		{50, 5},
		{100, 10},
		{140, 10},
		{-20, 0},
		{33, 3},
	}

	for _, tt := range tests {
		got := bar(tt.percent, 10)
		assert.Equal(t, 10, utf8.RuneCountInString(got))
		assert.Equal(t, tt.filled, strings.Count(got, "█"), "percent %v", tt.percent)
	}
}

func TestCardLabelMarkers(t *testing.T) {
	d := models.Digimon{Name: "Agumon", Level: models.LevelRookie}

	assert.NotContains(t, cardLabel(d, false, false), "★")
	assert.Contains(t, cardLabel(d, true, false), "★")
	assert.Contains(t, cardLabel(d, false, true), "⚔")
	assert.Contains(t, cardLabel(d, false, false), dex.LevelColor(models.LevelRookie).From)
}

func TestDetailText(t *testing.T) {
	d := models.Digimon{
		Name: "Agumon", Level: models.LevelRookie, HP: 750,
		Attack: 125, Defense: 100, Speed: 60,
		Type: "Vaccine", Attribute: "Fire", Description: "A Rookie level Digimon.",
	}

	text := detailText(d, false)
	assert.Contains(t, text, "Power: 1035")
	assert.Contains(t, text, "A Rookie level Digimon.")
	assert.Contains(t, text, "🔥 Fire")
	assert.Contains(t, text, strings.Repeat("█", barWidth/2))
}

func TestCompareText(t *testing.T) {
	a := models.Digimon{ID: 1, Name: "Agumon", HP: 500}
	b := models.Digimon{ID: 2, Name: "Gabumon", HP: 600}

	assert.Contains(t, compareText(true, nil, nil), "compare")
	assert.Contains(t, compareText(true, []models.Digimon{a}, nil), "Pick 1 more")

	v := dex.Compare(a, b)
	assert.Contains(t, compareText(true, []models.Digimon{a, b}, &v), "Gabumon Wins!")

	tie := dex.Compare(a, a)
	assert.Contains(t, compareText(true, []models.Digimon{a, a}, &tie), "It's a Tie!")

	off := compareText(false, []models.Digimon{a, b}, nil)
	assert.Contains(t, off, "Compare mode is off")
	assert.Contains(t, off, "2/2 picked")
	assert.NotContains(t, off, "Wins!")
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Total: 12 Digimon • Favorites: 3 • Comparing: 1/2", statusText(12, 3, 1))
}

func TestGrid(t *testing.T) {
	row, col := gridCell(9, 4)
	assert.Equal(t, 2, row)
	assert.Equal(t, 1, col)

	assert.Equal(t, 9, gridIndex(2, 1, 4, 10))
	assert.Equal(t, -1, gridIndex(2, 2, 4, 10))
	assert.Equal(t, -1, gridIndex(0, 4, 4, 10))
	assert.Equal(t, -1, gridIndex(-1, 0, 4, 10))
}
