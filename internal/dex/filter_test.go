package dex

import (
	"math/rand/v2"
	"testing"

	"github.com/FlagBrew/digidex/internal/models"
	"github.com/stretchr/testify/assert"
)

func names(list []models.Digimon) []string {
	out := make([]string, 0, len(list))
	for _, d := range list {
		out = append(out, d.Name)
	}
	return out
}

func TestFilterApply(t *testing.T) {
	catalog := NewEnricher(rand.NewPCG(1, 1)).Enrich(rawFixture())

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "empty search and all levels",
			filter: Filter{Level: AllLevels},
			want:   []string{"Koromon", "Agumon", "Greymon", "MetalGreymon", "WarGreymon"},
		},
		{
			name:   "case insensitive substring",
			filter: Filter{Search: "GREY", Level: AllLevels},
			want:   []string{"Greymon", "MetalGreymon", "WarGreymon"},
		},
		{
			name:   "exact level",
			filter: Filter{Level: "Champion"},
			want:   []string{"Greymon"},
		},
		{
			name:   "level is case sensitive",
			filter: Filter{Level: "champion"},
			want:   []string{},
		},
		{
			name:   "search and level combined",
			filter: Filter{Search: "grey", Level: "Mega"},
			want:   []string{"WarGreymon"},
		},
		{
			name:   "no match",
			filter: Filter{Search: "gabumon", Level: AllLevels},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(tt.filter.Apply(catalog)))
		})
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	catalog := NewEnricher(rand.NewPCG(5, 6)).Enrich(rawFixture())
	for _, f := range []Filter{
		{Level: AllLevels},
		{Search: "mon", Level: AllLevels},
		{Search: "metal", Level: "Ultimate"},
		{Level: "Rookie"},
	} {
		once := f.Apply(catalog)
		assert.Equal(t, once, f.Apply(once))
	}
}

func TestFilterIdentityKeepsOrder(t *testing.T) {
	catalog := NewEnricher(rand.NewPCG(5, 6)).Enrich(rawFixture())
	assert.Equal(t, catalog, Filter{Level: AllLevels}.Apply(catalog))
}

func TestFilterSpecificLevelOnlyReturnsThatLevel(t *testing.T) {
	raw := append(rawFixture(),
		models.RawDigimon{Name: "Gabumon", Level: "Rookie"},
		models.RawDigimon{Name: "Flamedramon", Level: "Armor"},
	)
	catalog := NewEnricher(nil).Enrich(raw)

	for _, d := range (Filter{Level: "Rookie"}).Apply(catalog) {
		assert.Equal(t, "Rookie", d.Level)
	}
	assert.Len(t, Filter{Level: "Rookie"}.Apply(catalog), 2)
}

func TestFilterAgumonExample(t *testing.T) {
	catalog := NewEnricher(nil).Enrich([]models.RawDigimon{{Name: "Agumon", Level: "Rookie"}})

	for _, search := range []string{"agu", "AGU", "aGu"} {
		got := Filter{Search: search, Level: AllLevels}.Apply(catalog)
		if assert.Len(t, got, 1) {
			assert.Equal(t, "Agumon", got[0].Name)
			assert.Equal(t, 1, got[0].ID)
		}
	}

	assert.Empty(t, Filter{Search: "agu", Level: "Champion"}.Apply(catalog))
}

func TestNormalizeLevel(t *testing.T) {
	assert.Equal(t, AllLevels, NormalizeLevel(""))
	assert.Equal(t, "Mega", NormalizeLevel("Mega"))
}

func TestLevels(t *testing.T) {
	catalog := NewEnricher(nil).Enrich([]models.RawDigimon{
		{Name: "Agumon", Level: "Rookie"},
		{Name: "Greymon", Level: "Champion"},
		{Name: "Gabumon", Level: "Rookie"},
		{Name: "Botamon", Level: "Fresh"},
	})

	assert.Equal(t, []string{AllLevels, "Rookie", "Champion", "Fresh"}, Levels(catalog))
	assert.Equal(t, []string{AllLevels}, Levels(nil))
}
