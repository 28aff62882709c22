package report

import (
	"bytes"
	"testing"

	"github.com/FlagBrew/digidex/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRow(t *testing.T) {
	d := models.Digimon{
		ID: 3, Name: "Greymon", Level: "Champion", Type: "Vaccine", Attribute: "Fire",
		HP: 1000, Attack: 200, Defense: 150, Speed: 100,
	}

	assert.Equal(t, []string{"3", "Greymon", "Champion", "Vaccine", "🔥 Fire", "1000", "200", "150", "100", "1450"}, Row(d))
}

func TestRender(t *testing.T) {
	list := []models.Digimon{
		{ID: 1, Name: "Agumon", Level: "Rookie", Type: "Vaccine", Attribute: "Fire", HP: 600, Attack: 100, Defense: 80, Speed: 90},
		{ID: 2, Name: "Gabumon", Level: "Rookie", Type: "Data", Attribute: "Water", HP: 700, Attack: 90, Defense: 110, Speed: 70},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, list))

	out := buf.String()
	assert.Contains(t, out, "Agumon")
	assert.Contains(t, out, "Gabumon")
	assert.Contains(t, out, "Power")
	assert.Contains(t, out, "Total: 2 Digimon")
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, nil))
	assert.Contains(t, buf.String(), "Total: 0 Digimon")
}
