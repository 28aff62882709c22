package digimon

import (
	"github.com/FlagBrew/digidex/internal/dex"
	"github.com/FlagBrew/digidex/internal/models"
)

type card struct {
	models.Digimon
	Power         int          `json:"power"`
	LevelColor    dex.Gradient `json:"level_color"`
	TypeColor     string       `json:"type_color"`
	AttributeIcon string       `json:"attribute_icon"`
}

type detail struct {
	card
	Bars dex.Bars `json:"bars"`
}

type listResponse struct {
	Total   int    `json:"total"`
	Loading bool   `json:"loading"`
	Digimon []card `json:"digimon"`
}

// newCard decorates d with its display lookups.
func newCard(d models.Digimon) card {
	return card{
		Digimon:       d,
		Power:         d.Power(),
		LevelColor:    dex.LevelColor(d.Level),
		TypeColor:     dex.TypeColor(d.Type),
		AttributeIcon: dex.AttributeIcon(d.Attribute),
	}
}

func newDetail(d models.Digimon) detail {
	return detail{card: newCard(d), Bars: dex.BarsFor(d)}
}

func newCards(list []models.Digimon) []card {
	out := make([]card, 0, len(list))
	for _, d := range list {
		out = append(out, newCard(d))
	}
	return out
}
