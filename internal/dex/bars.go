package dex

import "github.com/FlagBrew/digidex/internal/models"

// Stat names a bar on the detail view.
type Stat string

const (
	StatHP      Stat = "hp"
	StatAttack  Stat = "attack"
	StatDefense Stat = "defense"
	StatSpeed   Stat = "speed"
)

const (
	hpScale   = 1500
	statScale = 250
)

// StatPercent is the bar width for value, in percent of the stat's scale.
func StatPercent(stat Stat, value int) float64 {
	scale := statScale
	if stat == StatHP {
		scale = hpScale
	}
	return float64(value) / float64(scale) * 100
}

// Bars are the four detail-view bar widths of one entry.
type Bars struct {
	HP      float64 `json:"hp"`
	Attack  float64 `json:"attack"`
	Defense float64 `json:"defense"`
	Speed   float64 `json:"speed"`
}

func BarsFor(d models.Digimon) Bars {
	return Bars{
		HP:      StatPercent(StatHP, d.HP),
		Attack:  StatPercent(StatAttack, d.Attack),
		Defense: StatPercent(StatDefense, d.Defense),
		Speed:   StatPercent(StatSpeed, d.Speed),
	}
}
