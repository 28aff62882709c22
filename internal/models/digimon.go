package models

// RawDigimon is one element of the upstream catalog array.
type RawDigimon struct {
	Name  string `json:"name"`
	Level string `json:"level"`
	Img   string `json:"img"`
}

// Digimon is a catalog entry after enrichment. Stats are assigned once and
// never recomputed.
type Digimon struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Level       string `json:"level"`
	Img         string `json:"img"`
	HP          int    `json:"hp"`
	Attack      int    `json:"attack"`
	Defense     int    `json:"defense"`
	Speed       int    `json:"speed"`
	Type        string `json:"type"`
	Attribute   string `json:"attribute"`
	Description string `json:"description"`
}

// Power is the aggregate used by the comparison panel.
func (d Digimon) Power() int {
	return d.HP + d.Attack + d.Defense + d.Speed
}

const (
	LevelFresh      = "Fresh"
	LevelInTraining = "In Training"
	LevelRookie     = "Rookie"
	LevelChampion   = "Champion"
	LevelUltimate   = "Ultimate"
	LevelMega       = "Mega"
	LevelArmor      = "Armor"
)

var (
	Types      = []string{"Vaccine", "Data", "Virus"}
	Attributes = []string{"Fire", "Water", "Earth", "Wind", "Thunder", "Dark", "Light"}
)
