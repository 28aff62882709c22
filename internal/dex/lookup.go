package dex

// Gradient is a two-stop color used behind level badges.
type Gradient struct {
	From string `json:"from"`
	To   string `json:"to"`
}

var (
	defaultGradient  = Gradient{From: "#9ca3af", To: "#4b5563"}
	defaultTypeColor = "#6b7280"
	unknownIcon      = "❓"

	levelGradients = map[string]Gradient{
		"Fresh":       {From: "#4ade80", To: "#16a34a"},
		"In Training": {From: "#60a5fa", To: "#2563eb"},
		"Rookie":      {From: "#facc15", To: "#ca8a04"},
		"Champion":    {From: "#fb923c", To: "#ea580c"},
		"Ultimate":    {From: "#c084fc", To: "#9333ea"},
		"Mega":        {From: "#f87171", To: "#dc2626"},
		"Armor":       {From: "#f472b6", To: "#db2777"},
	}

	typeColors = map[string]string{
		"Vaccine": "#3b82f6",
		"Data":    "#22c55e",
		"Virus":   "#a855f7",
	}

	attributeIcons = map[string]string{
		"Fire":    "🔥",
		"Water":   "💧",
		"Earth":   "🌍",
		"Wind":    "💨",
		"Thunder": "⚡",
		"Dark":    "🌑",
		"Light":   "✨",
	}
)

func LevelColor(level string) Gradient {
	if g, ok := levelGradients[level]; ok {
		return g
	}
	return defaultGradient
}

func TypeColor(t string) string {
	if c, ok := typeColors[t]; ok {
		return c
	}
	return defaultTypeColor
}

func AttributeIcon(attribute string) string {
	if i, ok := attributeIcons[attribute]; ok {
		return i
	}
	return unknownIcon
}
