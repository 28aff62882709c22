package gui

import (
	"fmt"
	"math"
	"strings"

	"github.com/FlagBrew/digidex/internal/dex"
	"github.com/FlagBrew/digidex/internal/models"
	"github.com/gdamore/tcell/v2"
)

const (
	gridColumns = 4
	barWidth    = 30
)

var colorWarning = tcell.ColorRed

// bar draws percent of width as filled blocks. Values outside 0-100 are
// clamped.
func bar(percent float64, width int) string {
	filled := int(math.Round(percent / 100 * float64(width)))
	filled = max(0, min(width, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func cardLabel(d models.Digimon, favorite, comparing bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s::b]%s[-::-]", dex.LevelColor(d.Level).From, d.Name)
	if favorite {
		b.WriteString(" [yellow]★[-]")
	}
	if comparing {
		b.WriteString(" [orange]⚔[-]")
	}
	return b.String()
}

func cardSubtitle(d models.Digimon) string {
	return fmt.Sprintf("[%s]%s[-] %s %s", dex.TypeColor(d.Type), d.Type, dex.AttributeIcon(d.Attribute), d.Level)
}

func detailText(d models.Digimon, favorite bool) string {
	var b strings.Builder
	gradient := dex.LevelColor(d.Level)

	fmt.Fprintf(&b, "[%s::b]%s[-::-]", gradient.From, d.Name)
	if favorite {
		b.WriteString(" [yellow]★[-]")
	}
	fmt.Fprintf(&b, "\n[%s]%s[-]\n\n", gradient.To, d.Level)
	fmt.Fprintf(&b, "Type: [%s]%s[-]\n", dex.TypeColor(d.Type), d.Type)
	fmt.Fprintf(&b, "Attribute: %s %s\n\n", dex.AttributeIcon(d.Attribute), d.Attribute)

	bars := dex.BarsFor(d)
	rows := []struct {
		label   string
		value   int
		percent float64
	}{
		{"HP     ", d.HP, bars.HP},
		{"Attack ", d.Attack, bars.Attack},
		{"Defense", d.Defense, bars.Defense},
		{"Speed  ", d.Speed, bars.Speed},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%s [green]%s[-] %d\n", r.label, bar(r.percent, barWidth), r.value)
	}

	fmt.Fprintf(&b, "\nPower: %d\n\n%s\n\n%s", d.Power(), d.Description, d.Img)
	return b.String()
}

// compareText is the body of the comparison panel. The contenders and the
// verdict only show in compare mode.
func compareText(compareMode bool, picks []models.Digimon, verdict *dex.Verdict) string {
	if !compareMode {
		text := "Compare mode is off, press [yellow]c[-] to turn it on"
		if len(picks) > 0 {
			text += fmt.Sprintf("\n\n%d/%d picked", len(picks), dex.MaxCompare)
		}
		return text
	}

	if len(picks) == 0 {
		return "Press [yellow]c[-] then [yellow]Enter[-] on two Digimon to compare them"
	}

	var b strings.Builder
	for i, d := range picks {
		if i > 0 {
			b.WriteString("  vs  ")
		}
		fmt.Fprintf(&b, "[%s::b]%s[-::-] (%d)", dex.LevelColor(d.Level).From, d.Name, d.Power())
	}

	if verdict == nil {
		fmt.Fprintf(&b, "\n\nPick %d more", dex.MaxCompare-len(picks))
		return b.String()
	}

	color := "green"
	if verdict.Tie {
		color = "yellow"
	}
	fmt.Fprintf(&b, "\n\n[%s::b]%s[-::-]", color, verdict.Message())
	return b.String()
}

func statusText(total, favorites, comparing int) string {
	return fmt.Sprintf("Total: %d Digimon • Favorites: %d • Comparing: %d/%d", total, favorites, comparing, dex.MaxCompare)
}

func headerText(sound, compareMode bool, view dex.ViewMode) string {
	onOff := func(on bool) string {
		if on {
			return "[green]on[-]"
		}
		return "[gray]off[-]"
	}
	return fmt.Sprintf("[::b]Digidex[::-]  sound: %s (s)  compare: %s (c)  view: [yellow]%s[-] (g/l)  quit: esc/q",
		onOff(sound), onOff(compareMode), view)
}

// gridCell places the index-th visible entry in a grid of the given width.
func gridCell(index, columns int) (row, col int) {
	return index / columns, index % columns
}

// gridIndex is the inverse of gridCell. It returns -1 past the last entry.
func gridIndex(row, col, columns, total int) int {
	if row < 0 || col < 0 || col >= columns {
		return -1
	}
	i := row*columns + col
	if i >= total {
		return -1
	}
	return i
}
