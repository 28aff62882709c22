// Package report prints the catalog as a table for --print.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/FlagBrew/digidex/internal/dex"
	"github.com/FlagBrew/digidex/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	border = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	header = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Bold(true).Padding(0, 1)
	cell   = lipgloss.NewStyle().Padding(0, 1)
)

var headers = []string{"ID", "Name", "Level", "Type", "Attribute", "HP", "ATK", "DEF", "SPD", "Power"}

// Row is one table row, in header order.
func Row(d models.Digimon) []string {
	return []string{
		strconv.Itoa(d.ID),
		d.Name,
		d.Level,
		d.Type,
		dex.AttributeIcon(d.Attribute) + " " + d.Attribute,
		strconv.Itoa(d.HP),
		strconv.Itoa(d.Attack),
		strconv.Itoa(d.Defense),
		strconv.Itoa(d.Speed),
		strconv.Itoa(d.Power()),
	}
}

// Render writes list as a table followed by a total line.
func Render(w io.Writer, list []models.Digimon) error {
	rows := make([][]string, 0, len(list))
	for _, d := range list {
		rows = append(rows, Row(d))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(border).
		BorderHeader(true).
		BorderRow(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			style := cell
			if col == 2 && row < len(list) {
				style = style.Foreground(lipgloss.Color(dex.LevelColor(list[row].Level).From))
			}
			if col == 3 && row < len(list) {
				style = style.Foreground(lipgloss.Color(dex.TypeColor(list[row].Type)))
			}
			return style
		})

	_, err := fmt.Fprintf(w, "%s\nTotal: %d Digimon\n", t.Render(), len(list))
	return err
}
