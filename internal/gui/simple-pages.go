package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func (w *Wizard) introPage(p *tview.Pages) tview.Primitive {
	textView := tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(true).
		SetWordWrap(true)

	textView.SetText(`Welcome to Digidex, a terminal and HTTP browser for the Digimon catalog.

This wizard will walk you through setting up your configuration. Everything can be changed later in config.json.

[::b]It is strongly recommended that you maximize this terminal window to avoid text being cut-off[-:-:-:-]

If you would like to exit the wizard early, please press the [red]esc key[-:-:-:-], otherwise please press [yellow]enter[-:-:-:-] to continue

`)

	textView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEnter {
			p.SwitchToPage("source-config")
		}
		return event
	})

	frame := tview.NewFrame(textView)
	frame.AddText(hintContinue, false, tview.AlignLeft, tcell.ColorYellow)
	frame.SetBorder(true).SetTitle("Digidex")
	return frame
}

func (w *Wizard) confirmationPage(p *tview.Pages) tview.Primitive {
	form := tview.NewForm()

	displayMode := "simple"
	if w.config.FancyScreen {
		displayMode = "fancy"
	}

	form.AddTextView("Catalog Source", fmt.Sprintf("URL: %s\nTimeout: %s\nDeterministic stats: %t",
		w.config.Source.URL, w.config.Source.Timeout, w.config.Stats.Deterministic), 0, 0, true, true)
	form.AddTextView("Snapshot Database", describeDatabase(w.config.Database.DBType, w.config.Database.ConnectionString), 0, 0, true, true)
	form.AddTextView("HTTP Settings", fmt.Sprintf("Listening Address: %s\nListening Port: %d\n",
		w.config.HTTP.ListeningAddr, w.config.HTTP.Port), 0, 0, true, true)
	form.AddTextView("Display Mode", displayMode, 0, 0, true, true)

	form.AddButton("Save", func() {
		w.Stop()
	})
	form.AddButton("Edit", func() {
		p.SwitchToPage("source-config")
	})

	return framed(form, "Settings Review",
		"Please review the details below. Save writes config.json, Edit goes back to the first page with your answers kept.",
		"[red]ESC - exit[-:-:-:-] [yellow] Enter - submit [orange] (Shift+)Tab - switch buttons")
}
