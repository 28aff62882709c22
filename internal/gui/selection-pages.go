package gui

import (
	"github.com/FlagBrew/digidex/internal/models"
	"github.com/rivo/tview"
)

func (w *Wizard) databaseSelection(p *tview.Pages) tview.Primitive {
	list := tview.NewList()

	openConfig := func(dbType string) func() {
		return func() {
			p.AddPage("db-config", w.databaseConfigPage(p, dbType), true, false)
			p.SwitchToPage("db-config")
		}
	}

	list.AddItem("None", "No offline snapshot, if the catalog API is down the catalog starts empty", '1', func() {
		w.config.Database = models.DatabaseConfig{}
		p.AddPage("http-config", w.httpConfigPage(p), true, false)
		p.SwitchToPage("http-config")
	})
	list.AddItem("sqlite", "Keeps the last catalog in a file on disk, [::b]if you have no experience with databases, use this option", '2', openConfig("sqlite"))
	list.AddItem("MySql", "Requires a running MySql instance", '3', openConfig("mysql"))
	list.AddItem("Postgres", "Requires a running Postgres instance", '4', openConfig("postgres"))

	return framed(list, "Choosing Snapshot Database",
		"Digidex can keep a copy of the last catalog it fetched, and fall back to it when the catalog API cannot be reached",
		hintContinue)
}

func (w *Wizard) displayMode(p *tview.Pages) tview.Primitive {
	list := tview.NewList()

	choose := func(fancy bool) func() {
		return func() {
			w.config.FancyScreen = fancy
			p.AddPage("confirm", w.confirmationPage(p), true, false)
			p.SwitchToPage("confirm")
		}
	}

	list.AddItem("simple", "Plain logs, browse the catalog through the HTTP API only.", '1', choose(false))
	list.AddItem("fancy", "Browse the catalog in the terminal: search, filter, favorites and comparison. The HTTP API keeps running.", '2', choose(true))

	return framed(list, "Choosing Display Mode",
		"Please select below which display mode you would like to use when running Digidex",
		hintContinue)
}
