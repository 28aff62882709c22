package gui

import (
	"github.com/FlagBrew/digidex/internal/models"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	hintContinue = "[red]ESC - exit[-:-:-:-] [yellow] Enter - continue"
	hintForm     = "[red]ESC - exit[-:-:-:-] [yellow] Enter - next input/submit [orange] (Shift+)Tab - switch inputs"
)

// Wizard is the first-run setup that fills in a Config.
type Wizard struct {
	app       *tview.Application
	config    *models.Config
	cancelled bool
}

func NewWizard(config *models.Config) *Wizard {
	w := &Wizard{
		app:    tview.NewApplication(),
		config: models.DefaultConfig(),
	}

	if config != nil {
		w.config = config
	}

	w.app.EnableMouse(true)
	w.init()

	return w
}

func (w *Wizard) init() {
	pages := tview.NewPages()
	pages.AddPage("setup", w.introPage(pages), true, true)
	pages.AddPage("source-config", w.sourceConfigPage(pages), true, false)
	pages.AddPage("database-type", w.databaseSelection(pages), true, false)
	pages.AddPage("display-config", w.displayMode(pages), true, false)

	pages.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			w.cancelled = true
			w.app.Stop()
			return nil
		}
		return event
	})

	w.app.SetRoot(pages, true)
}

// Start blocks until the wizard is saved or cancelled.
func (w *Wizard) Start() error {
	return w.app.Run()
}

// Cancelled reports whether the user left with ESC instead of saving.
func (w *Wizard) Cancelled() bool {
	return w.cancelled
}

func (w *Wizard) Stop() {
	w.app.Stop()
}

// framed wraps p in a bordered frame with an explanation and a key hint.
func framed(p tview.Primitive, title, explanation, hint string) *tview.Frame {
	frame := tview.NewFrame(p)
	frame.SetBorder(true)
	frame.SetTitle("Digidex - " + title)
	if explanation != "" {
		frame.AddText(explanation, true, tview.AlignLeft, tcell.ColorYellow)
	}
	frame.AddText(hint, false, tview.AlignLeft, tcell.ColorYellow)
	return frame
}

// showErrors redraws a frame's header followed by the given errors.
func showErrors(frame *tview.Frame, explanation, hint string, errs []string) {
	frame.Clear()
	if explanation != "" {
		frame.AddText(explanation, true, tview.AlignLeft, tcell.ColorYellow)
	}
	frame.AddText(hint, false, tview.AlignLeft, tcell.ColorYellow)

	if len(errs) == 0 {
		return
	}
	frame.AddText("Errors: ", true, tview.AlignLeft, tcell.ColorYellow)
	for _, v := range errs {
		frame.AddText(v, true, tview.AlignLeft, tcell.ColorRed)
	}
}
