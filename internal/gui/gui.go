package gui

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"sync"

	"github.com/FlagBrew/digidex/internal/dex"
	"github.com/FlagBrew/digidex/internal/models"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Gui is the terminal catalog browser used in fancy mode.
type Gui struct {
	app     *tview.Application
	config  *models.Config
	catalog *dex.Catalog
	session *dex.Session
	screen  tcell.Screen

	pages   *tview.Pages
	header  *tview.TextView
	search  *tview.InputField
	levels  *tview.DropDown
	table   *tview.Table
	compare *tview.TextView
	status  *tview.TextView
	detail  *tview.TextView
	logView *tview.TextView

	// dirty holds a pending refresh request from another goroutine. done is
	// closed once the UI stops, after which requests are dropped.
	dirty    chan struct{}
	done     chan struct{}
	stopOnce sync.Once

	detailOpen   bool
	levelOptions []string
	// updatingLevels is set while the dropdown is rebuilt, so its selected
	// callback doesn't feed back into the session.
	updatingLevels bool
}

func New(config *models.Config, catalog *dex.Catalog, session *dex.Session) *Gui {
	g := &Gui{
		app:     tview.NewApplication(),
		config:  &models.Config{},
		catalog: catalog,
		session: session,
		dirty:   make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	if config != nil {
		g.config = config
	}

	g.app.EnableMouse(true)
	g.app.SetBeforeDrawFunc(func(screen tcell.Screen) bool {
		g.screen = screen
		return false
	})

	g.Init()

	catalog.OnLoaded(g.requestRefresh)
	session.OnChange(g.requestRefresh)

	return g
}

func (g *Gui) Init() {
	g.header = tview.NewTextView().SetDynamicColors(true)

	g.search = tview.NewInputField().
		SetLabel("Search: ").
		SetPlaceholder("name contains...").
		SetFieldWidth(30)
	g.search.SetChangedFunc(func(text string) {
		g.session.SetSearch(text)
		g.refresh()
	})
	g.search.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyTab {
			g.app.SetFocus(g.levels)
			return
		}
		g.app.SetFocus(g.table)
	})

	g.levels = tview.NewDropDown().SetLabel("  Level: ")
	g.levels.SetDoneFunc(func(tcell.Key) {
		g.app.SetFocus(g.table)
	})

	g.table = tview.NewTable().SetSelectable(true, true)
	g.table.SetBorder(true).SetTitle("Digimon")
	g.table.SetSelectedFunc(g.activate)
	g.table.SetInputCapture(g.tableKeys)

	g.compare = tview.NewTextView().SetDynamicColors(true).SetWordWrap(true)
	g.compare.SetBorder(true).SetTitle("Compare")

	g.status = tview.NewTextView().SetDynamicColors(true)

	g.logView = tview.NewTextView().SetDynamicColors(true).SetMaxLines(500)
	g.logView.SetBorder(true).SetTitle("Log")
	g.logView.SetChangedFunc(func() {
		g.app.Draw()
	})

	g.detail = tview.NewTextView().SetDynamicColors(true).SetWordWrap(true)
	g.detail.SetBorder(true).SetTitle("Details - ESC to close, f to favorite")
	g.detail.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape:
			g.closeDetail()
			return nil
		case event.Rune() == 'f':
			if id := g.session.Selected(); id != 0 {
				g.session.ToggleFavorite(id)
				g.beep()
				g.refresh()
			}
			return nil
		}
		return event
	})

	filters := tview.NewFlex().
		AddItem(g.search, 0, 1, false).
		AddItem(g.levels, 0, 1, false)

	body := tview.NewFlex().
		AddItem(g.table, 0, 3, true).
		AddItem(g.compare, 40, 0, false)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(g.header, 1, 0, false).
		AddItem(filters, 1, 0, false).
		AddItem(body, 0, 1, true).
		AddItem(g.status, 1, 0, false).
		AddItem(g.logView, 8, 0, false)

	g.pages = tview.NewPages()
	g.pages.AddPage("browser", layout, true, true)
	g.pages.AddPage("detail", modal(g.detail, 70, 24), true, false)

	g.app.SetRoot(g.pages, true).SetFocus(g.table)
	g.refresh()
}

func modal(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}

func (g *Gui) Start() error {
	go g.pump()
	defer g.markDone()

	err := g.app.Run()
	if err != nil {
		return err
	}

	return nil
}

func (g *Gui) Stop() {
	g.markDone()
	g.app.Stop()
}

func (g *Gui) markDone() {
	g.stopOnce.Do(func() { close(g.done) })
}

// requestRefresh asks for a redraw from any goroutine. It never blocks:
// requests made while one is pending, or after the UI stopped, are dropped.
func (g *Gui) requestRefresh() {
	select {
	case <-g.done:
		return
	default:
	}

	select {
	case g.dirty <- struct{}{}:
	default:
	}
}

// pump applies refresh requests on the UI goroutine until the UI stops.
func (g *Gui) pump() {
	for {
		select {
		case <-g.done:
			return
		case <-g.dirty:
			g.app.QueueUpdateDraw(g.refresh)
		}
	}
}

// GetLogOutput is where the logger writes while the browser owns the
// terminal.
func (g *Gui) GetLogOutput() io.Writer {
	return g.logView
}

func (g *Gui) beep() {
	if g.session.Sound() && g.screen != nil {
		_ = g.screen.Beep()
	}
}

func (g *Gui) tableKeys(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		g.Stop()
		return nil
	case tcell.KeyTab:
		g.app.SetFocus(g.search)
		return nil
	case tcell.KeyRune:
	default:
		return event
	}

	switch event.Rune() {
	case '/':
		g.app.SetFocus(g.search)
	case 'g':
		g.session.SetViewMode(dex.ViewGrid)
	case 'l':
		g.session.SetViewMode(dex.ViewList)
	case 's':
		g.session.ToggleSound()
	case 'c':
		g.session.ToggleCompareMode()
	case 'f':
		id, ok := g.selectedID()
		if !ok {
			return nil
		}
		g.session.ToggleFavorite(id)
		g.beep()
	case 'q':
		g.Stop()
		return nil
	default:
		return event
	}

	g.refresh()
	return nil
}

func (g *Gui) selectedID() (int, bool) {
	row, col := g.table.GetSelection()
	return g.cellID(row, col)
}

func (g *Gui) cellID(row, col int) (int, bool) {
	cell := g.table.GetCell(row, col)
	if cell == nil {
		return 0, false
	}
	id, ok := cell.GetReference().(int)
	return id, ok
}

// activate is Enter on a table cell: pick it for comparison in compare mode,
// otherwise open its details.
func (g *Gui) activate(row, col int) {
	id, ok := g.cellID(row, col)
	if !ok {
		return
	}

	d, ok := g.catalog.Get(id)
	if !ok {
		return
	}

	if g.session.CompareMode() {
		if g.session.ToggleCompare(d) != dex.CompareFull {
			g.beep()
		}
		g.refresh()
		return
	}

	if g.session.Open(id) {
		g.beep()
		g.refresh()
	}
}

func (g *Gui) closeDetail() {
	g.session.Close()
	g.refresh()
}

// syncDetail shows the detail page while the session has a selection, which
// may also be set over the API.
func (g *Gui) syncDetail(selected *models.Digimon, favorites map[int]bool) {
	if selected == nil {
		if g.detailOpen {
			g.detailOpen = false
			g.pages.HidePage("detail")
			g.app.SetFocus(g.table)
		}
		return
	}

	g.detail.SetText(detailText(*selected, favorites[selected.ID])).ScrollToBeginning()
	if !g.detailOpen {
		g.detailOpen = true
		g.pages.ShowPage("detail")
		g.app.SetFocus(g.detail)
	}
}

// refresh redraws every widget from the session. It must run on the UI
// goroutine.
func (g *Gui) refresh() {
	v := g.session.Snapshot(g.catalog)

	g.header.SetText(headerText(v.Sound, v.CompareMode, v.ViewMode))
	g.syncLevels(v.Levels, v.Level)

	favorites := make(map[int]bool, len(v.Favorites))
	for _, id := range v.Favorites {
		favorites[id] = true
	}
	g.syncDetail(v.Selected, favorites)

	if v.Loading {
		g.table.Clear()
		g.table.SetCell(0, 0, tview.NewTableCell("Loading Digimon...").SetSelectable(false))
		g.status.SetText("Loading...")
		g.compare.SetText("")
		return
	}

	row, col := g.table.GetSelection()
	g.table.Clear()
	if v.ViewMode == dex.ViewList {
		g.fillList(v.Digimon, favorites)
	} else {
		g.fillGrid(v.Digimon, favorites)
	}
	g.restoreSelection(row, col, v.ViewMode, len(v.Digimon))

	g.compare.SetText(compareText(v.CompareMode, v.Comparing, v.Verdict))
	g.status.SetText(statusText(v.Total, len(v.Favorites), len(v.Comparing)))
}

func (g *Gui) fillGrid(list []models.Digimon, favorites map[int]bool) {
	g.table.SetFixed(0, 0).SetSelectable(true, true)

	for i, d := range list {
		row, col := gridCell(i, gridColumns)
		label := cardLabel(d, favorites[d.ID], g.session.IsComparing(d.ID)) + "  " + cardSubtitle(d)
		g.table.SetCell(row, col, tview.NewTableCell(label).
			SetReference(d.ID).
			SetExpansion(1))
	}

	if len(list) == 0 {
		g.table.SetCell(0, 0, tview.NewTableCell("No Digimon match the current filters").SetSelectable(false))
	}
}

var listColumns = []string{"Name", "Level", "Type", "Attribute", "HP", "ATK", "DEF", "SPD", "Power"}

func (g *Gui) fillList(list []models.Digimon, favorites map[int]bool) {
	g.table.SetFixed(1, 0).SetSelectable(true, false)

	for c, name := range listColumns {
		g.table.SetCell(0, c, tview.NewTableCell(name).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false))
	}

	for i, d := range list {
		row := i + 1
		cells := []string{
			cardLabel(d, favorites[d.ID], g.session.IsComparing(d.ID)),
			d.Level,
			fmt.Sprintf("[%s]%s[-]", dex.TypeColor(d.Type), d.Type),
			dex.AttributeIcon(d.Attribute) + " " + d.Attribute,
			strconv.Itoa(d.HP),
			strconv.Itoa(d.Attack),
			strconv.Itoa(d.Defense),
			strconv.Itoa(d.Speed),
			strconv.Itoa(d.Power()),
		}
		for c, text := range cells {
			g.table.SetCell(row, c, tview.NewTableCell(text).SetReference(d.ID))
		}
	}

	if len(list) == 0 {
		g.table.SetCell(1, 0, tview.NewTableCell("No Digimon match the current filters").SetSelectable(false))
	}
}

func (g *Gui) restoreSelection(row, col int, view dex.ViewMode, total int) {
	if total == 0 {
		return
	}

	if view == dex.ViewList {
		g.table.Select(max(1, min(row, total)), 0)
		return
	}

	if gridIndex(row, col, gridColumns, total) == -1 {
		row, col = gridCell(total-1, gridColumns)
	}
	g.table.Select(max(0, row), max(0, col))
}

func (g *Gui) syncLevels(levels []string, current string) {
	if !slices.Equal(levels, g.levelOptions) {
		g.updatingLevels = true
		g.levelOptions = slices.Clone(levels)
		g.levels.SetOptions(g.levelOptions, func(option string, _ int) {
			if g.updatingLevels {
				return
			}
			g.session.SetLevel(option)
			g.refresh()
		})
		g.updatingLevels = false
	}

	if i := slices.Index(g.levelOptions, current); i >= 0 {
		if cur, _ := g.levels.GetCurrentOption(); cur != i {
			g.updatingLevels = true
			g.levels.SetCurrentOption(i)
			g.updatingLevels = false
		}
	}
}
