// Package ui provides the terminal interface for gantt.
// This file contains the main App model which lays out the ruler and the
// lanes, maps mouse events onto bars and routes keys.
package ui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gantt/internal/config"
	"gantt/internal/interact"
	"gantt/internal/store"
	"gantt/internal/timeline"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// gutterCells is the lane number column on the left.
	gutterCells = 5
	// headerRows is the title bar plus the two ruler rows.
	headerRows = 3
	// footerRows is the status/help bar.
	footerRows = 1
)

// AppConfig holds user configuration for the app behavior.
type AppConfig struct {
	Title       string
	Keys        *config.KeysConfig
	View        config.ViewConfig
	Interaction config.InteractionConfig
}

// NewAppConfig extracts the app settings from the loaded configuration.
func NewAppConfig(cfg *config.Config, title string) *AppConfig {
	if cfg == nil {
		cfg = config.Default()
	}
	keys := cfg.Keys
	return &AppConfig{
		Title:       title,
		Keys:        &keys,
		View:        cfg.View,
		Interaction: cfg.Interaction,
	}
}

// layoutKey captures every input of the lane layout.
type layoutKey struct {
	version     uint64
	cellsPerDay int
	gapDays     int
	today       timeline.Date
}

// App is the main application model.
type App struct {
	store       *store.Store
	styles      *Styles
	palette     []lipgloss.Style
	config      *AppConfig
	helpOverlay *HelpOverlay
	detail      *DetailPanel
	help        help.Model
	capture     *interact.Capture

	bars        map[string]*ItemBar
	lanes       []timeline.Lane
	span        timeline.Span
	scale       timeline.Scale
	cellsPerDay int
	fixedGap    *int
	laidOut     layoutKey
	layoutReady bool

	scrollX int
	scrollY int
	width   int
	height  int
	lastX   int

	selectedID string
	pressedID  string
	editingID  string

	showHelp    bool
	status      string
	statusErr   bool
	statusUntil time.Time
	quitting    bool
	now         func() time.Time

	// Key bindings
	keys      KeyMap
	inputKeys InputKeyMap
	helpKeys  HelpKeyMap
}

// NewApp creates a new application over the items held by st.
func NewApp(st *store.Store, styles *Styles, cfg *AppConfig) *App {
	if cfg == nil {
		cfg = NewAppConfig(nil, "")
	}
	if cfg.Keys == nil {
		cfg.Keys = &config.KeysConfig{}
	}
	def := config.Default().View
	if cfg.View.CellsPerDay <= 0 {
		cfg.View.CellsPerDay = def.CellsPerDay
	}
	if cfg.View.MinCellsPerDay <= 0 {
		cfg.View.MinCellsPerDay = def.MinCellsPerDay
	}
	if cfg.View.MaxCellsPerDay < cfg.View.MinCellsPerDay {
		cfg.View.MaxCellsPerDay = max(def.MaxCellsPerDay, cfg.View.MinCellsPerDay)
	}
	if cfg.View.TickCells <= 0 {
		cfg.View.TickCells = def.TickCells
	}

	keys := NewKeyMap(cfg.Keys)
	inputKeys := NewInputKeyMap(cfg.Keys)

	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpStyle
	h.Styles.ShortSeparator = styles.HelpStyle

	a := &App{
		store:       st,
		styles:      styles,
		palette:     styles.palette(),
		config:      cfg,
		helpOverlay: NewHelpOverlay(styles, keys),
		detail:      NewDetailPanel(styles, inputKeys),
		help:        h,
		capture:     &interact.Capture{},
		bars:        make(map[string]*ItemBar),
		cellsPerDay: cfg.View.CellsPerDay,
		width:       80,
		height:      24,
		now:         time.Now,
		keys:        keys,
		inputKeys:   inputKeys,
		helpKeys:    DefaultHelpKeyMap(),
	}
	if cfg.View.MinGapDays != nil {
		gap := max(*cfg.View.MinGapDays, 0)
		a.fixedGap = &gap
	}
	st.SetOnChange(a.onChange)
	a.syncLayout()
	return a
}

// SetNowFunc overrides the clock used for today and status expiry.
func (a *App) SetNowFunc(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	a.now = now
	a.syncLayout()
}

// Init starts the status ticker.
func (a *App) Init() tea.Cmd {
	return tickCmd()
}

// Update handles all messages and routes them appropriately.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = a.handleKey(msg)

	case tea.MouseMsg:
		cmd = a.handleMouse(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.helpOverlay.SetSize(msg.Width, msg.Height)
		a.clampScroll()

	case selectTimerMsg:
		cmd = a.handleSelectTimer(msg)

	case editFocusMsg:
		if bar := a.bars[msg.itemID]; bar != nil && a.editingID == msg.itemID {
			bar.input.Focus()
			cmd = textinput.Blink
		}

	case tickMsg:
		if a.status != "" && !a.statusUntil.IsZero() && a.now().After(a.statusUntil) {
			a.status = ""
			a.statusErr = false
			a.statusUntil = time.Time{}
		}
		cmd = tickCmd()

	default:
		// Cursor blink and other input internals.
		if bar := a.bars[a.editingID]; bar != nil {
			bar.input, cmd = bar.input.Update(msg)
		} else if a.detail.IsOpen() {
			a.detail.input, cmd = a.detail.input.Update(msg)
		}
	}

	if a.quitting {
		return a, cmd
	}
	a.syncLayout()
	return a, cmd
}

// =============================================================================
// Layout
// =============================================================================

// gapDays is the lane gap in effect: the fixed one if set, otherwise the
// one derived from zoom.
func (a *App) gapDays() int {
	if a.fixedGap != nil {
		return *a.fixedGap
	}
	return a.config.View.GapDays(a.cellsPerDay)
}

// syncLayout recomputes the span, scale and lanes when the items, zoom,
// gap or date changed, and rebinds every bar to its latest item.
func (a *App) syncLayout() {
	today := timeline.DateOf(a.now())
	k := layoutKey{
		version:     a.store.Version(),
		cellsPerDay: a.cellsPerDay,
		gapDays:     a.gapDays(),
		today:       today,
	}
	if a.layoutReady && k == a.laidOut {
		return
	}

	items := a.store.Items()
	prevOrigin := a.scale.Origin
	ppd := float64(a.cellsPerDay)

	a.span = timeline.NewSpan(items, a.config.View.PadDays, today)
	a.scale = timeline.Scale{Origin: a.span.Left, PixelsPerDay: ppd}
	a.lanes = timeline.AssignLanes(items, timeline.LaneOptions{MinGapDays: k.gapDays})

	// Keep the same dates on screen when the origin moves.
	if a.layoutReady && k.cellsPerDay == a.laidOut.cellsPerDay {
		a.scrollX += timeline.DaysBetween(a.scale.Origin, prevOrigin) * a.cellsPerDay
	}

	live := make(map[string]bool, len(items))
	for _, it := range items {
		live[it.ID] = true
		bar, ok := a.bars[it.ID]
		if !ok {
			bar = newItemBar(it, a.barOptions())
			a.bars[it.ID] = bar
		} else {
			bar.ctrl.SetItem(it)
		}
		bar.ctrl.SetScale(ppd, a.scale.DateToX)
	}
	for id, bar := range a.bars {
		if !live[id] {
			bar.ctrl.Close()
			delete(a.bars, id)
		}
	}

	if a.detail.IsOpen() {
		if it, ok := a.store.Get(a.detail.ItemID()); ok {
			a.detail.Refresh(it, timeline.LaneOf(a.lanes, it.ID))
		} else {
			a.detail.Close()
		}
	}

	a.laidOut = k
	a.layoutReady = true
	a.clampScroll()

	slog.Debug("lanes recomputed",
		"items", len(items),
		"lanes", len(a.lanes),
		"gap_days", k.gapDays,
		"cells_per_day", k.cellsPerDay)
}

func (a *App) barOptions() interact.Options {
	return interact.Options{
		PixelsPerDay: float64(a.cellsPerDay),
		DateToX:      a.scale.DateToX,
		Threshold:    a.config.Interaction.DragThreshold,
		ClickDelay:   time.Duration(a.config.Interaction.ClickDelayMS) * time.Millisecond,
		OnUpdate:     a.applyUpdate,
		OnSelect:     a.selectItem,
		Capture:      a.capture,
	}
}

// viewWidth is the number of timeline columns on screen.
func (a *App) viewWidth() int {
	return max(1, a.width-gutterCells)
}

// visibleLanes is the number of lane rows on screen.
func (a *App) visibleLanes() int {
	return max(1, a.height-headerRows-footerRows)
}

func (a *App) clampScroll() {
	maxX := max(0, int(a.scale.Width(a.span))-a.viewWidth())
	a.scrollX = min(max(a.scrollX, 0), maxX)
	maxY := max(0, len(a.lanes)-a.visibleLanes())
	a.scrollY = min(max(a.scrollY, 0), maxY)
}

// scrollBy moves the view horizontally. A live drag follows the content,
// so the bar stays under the pointer.
func (a *App) scrollBy(cells int) {
	before := a.scrollX
	a.scrollX += cells
	a.clampScroll()
	if a.scrollX != before && a.capture.Active() {
		a.capture.Move(interact.PointerMove{X: float64(a.lastX), Scroll: float64(a.scrollX)})
	}
}

func (a *App) scrollLanes(n int) {
	a.scrollY += n
	a.clampScroll()
}

// scrollStep is a quarter of the visible width.
func (a *App) scrollStep() int {
	return max(1, a.viewWidth()/4)
}

// centerOn scrolls so that d is in the middle of the view.
func (a *App) centerOn(d timeline.Date) {
	a.scrollBy(int(a.scale.DateToX(d)) - a.viewWidth()/2 - a.scrollX)
}

// ensureVisible scrolls the bar's lane and start into view.
func (a *App) ensureVisible(bar *ItemBar) {
	left, width := bar.Cells()
	view := a.viewWidth()
	switch {
	case left < a.scrollX:
		a.scrollBy(left - 1 - a.scrollX)
	case left+min(width, view) > a.scrollX+view:
		a.scrollBy(left + min(width, view) - view - a.scrollX)
	}

	lane := timeline.LaneOf(a.lanes, bar.ID())
	if lane < 0 {
		return
	}
	switch {
	case lane < a.scrollY:
		a.scrollY = lane
	case lane >= a.scrollY+a.visibleLanes():
		a.scrollY = lane - a.visibleLanes() + 1
	}
	a.clampScroll()
}

// zoom changes the cells per day by delta, keeping the center date fixed.
func (a *App) zoom(delta int) {
	v := a.config.View
	next := min(max(a.cellsPerDay+delta, v.MinCellsPerDay), v.MaxCellsPerDay)
	if next == a.cellsPerDay {
		return
	}
	a.capture.Cancel()

	center := a.scale.XToDate(float64(a.scrollX + a.viewWidth()/2))
	a.cellsPerDay = next
	a.syncLayout()
	a.centerOn(center)
	a.SetStatus(fmt.Sprintf("Zoom: %d cells/day, gap %d days", next, a.gapDays()), false)
}

// setGap fixes the lane gap.
func (a *App) setGap(days int) {
	days = max(days, 0)
	a.fixedGap = &days
	a.SetStatus(fmt.Sprintf("Lane gap: %d days", days), false)
}

// =============================================================================
// Items
// =============================================================================

// onChange reports applied store changes.
func (a *App) onChange(c store.Change) {
	slog.Debug("item updated",
		"op", c.Operation,
		"item", c.After.ID,
		"range", c.After.Range().String(),
		"name", c.After.Name)
	a.SetStatus(c.String(), false)
}

// applyUpdate hands a committed update to the store.
func (a *App) applyUpdate(u timeline.Update) {
	if _, err := a.store.Apply(u); err != nil {
		slog.Warn("update rejected", "item", u.ID, "update", u.String(), "err", err)
		a.SetStatus("Update failed: "+err.Error(), true)
	}
}

// selectItem marks the item selected and opens its details.
func (a *App) selectItem(it timeline.Item) {
	slog.Debug("item selected", "item", it.ID)
	a.selectedID = it.ID
	a.detail.Open(it, timeline.LaneOf(a.lanes, it.ID))
}

// orderedIDs lists item IDs top to bottom, then by start.
func (a *App) orderedIDs() []string {
	var ids []string
	for _, lane := range a.lanes {
		for _, it := range lane {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// cycleSelection moves the selection through the lanes.
func (a *App) cycleSelection(delta int) {
	ids := a.orderedIDs()
	if len(ids) == 0 {
		return
	}
	next := 0
	if delta < 0 {
		next = len(ids) - 1
	}
	for i, id := range ids {
		if id == a.selectedID {
			next = (i + delta + len(ids)) % len(ids)
			break
		}
	}
	a.selectedID = ids[next]
	bar := a.bars[a.selectedID]
	a.ensureVisible(bar)
	it := bar.Item()
	a.SetStatus(fmt.Sprintf("%s  %s", bar.label(), it.Range()), false)
}

// handleEffects schedules what a controller asked the host to do.
func (a *App) handleEffects(bar *ItemBar, eff interact.Effects) tea.Cmd {
	var cmds []tea.Cmd
	if eff.Schedule != nil {
		cmds = append(cmds, selectTimerCmd(bar.ID(), eff.Schedule))
	}
	if eff.Focus {
		cmds = append(cmds, a.startInlineEdit(bar))
	}
	return tea.Batch(cmds...)
}

func (a *App) handleSelectTimer(msg selectTimerMsg) tea.Cmd {
	bar := a.bars[msg.itemID]
	if bar == nil {
		return nil
	}
	wasOpen := a.detail.IsOpen()
	a.handleEffects(bar, bar.ctrl.Handle(interact.SelectTimerFired{Token: msg.token}))
	if !wasOpen && a.detail.IsOpen() {
		return textinput.Blink
	}
	return nil
}

// startInlineEdit switches a bar to its rename input. Focus is grabbed on
// the next update.
func (a *App) startInlineEdit(bar *ItemBar) tea.Cmd {
	if a.editingID != "" && a.editingID != bar.ID() {
		a.commitInlineEdit()
	}
	if a.detail.IsOpen() {
		a.closeDetail(false)
	}
	a.editingID = bar.ID()
	a.selectedID = bar.ID()
	bar.input.SetValue(bar.Item().Name)
	bar.input.CursorEnd()
	a.ensureVisible(bar)
	return editFocusCmd(bar.ID())
}

// commitInlineEdit ends inline editing and commits the typed name.
func (a *App) commitInlineEdit() {
	bar := a.bars[a.editingID]
	a.editingID = ""
	if bar == nil {
		return
	}
	value := bar.input.Value()
	bar.input.Blur()
	bar.ctrl.Handle(interact.CommitEdit{Value: value})
}

// cancelInlineEdit ends inline editing, keeping the committed name.
func (a *App) cancelInlineEdit() {
	bar := a.bars[a.editingID]
	a.editingID = ""
	if bar == nil {
		return
	}
	bar.input.Blur()
	bar.ctrl.Handle(interact.CancelEdit{})
	a.SetStatus("Rename canceled", false)
}

// closeDetail hides the panel, committing a modified name when commit is
// set.
func (a *App) closeDetail(commit bool) {
	if commit {
		if u := a.detail.Pending(); u != nil {
			a.applyUpdate(*u)
		}
	}
	a.detail.Close()
}

// =============================================================================
// Keyboard
// =============================================================================

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Help overlay takes priority
	if a.showHelp {
		if key.Matches(msg, a.helpKeys.Close) {
			a.showHelp = false
		}
		return nil
	}

	if bar := a.bars[a.editingID]; bar != nil {
		switch {
		case key.Matches(msg, a.inputKeys.Confirm):
			a.commitInlineEdit()
		case key.Matches(msg, a.inputKeys.Cancel):
			a.cancelInlineEdit()
		default:
			var cmd tea.Cmd
			bar.input, cmd = bar.input.Update(msg)
			return cmd
		}
		return nil
	}

	if a.detail.IsOpen() {
		cmd, u := a.detail.Update(msg)
		if u != nil {
			a.applyUpdate(*u)
		}
		return cmd
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		a.quitting = true
		a.teardown()
		return tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.showHelp = true

	case key.Matches(msg, a.inputKeys.Cancel):
		if a.capture.Active() {
			a.capture.Cancel()
			a.SetStatus("Drag canceled", false)
		} else {
			a.selectedID = ""
		}

	case key.Matches(msg, a.keys.ScrollLeft):
		a.scrollBy(-a.scrollStep())

	case key.Matches(msg, a.keys.ScrollRight):
		a.scrollBy(a.scrollStep())

	case key.Matches(msg, a.keys.Up):
		a.scrollLanes(-1)

	case key.Matches(msg, a.keys.Down):
		a.scrollLanes(1)

	case key.Matches(msg, a.keys.Today):
		a.centerOn(timeline.DateOf(a.now()))

	case key.Matches(msg, a.keys.ZoomIn):
		a.zoom(1)

	case key.Matches(msg, a.keys.ZoomOut):
		a.zoom(-1)

	case key.Matches(msg, a.keys.GapIncrease):
		a.setGap(a.gapDays() + 1)

	case key.Matches(msg, a.keys.GapDecrease):
		a.setGap(a.gapDays() - 1)

	case key.Matches(msg, a.keys.NextItem):
		a.cycleSelection(1)

	case key.Matches(msg, a.keys.PrevItem):
		a.cycleSelection(-1)

	case key.Matches(msg, a.keys.Rename):
		bar := a.bars[a.selectedID]
		if bar == nil {
			a.SetStatus("No item selected", true)
			return nil
		}
		return a.handleEffects(bar, bar.ctrl.Handle(interact.BeginEdit{}))

	case key.Matches(msg, a.keys.Details):
		bar := a.bars[a.selectedID]
		if bar == nil {
			a.SetStatus("No item selected", true)
			return nil
		}
		return a.detail.Open(bar.Item(), timeline.LaneOf(a.lanes, bar.ID()))
	}
	return nil
}

// teardown drops live gestures and pending selections before exit.
func (a *App) teardown() {
	a.capture.Cancel()
	for _, bar := range a.bars {
		bar.ctrl.Close()
	}
}

// =============================================================================
// Mouse
// =============================================================================

func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	// Any click closes help
	if a.showHelp {
		if msg.Action == tea.MouseActionPress {
			a.showHelp = false
		}
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.Shift {
			a.scrollBy(-a.scrollStep())
		} else {
			a.scrollLanes(-1)
		}
		return nil
	case tea.MouseButtonWheelDown:
		if msg.Shift {
			a.scrollBy(a.scrollStep())
		} else {
			a.scrollLanes(1)
		}
		return nil
	case tea.MouseButtonWheelLeft:
		a.scrollBy(-a.scrollStep())
		return nil
	case tea.MouseButtonWheelRight:
		a.scrollBy(a.scrollStep())
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return a.handlePress(msg)
		}
	case tea.MouseActionMotion:
		a.lastX = msg.X
		if a.capture.Active() {
			a.capture.Move(interact.PointerMove{X: float64(msg.X), Scroll: float64(a.scrollX)})
		}
	case tea.MouseActionRelease:
		return a.handleRelease(msg)
	}
	return nil
}

func (a *App) handlePress(msg tea.MouseMsg) tea.Cmd {
	if a.detail.IsOpen() {
		if a.detail.HitTest(msg.X, msg.Y, a.width, a.height) != hitInside {
			a.closeDetail(true)
		}
		return nil
	}

	bar, part, ok := a.barAt(msg.X, msg.Y)

	// Presses on the bar being renamed belong to its input. Anywhere
	// else blurs the rename.
	if a.editingID != "" {
		if ok && bar.ID() == a.editingID {
			return nil
		}
		a.commitInlineEdit()
	}

	if !ok {
		a.capture.Cancel()
		a.pressedID = ""
		if msg.Y >= headerRows {
			a.selectedID = ""
		}
		return nil
	}

	a.pressedID = bar.ID()
	a.lastX = msg.X
	return a.handleEffects(bar, bar.ctrl.Handle(interact.PointerDown{
		Part:   part,
		X:      float64(msg.X),
		Scroll: float64(a.scrollX),
	}))
}

func (a *App) handleRelease(msg tea.MouseMsg) tea.Cmd {
	a.lastX = msg.X
	a.capture.Up(interact.PointerUp{X: float64(msg.X), Scroll: float64(a.scrollX)})

	pressed := a.bars[a.pressedID]
	a.pressedID = ""
	if pressed == nil {
		return nil
	}

	// A click needs press and release on the same bar. After a drag the
	// click is still delivered so the controller can swallow it.
	hit, _, ok := a.barAt(msg.X, msg.Y)
	if (!ok || hit != pressed) && !pressed.ctrl.State().SuppressClick {
		return nil
	}
	return a.handleEffects(pressed, pressed.ctrl.Handle(interact.Click{}))
}

// barAt returns the bar and part under screen position (x, y).
func (a *App) barAt(x, y int) (*ItemBar, interact.Part, bool) {
	row := y - headerRows
	if row < 0 || row >= a.visibleLanes() || x < gutterCells {
		return nil, interact.Body, false
	}
	lane := a.scrollY + row
	if lane >= len(a.lanes) {
		return nil, interact.Body, false
	}
	col := x - gutterCells + a.scrollX

	// Later bars are drawn on top.
	items := a.lanes[lane]
	for i := len(items) - 1; i >= 0; i-- {
		bar := a.bars[items[i].ID]
		if bar == nil {
			continue
		}
		if part, ok := bar.PartAt(col); ok {
			return bar, part, true
		}
	}
	return nil, interact.Body, false
}

// =============================================================================
// View
// =============================================================================

// View renders the entire app.
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	if a.showHelp {
		return a.helpOverlay.View()
	}

	var b strings.Builder

	b.WriteString(a.renderTitleBar())
	b.WriteString("\n")

	gutter := strings.Repeat(" ", gutterCells)
	labels, axis := renderRuler(a.scale, a.span, a.config.View.TickCells,
		timeline.DateOf(a.now()), a.scrollX, a.viewWidth(), a.palette)
	b.WriteString(gutter + labels)
	b.WriteString("\n")
	b.WriteString(gutter + axis)
	b.WriteString("\n")

	for i := 0; i < a.visibleLanes(); i++ {
		b.WriteString(a.renderLane(a.scrollY + i))
		b.WriteString("\n")
	}

	b.WriteString(a.renderHelpBar())

	view := b.String()
	if a.detail.IsOpen() {
		view = overlayCenter(view, a.detail.View(), a.width, a.height)
	}
	return view
}

// renderLane renders one lane row including its gutter.
func (a *App) renderLane(idx int) string {
	if idx < 0 || idx >= len(a.lanes) {
		return ""
	}
	gutter := a.styles.GutterStyle.Render(fmt.Sprintf("%*d ", gutterCells-1, idx+1))

	view := a.viewWidth()
	row := newCanvas(view, a.palette)
	var editing *ItemBar
	for _, it := range a.lanes[idx] {
		bar := a.bars[it.ID]
		if bar == nil {
			continue
		}
		bar.Draw(row, a.scrollX, it.ID == a.selectedID, a.config.View.MetaCells)
		if it.ID == a.editingID {
			editing = bar
		}
	}
	if editing == nil {
		return gutter + row.String()
	}

	left, _ := editing.Cells()
	from := min(max(left-a.scrollX, 0), view-1)
	w := editing.editWidth(view - from)
	return gutter + row.render(0, from) + editing.EditView(w, a.styles.BarEditStyle) + row.render(from+w, view)
}

// renderTitleBar creates the top title bar with layout stats and the date.
func (a *App) renderTitleBar() string {
	title := a.styles.TitleStyle.Render(" gantt ")
	if a.config.Title != "" {
		title += " " + a.styles.StatValueStyle.Render(a.config.Title)
	}

	gapMode := "auto"
	if a.fixedGap != nil {
		gapMode = "fixed"
	}
	stats := a.styles.StatLabelStyle.Render(fmt.Sprintf("%d items · %d lanes · %d cells/day · gap %dd (%s)",
		a.store.Len(), len(a.lanes), a.cellsPerDay, a.gapDays(), gapMode))

	date := a.styles.DateStyle.Render(a.now().Format("Mon Jan 2"))

	used := lipgloss.Width(title) + lipgloss.Width(stats) + lipgloss.Width(date) + 2
	spacer := max(a.width-used, 1)

	return title + "  " + stats + strings.Repeat(" ", spacer) + date
}

// renderHelpBar creates the bottom bar with the status or context hints.
func (a *App) renderHelpBar() string {
	if holder := a.capture.Holder(); holder != nil {
		if r, ok := holder.Draft(); ok {
			return a.styles.StatusStyle.Render(fmt.Sprintf("%s %s: %s (%d days)",
				dragVerb(holder.State().Session.Kind), holder.Item().Name, r, r.Days())) +
				"  " + a.styles.RenderHelp("esc", "cancel")
		}
	}

	if a.status != "" {
		if a.statusErr {
			return a.styles.ErrorStyle.Render(a.status)
		}
		return a.styles.StatusStyle.Render(a.status)
	}

	if a.editingID != "" {
		return a.styles.RenderHelp(
			"enter", "save",
			"esc", "cancel",
		)
	}

	return a.help.View(a.keys)
}

func dragVerb(k interact.Kind) string {
	switch k {
	case interact.ResizeLeft:
		return "Changing start of"
	case interact.ResizeRight:
		return "Changing end of"
	default:
		return "Moving"
	}
}

// SetStatus sets a transient status message shown in the help bar.
func (a *App) SetStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
	ttl := 5 * time.Second
	if isErr {
		ttl = 8 * time.Second
	}
	a.statusUntil = a.now().Add(ttl)
}

// Run starts the Bubble Tea program over st.
func Run(st *store.Store, styles *Styles, cfg *AppConfig) error {
	app := NewApp(st, styles, cfg)
	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // press, release and drag motion
	)
	_, err := p.Run()
	return err
}
