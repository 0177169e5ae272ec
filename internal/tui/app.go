// Package tui provides the interactive Bubble Tea dashboard for kartasist.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kartasist/internal/advisor"
	"kartasist/internal/cli"
	"kartasist/internal/config"
	"kartasist/internal/forms"
	"kartasist/internal/model"
	"kartasist/internal/pipeline"
	"kartasist/internal/state"
	"kartasist/internal/tui/components"
	"kartasist/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// AdviceMsg is sent when the background savings-tip fetch completes.
type AdviceMsg struct {
	Text string
}

type tickMsg struct{}

// uiMode selects which input layer owns key events.
type uiMode int

const (
	modeBrowse uiMode = iota
	modeForm
	modeConfirm
)

// App is the root Bubble Tea model.
type App struct {
	tracker *state.Tracker
	cfg     config.Config
	fmtr    cli.Formatter

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	now       time.Time

	// List cursors
	cardCursor int
	histCursor int

	// Cards tab sort and search
	sortCfg     model.SortConfig
	searching   bool
	searchInput textinput.Model
	searchQuery string

	// Modal state
	mode     uiMode
	form     *huh.Form
	cardVals *forms.CardValues
	txVals   *txFormValues

	confirmPrompt string
	confirmAction func() (string, error)

	// Transient status message
	toast       string
	toastExpiry time.Time

	// Savings tip
	advice         string
	adviceFetching bool
	spinner        spinner.Model
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
	minContentHeight = 5

	toastDuration = 8 * time.Second
	tickInterval  = 10 * time.Second
)

// NewApp builds the dashboard around an already-loaded tracker.
func NewApp(tracker *state.Tracker, cfg config.Config) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	field, _ := model.ParseSortField(cfg.General.DefaultSort)

	return App{
		tracker: tracker,
		cfg:     cfg,
		fmtr:    cli.NewFormatter(cfg.Display.Locale, cfg.Display.Currency),
		now:     time.Now(),
		spinner: sp,
		sortCfg: model.SortConfig{Field: field, Descending: cfg.General.DefaultDesc},
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		a.spinner.Tick,
		tickCmd(),
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(min(msg.Width-4, 70))
		}
		return a, nil

	case tickMsg:
		// The tick keeps due-day countdowns honest across midnight and
		// expires toasts.
		a.now = time.Now()
		if a.toast != "" && a.now.After(a.toastExpiry) {
			a.toast = ""
		}
		return a, tickCmd()

	case AdviceMsg:
		a.advice = msg.Text
		a.adviceFetching = false
		return a, nil

	case spinner.TickMsg:
		if !a.adviceFetching {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.MouseMsg:
		return a.updateMouse(msg)

	case tea.KeyMsg:
		return a.updateKeys(msg)
	}

	// Forward everything else to an open form (huh needs its own messages).
	if a.mode == modeForm && a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.mode != modeBrowse || a.showHelp {
		return a, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		a.moveCursor(-1)
		return a, nil
	case tea.MouseButtonWheelDown:
		a.moveCursor(1)
		return a, nil
	case tea.MouseButtonLeft:
		if msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil
	}
	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if a.mode == modeForm && a.form != nil {
		return a.updateForm(msg)
	}

	if a.mode == modeConfirm {
		switch key {
		case "y", "enter":
			a.mode = modeBrowse
			outcome, err := a.confirmAction()
			a.confirmAction = nil
			if err != nil {
				return a.withToast("Error: " + err.Error()), nil
			}
			a.clampCursors()
			return a.withToast(outcome), nil
		case "n", "esc", "q":
			a.mode = modeBrowse
			a.confirmAction = nil
			return a, nil
		}
		return a, nil
	}

	// Search input intercepts all keys while active.
	if a.searching {
		return a.updateSearch(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	// Tab switching
	switch key {
	case "left", "shift+tab":
		a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
		return a, nil
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	case "1", "2", "3":
		a.activeTab = int(key[0] - '1')
		return a, nil
	}
	if len(key) == 1 {
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}

	switch key {
	case "q":
		return a, tea.Quit

	case "j", "down":
		a.moveCursor(1)
		return a, nil
	case "k", "up":
		a.moveCursor(-1)
		return a, nil

	case "/":
		if a.activeTab == 1 {
			a.searching = true
			a.searchInput = newSearchInput()
			a.searchInput.SetValue(a.searchQuery)
			a.searchInput.Focus()
			return a, a.searchInput.Cursor.BlinkCmd()
		}
		return a, nil

	case "f":
		if a.activeTab == 1 {
			a.sortCfg.Field = nextSortField(a.sortCfg.Field)
			a.clampCursors()
		}
		return a, nil

	case "r":
		if a.activeTab == 1 {
			a.sortCfg.Descending = !a.sortCfg.Descending
		}
		return a, nil

	case "esc":
		if a.searchQuery != "" {
			a.searchQuery = ""
			a.cardCursor = 0
		}
		return a, nil

	case "a":
		return a.openCardForm(model.Card{DueDay: 1, StatementDay: 1})

	case "e":
		if card, ok := a.selectedCard(); ok {
			return a.openCardForm(card)
		}
		return a, nil

	case "s":
		if card, ok := a.selectedCard(); ok {
			return a.openTxForm(card, model.KindSpending)
		}
		return a, nil

	case "p":
		if card, ok := a.selectedCard(); ok {
			return a.openTxForm(card, model.KindPayment)
		}
		return a, nil

	case "d", "x":
		return a.openDeleteConfirm()

	case "g":
		if a.adviceFetching {
			return a, nil
		}
		cards := a.tracker.Cards()
		a.adviceFetching = true
		a.activeTab = 0
		return a, tea.Batch(a.spinner.Tick, fetchAdviceCmd(a.cfg, cards))
	}

	return a, nil
}

// updateSearch handles key events while the Cards search input is active.
func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.searchQuery = strings.TrimSpace(a.searchInput.Value())
		a.searching = false
		a.cardCursor = 0
		return a, nil
	case "esc":
		a.searching = false
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	return a, cmd
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "card or bank name"
	ti.Prompt = "/ "
	ti.CharLimit = 40
	return ti
}

// nextSortField cycles through the accepted sort keys in order.
func nextSortField(f model.SortField) model.SortField {
	for i, sf := range model.SortFields {
		if sf == f {
			return model.SortFields[(i+1)%len(model.SortFields)]
		}
	}
	return model.SortFields[0]
}

// updateForm forwards a message to the open huh form and applies the result
// once the form completes.
func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		a.mode = modeBrowse
		a.form = nil
		outcome, err := a.applyForm()
		if err != nil {
			return a.withToast("Error: " + err.Error()), cmd
		}
		a.clampCursors()
		return a.withToast(outcome), cmd

	case huh.StateAborted:
		a.mode = modeBrowse
		a.form = nil
		a.cardVals = nil
		a.txVals = nil
		return a, cmd
	}

	return a, cmd
}

// applyForm commits whichever form just completed.
func (a *App) applyForm() (string, error) {
	switch {
	case a.cardVals != nil:
		vals := a.cardVals
		a.cardVals = nil
		card, created, err := a.tracker.AddOrUpdateCard(vals.Card())
		if err != nil {
			return "", err
		}
		if created {
			return "Added " + card.Name, nil
		}
		return "Updated " + card.Name, nil

	case a.txVals != nil:
		vals := a.txVals
		a.txVals = nil
		amount := vals.amountValue()
		if vals.kind == model.KindPayment {
			tx, err := a.tracker.RecordPayment(vals.cardID, amount, vals.note)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Paid %s on %s", a.fmtr.Currency(tx.Amount), vals.cardName), nil
		}
		tx, err := a.tracker.RecordSpending(vals.cardID, amount, vals.note, model.NormalizeCategory(vals.category))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Spent %s on %s", a.fmtr.Currency(tx.Amount), vals.cardName), nil
	}
	return "", nil
}

func (a App) openCardForm(card model.Card) (tea.Model, tea.Cmd) {
	vals := forms.NewCardValues(card)
	a.cardVals = &vals
	a.form = vals.Form().WithWidth(min(a.width-4, 70))
	a.mode = modeForm
	a.activeTab = 1
	return a, a.form.Init()
}

func (a App) openTxForm(card model.Card, kind model.TransactionKind) (tea.Model, tea.Cmd) {
	vals := newTxFormValues(card, kind)
	a.txVals = &vals
	a.form = vals.form().WithWidth(min(a.width-4, 70))
	a.mode = modeForm
	return a, a.form.Init()
}

func (a App) openDeleteConfirm() (tea.Model, tea.Cmd) {
	switch a.activeTab {
	case 1:
		card, ok := a.selectedCard()
		if !ok {
			return a, nil
		}
		txCount := len(pipeline.TransactionsForCard(a.tracker.Transactions(), card.ID))
		a.confirmPrompt = fmt.Sprintf("Delete %s and its %d transactions?", card.Name, txCount)
		a.confirmAction = func() (string, error) {
			if err := a.tracker.DeleteCard(card.ID); err != nil {
				return "", err
			}
			return "Deleted " + card.Name, nil
		}
		a.mode = modeConfirm
		return a, nil

	case 2:
		tx, ok := a.selectedTransaction()
		if !ok {
			return a, nil
		}
		a.confirmPrompt = fmt.Sprintf("Delete %s of %s and reverse its effect?", tx.Kind, a.fmtr.Currency(tx.Amount))
		a.confirmAction = func() (string, error) {
			if err := a.tracker.DeleteTransaction(tx.ID); err != nil {
				return "", err
			}
			return "Transaction deleted", nil
		}
		a.mode = modeConfirm
		return a, nil
	}
	return a, nil
}

func (a *App) moveCursor(delta int) {
	switch a.activeTab {
	case 1:
		a.cardCursor += delta
	case 2:
		a.histCursor += delta
	}
	a.clampCursors()
}

func (a *App) clampCursors() {
	// The card cursor indexes the filtered view, not the raw collection.
	nCards := len(a.sortedCards())
	if a.cardCursor >= nCards {
		a.cardCursor = nCards - 1
	}
	if a.cardCursor < 0 {
		a.cardCursor = 0
	}

	nTxs := len(a.tracker.Transactions())
	if a.histCursor >= nTxs {
		a.histCursor = nTxs - 1
	}
	if a.histCursor < 0 {
		a.histCursor = 0
	}
}

// sortedCards returns the card view under the current sort key, direction,
// and search query.
func (a App) sortedCards() []model.Card {
	return pipeline.View(a.tracker.Cards(), a.searchQuery, a.sortCfg, a.now)
}

// recentTransactions returns the history newest first.
func (a App) recentTransactions() []model.Transaction {
	txs := a.tracker.Transactions()
	for i, j := 0, len(txs)-1; i < j; i, j = i+1, j-1 {
		txs[i], txs[j] = txs[j], txs[i]
	}
	return txs
}

func (a App) selectedCard() (model.Card, bool) {
	cards := a.sortedCards()
	if a.cardCursor < 0 || a.cardCursor >= len(cards) {
		return model.Card{}, false
	}
	return cards[a.cardCursor], true
}

func (a App) selectedTransaction() (model.Transaction, bool) {
	txs := a.recentTransactions()
	if a.histCursor < 0 || a.histCursor >= len(txs) {
		return model.Transaction{}, false
	}
	return txs[a.histCursor], true
}

func (a App) withToast(msg string) App {
	a.toast = msg
	a.toastExpiry = time.Now().Add(toastDuration)
	return a
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  kartasist needs at least %d columns.\n",
		a.width, minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	for _, bind := range []struct{ key, desc string }{
		{"o c h", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate lists"},
	} {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	for _, bind := range []struct{ key, desc string }{
		{"a", "Add card"},
		{"e", "Edit selected card"},
		{"s", "Record spending"},
		{"p", "Record payment"},
		{"d", "Delete card / transaction"},
		{"/", "Search cards"},
		{"f r", "Cycle sort key / reverse"},
		{"g", "Get savings tip"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	} {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w) + "\n"
	statusBar := components.RenderStatusBar(w, a.toast)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch {
	case a.mode == modeForm && a.form != nil:
		content = a.form.View()
	case a.mode == modeConfirm:
		content = a.viewConfirm(cw)
	default:
		switch a.activeTab {
		case 0:
			content = a.renderOverviewTab(cw)
		case 1:
			content = a.renderCardsTab(cw)
		case 2:
			content = a.renderHistoryTab(cw, contentH)
		}
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (a App) viewConfirm(cw int) string {
	t := theme.Active

	promptStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Bold(true)
	hintStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	body := promptStyle.Render(a.confirmPrompt) + "\n\n" +
		hintStyle.Render("[y] yes   [n] no")

	card := components.ContentCard("Confirm", body, min(cw, 60))
	return "\n" + card
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW
		if i < len(components.Tabs)-1 {
			pos += 2 // separator
		}
	}
	return -1
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// fetchAdviceCmd asks the advisor for a savings tip in the background.
func fetchAdviceCmd(cfg config.Config, cards []model.Card) tea.Cmd {
	return func() tea.Msg {
		adv := advisor.New(config.GetAdvisorAPIKey(cfg), cfg.Advisor.Model)
		if !adv.Enabled() {
			return AdviceMsg{Text: "No Gemini API key configured. Set GEMINI_API_KEY to enable tips."}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return AdviceMsg{Text: adv.Advise(ctx, cards).Text}
	}
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// wrapLines breaks text at word boundaries to fit the given width.
func wrapLines(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
