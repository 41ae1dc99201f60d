package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/content-hub/internal/core/domain"
	"github.com/kamal-hamza/content-hub/internal/core/ports"
	"github.com/kamal-hamza/content-hub/internal/core/services"
	"github.com/kamal-hamza/content-hub/pkg/ui"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the content hub interactively (default)",
	Long: `Launch a full-screen browser for the marketing content hub.

Pick a category or type a search to see matching assets. Marketing
collaterals are shown as a thumbnail grid, playbooks as cards and
everything else as a list.

Keyboard Shortcuts:
  Navigation:
    ↑/k         Move up
    ↓/j         Move down
    g           Jump to top
    G           Jump to bottom

  Actions:
    Enter/o     Preview image or open document link
    y           Copy the asset URL to the clipboard

  Categories:
    1-5         Select a category
    Tab         Next category
    Shift+Tab   Previous category
    0           Clear the category
    h           Back to home

  Views:
    /           Search mode (Esc leaves search and keeps the query)
    Esc/x       Close preview
    ?           Show help

  General:
    q           Quit
    Ctrl+C      Force quit`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	catalog, err := listService.Catalog(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	stats, err := statsService.Execute(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog stats: %w", err)
	}

	m := newBrowseModel(ctx, catalog, stats, linkOpener, appClipboard)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running browser: %w", err)
	}

	return nil
}

// Browser input modes
type browseMode int

const (
	modeBrowse browseMode = iota
	modeSearch
	modeHelp
)

// Browser model
type browseModel struct {
	ctx           context.Context
	browser       *services.Browser
	stats         *services.CatalogStats
	clipboard     ports.Clipboard
	results       []domain.Asset // Current filter output, empty at home
	cursor        int            // Highlighted result, or category card at home
	offset        int            // Scroll offset for the list layout
	mode          browseMode
	searchInput   textinput.Model
	help          help.Model
	keys          browseKeyMap
	width         int
	height        int
	ready         bool
	message       string
	messageStyle  lipgloss.Style
	messageExpiry time.Time
}

// Key bindings
type browseKeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	Activate     key.Binding
	Copy         key.Binding
	Search       key.Binding
	Category     key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	ClearFilter  key.Binding
	Home         key.Binding
	Dismiss      key.Binding
	Help         key.Binding
	Quit         key.Binding
	Escape       key.Binding
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Activate, k.Search, k.Category, k.Home, k.Help, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Activate, k.Copy, k.Dismiss},
		{k.Category, k.NextCategory, k.PrevCategory, k.ClearFilter, k.Home},
		{k.Search, k.Help, k.Escape, k.Quit},
	}
}

var browseKeys = browseKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G"),
		key.WithHelp("G", "bottom"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter", "o"),
		key.WithHelp("enter/o", "open"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy url"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Category: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5"),
		key.WithHelp("1-5", "category"),
	),
	NextCategory: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next category"),
	),
	PrevCategory: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev category"),
	),
	ClearFilter: key.NewBinding(
		key.WithKeys("0"),
		key.WithHelp("0", "all categories"),
	),
	Home: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "home"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc", "x", "q"),
		key.WithHelp("esc/x", "close preview"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

func newBrowseModel(ctx context.Context, catalog []domain.Asset, stats *services.CatalogStats, opener ports.LinkOpener, clipboard ports.Clipboard) browseModel {
	ti := textinput.New()
	ti.Placeholder = `Search e.g. "Etihad", "Delta", "Freight Forwarder"`
	ti.CharLimit = 100
	ti.Width = 50

	m := browseModel{
		ctx:         ctx,
		browser:     services.NewBrowser(catalog, opener),
		stats:       stats,
		clipboard:   clipboard,
		mode:        modeBrowse,
		searchInput: ti,
		help:        help.New(),
		keys:        browseKeys,
	}
	m.refresh()
	return m
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.adjustViewport()
		return m, nil

	case tea.KeyMsg:
		// The preview overlay captures keys while it is open
		if m.browser.Selected() != nil {
			return m.updatePreview(msg)
		}

		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeHelp:
			return m.updateHelp(msg)
		default:
			return m.updateBrowse(msg)
		}

	case statusMsg:
		m.message = msg.message
		m.messageStyle = msg.style
		m.messageExpiry = time.Now().Add(3 * time.Second)
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return clearMessageMsg{}
		})

	case clearMessageMsg:
		if time.Now().After(m.messageExpiry) {
			m.message = ""
		}
		return m, nil
	}

	return m, nil
}

func (m browseModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.adjustViewport()
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.itemCount()-1 {
			m.cursor++
			m.adjustViewport()
		}

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.offset = 0

	case key.Matches(msg, m.keys.Bottom):
		if n := m.itemCount(); n > 0 {
			m.cursor = n - 1
			m.adjustViewport()
		}

	case key.Matches(msg, m.keys.Activate):
		return m.activateCurrent()

	case key.Matches(msg, m.keys.Copy):
		if asset, ok := m.current(); ok {
			return m, m.copyURL(asset)
		}

	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Category):
		idx := int(msg.String()[0] - '1')
		m.selectCategory(domain.Categories()[idx])

	case key.Matches(msg, m.keys.NextCategory):
		m.cycleCategory(1)

	case key.Matches(msg, m.keys.PrevCategory):
		m.cycleCategory(-1)

	case key.Matches(msg, m.keys.ClearFilter):
		m.browser.ClearCategory()
		m.resetCursor()

	case key.Matches(msg, m.keys.Home):
		m.browser.Home()
		m.searchInput.SetValue("")
		m.resetCursor()

	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
	}

	return m, nil
}

func (m browseModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	// Leaving search keeps the query
	case key.Matches(msg, m.keys.Escape):
		m.mode = modeBrowse
		m.searchInput.Blur()
		return m, nil

	case msg.Type == tea.KeyEnter:
		m.mode = modeBrowse
		m.searchInput.Blur()
		return m.activateCurrent()

	// Only arrow keys navigate in search mode, j/k are typed
	case msg.Type == tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
			m.adjustViewport()
		}

	case msg.Type == tea.KeyDown:
		if m.cursor < m.itemCount()-1 {
			m.cursor++
			m.adjustViewport()
		}

	default:
		m.searchInput, cmd = m.searchInput.Update(msg)
		if m.searchInput.Value() != m.browser.Query() {
			m.browser.SetQuery(m.searchInput.Value())
			m.resetCursor()
		}
		return m, cmd
	}

	return m, nil
}

func (m browseModel) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Dismiss):
		m.browser.Dismiss()

	case key.Matches(msg, m.keys.Copy):
		return m, m.copyURL(*m.browser.Selected())
	}
	return m, nil
}

func (m browseModel) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = modeBrowse
	}
	return m, nil
}

// activateCurrent selects the highlighted category at home, or activates the highlighted asset
func (m browseModel) activateCurrent() (tea.Model, tea.Cmd) {
	if m.browser.IsHome() {
		categories := domain.Categories()
		if m.cursor >= 0 && m.cursor < len(categories) {
			m.selectCategory(categories[m.cursor])
		}
		return m, nil
	}

	asset, ok := m.current()
	if !ok {
		return m, nil
	}

	activation, err := m.browser.Activate(m.ctx, asset)
	if err != nil {
		return m, statusCmd(fmt.Sprintf("Could not open link: %v", err), ui.StyleError)
	}

	switch activation.Kind {
	case services.ActivationOpenLink:
		return m, statusCmd("Opened "+asset.Title+" in your browser", ui.StyleSuccess)
	case services.ActivationNone:
		return m, statusCmd("Nothing to open for this asset", ui.StyleMuted)
	}
	return m, nil
}

func (m *browseModel) selectCategory(c domain.Category) {
	m.browser.SelectCategory(c)
	m.resetCursor()
}

// cycleCategory moves the active category by step, wrapping around the chooser
func (m *browseModel) cycleCategory(step int) {
	categories := domain.Categories()
	n := len(categories)

	idx := -1
	for i, c := range categories {
		if c == m.browser.Category() {
			idx = i
		}
	}

	switch {
	case idx == -1 && step > 0:
		idx = 0
	case idx == -1:
		idx = n - 1
	default:
		idx = ((idx+step)%n + n) % n
	}
	m.selectCategory(categories[idx])
}

// refresh recomputes the results for the current browser state
func (m *browseModel) refresh() {
	if m.browser.IsHome() {
		m.results = nil
	} else {
		m.results = m.browser.Results()
	}

	if m.cursor >= m.itemCount() {
		m.cursor = m.itemCount() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.adjustViewport()
}

func (m *browseModel) resetCursor() {
	m.cursor = 0
	m.offset = 0
	m.refresh()
}

// itemCount is the number of selectable items: categories at home, results otherwise
func (m browseModel) itemCount() int {
	if m.browser.IsHome() {
		return len(domain.Categories())
	}
	return len(m.results)
}

// current returns the highlighted asset
func (m browseModel) current() (domain.Asset, bool) {
	if m.browser.IsHome() || m.cursor < 0 || m.cursor >= len(m.results) {
		return domain.Asset{}, false
	}
	return m.results[m.cursor], true
}

func (m *browseModel) adjustViewport() {
	listHeight := m.listHeight()

	// Scroll down
	if m.cursor >= m.offset+listHeight {
		m.offset = m.cursor - listHeight + 1
	}

	// Scroll up
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
}

// listHeight is the number of list rows that fit; each row takes two lines
func (m browseModel) listHeight() int {
	listHeight := (m.height - 14) / 2
	if listHeight < 3 {
		listHeight = 3
	}
	return listHeight
}

func (m browseModel) View() string {
	if !m.ready {
		return "\n  Loading content hub..."
	}

	if selected := m.browser.Selected(); selected != nil {
		return m.viewPreview(*selected)
	}

	if m.mode == modeHelp {
		return m.viewHelp()
	}

	var s strings.Builder

	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(m.renderSearchBar())
	s.WriteString("\n")
	s.WriteString(m.renderCategoryTabs())
	s.WriteString("\n\n")

	if m.browser.IsHome() {
		s.WriteString(m.renderHome())
	} else {
		s.WriteString(m.renderResults())
	}

	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m browseModel) viewHelp() string {
	var s strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorPrimary).
		Padding(1, 2)

	s.WriteString(titleStyle.Render("Content Hub - Keyboard Shortcuts"))
	s.WriteString("\n\n")

	full := m.help
	full.ShowAll = true
	s.WriteString(lipgloss.NewStyle().Padding(0, 2).Render(full.View(m.keys)))
	s.WriteString("\n\n")
	s.WriteString(ui.StyleMuted.Render("  Press ESC or ? to return to the hub"))
	s.WriteString("\n")

	return s.String()
}

func (m browseModel) viewPreview(asset domain.Asset) string {
	width := m.width - 8
	if width > 76 {
		width = 76
	}
	if width < 30 {
		width = 30
	}

	var body strings.Builder
	body.WriteString(ui.StyleHeader.Render(asset.Title))
	body.WriteString("\n")
	body.WriteString(ui.FormatChips(string(asset.Category), asset.Type))
	body.WriteString("\n\n")
	body.WriteString(ui.StyleAccent.Render(ui.IconImage + " " + asset.ImageURL))
	body.WriteString("\n\n")
	body.WriteString(lipgloss.NewStyle().Width(width - 6).Render(asset.Description))
	body.WriteString("\n\n")
	body.WriteString(ui.StyleMuted.Render("[esc/x] Close  [y] Copy image URL"))

	box := ui.StyleOverlay.Width(width).Render(body.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m browseModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(ui.ColorPrimary).
		Bold(true).
		Padding(0, 1)

	title := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Marketing Content Hub"),
		ui.StyleSubtle.Padding(0, 1).Render("Central library for marketing & commercial assets"),
	)

	if m.browser.IsHome() {
		return title
	}

	home := ui.StyleAccent.Render(ui.IconHome + " Home (h)")
	spacer := m.width - lipgloss.Width(title) - lipgloss.Width(home) - 1
	if spacer < 1 {
		spacer = 1
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		title,
		strings.Repeat(" ", spacer),
		home,
	)
}

func (m browseModel) renderSearchBar() string {
	borderColor := ui.ColorMuted
	if m.mode == modeSearch {
		borderColor = ui.ColorPrimary
	}

	width := m.width - 4
	if width < 20 {
		width = 20
	}

	searchStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(width)

	prompt := ui.StyleMuted.Render("🔍 ")
	if m.mode == modeSearch {
		prompt = ui.StylePrimary.Render("🔍 ")
	}

	content := prompt + m.searchInput.View()
	if m.mode != modeSearch && m.searchInput.Value() == "" {
		content = prompt + ui.StyleMuted.Render("Press / to search...")
	}

	return searchStyle.Render(content)
}

func (m browseModel) renderCategoryTabs() string {
	tabs := make([]string, 0, len(domain.Categories()))
	for i, c := range domain.Categories() {
		label := fmt.Sprintf("%d %s %s", i+1, c.Icon(), c)
		if c == m.browser.Category() {
			tabs = append(tabs, ui.StyleTabActive.Render(label))
		} else {
			tabs = append(tabs, ui.StyleTabInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderHome draws the category chooser as cards with asset counts
func (m browseModel) renderHome() string {
	cards := make([]string, 0, len(domain.Categories()))
	for i, c := range domain.Categories() {
		count := 0
		if m.stats != nil {
			count = m.stats.Count(c)
		}

		content := lipgloss.JoinVertical(
			lipgloss.Left,
			fmt.Sprintf("%s %s", c.Icon(), ui.StyleBold.Render(ui.Truncate(string(c), 30))),
			ui.StyleMuted.Render(fmt.Sprintf("%d assets", count)),
		)

		style := ui.StyleCard
		if i == m.cursor {
			style = ui.StyleCardActive
		}
		cards = append(cards, style.Width(34).Render(content))
	}

	return m.renderGrid(cards, 36) + "\n" + ui.StyleMuted.Render("  Pick a category or press / to search")
}

func (m browseModel) renderResults() string {
	var s strings.Builder

	view := m.browser.View()

	s.WriteString(ui.StyleHeader.Render(view.Heading()))
	s.WriteString(ui.StyleMuted.Render(fmt.Sprintf("  %d assets", len(m.results))))
	s.WriteString("\n\n")

	switch view {
	case services.ViewCollateralGrid:
		s.WriteString(m.renderCollateralGrid())
	case services.ViewPlaybookGrid:
		s.WriteString(m.renderPlaybookGrid())
	default:
		s.WriteString(m.renderList())
	}

	return s.String()
}

func (m browseModel) renderCollateralGrid() string {
	tiles := make([]string, 0, len(m.results))
	for i, a := range m.results {
		marker := ""
		if a.Previewable() {
			marker = ui.IconImage + " "
		}
		content := lipgloss.JoinVertical(
			lipgloss.Left,
			marker+ui.StyleBold.Render(ui.Truncate(a.Title, 26)),
			ui.StyleMuted.Render(a.Type),
		)
		tiles = append(tiles, m.cardStyle(i, a).Width(30).Render(content))
	}
	return m.renderGrid(tiles, 32)
}

func (m browseModel) renderPlaybookGrid() string {
	cards := make([]string, 0, len(m.results))
	for i, a := range m.results {
		marker := ""
		if a.Linked() {
			marker = ui.IconLink + " "
		}
		content := lipgloss.JoinVertical(
			lipgloss.Left,
			marker+ui.StyleBold.Render(ui.Truncate(a.Title, 26)),
			ui.StyleMuted.Render(services.PlaybookMeta),
		)
		cards = append(cards, m.cardStyle(i, a).Width(30).Render(content))
	}
	return m.renderGrid(cards, 32)
}

// cardStyle highlights the cursor and fades items that do nothing in the current layout
func (m browseModel) cardStyle(i int, a domain.Asset) lipgloss.Style {
	switch {
	case i == m.cursor:
		return ui.StyleCardActive
	case !services.Clickable(m.browser.View(), a):
		return ui.StyleCardInert
	default:
		return ui.StyleCard
	}
}

// renderGrid lays cells out in rows that fit the terminal width
func (m browseModel) renderGrid(cells []string, cellWidth int) string {
	perRow := m.width / cellWidth
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	for start := 0; start < len(cells); start += perRow {
		end := start + perRow
		if end > len(cells) {
			end = len(cells)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m browseModel) renderList() string {
	if m.browser.View().ShowsEmptyNotice(len(m.results)) {
		emptyStyle := lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true).
			Padding(1, 2)
		return emptyStyle.Render(services.EmptyNotice)
	}

	var s strings.Builder

	start := m.offset
	end := m.offset + m.listHeight()
	if end > len(m.results) {
		end = len(m.results)
	}

	for i := start; i < end; i++ {
		s.WriteString(m.renderListItem(m.results[i], i == m.cursor))
	}

	return s.String()
}

func (m browseModel) renderListItem(a domain.Asset, selected bool) string {
	cursor := "  "
	titleStyle := lipgloss.NewStyle().Foreground(ui.ColorDefault)
	if selected {
		cursor = ui.StylePrimary.Render("▶ ")
		titleStyle = ui.StylePrimary.Bold(true)
	}
	if a.Action().Kind == domain.ActionInert {
		titleStyle = titleStyle.Faint(true)
	}

	width := m.width - 4
	if width < 20 {
		width = 20
	}

	var icon string
	switch a.Action().Kind {
	case domain.ActionPreview:
		icon = " " + ui.IconImage
	case domain.ActionLink:
		icon = " " + ui.IconLink
	}

	title := titleStyle.Render(ui.Truncate(a.Title, width/2)) + icon
	line := cursor + title + " " + ui.FormatChips(string(a.Category), a.Type)
	desc := "    " + ui.StyleMuted.Render(ui.Truncate(a.Description, width-4))

	return padRight(line, width) + "\n" + desc + "\n"
}

func (m browseModel) renderFooter() string {
	var statusLine string
	if m.message != "" && time.Now().Before(m.messageExpiry) {
		statusLine = m.messageStyle.Render(m.message)
	} else {
		statusLine = ui.StyleMuted.Render("Ready")
	}

	footerStyle := lipgloss.NewStyle().
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ui.ColorMuted).
		Padding(0, 1)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		statusLine,
		m.help.ShortHelpView(m.keys.ShortHelp()),
	)

	return footerStyle.Render(content)
}

func padRight(s string, width int) string {
	realLen := lipgloss.Width(s)
	if realLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-realLen)
}

// Commands

type statusMsg struct {
	message string
	style   lipgloss.Style
}

type clearMessageMsg struct{}

func statusCmd(message string, style lipgloss.Style) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{message: message, style: style}
	}
}

// copyURL copies the asset's resolved URL: the image when it has one, otherwise the link
func (m browseModel) copyURL(asset domain.Asset) tea.Cmd {
	return func() tea.Msg {
		url := asset.Action().URL
		if url == "" {
			return statusMsg{message: "No URL to copy for this asset", style: ui.StyleWarning}
		}
		if m.clipboard == nil {
			return statusMsg{message: "Clipboard unavailable", style: ui.StyleError}
		}
		if err := m.clipboard.WriteAll(url); err != nil {
			return statusMsg{message: fmt.Sprintf("Clipboard access failed: %v", err), style: ui.StyleError}
		}
		return statusMsg{message: "Copied " + url, style: ui.StyleSuccess}
	}
}
