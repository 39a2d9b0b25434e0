// Package app hosts the navigation shell in a bubbletea program.
//
// The App owns one shell.Controller, one Router and the Frame that draws
// them. Terminal events are translated into controller calls on the
// bubbletea loop, so the controller sees them strictly in arrival order:
//
//   - tea.WindowSizeMsg resizes the frame and reclassifies the layout
//   - key and mouse input toggles the pane and selects items
//   - NavigatedMsg from the router syncs the highlight
//   - ConfigReloadedMsg re-initializes the navigation items
//
// # Usage
//
//	router := app.NewRouter()
//	_ = pages.Register(router, tr, pages.Options{})
//	a, err := app.New(router, app.WithConfig(cfg))
//	program := tea.NewProgram(a, tea.WithAltScreen(), tea.WithMouseCellMotion())
//	program.Run()
package app

import (
	"navshell/internal/config"
	"navshell/internal/logger"
	"navshell/internal/shell"
	"navshell/internal/tui/i18n"
	"navshell/internal/tui/layout"
	"navshell/internal/tui/themes"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// AboutPageID is the page shown by the about key. It is not on the
// navigation surface.
const AboutPageID = "about"

// App is the main TUI application model.
type App struct {
	cfg     *config.Config
	log     *logger.Logger
	theme   *themes.Theme
	i18n    *i18n.I18n
	unicode bool

	controller *shell.Controller
	router     *Router
	frame      *layout.Frame
	keys       KeyMap
	help       help.Model

	wrapDispatcher func(shell.Dispatcher) shell.Dispatcher
	newPage        func(config.NavItemConfig) Page
	observers      []func(shell.State)
	startPage      string

	cols     int
	rows     int
	paneOpen bool
	quitting bool
}

// Option configures the App.
type Option func(*App)

// WithConfig sets the configuration.
func WithConfig(cfg *config.Config) Option {
	return func(a *App) {
		if cfg != nil {
			a.cfg = cfg
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *logger.Logger) Option {
	return func(a *App) {
		if log != nil {
			a.log = log
		}
	}
}

// WithTheme sets the theme.
func WithTheme(theme *themes.Theme) Option {
	return func(a *App) {
		if theme != nil {
			a.theme = theme
		}
	}
}

// WithI18n sets the i18n instance.
func WithI18n(tr *i18n.I18n) Option {
	return func(a *App) {
		if tr != nil {
			a.i18n = tr
		}
	}
}

// WithUnicode selects glyph or ASCII rendering.
func WithUnicode(unicode bool) Option {
	return func(a *App) {
		a.unicode = unicode
	}
}

// WithInitialSize sets the terminal size used for the first classification,
// before the first tea.WindowSizeMsg arrives.
func WithInitialSize(cols, rows int) Option {
	return func(a *App) {
		a.cols = cols
		a.rows = rows
	}
}

// WithStartPage overrides navigation.start_page.
func WithStartPage(pageID string) Option {
	return func(a *App) {
		a.startPage = pageID
	}
}

// WithDispatcherWrapper decorates the router before the controller gets it.
func WithDispatcherWrapper(wrap func(shell.Dispatcher) shell.Dispatcher) Option {
	return func(a *App) {
		a.wrapDispatcher = wrap
	}
}

// WithPageFactory sets the constructor used for navigation items that have
// no page yet when the configuration is reloaded.
func WithPageFactory(fn func(config.NavItemConfig) Page) Option {
	return func(a *App) {
		a.newPage = fn
	}
}

// WithObserver subscribes fn to shell state changes.
func WithObserver(fn func(shell.State)) Option {
	return func(a *App) {
		a.observers = append(a.observers, fn)
	}
}

// New creates the App and initializes the shell from the configured
// navigation items. It fails when the items declare a page id twice.
func New(router *Router, opts ...Option) (*App, error) {
	a := &App{
		cfg:     config.DefaultConfig(),
		log:     logger.Default(),
		theme:   themes.Global().Active(),
		unicode: layout.GetCapabilities().Unicode,
		router:  router,
	}

	for _, opt := range opts {
		opt(a)
	}
	if a.i18n == nil {
		a.i18n = i18n.New(i18n.WithLocale(a.cfg.Navigation.Locale))
	}
	if a.startPage == "" {
		a.startPage = a.cfg.Navigation.StartPage
	}

	a.frame = layout.NewFrame()
	a.frame.SetTheme(a.theme)
	a.frame.SetUnicode(a.unicode)
	a.frame.Sidebar.SetTitle(a.i18n.T("app.pane_header"))
	if a.cols > 0 && a.rows > 0 {
		a.frame.SetSize(a.cols, a.rows)
	}

	a.keys = DefaultKeyMap(a.i18n)
	a.help = help.New()
	a.applyHelpStyles()

	var dispatcher shell.Dispatcher = router
	if a.wrapDispatcher != nil {
		dispatcher = a.wrapDispatcher(router)
	}

	controllerOpts := []shell.Option{
		shell.WithThresholds(thresholds(a.cfg.Layout)),
		shell.WithLogger(a.log),
		shell.WithObserver(a.syncPane),
	}
	for _, fn := range a.observers {
		controllerOpts = append(controllerOpts, shell.WithObserver(fn))
	}
	a.controller = shell.New(dispatcher, controllerOpts...)

	if err := a.controller.Initialize(a.logicalWidth(), definitions(a.cfg.Navigation, a.i18n)); err != nil {
		return nil, logger.WrapError(err, "create app")
	}

	return a, nil
}

// Controller returns the shell controller.
func (a *App) Controller() *shell.Controller {
	return a.controller
}

// Router returns the page router.
func (a *App) Router() *Router {
	return a.router
}

// Frame returns the frame the app draws into.
func (a *App) Frame() *layout.Frame {
	return a.frame
}

// Init implements tea.Model. It shows the start page through the router
// directly; the resulting NavigatedMsg brings the highlight in line.
func (a *App) Init() tea.Cmd {
	if a.startPage == "" {
		return nil
	}
	return a.navigate(a.startPage)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case tea.MouseMsg:
		return a, a.handleMouse(msg)

	case NavigatedMsg:
		a.log.Debug("navigation completed", "page", msg.PageID)
		a.controller.OnNavigationCompleted(msg.PageID)
		return a, nil

	case ConfigReloadedMsg:
		if !a.reload(msg.Config) {
			return a, nil
		}
		return a, a.router.Broadcast(msg)

	case ConfigErrorMsg:
		a.frame.StatusBar.SetErrorMessage(a.i18n.T("status.config_invalid", "error", msg.Err))
		return a, nil
	}

	return a, a.router.Update(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	title := a.i18n.T("app.title")
	var content string
	if page := a.router.Current(); page != nil {
		title += " · " + page.Title()
		content = a.router.View()
	} else {
		content = a.i18n.T("pages.empty.body")
	}

	a.frame.StatusBar.SetHints(a.help.ShortHelpView(a.keys.ShortHelp()))
	return a.frame.Render(title, content)
}

func (a *App) resize(cols, rows int) {
	a.cols = cols
	a.rows = rows
	a.help.Width = cols
	a.frame.SetSize(cols, rows)
	a.controller.OnWindowResized(a.logicalWidth())
	a.router.SetSize(a.frame.ContentSize())
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.quitting = true
		return tea.Quit
	case key.Matches(msg, a.keys.Toggle):
		a.controller.TogglePane()
		return nil
	case key.Matches(msg, a.keys.About):
		return a.navigate(AboutPageID)
	}

	if !a.controller.PaneOpen() {
		return a.router.Update(msg)
	}

	// The open pane has the keyboard.
	switch {
	case key.Matches(msg, a.keys.Close):
		a.controller.TogglePane()
	case key.Matches(msg, a.keys.Up):
		a.frame.Sidebar.MoveCursor(-1)
	case key.Matches(msg, a.keys.Down):
		a.frame.Sidebar.MoveCursor(1)
	case key.Matches(msg, a.keys.Select):
		return a.selectItem(a.frame.Sidebar.CursorID())
	default:
		return a.router.Update(msg)
	}
	return nil
}

func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return a.router.Update(msg)
	}

	if a.frame.IsToggle(msg.X, msg.Y) {
		a.controller.TogglePane()
		return nil
	}

	row := msg.Y - a.frame.BodyTop()
	if row >= 0 && row < a.frame.BodyHeight() && msg.X < a.frame.PaneWidthAt() {
		sidebar := a.frame.Sidebar
		if sidebar.IsToggleRow(row) {
			a.controller.TogglePane()
			return nil
		}
		if id, ok := sidebar.ItemAt(row); ok {
			return a.selectItem(id)
		}
		return nil
	}

	// A click beside a floating pane dismisses it.
	if a.frame.Sidebar.Floating() {
		a.controller.TogglePane()
		return nil
	}
	return a.router.Update(msg)
}

// selectItem asks the controller to select id and flushes whatever the
// router queued.
func (a *App) selectItem(id string) tea.Cmd {
	if id == "" {
		return nil
	}
	a.frame.StatusBar.ClearMessage()
	if err := a.controller.SelectItem(id); err != nil {
		a.log.Warn("navigation failed", "page", id, logger.WithError(err))
		a.frame.StatusBar.SetErrorMessage(a.i18n.T("status.dispatch_failed", "page", id, "error", err))
	}
	return a.router.Flush()
}

// navigate shows a page without going through the navigation surface.
func (a *App) navigate(pageID string) tea.Cmd {
	if err := a.router.Navigate(pageID, nil); err != nil {
		a.log.Warn("navigation failed", "page", pageID, logger.WithError(err))
		a.frame.StatusBar.SetErrorMessage(a.i18n.T("status.dispatch_failed", "page", pageID, "error", err))
		return nil
	}
	a.frame.StatusBar.ClearMessage()
	return a.router.Flush()
}

// reload swaps in cfg and reports whether it was accepted. The layout is
// kept; items are rebuilt and the highlight is restored for the page still
// on screen.
func (a *App) reload(cfg *config.Config) bool {
	if cfg == nil {
		return false
	}
	if err := cfg.Validate(); err != nil {
		a.frame.StatusBar.SetErrorMessage(a.i18n.T("status.config_invalid", "error", err))
		return false
	}

	prevLocale := a.i18n.Locale()
	if cfg.Navigation.Locale != prevLocale {
		if err := a.i18n.SetLocale(cfg.Navigation.Locale); err != nil {
			a.log.Warn("locale not applied", "locale", cfg.Navigation.Locale, logger.WithError(err))
		}
	}

	a.controller.SetThresholds(thresholds(cfg.Layout))
	if err := a.controller.Initialize(layout.LogicalWidth(a.cols, cfg.Layout.CellWidth), definitions(cfg.Navigation, a.i18n)); err != nil {
		a.controller.SetThresholds(thresholds(a.cfg.Layout))
		_ = a.i18n.SetLocale(prevLocale)
		a.log.Warn("configuration rejected", logger.WithError(err))
		a.frame.StatusBar.SetErrorMessage(a.i18n.T("status.config_invalid", "error", err))
		return false
	}
	a.cfg = cfg
	if cfg.Theme != a.theme.Name {
		if theme, err := themes.Global().Get(cfg.Theme); err != nil {
			a.log.Warn("theme not applied", "theme", cfg.Theme, logger.WithError(err))
		} else {
			a.theme = theme
			a.frame.SetTheme(theme)
			a.applyHelpStyles()
		}
	}
	a.registerPages(cfg.Navigation)
	a.keys = DefaultKeyMap(a.i18n)
	a.frame.Sidebar.SetTitle(a.i18n.T("app.pane_header"))
	if current := a.router.CurrentID(); current != "" {
		a.controller.OnNavigationCompleted(current)
	}

	a.log.Info("configuration reloaded",
		"primary", len(cfg.Navigation.Primary),
		"secondary", len(cfg.Navigation.Secondary),
	)
	a.frame.StatusBar.SetMessage(a.i18n.T("status.config_reloaded"))
	return true
}

func (a *App) registerPages(nav config.NavigationConfig) {
	if a.newPage == nil {
		return
	}
	for _, items := range [][]config.NavItemConfig{nav.Primary, nav.Secondary} {
		for _, item := range items {
			if a.router.Has(item.Page) {
				continue
			}
			if err := a.router.Register(a.newPage(item)); err != nil {
				a.log.Warn("page not registered", "page", item.Page, logger.WithError(err))
			}
		}
	}
}

// syncPane copies a controller snapshot into the sidebar.
func (a *App) syncPane(s shell.State) {
	sidebar := a.frame.Sidebar
	sidebar.SetMode(s.PaneOpen, s.DisplayMode.IsOverlay(), s.DisplayMode.IsCompact())
	sidebar.SetItems(sidebarItems(s.Primary), sidebarItems(s.Secondary))
	sidebar.SetFocused(s.PaneOpen)

	// Opening the pane puts the cursor on the current page.
	if s.PaneOpen && !a.paneOpen && s.SelectedID != "" {
		sidebar.SetCursor(s.SelectedID)
	}
	a.paneOpen = s.PaneOpen

	a.frame.StatusBar.SetMode(a.i18n.T("layout." + s.LayoutState.String()))
	if a.router != nil {
		a.router.SetSize(a.frame.ContentSize())
	}
}

func (a *App) applyHelpStyles() {
	a.help.Styles.ShortKey = a.theme.HelpKey
	a.help.Styles.ShortDesc = a.theme.HelpDesc
	a.help.Styles.ShortSeparator = a.theme.Muted
	a.help.Styles.FullKey = a.theme.HelpKey
	a.help.Styles.FullDesc = a.theme.HelpDesc
	a.help.Styles.FullSeparator = a.theme.Muted
}

func (a *App) logicalWidth() int {
	return layout.LogicalWidth(a.cols, a.cfg.Layout.CellWidth)
}

func thresholds(cfg config.LayoutConfig) layout.Thresholds {
	return layout.Thresholds{
		WideMinWidth:      cfg.WideMinWidth,
		PanoramicMinWidth: cfg.PanoramicMinWidth,
	}
}

// definitions resolves labels through tr; labels without a translation are
// used as given.
func definitions(nav config.NavigationConfig, tr *i18n.I18n) shell.Definitions {
	return shell.Definitions{
		Primary:   itemDefinitions(nav.Primary, tr),
		Secondary: itemDefinitions(nav.Secondary, tr),
	}
}

func itemDefinitions(items []config.NavItemConfig, tr *i18n.I18n) []shell.ItemDefinition {
	defs := make([]shell.ItemDefinition, 0, len(items))
	for _, item := range items {
		defs = append(defs, shell.ItemDefinition{
			Label:  tr.T(item.Label),
			Icon:   shell.IconRef(item.Icon),
			PageID: item.Page,
		})
	}
	return defs
}

func sidebarItems(items []shell.NavigationItem) []layout.SidebarItem {
	out := make([]layout.SidebarItem, 0, len(items))
	for _, item := range items {
		out = append(out, layout.SidebarItem{
			ID:       item.PageID,
			Title:    item.Label,
			Icon:     string(item.Icon),
			Selected: item.Selected,
		})
	}
	return out
}
