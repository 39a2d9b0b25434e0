// Package shell holds the presentation state of the navigation shell: pane
// visibility, display mode, the primary and secondary navigation items and the
// current selection.
//
// The Controller is the single writer of that state. It is not safe for
// concurrent use; every call is expected to arrive on the host's event loop in
// arrival order.
package shell

import (
	"fmt"

	"navshell/internal/logger"
	"navshell/internal/tui/layout"
)

// Dispatcher performs page transitions on behalf of the controller.
type Dispatcher interface {
	Navigate(pageID string, param any) error
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(pageID string, param any) error

// Navigate calls f.
func (f DispatcherFunc) Navigate(pageID string, param any) error {
	return f(pageID, param)
}

// State is a read-only snapshot of the shell.
type State struct {
	PaneOpen    bool
	DisplayMode DisplayMode
	LayoutState layout.LayoutState
	Primary     []NavigationItem
	Secondary   []NavigationItem
	SelectedID  string
}

// Selected returns the selected item, if any.
func (s State) Selected() (NavigationItem, bool) {
	if s.SelectedID == "" {
		return NavigationItem{}, false
	}
	for _, items := range [][]NavigationItem{s.Primary, s.Secondary} {
		for _, item := range items {
			if item.PageID == s.SelectedID {
				return item, true
			}
		}
	}
	return NavigationItem{}, false
}

// Controller owns the shell state.
type Controller struct {
	dispatcher Dispatcher
	thresholds layout.Thresholds
	log        *logger.Logger

	paneOpen    bool
	displayMode DisplayMode
	layoutState layout.LayoutState

	primary   []NavigationItem
	secondary []NavigationItem
	selected  *NavigationItem

	observers      map[int]func(State)
	observerOrder  []int
	nextObserverID int
}

// Option configures a Controller.
type Option func(*Controller)

// WithThresholds sets the breakpoints used to classify widths.
func WithThresholds(t layout.Thresholds) Option {
	return func(c *Controller) {
		c.thresholds = t
	}
}

// WithLogger sets the logger.
func WithLogger(log *logger.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log.WithGroup("shell")
		}
	}
}

// WithObserver registers an observer before the first notification.
func WithObserver(fn func(State)) Option {
	return func(c *Controller) {
		c.Subscribe(fn)
	}
}

// New creates a controller that issues navigation requests through d.
func New(d Dispatcher, opts ...Option) *Controller {
	c := &Controller{
		dispatcher:  d,
		thresholds:  layout.DefaultThresholds(),
		log:         logger.Default(),
		displayMode: DisplayModeCompactInline,
		observers:   make(map[int]func(State)),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Initialize replaces the navigation items and applies the layout for width.
// Definitions are validated before anything is touched, so a configuration
// error leaves the previous state intact.
func (c *Controller) Initialize(width int, defs Definitions) error {
	if err := defs.Validate(); err != nil {
		return fmt.Errorf("initialize shell: %w", err)
	}

	c.primary = newItems(defs.Primary)
	c.secondary = newItems(defs.Secondary)
	c.selected = nil

	state := c.thresholds.Classify(width)
	if _, err := c.applyLayoutState(state); err != nil {
		c.log.Warn("layout state not applied", "state", state.String(), logger.WithError(err))
	}

	c.log.Debug("shell initialized",
		"width", width,
		"layout", c.layoutState.String(),
		"display_mode", c.displayMode.String(),
		"primary", len(c.primary),
		"secondary", len(c.secondary),
	)

	c.notify()
	return nil
}

// OnWindowResized reclassifies width and applies the matching layout.
// Observers are only notified when the visible state changes.
func (c *Controller) OnWindowResized(width int) {
	state := c.thresholds.Classify(width)

	changed, err := c.applyLayoutState(state)
	if err != nil {
		c.log.Warn("layout state not applied", "state", state.String(), logger.WithError(err))
		return
	}
	if !changed {
		return
	}

	c.log.Debug("layout changed",
		"width", width,
		"layout", state.String(),
		"display_mode", c.displayMode.String(),
		"pane_open", c.paneOpen,
	)
	c.notify()
}

// TogglePane flips the pane between open and closed.
func (c *Controller) TogglePane() {
	c.paneOpen = !c.paneOpen
	c.log.Debug("pane toggled", "pane_open", c.paneOpen)
	c.notify()
}

// SelectItem highlights the item for pageID and asks the dispatcher to show
// it. An overlay pane is closed first. Unknown identifiers are ignored.
//
// The dispatcher runs after all local state is updated; its error is returned
// wrapped in ErrDispatch and the new selection stands.
func (c *Controller) SelectItem(pageID string) error {
	item := c.find(pageID)
	if item == nil {
		c.log.Debug("select ignored, unknown page", "page", pageID)
		return nil
	}

	if c.displayMode.IsOverlay() {
		c.paneOpen = false
	}
	c.moveSelection(item)
	c.notify()

	if c.dispatcher == nil {
		return nil
	}
	if err := c.dispatcher.Navigate(pageID, nil); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDispatch, pageID, err)
	}
	return nil
}

// OnNavigationCompleted syncs the highlight with a page the dispatcher has
// finished showing. It never calls the dispatcher, whatever triggered the
// transition.
func (c *Controller) OnNavigationCompleted(pageID string) {
	item := c.find(pageID)
	if item == nil {
		c.log.Debug("navigation completed outside the nav surface", "page", pageID)
		return
	}
	if item == c.selected {
		return
	}

	c.moveSelection(item)
	c.notify()
}

// SetThresholds replaces the breakpoints. They apply from the next Initialize
// or OnWindowResized.
func (c *Controller) SetThresholds(t layout.Thresholds) {
	c.thresholds = t
}

// State returns a snapshot of the shell.
func (c *Controller) State() State {
	s := State{
		PaneOpen:    c.paneOpen,
		DisplayMode: c.displayMode,
		LayoutState: c.layoutState,
		Primary:     cloneItems(c.primary),
		Secondary:   cloneItems(c.secondary),
	}
	if c.selected != nil {
		s.SelectedID = c.selected.PageID
	}
	return s
}

// PaneOpen reports whether the pane is open.
func (c *Controller) PaneOpen() bool {
	return c.paneOpen
}

// DisplayMode returns the current display mode.
func (c *Controller) DisplayMode() DisplayMode {
	return c.displayMode
}

// LayoutState returns the layout state last applied.
func (c *Controller) LayoutState() layout.LayoutState {
	return c.layoutState
}

// Subscribe registers fn to receive a snapshot after each state change.
// The returned function removes it.
func (c *Controller) Subscribe(fn func(State)) (cancel func()) {
	if fn == nil {
		return func() {}
	}

	id := c.nextObserverID
	c.nextObserverID++
	c.observers[id] = fn
	c.observerOrder = append(c.observerOrder, id)

	return func() {
		delete(c.observers, id)
		for i, v := range c.observerOrder {
			if v == id {
				c.observerOrder = append(c.observerOrder[:i], c.observerOrder[i+1:]...)
				break
			}
		}
	}
}

// applyLayoutState runs the transition for state and reports whether the
// display mode or pane visibility changed.
//
//	Panoramic -> CompactInline, pane unchanged
//	Wide      -> CompactInline, pane closed
//	Narrow    -> Overlay, pane closed
func (c *Controller) applyLayoutState(state layout.LayoutState) (bool, error) {
	mode := c.displayMode
	open := c.paneOpen

	switch state {
	case layout.Panoramic:
		mode = DisplayModeCompactInline
	case layout.Wide:
		mode = DisplayModeCompactInline
		open = false
	case layout.Narrow:
		mode = DisplayModeOverlay
		open = false
	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownLayoutState, state)
	}

	changed := mode != c.displayMode || open != c.paneOpen || state != c.layoutState
	c.displayMode = mode
	c.paneOpen = open
	c.layoutState = state
	return changed, nil
}

// find looks in the primary items first, then the secondary ones.
func (c *Controller) find(pageID string) *NavigationItem {
	for i := range c.primary {
		if c.primary[i].PageID == pageID {
			return &c.primary[i]
		}
	}
	for i := range c.secondary {
		if c.secondary[i].PageID == pageID {
			return &c.secondary[i]
		}
	}
	return nil
}

func (c *Controller) moveSelection(item *NavigationItem) {
	if c.selected != nil {
		c.selected.Selected = false
	}
	item.Selected = true
	c.selected = item
}

func (c *Controller) notify() {
	if len(c.observerOrder) == 0 {
		return
	}
	ids := append([]int(nil), c.observerOrder...)
	for _, id := range ids {
		if fn, ok := c.observers[id]; ok {
			fn(c.State())
		}
	}
}
