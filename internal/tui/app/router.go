package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrPageNotFound is returned when navigating to an id with no registered page.
var ErrPageNotFound = errors.New("page not found")

// Page represents a full-screen page in the content area.
type Page interface {
	tea.Model

	// ID returns the unique page identifier.
	ID() string

	// Title returns the page title for display.
	Title() string

	// SetSize updates the page dimensions.
	SetSize(width, height int)
}

// NavigatedMsg reports that a page has been shown, whoever asked for it.
type NavigatedMsg struct {
	PageID string
	Param  any
}

type pendingNavigation struct {
	pageID string
	param  any
}

// Router owns the registered pages and the page currently shown. It is the
// navigation dispatcher of the shell: Navigate queues a switch and Flush
// performs it on the event loop.
type Router struct {
	pages   map[string]Page
	order   []string
	current string
	pending *pendingNavigation

	width  int
	height int
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{
		pages: make(map[string]Page),
	}
}

// Register adds pages. An id registered twice is an error.
func (r *Router) Register(pages ...Page) error {
	for _, page := range pages {
		id := page.ID()
		if _, ok := r.pages[id]; ok {
			return fmt.Errorf("register page %q: already registered", id)
		}
		r.pages[id] = page
		r.order = append(r.order, id)
		page.SetSize(r.width, r.height)
	}
	return nil
}

// Has reports whether a page is registered under id.
func (r *Router) Has(id string) bool {
	_, ok := r.pages[id]
	return ok
}

// Pages returns the registered pages in registration order.
func (r *Router) Pages() []Page {
	out := make([]Page, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.pages[id])
	}
	return out
}

// Navigate queues a switch to pageID. A later call before Flush replaces it.
func (r *Router) Navigate(pageID string, param any) error {
	if _, ok := r.pages[pageID]; !ok {
		return fmt.Errorf("%w: %q", ErrPageNotFound, pageID)
	}
	r.pending = &pendingNavigation{pageID: pageID, param: param}
	return nil
}

// Pending reports the queued page id, if any.
func (r *Router) Pending() (string, bool) {
	if r.pending == nil {
		return "", false
	}
	return r.pending.pageID, true
}

// Flush switches to the queued page and returns a command that initializes
// it and then emits NavigatedMsg. It returns nil when nothing is queued.
func (r *Router) Flush() tea.Cmd {
	if r.pending == nil {
		return nil
	}
	next := *r.pending
	r.pending = nil

	page := r.pages[next.pageID]
	r.current = next.pageID
	page.SetSize(r.width, r.height)

	navigated := func() tea.Msg {
		return NavigatedMsg{PageID: next.pageID, Param: next.param}
	}
	if init := page.Init(); init != nil {
		return tea.Sequence(init, navigated)
	}
	return navigated
}

// Current returns the page shown, or nil before the first navigation.
func (r *Router) Current() Page {
	return r.pages[r.current]
}

// CurrentID returns the id of the page shown.
func (r *Router) CurrentID() string {
	return r.current
}

// SetSize updates the content area size of every page.
func (r *Router) SetSize(width, height int) {
	r.width = width
	r.height = height
	for _, page := range r.pages {
		page.SetSize(width, height)
	}
}

// Update forwards msg to the current page.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	page := r.Current()
	if page == nil {
		return nil
	}
	updated, cmd := page.Update(msg)
	if p, ok := updated.(Page); ok {
		r.pages[r.current] = p
	}
	return cmd
}

// Broadcast sends msg to every page, in registration order.
func (r *Router) Broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, id := range r.order {
		updated, cmd := r.pages[id].Update(msg)
		if p, ok := updated.(Page); ok {
			r.pages[id] = p
		}
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// View renders the current page.
func (r *Router) View() string {
	if page := r.Current(); page != nil {
		return page.View()
	}
	return ""
}
