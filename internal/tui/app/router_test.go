package app

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type stubPage struct {
	id      string
	width   int
	height  int
	inits   int
	updates []tea.Msg
}

func newStubPage(id string) *stubPage {
	return &stubPage{id: id}
}

func (p *stubPage) Init() tea.Cmd {
	p.inits++
	return nil
}

func (p *stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.updates = append(p.updates, msg)
	return p, nil
}

func (p *stubPage) View() string { return "page:" + p.id }
func (p *stubPage) ID() string { return p.id }
func (p *stubPage) Title() string { return "Title " + p.id }
func (p *stubPage) SetSize(w, h int) { p.width, p.height = w, h }

func TestRouter_RegisterDuplicate(t *testing.T) {
	r := NewRouter()
	if err := r.Register(newStubPage("main")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.Register(newStubPage("main")); err == nil {
		t.Fatal("expected error for duplicate page")
	}
	if got := len(r.Pages()); got != 1 {
		t.Errorf("expected 1 page, got %d", got)
	}
}

func TestRouter_NavigateUnknown(t *testing.T) {
	r := NewRouter()
	err := r.Navigate("missing", nil)
	if !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}
	if _, ok := r.Pending(); ok {
		t.Error("failed navigation must not queue anything")
	}
	if r.Flush() != nil {
		t.Error("expected nil command with nothing queued")
	}
}

func TestRouter_FlushEmitsNavigated(t *testing.T) {
	r := NewRouter()
	main, chart := newStubPage("main"), newStubPage("chart")
	if err := r.Register(main, chart); err != nil {
		t.Fatalf("register: %v", err)
	}
	r.SetSize(80, 20)

	if err := r.Navigate("chart", "param"); err != nil {
		t.Fatalf("navigate: %v", err)
	}
	if id, ok := r.Pending(); !ok || id != "chart" {
		t.Fatalf("expected chart pending, got %q %v", id, ok)
	}
	if r.Current() != nil {
		t.Error("navigate must not switch before flush")
	}

	cmd := r.Flush()
	if cmd == nil {
		t.Fatal("expected command")
	}
	if r.CurrentID() != "chart" {
		t.Errorf("expected chart current, got %q", r.CurrentID())
	}
	if chart.inits != 1 {
		t.Errorf("expected page init once, got %d", chart.inits)
	}

	msg, ok := cmd().(NavigatedMsg)
	if !ok {
		t.Fatalf("expected NavigatedMsg, got %T", cmd())
	}
	if msg.PageID != "chart" || msg.Param != "param" {
		t.Errorf("unexpected message %+v", msg)
	}
	if _, ok := r.Pending(); ok {
		t.Error("flush must clear the queue")
	}
}

func TestRouter_LastNavigateWins(t *testing.T) {
	r := NewRouter()
	_ = r.Register(newStubPage("a"), newStubPage("b"))

	_ = r.Navigate("a", nil)
	_ = r.Navigate("b", nil)
	cmd := r.Flush()

	if r.CurrentID() != "b" {
		t.Errorf("expected b, got %q", r.CurrentID())
	}
	if msg := cmd().(NavigatedMsg); msg.PageID != "b" {
		t.Errorf("expected b, got %q", msg.PageID)
	}
}

func TestRouter_SizeAndForwarding(t *testing.T) {
	r := NewRouter()
	page := newStubPage("main")
	r.SetSize(40, 10)
	_ = r.Register(page)

	if page.width != 40 || page.height != 10 {
		t.Errorf("registered page not sized: %dx%d", page.width, page.height)
	}

	if r.Update(tea.KeyMsg{Type: tea.KeyEnter}) != nil {
		t.Error("expected nil with no current page")
	}
	if r.View() != "" {
		t.Error("expected empty view with no current page")
	}

	_ = r.Navigate("main", nil)
	r.Flush()
	r.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(page.updates) != 1 {
		t.Errorf("expected forwarded message, got %d", len(page.updates))
	}
	if r.View() != "page:main" {
		t.Errorf("unexpected view %q", r.View())
	}
}
