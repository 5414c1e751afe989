package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rplrewind/rewind/internal/skin"
)

// Page is a top-level screen owned by the App.
type Page interface {
	ID() string
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, *PageNav)
	View(width, height int) string
}

// PageNav is returned from Update to request a page switch.
type PageNav struct {
	PageID string
}

// SkinMsg replaces the palette of every page. It is sent from outside the
// program when a skin file changes.
type SkinMsg struct {
	Skin skin.Skin
}

// App is the Bubble Tea model that routes messages to the active page.
type App struct {
	pages      map[string]Page
	order      []string
	activePage string
	width      int
	height     int
	forceQuit  key.Binding
}

// NewApp creates an App over pages. The first page is active.
func NewApp(pages ...Page) *App {
	a := &App{
		pages:     make(map[string]Page, len(pages)),
		forceQuit: DefaultKeyMap().ForceQuit,
	}
	for _, p := range pages {
		if _, dup := a.pages[p.ID()]; dup {
			continue
		}
		a.pages[p.ID()] = p
		a.order = append(a.order, p.ID())
	}
	if len(a.order) > 0 {
		a.activePage = a.order[0]
	}
	return a
}

// ActivePage returns the page currently receiving input.
func (a *App) ActivePage() Page {
	return a.pages[a.activePage]
}

func (a *App) Init() tea.Cmd {
	if p, ok := a.pages[a.activePage]; ok {
		return p.Init()
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case tea.KeyMsg:
		if key.Matches(msg, a.forceQuit) {
			return a, tea.Quit
		}

	case SkinMsg:
		// Every page restyles, not only the visible one.
		var cmds []tea.Cmd
		for _, id := range a.order {
			cmd, _ := a.pages[id].Update(msg)
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)
	}

	p, ok := a.pages[a.activePage]
	if !ok {
		return a, nil
	}

	cmd, nav := p.Update(msg)
	if nav != nil && nav.PageID != a.activePage {
		if next, exists := a.pages[nav.PageID]; exists {
			a.activePage = nav.PageID
			return a, tea.Batch(cmd, next.Init())
		}
	}
	return a, cmd
}

func (a *App) View() string {
	if p, ok := a.pages[a.activePage]; ok {
		return p.View(a.width, a.height)
	}
	return "No active page"
}
