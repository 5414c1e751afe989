package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/rplrewind/rewind/internal/logging"
	"github.com/rplrewind/rewind/internal/model"
	"github.com/rplrewind/rewind/internal/nav"
	"github.com/rplrewind/rewind/internal/skin"
)

// YearbookPageID is the ID of the yearbook page.
const YearbookPageID = "yearbook"

// Options configures a YearbookPage. Zero values select the defaults.
type Options struct {
	Cooldown           time.Duration
	WheelThreshold     float64
	WheelDelta         float64
	ReverseScrollWheel bool
	Skin               skin.Skin

	// Scheduler overrides the tea.Tick based cooldown scheduler.
	Scheduler nav.Scheduler
}

func (o Options) withDefaults() Options {
	if o.Cooldown <= 0 {
		o.Cooldown = model.DefaultCooldown
	}
	if o.WheelThreshold <= 0 {
		o.WheelThreshold = model.DefaultWheelThreshold
	}
	if o.WheelDelta <= 0 {
		o.WheelDelta = model.DefaultWheelDelta
	}
	if o.Skin.Name == "" {
		o.Skin = skin.Default()
	}
	return o
}

// YearbookPage shows one section at a time and owns the session's navigator.
type YearbookPage struct {
	book   *model.Yearbook
	opts   Options
	keys   KeyMap
	styles Styles
	logger *logrus.Entry

	ticks *tickScheduler
	nav   *nav.Navigator

	// Only the visible section is kept; it is rebuilt when the index changes.
	active    Section
	activeIdx int

	modalStack []Modal

	width  int
	height int
}

// NewYearbookPage starts a session over book at its first section.
func NewYearbookPage(book *model.Yearbook, opts Options) (*YearbookPage, error) {
	if book == nil || len(book.Sections) == 0 {
		return nil, nav.ErrNoSections
	}
	opts = opts.withDefaults()
	p := &YearbookPage{
		book:   book,
		opts:   opts,
		keys:   DefaultKeyMap(),
		styles: NewStyles(opts.Skin),
		logger: logging.NewLogger("tui"),
		ticks:  &tickScheduler{},
	}
	if err := p.startSession(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *YearbookPage) startSession() error {
	var sched nav.Scheduler = p.ticks
	if p.opts.Scheduler != nil {
		sched = p.opts.Scheduler
	}
	n, err := nav.New(len(p.book.Sections), sched,
		nav.WithThreshold(p.opts.WheelThreshold),
		nav.WithCooldown(p.opts.Cooldown),
	)
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}
	p.nav = n
	p.active = nil
	p.syncSection()
	p.logger.WithField("sections", n.Total()).Info("session started")
	return nil
}

// Navigator exposes the session's navigator.
func (p *YearbookPage) Navigator() *nav.Navigator { return p.nav }

func (p *YearbookPage) ID() string { return YearbookPageID }

func (p *YearbookPage) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

func (p *YearbookPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height

	case SkinMsg:
		p.styles = NewStyles(msg.Skin)

	case cooldownMsg:
		msg.fire()

	case ActionMsg:
		cmd = p.handleAction(msg)

	case tea.KeyMsg:
		cmd = p.handleKeyPress(msg)

	case tea.MouseMsg:
		cmd = p.handleMouseEvent(msg)
	}

	if ticks := p.ticks.drain(); ticks != nil {
		cmd = tea.Batch(cmd, ticks)
	}
	return cmd, nil
}

// wheel feeds one wheel delta to the navigator.
func (p *YearbookPage) wheel(deltaY float64) {
	dir := p.nav.HandleWheel(deltaY)
	if dir == nav.None {
		return
	}
	p.logger.WithFields(logrus.Fields{
		"direction": dir.String(),
		"section":   p.nav.Current(),
	}).Debug("wheel transition")
	p.syncSection()
}

// jump handles manual navigation. Indexes outside the book are ignored here;
// the navigator clamps anything that slips through.
func (p *YearbookPage) jump(index int) {
	if index < 0 || index >= p.nav.Total() {
		return
	}
	got := p.nav.JumpTo(index)
	p.logger.WithFields(logrus.Fields{
		"section": got,
		"locked":  p.nav.Locked(),
	}).Debug("manual jump")
	p.syncSection()
}

// replay tears the session down and starts over at the first section.
// Cooldowns still pending from the old session fire into a closed navigator.
func (p *YearbookPage) replay() {
	p.nav.Close()
	p.logger.Info("session replayed")
	if err := p.startSession(); err != nil {
		p.logger.WithError(err).Error("restarting session")
	}
}

func (p *YearbookPage) handleAction(msg ActionMsg) tea.Cmd {
	switch msg.Action {
	case ActionJump:
		p.jump(max(0, min(msg.Index, p.nav.Total()-1)))
	case ActionReplay:
		p.replay()
	case ActionQuit:
		return tea.Quit
	}
	return nil
}

func (p *YearbookPage) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if modal := p.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			p.PopModal()
		}
		return cmd
	}

	k := p.keys
	switch {
	case key.Matches(msg, k.Quit):
		p.nav.Close()
		return tea.Quit

	case key.Matches(msg, k.Help):
		p.PushModal(NewHelpModal(p))

	case key.Matches(msg, k.Next):
		p.wheel(p.opts.WheelDelta)

	case key.Matches(msg, k.Prev):
		p.wheel(-p.opts.WheelDelta)

	case key.Matches(msg, k.Jump):
		s := msg.String()
		p.jump(int(s[0] - '1'))

	case key.Matches(msg, k.First):
		p.jump(0)

	case key.Matches(msg, k.Last):
		p.jump(p.nav.Total() - 1)

	case key.Matches(msg, k.Activate):
		if a, ok := p.section().(Activatable); ok {
			return a.Activate(p.renderContext())
		}

	case key.Matches(msg, k.Replay):
		if s := p.section(); s != nil && s.Kind() == model.KindClosing {
			p.replay()
		}
	}
	return nil
}

func (p *YearbookPage) handleMouseEvent(msg tea.MouseMsg) tea.Cmd {
	if modal := p.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			p.PopModal()
		}
		return cmd
	}

	if msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelDown:
		p.wheel(p.wheelDelta(1))
	case tea.MouseButtonWheelUp:
		p.wheel(p.wheelDelta(-1))
	case tea.MouseButtonLeft:
		if idx, ok := p.indicatorAt(msg.X, msg.Y); ok {
			p.jump(idx)
		}
	}
	return nil
}

// wheelDelta converts one terminal wheel notch into a deltaY. Terminals
// report notches, not magnitudes, so each notch counts as a full gesture.
func (p *YearbookPage) wheelDelta(sign float64) float64 {
	d := sign * p.opts.WheelDelta
	if p.opts.ReverseScrollWheel {
		d = -d
	}
	return d
}

// syncSection rebuilds the visible section when the index moved.
func (p *YearbookPage) syncSection() {
	idx := p.nav.Current()
	if p.active != nil && idx == p.activeIdx {
		return
	}
	s, err := newSection(p.book.Sections[idx])
	if err != nil {
		p.logger.WithError(err).Errorf("building section %d", idx)
		p.active = nil
		return
	}
	p.active = s
	p.activeIdx = idx
}

func (p *YearbookPage) section() Section {
	p.syncSection()
	return p.active
}

func (p *YearbookPage) renderContext() RenderContext {
	return RenderContext{
		Styles: p.styles,
		Title:  p.book.Title,
		Batch:  p.book.Batch,
		Index:  p.nav.Current(),
		Total:  p.nav.Total(),
	}
}

func (p *YearbookPage) View(width, height int) string {
	p.width = width
	p.height = height
	if width <= 0 || height <= 0 {
		return "Loading..."
	}

	if modal := p.TopModal(); modal != nil {
		return modal.View(width, height)
	}

	l := p.layout()
	ctx := p.renderContext()

	var content string
	if s := p.section(); s != nil {
		content = s.View(ctx, l.contentWidth, l.contentHeight)
	} else {
		content = p.styles.Danger.Render("section unavailable")
	}
	content = lipgloss.NewStyle().
		Width(l.contentWidth).MaxWidth(l.contentWidth).
		Height(l.contentHeight).MaxHeight(l.contentHeight).
		Render(content)

	body := content
	if l.railWidth > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, content, " ", p.renderIndicators(l))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		p.renderProgressBar(width),
		p.renderStatusLine(width),
	)
}
