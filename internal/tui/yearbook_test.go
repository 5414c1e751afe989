package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rplrewind/rewind/internal/content"
	"github.com/rplrewind/rewind/internal/model"
	"github.com/rplrewind/rewind/internal/nav"
	"github.com/rplrewind/rewind/internal/skin"
)

func newTestPage(t *testing.T, opts Options) (*YearbookPage, *nav.ManualScheduler) {
	t.Helper()
	book, err := content.Default()
	require.NoError(t, err)

	sched := &nav.ManualScheduler{}
	if opts.Scheduler == nil {
		opts.Scheduler = sched
	}
	p, err := NewYearbookPage(book, opts)
	require.NoError(t, err)
	p.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return p, sched
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func wheelDown() tea.MouseMsg {
	return tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}
}

func wheelUp() tea.MouseMsg {
	return tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}
}

// runCmd executes cmd and flattens batches into the resulting messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestNewYearbookPage_RejectsEmptyBook(t *testing.T) {
	t.Parallel()

	_, err := NewYearbookPage(&model.Yearbook{}, Options{})
	require.ErrorIs(t, err, nav.ErrNoSections)

	_, err = NewYearbookPage(nil, Options{})
	require.ErrorIs(t, err, nav.ErrNoSections)
}

func TestWheel_OneSectionPerGesture(t *testing.T) {
	t.Parallel()

	p, sched := newTestPage(t, Options{})

	for i := 0; i < 5; i++ {
		p.Update(wheelDown())
	}
	assert.Equal(t, 1, p.Navigator().Current())
	assert.Equal(t, model.KindStats, p.section().Kind())

	sched.Advance(time.Second)
	p.Update(wheelDown())
	assert.Equal(t, 2, p.Navigator().Current())

	sched.Advance(time.Second)
	p.Update(wheelUp())
	assert.Equal(t, 1, p.Navigator().Current())
}

func TestWheel_ReverseScroll(t *testing.T) {
	t.Parallel()

	p, _ := newTestPage(t, Options{ReverseScrollWheel: true})
	p.Update(wheelDown())
	assert.Equal(t, 0, p.Navigator().Current())

	p.Update(wheelUp())
	assert.Equal(t, 1, p.Navigator().Current())
}

func TestWheel_DeltaBelowThresholdIsIgnored(t *testing.T) {
	t.Parallel()

	p, _ := newTestPage(t, Options{WheelDelta: 20})
	p.Update(wheelDown())
	p.Update(keyRunes("j"))
	assert.Equal(t, 0, p.Navigator().Current())
	assert.False(t, p.Navigator().Locked())
}

func TestKeys_ArrowsAreThrottledNumbersAreNot(t *testing.T) {
	t.Parallel()

	p, _ := newTestPage(t, Options{})

	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, p.Navigator().Current())
	require.True(t, p.Navigator().Locked())

	p.Update(keyRunes("4"))
	assert.Equal(t, 3, p.Navigator().Current())
	assert.True(t, p.Navigator().Locked())
	assert.Equal(t, model.KindMessages, p.section().Kind())

	p.Update(keyRunes("9"))
	assert.Equal(t, 3, p.Navigator().Current(), "no indicator exists for section 9")

	p.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 4, p.Navigator().Current())
	p.Update(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, p.Navigator().Current())
}

func TestIntroAction_JumpsToSecondSection(t *testing.T) {
	t.Parallel()

	p, _ := newTestPage(t, Options{})
	cmd, _ := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)

	p.Update(msgs[0])
	assert.Equal(t, 1, p.Navigator().Current())
	assert.False(t, p.Navigator().Locked())
}

func TestClosingReplay_StartsFreshSession(t *testing.T) {
	t.Parallel()

	p, sched := newTestPage(t, Options{})
	p.Update(keyRunes("4"))
	p.Update(wheelDown())
	require.Equal(t, 4, p.Navigator().Current())
	require.True(t, p.Navigator().Locked())

	old := p.Navigator()
	p.Update(keyRunes("r"))

	assert.NotSame(t, old, p.Navigator())
	assert.Equal(t, 0, p.Navigator().Current())
	assert.False(t, p.Navigator().Locked())
	assert.Equal(t, model.KindIntro, p.section().Kind())

	// The old session's unlock still fires, harmlessly.
	sched.Advance(time.Second)
	assert.Equal(t, 4, old.Current())
	assert.Equal(t, 0, p.Navigator().Current())
}

func TestReplayKey_OnlyOnClosing(t *testing.T) {
	t.Parallel()

	p, _ := newTestPage(t, Options{})
	p.Update(keyRunes("3"))
	old := p.Navigator()
	p.Update(keyRunes("r"))
	assert.Same(t, old, p.Navigator())
	assert.Equal(t, 2, p.Navigator().Current())
}

func TestClosingEnter_Replays(t *testing.T) {
	t.Parallel()

	p, _ := newTestPage(t, Options{})
	p.Update(tea.KeyMsg{Type: tea.KeyEnd})
	cmd, _ := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	for _, msg := range runCmd(cmd) {
		p.Update(msg)
	}
	assert.Equal(t, 0, p.Navigator().Current())
}

func TestQuit(t *testing.T) {
	t.Parallel()

	p, _ := newTestPage(t, Options{})
	cmd, _ := p.Update(keyRunes("q"))
	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)
	assert.IsType(t, tea.QuitMsg{}, msgs[0])
}

func TestTickScheduler_UnlockArrivesAsMessage(t *testing.T) {
	t.Parallel()

	book, err := content.Default()
	require.NoError(t, err)
	p, err := NewYearbookPage(book, Options{Cooldown: time.Millisecond})
	require.NoError(t, err)

	cmd, _ := p.Update(wheelDown())
	require.NotNil(t, cmd)
	require.True(t, p.Navigator().Locked())

	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)
	require.IsType(t, cooldownMsg{}, msgs[0])

	// Nothing changes until the program loop delivers the message.
	assert.True(t, p.Navigator().Locked())
	p.Update(msgs[0])
	assert.False(t, p.Navigator().Locked())

	cmd, _ = p.Update(wheelDown())
	require.NotNil(t, cmd)
	assert.Equal(t, 2, p.Navigator().Current())
}

func TestTickScheduler_IgnoredEventsScheduleNothing(t *testing.T) {
	t.Parallel()

	book, err := content.Default()
	require.NoError(t, err)
	p, err := NewYearbookPage(book, Options{})
	require.NoError(t, err)

	cmd, _ := p.Update(wheelUp())
	assert.Nil(t, cmd)
}

func TestIndicatorClick_JumpsEvenWhileCooling(t *testing.T) {
	t.Parallel()

	p, _ := newTestPage(t, Options{})
	p.Update(wheelDown())
	require.True(t, p.Navigator().Locked())

	l := p.layout()
	require.Positive(t, l.railWidth)

	y := l.firstIndicatorY + 3*l.indicatorStep
	p.Update(tea.MouseMsg{X: l.railX + l.railWidth - 1, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, 3, p.Navigator().Current())
	assert.True(t, p.Navigator().Locked())

	// Clicks in the content area or between indicators do nothing.
	p.Update(tea.MouseMsg{X: 2, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	p.Update(tea.MouseMsg{X: l.railX, Y: l.firstIndicatorY + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, 3, p.Navigator().Current())
}

func TestIndicatorAt(t *testing.T) {
	t.Parallel()

	p, _ := newTestPage(t, Options{})
	l := p.layout()

	for i := 0; i < 5; i++ {
		idx, ok := p.indicatorAt(l.railX, l.firstIndicatorY+i*l.indicatorStep)
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}
	_, ok := p.indicatorAt(l.railX, l.firstIndicatorY+5*l.indicatorStep)
	assert.False(t, ok)
	_, ok = p.indicatorAt(l.railX-1, l.firstIndicatorY)
	assert.False(t, ok)

	p.Update(tea.WindowSizeMsg{Width: 30, Height: 20})
	_, ok = p.indicatorAt(25, p.layout().firstIndicatorY)
	assert.False(t, ok, "rail is hidden on narrow terminals")
}

func TestLayout_CompactIndicatorsOnShortTerminals(t *testing.T) {
	t.Parallel()

	p, _ := newTestPage(t, Options{})
	p.Update(tea.WindowSizeMsg{Width: 100, Height: 8})
	l := p.layout()
	assert.Equal(t, 1, l.indicatorStep)
	assert.Equal(t, 6, l.contentHeight)
}

func TestHelpModal_CapturesInput(t *testing.T) {
	t.Parallel()

	p, _ := newTestPage(t, Options{})
	p.Update(keyRunes("?"))
	require.True(t, p.HasModal())

	p.Update(wheelDown())
	p.Update(keyRunes("3"))
	assert.Equal(t, 0, p.Navigator().Current())

	view := p.View(120, 40)
	assert.Contains(t, view, "CONTROLS")

	p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, p.HasModal())
}

func TestView_ShowsOnlyActiveSection(t *testing.T) {
	t.Parallel()

	p, _ := newTestPage(t, Options{})
	view := p.View(120, 40)

	assert.Contains(t, view, "KELAS XII")
	assert.NotContains(t, view, "Sistem Absensi")
	assert.Contains(t, view, "[INTRO] 1/5")
	assert.Contains(t, view, "READY")
	assert.LessOrEqual(t, lipgloss.Height(view), 40)

	p.Update(wheelDown())
	view = p.View(120, 40)
	assert.Contains(t, view, "Sistem Absensi")
	assert.NotContains(t, view, "KELAS XII")
	assert.Contains(t, view, "COOLING")
}

func TestView_EverySectionRendersWithinBounds(t *testing.T) {
	t.Parallel()

	for _, size := range [][2]int{{120, 40}, {80, 24}, {50, 15}} {
		p, _ := newTestPage(t, Options{})
		p.Update(tea.WindowSizeMsg{Width: size[0], Height: size[1]})
		for i := 0; i < 5; i++ {
			p.Update(keyRunes(string(rune('1' + i))))
			view := p.View(size[0], size[1])
			assert.LessOrEqual(t, lipgloss.Height(view), size[1], "section %d at %v", i, size)
			for _, line := range strings.Split(view, "\n") {
				assert.LessOrEqual(t, lipgloss.Width(line), size[0], "section %d at %v", i, size)
			}
		}
	}
}

func TestView_ZeroSize(t *testing.T) {
	t.Parallel()

	p, _ := newTestPage(t, Options{})
	assert.Equal(t, "Loading...", p.View(0, 0))
}

func TestSkinMsg_Restyles(t *testing.T) {
	t.Parallel()

	p, _ := newTestPage(t, Options{})
	mono, ok := skin.Builtin("mono")
	require.True(t, ok)

	p.Update(SkinMsg{Skin: mono})
	assert.Equal(t, "mono", p.styles.Skin.Name)
}

func TestProgressCells(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 20, progressCells(0.2, 100))
	assert.Equal(t, 100, progressCells(1, 100))
	assert.Equal(t, 0, progressCells(0.5, 0))
	assert.Equal(t, 10, progressCells(2, 10))
}

func TestOneSectionBook(t *testing.T) {
	t.Parallel()

	book := &model.Yearbook{Title: "Solo", Sections: []model.Section{{Kind: model.KindIntro, Label: "ONLY"}}}
	p, err := NewYearbookPage(book, Options{Scheduler: &nav.ManualScheduler{}})
	require.NoError(t, err)
	p.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	cmd, _ := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	for _, msg := range runCmd(cmd) {
		p.Update(msg)
	}
	assert.Equal(t, 0, p.Navigator().Current())
	assert.Contains(t, p.View(80, 24), "1/1")
}
