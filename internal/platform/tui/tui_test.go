package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/softskills-arcade/internal/core"
	"github.com/vovakirdan/softskills-arcade/internal/engine"
	"github.com/vovakirdan/softskills-arcade/internal/registry"
)

// recordingGame keeps every input frame it is stepped with.
type recordingGame struct {
	frames   []core.InputFrame
	resets   int
	feedback engine.FeedbackSink
}

func (g *recordingGame) ID() string                        { return "recording" }
func (g *recordingGame) Title() string                     { return "Recording" }
func (g *recordingGame) Reset(core.RuntimeConfig)          { g.resets++ }
func (g *recordingGame) State() core.GameState             { return core.GameState{Score: len(g.frames)} }
func (g *recordingGame) Render(dst *core.Screen)           { dst.DrawText(0, 0, "hello") }
func (g *recordingGame) SetFeedback(s engine.FeedbackSink) { g.feedback = s }

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	if in.Has(core.ActionConfirm) && g.feedback != nil {
		g.feedback.PlaySound(engine.SoundCorrect)
	}
	return core.StepResult{State: g.State()}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(g *recordingGame) Model {
	return NewModel(g, Options{Config: core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}})
}

func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
		quit bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{runes("w"), core.ActionUp, false},
		{runes("s"), core.ActionDown, false},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{runes("d"), core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{runes("1"), core.ActionChoice1, false},
		{runes("2"), core.ActionChoice2, false},
		{runes("3"), core.ActionChoice3, false},
		{runes("p"), core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{runes("r"), core.ActionRestart, false},
		{runes("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runes("x"), core.ActionNone, false},
	}
	for _, tt := range tests {
		got, quit := km.MapKey(tt.msg)
		assert.Equal(t, tt.want, got, tt.msg.String())
		assert.Equal(t, tt.quit, quit, tt.msg.String())
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(runes("k")))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyDown}))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(runes("q")))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(runes("z")))
}

func TestHeldInput(t *testing.T) {
	h := NewHeldInput(3)

	h.Press(core.ActionRight)
	h.Press(core.ActionPause)
	f := h.Frame()
	assert.True(t, f.Has(core.ActionRight))
	assert.True(t, f.Has(core.ActionPause))

	h.Advance()
	f = h.Frame()
	assert.True(t, f.Has(core.ActionRight), "movement is held")
	assert.False(t, f.Has(core.ActionPause), "one-shot actions last one frame")

	h.Advance()
	assert.True(t, h.Frame().Has(core.ActionRight))
	h.Advance()
	assert.False(t, h.Frame().Has(core.ActionRight), "the hold window expires")

	h.Press(core.ActionRight)
	h.Advance()
	h.Press(core.ActionRight)
	h.Advance()
	h.Advance()
	assert.True(t, h.Frame().Has(core.ActionRight), "a repeat refreshes the window")

	h.Press(core.ActionLeft)
	f = h.Frame()
	assert.True(t, f.Has(core.ActionLeft))
	assert.False(t, f.Has(core.ActionRight), "reversing releases the opposite key")

	h.Press(core.ActionUp)
	h.Release()
	assert.Empty(t, h.Frame().Actions)

	h.Press(core.ActionNone)
	assert.Empty(t, h.Frame().Actions)
}

func TestModelStepsWithHeldInput(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)
	m.Init()
	assert.Equal(t, 1, g.resets)

	m = update(t, m, runes("d"), TickMsg{}, TickMsg{}, runes("p"), TickMsg{})
	require.Len(t, g.frames, 3)
	assert.True(t, g.frames[0].Has(core.ActionRight))
	assert.True(t, g.frames[1].Has(core.ActionRight))
	assert.False(t, g.frames[1].Has(core.ActionPause))
	assert.True(t, g.frames[2].Has(core.ActionPause))
	assert.Equal(t, 3, m.State().Score)
}

func TestModelBlurSkipsUpdate(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	m = update(t, m, runes("d"), tea.BlurMsg{})
	for i := 0; i < 10; i++ {
		next, cmd := m.Update(TickMsg{})
		m = next.(Model)
		assert.NotNil(t, cmd, "the tick cadence keeps running")
	}
	assert.Empty(t, g.frames)
	assert.Contains(t, m.View(), "Window lost focus")

	m = update(t, m, tea.FocusMsg{}, TickMsg{})
	require.Len(t, g.frames, 1, "no catch-up after focus returns")
	assert.False(t, g.frames[0].Has(core.ActionRight), "held keys are released on blur")
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&recordingGame{})
	next, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, "", next.View())
}

func TestModelFeedbackCue(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)
	require.NotNil(t, g.feedback, "the host injects its sink")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{})
	assert.Contains(t, m.View(), "♪ correct")

	for i := 0; i < soundCueFrames; i++ {
		m = update(t, m, TickMsg{})
	}
	assert.NotContains(t, m.View(), "♪")
}

func TestModelClearsScreenBeforeRender(t *testing.T) {
	m := newTestModel(&recordingGame{})

	m = update(t, m, tea.BlurMsg{})
	require.Contains(t, m.View(), "Window lost focus")

	m = update(t, m, tea.FocusMsg{})
	view := m.View()
	assert.Contains(t, view, "hello")
	assert.NotContains(t, view, "Window lost focus", "the previous frame does not leak through")
}

func TestModelResize(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)

	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Equal(t, 60, m.screen.Width())
	assert.Equal(t, 19, m.screen.Height(), "one row is kept for the help footer")
	assert.Zero(t, g.resets, "resizing does not restart the game")
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorGood)
	s.DrawTextColor(2, 0, "cd", core.ColorBad)
	s.DrawText(0, 1, "ef")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, out, "ab")
	assert.Contains(t, out, "cd")
	assert.Contains(t, lines[1], "ef")
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	m.items = []registry.GameInfo{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}

	step := func(msg tea.Msg) tea.Cmd {
		next, cmd := m.Update(msg)
		m = next.(MenuModel)
		return cmd
	}

	step(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor, "cursor stops at the top")
	step(runes("j"))
	step(runes("j"))
	assert.Equal(t, 1, m.cursor, "cursor stops at the bottom")

	assert.Contains(t, m.View(), "> ")
	cmd := step(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.NotNil(t, m.Selected())
	assert.Equal(t, "b", m.Selected().ID)
}
