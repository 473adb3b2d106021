package office

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/softskills-arcade/internal/config"
	"github.com/vovakirdan/softskills-arcade/internal/core"
	"github.com/vovakirdan/softskills-arcade/internal/engine"
	"github.com/vovakirdan/softskills-arcade/internal/registry"
)

func TestRegistered(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	g, err := registry.Create("office", registry.Options{Difficulty: "hard"})
	require.NoError(t, err)
	assert.Equal(t, "office", g.ID())

	g.Reset(core.DefaultConfig())
	assert.Equal(t, 45.0, g.(*Game).Session().TimeLeft())
}

func TestNewRejectsBadPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := New(registry.Options{Difficulty: "nightmare"})
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestGameState(t *testing.T) {
	g := NewWithConfig(config.DefaultOfficeConfig(), nil)
	assert.Equal(t, core.GameState{}, g.State())

	rec := &engine.Recorder{}
	g.SetFeedback(rec)
	g.Reset(core.DefaultConfig())

	res := g.Step(core.NewInputFrame(core.ActionRight))
	assert.False(t, res.State.GameOver)
	for i := 0; i < 200 && g.Session().Phase() != PhaseDialogue; i++ {
		g.Step(core.NewInputFrame(core.ActionRight))
	}
	res = g.Step(core.NewInputFrame(core.ActionChoice2))
	assert.Equal(t, 1, res.State.Score)
	assert.Equal(t, 1, rec.Count(engine.SoundCorrect))
}

func TestRender(t *testing.T) {
	g := NewWithConfig(config.DefaultOfficeConfig(), nil)
	g.Reset(core.DefaultConfig())
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	assert.Contains(t, scr.String(), "Office Hero")

	g.Step(core.NewInputFrame(core.ActionRight))
	g.Render(scr)
	out := scr.String()
	assert.Contains(t, out, "Time: 60s")
	assert.Contains(t, out, "Trust: 0/3")
	assert.Contains(t, out, "Room 1/3")
	assert.Contains(t, out, "Jordan")
	assert.Contains(t, out, "@>")

	for i := 0; i < 200 && g.Session().Phase() != PhaseDialogue; i++ {
		g.Step(core.NewInputFrame(core.ActionRight))
	}
	g.Render(scr)
	out = scr.String()
	assert.Contains(t, out, "Jordan missed a deadline")
	assert.Contains(t, out, "> 1. Complain to the boss")
}

func TestRenderTooSmall(t *testing.T) {
	g := NewWithConfig(config.DefaultOfficeConfig(), nil)
	g.Reset(core.DefaultConfig())
	g.Step(core.NewInputFrame(core.ActionRight))

	scr := core.NewScreen(30, 10)
	g.Render(scr)
	assert.Contains(t, scr.String(), "Window too small")
}
