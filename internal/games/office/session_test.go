package office

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/softskills-arcade/internal/config"
	"github.com/vovakirdan/softskills-arcade/internal/core"
	"github.com/vovakirdan/softskills-arcade/internal/engine"
)

var (
	idle  = core.NewInputFrame()
	right = core.NewInputFrame(core.ActionRight)
	left  = core.NewInputFrame(core.ActionLeft)
)

func newTestSession(t *testing.T) (*Session, *engine.Recorder) {
	t.Helper()
	rec := &engine.Recorder{}
	s, err := NewSession(config.DefaultOfficeConfig(), 60, rec, nil)
	require.NoError(t, err)
	return s, rec
}

// started returns a session already past the intro.
func started(t *testing.T) (*Session, *engine.Recorder) {
	t.Helper()
	s, rec := newTestSession(t)
	s.Step(right)
	require.Equal(t, PhasePlaying, s.Phase())
	return s, rec
}

func steps(s *Session, in core.InputFrame, n int) {
	for i := 0; i < n; i++ {
		s.Step(in)
	}
}

// walkUntil holds in until the session reaches phase, up to limit frames.
func walkUntil(t *testing.T, s *Session, in core.InputFrame, phase Phase, limit int) {
	t.Helper()
	for i := 0; i < limit; i++ {
		if s.Phase() == phase {
			return
		}
		s.Step(in)
	}
	require.Equal(t, phase, s.Phase(), "phase not reached in %d frames", limit)
}

func TestWorld(t *testing.T) {
	world, err := NewWorld()
	require.NoError(t, err)

	assert.Equal(t, 3*RoomWidth, world.Width())
	assert.Equal(t, RoomHeight, world.Height())
	assert.Empty(t, world.BorderOpenings(), "the office is sealed at its outer edges")

	for col := 1; col < world.Width()-1; col++ {
		assert.False(t, world.IsBlocked(float64(col)+0.5, walkRow+0.5), "walking row blocked at col %d", col)
	}
	for _, n := range Coworkers {
		assert.False(t, world.BlockedAt(n.Pos()), n.Name)
	}
	assert.False(t, world.BlockedAt(StartPos))

	// Computers are walkable, the rest of the furniture is not.
	assert.False(t, world.IsBlocked(12.5, 3.5))
	assert.True(t, world.IsBlocked(12.5, 2.5))
	assert.True(t, world.IsBlocked(24.5, 2.5))
}

func TestIntroWaitsForMovement(t *testing.T) {
	s, _ := newTestSession(t)
	assert.Equal(t, PhaseIntro, s.Phase())

	steps(s, idle, 100)
	s.Step(core.NewInputFrame(core.ActionConfirm))
	assert.Equal(t, PhaseIntro, s.Phase())
	assert.Equal(t, 60.0, s.TimeLeft(), "the clock does not run on the intro")

	s.Step(left)
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, StartPos, s.Snapshot().Player, "the starting press does not move")
}

func TestHorizontalMovement(t *testing.T) {
	s, _ := started(t)

	s.Step(right)
	snap := s.Snapshot()
	assert.InDelta(t, 2.5+2.0/64, snap.Player.X, 1e-12)
	assert.Equal(t, StartPos.Y, snap.Player.Y)
	assert.Equal(t, 1.0, snap.Facing)
	assert.True(t, snap.Moving)

	// Vertical input is ignored.
	s.Step(core.NewInputFrame(core.ActionUp))
	assert.Equal(t, StartPos.Y, s.Snapshot().Player.Y)
	assert.False(t, s.Snapshot().Moving)

	s.Step(left)
	assert.Equal(t, -1.0, s.Snapshot().Facing)
	assert.InDelta(t, 2.5, s.Snapshot().Player.X, 1e-12)
}

func TestWallStopsPlayer(t *testing.T) {
	s, _ := started(t)

	steps(s, left, 100)
	x := s.Snapshot().Player.X
	assert.GreaterOrEqual(t, x-engine.DefaultCornerOffset, 1.0)
	assert.Less(t, x, 1.4)
	assert.Equal(t, -1.0, s.Snapshot().Facing)
}

func TestWalkAnimation(t *testing.T) {
	s, _ := started(t)

	steps(s, right, 11)
	assert.Equal(t, 0, s.Snapshot().WalkFrame)

	steps(s, right, 3)
	assert.Equal(t, 1, s.Snapshot().WalkFrame)

	steps(s, right, 6)
	assert.Equal(t, 1, s.Snapshot().WalkFrame)

	s.Step(idle)
	assert.Equal(t, 0, s.Snapshot().WalkFrame, "idle shows the standing frame")
	assert.Equal(t, 1.0, s.Snapshot().Facing, "facing is kept while idle")
}

func TestNPCTriggersDialogue(t *testing.T) {
	s, _ := started(t)

	// Jordan stands at 6.5; the trigger is strictly inside 1.5 tiles.
	steps(s, right, 80)
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.InDelta(t, 5.0, s.Snapshot().Player.X, 1e-12)

	s.Step(right)
	require.Equal(t, PhaseDialogue, s.Phase())
	d := s.Snapshot().Dialogue
	require.NotNil(t, d)
	assert.Equal(t, "Jordan", d.NPC)
	assert.Len(t, d.Options, 3)

	remaining := s.TimeLeft()
	steps(s, right, 200)
	assert.Equal(t, PhaseDialogue, s.Phase())
	assert.Equal(t, remaining, s.TimeLeft(), "the timer stops during dialogue")
	assert.InDelta(t, 5.0+1.0/32, s.Snapshot().Player.X, 1e-12, "the player stops during dialogue")
}

func TestCorrectAnswerBuildsTrust(t *testing.T) {
	s, rec := started(t)
	cfg := config.DefaultOfficeConfig()
	walkUntil(t, s, right, PhaseDialogue, 200)

	s.Step(core.NewInputFrame(core.ActionChoice2))
	assert.Equal(t, 1, s.Trust())
	assert.Equal(t, PhaseResuming, s.Phase())
	assert.Equal(t, 1, rec.Count(engine.SoundCorrect))
	assert.True(t, s.Snapshot().NPCs[0].Talked)
	assert.Nil(t, s.Snapshot().Dialogue)

	remaining := s.TimeLeft()
	steps(s, right, s.clock.FramesFor(cfg.Gameplay.ResumeMS)-1)
	assert.Equal(t, PhaseResuming, s.Phase())
	assert.Equal(t, remaining, s.TimeLeft())

	s.Step(idle)
	assert.Equal(t, PhasePlaying, s.Phase())

	// Jordan is exhausted and does not stop the player again.
	steps(s, idle, 30)
	assert.Equal(t, PhasePlaying, s.Phase())
}

func TestWrongAnswer(t *testing.T) {
	s, rec := started(t)
	walkUntil(t, s, right, PhaseDialogue, 200)

	s.Step(core.NewInputFrame(core.ActionConfirm))
	assert.Equal(t, 0, s.Trust())
	assert.Equal(t, 1, rec.Count(engine.SoundWrong))
	assert.Equal(t, PhaseResuming, s.Phase())
	assert.Contains(t, s.Snapshot().Popup, "Jordan")
}

func TestDialogueCursor(t *testing.T) {
	s, _ := started(t)
	walkUntil(t, s, right, PhaseDialogue, 200)
	down := core.NewInputFrame(core.ActionDown)
	up := core.NewInputFrame(core.ActionUp)
	cursor := func() int { return s.Snapshot().Dialogue.Cursor }

	s.Step(up)
	assert.Equal(t, 2, cursor(), "up wraps to the last option")

	s.Step(idle)
	s.Step(down)
	assert.Equal(t, 0, cursor())
	steps(s, down, 5)
	assert.Equal(t, 0, cursor(), "a held key moves the cursor once")

	s.Step(idle)
	s.Step(down)
	assert.Equal(t, 1, cursor())

	s.Step(core.NewInputFrame(core.ActionConfirm))
	assert.Equal(t, 1, s.Trust())
}

func TestFullRun(t *testing.T) {
	s, rec := started(t)
	answer := core.NewInputFrame(core.ActionChoice2)

	for i := 0; i < 2000 && s.Trust() < len(Coworkers); i++ {
		if s.Phase() == PhaseDialogue {
			s.Step(answer)
			continue
		}
		s.Step(right)
	}
	require.Equal(t, 3, s.Trust(), "every coworker is reachable")
	assert.Equal(t, 2, s.Snapshot().Room)

	walkUntil(t, s, right, PhaseComplete, 4000)
	snap := s.Snapshot()
	assert.Equal(t, ResultMessage(3, 3), snap.Result)
	assert.Equal(t, 0.0, snap.TimeLeft)
	assert.Equal(t, 1, rec.Count(engine.SoundWin))

	steps(s, right, 50)
	assert.Equal(t, PhaseComplete, s.Phase())
}

func TestTimeRunsOut(t *testing.T) {
	s, rec := started(t)

	steps(s, idle, 3590)
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, 1, s.SecondsLeft())

	steps(s, idle, 20)
	assert.Equal(t, PhaseComplete, s.Phase())
	assert.Equal(t, 0, s.SecondsLeft())
	assert.Equal(t, "Keep learning! Soft skills take practice!", s.Snapshot().Result)
	assert.Equal(t, 1, rec.Count(engine.SoundGameOver))
}

func TestRestartAfterComplete(t *testing.T) {
	s, _ := started(t)
	walkUntil(t, s, right, PhaseDialogue, 200)
	s.Step(core.NewInputFrame(core.ActionChoice2))
	walkUntil(t, s, idle, PhaseComplete, 4000)

	s.Step(idle)
	assert.Equal(t, PhaseComplete, s.Phase(), "only restart leaves the results")

	s.Step(core.NewInputFrame(core.ActionRestart))
	snap := s.Snapshot()
	assert.Equal(t, PhasePlaying, snap.Phase)
	assert.Equal(t, 0, snap.Trust)
	assert.Equal(t, 60.0, snap.TimeLeft)
	assert.Equal(t, StartPos, snap.Player)
	for _, n := range snap.NPCs {
		assert.False(t, n.Talked, n.Name)
	}
}

func TestPause(t *testing.T) {
	s, _ := started(t)
	steps(s, right, 10)
	before := s.Snapshot()

	s.Step(core.NewInputFrame(core.ActionPause))
	steps(s, right, 100)
	after := s.Snapshot()
	assert.True(t, after.Paused)
	assert.Equal(t, before.TimeLeft, after.TimeLeft)
	assert.Equal(t, before.Player, after.Player)

	s.Step(core.NewInputFrame(core.ActionPause, core.ActionRight))
	assert.False(t, s.Paused())
	assert.Greater(t, s.Snapshot().Player.X, before.Player.X)
}

func TestTickRateSetsDt(t *testing.T) {
	s, err := NewSession(config.DefaultOfficeConfig(), 30, nil, nil)
	require.NoError(t, err)
	s.Step(right)

	steps(s, idle, 30)
	assert.InDelta(t, 59.0, s.TimeLeft(), 1e-9)
}

func TestResumeDelayFollowsTickRate(t *testing.T) {
	s, err := NewSession(config.DefaultOfficeConfig(), 30, nil, nil)
	require.NoError(t, err)
	walkUntil(t, s, right, PhaseDialogue, 200)

	s.Step(core.NewInputFrame(core.ActionChoice1))
	require.Equal(t, PhaseResuming, s.Phase())

	// 1000 ms at 30 fps.
	steps(s, idle, 29)
	assert.Equal(t, PhaseResuming, s.Phase())
	s.Step(idle)
	assert.Equal(t, PhasePlaying, s.Phase())
}

func TestResultMessage(t *testing.T) {
	tests := []struct {
		trust int
		want  string
	}{
		{3, "Perfect! You're a soft-skills master!"},
		{2, "Great job! You build strong relationships!"},
		{1, "Good start! Keep practicing those soft skills!"},
		{0, "Keep learning! Soft skills take practice!"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResultMessage(tt.trust, 3), "trust %d", tt.trust)
	}
	assert.Equal(t, "Keep learning! Soft skills take practice!", ResultMessage(0, 0))
}

func TestCameraX(t *testing.T) {
	assert.Equal(t, 0.0, CameraX(2.5, 10, 30))
	assert.Equal(t, 10.0, CameraX(15, 10, 30))
	assert.Equal(t, 20.0, CameraX(29, 10, 30))
	assert.Equal(t, 0.0, CameraX(15, 40, 30), "a wide view never scrolls")
}

func TestRoomOf(t *testing.T) {
	assert.Equal(t, 0, RoomOf(2.5))
	assert.Equal(t, 1, RoomOf(16))
	assert.Equal(t, 2, RoomOf(29))
	assert.Equal(t, 0, RoomOf(-1))
	assert.Equal(t, 2, RoomOf(45))
}
