package office

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/softskills-arcade/internal/config"
	"github.com/vovakirdan/softskills-arcade/internal/core"
	"github.com/vovakirdan/softskills-arcade/internal/engine"
)

// Phase is the state of an office run.
type Phase string

const (
	PhaseIntro    Phase = "intro"
	PhasePlaying  Phase = "playing"
	PhaseDialogue Phase = "dialogue"
	PhaseResuming Phase = "resuming"
	PhaseComplete Phase = "complete"
)

type transition int

const transitionResume transition = 1

// NPC is a coworker's per-run state.
type NPC struct {
	NPCDef
	Talked bool
}

// Session owns one office run.
type Session struct {
	id       string
	cfg      config.OfficeConfig
	world    *engine.Grid
	mover    engine.Mover
	prox     engine.Proximity
	clock    *engine.FrameClock
	feedback engine.FeedbackSink
	log      *log.Logger

	phase    Phase
	timeLeft float64
	trust    int

	player     engine.Entity
	facing     float64 // -1 left, +1 right
	moving     bool
	walkFrame  int
	frameTimer float64

	npcs    []NPC
	talking int // index into npcs while in Dialogue, -1 otherwise
	cursor  int
	prevIn  struct{ up, down bool }
	result  string

	popup     engine.Countdown
	popupText string
	pending   engine.Scheduler[transition]
}

// NewSession creates a session in the intro phase. tickRate sets the
// simulated seconds per frame; sink and logger may be nil.
func NewSession(cfg config.OfficeConfig, tickRate int, sink engine.FeedbackSink, logger *log.Logger) (*Session, error) {
	world, err := NewWorld()
	if err != nil {
		return nil, fmt.Errorf("office: %w", err)
	}
	if sink == nil {
		sink = engine.NopFeedback{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	id := uuid.NewString()
	s := &Session{
		id:       id,
		cfg:      cfg,
		world:    world,
		mover:    engine.NewMover(world),
		prox:     engine.Proximity{TileSize: cfg.Player.TileSize},
		clock:    engine.NewFrameClock(tickRate),
		feedback: sink,
		log:      logger.With("session", id[:8]),
	}
	s.Reset()
	return s, nil
}

// SetFeedback replaces the feedback sink.
func (s *Session) SetFeedback(sink engine.FeedbackSink) {
	if sink == nil {
		sink = engine.NopFeedback{}
	}
	s.feedback = sink
}

// ID returns the session id used in logs.
func (s *Session) ID() string { return s.id }

// Reset returns to the intro screen with a fresh run.
func (s *Session) Reset() {
	s.clock.Reset()
	s.restart()
	s.phase = PhaseIntro
}

// restart clears trust, the timer, the player and every NPC flag and goes
// straight to Playing.
func (s *Session) restart() {
	s.pending.Cancel()
	s.popup.Stop()
	s.popupText = ""
	s.timeLeft = s.cfg.Gameplay.DurationSeconds
	s.trust = 0
	s.result = ""
	s.player = engine.Entity{
		Pos:    StartPos,
		Speed:  s.cfg.Player.Speed / s.cfg.Player.TileSize,
		Radius: 0.5,
	}
	s.facing = 1
	s.moving = false
	s.walkFrame = 0
	s.frameTimer = 0
	s.npcs = make([]NPC, len(Coworkers))
	for i, def := range Coworkers {
		s.npcs[i] = NPC{NPCDef: def}
	}
	s.talking = -1
	s.cursor = 0
	s.phase = PhasePlaying
	s.log.Info("run started", "duration", s.timeLeft)
}

// Step runs one frame.
func (s *Session) Step(in engine.InputSource) {
	if in.Has(core.ActionPause) {
		s.clock.Toggle()
	}
	if !s.clock.Tick() {
		return
	}

	if kind, ok := s.pending.Tick(); ok && kind == transitionResume {
		s.phase = PhasePlaying
		s.log.Debug("resumed", "time_left", s.timeLeft)
	}

	switch s.phase {
	case PhaseIntro:
		if in.Has(core.ActionLeft) || in.Has(core.ActionRight) {
			s.phase = PhasePlaying
		}
	case PhasePlaying:
		s.update(in)
	case PhaseDialogue:
		s.dialogue(in)
	case PhaseComplete:
		if in.Has(core.ActionRestart) {
			s.restart()
		}
	}

	s.prevIn.up = in.Has(core.ActionUp)
	s.prevIn.down = in.Has(core.ActionDown)

	if s.popup.Tick() {
		s.popupText = ""
	}
}

func (s *Session) update(in engine.InputSource) {
	dt := s.clock.Dt()
	s.timeLeft -= dt
	if s.timeLeft <= 0 {
		s.timeLeft = 0
		s.complete()
		return
	}

	dx, _ := engine.Axis(in)
	s.moving = dx != 0
	if s.moving {
		s.facing = dx
		s.player.Pos = s.mover.TryMove(s.player, dx, 0).Pos
	}

	if s.moving {
		s.frameTimer += dt
		if s.frameTimer > s.cfg.Player.FrameInterval {
			s.frameTimer = 0
			s.walkFrame = (s.walkFrame + 1) % 2
		}
	} else {
		s.walkFrame = 0
	}

	for i := range s.npcs {
		n := &s.npcs[i]
		if n.Talked || !s.prox.Within(s.player.Pos, n.Pos(), s.cfg.Gameplay.TalkRadius) {
			continue
		}
		s.phase = PhaseDialogue
		s.talking = i
		s.cursor = 0
		s.log.Info("dialogue", "npc", n.Name, "room", RoomOf(s.player.Pos.X)+1)
		return
	}
}

func (s *Session) dialogue(in engine.InputSource) {
	opts := s.npcs[s.talking].Scenario.Options

	for _, a := range []core.Action{core.ActionChoice1, core.ActionChoice2, core.ActionChoice3} {
		if in.Has(a) && a.ChoiceIndex() < len(opts) {
			s.answer(a.ChoiceIndex())
			return
		}
	}

	// Movement keys stay held for several frames, so the cursor moves on
	// the press edge only.
	if in.Has(core.ActionUp) && !s.prevIn.up {
		s.cursor = (s.cursor + len(opts) - 1) % len(opts)
	}
	if in.Has(core.ActionDown) && !s.prevIn.down {
		s.cursor = (s.cursor + 1) % len(opts)
	}
	if in.Has(core.ActionConfirm) {
		s.answer(s.cursor)
	}
}

func (s *Session) answer(i int) {
	n := &s.npcs[s.talking]
	n.Talked = true
	opt := n.Scenario.Options[i]

	if opt.Correct {
		s.trust++
		s.feedback.PlaySound(engine.SoundCorrect)
		s.showPopup(fmt.Sprintf("%s trusts you more!", n.Name))
	} else {
		s.feedback.PlaySound(engine.SoundWrong)
		s.showPopup(fmt.Sprintf("%s doesn't look convinced.", n.Name))
	}
	s.log.Info("answered", "npc", n.Name, "option", i+1, "correct", opt.Correct, "trust", s.trust)

	s.talking = -1
	s.phase = PhaseResuming
	if !s.pending.Schedule(transitionResume, s.clock.FramesFor(s.cfg.Gameplay.ResumeMS)) {
		s.log.Warn("resume already pending")
	}
}

func (s *Session) complete() {
	s.phase = PhaseComplete
	s.result = ResultMessage(s.trust, len(s.npcs))
	if s.trust > 0 {
		s.feedback.PlaySound(engine.SoundWin)
	} else {
		s.feedback.PlaySound(engine.SoundGameOver)
	}
	s.log.Info("time up", "trust", s.trust, "of", len(s.npcs))
}

func (s *Session) showPopup(text string) {
	s.popupText = text
	s.popup.Start(s.cfg.Gameplay.PopupTicks)
	s.feedback.ShowPopup(text, s.cfg.Gameplay.PopupTicks)
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Trust returns the number of correct answers so far.
func (s *Session) Trust() int { return s.trust }

// TimeLeft returns the remaining seconds.
func (s *Session) TimeLeft() float64 { return s.timeLeft }

// Paused reports whether the in-game pause is on.
func (s *Session) Paused() bool { return s.clock.Paused() }

// SecondsLeft is the HUD countdown, rounded up.
func (s *Session) SecondsLeft() int { return int(math.Ceil(s.timeLeft)) }
