package maze

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/softskills-arcade/internal/config"
	"github.com/vovakirdan/softskills-arcade/internal/core"
	"github.com/vovakirdan/softskills-arcade/internal/engine"
)

// Phase is the progression state of a session.
type Phase string

const (
	PhasePlaying         Phase = "playing"
	PhaseLevelTransition Phase = "level_transition"
	PhaseGameOver        Phase = "game_over"
	PhaseComplete        Phase = "complete"
)

// transition is a deferred progression step run by the scheduler.
type transition int

const (
	transitionAdvance transition = iota + 1
	transitionReset
)

func (t transition) String() string {
	switch t {
	case transitionAdvance:
		return "advance"
	case transitionReset:
		return "reset"
	default:
		return "none"
	}
}

// Answer is a collectible answer in the running level.
type Answer struct {
	Text      string
	Pos       core.Vec
	Correct   bool
	Collected bool
}

// Item is a gem, key or lock in the running level.
type Item struct {
	Pos       core.Vec
	Visible   bool
	Collected bool
}

// Session owns all mutable state of one maze run. Nothing here is global, so
// several sessions can run side by side.
type Session struct {
	id         string
	cfg        config.MazeConfig
	levels     []Level
	difficulty *config.DifficultyManager
	pursuit    *engine.Pursuit
	prox       engine.Proximity
	clock      *engine.FrameClock
	feedback   engine.FeedbackSink
	log        *log.Logger

	phase      Phase
	levelIndex int
	score      int
	lives      int
	prompt     string

	mover   engine.Mover
	player  engine.Entity
	chasers []engine.Chaser
	answers []Answer
	gems    []Item
	key     Item
	lock    Item
	hasKey  bool

	invincible engine.Countdown
	freeze     engine.Countdown
	popup      engine.Countdown
	popupText  string
	pending    engine.Scheduler[transition]
}

// NewSession creates a session at level 0 running at tickRate frames per
// second (60 if <= 0). rng drives chase timing; sink and logger may be nil.
func NewSession(cfg config.MazeConfig, levels []Level, tickRate int, rng *rand.Rand, sink engine.FeedbackSink, logger *log.Logger) *Session {
	if len(levels) == 0 {
		panic("maze: session needs at least one level")
	}
	if sink == nil {
		sink = engine.NopFeedback{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	id := uuid.NewString()
	s := &Session{
		id:         id,
		cfg:        cfg,
		levels:     levels,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		pursuit:    engine.NewPursuit(cfg.Enemies.RedirectMin, cfg.Enemies.RedirectMax, rng),
		prox:       engine.Proximity{TileSize: cfg.Proximity.TileSize},
		clock:      engine.NewFrameClock(tickRate),
		feedback:   sink,
		log:        logger.With("session", id[:8]),
	}
	s.Reset()
	return s
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

// Reset performs the full reset: score 0, lives at max, level 0.
func (s *Session) Reset() {
	s.pending.Cancel()
	s.invincible.Stop()
	s.popup.Stop()
	s.popupText = ""
	s.clock.Reset()
	s.score = 0
	s.lives = s.cfg.Gameplay.Lives
	s.levelIndex = 0
	s.loadLevel(0)
	s.phase = PhasePlaying
	s.log.Info("session reset", "lives", s.lives)
}

// loadLevel installs level i. Asking for a level outside the bank is a
// programming error: valid transitions never produce one.
func (s *Session) loadLevel(i int) {
	if i < 0 || i >= len(s.levels) {
		panic(fmt.Sprintf("maze: level index %d out of range [0, %d)", i, len(s.levels)))
	}
	lvl := s.levels[i]
	s.levelIndex = i
	s.prompt = lvl.Prompt
	s.mover = engine.NewMover(lvl.Grid)
	s.player = engine.Entity{Pos: lvl.Start, Speed: s.cfg.Player.Speed, Radius: s.cfg.Player.Radius}

	speed := s.difficulty.Speed(s.cfg.Enemies.Speed, i, s.score)
	s.chasers = s.chasers[:0]
	for _, p := range lvl.Enemies {
		s.chasers = append(s.chasers, engine.NewChaser(p, speed, s.cfg.Enemies.Radius))
	}

	s.answers = make([]Answer, len(lvl.Answers))
	for j, a := range lvl.Answers {
		s.answers[j] = Answer{Text: a.Text, Pos: a.Pos, Correct: a.Correct}
	}
	s.gems = make([]Item, len(lvl.Gems))
	for j, g := range lvl.Gems {
		s.gems[j] = Item{Pos: g, Visible: true}
	}
	s.key, s.lock = Item{}, Item{}
	if lvl.Gated() {
		s.key.Pos, s.lock.Pos = *lvl.Key, *lvl.Lock
	}
	s.hasKey = false
	s.freeze.Stop()

	s.log.Debug("level loaded", "level", i+1, "enemy_speed", speed)
}

// Step runs one frame.
func (s *Session) Step(in engine.InputSource) {
	if in.Has(core.ActionPause) {
		s.clock.Toggle()
	}
	if !s.clock.Tick() {
		return
	}

	if in.Has(core.ActionRestart) && (s.phase == PhaseGameOver || s.phase == PhaseComplete) {
		s.Reset()
		return
	}

	if kind, ok := s.pending.Tick(); ok {
		s.apply(kind)
	}

	if s.phase == PhasePlaying {
		s.update(in)
	}

	if s.popup.Tick() {
		s.popupText = ""
	}
}

func (s *Session) update(in engine.InputSource) {
	s.freeze.Tick()

	dx, dy := engine.Axis(in)
	s.player.Pos = s.mover.TryMove(s.player, dx, dy).Pos

	// Frozen enemies hold position: no decision and no motion.
	if !s.freeze.Active() {
		for i := range s.chasers {
			s.pursuit.Update(&s.chasers[i], s.player.Pos, s.mover)
		}
	}

	// The whole contact check is skipped while invincible, for exactly
	// InvincibleTicks frames after the hit.
	if s.invincible.Active() {
		s.invincible.Tick()
	} else {
		s.checkEnemies()
	}

	for _, check := range []func(){s.checkAnswers, s.checkGems, s.checkKey, s.checkLock} {
		if s.phase != PhasePlaying {
			return
		}
		check()
	}
}

func (s *Session) checkEnemies() {
	for _, c := range s.chasers {
		if !s.prox.Within(s.player.Pos, c.Pos, s.cfg.Proximity.Enemy) {
			continue
		}
		s.loseLife()
		s.feedback.PlaySound(engine.SoundHurt)
		s.log.Debug("enemy contact", "lives", s.lives)
		if s.lives == 0 {
			s.gameOver()
			return
		}
		s.invincible.Start(s.cfg.Gameplay.InvincibleTicks)
		return
	}
}

func (s *Session) checkAnswers() {
	for i := range s.answers {
		a := &s.answers[i]
		if a.Collected || !s.prox.Within(s.player.Pos, a.Pos, s.cfg.Proximity.Answer) {
			continue
		}
		a.Collected = true

		if a.Correct {
			s.score += s.cfg.Gameplay.CorrectPoints
			s.feedback.PlaySound(engine.SoundCorrect)
			s.log.Info("correct answer", "level", s.levelIndex+1, "answer", a.Text, "score", s.score)
			if s.levels[s.levelIndex].Gated() {
				s.key.Visible, s.lock.Visible = true, true
				s.showPopup(fmt.Sprintf("Correct! +%d  Find the key!", s.cfg.Gameplay.CorrectPoints))
				continue
			}
			s.showPopup(fmt.Sprintf("Correct! +%d", s.cfg.Gameplay.CorrectPoints))
			s.beginAdvance()
			return
		}

		s.score -= s.cfg.Gameplay.WrongPenalty
		s.loseLife()
		s.feedback.PlaySound(engine.SoundWrong)
		s.showPopup(fmt.Sprintf("Wrong! -%d", s.cfg.Gameplay.WrongPenalty))
		s.log.Info("wrong answer", "level", s.levelIndex+1, "answer", a.Text, "lives", s.lives)
		if s.lives == 0 {
			s.gameOver()
			return
		}
	}
}

func (s *Session) checkGems() {
	for i := range s.gems {
		g := &s.gems[i]
		if g.Collected || !s.prox.Within(s.player.Pos, g.Pos, s.cfg.Proximity.Gem) {
			continue
		}
		g.Collected = true
		g.Visible = false
		s.score += s.cfg.Gameplay.GemPoints
		s.freeze.Start(s.cfg.Gameplay.FreezeTicks)
		s.feedback.PlaySound(engine.SoundPickup)
		s.showPopup(fmt.Sprintf("+%d  Enemies frozen!", s.cfg.Gameplay.GemPoints))
	}
}

func (s *Session) checkKey() {
	if !s.key.Visible || s.key.Collected || !s.prox.Within(s.player.Pos, s.key.Pos, s.cfg.Proximity.Key) {
		return
	}
	s.key.Collected = true
	s.key.Visible = false
	s.hasKey = true
	s.feedback.PlaySound(engine.SoundPickup)
	s.showPopup("Got the key! Find the lock.")
}

func (s *Session) checkLock() {
	if !s.lock.Visible || !s.hasKey || !s.prox.Within(s.player.Pos, s.lock.Pos, s.cfg.Proximity.Lock) {
		return
	}
	s.lock.Collected = true
	s.hasKey = false
	s.feedback.PlaySound(engine.SoundUnlock)
	s.showPopup("Unlocked!")
	s.beginAdvance()
}

func (s *Session) loseLife() {
	if s.lives > 0 {
		s.lives--
	}
}

func (s *Session) beginAdvance() {
	s.phase = PhaseLevelTransition
	s.schedule(transitionAdvance, s.clock.FramesFor(s.cfg.Gameplay.AdvanceDelayMS))
}

func (s *Session) gameOver() {
	s.phase = PhaseGameOver
	s.feedback.PlaySound(engine.SoundGameOver)
	s.showPopup(fmt.Sprintf("Game Over! Final Score: %d", s.score))
	s.log.Info("game over", "level", s.levelIndex+1, "score", s.score)
	s.schedule(transitionReset, s.clock.FramesFor(s.cfg.Gameplay.GameOverMS))
}

func (s *Session) schedule(kind transition, delay int) {
	if !s.pending.Schedule(kind, delay) {
		pending, _ := s.pending.Pending()
		s.log.Warn("transition refused", "kind", kind, "pending", pending)
	}
}

func (s *Session) apply(kind transition) {
	switch kind {
	case transitionAdvance:
		s.advance()
	case transitionReset:
		s.Reset()
	}
}

// advance moves to the next level, or to Complete past the last one.
func (s *Session) advance() {
	next := s.levelIndex + 1
	if next >= len(s.levels) {
		s.phase = PhaseComplete
		s.prompt = CompletePrompt
		s.feedback.PlaySound(engine.SoundWin)
		s.showPopup(fmt.Sprintf("Congratulations! Final Score: %d", s.score))
		s.log.Info("all levels complete", "score", s.score)
		return
	}
	s.loadLevel(next)
	s.phase = PhasePlaying
	s.showPopup(fmt.Sprintf("Advancing to Level %d", next+1))
	s.log.Info("level advanced", "level", next+1, "score", s.score)
}

func (s *Session) showPopup(text string) {
	s.popupText = text
	s.popup.Start(s.cfg.Gameplay.PopupTicks)
	s.feedback.ShowPopup(text, s.cfg.Gameplay.PopupTicks)
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// LevelIndex returns the zero-based current level.
func (s *Session) LevelIndex() int { return s.levelIndex }

// Paused reports whether the in-game pause is on.
func (s *Session) Paused() bool { return s.clock.Paused() }
