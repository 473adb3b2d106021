// Package office implements the office side-scroller: walk through three
// rooms against the clock and earn trust by answering coworkers well.
package office

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/softskills-arcade/internal/config"
	"github.com/vovakirdan/softskills-arcade/internal/core"
	"github.com/vovakirdan/softskills-arcade/internal/engine"
	"github.com/vovakirdan/softskills-arcade/internal/registry"
)

const (
	gameID    = "office"
	gameTitle = "Office Hero: The Soft Skills Sprint"
)

// Game adapts a Session to registry.Game.
type Game struct {
	cfg      config.OfficeConfig
	logger   *log.Logger
	feedback engine.FeedbackSink
	session  *Session
}

func init() {
	registry.Register(gameID, gameTitle, func(opts registry.Options) (registry.Game, error) {
		g, err := New(opts)
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}

// New loads configuration and applies the difficulty preset.
func New(opts registry.Options) (*Game, error) {
	cfg, err := config.LoadOffice(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	preset, err := config.ParsePreset(opts.Difficulty)
	if err != nil {
		return nil, err
	}
	config.ApplyOfficePreset(&cfg, preset)
	return NewWithConfig(cfg, opts.Logger), nil
}

// NewWithConfig builds a game from an already loaded configuration.
func NewWithConfig(cfg config.OfficeConfig, logger *log.Logger) *Game {
	if logger != nil {
		logger = logger.WithPrefix(gameID)
	}
	return &Game{cfg: cfg, logger: logger, feedback: engine.NopFeedback{}}
}

func (g *Game) ID() string    { return gameID }
func (g *Game) Title() string { return gameTitle }

// SetFeedback routes sounds and popups to the host.
func (g *Game) SetFeedback(sink engine.FeedbackSink) {
	g.feedback = sink
	if g.session != nil {
		g.session.SetFeedback(sink)
	}
}

// Reset starts a fresh run on the intro screen. The world layout is static,
// so a parse failure here is a programming error.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	s, err := NewSession(g.cfg, cfg.TickRate, g.feedback, g.logger)
	if err != nil {
		panic(err)
	}
	g.session = s
}

// Step advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.session.Step(in)
	return core.StepResult{State: g.State()}
}

// State reports trust as the score.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Trust(),
		GameOver: g.session.Phase() == PhaseComplete,
		Paused:   g.session.Paused(),
	}
}

// Session exposes the running session.
func (g *Game) Session() *Session { return g.session }
