// Package maze implements the maze-chase quiz: walk the maze, pick the right
// answer to the prompt and stay away from the chasers.
package maze

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/softskills-arcade/internal/config"
	"github.com/vovakirdan/softskills-arcade/internal/core"
	"github.com/vovakirdan/softskills-arcade/internal/engine"
	"github.com/vovakirdan/softskills-arcade/internal/registry"
)

// Variant selects the level bank and rules.
type Variant string

const (
	VariantClassic Variant = "classic"
	VariantGems    Variant = "gems"
)

// Game adapts a Session to the registry.Game interface.
type Game struct {
	variant  Variant
	cfg      config.MazeConfig
	levels   []Level
	logger   *log.Logger
	feedback engine.FeedbackSink
	session  *Session
}

func init() {
	registry.Register("maze", "Soft Skills Maze", factory(VariantClassic))
	registry.Register("maze_gems", "Soft Skills Maze: Gems & Keys", factory(VariantGems))
}

func factory(variant Variant) registry.Factory {
	return func(opts registry.Options) (registry.Game, error) {
		g, err := New(variant, opts)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}

// New loads configuration and builds a game. The session starts on Reset.
func New(variant Variant, opts registry.Options) (*Game, error) {
	cfg, err := config.LoadMaze(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	preset, err := config.ParsePreset(opts.Difficulty)
	if err != nil {
		return nil, err
	}
	config.ApplyMazePreset(&cfg, preset)
	return NewWithConfig(variant, cfg, opts.Logger)
}

// NewWithConfig builds a game from an already loaded configuration.
func NewWithConfig(variant Variant, cfg config.MazeConfig, logger *log.Logger) (*Game, error) {
	bank := ClassicLevels
	if variant == VariantGems {
		bank = GemLevels
	}
	if len(cfg.Levels) > 0 {
		bank = cfg.Levels
	}
	levels, err := BuildLevels(bank)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		logger = logger.WithPrefix(string(variant))
	}
	return &Game{
		variant:  variant,
		cfg:      cfg,
		levels:   levels,
		logger:   logger,
		feedback: engine.NopFeedback{},
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.variant == VariantGems {
		return "maze_gems"
	}
	return "maze"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantGems {
		return "Soft Skills Maze: Gems & Keys"
	}
	return "Soft Skills Maze"
}

// SetFeedback routes sounds and popups to the host.
func (g *Game) SetFeedback(sink engine.FeedbackSink) {
	g.feedback = sink
	if g.session != nil {
		g.session.SetFeedback(sink)
	}
}

// Reset starts a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	g.session = NewSession(g.cfg, g.levels, cfg.TickRate, rng, g.feedback, g.logger)
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.session.Step(in)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	phase := g.session.Phase()
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: phase == PhaseGameOver || phase == PhaseComplete,
		Paused:   g.session.Paused(),
	}
}

// Session exposes the running session.
func (g *Game) Session() *Session { return g.session }
