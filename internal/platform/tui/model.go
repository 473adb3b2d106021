package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/softskills-arcade/internal/core"
	"github.com/vovakirdan/softskills-arcade/internal/engine"
	"github.com/vovakirdan/softskills-arcade/internal/registry"
)

// DefaultHoldDuration is how long a movement key counts as held after a press.
const DefaultHoldDuration = 150 * time.Millisecond

// Options configures the game host.
type Options struct {
	Config       core.RuntimeConfig
	HoldDuration time.Duration
	Logger       *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      *KeyMapper
	input     *HeldInput
	feedback  *statusFeedback
	help      help.Model
	log       *log.Logger
	gameState core.GameState
	focused   bool
	quitting  bool
}

// NewModel creates a Bubble Tea model for game. Games that accept feedback
// get the host's sink.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Config
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	hold := opts.HoldDuration
	if hold <= 0 {
		hold = DefaultHoldDuration
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	fb := &statusFeedback{}
	if fa, ok := game.(engine.FeedbackAware); ok {
		fa.SetFeedback(engine.Multi{fb, engine.LogFeedback{Logger: logger}})
	}

	window := int(hold * time.Duration(cfg.TickRate) / time.Second)
	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		config:   cfg,
		keys:     NewKeyMapper(),
		input:    NewHeldInput(window),
		feedback: fb,
		help:     help.New(),
		log:      logger,
		focused:  true,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.log.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.FocusMsg:
		m.focused = true
		m.log.Debug("focus regained")
		return m, nil

	case tea.BlurMsg:
		m.focused = false
		m.input.Release()
		m.log.Debug("focus lost, pausing")
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.input.Press(action)
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame. Without focus the update is skipped
// but the cadence continues, so nothing is caught up on return.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.focused {
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.input.Frame())
	m.gameState = result.State
	m.input.Advance()
	m.feedback.tick()

	return m, tickCmd(m.config.TickRate)
}

// View renders the game, the status line and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	if !m.focused {
		m.screen.DrawPanel([]string{"Paused", "Window lost focus"}, core.ColorHUD)
	}
	if cue := m.feedback.cue(); cue != "" {
		m.screen.DrawTextColor(1, m.screen.Height()-1, cue, core.ColorMuted)
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys)
}

// State returns the last game state reported by Step.
func (m Model) State() core.GameState { return m.gameState }

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}
