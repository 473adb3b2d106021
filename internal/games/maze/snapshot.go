package maze

import (
	"github.com/vovakirdan/softskills-arcade/internal/core"
	"github.com/vovakirdan/softskills-arcade/internal/engine"
)

// Snapshot is the read-only view a renderer gets once per frame.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Paused     bool
	Level      int // 1-indexed for display
	LevelCount int
	Prompt     string
	Score      int
	Lives      int
	MaxLives   int

	Grid          *engine.Grid
	Player        core.Vec
	PlayerVisible bool // false on the dark half of the invincibility flash
	Invincible    bool
	Enemies       []core.Vec
	Frozen        bool
	FreezeLeft    float64 // remaining fraction of the freeze, 0 when thawed

	Answers []Answer
	Gems    []Item
	Key     Item
	Lock    Item
	HasKey  bool
	Popup   string
	Pending bool // a deferred advance or reset is armed
}

// Snapshot copies the session state for rendering and tests.
func (s *Session) Snapshot() Snapshot {
	enemies := make([]core.Vec, len(s.chasers))
	for i, c := range s.chasers {
		enemies[i] = c.Pos
	}
	_, pending := s.pending.Pending()

	return Snapshot{
		Tick:          s.clock.Frame(),
		Phase:         s.phase,
		Paused:        s.clock.Paused(),
		Level:         s.levelIndex + 1,
		LevelCount:    len(s.levels),
		Prompt:        s.prompt,
		Score:         s.score,
		Lives:         s.lives,
		MaxLives:      s.cfg.Gameplay.Lives,
		Grid:          s.levels[s.levelIndex].Grid,
		Player:        s.player.Pos,
		PlayerVisible: !s.invincible.Active() || (s.invincible.Elapsed()/10)%2 == 0,
		Invincible:    s.invincible.Active(),
		Enemies:       enemies,
		Frozen:        s.freeze.Active(),
		FreezeLeft:    s.freeze.Fraction(),
		Answers:       append([]Answer(nil), s.answers...),
		Gems:          append([]Item(nil), s.gems...),
		Key:           s.key,
		Lock:          s.lock,
		HasKey:        s.hasKey,
		Popup:         s.popupText,
		Pending:       pending,
	}
}
