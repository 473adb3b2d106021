package office

import (
	"github.com/vovakirdan/softskills-arcade/internal/core"
	"github.com/vovakirdan/softskills-arcade/internal/engine"
)

// Dialogue is the open conversation, if any.
type Dialogue struct {
	NPC      string
	Title    string
	Question string
	Options  []string
	Cursor   int
}

// Snapshot is what the renderer sees each frame.
type Snapshot struct {
	Tick     uint64
	Phase    Phase
	Paused   bool
	TimeLeft float64
	Seconds  int
	Trust    int
	NPCCount int

	World     *engine.Grid
	Player    core.Vec
	Facing    float64
	Moving    bool
	WalkFrame int
	Room      int
	NPCs      []NPC

	Dialogue *Dialogue
	Result   string
	Popup    string
}

// Snapshot copies the session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      s.clock.Frame(),
		Phase:     s.phase,
		Paused:    s.clock.Paused(),
		TimeLeft:  s.timeLeft,
		Seconds:   s.SecondsLeft(),
		Trust:     s.trust,
		NPCCount:  len(s.npcs),
		World:     s.world,
		Player:    s.player.Pos,
		Facing:    s.facing,
		Moving:    s.moving,
		WalkFrame: s.walkFrame,
		Room:      RoomOf(s.player.Pos.X),
		NPCs:      append([]NPC(nil), s.npcs...),
		Result:    s.result,
		Popup:     s.popupText,
	}
	if s.phase == PhaseDialogue && s.talking >= 0 {
		sc := s.npcs[s.talking].Scenario
		d := &Dialogue{
			NPC:      s.npcs[s.talking].Name,
			Title:    sc.Title,
			Question: sc.Question,
			Cursor:   s.cursor,
		}
		for _, o := range sc.Options {
			d.Options = append(d.Options, o.Text)
		}
		snap.Dialogue = d
	}
	return snap
}
