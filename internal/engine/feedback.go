package engine

import (
	"github.com/charmbracelet/log"
)

// Sound is a fire-and-forget audio cue.
type Sound int

const (
	SoundHurt Sound = iota
	SoundCorrect
	SoundWrong
	SoundPickup
	SoundUnlock
	SoundWin
	SoundGameOver
)

var soundNames = map[Sound]string{
	SoundHurt:     "hurt",
	SoundCorrect:  "correct",
	SoundWrong:    "wrong",
	SoundPickup:   "pickup",
	SoundUnlock:   "unlock",
	SoundWin:      "win",
	SoundGameOver: "game_over",
}

func (s Sound) String() string {
	if n, ok := soundNames[s]; ok {
		return n
	}
	return "unknown"
}

// FeedbackSink receives notifications from game transitions. Calls must not
// block; the core never waits for a result.
type FeedbackSink interface {
	PlaySound(s Sound)
	ShowPopup(text string, frames int)
}

// FeedbackAware is implemented by games that emit feedback. Hosts inject their
// sink through it.
type FeedbackAware interface {
	SetFeedback(sink FeedbackSink)
}

// NopFeedback discards everything.
type NopFeedback struct{}

func (NopFeedback) PlaySound(Sound)       {}
func (NopFeedback) ShowPopup(string, int) {}

// LogFeedback writes feedback to a logger at debug level.
type LogFeedback struct {
	Logger *log.Logger
}

func (f LogFeedback) PlaySound(s Sound) {
	if f.Logger != nil {
		f.Logger.Debug("sound", "kind", s)
	}
}

func (f LogFeedback) ShowPopup(text string, frames int) {
	if f.Logger != nil {
		f.Logger.Debug("popup", "text", text, "frames", frames)
	}
}

// Popup is one recorded ShowPopup call.
type Popup struct {
	Text   string
	Frames int
}

// Recorder keeps every notification. Used by tests.
type Recorder struct {
	Sounds []Sound
	Popups []Popup
}

func (r *Recorder) PlaySound(s Sound) {
	r.Sounds = append(r.Sounds, s)
}

func (r *Recorder) ShowPopup(text string, frames int) {
	r.Popups = append(r.Popups, Popup{Text: text, Frames: frames})
}

// Count returns how many times s was played.
func (r *Recorder) Count(s Sound) int {
	n := 0
	for _, got := range r.Sounds {
		if got == s {
			n++
		}
	}
	return n
}

// Last returns the most recent sound.
func (r *Recorder) Last() (Sound, bool) {
	if len(r.Sounds) == 0 {
		return 0, false
	}
	return r.Sounds[len(r.Sounds)-1], true
}

// Multi fans notifications out to several sinks.
type Multi []FeedbackSink

func (m Multi) PlaySound(s Sound) {
	for _, sink := range m {
		sink.PlaySound(s)
	}
}

func (m Multi) ShowPopup(text string, frames int) {
	for _, sink := range m {
		sink.ShowPopup(text, frames)
	}
}
