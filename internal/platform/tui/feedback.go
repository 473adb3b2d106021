package tui

import (
	"github.com/vovakirdan/softskills-arcade/internal/engine"
)

// soundCueFrames is how long a sound cue stays in the status line.
const soundCueFrames = 45

// statusFeedback is the host's FeedbackSink. Sounds become short status-line
// cues; popups are drawn by the games themselves.
type statusFeedback struct {
	sound     engine.Sound
	soundLeft int
}

func (f *statusFeedback) PlaySound(s engine.Sound) {
	f.sound = s
	f.soundLeft = soundCueFrames
}

func (f *statusFeedback) ShowPopup(string, int) {}

// tick ages the current cue by one frame.
func (f *statusFeedback) tick() {
	if f.soundLeft > 0 {
		f.soundLeft--
	}
}

// cue returns the status-line text for the current sound, if any.
func (f *statusFeedback) cue() string {
	if f.soundLeft == 0 {
		return ""
	}
	return "♪ " + f.sound.String()
}
