package timer

import (
	"fmt"
	"io"
)

// TonePlayer plays a short audio cue on timer completion.
type TonePlayer interface {
	PlayTone(frequencyHz, durationMs int)
}

// BellPlayer rings the terminal bell. The frequency and duration are accepted
// for interface compatibility; a terminal bell has neither.
type BellPlayer struct {
	out io.Writer
}

// NewBellPlayer creates a TonePlayer writing the bell character to out.
func NewBellPlayer(out io.Writer) *BellPlayer {
	return &BellPlayer{out: out}
}

// PlayTone rings the bell.
func (b *BellPlayer) PlayTone(frequencyHz, durationMs int) {
	fmt.Fprint(b.out, "\a")
}

// SilentPlayer discards the cue, used when the timer sound is disabled.
type SilentPlayer struct{}

// PlayTone does nothing.
func (SilentPlayer) PlayTone(frequencyHz, durationMs int) {}
