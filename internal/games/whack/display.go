package whack

import (
	"time"

	"github.com/vovakirdan/tui-whack/internal/audio"
	"github.com/vovakirdan/tui-whack/internal/board"
	"github.com/vovakirdan/tui-whack/internal/engine"
)

const toastLifetime = 3 * time.Second

type toast struct {
	text  string
	until time.Time
}

// display is the engine's Presentation for one round. It keeps what the
// renderer needs and forwards cues to the sound player.
type display struct {
	cells     []board.Cell
	score     int
	countdown int
	over      bool
	final     int
	high      int
	toasts    []toast

	player audio.Player
	clock  func() time.Time
}

var _ engine.Presentation = (*display)(nil)

func newDisplay(n int, player audio.Player, clock func() time.Time) *display {
	d := &display{
		cells:  make([]board.Cell, n),
		player: player,
		clock:  clock,
	}
	for i := range d.cells {
		d.cells[i].ID = i
	}
	return d
}

func (d *display) RenderCell(c board.Cell) {
	if c.ID >= 0 && c.ID < len(d.cells) {
		d.cells[c.ID] = c
	}
}

func (d *display) UpdateScore(score int) { d.score = score }

func (d *display) UpdateTimer(countdown int) { d.countdown = countdown }

func (d *display) ShowGameOver(score, highScore int) {
	d.over = true
	d.final = score
	d.high = highScore
}

func (d *display) PlayCue(c engine.Cue) { d.player.Play(c) }

func (d *display) AnnounceAchievement(a engine.Achievement) {
	d.toasts = append(d.toasts, toast{
		text:  "Achievement unlocked: " + string(a),
		until: d.clock().Add(toastLifetime),
	})
}

// activeToasts drops expired announcements and returns the rest.
func (d *display) activeToasts() []toast {
	now := d.clock()
	kept := d.toasts[:0]
	for _, t := range d.toasts {
		if now.Before(t.until) {
			kept = append(kept, t)
		}
	}
	d.toasts = kept
	return kept
}
