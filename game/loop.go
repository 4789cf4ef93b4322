package game

import (
	"context"
	"fmt"
	"time"

	"grid-snake/game/types"

	"github.com/rs/zerolog"
)

const (
	DefaultFrameInterval = time.Second / 30
	DefaultTickInterval  = time.Second / 10
)

// Frontend is the host surface: an input source plus a drawing target.
type Frontend interface {
	// PollEvents returns every event that arrived since the last call
	// without blocking.
	PollEvents() []Event
	Draw(Snapshot) error
}

// Listener is told about simulation outcomes after each tick
type Listener interface {
	FoodEaten(Snapshot)
	PlayerDied(Snapshot)
}

// Loop drives a GameState on a single goroutine: drain input, tick at most
// once per TickInterval, draw, sleep one FrameInterval.
type Loop struct {
	State         *GameState
	Frontend      Frontend
	FrameInterval time.Duration
	TickInterval  time.Duration
	Listeners     []Listener
	Log           zerolog.Logger

	Now   func() time.Time
	Sleep func(time.Duration)
}

func NewLoop(state *GameState, frontend Frontend, log zerolog.Logger) *Loop {
	return &Loop{
		State:         state,
		Frontend:      frontend,
		FrameInterval: DefaultFrameInterval,
		TickInterval:  DefaultTickInterval,
		Log:           log,
		Now:           time.Now,
		Sleep:         time.Sleep,
	}
}

// Run blocks until the game reaches Exit and returns the final score.
// Cancelling ctx is treated as a quit request at the top of the next frame.
func (l *Loop) Run(ctx context.Context) (uint32, error) {
	lastTick := l.Now()

	l.Log.Info().
		Dur("frame_interval", l.FrameInterval).
		Dur("tick_interval", l.TickInterval).
		Msg("loop started")

	for {
		if ctx.Err() != nil {
			l.State.HandleEvent(Event{Kind: Quit})
		}
		for _, ev := range l.Frontend.PollEvents() {
			l.State.HandleEvent(ev)
		}

		switch l.State.RunningState() {
		case types.Exit:
			score := l.State.Player.Score()
			l.Log.Info().
				Uint32("score", score).
				Uint64("ticks", l.State.Tick()).
				Bool("dead", l.State.Player.IsDead()).
				Msg("loop finished")
			return score, nil
		case types.Running:
			now := l.Now()
			if now.Sub(lastTick) > l.TickInterval {
				l.tick()
				lastTick = now
			}
		}

		if err := l.Frontend.Draw(l.State.Snapshot()); err != nil {
			return l.State.Player.Score(), fmt.Errorf("draw frame: %w", err)
		}
		l.Sleep(l.FrameInterval)
	}
}

func (l *Loop) tick() {
	score := l.State.Player.Score()
	l.State.Update()

	if len(l.Listeners) == 0 {
		return
	}
	snap := l.State.Snapshot()
	for _, ls := range l.Listeners {
		if snap.Score > score {
			ls.FoodEaten(snap)
		}
		if snap.Dead {
			ls.PlayerDied(snap)
		}
	}
}
