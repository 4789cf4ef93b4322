package ai

import (
	"grid-snake/game"
	"grid-snake/game/types"

	"github.com/rs/zerolog"
)

// Autopilot wraps a frontend and adds one Move event per simulation tick,
// chosen by a QLearning agent that learns from every transition it sees.
// Events from the wrapped frontend still pass through.
type Autopilot struct {
	game.Frontend
	Agent     *QLearning
	AutoStart bool

	pending   []game.Event
	started   bool
	hasLast   bool
	last      game.Snapshot
	lastState State
	lastMove  types.Direction
	log       zerolog.Logger
}

func NewAutopilot(fe game.Frontend, rng Rand, log zerolog.Logger) *Autopilot {
	return &Autopilot{
		Frontend: fe,
		Agent:    NewQLearning(rng),
		log:      log,
	}
}

func (a *Autopilot) PollEvents() []game.Event {
	events := a.Frontend.PollEvents()
	events = append(events, a.pending...)
	a.pending = nil
	return events
}

func (a *Autopilot) Draw(s game.Snapshot) error {
	a.observe(s)
	return a.Frontend.Draw(s)
}

func (a *Autopilot) observe(s game.Snapshot) {
	if a.AutoStart && !a.started && s.State == types.Paused && s.Tick == 0 {
		a.pending = append(a.pending, game.Event{Kind: game.TogglePause})
		a.started = true
	}
	if s.State != types.Running && !s.Dead {
		return
	}
	if a.hasLast && s.Tick == a.last.Tick {
		return
	}

	state := Observe(s)
	if a.hasLast {
		a.Agent.Update(a.lastState, a.lastMove, Reward(a.last, s), state, s.Dead)
	}
	if s.Dead {
		a.Agent.GamesPlayed++
		a.hasLast = false
		a.log.Info().
			Uint32("score", s.Score).
			Int("states", len(a.Agent.QTable)).
			Float64("total_reward", a.Agent.TotalReward).
			Msg("autopilot game over")
		return
	}

	move := a.Agent.GetAction(state)
	a.pending = append(a.pending, game.MoveEvent(move))
	a.last = s
	a.lastState = state
	a.lastMove = move
	a.hasLast = true
}
