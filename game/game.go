package game

import (
	"grid-snake/game/entity"
	"grid-snake/game/manager"
	"grid-snake/game/types"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// GameState owns the player, the food and the running state. It is
// mutated only through HandleEvent and Update.
type GameState struct {
	UUID   string
	Player *entity.Player
	Food   *entity.Food

	states         *manager.StateManager
	inputDirection types.Direction
	rng            entity.Rand
	tick           uint64
	log            zerolog.Logger
}

// NewGameState creates the initial, paused game. rng is used for food
// placement.
func NewGameState(rng entity.Rand, log zerolog.Logger) *GameState {
	id := uuid.New().String()
	log = log.With().Str("session", id).Logger()
	return &GameState{
		UUID:           id,
		Player:         entity.NewPlayer(),
		Food:           entity.NewFood(),
		states:         manager.NewStateManager(log),
		inputDirection: types.Right,
		rng:            rng,
		log:            log,
	}
}

func (g *GameState) RunningState() types.RunningState {
	return g.states.State()
}

// InputDirection is the buffered direction the next tick will try to take.
func (g *GameState) InputDirection() types.Direction {
	return g.inputDirection
}

// Tick is the number of completed updates
func (g *GameState) Tick() uint64 {
	return g.tick
}

// HandleEvent applies one input event. Directions are only buffered while
// running so nothing can be queued during a pause.
func (g *GameState) HandleEvent(ev Event) {
	switch ev.Kind {
	case Quit:
		g.states.Quit()
	case TogglePause:
		g.states.Toggle()
	case Move:
		if g.states.Running() {
			g.inputDirection = ev.Dir
		}
	}
}

// Update advances the simulation one tick. It does nothing unless running.
func (g *GameState) Update() {
	if !g.states.Running() {
		return
	}
	score := g.Player.Score()

	g.Player.Update(g.Food, g.inputDirection)
	g.Food.Update(g.Player, g.rng)
	g.tick++

	if g.Player.Score() > score {
		g.log.Debug().
			Uint32("score", g.Player.Score()).
			Stringer("head", g.Player.Head()).
			Stringer("food", g.Food.Location).
			Msg("food eaten")
	}

	if g.Player.IsDead() {
		g.log.Info().
			Stringer("cause", g.Player.Cause()).
			Uint32("score", g.Player.Score()).
			Uint64("tick", g.tick).
			Msg("player died")
		g.states.Die()
	}
}

// Snapshot is a read-only copy of what frontends draw
type Snapshot struct {
	Body      []types.Point
	Food      types.Point
	State     types.RunningState
	Score     uint32
	Direction types.Direction
	Tick      uint64
	Dead      bool
	Cause     types.CollisionType
}

func (g *GameState) Snapshot() Snapshot {
	return Snapshot{
		Body:      g.Player.Body(),
		Food:      g.Food.Location,
		State:     g.states.State(),
		Score:     g.Player.Score(),
		Direction: g.Player.Direction(),
		Tick:      g.tick,
		Dead:      g.Player.IsDead(),
		Cause:     g.Player.Cause(),
	}
}

// Head returns the last body point, the zero Point for an empty body.
func (s Snapshot) Head() types.Point {
	if len(s.Body) == 0 {
		return types.Point{}
	}
	return s.Body[len(s.Body)-1]
}
