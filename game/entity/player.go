package entity

import (
	"grid-snake/game/types"

	"github.com/gammazero/deque"
)

// InitialScore equals the length of the starting body.
const InitialScore = 3

// Player is the snake: a body ordered tail (front) to head (back).
type Player struct {
	body      deque.Deque[types.Point]
	direction types.Direction
	alive     bool
	score     uint32
	cause     types.CollisionType
}

// NewPlayer returns the starting snake at (1,1),(2,1),(3,1) heading right.
func NewPlayer() *Player {
	return NewPlayerAt([]types.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}}, types.Right)
}

// NewPlayerAt builds a live player from an explicit tail-to-head body.
// Score starts at InitialScore regardless of body length.
func NewPlayerAt(body []types.Point, dir types.Direction) *Player {
	p := &Player{
		direction: dir,
		alive:     true,
		score:     InitialScore,
	}
	for _, pt := range body {
		p.body.PushBack(pt)
	}
	return p
}

// Update advances the snake one cell. A reversal of the committed direction
// is ignored. Collisions are checked against the body before the tail moves,
// so stepping into the cell the tail is about to vacate is fatal.
func (p *Player) Update(food *Food, input types.Direction) {
	if !p.alive {
		return
	}
	if input != p.direction.Opposite() {
		p.direction = input
	}

	next := p.Head().Add(p.direction.Unit())

	switch {
	case !types.InBounds(next):
		p.die(types.WallCollision)
		return
	case p.Contains(next):
		p.die(types.SelfCollision)
		return
	}

	p.body.PushBack(next)

	if next == food.Location {
		p.score++
	} else {
		p.body.PopFront()
	}
}

func (p *Player) die(cause types.CollisionType) {
	p.alive = false
	p.cause = cause
}

// Contains reports whether pt is part of the body
func (p *Player) Contains(pt types.Point) bool {
	return p.body.Index(func(b types.Point) bool { return b == pt }) >= 0
}

func (p *Player) IsDead() bool {
	return !p.alive
}

func (p *Player) Head() types.Point {
	return p.body.Back()
}

func (p *Player) Len() int {
	return p.body.Len()
}

func (p *Player) Score() uint32 {
	return p.score
}

func (p *Player) Direction() types.Direction {
	return p.direction
}

// Cause is the collision that killed the player, NoCollision while alive.
func (p *Player) Cause() types.CollisionType {
	return p.cause
}

// Body returns a copy of the body, tail first.
func (p *Player) Body() []types.Point {
	out := make([]types.Point, p.body.Len())
	for i := range out {
		out[i] = p.body.At(i)
	}
	return out
}
