package types

import "fmt"

// Grid dimensions. The outermost ring (row 0 and column 0 included) is wall,
// so the playable area is 1..GridXSize-1 by 1..GridYSize-1.
const (
	GridXSize = 40
	GridYSize = 30
)

// Point is a grid cell coordinate
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// InBounds reports whether p lies strictly inside the grid walls.
func InBounds(p Point) bool {
	return 0 < p.X && p.X < GridXSize && 0 < p.Y && p.Y < GridYSize
}

// Direction is a cardinal heading
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Unit converts a Direction into its one-cell displacement vector
func (d Direction) Unit() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1} // screen Y grows downward
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// RunningState is the coarse lifecycle of a game
type RunningState int

const (
	Paused RunningState = iota
	Running
	Exit
)

func (s RunningState) String() string {
	switch s {
	case Paused:
		return "paused"
	case Running:
		return "running"
	case Exit:
		return "exit"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}
