// Package ai contains a tabular Q-learning agent that can steer the snake.
package ai

import (
	"fmt"
	"math"

	"grid-snake/game"
	"grid-snake/game/types"
)

// Actions in table order
var Actions = [4]types.Direction{types.Up, types.Down, types.Left, types.Right}

// Rand is the randomness used for exploration
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// State is what the agent sees of a snapshot
type State struct {
	FoodDir [2]int  // sign of food - head on each axis
	Dangers [4]bool // deadly next cell, indexed like Actions
}

// Observe derives the agent state from a snapshot.
func Observe(s game.Snapshot) State {
	head := s.Head()
	occupied := make(map[types.Point]bool, len(s.Body))
	for _, p := range s.Body {
		occupied[p] = true
	}

	var st State
	st.FoodDir = [2]int{sign(s.Food.X - head.X), sign(s.Food.Y - head.Y)}
	for i, dir := range Actions {
		next := head.Add(dir.Unit())
		st.Dangers[i] = !types.InBounds(next) || occupied[next]
	}
	return st
}

func (s State) key() string {
	return fmt.Sprintf("%d,%d|%t,%t,%t,%t", s.FoodDir[0], s.FoodDir[1],
		s.Dangers[0], s.Dangers[1], s.Dangers[2], s.Dangers[3])
}

type QTable map[string]map[types.Direction]float64

type QLearning struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64
	GamesPlayed  int

	rng Rand
}

func NewQLearning(rng Rand) *QLearning {
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.1,
		rng:          rng,
	}
}

// GetAction picks an action epsilon-greedily
func (q *QLearning) GetAction(state State) types.Direction {
	if q.rng.Float64() < q.Epsilon {
		return Actions[q.rng.Intn(len(Actions))]
	}
	return q.bestAction(state)
}

func (q *QLearning) values(state State) map[types.Direction]float64 {
	k := state.key()
	v, ok := q.QTable[k]
	if !ok {
		v = make(map[types.Direction]float64, len(Actions))
		for _, a := range Actions {
			v[a] = 0
		}
		q.QTable[k] = v
	}
	return v
}

// bestAction breaks ties by Actions order so choices are reproducible.
func (q *QLearning) bestAction(state State) types.Direction {
	vals := q.values(state)
	best := Actions[0]
	bestValue := math.Inf(-1)
	for _, a := range Actions {
		if vals[a] > bestValue {
			bestValue = vals[a]
			best = a
		}
	}
	return best
}

// Update applies the Q-learning rule for one transition. Terminal
// transitions have no future value.
func (q *QLearning) Update(state State, action types.Direction, reward float64, next State, terminal bool) {
	future := 0.0
	if !terminal {
		future = math.Inf(-1)
		for _, v := range q.values(next) {
			future = math.Max(future, v)
		}
	}

	vals := q.values(state)
	current := vals[action]
	vals[action] = current + q.LearningRate*(reward+q.Discount*future-current)
	q.TotalReward += reward
}

// Reward scores the move from prev to next.
func Reward(prev, next game.Snapshot) float64 {
	switch {
	case next.Dead:
		return -1.0
	case next.Score > prev.Score:
		return 1.0
	}

	before := manhattan(prev.Head(), prev.Food)
	after := manhattan(next.Head(), next.Food)
	switch {
	case after < before:
		return 0.5
	case after > before:
		return -0.3
	}
	return 0
}

func manhattan(a, b types.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}
