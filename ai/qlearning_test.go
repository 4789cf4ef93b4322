package ai

import (
	"math"
	"testing"

	"grid-snake/game"
	"grid-snake/game/types"

	"golang.org/x/exp/rand"
)

// fixedRand never explores
type fixedRand struct{}

func (fixedRand) Float64() float64 { return 1 }
func (fixedRand) Intn(int) int     { return 0 }

func TestObserve(t *testing.T) {
	s := game.Snapshot{
		Body: []types.Point{{X: 1, Y: 2}, {X: 1, Y: 1}, {X: 2, Y: 1}},
		Food: types.Point{X: 2, Y: 5},
	}

	st := Observe(s)

	if st.FoodDir != [2]int{0, 1} {
		t.Fatalf("food dir = %v, want [0 1]", st.FoodDir)
	}
	// Up is the wall, Left is the body, Down and Right are free.
	want := [4]bool{true, false, true, false}
	if st.Dangers != want {
		t.Fatalf("dangers = %v, want %v", st.Dangers, want)
	}
}

func TestReward(t *testing.T) {
	prev := game.Snapshot{Body: []types.Point{{X: 5, Y: 5}}, Food: types.Point{X: 10, Y: 5}, Score: 3}
	tests := []struct {
		name string
		next game.Snapshot
		want float64
	}{
		{"death", game.Snapshot{Body: prev.Body, Food: prev.Food, Dead: true}, -1},
		{"food", game.Snapshot{Body: []types.Point{{X: 6, Y: 5}}, Food: types.Point{X: 1, Y: 1}, Score: 4}, 1},
		{"closer", game.Snapshot{Body: []types.Point{{X: 6, Y: 5}}, Food: prev.Food, Score: 3}, 0.5},
		{"farther", game.Snapshot{Body: []types.Point{{X: 4, Y: 5}}, Food: prev.Food, Score: 3}, -0.3},
	}
	for _, tt := range tests {
		if got := Reward(prev, tt.next); got != tt.want {
			t.Errorf("%s: reward = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestUpdateMovesValueTowardReward(t *testing.T) {
	q := NewQLearning(fixedRand{})
	s := State{FoodDir: [2]int{1, 0}}

	q.Update(s, types.Right, 1, s, true)

	got := q.QTable[s.key()][types.Right]
	if math.Abs(got-0.1) > 1e-9 {
		t.Fatalf("Q = %v, want 0.1", got)
	}
	if q.GetAction(s) != types.Right {
		t.Fatalf("best action = %v, want right", q.GetAction(s))
	}
}

func TestGetActionExplores(t *testing.T) {
	q := NewQLearning(rand.New(rand.NewSource(5)))
	q.Epsilon = 1
	seen := map[types.Direction]bool{}
	for i := 0; i < 200; i++ {
		seen[q.GetAction(State{})] = true
	}
	if len(seen) != len(Actions) {
		t.Fatalf("explored %d actions, want %d", len(seen), len(Actions))
	}
}
