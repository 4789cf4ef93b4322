package entity

import (
	"reflect"
	"testing"

	"grid-snake/game/types"
)

func pts(xy ...int) []types.Point {
	out := make([]types.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, types.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer()
	if got, want := p.Body(), pts(1, 1, 2, 1, 3, 1); !reflect.DeepEqual(got, want) {
		t.Fatalf("body = %v, want %v", got, want)
	}
	if p.Direction() != types.Right {
		t.Fatalf("direction = %v, want right", p.Direction())
	}
	if p.IsDead() {
		t.Fatal("new player is dead")
	}
	if p.Score() != 3 {
		t.Fatalf("score = %d, want 3", p.Score())
	}
}

func TestUpdateMovesForward(t *testing.T) {
	p := NewPlayer()
	food := NewFood()

	p.Update(food, types.Right)

	if got, want := p.Body(), pts(2, 1, 3, 1, 4, 1); !reflect.DeepEqual(got, want) {
		t.Fatalf("body = %v, want %v", got, want)
	}
	if p.Score() != 3 {
		t.Fatalf("score = %d, want 3", p.Score())
	}
	if food.Location != (types.Point{X: 3, Y: 3}) {
		t.Fatalf("food moved to %v", food.Location)
	}
}

func TestUpdateEatsAndGrows(t *testing.T) {
	p := NewPlayer()
	food := &Food{Location: types.Point{X: 4, Y: 1}}

	p.Update(food, types.Right)

	if got, want := p.Body(), pts(1, 1, 2, 1, 3, 1, 4, 1); !reflect.DeepEqual(got, want) {
		t.Fatalf("body = %v, want %v", got, want)
	}
	if p.Score() != 4 {
		t.Fatalf("score = %d, want 4", p.Score())
	}
}

func TestReversalIsIgnored(t *testing.T) {
	p := NewPlayer()
	p.Update(NewFood(), types.Left)

	if p.Direction() != types.Right {
		t.Fatalf("direction = %v, want right", p.Direction())
	}
	if got := p.Head(); got != (types.Point{X: 4, Y: 1}) {
		t.Fatalf("head = %v, want (4,1)", got)
	}
	if p.IsDead() {
		t.Fatal("reversal attempt killed the player")
	}
}

func TestTurnIsCommitted(t *testing.T) {
	p := NewPlayer()
	p.Update(NewFood(), types.Down)

	if p.Direction() != types.Down {
		t.Fatalf("direction = %v, want down", p.Direction())
	}
	if got := p.Head(); got != (types.Point{X: 3, Y: 2}) {
		t.Fatalf("head = %v, want (3,2)", got)
	}
}

func TestWallDeathLeavesBodyUntouched(t *testing.T) {
	p := NewPlayerAt(pts(1, 1), types.Left)
	before := p.Body()

	p.Update(NewFood(), types.Left)

	if !p.IsDead() {
		t.Fatal("expected player to die at the wall")
	}
	if p.Cause() != types.WallCollision {
		t.Fatalf("cause = %v, want wall", p.Cause())
	}
	if got := p.Body(); !reflect.DeepEqual(got, before) {
		t.Fatalf("body = %v, want %v", got, before)
	}
}

func TestSelfCollisionDeath(t *testing.T) {
	p := NewPlayerAt(pts(2, 1, 2, 2, 1, 2, 1, 1), types.Up)

	p.Update(NewFood(), types.Right)

	if !p.IsDead() {
		t.Fatal("expected self collision")
	}
	if p.Cause() != types.SelfCollision {
		t.Fatalf("cause = %v, want self", p.Cause())
	}
	if p.Len() != 4 {
		t.Fatalf("len = %d, want 4", p.Len())
	}
}

func TestMovingIntoVacatingTailIsFatal(t *testing.T) {
	// 2x2 loop: the head's next cell is the current tail.
	p := NewPlayerAt(pts(2, 2, 3, 2, 3, 3, 2, 3), types.Left)

	p.Update(NewFood(), types.Up)

	if !p.IsDead() {
		t.Fatal("moving into the tail cell must be a collision")
	}
}

func TestDeadPlayerStaysDead(t *testing.T) {
	p := NewPlayerAt(pts(1, 1), types.Up)
	p.Update(NewFood(), types.Up)
	if !p.IsDead() {
		t.Fatal("expected death")
	}
	before := p.Body()

	p.Update(NewFood(), types.Right)

	if !p.IsDead() {
		t.Fatal("dead player came back to life")
	}
	if !reflect.DeepEqual(p.Body(), before) {
		t.Fatalf("dead player moved: %v", p.Body())
	}
}

func TestContains(t *testing.T) {
	p := NewPlayer()
	for x := 0; x < types.GridXSize; x++ {
		for y := 0; y < types.GridYSize; y++ {
			pt := types.Point{X: x, Y: y}
			want := y == 1 && x >= 1 && x <= 3
			if got := p.Contains(pt); got != want {
				t.Errorf("Contains(%v) = %v, want %v", pt, got, want)
			}
		}
	}
}

func TestLengthAndScoreGrowTogether(t *testing.T) {
	p := NewPlayer()
	food := &Food{Location: types.Point{X: 5, Y: 1}}
	moves := []types.Direction{types.Right, types.Right, types.Right, types.Down, types.Down, types.Left}

	for i, dir := range moves {
		lenBefore, scoreBefore := p.Len(), p.Score()
		eats := p.Head().Add(dirAfter(p.Direction(), dir).Unit()) == food.Location

		p.Update(food, dir)

		if p.IsDead() {
			t.Fatalf("move %d: unexpected death", i)
		}
		if eats {
			if p.Len() != lenBefore+1 || p.Score() != scoreBefore+1 {
				t.Fatalf("move %d: len %d->%d score %d->%d after eating", i, lenBefore, p.Len(), scoreBefore, p.Score())
			}
		} else if p.Len() != lenBefore || p.Score() != scoreBefore {
			t.Fatalf("move %d: len %d->%d score %d->%d without eating", i, lenBefore, p.Len(), scoreBefore, p.Score())
		}
	}
	if p.Score() != InitialScore+1 {
		t.Fatalf("score = %d, want %d", p.Score(), InitialScore+1)
	}
}

func dirAfter(current, input types.Direction) types.Direction {
	if input == current.Opposite() {
		return current
	}
	return input
}
