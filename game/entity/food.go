package entity

import "grid-snake/game/types"

// Rand is the randomness food placement draws from. *rand.Rand from
// golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Food is the single item the player can eat
type Food struct {
	Location types.Point
}

func NewFood() *Food {
	return &Food{Location: types.Point{X: 3, Y: 3}}
}

// Update moves the food while it sits on the player, drawing uniformly from
// the playable area until a free cell turns up. There is no attempt cap: a
// completely filled grid would never return.
func (f *Food) Update(player *Player, rng Rand) {
	for player.Contains(f.Location) {
		f.Location = types.Point{
			X: 1 + rng.Intn(types.GridXSize-1),
			Y: 1 + rng.Intn(types.GridYSize-1),
		}
	}
}
