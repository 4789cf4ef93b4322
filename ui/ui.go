// Package ui holds what the window and terminal frontends share: the
// pause overlay and the letter key bindings.
package ui

import (
	"strings"
	"unicode"

	"grid-snake/game"
	"grid-snake/game/types"
)

// CellSize is the pixel edge of one grid cell in the window frontend.
const CellSize = 20

// ScreenWidth and ScreenHeight fit the whole grid at CellSize.
const (
	ScreenWidth  = types.GridXSize * CellSize
	ScreenHeight = types.GridYSize * CellSize
)

const pauseText = `
#### #### #  #  ### #####
#  # #  # #  # #    #
#### #### #  #  ##  ###
#    #  # #  #    # #
#    #  # #### ###  #####`

// PauseOrigin is where the overlay's top-left cell is drawn.
var PauseOrigin = types.Point{X: 6, Y: 10}

// PauseGlyph returns the cells of the PAUSE banner offset by start.
func PauseGlyph(start types.Point) []types.Point {
	var out []types.Point
	lines := strings.Split(strings.TrimPrefix(pauseText, "\n"), "\n")
	for row, line := range lines {
		for col, ch := range line {
			if ch == '#' {
				out = append(out, types.Point{X: start.X + col, Y: start.Y + row})
			}
		}
	}
	return out
}

// RuneEvent maps the letter bindings (WASD, P) shared by every frontend.
func RuneEvent(r rune) (game.Event, bool) {
	switch unicode.ToLower(r) {
	case 'w':
		return game.MoveEvent(types.Up), true
	case 's':
		return game.MoveEvent(types.Down), true
	case 'a':
		return game.MoveEvent(types.Left), true
	case 'd':
		return game.MoveEvent(types.Right), true
	case 'p':
		return game.Event{Kind: game.TogglePause}, true
	}
	return game.Event{}, false
}
