// Package window draws the game in a raylib window and reads its keyboard.
package window

import (
	"errors"

	"grid-snake/game"
	"grid-snake/game/types"
	"grid-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

type Window struct {
	pause []types.Point
	log   zerolog.Logger
}

// Open creates the 800x600 window. It must be called from the main
// goroutine and closed with Close.
func Open(title string, log zerolog.Logger) (*Window, error) {
	rl.InitWindow(ui.ScreenWidth, ui.ScreenHeight, title)
	if !rl.IsWindowReady() {
		return nil, errors.New("raylib window could not be created")
	}
	// Escape is handled as a regular key so it goes through the event path.
	rl.SetExitKey(rl.KeyNull)

	log.Debug().Int("width", ui.ScreenWidth).Int("height", ui.ScreenHeight).Msg("window opened")
	return &Window{
		pause: ui.PauseGlyph(ui.PauseOrigin),
		log:   log,
	}, nil
}

func (w *Window) PollEvents() []game.Event {
	var events []game.Event
	if rl.WindowShouldClose() {
		events = append(events, game.Event{Kind: game.Quit})
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if ev, ok := keyEvent(key); ok {
			events = append(events, ev)
		}
	}
	return events
}

func keyEvent(key int32) (game.Event, bool) {
	switch key {
	case rl.KeyUp:
		return game.MoveEvent(types.Up), true
	case rl.KeyDown:
		return game.MoveEvent(types.Down), true
	case rl.KeyLeft:
		return game.MoveEvent(types.Left), true
	case rl.KeyRight:
		return game.MoveEvent(types.Right), true
	case rl.KeyEscape:
		return game.Event{Kind: game.Quit}, true
	case rl.KeyEnter, rl.KeyKpEnter:
		return game.Event{Kind: game.TogglePause}, true
	}
	if key >= rl.KeyA && key <= rl.KeyZ {
		return ui.RuneEvent(rune('a' + key - rl.KeyA))
	}
	return game.Event{}, false
}

func (w *Window) Draw(s game.Snapshot) error {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	for _, p := range s.Body {
		drawCell(p, rl.Green)
	}
	drawCell(s.Food, rl.Red)

	if s.State == types.Paused {
		for _, p := range w.pause {
			drawCell(p, rl.Blue)
		}
	}

	rl.EndDrawing()
	return nil
}

func drawCell(p types.Point, color rl.Color) {
	rl.DrawRectangle(
		int32(p.X*ui.CellSize),
		int32(p.Y*ui.CellSize),
		ui.CellSize, ui.CellSize, color)
}

func (w *Window) Close() error {
	rl.CloseWindow()
	return nil
}
