// Package terminal draws the game with tcell. Each grid cell is two
// columns wide so the board keeps roughly square proportions.
package terminal

import (
	"fmt"

	"grid-snake/game"
	"grid-snake/game/types"
	"grid-snake/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

const cellWidth = 2

var (
	wallStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	bodyStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	foodStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	pauseStyle = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	pause  []types.Point
	log    zerolog.Logger
}

// Open initialises the controlling terminal.
func Open(log zerolog.Logger) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return New(screen, log), nil
}

// New wraps an initialised screen. PollEvent blocks, so a reader
// goroutine feeds a buffered channel that PollEvents drains.
func New(screen tcell.Screen, log zerolog.Logger) *Terminal {
	screen.HideCursor()
	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 100),
		quit:   make(chan struct{}),
		pause:  ui.PauseGlyph(ui.PauseOrigin),
		log:    log,
	}
	go t.read()
	return t
}

func (t *Terminal) read() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.quit:
			return
		}
	}
}

func (t *Terminal) PollEvents() []game.Event {
	var events []game.Event
	for {
		select {
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ge, ok := keyEvent(ev.Key(), ev.Rune()); ok {
					events = append(events, ge)
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		default:
			return events
		}
	}
}

func keyEvent(key tcell.Key, r rune) (game.Event, bool) {
	switch key {
	case tcell.KeyUp:
		return game.MoveEvent(types.Up), true
	case tcell.KeyDown:
		return game.MoveEvent(types.Down), true
	case tcell.KeyLeft:
		return game.MoveEvent(types.Left), true
	case tcell.KeyRight:
		return game.MoveEvent(types.Right), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Event{Kind: game.Quit}, true
	case tcell.KeyEnter:
		return game.Event{Kind: game.TogglePause}, true
	case tcell.KeyRune:
		return ui.RuneEvent(r)
	}
	return game.Event{}, false
}

func (t *Terminal) Draw(s game.Snapshot) error {
	t.screen.Clear()

	for x := 0; x < types.GridXSize; x++ {
		t.drawCell(types.Point{X: x, Y: 0}, '░', wallStyle)
		t.drawCell(types.Point{X: x, Y: types.GridYSize}, '░', wallStyle)
	}
	for y := 0; y <= types.GridYSize; y++ {
		t.drawCell(types.Point{X: 0, Y: y}, '░', wallStyle)
		t.drawCell(types.Point{X: types.GridXSize, Y: y}, '░', wallStyle)
	}

	for _, p := range s.Body {
		t.drawCell(p, '█', bodyStyle)
	}
	t.drawCell(s.Food, '█', foodStyle)

	if s.State == types.Paused {
		for _, p := range t.pause {
			t.drawCell(p, '▓', pauseStyle)
		}
	}

	t.drawText(0, types.GridYSize+1, fmt.Sprintf("score %d  %s", s.Score, s.State))
	t.screen.Show()
	return nil
}

func (t *Terminal) drawCell(p types.Point, r rune, style tcell.Style) {
	for i := 0; i < cellWidth; i++ {
		t.screen.SetContent(p.X*cellWidth+i, p.Y, r, nil, style)
	}
}

func (t *Terminal) drawText(x, y int, s string) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, textStyle)
	}
}

func (t *Terminal) Close() error {
	close(t.quit)
	t.screen.Fini()
	return nil
}
