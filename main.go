package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grid-snake/ai"
	"grid-snake/audio"
	"grid-snake/config"
	"grid-snake/game"
	"grid-snake/ui/terminal"
	"grid-snake/ui/window"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type frontend interface {
	game.Frontend
	Close() error
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	logger, logFile, err := newLogger(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("open log")
	}
	if logFile != nil {
		defer logFile.Close()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	state := game.NewGameState(rand.New(rand.NewSource(seed)), logger)

	fe, err := openFrontend(cfg, logger)
	if err != nil {
		// Nothing owns the screen yet, and logger may be disabled.
		log.Fatal().Err(err).Str("frontend", cfg.Frontend).Msg("open frontend")
	}

	logger.Info().
		Str("session", state.UUID).
		Str("frontend", cfg.Frontend).
		Int("tick_rate", cfg.TickRate).
		Int("frame_rate", cfg.FrameRate).
		Uint64("seed", seed).
		Bool("autopilot", cfg.Autopilot).
		Msg("starting snake")

	var driven game.Frontend = fe
	if cfg.Autopilot {
		pilot := ai.NewAutopilot(fe, rand.New(rand.NewSource(seed+1)), logger)
		pilot.AutoStart = true
		driven = pilot
	}

	loop := game.NewLoop(state, driven, logger)
	loop.FrameInterval = cfg.FrameInterval()
	loop.TickInterval = cfg.TickInterval()

	if cfg.Sound {
		sm := audio.NewSoundManager(logger)
		if err := sm.Initialize(); err != nil {
			logger.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		} else {
			defer sm.Cleanup()
			loop.Listeners = append(loop.Listeners, sm)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	score, err := loop.Run(ctx)
	if cerr := fe.Close(); cerr != nil {
		logger.Warn().Err(cerr).Msg("close frontend")
	}
	if err != nil {
		logger.Error().Err(err).Msg("game loop stopped")
	}

	fmt.Printf("Final score: %d\n", score)
}

var openFrontend = func(cfg config.Config, logger zerolog.Logger) (frontend, error) {
	switch cfg.Frontend {
	case config.FrontendTerminal:
		return terminal.Open(logger)
	default:
		return window.Open("Snake", logger)
	}
}

// newLogger writes to stderr, or to LogFile when set. The terminal frontend
// owns the screen, so without a log file it gets a disabled logger.
func newLogger(cfg config.Config) (zerolog.Logger, *os.File, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	var out io.Writer
	var file *os.File
	switch {
	case cfg.LogFile != "":
		file, err = os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Nop(), nil, err
		}
		out = file
	case cfg.Frontend == config.FrontendTerminal:
		return zerolog.Nop(), nil, nil
	default:
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), file, nil
}
