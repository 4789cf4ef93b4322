package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

// ErrInvalid wraps every validation failure returned by Load.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Frontend  string
	TickRate  int
	FrameRate int
	Seed      uint64
	Autopilot bool
	Sound     bool
	LogLevel  string
	LogFile   string
}

// TickInterval is the time between simulation steps
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

// Load reads an optional .env file (a missing one is fine, a malformed one
// is not), takes environment values as defaults
// and lets command line flags override them.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: .env: %v", ErrInvalid, err)
	}

	cfg := Config{
		Frontend:  getEnv("SNAKE_FRONTEND", FrontendWindow),
		TickRate:  getEnvInt("SNAKE_TICK_RATE", 10),
		FrameRate: getEnvInt("SNAKE_FRAME_RATE", 30),
		Seed:      getEnvUint("SNAKE_SEED", 0),
		Autopilot: getEnvBool("SNAKE_AUTOPILOT", false),
		Sound:     getEnvBool("SNAKE_SOUND", false),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFile:   getEnv("SNAKE_LOG_FILE", ""),
	}

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "window or terminal")
	fs.IntVar(&cfg.TickRate, "tick-rate", cfg.TickRate, "Simulation steps per second")
	fs.IntVar(&cfg.FrameRate, "frame-rate", cfg.FrameRate, "Frames drawn per second")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Food placement seed (0 = clock)")
	fs.BoolVar(&cfg.Autopilot, "autopilot", cfg.Autopilot, "Let the Q-learning agent steer")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "Play sound cues")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "trace, debug, info, warn, error")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return fmt.Errorf("%w: unknown frontend %q", ErrInvalid, c.Frontend)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate must be positive, got %d", ErrInvalid, c.TickRate)
	}
	if c.FrameRate < c.TickRate {
		return fmt.Errorf("%w: frame rate %d below tick rate %d", ErrInvalid, c.FrameRate, c.TickRate)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalid, err)
	}
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(k)); err == nil {
		return v
	}
	return def
}

func getEnvUint(k string, def uint64) uint64 {
	if v, err := strconv.ParseUint(os.Getenv(k), 10, 64); err == nil {
		return v
	}
	return def
}

func getEnvBool(k string, def bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(k)); err == nil {
		return v
	}
	return def
}
