package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"worm-game/ai"
	"worm-game/audio"
	"worm-game/config"
	"worm-game/game"
	"worm-game/game/entity"
	"worm-game/game/level"
	"worm-game/game/manager"
	"worm-game/session"
	"worm-game/telemetry"
	"worm-game/terminal"
	"worm-game/ui"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS for the terminal

func main() {
	// Values from .env become the flag defaults; a missing file is fine
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "loading .env: %v\n", err)
		os.Exit(1)
	}

	configPath := flag.String("config", os.Getenv("WORM_CONFIG"), "Path to config.yaml (empty = use defaults)")
	frontend := flag.String("frontend", os.Getenv("WORM_FRONTEND"), "raylib, terminal or headless (empty = use config)")
	levelName := flag.String("level", "", "Built-in level name or \"random\" (empty = use config)")
	levelFile := flag.String("level-file", "", "Path to a level YAML file")
	seed := flag.Uint64("seed", 0, "Seed for random levels and the autopilot (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	tracePath := flag.String("trace", "", "Write a per-tick CSV trace to this file")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (empty = use config)")
	mute := flag.Bool("mute", false, "Disable sound")
	dumpConfig := flag.String("dump-config", "", "Write the effective config to this file and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// CLI flags override the config file
	if *frontend != "" {
		cfg.Frontend = *frontend
	}
	if *levelName != "" {
		cfg.Level.Name = *levelName
	}
	if *levelFile != "" {
		cfg.Level.Path = *levelFile
	}
	if *seed != 0 {
		cfg.Level.Seed = *seed
	}
	if *mute {
		cfg.Audio.Enabled = false
	}
	if *logLevel != "" {
		if err := cfg.SetLogLevel(*logLevel); err != nil {
			slog.Error("invalid flag", "error", err)
			os.Exit(1)
		}
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}
	if cfg.Level.Seed == 0 {
		cfg.Level.Seed = uint64(time.Now().UnixNano())
	}

	if *dumpConfig != "" {
		if err := cfg.WriteYAML(*dumpConfig); err != nil {
			slog.Error("failed to write config", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, *maxTicks, *tracePath); err != nil {
		slog.Error("game aborted", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, maxTicks int, tracePath string) error {
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	lvl, err := loadLevel(cfg)
	if err != nil {
		return err
	}

	display, input, err := openFrontend(cfg)
	if err != nil {
		return err
	}
	defer display.Close()

	g := game.NewGame(game.Options{
		Dimensions: entity.Dimensions{
			MinRows:      cfg.Board.MinRows,
			MinCols:      cfg.Board.MinCols,
			ReservedRows: cfg.Board.ReservedRows,
		},
		Capacity:      cfg.Worm.Capacity,
		InitialLength: cfg.Worm.InitialLength,
		Bonus: manager.Bonus{
			1: cfg.Food.Bonus.Food1,
			2: cfg.Food.Bonus.Food2,
			3: cfg.Food.Bonus.Food3,
		},
	}, display)

	opts := session.Options{
		TickInterval:  cfg.Derived.TickInterval,
		FrameInterval: frameInterval,
		MaxTicks:      maxTicks,
		AllowReverse:  cfg.Input.AllowReverse,
		Logger:        logger,
	}
	if cfg.Frontend == "headless" {
		// No player to wait for: tick as fast as the autopilot decides
		opts.TickInterval = 0
		opts.FrameInterval = 0
		input = ai.NewAutopilot(g, cfg.Level.Seed)
	}
	if cfg.Frontend == "raylib" {
		// EndDrawing already paces frames at the target FPS
		opts.FrameInterval = 0
	}

	if cfg.Audio.Enabled && cfg.Frontend != "headless" {
		chime, err := audio.NewChime()
		if err != nil {
			// Non-fatal, game can run without sound
			logger.Warn("audio initialization failed", "error", err)
		}
		defer chime.Close()
		opts.Chime = chime
	}

	trace, err := telemetry.Create(tracePath)
	if err != nil {
		return err
	}
	defer trace.Close()
	opts.Trace = trace

	sess := session.New(g, display, input, opts)
	if err := sess.Start(lvl); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	sess.Run(ctx)
	return nil
}

// newLogger logs to a file while a full-screen frontend owns the terminal
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeLog := func() {}
	if cfg.Frontend != "headless" && cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeLog = func() { f.Close() }
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.Derived.LogLevel}
	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	return slog.New(handler), closeLog, nil
}

func loadLevel(cfg *config.Config) (*level.Level, error) {
	switch {
	case cfg.Level.Path != "":
		return level.Load(cfg.Level.Path)
	case cfg.Level.Name == "random":
		return level.Random(level.RandomOptions{
			Seed:     cfg.Level.Seed,
			Rows:     cfg.Board.MinRows,
			Cols:     cfg.Board.MinCols,
			Food:     cfg.Level.Food,
			Barriers: cfg.Level.Barriers,
		})
	default:
		return level.Builtin(cfg.Level.Name)
	}
}

func openFrontend(cfg *config.Config) (session.Display, session.Input, error) {
	switch cfg.Frontend {
	case "raylib":
		r := ui.NewRenderer(cfg.Window.Width, cfg.Window.Height, cfg.Window.TargetFPS,
			cfg.Window.CellSize, cfg.Board.MinRows, cfg.Board.MinCols)
		return r, r, nil
	case "terminal":
		t, err := terminal.New(terminal.Layout{Rows: cfg.Board.MinRows, Cols: cfg.Board.MinCols})
		if err != nil {
			return nil, nil, fmt.Errorf("opening terminal: %w", err)
		}
		return t, t, nil
	default:
		return &session.Headless{
			Rows: cfg.Board.MinRows + cfg.Board.ReservedRows,
			Cols: cfg.Board.MinCols,
		}, nil, nil
	}
}
