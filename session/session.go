// Package session drives one level of the game: it turns input into
// headings, calls the tick controller at the configured pace, presents the
// result and shows the closing dialog.
package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"worm-game/game"
	"worm-game/game/entity"
	"worm-game/game/level"
	"worm-game/game/types"
	"worm-game/telemetry"
)

type CommandKind int

const (
	Turn CommandKind = iota
	Quit
	Pause    // toggles pause
	StepOnce // pauses and advances a single tick
)

// Command is one request from an input source
type Command struct {
	Kind CommandKind
	Dir  types.Direction
}

// Input produces commands. Poll must not block.
type Input interface {
	Poll() []Command
}

// Display is the rendering side. Cell writes arrive through the embedded
// Sink; Present is called once per frame.
type Display interface {
	types.Sink
	Size() (rows, cols int)
	Present(hud HUD)
	Dialog(msg string)
	Close()
}

// Chime is notified when the worm eats
type Chime interface {
	Food(kind types.FoodKind)
}

// HUD is the status line shown below the board
type HUD struct {
	Level    string
	Tick     int
	Length   int
	Capacity int
	FoodLeft int
	Status   types.Status
	Paused   bool
}

type Options struct {
	TickInterval  time.Duration // 0 ticks on every frame
	FrameInterval time.Duration // 0 runs frames back to back
	MaxTicks      int           // 0 = unlimited
	AllowReverse  bool
	Logger        *slog.Logger
	Chime         Chime
	Trace         *telemetry.Trace
}

// Outcome summarises a finished level
type Outcome struct {
	Status    types.Status
	Cleared   bool
	Quit      bool
	Ticks     int
	Length    int
	FoodEaten int
	Duration  time.Duration
}

type Session struct {
	ID      string
	game    *game.Game
	display Display
	input   Input
	opts    Options
	log     *slog.Logger

	paused   bool
	stepOnce bool
	moved    types.Direction // heading used by the last tick
	started  time.Time
}

func New(g *game.Game, display Display, input Input, opts Options) *Session {
	id := uuid.NewString()
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		ID:      id,
		game:    g,
		display: display,
		input:   input,
		opts:    opts,
		log:     logger.With("session", id),
	}
}

// Start checks the display size and lays out the level. A display that is
// too small is reported through the dialog before the error is returned.
func (s *Session) Start(lvl *level.Level) error {
	rows, cols := s.display.Size()
	if err := s.game.Initialize(rows, cols); err != nil {
		var dimErr *entity.DimensionError
		if errors.As(err, &dimErr) {
			s.display.Dialog(dimErr.Error())
		}
		return err
	}
	if err := s.game.StartLevel(lvl); err != nil {
		return err
	}

	worm := s.game.Worm()
	s.moved = worm.Direction()
	s.started = time.Now()
	s.log.Info("level started",
		"level", lvl.Name,
		"rows", s.game.Board().LastRow()+1,
		"cols", s.game.Board().LastCol()+1,
		"food", s.game.Board().FoodItems(),
		"head", worm.HeadPosition().String(),
		"heading", worm.Direction().String(),
	)
	return nil
}

// Run plays the level until it ends, the player quits or ctx is cancelled
func (s *Session) Run(ctx context.Context) Outcome {
	var frames <-chan time.Time
	if s.opts.FrameInterval > 0 {
		ticker := time.NewTicker(s.opts.FrameInterval)
		defer ticker.Stop()
		frames = ticker.C
	}

	lastTick := time.Now()
	for {
		if ctx.Err() != nil {
			return s.finish(true)
		}

		for _, cmd := range s.input.Poll() {
			if s.apply(cmd) {
				return s.finish(true)
			}
		}

		due := s.opts.TickInterval <= 0 || time.Since(lastTick) >= s.opts.TickInterval
		if (due && !s.paused) || s.stepOnce {
			s.tick()
			s.stepOnce = false
			lastTick = time.Now()
		}

		s.display.Present(s.hud())

		if s.game.Status().IsTerminal() || s.game.Cleared() {
			out := s.finish(false)
			s.display.Dialog(Message(out))
			return out
		}
		if s.opts.MaxTicks > 0 && s.game.Ticks() >= s.opts.MaxTicks {
			s.log.Info("max ticks reached", "tick", s.game.Ticks())
			return s.finish(false)
		}

		if frames != nil {
			select {
			case <-ctx.Done():
			case <-frames:
			}
		}
	}
}

// apply handles one command and reports whether the player quit
func (s *Session) apply(cmd Command) bool {
	switch cmd.Kind {
	case Quit:
		return true
	case Pause:
		s.paused = !s.paused
	case StepOnce:
		s.paused = true
		s.stepOnce = true
	case Turn:
		s.turn(cmd.Dir)
	}
	return false
}

// turn applies a heading change unless it would reverse the worm onto
// itself and reversing is not allowed
func (s *Session) turn(dir types.Direction) {
	if dir == types.None {
		return
	}
	worm := s.game.Worm()
	if !s.opts.AllowReverse && worm.Length() > 1 && dir == s.moved.Opposite() {
		s.log.Debug("reverse turn ignored", "heading", s.moved.String(), "requested", dir.String())
		return
	}
	s.game.SetHeading(dir)
}

func (s *Session) tick() {
	s.moved = s.game.Worm().Direction()
	status := s.game.Tick()
	ev := s.game.LastEvent()

	if ev.Ate > 0 {
		s.log.Debug("food eaten",
			"kind", int(ev.Ate),
			"grew", ev.Grew,
			"length", s.game.Worm().Length(),
			"food_left", s.game.Board().FoodItems(),
		)
		if s.opts.Chime != nil {
			s.opts.Chime.Food(ev.Ate)
		}
	}

	err := s.opts.Trace.Record(telemetry.TickRecord{
		Session:  s.ID,
		Tick:     s.game.Ticks(),
		Status:   status.String(),
		Heading:  s.moved.String(),
		HeadRow:  ev.Head.Row,
		HeadCol:  ev.Head.Col,
		Length:   s.game.Worm().Length(),
		FoodLeft: s.game.Board().FoodItems(),
		Ate:      int(ev.Ate),
		Grew:     ev.Grew,
	})
	if err != nil {
		s.log.Warn("trace write failed", "error", err)
	}
}

func (s *Session) hud() HUD {
	worm := s.game.Worm()
	return HUD{
		Level:    s.game.Level().Name,
		Tick:     s.game.Ticks(),
		Length:   worm.Length(),
		Capacity: worm.Capacity(),
		FoodLeft: s.game.Board().FoodItems(),
		Status:   s.game.Status(),
		Paused:   s.paused,
	}
}

func (s *Session) finish(quit bool) Outcome {
	out := Outcome{
		Status:    s.game.Status(),
		Cleared:   s.game.Cleared(),
		Quit:      quit,
		Ticks:     s.game.Ticks(),
		Length:    s.game.Worm().Length(),
		FoodEaten: s.game.FoodEaten(),
		Duration:  time.Since(s.started),
	}
	s.log.Info("level finished",
		"status", out.Status.String(),
		"cleared", out.Cleared,
		"quit", out.Quit,
		"ticks", out.Ticks,
		"length", out.Length,
		"food_eaten", out.FoodEaten,
		"duration", out.Duration.Round(time.Millisecond).String(),
	)
	return out
}

// Message is the closing dialog text for an outcome
func Message(out Outcome) string {
	switch {
	case out.Status == types.OutOfBounds:
		return "The worm left the playing field"
	case out.Status == types.Crash:
		return "The worm crashed into a barrier"
	case out.Status == types.Crossing:
		return "The worm bit itself"
	case out.Cleared:
		return "Level cleared: all food eaten"
	default:
		return "Game over"
	}
}
