package horse

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/horse-jump/internal/config"
	"github.com/vovakirdan/horse-jump/internal/core"
)

// Visual characters for rendering
const (
	GroundChar  = '='
	ScoreFormat = "Score = %04d"
	scoreInset  = 13 // Score is drawn this many columns from the right edge
)

// Viewport errors returned by Setup and CheckViewport.
var (
	ErrViewportTooShort  = errors.New("viewport too short")
	ErrViewportTooNarrow = errors.New("viewport too narrow")
)

// CheckViewport validates a terminal size against the configured minimums.
// Height is checked first.
func CheckViewport(width, height int, v config.Viewport) error {
	if height < v.MinHeight {
		return fmt.Errorf("%w: need %d rows, have %d", ErrViewportTooShort, v.MinHeight, height)
	}
	if width < v.MinWidth {
		return fmt.Errorf("%w: need %d columns, have %d", ErrViewportTooNarrow, v.MinWidth, width)
	}
	return nil
}

// Game implements the horse jumping game logic.
// It is driven one tick at a time by a terminal backend.
type Game struct {
	cfg        config.Config
	difficulty config.Difficulty
	rng        core.Rand
	clock      core.Clock
	logger     *log.Logger

	width     int // Playfield width in columns
	height    int // Playfield height; one less than the terminal
	groundY   int
	horse     Horse
	physics   *Physics
	obstacles *ObstacleManager
	batch     *core.Batch
	pacer     *Pacer

	score    int
	tick     int
	playable bool
	crashed  bool
}

// New creates a game. Setup must be called before the first tick.
func New(cfg config.Config, d config.Difficulty, rng core.Rand, clock core.Clock, logger *log.Logger) *Game {
	return &Game{
		cfg:        cfg,
		difficulty: d,
		rng:        rng,
		clock:      clock,
		logger:     logger,
		batch:      core.NewBatch(),
	}
}

// Setup validates the terminal size, builds the scene and queues the
// ground, the standing horse and the score for the first frame.
func (g *Game) Setup(width, height int) error {
	if err := CheckViewport(width, height, g.cfg.Viewport); err != nil {
		return err
	}

	// The last terminal row stays empty so the cursor never scrolls the screen
	g.width = width
	g.height = height - 1
	g.groundY = g.height - 1
	baseline := g.groundY - 1

	g.horse = NewHorse(baseline)
	g.physics = NewPhysics(g.cfg.Physics, baseline)
	g.obstacles = NewObstacleManager(g.rng, g.width, baseline, g.cfg.Obstacles, g.difficulty)
	g.pacer = NewPacer(g.clock, g.cfg.Pacing)
	g.score = 0
	g.tick = 0
	g.playable = true
	g.crashed = false

	g.batch.Reset()
	g.drawGround()
	drawStanding(g.horse, g.batch)
	g.drawScore()

	lo, hi := g.obstacles.GapRange()
	g.logger.Info("game ready", "width", width, "height", height, "difficulty", int(g.difficulty), "gap_min", lo, "gap_max", hi)
	return nil
}

// HandleAction applies one polled key.
func (g *Game) HandleAction(a core.Action) {
	switch a {
	case core.ActionJump:
		g.horse.JumpRequested = true
	case core.ActionQuit:
		g.Stop()
	}
}

// Stop ends the session without a collision.
func (g *Game) Stop() {
	if g.playable {
		g.logger.Info("game stopped", "score", g.score, "tick", g.tick)
	}
	g.playable = false
}

// Update advances the game by one tick.
func (g *Game) Update() {
	if !g.playable {
		return
	}
	g.tick++

	switch g.physics.Step(&g.horse, g.batch) {
	case MotionLiftoff:
		g.logger.Debug("liftoff", "tick", g.tick)
	case MotionLanded:
		g.logger.Debug("landed", "tick", g.tick)
	}

	if o, ok := g.obstacles.Spawn(); ok {
		g.logger.Debug("obstacle spawned", "tick", g.tick, "size", o.Size, "right", o.Right)
	}

	if AnyHit(g.Altitude(), g.obstacles.Obstacles()) {
		g.playable = false
		g.crashed = true
		g.logger.Info("collision", "tick", g.tick, "score", g.score)
		return
	}

	g.obstacles.Advance(g.batch)
	g.obstacles.Retire()

	g.score++
	g.drawScore()

	if g.pacer.Check() {
		g.logger.Info("speed up", "tick", g.tick, "interval", g.pacer.Interval())
	}

	g.drawGround()
}

// Flush draws everything queued since the last flush.
func (g *Game) Flush(dst core.Surface) {
	g.batch.Flush(dst)
}

// Interval returns the current frame sleep.
func (g *Game) Interval() time.Duration {
	return g.pacer.Interval()
}

// CrashPause returns how long the final frame stays up after a collision.
func (g *Game) CrashPause() time.Duration {
	return g.cfg.Pacing.CrashPause
}

// Playable reports whether the session is still running.
func (g *Game) Playable() bool {
	return g.playable
}

// Altitude returns how many rows above the baseline the horse is.
func (g *Game) Altitude() int {
	return g.physics.Altitude(g.horse)
}

// Horse returns a copy of the horse state.
func (g *Game) Horse() Horse {
	return g.horse
}

// Obstacles returns the live obstacles, nearest first.
func (g *Game) Obstacles() []Obstacle {
	return g.obstacles.Obstacles()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: !g.playable,
		Crashed:  g.crashed,
	}
}

func (g *Game) drawScore() {
	g.batch.Add(g.width-scoreInset, 0, fmt.Sprintf(ScoreFormat, g.score), core.ColorScore)
}

func (g *Game) drawGround() {
	g.batch.Add(0, g.groundY, strings.Repeat(string(GroundChar), g.width), core.ColorGround)
}
