package horse

import (
	"github.com/vovakirdan/horse-jump/internal/config"
	"github.com/vovakirdan/horse-jump/internal/core"
)

// Obstacle sizes.
const (
	MinObstacleSize = 1
	MaxObstacleSize = 3
)

// obstacleRows holds the stacked glyph rows for each size, bottom row first.
// Each row above is one cell narrower and shifted one column right.
// The trailing space erases the previous frame as the obstacle scrolls left.
var obstacleRows = [MaxObstacleSize + 1][]string{
	1: {`/\ `},
	2: {`/==\ `, `/\ `},
	3: {`/====\ `, `/==\ `, `/\ `},
}

// Obstacle represents a stepped ground obstacle the horse must jump over.
type Obstacle struct {
	Right int // Column of the rightmost occupied cell
	Size  int // 1 to 3; width is 2*Size and height is Size rows
}

// Left returns the column of the leftmost occupied cell.
func (o Obstacle) Left() int {
	return o.Right - (2*o.Size - 1)
}

// Rows returns the glyph rows of this obstacle, bottom row first.
func (o Obstacle) Rows() []string {
	return obstacleRows[o.Size]
}

// ObstacleManager handles spawning, movement, and removal of obstacles.
// Obstacles are kept in spawn order, which is also left-to-right order.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       core.Rand
	width     int
	baseline  int
	spawnAt   int
	gapLo     int
	gapHi     int
}

// NewObstacleManager creates an obstacle manager for a playfield width wide
// whose obstacles stand on the baseline row.
func NewObstacleManager(rng core.Rand, width, baseline int, cfg config.Obstacles, d config.Difficulty) *ObstacleManager {
	lo, hi := cfg.GapRange(d)
	return &ObstacleManager{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		width:     width,
		baseline:  baseline,
		spawnAt:   width - cfg.SpawnInset,
		gapLo:     lo,
		gapHi:     hi,
	}
}

// GapRange returns the bounds of the random spawn threshold.
func (om *ObstacleManager) GapRange() (lo, hi int) {
	return om.gapLo, om.gapHi
}

// Spawn runs the per-tick spawn check and appends at most one obstacle.
// A new obstacle appears when there is none, or when the distance from the
// right edge of the viewport to the newest obstacle exceeds a threshold
// drawn from the gap range.
func (om *ObstacleManager) Spawn() (Obstacle, bool) {
	if n := len(om.obstacles); n > 0 {
		threshold := core.RandRange(om.rng, om.gapLo, om.gapHi)
		if om.width-om.obstacles[n-1].Right <= threshold {
			return Obstacle{}, false
		}
	}

	o := Obstacle{
		Right: om.spawnAt,
		Size:  core.RandRange(om.rng, MinObstacleSize, MaxObstacleSize),
	}
	om.obstacles = append(om.obstacles, o)
	return o, true
}

// Advance draws every obstacle at its current position and then moves it
// one column left.
func (om *ObstacleManager) Advance(out *core.Batch) {
	for i := range om.obstacles {
		o := &om.obstacles[i]
		left := o.Left()
		for dy, row := range o.Rows() {
			out.Add(left+dy, om.baseline-dy, row, core.ColorObstacle)
		}
		o.Right--
	}
}

// Retire removes the nearest obstacle once it has fully left the screen.
func (om *ObstacleManager) Retire() (Obstacle, bool) {
	if len(om.obstacles) == 0 || om.obstacles[0].Right >= 0 {
		return Obstacle{}, false
	}
	o := om.obstacles[0]
	om.obstacles = om.obstacles[1:]
	return o, true
}

// Obstacles returns the live obstacles, nearest first.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}
