// Package horse implements the horse jumping game: a horse gallops in place
// while stepped obstacles scroll in from the right, and the player jumps
// them with the space bar.
package horse

import (
	"github.com/vovakirdan/horse-jump/internal/config"
	"github.com/vovakirdan/horse-jump/internal/core"
)

// Horse sprite rows. The sprite is three rows tall with the legs on the
// baseline and is drawn from column 0.
const (
	HeadGrounded = `\  [=]`
	HeadApex     = `\  [=] `
	HeadRising   = `_  [=] `
	HeadFalling  = `|  [=]`
	Body         = ` [--] `
	LegsTucked   = ` \  / `
	LegsRising   = ` \  /`
	LegsSpread   = ` /  \ `
	Blank        = `      `
)

// Horse is the player avatar.
type Horse struct {
	Height        int  // Row of the legs; decreases as the horse rises
	FacingLeft    bool // Gallop phase, frozen while airborne
	OnGround      bool
	JumpRequested bool // Latched by input, consumed on the next grounded tick
	Velocity      int  // Rows per tick, positive is up
	ApexHold      int  // Ticks spent at zero velocity in the air
}

// NewHorse creates a grounded horse standing on the baseline row.
func NewHorse(baseline int) Horse {
	return Horse{
		Height:     baseline,
		FacingLeft: true,
		OnGround:   true,
	}
}

// Motion reports a change of the horse's ground contact during a tick.
type Motion int

const (
	MotionNone Motion = iota
	MotionLiftoff
	MotionLanded
)

// Physics advances the horse one tick at a time and emits its glyphs.
type Physics struct {
	cfg      config.Physics
	baseline int
	apexRow  int
}

// NewPhysics creates a physics engine for a horse grounded at baseline.
func NewPhysics(cfg config.Physics, baseline int) *Physics {
	return &Physics{
		cfg:      cfg,
		baseline: baseline,
		apexRow:  baseline - cfg.LaunchVelocity,
	}
}

// Baseline returns the ground row of the legs.
func (p *Physics) Baseline() int {
	return p.baseline
}

// ApexRow returns the highest row the legs reach.
func (p *Physics) ApexRow() int {
	return p.apexRow
}

// Altitude returns how many rows above the baseline the horse is.
func (p *Physics) Altitude(h Horse) int {
	return p.baseline - h.Height
}

// Step advances the horse by one tick.
// The jump latch is consumed before the gallop animation runs, so the legs
// never advance on the liftoff tick.
func (p *Physics) Step(h *Horse, out *core.Batch) Motion {
	motion := MotionNone

	if h.OnGround && h.JumpRequested {
		h.JumpRequested = false
		h.OnGround = false
		h.Velocity = p.cfg.LaunchVelocity
		motion = MotionLiftoff
	}

	if h.OnGround {
		p.gallop(h, out)
		return motion
	}

	// In air - legs tucked
	if h.FacingLeft {
		out.Add(0, h.Height, LegsTucked, core.ColorHorse)
		h.FacingLeft = false
	}

	switch {
	case h.Velocity > 0:
		p.moveUp(h, out)
		h.Velocity--
	case h.Velocity == 0:
		h.ApexHold++
		if h.ApexHold > p.cfg.ApexHoldTicks {
			h.ApexHold = 0
			h.Velocity = -1
			p.moveDown(h, out)
		}
	default:
		p.moveDown(h, out)
		if h.Velocity <= p.cfg.DescentFloor() {
			h.OnGround = true
			h.Velocity = 0
			motion = MotionLanded
		} else {
			h.Velocity--
		}
	}

	return motion
}

// gallop toggles the leg phase and redraws the grounded sprite.
func (p *Physics) gallop(h *Horse, out *core.Batch) {
	legs := LegsSpread
	if h.FacingLeft {
		legs = LegsTucked
	}
	h.FacingLeft = !h.FacingLeft

	out.Add(0, h.Height-2, HeadGrounded, core.ColorHorse)
	out.Add(0, h.Height-1, Body, core.ColorHorse)
	out.Add(0, h.Height, legs, core.ColorHorse)
}

// moveUp blanks the vacated leg row and redraws the sprite one row higher.
func (p *Physics) moveUp(h *Horse, out *core.Batch) {
	out.Add(0, h.Height, Blank, core.ColorDefault)
	h.Height--

	head := HeadRising
	if h.Height == p.apexRow {
		head = HeadApex
	}
	out.Add(0, h.Height, LegsRising, core.ColorHorse)
	out.Add(0, h.Height-1, Body, core.ColorHorse)
	out.Add(0, h.Height-2, head, core.ColorHorse)
}

// moveDown blanks the vacated head row and redraws the sprite one row lower.
func (p *Physics) moveDown(h *Horse, out *core.Batch) {
	out.Add(0, h.Height-2, Blank, core.ColorDefault)
	h.Height++

	head := HeadFalling
	if h.Height == p.baseline {
		head = HeadGrounded
	}
	out.Add(0, h.Height, LegsTucked, core.ColorHorse)
	out.Add(0, h.Height-1, Body, core.ColorHorse)
	out.Add(0, h.Height-2, head, core.ColorHorse)
}

// drawStanding enqueues the initial sprite.
func drawStanding(h Horse, out *core.Batch) {
	out.Add(0, h.Height-2, HeadGrounded, core.ColorHorse)
	out.Add(0, h.Height-1, Body, core.ColorHorse)
	out.Add(0, h.Height, LegsSpread, core.ColorHorse)
}
