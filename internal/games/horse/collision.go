package horse

// horseReach is the rightmost column of the horse body when grounded.
// The footprint narrows by one column per row of altitude.
const horseReach = 4

// Collides reports whether obstacle o hits a horse flying altitude rows
// above the baseline. This is a coarse region test: an obstacle can only
// hit when it is taller than the altitude, and then either its front edge
// is inside the horse's footprint or it is straddling the horse's front.
func Collides(altitude int, o Obstacle) bool {
	if o.Size <= altitude {
		return false
	}
	left := o.Left()
	if left <= horseReach-altitude && left > -o.Size {
		return true
	}
	return o.Right > altitude && left <= -o.Size
}

// AnyHit checks the two nearest obstacles. Later ones are too far right
// to reach the horse.
func AnyHit(altitude int, obstacles []Obstacle) bool {
	for i := 0; i < len(obstacles) && i < 2; i++ {
		if Collides(altitude, obstacles[i]) {
			return true
		}
	}
	return false
}
