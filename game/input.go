package game

// Input is the player's intent for one tick, already decoded from whatever device the front-end polls
type Input struct {
	Up, Down, Left, Right bool

	// Aim is the world-space point the player aims at (cursor position)
	Aim Vec2

	// Fire is true while the trigger is held
	Fire bool
}

// movement returns the per-axis direction in {-1, 0, 1}
func (in Input) movement() (dx, dy float64) {
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	return dx, dy
}
