package main

import "arenashooter/game"

// Terminals report key presses but never releases, so a direction stays
// held for stickyTicks after its last press or auto-repeat.
const stickyTicks = 8

const (
	dirUp = iota
	dirDown
	dirLeft
	dirRight
	dirCount
)

// controls turns the terminal's discrete key and mouse events into per-tick Input
type controls struct {
	tick    uint64
	pressed [dirCount]uint64 // Tick of the last press, 0 if never
	fireAt  uint64
	mouse   bool // Primary button held
	aim     game.Vec2
}

// press marks a direction as held from the current tick
func (c *controls) press(dir int) {
	c.pressed[dir] = c.tick + 1
}

// fire keeps the trigger down for stickyTicks
func (c *controls) fire() {
	c.fireAt = c.tick + 1
}

func (c *controls) held(at uint64) bool {
	return at != 0 && c.tick+1-at < stickyTicks
}

// next returns the input for the coming tick and advances the clock
func (c *controls) next() game.Input {
	in := game.Input{
		Up:    c.held(c.pressed[dirUp]),
		Down:  c.held(c.pressed[dirDown]),
		Left:  c.held(c.pressed[dirLeft]),
		Right: c.held(c.pressed[dirRight]),
		Aim:   c.aim,
		Fire:  c.mouse || c.held(c.fireAt),
	}
	c.tick++
	return in
}

// release drops every held key, used when a menu opens
func (c *controls) release() {
	c.pressed = [dirCount]uint64{}
	c.fireAt = 0
	c.mouse = false
}
