package main

import (
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"arenashooter/game"
)

// dustMote is one background speck; speed scales how far it drifts per unit of player movement
type dustMote struct {
	pos   game.Vec2
	speed float64
	size  float32
}

// dustField is a parallax backdrop that drifts against the player's movement
type dustField struct {
	motes  []dustMote
	width  float64
	height float64
	color  color.NRGBA
}

func newDustField(width, height float64, count int, clr color.NRGBA, rng *rand.Rand) *dustField {
	d := &dustField{
		motes:  make([]dustMote, count),
		width:  width,
		height: height,
		color:  clr,
	}
	for i := range d.motes {
		d.motes[i] = dustMote{
			pos:   game.Vec2{X: rng.Float64() * width, Y: rng.Float64() * height},
			speed: dustSpeedMin + rng.Float64()*(dustSpeedMax-dustSpeedMin),
			size:  1 + rng.Float32(),
		}
	}
	return d
}

// update moves dust opposite to the player's displacement this tick
func (d *dustField) update(delta game.Vec2) {
	for i := range d.motes {
		m := &d.motes[i]
		m.pos = m.pos.Sub(delta.Scale(m.speed))

		// Wrap on the playfield torus
		if m.pos.X < 0 {
			m.pos.X += d.width
		}
		if m.pos.X >= d.width {
			m.pos.X -= d.width
		}
		if m.pos.Y < 0 {
			m.pos.Y += d.height
		}
		if m.pos.Y >= d.height {
			m.pos.Y -= d.height
		}
	}
}

func (d *dustField) draw(screen *ebiten.Image) {
	for _, m := range d.motes {
		vector.DrawFilledCircle(screen, float32(m.pos.X), float32(m.pos.Y), m.size, d.color, false)
	}
}
