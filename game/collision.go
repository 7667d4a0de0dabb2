package game

// CollisionSystem resolves all hits for one tick
// Passes run in a fixed order: enemies ramming the player, player projectiles
// against enemies, then enemy projectiles against the player. Entities taken
// out during a pass are flagged and skipped by later checks; the game compacts
// the lists once the tick is over.
type CollisionSystem struct {
	game *Game
}

// NewCollisionSystem creates a collision system bound to g
func NewCollisionSystem(g *Game) *CollisionSystem {
	return &CollisionSystem{game: g}
}

// Resolve runs every collision pass
func (c *CollisionSystem) Resolve() {
	c.resolveContacts()
	c.resolvePlayerProjectiles()
	c.resolveEnemyProjectiles()
}

// resolveContacts handles enemies touching the player: the player takes the
// enemy's damage and the enemy is destroyed without reward
func (c *CollisionSystem) resolveContacts() {
	g := c.game
	playerBox := g.player.Bounds()
	for _, e := range g.enemies {
		if e.removed || !e.Bounds().Intersects(playerBox) {
			continue
		}
		g.damagePlayer(e.Damage)
		g.removeEnemy(e)
		g.emit(Event{Kind: EventEnemyCrashed, EnemyID: e.ID, EnemyKind: e.Kind, Pos: e.Pos, Amount: e.Damage})
		g.logger.Debug("enemy crashed", "enemy", e.Kind.String(), "id", uint64(e.ID), "damage", e.Damage)
	}
}

func (c *CollisionSystem) resolvePlayerProjectiles() {
	g := c.game
	for i := range g.projectiles {
		p := &g.projectiles[i]
		if p.spent {
			continue
		}
		if p.Kind == ProjectileLaserBeam {
			c.resolveBeam(p)
			continue
		}

		box := p.Bounds()
		for _, e := range g.enemies {
			if e.removed || !box.Intersects(e.Bounds()) {
				continue
			}
			c.hitEnemy(e, p.Damage)
			p.spent = true
			break
		}
	}
}

// resolveBeam damages every enemy crossed by the beam, once each per tick
func (c *CollisionSystem) resolveBeam(p *Projectile) {
	clear(p.hit)
	for _, e := range c.game.enemies {
		if e.removed {
			continue
		}
		if _, done := p.hit[e.ID]; done {
			continue
		}
		if !p.HitsCircle(e.Pos, e.Radius) {
			continue
		}
		p.hit[e.ID] = struct{}{}
		c.hitEnemy(e, p.Damage)
	}
}

// hitEnemy applies damage and grants the reward if this hit is the kill
func (c *CollisionSystem) hitEnemy(e *Enemy, damage float64) {
	e.Health -= damage
	if e.Health > 0 {
		return
	}
	g := c.game
	g.removeEnemy(e)
	g.reward(e)
}

func (c *CollisionSystem) resolveEnemyProjectiles() {
	g := c.game
	playerBox := g.player.Bounds()
	for i := range g.enemyProjectiles {
		p := &g.enemyProjectiles[i]
		if p.spent || !p.Bounds().Intersects(playerBox) {
			continue
		}
		g.damagePlayer(p.Damage)
		p.spent = true
	}
}
