package game

import "github.com/rileyL6122428/rileyL6122428.github.io/internal/entities"

func (g *View) updatePlayerMovement() {
	dir := g.input.Movement().Normalize()
	if dir.IsZero() {
		return
	}
	g.player.Facing = dir
	step := g.tuning.PlayerSpeed / updatesPerSecond
	g.player.Pos = g.slide(g.player.Pos, dir.Scale(step), entities.PlayerRadius)
}

// slide moves one axis at a time so bodies glide along walls instead of
// sticking to them.
func (g *View) slide(pos, delta entities.Vec, radius float64) entities.Vec {
	if next := (entities.Vec{X: pos.X + delta.X, Y: pos.Y}); !g.arena.Blocked(next, radius) {
		pos = next
	}
	if next := (entities.Vec{X: pos.X, Y: pos.Y + delta.Y}); !g.arena.Blocked(next, radius) {
		pos = next
	}
	return pos
}

func (g *View) updateFiring() {
	if !g.input.Firing() || g.player.FireCooldown > 0 {
		return
	}
	dir := g.input.Cursor().Sub(g.player.Pos).Normalize()
	if dir.IsZero() {
		dir = g.player.Facing
	} else {
		g.player.Facing = dir
	}
	speed := g.tuning.BulletSpeed / updatesPerSecond
	g.bullets = append(g.bullets, &entities.Bullet{
		Pos: g.player.Pos.Add(dir.Scale(entities.PlayerRadius)),
		Vel: dir.Scale(speed),
		TTL: g.tuning.BulletLifetimeTicks,
	})
	g.player.FireCooldown = g.tuning.FireCooldownTicks
	g.audio.PlayShot()
}

func (g *View) updateBullets() {
	live := g.bullets[:0]
	for _, b := range g.bullets {
		if !b.Step() || g.arena.Blocked(b.Pos, entities.BulletRadius) {
			continue
		}
		live = append(live, b)
	}
	clearTail(g.bullets, len(live))
	g.bullets = live
}

// Zombies head straight for the player. A zombie pinned against a wall
// sidesteps, alternating sides so a crowd spreads out.
func (g *View) updateZombies() {
	for i, z := range g.zombies {
		if z.AttackCooldown > 0 {
			z.AttackCooldown--
		}
		dir := g.player.Pos.Sub(z.Pos).Normalize()
		if dir.IsZero() {
			continue
		}
		next := g.slide(z.Pos, dir.Scale(z.Speed), z.Radius())
		if next.Dist2(z.Pos) < z.Speed*z.Speed/4 {
			side := entities.Vec{X: -dir.Y, Y: dir.X}
			if i%2 == 1 {
				side = side.Scale(-1)
			}
			next = g.slide(z.Pos, side.Scale(z.Speed), z.Radius())
		}
		z.Pos = next
	}
}

func clearTail[T any](s []*T, from int) {
	for i := from; i < len(s); i++ {
		s[i] = nil
	}
}
