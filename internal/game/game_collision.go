package game

import (
	"github.com/rileyL6122428/rileyL6122428.github.io/internal/entities"
	"github.com/rileyL6122428/rileyL6122428.github.io/internal/logging"
)

func (g *View) handleBulletHits() {
	live := g.bullets[:0]
	for _, b := range g.bullets {
		hit := false
		for _, z := range g.zombies {
			if z.Dead() || !entities.Touching(b.Pos, entities.BulletRadius, z.Pos, z.Radius()) {
				continue
			}
			hit = true
			if z.Hit(g.tuning.BulletDamage) {
				g.onKill(z)
			}
			break
		}
		if !hit {
			live = append(live, b)
		}
	}
	clearTail(g.bullets, len(live))
	g.bullets = live

	alive := g.zombies[:0]
	for _, z := range g.zombies {
		if !z.Dead() {
			alive = append(alive, z)
		}
	}
	clearTail(g.zombies, len(alive))
	g.zombies = alive
}

func (g *View) onKill(z *entities.Zombie) {
	g.kills++
	g.killStreak++
	g.addScore(entities.Stats(z.Kind).Points * streakMultiplier(g.killStreak))
	g.audio.PlayKill()
}

func (g *View) handleMedkitPickup() {
	if g.player.Health >= g.player.MaxHealth {
		return
	}
	if g.arena.TakeMedkitAt(g.player.Pos) {
		healed := g.player.Heal(g.tuning.MedkitHeal)
		g.log.Debug(component, "medkit taken", logging.Fields{"healed": healed, "health": g.player.Health})
	}
}

// checkZombieContact lets at most one zombie bite per tick; both the
// biter and the player go on cooldown.
func (g *View) checkZombieContact() {
	for _, z := range g.zombies {
		if !entities.Touching(g.player.Pos, entities.PlayerRadius, z.Pos, z.Radius()) {
			continue
		}
		if z.AttackCooldown > 0 || g.player.HurtCooldown > 0 {
			continue
		}
		g.player.Hurt(entities.Stats(z.Kind).Damage)
		z.AttackCooldown = zombieAttackTicks
		g.player.HurtCooldown = g.tuning.HurtCooldownTicks
		g.killStreak = 0
		if !g.player.Alive() {
			g.endRun()
			return
		}
		g.audio.PlayHurt()
		return
	}
}
