package entities

const PlayerRadius = 12.0

type Player struct {
	Pos       Vec
	Facing    Vec
	Health    int
	MaxHealth int

	// Ticks left before the player may fire or be hurt again.
	FireCooldown int
	HurtCooldown int
}

func NewPlayer(pos Vec, maxHealth int) *Player {
	return &Player{
		Pos:       pos,
		Facing:    Vec{X: 1},
		Health:    maxHealth,
		MaxHealth: maxHealth,
	}
}

func (p *Player) Alive() bool { return p.Health > 0 }

// Heal adds up to amount health without exceeding MaxHealth and returns
// how much was actually restored.
func (p *Player) Heal(amount int) int {
	if amount <= 0 || p.Health >= p.MaxHealth {
		return 0
	}
	before := p.Health
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
	return p.Health - before
}

// Hurt applies damage, clamping at zero.
func (p *Player) Hurt(damage int) {
	p.Health -= damage
	if p.Health < 0 {
		p.Health = 0
	}
}

// Tick counts the cooldowns down.
func (p *Player) Tick() {
	if p.FireCooldown > 0 {
		p.FireCooldown--
	}
	if p.HurtCooldown > 0 {
		p.HurtCooldown--
	}
}
