package entities

type ZombieKind int

const (
	ZombieWalker ZombieKind = iota
	ZombieRunner
	ZombieBrute
)

func (k ZombieKind) String() string {
	switch k {
	case ZombieWalker:
		return "walker"
	case ZombieRunner:
		return "runner"
	case ZombieBrute:
		return "brute"
	default:
		return "unknown"
	}
}

// KindStats are the per-kind constants. SpeedFactor multiplies the base
// zombie speed.
type KindStats struct {
	Health      int
	SpeedFactor float64
	Damage      int
	Radius      float64
	Points      int
}

func Stats(k ZombieKind) KindStats {
	switch k {
	case ZombieRunner:
		return KindStats{Health: 1, SpeedFactor: 1.8, Damage: 8, Radius: 10, Points: 150}
	case ZombieBrute:
		return KindStats{Health: 5, SpeedFactor: 0.7, Damage: 25, Radius: 18, Points: 300}
	default:
		return KindStats{Health: 2, SpeedFactor: 1, Damage: 12, Radius: 13, Points: 100}
	}
}

type Zombie struct {
	Pos            Vec
	Kind           ZombieKind
	Health         int
	Speed          float64 // pixels per tick
	AttackCooldown int
}

// NewZombie builds a zombie of kind moving at baseSpeed pixels per tick
// before the kind's factor is applied.
func NewZombie(kind ZombieKind, pos Vec, baseSpeed float64) *Zombie {
	s := Stats(kind)
	return &Zombie{
		Pos:    pos,
		Kind:   kind,
		Health: s.Health,
		Speed:  baseSpeed * s.SpeedFactor,
	}
}

func (z *Zombie) Radius() float64 { return Stats(z.Kind).Radius }
func (z *Zombie) Dead() bool      { return z.Health <= 0 }

// Hit applies damage and reports whether this hit killed the zombie.
func (z *Zombie) Hit(damage int) bool {
	if z.Dead() {
		return false
	}
	z.Health -= damage
	return z.Dead()
}
