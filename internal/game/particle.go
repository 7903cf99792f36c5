package game

// Particle is one decorative feedback particle. Life starts at or below 1
// and counts down to death; nothing references a particle after spawn.
type Particle struct {
	X, Y   float64
	VX, VY float64

	Life float64 // (0,1] while alive
	Size float64
	Col  RGB
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	seed   uint64
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	if seed == 0 {
		seed = 1
	}
	return &ParticleSystem{
		Max:  maxParticles,
		P:    make([]Particle, 0, maxParticles),
		seed: seed,
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// RenderData appends one point sprite per live particle to buf and
// returns it. Format: [x, y, size, r, g, b, a, rotation] * N. Alpha
// fades with remaining life.
func (ps *ParticleSystem) RenderData(buf []float32) []float32 {
	buf = buf[:0]
	for i := range ps.P {
		p := &ps.P[i]
		a := float32(clampF(p.Life, 0, 1))
		if a <= 0 {
			continue
		}
		buf = append(buf,
			float32(p.X), float32(p.Y), float32(p.Size),
			float32(p.Col.R)/255, float32(p.Col.G)/255, float32(p.Col.B)/255,
			a, 0)
	}
	return buf
}
