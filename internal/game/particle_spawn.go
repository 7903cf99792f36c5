package game

import "math"

// SpawnPlaceBurst throws a radial ring of particles in the new block's
// colour. Angles are evenly spread with jitter so the ring reads as a
// ring even at low counts.
func (ps *ParticleSystem) SpawnPlaceBurst(x, y float64, col RGB) {
	r := NewRand(hash2D(ps.seed^0xA5A5A5A5, int(x), int(y)))
	step := 2 * math.Pi / PlaceBurstCount
	for i := 0; i < PlaceBurstCount; i++ {
		ang := float64(i)*step + r.RangeF(-0.25, 0.25)
		spd := r.RangeF(2.5, 6.5)
		ps.Add(Particle{
			X: x, Y: y,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang)*spd - 1.2,
			Life: r.RangeF(0.7, 1.0),
			Size: r.RangeF(3, 6),
			Col:  col.Add(r.Range(-18, 18), r.Range(-18, 18), r.Range(-18, 18)),
		})
	}
}

// SpawnRemoveBurst is the bigger omnidirectional pop played where a
// deleted block last sat.
func (ps *ParticleSystem) SpawnRemoveBurst(x, y float64, col RGB) {
	r := NewRand(hash2D(ps.seed^0x5EED, int(x), int(y)))
	for i := 0; i < RemoveBurstCount; i++ {
		ang := r.RangeF(0, 2*math.Pi)
		spd := r.RangeF(1.5, 11)
		ps.Add(Particle{
			X: x + r.RangeF(-4, 4), Y: y + r.RangeF(-4, 4),
			VX: math.Cos(ang) * spd, VY: math.Sin(ang)*spd - 2.0,
			Life: r.RangeF(0.5, 1.0),
			Size: r.RangeF(2, 7),
			Col:  col.Add(r.Range(-24, 24), r.Range(-24, 24), r.Range(-24, 24)),
		})
	}
}
