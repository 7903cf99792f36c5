package game

// Step advances every particle by one frame of ballistic motion and
// compacts out the dead ones. Frame-stepped on purpose: the loop is
// clocked by the detector, and the particles are decorative.
func (ps *ParticleSystem) Step() {
	for i := 0; i < len(ps.P); {
		p := &ps.P[i]
		p.Life -= ParticleDecay
		if p.Life <= 0 {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}
		p.X += p.VX
		p.Y += p.VY
		p.VY += ParticleGravity
		p.VX *= ParticleDamping
		i++
	}
	if len(ps.P) == 0 {
		ps.ovrIdx = 0
	}
}
