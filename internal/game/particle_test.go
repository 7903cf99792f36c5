package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticleStepPhysics(t *testing.T) {
	ps := NewParticleSystem(16, 1)
	ps.Add(Particle{X: 100, Y: 200, VX: 4, VY: -3, Life: 1, Size: 5})

	ps.Step()
	require.Len(t, ps.P, 1)
	p := ps.P[0]
	assert.InDelta(t, 1-ParticleDecay, p.Life, 1e-9)
	assert.InDelta(t, 104, p.X, 1e-9)
	assert.InDelta(t, 197, p.Y, 1e-9)
	assert.InDelta(t, -3+ParticleGravity, p.VY, 1e-9)
	assert.InDelta(t, 4*ParticleDamping, p.VX, 1e-9)
}

func TestParticleStepRemovesDead(t *testing.T) {
	ps := NewParticleSystem(16, 1)
	ps.Add(Particle{Life: ParticleDecay / 2, Size: 3})
	ps.Add(Particle{Life: 1, Size: 3})
	ps.Add(Particle{Life: ParticleDecay, Size: 3}) // hits zero exactly

	ps.Step()
	require.Len(t, ps.P, 1)
	assert.InDelta(t, 1-ParticleDecay, ps.P[0].Life, 1e-9)
}

func TestParticleStepDrains(t *testing.T) {
	ps := NewParticleSystem(64, 9)
	ps.SpawnRemoveBurst(640, 360, BlockPalette[0])
	require.NotEmpty(t, ps.P)

	// Life starts at 1 at most; decay guarantees death within 1/decay
	// steps plus one.
	decay := float64(ParticleDecay)
	for i := 0; i < int(1/decay)+2; i++ {
		ps.Step()
	}
	assert.Empty(t, ps.P)
}

func TestParticleAddCapsAndOverwrites(t *testing.T) {
	ps := NewParticleSystem(4, 1)
	for i := 0; i < 4; i++ {
		ps.Add(Particle{Size: float64(i), Life: 1})
	}
	require.Len(t, ps.P, 4)

	// Fifth insert overwrites the oldest slot, not grows.
	ps.Add(Particle{Size: 99, Life: 1})
	assert.Len(t, ps.P, 4)
	assert.Equal(t, 99.0, ps.P[0].Size)

	// Sixth overwrites the next slot.
	ps.Add(Particle{Size: 98, Life: 1})
	assert.Equal(t, 98.0, ps.P[1].Size)
}

func TestSpawnBurstCounts(t *testing.T) {
	ps := NewParticleSystem(1024, 5)
	ps.SpawnPlaceBurst(300, 300, BlockPalette[2])
	assert.Len(t, ps.P, PlaceBurstCount)

	ps.Clear()
	ps.SpawnRemoveBurst(300, 300, BlockPalette[2])
	assert.Len(t, ps.P, RemoveBurstCount)
}

func TestSpawnBurstDeterministic(t *testing.T) {
	a := NewParticleSystem(256, 11)
	b := NewParticleSystem(256, 11)
	a.SpawnPlaceBurst(520, 280, BlockPalette[4])
	b.SpawnPlaceBurst(520, 280, BlockPalette[4])
	assert.Equal(t, a.P, b.P, "same seed and position, same burst")

	c := NewParticleSystem(256, 12)
	c.SpawnPlaceBurst(520, 280, BlockPalette[4])
	assert.NotEqual(t, a.P, c.P, "different seed, different burst")
}

func TestRenderDataLayout(t *testing.T) {
	ps := NewParticleSystem(16, 1)
	ps.Add(Particle{X: 10, Y: 20, Life: 0.5, Size: 4, Col: RGB{255, 0, 0}})
	ps.Add(Particle{X: 30, Y: 40, Life: 0, Size: 4}) // dead, skipped

	buf := ps.RenderData(nil)
	require.Len(t, buf, 8, "one sprite, eight floats")
	assert.Equal(t, float32(10), buf[0])
	assert.Equal(t, float32(20), buf[1])
	assert.Equal(t, float32(4), buf[2])
	assert.Equal(t, float32(1), buf[3], "red channel normalised")
	assert.Equal(t, float32(0.5), buf[6], "alpha follows life")
}

func TestRenderDataReusesBuffer(t *testing.T) {
	ps := NewParticleSystem(16, 1)
	for i := 0; i < 3; i++ {
		ps.Add(Particle{Life: 1, Size: 2})
	}
	buf := make([]float32, 0, 64)
	out := ps.RenderData(buf)
	assert.Len(t, out, 24)
	assert.Equal(t, 64, cap(out), "no reallocation within capacity")
}

func TestClearResets(t *testing.T) {
	ps := NewParticleSystem(4, 1)
	for i := 0; i < 6; i++ {
		ps.Add(Particle{Life: 1})
	}
	ps.Clear()
	assert.Empty(t, ps.P)

	// After a clear the system fills from the start again.
	for i := 0; i < 4; i++ {
		ps.Add(Particle{Life: 1, Size: float64(i)})
	}
	assert.Equal(t, 0.0, ps.P[0].Size)
	assert.Equal(t, 3.0, ps.P[3].Size)
}
