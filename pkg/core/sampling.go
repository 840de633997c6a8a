package core

import "math/rand"

// Sampler provides uniform random numbers for rendering algorithms.
// Can be swapped out for deterministic testing or per-worker streams.
type Sampler interface {
	Get1D() float64 // uniform in [0, 1)
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own deterministic stream
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// SampleInUnitSphere returns a point strictly inside the unit sphere using rejection sampling
func SampleInUnitSphere(sampler Sampler) Vec3 {
	for {
		// Generate random point in [-1,1)³ cube
		p := Vec3{
			X: 2*sampler.Get1D() - 1,
			Y: 2*sampler.Get1D() - 1,
			Z: 2*sampler.Get1D() - 1,
		}
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// SampleInUnitDisk returns a point strictly inside the unit disk on the z=0 plane (for depth of field)
func SampleInUnitDisk(sampler Sampler) Vec3 {
	for {
		p := NewVec3(2*sampler.Get1D()-1, 2*sampler.Get1D()-1, 0)
		if p.Dot(p) < 1.0 {
			return p
		}
	}
}

// SequenceSampler replays a fixed sequence of values, cycling when exhausted.
// Used for deterministic tests.
type SequenceSampler struct {
	values []float64
	next   int
}

// NewSequenceSampler creates a sampler that cycles through values.
// With no values it always returns 0.5.
func NewSequenceSampler(values ...float64) *SequenceSampler {
	if len(values) == 0 {
		values = []float64{0.5}
	}
	return &SequenceSampler{values: values}
}

// Get1D returns the next value in the sequence
func (s *SequenceSampler) Get1D() float64 {
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}
