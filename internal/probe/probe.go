// Package probe supplies the placeholder measurements attached to newly
// registered entities: endpoint latency for models and sample counts for
// imported datasets. A real health checker or corpus scanner would implement
// Generator; callers only see the interface.
package probe

import "math/rand/v2"

// Generator produces placeholder measurements.
type Generator interface {
	// Latency returns a simulated endpoint round-trip in milliseconds.
	Latency() int
	// SampleCount returns a simulated corpus size.
	SampleCount() int
}

// Simulated draws measurements from the ranges real deployments cluster in:
// 50-249 ms latency, 500-5499 samples.
type Simulated struct{}

// NewSimulated returns the default generator.
func NewSimulated() Simulated { return Simulated{} }

func (Simulated) Latency() int     { return 50 + rand.IntN(200) }
func (Simulated) SampleCount() int { return 500 + rand.IntN(5000) }

// Fixed returns the same measurements every time. Test use.
type Fixed struct {
	LatencyMS int
	Samples   int
}

func (f Fixed) Latency() int     { return f.LatencyMS }
func (f Fixed) SampleCount() int { return f.Samples }
