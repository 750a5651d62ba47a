package probe

import "testing"

func TestSimulatedRanges(t *testing.T) {
	g := NewSimulated()
	for i := 0; i < 1000; i++ {
		if l := g.Latency(); l < 50 || l > 249 {
			t.Fatalf("Latency() = %d, want 50..249", l)
		}
		if n := g.SampleCount(); n < 500 || n > 5499 {
			t.Fatalf("SampleCount() = %d, want 500..5499", n)
		}
	}
}

func TestFixed(t *testing.T) {
	var g Generator = Fixed{LatencyMS: 99, Samples: 1234}
	if g.Latency() != 99 || g.SampleCount() != 1234 {
		t.Errorf("Fixed = %d, %d", g.Latency(), g.SampleCount())
	}
}
