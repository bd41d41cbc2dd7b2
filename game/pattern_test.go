package game

import "testing"

func TestGenerateLengthAndRange(t *testing.T) {
	g := NewGenerator(7)
	for n := 1; n <= MaxPatternLength; n++ {
		p := g.Generate(n)
		if len(p) != n {
			t.Fatalf("Generate(%d) returned %d entries", n, len(p))
		}
		for i, c := range p {
			if c >= NumColors {
				t.Fatalf("Generate(%d)[%d] = %d, out of range", n, i, c)
			}
		}
	}
}

func TestGenerateClampsLength(t *testing.T) {
	g := NewGenerator(7)
	tests := []struct {
		n    int
		want int
	}{
		{n: -3, want: 1},
		{n: 0, want: 1},
		{n: 33, want: MaxPatternLength},
		{n: 1000, want: MaxPatternLength},
	}
	for _, tt := range tests {
		if got := len(g.Generate(tt.n)); got != tt.want {
			t.Fatalf("len(Generate(%d)) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestGenerateIsReproducibleAndUsesAllColors(t *testing.T) {
	a := NewGenerator(99).Generate(MaxPatternLength)
	b := NewGenerator(99).Generate(MaxPatternLength)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at %d", i)
		}
	}

	seen := map[Color]int{}
	g := NewGenerator(1)
	for i := 0; i < 100; i++ {
		for _, c := range g.Generate(MaxPatternLength) {
			seen[c]++
		}
	}
	for c := Color(0); c < NumColors; c++ {
		// 3200 draws, expect ~800 each
		if seen[c] < 600 || seen[c] > 1000 {
			t.Fatalf("color %s drawn %d times out of 3200", c, seen[c])
		}
	}
}

func TestSeedFromMixesAmbientAndClock(t *testing.T) {
	in := &scriptedInput{}
	clock := &manualClock{now: 5}
	base := SeedFrom(in, clock)

	in.analog[ChannelAmbient1] = 300
	if SeedFrom(in, clock) == base {
		t.Fatalf("seed ignores ambient channel 1")
	}
	in.analog[ChannelAmbient1] = 0
	in.analog[ChannelAmbient2] = 17
	if SeedFrom(in, clock) == base {
		t.Fatalf("seed ignores ambient channel 2")
	}
	in.analog[ChannelAmbient2] = 0
	in.analog[ChannelPot] = 900
	if SeedFrom(in, clock) != base {
		t.Fatalf("seed depends on the pot")
	}
	clock.now = 6
	if SeedFrom(in, clock) == base {
		t.Fatalf("seed ignores the clock")
	}
}
