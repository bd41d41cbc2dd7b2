package game

// ADC full scale and bucket geometry
const (
	analogSpan = 1024
	Deadband   = 20
)

// Selector turns a jittery pot reading into a stable difficulty 1..5.
// It smooths with an 1/8 EMA, quantizes into five equal buckets and only
// leaves the current bucket once the average is Deadband counts past its edge.
type Selector struct {
	avg   uint32
	level int
}

// NewSelector starts at difficulty 1 with an empty average
func NewSelector() *Selector {
	return &Selector{level: MinDifficulty}
}

// Level is the current difficulty
func (s *Selector) Level() int {
	return s.level
}

// Average is the smoothed reading
func (s *Selector) Average() uint16 {
	return uint16(s.avg)
}

// Reset drops the average and returns to difficulty 1
func (s *Selector) Reset() {
	s.avg = 0
	s.level = MinDifficulty
}

// Update feeds one raw sample and returns the resulting difficulty
func (s *Selector) Update(sample uint16) int {
	if sample >= analogSpan {
		sample = analogSpan - 1
	}
	s.avg = (s.avg*7 + uint32(sample)) / 8

	target := int(s.avg*MaxDifficulty/analogSpan) + 1
	target = ClampDifficulty(target)

	switch {
	case target > s.level:
		if s.avg >= bucketEdge(s.level)+Deadband {
			s.level = target
		}
	case target < s.level:
		if int(s.avg) < int(bucketEdge(s.level-1))-Deadband {
			s.level = target
		}
	}
	return s.level
}

// bucketEdge is the boundary between level n and n+1
func bucketEdge(n int) uint32 {
	return uint32(n) * analogSpan / MaxDifficulty
}
