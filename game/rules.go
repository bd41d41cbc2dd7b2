package game

import "time"

const (
	InitialLives     = 4
	MaxPatternLength = 32

	MinDifficulty = 1
	MaxDifficulty = 5
)

// Pacing per difficulty 1..5, milliseconds. Both strictly decreasing.
var (
	onTable  = [MaxDifficulty]uint32{500, 400, 300, 220, 150}
	offTable = [MaxDifficulty]uint32{250, 200, 150, 110, 80}
)

// ClampDifficulty forces d into [1,5]
func ClampDifficulty(d int) int {
	if d < MinDifficulty {
		return MinDifficulty
	}
	if d > MaxDifficulty {
		return MaxDifficulty
	}
	return d
}

// OnDuration is how long a pattern entry stays lit
func OnDuration(difficulty int) uint32 {
	return onTable[ClampDifficulty(difficulty)-1]
}

// OffDuration is the gap between pattern entries
func OffDuration(difficulty int) uint32 {
	return offTable[ClampDifficulty(difficulty)-1]
}

// Rules holds the tunable game constants.
//
// MaxLevel and ScaleLengthByDifficulty differ between board revisions
// (win at 5, 6 or 9; length from level alone or level and difficulty), so
// both are exposed instead of being baked in.
type Rules struct {
	MaxLevel                int           // last level; clearing it wins
	ScaleLengthByDifficulty bool          // length = level + difficulty - 1
	LongPress               time.Duration // hold time that locks difficulty
	IntroPause              time.Duration // quiet gap before each pattern
	RecoverPause            time.Duration // hold before leaving an unknown phase
	Fanfare                 bool          // beeps and light animations
}

// DefaultRules matches the shipped board
func DefaultRules() Rules {
	return Rules{
		MaxLevel:     9,
		LongPress:    2 * time.Second,
		IntroPause:   800 * time.Millisecond,
		RecoverPause: time.Second,
		Fanfare:      true,
	}
}

func (r Rules) normalized() Rules {
	if r.MaxLevel < 1 {
		r.MaxLevel = 1
	}
	if r.MaxLevel > MaxPatternLength {
		r.MaxLevel = MaxPatternLength
	}
	if r.LongPress <= 0 {
		r.LongPress = 2 * time.Second
	}
	if r.IntroPause < 0 {
		r.IntroPause = 0
	}
	if r.RecoverPause < 0 {
		r.RecoverPause = 0
	}
	return r
}

// PatternLength maps level (and optionally difficulty) to a pattern length
// in [1, MaxPatternLength].
func (r Rules) PatternLength(level, difficulty int) int {
	n := level
	if r.ScaleLengthByDifficulty {
		n += ClampDifficulty(difficulty) - 1
	}
	if n < 1 {
		n = 1
	}
	if n > MaxPatternLength {
		n = MaxPatternLength
	}
	return n
}

func ms(d time.Duration) uint32 {
	return uint32(d / time.Millisecond)
}
