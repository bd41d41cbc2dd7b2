package game

// Judge scores recall presses against the pattern. A wrong press clears
// AllCorrect but recall continues until every entry has been answered.
type Judge struct {
	pattern    []Color
	difficulty int
	cursor     int
	allCorrect bool

	lit      bool
	litUntil uint32
}

// Press describes one consumed button edge
type Press struct {
	Index    int
	Pressed  Color
	Expected Color
	Correct  bool
}

// NewJudge starts a recall of pattern
func NewJudge(pattern []Color, difficulty int) *Judge {
	return &Judge{
		pattern:    pattern,
		difficulty: ClampDifficulty(difficulty),
		allCorrect: true,
	}
}

// Cursor is the number of presses consumed
func (j *Judge) Cursor() int {
	return j.cursor
}

// AllCorrect is false once any press mismatched
func (j *Judge) AllCorrect() bool {
	return j.allCorrect
}

// Done reports that every entry has been answered
func (j *Judge) Done() bool {
	return j.cursor >= len(j.pattern)
}

// feedbackDuration is how long a pressed pad echoes its light and tone
func (j *Judge) feedbackDuration() uint32 {
	return OnDuration(j.difficulty) / 2
}

// Step expires pad feedback and consumes at most one rising edge,
// lowest button index first. ok is false when no edge was consumed.
func (j *Judge) Step(now uint32, in Sampler, out Actuator) (press Press, ok bool) {
	if j.lit && After(now, j.litUntil) {
		out.SetColors(0)
		out.StopTone()
		j.lit = false
	}

	if j.Done() {
		return Press{}, false
	}

	for i := 0; i < NumColors; i++ {
		if !in.Button(i).Rising() {
			continue
		}
		c := Color(i)
		out.SetColors(Bit(c))
		out.PlayTone(ToneFor(c))
		j.lit = true
		j.litUntil = now + j.feedbackDuration()

		press = Press{
			Index:    j.cursor,
			Pressed:  c,
			Expected: j.pattern[j.cursor],
		}
		press.Correct = press.Pressed == press.Expected
		if !press.Correct {
			j.allCorrect = false
		}
		j.cursor++
		return press, true
	}
	return Press{}, false
}
