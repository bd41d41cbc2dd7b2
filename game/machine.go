package game

import (
	"fmt"
	"strings"
)

// Deps wires a Machine to its collaborators. Clock and Input are required;
// the rest fall back to no-ops.
type Deps struct {
	Clock   Clock
	Input   Sampler
	Out     Actuator
	Display Display
	Log     LogSink
	Rules   Rules

	// Generator overrides the ambient-seeded pattern source
	Generator *Generator
}

// Machine sequences a game session. All work happens inside Tick, which
// polls its collaborators and returns without waiting on anything.
type Machine struct {
	clock   Clock
	in      Sampler
	out     Actuator
	display Display
	log     LogSink
	rules   Rules

	gen *Generator
	sel *Selector
	s   Session

	shown     Snapshot
	shownOnce bool
}

// New creates a fresh session in BOOT
func New(d Deps) *Machine {
	m := &Machine{
		clock:   d.Clock,
		in:      d.Input,
		out:     d.Out,
		display: d.Display,
		log:     d.Log,
		rules:   d.Rules.normalized(),
		gen:     d.Generator,
		sel:     NewSelector(),
	}
	if m.out == nil {
		m.out = nopActuator{}
	}
	if m.display == nil {
		m.display = nopDisplay{}
	}
	if m.log == nil {
		m.log = nopLog{}
	}
	if m.gen == nil {
		m.gen = NewGenerator(SeedFrom(m.in, m.clock))
	}

	m.log.Log("game", "initializing, seed=%d", m.gen.Seed())
	m.s.reset()
	m.s.Difficulty = MinDifficulty
	m.enter(m.clock.NowMS(), &bootStage{})
	return m
}

// Session exposes the session for inspection. Callers must not mutate it.
func (m *Machine) Session() *Session {
	return &m.s
}

// Phase is the current phase
func (m *Machine) Phase() Phase {
	return m.s.Phase()
}

// Rules returns the normalized rules in effect
func (m *Machine) Rules() Rules {
	return m.rules
}

// Snapshot captures the display status
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Phase:            m.s.Phase(),
		Level:            m.s.Level,
		MaxLevel:         m.rules.MaxLevel,
		Lives:            m.s.Lives,
		Score:            m.s.Score,
		Difficulty:       m.s.Difficulty,
		DifficultyLocked: m.s.DifficultyLocked,
		PatternCursor:    m.s.PatternCursor(),
		PatternLength:    len(m.s.Pattern),
	}
}

// Tick runs one step of the current phase
func (m *Machine) Tick() {
	now := m.clock.NowMS()

	switch st := m.s.stage.(type) {
	case *bootStage:
		m.tickBoot(now)
	case *selectStage:
		m.tickSelect(now, st)
	case *introStage:
		m.tickIntro(now, st)
	case *displayStage:
		m.tickDisplay(now, st)
	case *inputStage:
		m.tickInput(now, st)
	case *resultStage:
		m.tickResult(now, st)
	case *victoryStage:
		m.tickEnd(now, st.cue)
	case *deathStage:
		m.tickEnd(now, st.cue)
	default:
		m.log.Log("state", "unexpected phase %v, returning to difficulty select", m.s.Phase())
		m.s.reset()
		m.enter(now, &selectStage{holding: true, holdUntil: now + ms(m.rules.RecoverPause)})
	}

	m.refresh(false)
}

// enter switches stage: outputs cleared, entry time stamped, display told
func (m *Machine) enter(now uint32, st stage) {
	m.out.SetColors(0)
	m.out.StopTone()
	m.s.stage = st
	m.s.PhaseEntry = now
	m.log.Log("state", "-> %s", st.phase())
	m.refresh(true)
}

func (m *Machine) refresh(force bool) {
	snap := m.Snapshot()
	if !force && m.shownOnce && snap == m.shown {
		return
	}
	m.shown = snap
	m.shownOnce = true
	m.display.Show(snap)
}

func (m *Machine) fanfare(c Cue) *CuePlayer {
	if !m.rules.Fanfare {
		return nil
	}
	return NewCuePlayer(c)
}

func (m *Machine) tickBoot(now uint32) {
	m.s.reset()
	m.enter(now, &selectStage{cue: m.fanfare(cueBoot)})
}

func (m *Machine) tickSelect(now uint32, st *selectStage) {
	if st.holding {
		if !After(now, st.holdUntil) {
			return
		}
		st.holding = false
	}
	st.cue.Step(now, m.out)

	if m.s.DifficultyLocked {
		return
	}

	prev := m.s.Difficulty
	m.s.Difficulty = m.sel.Update(m.in.Analog(ChannelPot))
	if m.s.Difficulty != prev {
		m.log.Log("difficulty", "%d -> %d (avg=%d)", prev, m.s.Difficulty, m.sel.Average())
	}

	hold := ms(m.rules.LongPress)
	for i := 0; i < NumColors; i++ {
		b := m.in.Button(i)
		if b.Current && now-b.Changed >= hold {
			m.s.DifficultyLocked = true
			m.log.Log("difficulty", "locked at %d by %s", m.s.Difficulty, Color(i))
			m.enterIntro(now, nil)
			return
		}
	}
}

// enterIntro draws a fresh pattern for the current level and queues the
// intro cue, led by the previous round's result beep if any.
func (m *Machine) enterIntro(now uint32, lead Cue) {
	n := m.rules.PatternLength(m.s.Level, m.s.Difficulty)
	m.s.Pattern = m.gen.Generate(n)

	var sweep Cue
	if m.s.Level == 1 {
		sweep = cueSweep()
	}
	if !m.rules.Fanfare {
		lead, sweep = nil, nil
	}
	cue := join(lead, pause(ms(m.rules.IntroPause)), sweep)

	m.enter(now, &introStage{cue: NewCuePlayer(cue)})
	m.log.Log("game", "Level %d. Lives: %d. Score: %d", m.s.Level, m.s.Lives, m.s.Score)
	m.dump()
}

func (m *Machine) tickIntro(now uint32, st *introStage) {
	st.cue.Step(now, m.out)
	if !st.cue.Done() {
		return
	}
	m.enter(now, &displayStage{playback: NewPlayback(m.s.Pattern, m.s.Difficulty, now)})
}

func (m *Machine) tickDisplay(now uint32, st *displayStage) {
	if !st.logged {
		names := make([]string, len(m.s.Pattern))
		for i, c := range m.s.Pattern {
			names[i] = c.String()
		}
		m.log.Log("pattern", "displaying: %s", strings.Join(names, ", "))
		st.logged = true
	}

	if st.playback.Done() {
		m.log.Log("pattern", "display complete, waiting for input")
		m.enter(now, &inputStage{judge: NewJudge(m.s.Pattern, m.s.Difficulty)})
		return
	}
	st.playback.Step(now, m.out)
}

func (m *Machine) tickInput(now uint32, st *inputStage) {
	if st.judge.Done() {
		m.enter(now, &resultStage{allCorrect: st.judge.AllCorrect()})
		return
	}
	if p, ok := st.judge.Step(now, m.in, m.out); ok {
		m.log.Log("input", "%s pressed. Index: %d, Expected: %s, Correct: %v",
			p.Pressed, p.Index, p.Expected, p.Correct)
	}
}

func (m *Machine) tickResult(now uint32, st *resultStage) {
	if st.allCorrect {
		gained := uint32(10 * m.s.Level * m.s.Difficulty)
		m.s.Score += gained
		m.log.Log("result", "SUCCESS! Level %d completed, +%d, score %d", m.s.Level, gained, m.s.Score)

		if m.s.Level+1 > m.rules.MaxLevel {
			m.enter(now, &victoryStage{cue: m.fanfare(cueVictory())})
			m.log.Log("game", "Congratulations! Final Score: %d", m.s.Score)
			m.dump()
			return
		}
		m.s.Level++
		m.enterIntro(now, cueSuccess)
		return
	}

	if m.s.Lives > 0 {
		m.s.Lives--
	}
	m.log.Log("result", "FAIL! Lives remaining: %d", m.s.Lives)

	if m.s.Lives == 0 {
		m.enter(now, &deathStage{cue: m.fanfare(cueDeath())})
		m.log.Log("game", "Game Over! Final Score: %d", m.s.Score)
		m.dump()
		return
	}
	m.enterIntro(now, cueFail)
}

// tickEnd plays out the ending cue and restarts on any press
func (m *Machine) tickEnd(now uint32, cue *CuePlayer) {
	cue.Step(now, m.out)
	for i := 0; i < NumColors; i++ {
		if m.in.Button(i).Rising() {
			m.log.Log("game", "restart by %s", Color(i))
			m.s.reset()
			m.enter(now, &selectStage{})
			return
		}
	}
}

// DumpState renders the session as a multi-line report
func (m *Machine) DumpState() string {
	var b strings.Builder
	s := &m.s
	fmt.Fprintf(&b, "State: %s (since %d ms)\n", s.Phase(), s.PhaseEntry)
	fmt.Fprintf(&b, "Level: %d / %d\n", s.Level, m.rules.MaxLevel)
	fmt.Fprintf(&b, "Lives: %d / %d\n", s.Lives, InitialLives)
	fmt.Fprintf(&b, "Score: %d\n", s.Score)
	fmt.Fprintf(&b, "Difficulty: %d (locked=%v)\n", s.Difficulty, s.DifficultyLocked)
	fmt.Fprintf(&b, "Pattern: %v (cursor %d)\n", s.Pattern, s.PatternCursor())
	for i := 0; i < NumColors; i++ {
		btn := m.in.Button(i)
		fmt.Fprintf(&b, "BTN %s: current=%v previous=%v\n", Color(i), btn.Current, btn.Previous)
	}
	for ch := 0; ch < NumChannels; ch++ {
		fmt.Fprintf(&b, "ADC %d: %d / 1023\n", ch, m.in.Analog(ch))
	}
	return b.String()
}

func (m *Machine) dump() {
	for _, line := range strings.Split(strings.TrimRight(m.DumpState(), "\n"), "\n") {
		m.log.Log("dump", "%s", line)
	}
}
