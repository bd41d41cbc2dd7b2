package game

// Phase is one stage of a game session
type Phase int

const (
	PhaseBoot Phase = iota
	PhaseDifficultySelect
	PhaseLevelIntro
	PhasePatternDisplay
	PhaseInputWait
	PhaseResultProcess
	PhaseVictory
	PhaseGameDeath
	PhaseUnknown
)

var phaseNames = [...]string{
	PhaseBoot:             "BOOT",
	PhaseDifficultySelect: "DIFFICULTY_SELECT",
	PhaseLevelIntro:       "LEVEL_INTRO",
	PhasePatternDisplay:   "PATTERN_DISPLAY",
	PhaseInputWait:        "INPUT_WAIT",
	PhaseResultProcess:    "RESULT_PROCESS",
	PhaseVictory:          "VICTORY",
	PhaseGameDeath:        "GAME_DEATH",
	PhaseUnknown:          "UNKNOWN",
}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "UNKNOWN"
}

// stage carries the data that only exists inside one phase
type stage interface {
	phase() Phase
}

type bootStage struct{}

type selectStage struct {
	cue       *CuePlayer
	holding   bool
	holdUntil uint32 // recovering from a bad phase: ignore everything until then
}

type introStage struct {
	cue *CuePlayer
}

type displayStage struct {
	playback *Playback
	logged   bool
}

type inputStage struct {
	judge *Judge
}

type resultStage struct {
	allCorrect bool
}

type victoryStage struct {
	cue *CuePlayer
}

type deathStage struct {
	cue *CuePlayer
}

func (*bootStage) phase() Phase    { return PhaseBoot }
func (*selectStage) phase() Phase  { return PhaseDifficultySelect }
func (*introStage) phase() Phase   { return PhaseLevelIntro }
func (*displayStage) phase() Phase { return PhasePatternDisplay }
func (*inputStage) phase() Phase   { return PhaseInputWait }
func (*resultStage) phase() Phase  { return PhaseResultProcess }
func (*victoryStage) phase() Phase { return PhaseVictory }
func (*deathStage) phase() Phase   { return PhaseGameDeath }

// Session is the mutable game aggregate. Per-phase progress (playback
// slot, recall cursor, verdict) is held by the active stage.
type Session struct {
	PhaseEntry       uint32
	Level            int
	Score            uint32
	Lives            int
	Difficulty       int
	DifficultyLocked bool
	Pattern          []Color

	stage stage
}

// Phase derives the phase from the active stage
func (s *Session) Phase() Phase {
	if s.stage == nil {
		return PhaseUnknown
	}
	return s.stage.phase()
}

// PatternCursor is the playback position in PATTERN_DISPLAY and the recall
// position in INPUT_WAIT; zero elsewhere.
func (s *Session) PatternCursor() int {
	switch st := s.stage.(type) {
	case *displayStage:
		return st.playback.Cursor()
	case *inputStage:
		return st.judge.Cursor()
	}
	return 0
}

// InputAllCorrect is the running recall verdict in INPUT_WAIT and the final
// one in RESULT_PROCESS. Other phases report true.
func (s *Session) InputAllCorrect() bool {
	switch st := s.stage.(type) {
	case *inputStage:
		return st.judge.AllCorrect()
	case *resultStage:
		return st.allCorrect
	}
	return true
}

// reset returns to level 1 with full lives and an unlocked difficulty
func (s *Session) reset() {
	s.Level = 1
	s.Score = 0
	s.Lives = InitialLives
	s.DifficultyLocked = false
	s.Pattern = nil
}

// Snapshot is the read-only status handed to the display
type Snapshot struct {
	Phase            Phase
	Level            int
	MaxLevel         int
	Lives            int
	Score            uint32
	Difficulty       int
	DifficultyLocked bool
	PatternCursor    int
	PatternLength    int
}
