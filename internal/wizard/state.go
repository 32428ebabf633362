package wizard

// State is an immutable snapshot of the questionnaire: the answers plus the
// step the user is currently on. The position is held as a step identifier
// rather than an index so that a change to an earlier answer, which can
// reshape the derived sequence, never silently changes the meaning of the
// current position.
type State struct {
	Answers Answers
	Current Step
}

// NewState returns the state of a freshly started questionnaire.
func NewState() State {
	return State{
		Answers: Answers{}, //nolint:exhaustruct // empty answer set by design
		Current: StepType,
	}
}

// Sequence derives the step sequence for the current answers.
func (s State) Sequence(currentYear int) []Step {
	return Sequence(s.Answers, currentYear)
}

// Normalize re-anchors the current step against the freshly derived sequence.
// If the step is no longer part of the sequence, the position moves to the
// nearest surviving predecessor in catalog order.
func (s State) Normalize(currentYear int) State {
	seq := s.Sequence(currentYear)
	if indexOf(seq, s.Current) >= 0 {
		return s
	}
	want := catalogIndex[s.Current]
	nearest := seq[0]
	for _, step := range seq {
		if catalogIndex[step] > want {
			break
		}
		nearest = step
	}
	s.Current = nearest
	return s
}

// CanAdvance reports whether the current step's answers are valid.
func (s State) CanAdvance(currentYear int) bool {
	return StepValid(s.Current, s.Answers, currentYear)
}

// Advance moves to the next step in the derived sequence. Advancing from the
// final step is a no-op.
func (s State) Advance(currentYear int) State {
	seq := s.Sequence(currentYear)
	i := indexOf(seq, s.Current)
	if i < 0 {
		return s.Normalize(currentYear).Advance(currentYear)
	}
	if i < len(seq)-1 {
		s.Current = seq[i+1]
	}
	return s
}

// Retreat moves to the previous step in the derived sequence. Retreating from
// the first step is a no-op.
func (s State) Retreat(currentYear int) State {
	seq := s.Sequence(currentYear)
	i := indexOf(seq, s.Current)
	if i < 0 {
		return s.Normalize(currentYear)
	}
	if i > 0 {
		s.Current = seq[i-1]
	}
	return s
}

// Apply routes a field update through the answer reducer and renormalizes the
// position, since the update may have reshaped the sequence.
func (s State) Apply(field, value string, currentYear int) State {
	s.Answers = Apply(s.Answers, field, value)
	return s.Normalize(currentYear)
}

// Position returns the 1-based position of the current step and the sequence
// length, used for the progress indicator.
func (s State) Position(currentYear int) (int, int) {
	seq := s.Sequence(currentYear)
	i := indexOf(seq, s.Current)
	if i < 0 {
		i = 0
	}
	return i + 1, len(seq)
}

func indexOf(seq []Step, step Step) int {
	for i, s := range seq {
		if s == step {
			return i
		}
	}
	return -1
}
