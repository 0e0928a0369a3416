package meter

import "breathalyzer.klederson.com/internal/config"

// Condition is what the machine checks each tick to leave the current phase.
type Condition int

const (
	// OnTrigger fires when a start press is pending.
	OnTrigger Condition = iota
	// OnTimeout fires when the phase timer reaches its duration.
	OnTimeout
)

// Action runs against the animation state when a transition is taken.
type Action func(a *Animation)

// Transition is one row of the machine's table.
type Transition struct {
	From     Phase
	When     Condition
	Duration int // Ticks, only for OnTimeout
	To       Phase
	Actions  []Action
}

// Change describes a transition taken during a tick.
type Change struct {
	From, To Phase
}

// DefaultTable is the breathalyzer session cycle.
func DefaultTable() []Transition {
	return []Transition{
		{From: PhaseWaiting, When: OnTrigger, To: PhaseInstructions},
		{From: PhaseInstructions, When: OnTimeout, Duration: config.InstructionsTicks, To: PhaseReading,
			Actions: []Action{resetReading}},
		{From: PhaseReading, When: OnTimeout, Duration: config.ReadingTicks, To: PhaseResult,
			Actions: []Action{freezeResult}},
		{From: PhaseResult, When: OnTimeout, Duration: config.ResultTicks, To: PhaseWaiting,
			Actions: []Action{resetWaitingPulse}},
	}
}

func resetReading(a *Animation) {
	a.Current = 0
	a.Target.Store(0)
	a.MaxReached = 0
}

func freezeResult(a *Animation) {
	a.Current = a.MaxReached
}

func resetWaitingPulse(a *Animation) {
	a.WaitingPulse = 0
}

// Machine is the session state machine. Timer counts ticks spent in the
// current phase and is reset on every transition.
type Machine struct {
	phase Phase
	timer int
	table map[Phase]Transition
}

// NewMachine builds a machine from a transition table, starting in Waiting.
// Each phase has exactly one outgoing row; later rows replace earlier ones.
func NewMachine(table []Transition) *Machine {
	m := &Machine{
		phase: PhaseWaiting,
		table: make(map[Phase]Transition, len(table)),
	}
	for _, t := range table {
		m.table[t.From] = t
	}
	return m
}

// Phase returns the active phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Timer returns ticks elapsed in the active phase.
func (m *Machine) Timer() int {
	return m.timer
}

// Duration returns the configured length of a timed phase, or 0.
func (m *Machine) Duration(p Phase) int {
	t, ok := m.table[p]
	if !ok || t.When != OnTimeout {
		return 0
	}
	return t.Duration
}

// Remaining returns the seconds left in the active phase, never negative.
func (m *Machine) Remaining() float64 {
	left := m.Duration(m.phase) - m.timer
	if left < 0 {
		left = 0
	}
	return float64(left) / float64(config.TargetFPS)
}

// Step advances the machine one tick. triggered is the consumed start press;
// it only matters while waiting. Returns the transition taken, if any.
func (m *Machine) Step(triggered bool, a *Animation) (Change, bool) {
	t, ok := m.table[m.phase]
	if !ok {
		return Change{}, false
	}

	switch t.When {
	case OnTrigger:
		if !triggered {
			return Change{}, false
		}
	case OnTimeout:
		m.timer++
		if m.timer < t.Duration {
			return Change{}, false
		}
	}

	ch := Change{From: m.phase, To: t.To}
	m.phase = t.To
	m.timer = 0
	for _, act := range t.Actions {
		act(a)
	}
	return ch, true
}
