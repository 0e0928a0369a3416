package meter

// Phase is one of the four mutually exclusive session screens.
type Phase int

const (
	PhaseWaiting Phase = iota
	PhaseInstructions
	PhaseReading
	PhaseResult
)

func (p Phase) String() string {
	switch p {
	case PhaseInstructions:
		return "Instructions"
	case PhaseReading:
		return "Reading"
	case PhaseResult:
		return "Result"
	default:
		return "Waiting"
	}
}

// ShowsGauge reports whether the dial is on screen in this phase.
func (p Phase) ShowsGauge() bool {
	return p == PhaseReading || p == PhaseResult
}
