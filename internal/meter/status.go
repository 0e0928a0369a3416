package meter

// Band is a threshold range of the reading shared by the status colour and
// the result label.
type Band int

const (
	BandSober Band = iota
	BandCaution
	BandImpaired
	BandDanger
)

// Band thresholds in ‰ BAC. Lower bound inclusive, upper exclusive.
const (
	CautionThreshold  = 0.5
	ImpairedThreshold = 1.5
	DangerThreshold   = 2.0
)

// Classify maps a reading onto its band.
func Classify(v float64) Band {
	switch {
	case v < CautionThreshold:
		return BandSober
	case v < ImpairedThreshold:
		return BandCaution
	case v < DangerThreshold:
		return BandImpaired
	default:
		return BandDanger
	}
}

// Label is the verdict shown on the result screen.
func (b Band) Label() string {
	switch b {
	case BandCaution:
		return "ATTENZIONE"
	case BandImpaired:
		return "ALTERATO"
	case BandDanger:
		return "PERICOLOSO"
	default:
		return "SOBRIO"
	}
}

func (b Band) String() string {
	switch b {
	case BandCaution:
		return "mid"
	case BandImpaired:
		return "high"
	case BandDanger:
		return "max"
	default:
		return "low"
	}
}

// ReadingLabel is shown while the reading is still in progress.
const ReadingLabel = "LETTURA IN CORSO..."
