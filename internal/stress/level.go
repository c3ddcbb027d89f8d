package stress

import "fmt"

// Level is the fused stress classification, ordered from calmest to
// most stressed.
type Level int

const (
	Low Level = iota
	Normal
	Elevated
	High
)

func (l Level) String() string {
	switch l {
	case Low:
		return "low"
	case Normal:
		return "normal"
	case Elevated:
		return "elevated"
	case High:
		return "high"
	}
	return "unknown"
}

// Score maps the level onto [0,1] for fusion arithmetic.
func (l Level) Score() float64 {
	switch l {
	case Low:
		return 0
	case Normal:
		return 0.33
	case Elevated:
		return 0.66
	case High:
		return 1.0
	}
	return 0
}

// BreakMultiplier is the suggested break-length multiplier for the level.
func (l Level) BreakMultiplier() float64 {
	switch l {
	case Elevated:
		return 1.25
	case High:
		return 1.5
	}
	return 1.0
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	switch string(text) {
	case "low":
		*l = Low
	case "normal":
		*l = Normal
	case "elevated":
		*l = Elevated
	case "high":
		*l = High
	default:
		return fmt.Errorf("unknown stress level %q", string(text))
	}
	return nil
}

// ClassifyHRV classifies heart-rate variability (ms). Higher HRV means
// a calmer autonomic state.
func ClassifyHRV(hrv float64) Level {
	switch {
	case hrv >= 70:
		return Low
	case hrv >= 50:
		return Normal
	case hrv >= 30:
		return Elevated
	default:
		return High
	}
}

// ClassifyHeartRate classifies heart rate relative to the resting rate.
// The resting rate is floored at 50 bpm to keep the ratio sane.
func ClassifyHeartRate(hr, resting float64) Level {
	if resting < 50 {
		resting = 50
	}
	ratio := hr / resting
	switch {
	case ratio < 1.1:
		return Low
	case ratio < 1.3:
		return Normal
	case ratio < 1.5:
		return Elevated
	default:
		return High
	}
}

// Fuse combines the two classifications, weighting HRV higher as the
// more reliable signal.
func Fuse(hrvLevel, hrLevel Level) Level {
	score := 0.7*hrvLevel.Score() + 0.3*hrLevel.Score()
	switch {
	case score < 0.2:
		return Low
	case score < 0.5:
		return Normal
	case score < 0.75:
		return Elevated
	default:
		return High
	}
}
