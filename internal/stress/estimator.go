package stress

import (
	"sync"
	"time"

	"github.com/soracht/FocusPulse/internal/biometric"
)

// Estimator owns the biometric histories and derives the published
// stress level. Samples arrive asynchronously from the monitor feed, so
// every mutation is serialized behind the mutex.
type Estimator struct {
	mu        sync.Mutex
	resting   float64
	heartRate *biometric.History
	hrv       *biometric.History
	level     Level
}

func NewEstimator(restingHeartRate float64) *Estimator {
	return &Estimator{
		resting:   restingHeartRate,
		heartRate: biometric.NewHistory(biometric.HeartRateCapacity),
		hrv:       biometric.NewHistory(biometric.HRVCapacity),
		level:     Normal,
	}
}

// AddHeartRate ingests a heart-rate sample and returns the recomputed
// level. Malformed samples are dropped and the last known level stands.
func (e *Estimator) AddHeartRate(s biometric.Sample) Level {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !validSample(s) {
		return e.level
	}
	e.heartRate.Add(s)
	e.recompute()
	return e.level
}

// AddHRV ingests an HRV sample and returns the recomputed level.
func (e *Estimator) AddHRV(s biometric.Sample) Level {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !validSample(s) {
		return e.level
	}
	e.hrv.Add(s)
	e.recompute()
	return e.level
}

// Level returns the latest fused classification. Normal until the first
// sample arrives.
func (e *Estimator) Level() Level {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.level
}

func (e *Estimator) RestingHeartRate() float64 {
	return e.resting
}

// recompute fuses the latest reading of each signal. Until both signals
// have reported, the one that has stands alone.
func (e *Estimator) recompute() {
	hrvSample, hasHRV := e.hrv.Latest()
	hrSample, hasHR := e.heartRate.Latest()

	switch {
	case hasHRV && hasHR:
		e.level = Fuse(ClassifyHRV(hrvSample.Value), ClassifyHeartRate(hrSample.Value, e.resting))
	case hasHRV:
		e.level = ClassifyHRV(hrvSample.Value)
	case hasHR:
		e.level = ClassifyHeartRate(hrSample.Value, e.resting)
	}
}

func validSample(s biometric.Sample) bool {
	return s.Value > 0 && !s.Timestamp.IsZero()
}

// FocusScore rates heart-rate stability over a completed session window
// on a 0-100 scale. Lower variance and closeness to the resting rate
// score higher. With no samples in the window the neutral 75 applies.
func (e *Estimator) FocusScore(start, end time.Time) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	samples := e.heartRate.Between(start, end)
	if len(samples) == 0 {
		return 75
	}

	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = s.Value
	}

	resting := e.resting
	if resting < 50 {
		resting = 50
	}

	stability := 100 - 5*stdDev(values)
	elevationPenalty := (mean(values)/resting - 1.0) * 30
	if elevationPenalty < 0 {
		elevationPenalty = 0
	}

	return clamp(stability-elevationPenalty, 0, 100)
}
