package speech

import (
	"math"
	"time"
)

// EndpointConfig controls when a capture starts and stops.
type EndpointConfig struct {
	SampleRate      int
	FrameSize       int
	AmbientDuration time.Duration
	PauseThreshold  time.Duration
	PhraseLimit     time.Duration
	WaitTimeout     time.Duration
	// EnergyRatio scales the ambient level into the speech threshold.
	EnergyRatio float64
	EnergyFloor float64
}

func DefaultEndpointConfig() EndpointConfig {
	return EndpointConfig{
		SampleRate:      16000,
		FrameSize:       1024,
		AmbientDuration: time.Second,
		PauseThreshold:  800 * time.Millisecond,
		PhraseLimit:     30 * time.Second,
		WaitTimeout:     10 * time.Second,
		EnergyRatio:     1.5,
		EnergyFloor:     50,
	}
}

const initialEnergyThreshold = 300

// Endpointer decides from frame energy where a spoken phrase begins and
// ends. It is fed frames by a Recorder and holds no device state.
type Endpointer struct {
	cfg       EndpointConfig
	threshold float64

	started bool
	waited  int
	silent  int
	lead    []int16
	samples []int16
}

func NewEndpointer(cfg EndpointConfig) *Endpointer {
	return &Endpointer{cfg: cfg, threshold: initialEnergyThreshold}
}

func (e *Endpointer) Threshold() float64 {
	return e.threshold
}

// Calibrate moves the threshold toward the ambient level of frame with
// damping so a single loud frame cannot dominate.
func (e *Endpointer) Calibrate(frame []int16) {
	if len(frame) == 0 || e.cfg.SampleRate <= 0 {
		return
	}
	secs := float64(len(frame)) / float64(e.cfg.SampleRate)
	damping := math.Pow(0.15, secs)
	target := rms(frame) * e.cfg.EnergyRatio
	e.threshold = e.threshold*damping + target*(1-damping)
	if e.threshold < e.cfg.EnergyFloor {
		e.threshold = e.cfg.EnergyFloor
	}
}

// Push feeds one frame. done reports that the phrase is complete; err is
// ErrNoSpeech when nothing louder than the threshold arrived in time.
func (e *Endpointer) Push(frame []int16) (done bool, err error) {
	energy := rms(frame)

	if !e.started {
		if energy <= e.threshold {
			e.waited += len(frame)
			e.lead = append(e.lead[:0], frame...)
			if e.cfg.WaitTimeout > 0 && e.waited >= e.samplesFor(e.cfg.WaitTimeout) {
				return true, ErrNoSpeech
			}
			return false, nil
		}
		e.started = true
		e.samples = append(e.samples, e.lead...)
	}

	e.samples = append(e.samples, frame...)
	if energy > e.threshold {
		e.silent = 0
	} else {
		e.silent += len(frame)
	}

	if e.silent >= e.samplesFor(e.cfg.PauseThreshold) {
		return true, nil
	}
	if e.cfg.PhraseLimit > 0 && len(e.samples) >= e.samplesFor(e.cfg.PhraseLimit) {
		return true, nil
	}
	return false, nil
}

func (e *Endpointer) Started() bool {
	return e.started
}

// Recording returns what was captured since speech started.
func (e *Endpointer) Recording() *Recording {
	out := make([]int16, len(e.samples))
	copy(out, e.samples)
	return &Recording{Samples: out, SampleRate: e.cfg.SampleRate}
}

func (e *Endpointer) samplesFor(d time.Duration) int {
	return int(d.Seconds() * float64(e.cfg.SampleRate))
}

func rms(frame []int16) float64 {
	if len(frame) == 0 {
		return 0
	}
	var sum float64
	for _, s := range frame {
		v := float64(s)
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(frame)))
}
