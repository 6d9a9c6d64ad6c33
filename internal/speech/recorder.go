package speech

import (
	"context"
	"errors"
	"fmt"

	"github.com/gordonklaus/portaudio"

	"vox-translate/internal/logger"
)

// Microphone captures one phrase from the default input device.
type Microphone struct {
	cfg    EndpointConfig
	logger logger.Logger
}

func NewMicrophone(cfg EndpointConfig, log logger.Logger) *Microphone {
	def := DefaultEndpointConfig()
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = def.SampleRate
	}
	if cfg.FrameSize <= 0 {
		cfg.FrameSize = def.FrameSize
	}
	if cfg.EnergyRatio <= 0 {
		cfg.EnergyRatio = def.EnergyRatio
	}
	return &Microphone{cfg: cfg, logger: logger.OrNoOp(log)}
}

func (m *Microphone) Listen(ctx context.Context) (*Recording, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoInputDevice, err)
	}
	defer portaudio.Terminate()

	frame := make([]int16, m.cfg.FrameSize)
	stream, err := portaudio.OpenDefaultStream(1, 0, float64(m.cfg.SampleRate), len(frame), frame)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoInputDevice, err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return nil, fmt.Errorf("start input stream: %w", err)
	}
	defer stream.Stop()

	ep := NewEndpointer(m.cfg)

	ambientFrames := int(m.cfg.AmbientDuration.Seconds() * float64(m.cfg.SampleRate) / float64(len(frame)))
	for i := 0; i < ambientFrames; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := readFrame(stream); err != nil {
			return nil, err
		}
		ep.Calibrate(frame)
	}

	m.logger.Debug("Microphone", "ambient noise calibrated", map[string]interface{}{
		"threshold": ep.Threshold(),
		"frames":    ambientFrames,
	})

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := readFrame(stream); err != nil {
			return nil, err
		}
		wasStarted := ep.Started()
		done, err := ep.Push(frame)
		if err != nil {
			return nil, err
		}
		if !wasStarted && ep.Started() {
			m.logger.Debug("Microphone", "speech started", map[string]interface{}{
				"threshold": ep.Threshold(),
			})
		}
		if done {
			break
		}
	}

	rec := ep.Recording()
	m.logger.Debug("Microphone", "phrase captured", map[string]interface{}{
		"duration": rec.Duration().String(),
		"samples":  len(rec.Samples),
	})
	return rec, nil
}

func readFrame(stream *portaudio.Stream) error {
	err := stream.Read()
	if err == nil || errors.Is(err, portaudio.InputOverflowed) {
		return nil
	}
	return fmt.Errorf("read input stream: %w", err)
}
