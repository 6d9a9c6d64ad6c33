// Package speech covers both directions between text and voice: synthesis
// and playback for reading text aloud, microphone capture and recognition
// for dictation.
package speech

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUnrecognizedSpeech means audio was captured but no words came out.
	ErrUnrecognizedSpeech = errors.New("speech not recognized")
	// ErrServiceUnavailable means the synthesis or recognition backend failed.
	ErrServiceUnavailable = errors.New("speech service unavailable")
	// ErrNoSpeech means nobody spoke before the listen timeout.
	ErrNoSpeech      = fmt.Errorf("%w: no speech before timeout", ErrUnrecognizedSpeech)
	ErrNoInputDevice = errors.New("no audio input device")
	ErrEmptyAudio    = errors.New("audio is empty")
)

// Audio is an encoded clip, typically mp3.
type Audio struct {
	Data   []byte
	Format string
}

// Recording is mono 16-bit PCM captured from the microphone.
type Recording struct {
	Samples    []int16
	SampleRate int
}

func (r *Recording) Duration() time.Duration {
	if r == nil || r.SampleRate <= 0 {
		return 0
	}
	return time.Duration(len(r.Samples)) * time.Second / time.Duration(r.SampleRate)
}

type Synthesizer interface {
	Synthesize(ctx context.Context, text, lang string) (*Audio, error)
}

type Player interface {
	Play(ctx context.Context, audio *Audio) error
}

type Recorder interface {
	// Listen blocks until the speaker pauses, the phrase limit is hit or
	// ctx is cancelled.
	Listen(ctx context.Context) (*Recording, error)
}

type Recognizer interface {
	Recognize(ctx context.Context, rec *Recording, lang string) (string, error)
}
