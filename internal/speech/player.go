package speech

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	beepwav "github.com/gopxl/beep/v2/wav"

	"vox-translate/internal/logger"
)

const speakerRate = beep.SampleRate(44100)

// Speaker plays clips on the default output device, one at a time. Each clip
// goes through a uniquely named temp file that is removed after playback.
type Speaker struct {
	tempDir string
	logger  logger.Logger

	mu      sync.Mutex
	once    sync.Once
	initErr error
}

func NewSpeaker(tempDir string, log logger.Logger) *Speaker {
	return &Speaker{tempDir: tempDir, logger: logger.OrNoOp(log)}
}

func (s *Speaker) Play(ctx context.Context, a *Audio) error {
	if a == nil || len(a.Data) == 0 {
		return ErrEmptyAudio
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path, cleanup, err := WriteArtifact(s.tempDir, a)
	if err != nil {
		return err
	}
	defer cleanup()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open audio artifact: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(a.Format) {
	case "wav":
		streamer, format, err = beepwav.Decode(f)
	default:
		streamer, format, err = mp3.Decode(f)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("decode %s audio: %w", a.Format, err)
	}
	defer streamer.Close()

	s.once.Do(func() {
		s.initErr = speaker.Init(speakerRate, speakerRate.N(time.Second/10))
	})
	if s.initErr != nil {
		return fmt.Errorf("init speaker: %w", s.initErr)
	}

	var src beep.Streamer = streamer
	if format.SampleRate != speakerRate {
		src = beep.Resample(4, format.SampleRate, speakerRate, streamer)
	}

	s.logger.Debug("Speaker", "playing clip", map[string]interface{}{
		"format": a.Format,
		"size":   humanize.Bytes(uint64(len(a.Data))),
	})

	done := make(chan struct{})
	speaker.Play(beep.Seq(src, beep.Callback(func() { close(done) })))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}

// WriteArtifact stores a clip under a collision-free name in dir (or the
// system temp dir) and returns a cleanup that removes it.
func WriteArtifact(dir string, a *Audio) (string, func(), error) {
	if dir == "" {
		dir = os.TempDir()
	}
	ext := a.Format
	if ext == "" {
		ext = "mp3"
	}
	path := filepath.Join(dir, "vox-"+uuid.NewString()+"."+ext)
	if err := os.WriteFile(path, a.Data, 0o600); err != nil {
		return "", func() {}, fmt.Errorf("write audio artifact: %w", err)
	}
	return path, func() { _ = os.Remove(path) }, nil
}
