package speech

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// EncodeWAV writes rec as a mono 16-bit PCM wave file.
func EncodeWAV(w io.WriteSeeker, rec *Recording) error {
	if rec == nil || rec.SampleRate <= 0 {
		return fmt.Errorf("encode wav: invalid recording")
	}

	enc := wav.NewEncoder(w, rec.SampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rec.SampleRate},
		SourceBitDepth: 16,
		Data:           make([]int, len(rec.Samples)),
	}
	for i, s := range rec.Samples {
		buf.Data[i] = int(s)
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav: %w", err)
	}
	return nil
}
