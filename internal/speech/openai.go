package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAISynthesizer reads text aloud with the OpenAI speech endpoint. The
// voice models are multilingual, so lang is only used for logging upstream.
type OpenAISynthesizer struct {
	client *openai.Client
	model  openai.SpeechModel
	voice  openai.SpeechVoice
}

func NewOpenAISynthesizer(client *openai.Client, model, voice string) *OpenAISynthesizer {
	if model == "" {
		model = string(openai.TTSModel1)
	}
	if voice == "" {
		voice = string(openai.VoiceAlloy)
	}
	return &OpenAISynthesizer{
		client: client,
		model:  openai.SpeechModel(model),
		voice:  openai.SpeechVoice(voice),
	}
}

func (s *OpenAISynthesizer) Synthesize(ctx context.Context, text, _ string) (*Audio, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyAudio
	}

	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          s.model,
		Input:          text,
		Voice:          s.voice,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("read openai speech: %w", err)
	}
	return &Audio{Data: data, Format: "mp3"}, nil
}

// WhisperRecognizer transcribes recordings with the OpenAI transcription
// endpoint. It is called once per capture with the caller's language hint.
type WhisperRecognizer struct {
	client  *openai.Client
	model   string
	tempDir string
}

func NewWhisperRecognizer(client *openai.Client, model, tempDir string) *WhisperRecognizer {
	if model == "" {
		model = openai.Whisper1
	}
	return &WhisperRecognizer{client: client, model: model, tempDir: tempDir}
}

func (w *WhisperRecognizer) Recognize(ctx context.Context, rec *Recording, lang string) (string, error) {
	if rec == nil || len(rec.Samples) == 0 {
		return "", ErrUnrecognizedSpeech
	}

	wavData, err := encodeWAVBytes(w.tempDir, rec)
	if err != nil {
		return "", err
	}

	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.model,
		FilePath: "speech.wav",
		Reader:   bytes.NewReader(wavData),
		Language: whisperLang(lang),
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", ErrUnrecognizedSpeech
	}
	return text, nil
}

// whisperLang reduces "vi-VN" or "zh-cn" to the ISO 639-1 code Whisper takes.
func whisperLang(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexByte(code, '-'); i > 0 {
		return code[:i]
	}
	return code
}

func encodeWAVBytes(dir string, rec *Recording) ([]byte, error) {
	f, err := os.CreateTemp(dir, "vox-capture-*.wav")
	if err != nil {
		return nil, fmt.Errorf("create capture artifact: %w", err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if err := EncodeWAV(f, rec); err != nil {
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return io.ReadAll(f)
}
