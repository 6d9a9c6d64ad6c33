package app

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vox-translate/internal/catalog"
	"vox-translate/internal/speech"
	"vox-translate/internal/translate"
)

// inlineDispatcher runs everything on the calling goroutine.
type inlineDispatcher struct{}

func (inlineDispatcher) Go(f func()) { f() }
func (inlineDispatcher) Do(f func()) { f() }

// queueDispatcher holds background work until the test runs it.
type queueDispatcher struct {
	queue []func()
}

func (q *queueDispatcher) Go(f func()) { q.queue = append(q.queue, f) }
func (q *queueDispatcher) Do(f func()) { f() }

type fakeView struct {
	input       string
	output      string
	destination string
	status      string
	statuses    []string
	pickerOpen  bool
	pickerSeed  string
	onSelect    func(catalog.Entry)
}

func (v *fakeView) InputText() string          { return v.input }
func (v *fakeView) SetInputText(text string)   { v.input = text }
func (v *fakeView) OutputText() string         { return v.output }
func (v *fakeView) SetOutputText(text string)  { v.output = text }
func (v *fakeView) SetDestination(name string) { v.destination = name }
func (v *fakeView) SetStatus(status string) {
	v.status = status
	v.statuses = append(v.statuses, status)
}
func (v *fakeView) ShowLanguagePicker(_ *catalog.Catalog, current string, onSelect func(catalog.Entry)) {
	v.pickerOpen = true
	v.pickerSeed = current
	v.onSelect = onSelect
}

type call struct {
	text, source, target string
}

type fakeTranslator struct {
	calls []call
	err   error
}

func (f *fakeTranslator) Translate(_ context.Context, text, source, target string) (translate.Result, error) {
	f.calls = append(f.calls, call{text, source, target})
	if f.err != nil {
		return translate.Result{}, f.err
	}
	return translate.Result{Text: "[" + target + "] " + text, Method: "fake"}, nil
}

type fakeDetector struct {
	lang string
	err  error
}

func (f fakeDetector) Detect(context.Context, string) (translate.Detection, error) {
	return translate.Detection{Language: f.lang, Confidence: 1}, f.err
}

type fakeSynth struct {
	text, lang string
	err        error
}

func (f *fakeSynth) Synthesize(_ context.Context, text, lang string) (*speech.Audio, error) {
	f.text, f.lang = text, lang
	if f.err != nil {
		return nil, f.err
	}
	return &speech.Audio{Data: []byte("mp3"), Format: "mp3"}, nil
}

type fakePlayer struct {
	played int
}

func (f *fakePlayer) Play(context.Context, *speech.Audio) error {
	f.played++
	return nil
}

type fakeRecorder struct {
	err error
}

func (f fakeRecorder) Listen(context.Context) (*speech.Recording, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &speech.Recording{Samples: make([]int16, 160), SampleRate: 16000}, nil
}

type fakeRecognizer struct {
	text string
	lang string
	err  error
}

func (f *fakeRecognizer) Recognize(_ context.Context, _ *speech.Recording, lang string) (string, error) {
	f.lang = lang
	return f.text, f.err
}

type fakeOCR struct {
	text string
	err  error
	data []byte
}

func (f *fakeOCR) ExtractBytes(_ context.Context, data []byte) (string, error) {
	f.data = data
	return f.text, f.err
}

type fixture struct {
	handlers   *Handlers
	view       *fakeView
	session    *Session
	translator *fakeTranslator
	services   *Services
}

func newFixture(t *testing.T, services *Services, dispatch Dispatcher) *fixture {
	t.Helper()
	if services == nil {
		services = &Services{}
	}
	tr := &fakeTranslator{}
	if services.Translator == nil {
		services.Translator = tr
	}
	view := &fakeView{}
	session := NewSession(catalog.Default(), "Tiếng Anh")
	if dispatch == nil {
		dispatch = inlineDispatcher{}
	}
	h := NewHandlers(context.Background(), services, session, view, dispatch, nil, Options{RecognitionLanguage: "vi-VN"})
	return &fixture{handlers: h, view: view, session: session, translator: tr, services: services}
}

func TestHandleTranslate(t *testing.T) {
	t.Run("empty input shows hint without calling backend", func(t *testing.T) {
		f := newFixture(t, nil, nil)
		f.view.input = "   "

		f.handlers.HandleTranslate()

		assert.Equal(t, MsgEmptyInput, f.view.output)
		assert.Empty(t, f.translator.calls)
	})

	t.Run("translates to destination with auto source", func(t *testing.T) {
		f := newFixture(t, nil, nil)
		f.view.input = " xin chào "

		f.handlers.HandleTranslate()

		require.Len(t, f.translator.calls, 1)
		assert.Equal(t, call{"xin chào", "", "en"}, f.translator.calls[0])
		assert.Equal(t, "[en] xin chào", f.view.output)
		assert.Equal(t, "Đã dịch sang Tiếng Anh", f.view.status)
	})

	t.Run("services down", func(t *testing.T) {
		f := newFixture(t, &Services{Translator: &fakeTranslator{err: translate.ErrServiceUnavailable}}, nil)
		f.view.input = "hello"

		f.handlers.HandleTranslate()

		assert.Equal(t, MsgServiceUnavailable, f.view.output)
		assert.Equal(t, StatusReady, f.view.status)
	})

	t.Run("other failure is reported", func(t *testing.T) {
		f := newFixture(t, &Services{Translator: &fakeTranslator{err: errors.New("boom")}}, nil)
		f.view.input = "hello"

		f.handlers.HandleTranslate()

		assert.Contains(t, f.view.output, "boom")
	})

	t.Run("cancelled call leaves output alone", func(t *testing.T) {
		f := newFixture(t, &Services{Translator: &fakeTranslator{err: context.Canceled}}, nil)
		f.view.input = "hello"
		f.view.output = "previous"

		f.handlers.HandleTranslate()

		assert.Equal(t, "previous", f.view.output)
	})
}

func TestHandleTranslateDropsStaleResults(t *testing.T) {
	q := &queueDispatcher{}
	f := newFixture(t, nil, q)

	f.view.input = "first"
	f.handlers.HandleTranslate()
	f.view.input = "second"
	f.handlers.HandleTranslate()
	require.Len(t, q.queue, 2)

	// Newest finishes first, then the older one arrives late.
	q.queue[1]()
	q.queue[0]()

	assert.Equal(t, "[en] second", f.view.output)
}

func TestEmptyInputAfterPendingTranslationResetsStatus(t *testing.T) {
	q := &queueDispatcher{}
	f := newFixture(t, nil, q)

	f.view.input = "hello"
	f.handlers.HandleTranslate()
	assert.Equal(t, StatusTranslating, f.view.status)

	f.view.input = ""
	f.handlers.HandleTranslate()
	q.queue[0]()

	assert.Equal(t, MsgEmptyInput, f.view.output)
	assert.Equal(t, StatusReady, f.view.status)
}

func TestFailedListenIsNotOverwrittenByPendingTranslation(t *testing.T) {
	q := &queueDispatcher{}
	f := newFixture(t, &Services{Recorder: fakeRecorder{err: speech.ErrNoSpeech}, Recognizer: &fakeRecognizer{}}, q)

	f.view.input = "hello"
	f.handlers.HandleTranslate()
	f.handlers.HandleListen()
	require.Len(t, q.queue, 2)

	q.queue[1]()
	q.queue[0]()

	assert.Equal(t, MsgUnrecognized, f.view.output)
	assert.Equal(t, StatusReady, f.view.status)
}

func TestFailedImageIsNotOverwrittenByPendingTranslation(t *testing.T) {
	q := &queueDispatcher{}
	f := newFixture(t, &Services{OCR: &fakeOCR{err: errors.New("blurry")}}, q)

	f.view.input = "hello"
	f.handlers.HandleTranslate()
	f.handlers.HandleImage(&trackingReader{Reader: strings.NewReader("x")}, "scan.png")
	require.Len(t, q.queue, 2)

	q.queue[1]()
	q.queue[0]()

	assert.Contains(t, f.view.output, "blurry")
}

func TestTranslatedStatusNamesDetectedSource(t *testing.T) {
	f := newFixture(t, &Services{Translator: detectingTranslator{detected: "vi"}}, nil)
	f.view.input = "xin chào"

	f.handlers.HandleTranslate()

	assert.Equal(t, "Đã dịch từ Tiếng Việt sang Tiếng Anh", f.view.status)
}

type detectingTranslator struct {
	detected string
}

func (d detectingTranslator) Translate(_ context.Context, text, _, _ string) (translate.Result, error) {
	return translate.Result{Text: text, Method: "fake", DetectedLanguage: d.detected}, nil
}

func TestClearOrphansPendingTranslation(t *testing.T) {
	q := &queueDispatcher{}
	f := newFixture(t, nil, q)

	f.view.input = "hello"
	f.handlers.HandleTranslate()
	f.handlers.HandleClear()
	q.queue[0]()

	assert.Empty(t, f.view.input)
	assert.Empty(t, f.view.output)
	assert.Equal(t, StatusReady, f.view.status)
}

func TestDestinationChange(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.view.input = "hello"

	f.handlers.HandleChooseDestination()
	require.True(t, f.view.pickerOpen)
	assert.Equal(t, "Tiếng Anh", f.view.pickerSeed)

	f.view.onSelect(catalog.Entry{DisplayName: "Tiếng Hàn", Code: "ko"})

	assert.Equal(t, "Tiếng Hàn", f.view.destination)
	assert.Equal(t, "ko", f.session.Destination().Code)
	require.Len(t, f.translator.calls, 1)
	assert.Equal(t, "ko", f.translator.calls[0].target)
	assert.Equal(t, "[ko] hello", f.view.output)
}

func TestDestinationChangeRejectsUnknownEntry(t *testing.T) {
	f := newFixture(t, nil, nil)

	f.handlers.HandleDestinationSelected(catalog.Entry{DisplayName: "Klingon", Code: "tlh"})

	assert.Equal(t, "en", f.session.Destination().Code)
	assert.Empty(t, f.view.destination)
	assert.Empty(t, f.translator.calls)
}

func TestHandleListen(t *testing.T) {
	t.Run("transcript becomes input and is translated", func(t *testing.T) {
		rec := &fakeRecognizer{text: "xin chào"}
		f := newFixture(t, &Services{Recorder: fakeRecorder{}, Recognizer: rec}, nil)

		f.handlers.HandleListen()

		assert.Equal(t, "vi-VN", rec.lang)
		assert.Equal(t, "xin chào", f.view.input)
		assert.Equal(t, "[en] xin chào", f.view.output)
		assert.Contains(t, f.view.statuses, StatusListening)
		assert.Contains(t, f.view.statuses, StatusRecognizing)
	})

	t.Run("unrecognized speech", func(t *testing.T) {
		f := newFixture(t, &Services{Recorder: fakeRecorder{err: speech.ErrNoSpeech}, Recognizer: &fakeRecognizer{}}, nil)

		f.handlers.HandleListen()

		assert.Equal(t, MsgUnrecognized, f.view.output)
		assert.Empty(t, f.translator.calls)
	})

	t.Run("request failure", func(t *testing.T) {
		rec := &fakeRecognizer{err: speech.ErrServiceUnavailable}
		f := newFixture(t, &Services{Recorder: fakeRecorder{}, Recognizer: rec}, nil)

		f.handlers.HandleListen()

		assert.True(t, strings.HasPrefix(f.view.output, "Không thể yêu cầu kết quả;"))
	})

	t.Run("not configured", func(t *testing.T) {
		f := newFixture(t, &Services{Recorder: fakeRecorder{}}, nil)

		f.handlers.HandleListen()

		assert.Equal(t, StatusUnavailable, f.view.status)
	})
}

type trackingReader struct {
	io.Reader
	closed bool
}

func (r *trackingReader) Close() error {
	r.closed = true
	return nil
}

func TestHandleImage(t *testing.T) {
	t.Run("extracted text is translated", func(t *testing.T) {
		ocr := &fakeOCR{text: "bonjour"}
		f := newFixture(t, &Services{OCR: ocr}, nil)
		r := &trackingReader{Reader: strings.NewReader("png-bytes")}

		f.handlers.HandleImage(r, "scan.png")

		assert.True(t, r.closed)
		assert.Equal(t, []byte("png-bytes"), ocr.data)
		assert.Equal(t, "bonjour", f.view.input)
		assert.Equal(t, "[en] bonjour", f.view.output)
	})

	t.Run("failure is reported", func(t *testing.T) {
		f := newFixture(t, &Services{OCR: &fakeOCR{err: errors.New("tesseract missing")}}, nil)

		f.handlers.HandleImage(&trackingReader{Reader: strings.NewReader("x")}, "scan.png")

		assert.Contains(t, f.view.output, "tesseract missing")
		assert.Empty(t, f.view.input)
	})

	t.Run("not configured closes reader", func(t *testing.T) {
		f := newFixture(t, nil, nil)
		r := &trackingReader{Reader: strings.NewReader("x")}

		f.handlers.HandleImage(r, "scan.png")

		assert.True(t, r.closed)
		assert.Equal(t, StatusUnavailable, f.view.status)
	})
}

func TestHandleSpeak(t *testing.T) {
	t.Run("input uses detected language", func(t *testing.T) {
		synth := &fakeSynth{}
		player := &fakePlayer{}
		f := newFixture(t, &Services{Synthesizer: synth, Player: player, Detector: fakeDetector{lang: "vi"}}, nil)
		f.view.input = "xin chào"

		f.handlers.HandleSpeakInput()

		assert.Equal(t, "vi", synth.lang)
		assert.Equal(t, 1, player.played)
		assert.Equal(t, StatusReady, f.view.status)
	})

	t.Run("empty input", func(t *testing.T) {
		synth := &fakeSynth{}
		f := newFixture(t, &Services{Synthesizer: synth, Player: &fakePlayer{}}, nil)

		f.handlers.HandleSpeakInput()

		assert.Equal(t, StatusNothingToSpeak, f.view.status)
		assert.Empty(t, synth.text)
	})

	t.Run("output needs a translation", func(t *testing.T) {
		synth := &fakeSynth{}
		player := &fakePlayer{}
		f := newFixture(t, &Services{Synthesizer: synth, Player: player}, nil)

		f.view.input = ""
		f.handlers.HandleTranslate()
		f.handlers.HandleSpeakOutput()
		assert.Equal(t, StatusNothingToSpeak, f.view.status)
		assert.Zero(t, player.played)

		f.view.input = "hello"
		f.handlers.HandleTranslate()
		f.handlers.HandleSpeakOutput()
		assert.Equal(t, "[en] hello", synth.text)
		assert.Equal(t, "en", synth.lang)
		assert.Equal(t, 1, player.played)
	})

	t.Run("synthesis failure", func(t *testing.T) {
		f := newFixture(t, &Services{Synthesizer: &fakeSynth{err: speech.ErrServiceUnavailable}, Player: &fakePlayer{}}, nil)
		f.view.input = "hello"

		f.handlers.HandleSpeakInput()

		assert.Contains(t, f.view.status, "Không thể đọc văn bản")
	})
}

func TestHandleInputChangedDebounces(t *testing.T) {
	var mu sync.Mutex
	view := &fakeView{input: "hello"}
	tr := &countingTranslator{}
	h := NewHandlers(context.Background(), &Services{Translator: tr}, NewSession(catalog.Default(), "Tiếng Anh"),
		view, lockedDispatcher{mu: &mu}, nil, Options{Debounce: 20 * time.Millisecond})
	defer h.Shutdown()

	for range 5 {
		mu.Lock()
		h.HandleInputChanged("hello")
		mu.Unlock()
	}

	assert.Eventually(t, func() bool { return tr.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.EqualValues(t, 1, tr.calls.Load())
}

type countingTranslator struct {
	calls atomic.Int32
}

func (c *countingTranslator) Translate(_ context.Context, text, _, target string) (translate.Result, error) {
	c.calls.Add(1)
	return translate.Result{Text: text}, nil
}

// lockedDispatcher serializes UI work the way the toolkit's main loop would.
type lockedDispatcher struct {
	mu *sync.Mutex
}

func (d lockedDispatcher) Go(f func()) { go f() }
func (d lockedDispatcher) Do(f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	f()
}

func TestDebouncer(t *testing.T) {
	t.Run("zero delay calls immediately", func(t *testing.T) {
		d := NewDebouncer(0)
		called := false
		d.Trigger(func() { called = true })
		assert.True(t, called)
	})

	t.Run("stop cancels pending call", func(t *testing.T) {
		d := NewDebouncer(10 * time.Millisecond)
		var n atomic.Int32
		d.Trigger(func() { n.Add(1) })
		d.Stop()
		d.Trigger(func() { n.Add(1) })
		time.Sleep(40 * time.Millisecond)
		assert.Zero(t, n.Load())
	})
}

func TestSession(t *testing.T) {
	cat := catalog.Default()

	s := NewSession(cat, "Tiếng Pháp")
	assert.Equal(t, "fr", s.Destination().Code)

	s = NewSession(cat, "unknown")
	assert.Equal(t, cat.Entries()[0], s.Destination())

	assert.False(t, s.SetDestination(catalog.Entry{DisplayName: "Tiếng Hàn", Code: "ja"}))
	assert.True(t, s.SetDestination(catalog.Entry{DisplayName: "Tiếng Hàn", Code: "ko"}))
	assert.Equal(t, "ko", s.Destination().Code)

	first := s.NextRequest()
	assert.True(t, s.IsLatest(first))
	second := s.NextRequest()
	assert.False(t, s.IsLatest(first))
	assert.True(t, s.IsLatest(second))
}
