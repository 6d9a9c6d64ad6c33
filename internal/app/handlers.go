package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"vox-translate/internal/catalog"
	"vox-translate/internal/logger"
	"vox-translate/internal/speech"
	"vox-translate/internal/translate"
)

type Options struct {
	Debounce            time.Duration
	RecognitionLanguage string
}

// Handlers turns window events into collaborator calls. Exported Handle*
// methods run on the UI thread; collaborator calls run through dispatch.Go
// and report back through dispatch.Do.
type Handlers struct {
	ctx      context.Context
	services *Services
	session  *Session
	view     View
	dispatch Dispatcher
	debounce *Debouncer
	logger   logger.Logger

	recognitionLang string
	// hasResult is true while the output area holds a translation rather
	// than a hint or an error.
	hasResult bool
}

func NewHandlers(ctx context.Context, services *Services, session *Session, view View, dispatch Dispatcher, log logger.Logger, opts Options) *Handlers {
	if services == nil {
		services = &Services{}
	}
	return &Handlers{
		ctx:             ctx,
		services:        services,
		session:         session,
		view:            view,
		dispatch:        dispatch,
		debounce:        NewDebouncer(opts.Debounce),
		logger:          logger.OrNoOp(log),
		recognitionLang: opts.RecognitionLanguage,
	}
}

// HandleInputChanged re-translates once typing pauses.
func (h *Handlers) HandleInputChanged(string) {
	h.debounce.Trigger(func() {
		h.dispatch.Do(h.HandleTranslate)
	})
}

func (h *Handlers) HandleTranslate() {
	id := h.session.NextRequest()
	text := strings.TrimSpace(h.view.InputText())

	if text == "" {
		h.showOutput(MsgEmptyInput, false)
		h.view.SetStatus(StatusReady)
		return
	}
	if h.services.Translator == nil {
		h.view.SetStatus(StatusUnavailable)
		return
	}

	dest := h.session.Destination()
	h.view.SetStatus(StatusTranslating)

	h.dispatch.Go(func() {
		res, err := h.services.Translator.Translate(h.ctx, text, "", dest.Code)

		h.dispatch.Do(func() {
			if !h.session.IsLatest(id) {
				h.logger.Debug("Handlers", "dropping stale translation", map[string]interface{}{
					"request": id,
				})
				return
			}
			if errors.Is(err, context.Canceled) {
				return
			}
			if err != nil {
				h.logger.Error("Handlers", err, map[string]interface{}{
					"target": dest.Code,
				})
				if errors.Is(err, translate.ErrServiceUnavailable) {
					h.showOutput(MsgServiceUnavailable, false)
				} else {
					h.showOutput(fmt.Sprintf(MsgTranslateFailed, err), false)
				}
				h.view.SetStatus(StatusReady)
				return
			}

			h.showOutput(res.Text, true)
			h.view.SetStatus(h.translatedStatus(res.DetectedLanguage, dest))
			h.logger.Debug("Handlers", "translation shown", map[string]interface{}{
				"method": res.Method,
				"target": dest.Code,
			})
		})
	})
}

// translatedStatus names the detected source language when the catalog
// knows it.
func (h *Handlers) translatedStatus(detected string, dest catalog.Entry) string {
	if src, ok := h.session.Catalog().ByCode(detected); ok && src.Code != dest.Code {
		return fmt.Sprintf(StatusTranslatedFrom, src.DisplayName, dest.DisplayName)
	}
	return fmt.Sprintf(StatusTranslated, dest.DisplayName)
}

// HandleChooseDestination opens the language picker seeded with the
// current destination.
func (h *Handlers) HandleChooseDestination() {
	h.view.ShowLanguagePicker(h.session.Catalog(), h.session.Destination().DisplayName, h.HandleDestinationSelected)
}

// HandleDestinationSelected stores the new destination and refreshes the
// translation with it.
func (h *Handlers) HandleDestinationSelected(entry catalog.Entry) {
	if !h.session.SetDestination(entry) {
		return
	}
	h.view.SetDestination(entry.DisplayName)
	h.logger.Info("Handlers", "destination changed", map[string]interface{}{
		"language": entry.Code,
	})
	h.HandleTranslate()
}

// HandleSpeakInput reads the input aloud in its detected language.
func (h *Handlers) HandleSpeakInput() {
	text := strings.TrimSpace(h.view.InputText())
	if text == "" {
		h.view.SetStatus(StatusNothingToSpeak)
		return
	}
	h.speak(text, "")
}

// HandleSpeakOutput reads the current translation aloud in the destination
// language.
func (h *Handlers) HandleSpeakOutput() {
	text := strings.TrimSpace(h.view.OutputText())
	if text == "" || !h.hasResult {
		h.view.SetStatus(StatusNothingToSpeak)
		return
	}
	h.speak(text, h.session.Destination().Code)
}

// speak synthesizes and plays text. An empty lang is detected first.
func (h *Handlers) speak(text, lang string) {
	if h.services.Synthesizer == nil || h.services.Player == nil {
		h.view.SetStatus(StatusUnavailable)
		return
	}
	h.view.SetStatus(StatusSpeaking)

	h.dispatch.Go(func() {
		err := h.synthesizeAndPlay(text, lang)

		h.dispatch.Do(func() {
			if errors.Is(err, context.Canceled) {
				return
			}
			if err != nil {
				h.logger.Error("Handlers", err, map[string]interface{}{
					"action": "speak",
				})
				h.view.SetStatus(fmt.Sprintf(StatusSpeakFailed, err))
				return
			}
			h.view.SetStatus(StatusReady)
		})
	})
}

func (h *Handlers) synthesizeAndPlay(text, lang string) error {
	if lang == "" {
		lang = "en"
		if h.services.Detector != nil {
			det, err := h.services.Detector.Detect(h.ctx, text)
			if err != nil {
				return err
			}
			lang = det.Language
		}
	}

	audio, err := h.services.Synthesizer.Synthesize(h.ctx, text, lang)
	if err != nil {
		return err
	}
	return h.services.Player.Play(h.ctx, audio)
}

// HandleListen captures one phrase, puts the transcript in the input and
// translates it.
func (h *Handlers) HandleListen() {
	if h.services.Recorder == nil || h.services.Recognizer == nil {
		h.view.SetStatus(StatusUnavailable)
		return
	}
	h.view.SetStatus(StatusListening)

	h.dispatch.Go(func() {
		text, err := h.listenAndRecognize()

		h.dispatch.Do(func() {
			if errors.Is(err, context.Canceled) {
				return
			}
			if err != nil {
				// Orphan any pending translation so it cannot replace the message.
				h.session.NextRequest()
				h.logger.Warning("Handlers", "speech input failed", map[string]interface{}{
					"error": err.Error(),
				})
				if errors.Is(err, speech.ErrUnrecognizedSpeech) {
					h.showOutput(MsgUnrecognized, false)
				} else {
					h.showOutput(fmt.Sprintf(MsgRequestFailed, err), false)
				}
				h.view.SetStatus(StatusReady)
				return
			}
			h.view.SetInputText(text)
			h.HandleTranslate()
		})
	})
}

func (h *Handlers) listenAndRecognize() (string, error) {
	rec, err := h.services.Recorder.Listen(h.ctx)
	if err != nil {
		return "", err
	}
	h.dispatch.Do(func() {
		h.view.SetStatus(StatusRecognizing)
	})
	return h.services.Recognizer.Recognize(h.ctx, rec, h.recognitionLang)
}

// HandleImage runs OCR on the chosen file, puts the text in the input and
// translates it. The reader is closed here.
func (h *Handlers) HandleImage(reader io.ReadCloser, name string) {
	if h.services.OCR == nil {
		reader.Close()
		h.view.SetStatus(StatusUnavailable)
		return
	}
	h.view.SetStatus(StatusReadingImage)

	h.dispatch.Go(func() {
		data, err := io.ReadAll(reader)
		reader.Close()

		var text string
		if err == nil {
			text, err = h.services.OCR.ExtractBytes(h.ctx, data)
		}

		h.dispatch.Do(func() {
			if errors.Is(err, context.Canceled) {
				return
			}
			if err != nil {
				h.session.NextRequest()
				h.logger.Error("Handlers", err, map[string]interface{}{
					"file": name,
				})
				h.showOutput(fmt.Sprintf(MsgOCRFailed, err), false)
				h.view.SetStatus(StatusReady)
				return
			}
			h.view.SetInputText(text)
			h.HandleTranslate()
		})
	})
}

// HandleClear empties both text areas and orphans any pending translation.
func (h *Handlers) HandleClear() {
	h.session.NextRequest()
	h.view.SetInputText("")
	h.showOutput("", false)
	h.view.SetStatus(StatusReady)
}

func (h *Handlers) showOutput(text string, isResult bool) {
	h.view.SetOutputText(text)
	h.hasResult = isResult
}

func (h *Handlers) Shutdown() {
	h.debounce.Stop()
}
