package app

import (
	"context"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"

	"vox-translate/internal/logger"
	"vox-translate/internal/shutdown"
)

// componentTimeout keeps a stuck component from freezing the window on close.
const componentTimeout = 3 * time.Second

// Lifecycle ties the two ways out of the program, closing the window and
// receiving a signal, to one shutdown sequence.
type Lifecycle struct {
	manager       *shutdown.Manager
	fyneApp       fyne.App
	logger        logger.Logger
	windowClosing atomic.Bool
}

func NewLifecycle(fyneApp fyne.App, log logger.Logger) *Lifecycle {
	l := &Lifecycle{
		manager: shutdown.NewManager(log),
		fyneApp: fyneApp,
		logger:  logger.OrNoOp(log),
	}
	l.manager.SetTimeout(componentTimeout)

	// Registered first so it runs last, after every component stopped.
	l.manager.Register("fyne", shutdown.Func(func() {
		if l.windowClosing.Load() || l.fyneApp == nil {
			return
		}
		fyne.Do(l.fyneApp.Quit)
	}))
	return l
}

// Context is cancelled as soon as shutdown starts, aborting in-flight
// collaborator calls.
func (l *Lifecycle) Context() context.Context {
	return l.manager.Context()
}

func (l *Lifecycle) Register(name string, component shutdown.Shutdownable) {
	l.manager.Register(name, component)
}

func (l *Lifecycle) Listen() {
	l.manager.Listen()
}

// ShutdownFromWindow runs the sequence when the window is closing by
// itself, so the app is not asked to quit twice.
func (l *Lifecycle) ShutdownFromWindow() {
	l.windowClosing.Store(true)
	l.Shutdown()
}

func (l *Lifecycle) Shutdown() {
	l.manager.Shutdown()
}
