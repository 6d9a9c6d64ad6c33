package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"vox-translate/internal/catalog"
	"vox-translate/internal/config"
	"vox-translate/internal/gui"
	"vox-translate/internal/logger"
)

const (
	AppName      = "Trình Dịch Văn Bản"
	AppID        = "io.github.voxtranslate"
	AppVersion   = "1.0.0"
	WindowWidth  = 720
	WindowHeight = 640
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	session    *Session
	handlers   *Handlers
	lifecycle  *Lifecycle
	logger     logger.Logger
}

func NewApplication(cfg *config.Config, services *Services, log logger.Logger) (*Application, error) {
	log = logger.OrNoOp(log)

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)

	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  WindowWidth,
		"window_height": WindowHeight,
		"tts_provider":  cfg.Speech.TTSProvider,
	})

	session := NewSession(catalog.Default(), cfg.Translate.DefaultDestination)

	guiManager, err := gui.NewManager(window, log)
	if err != nil {
		return nil, err
	}
	guiManager.SetDestination(session.Destination().DisplayName)
	guiManager.SetVersion("v" + AppVersion)

	lifecycle := NewLifecycle(fyneApp, log)
	handlers := NewHandlers(lifecycle.Context(), services, session, guiManager, fyneDispatcher{}, log, Options{
		Debounce:            cfg.Translate.Debounce(),
		RecognitionLanguage: cfg.Speech.RecognitionLanguage,
	})
	lifecycle.Register("gui", guiManager)
	lifecycle.Register("handlers", handlers)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		session:    session,
		handlers:   handlers,
		lifecycle:  lifecycle,
		logger:     log,
	}

	application.setupHandlers()

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupHandlers() {
	a.guiManager.SetInputChangedHandler(a.handlers.HandleInputChanged)
	a.guiManager.SetSpeakInputHandler(a.handlers.HandleSpeakInput)
	a.guiManager.SetSpeakOutputHandler(a.handlers.HandleSpeakOutput)
	a.guiManager.SetListenHandler(a.handlers.HandleListen)
	a.guiManager.SetImageHandler(a.handlers.HandleImage)
	a.guiManager.SetClearHandler(a.handlers.HandleClear)
	a.guiManager.SetDestinationHandler(a.handlers.HandleChooseDestination)
}

// Run shows the window and blocks until the application exits.
func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.ShutdownFromWindow()
		a.window.Close()
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.lifecycle.Listen()
	a.window.Show()
	a.guiManager.FocusInput()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}
