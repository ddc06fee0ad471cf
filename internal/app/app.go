package app

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/Utility-Gods/bmichart/internal/chart"
	"github.com/Utility-Gods/bmichart/internal/db"
	"github.com/briandowns/spinner"
)

// App represents the main application
type App struct {
	Config   *Config
	Logger   *slog.Logger
	Settings db.Settings
	Store    *db.Store

	out io.Writer
}

// NewApp creates a new instance of the application. Operator output goes to
// out, logs and the startup spinner to errOut. A settings store that cannot
// be opened is reported and the defaults are used instead.
func NewApp(cfg *Config, out, errOut io.Writer) *App {
	a := &App{
		Config:   cfg,
		Logger:   newLogger(cfg.LogLevel, errOut),
		Settings: db.DefaultSettings(),
		out:      out,
	}

	if cfg.DBPath != "" {
		a.loadSettings(errOut)
	}
	if cfg.NoColor {
		a.Settings.Color = false
	}

	a.Logger.Debug("App configured.", "color", a.Settings.Color, "strict_numbers", a.Settings.StrictNumbers)
	return a
}

func (a *App) loadSettings(errOut io.Writer) {
	if s := newSpinner(errOut); s != nil {
		s.Start()
		defer s.Stop()
	}

	store, err := db.InitDB(a.Config.DBPath, a.Logger)
	if err != nil {
		a.Logger.Warn("Settings unavailable, using defaults.", "error", err)
		return
	}

	settings, err := store.Load()
	if err != nil {
		a.Logger.Warn("Failed to load settings, using defaults.", "error", err)
	}
	a.Store = store
	a.Settings = settings
}

// newSpinner returns a spinner drawing on w, or nil when w is not a file. The
// spinner checks the file it draws on for a terminal, so redirected stderr
// stays free of frames.
func newSpinner(w io.Writer) *spinner.Spinner {
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriterFile(f))
	s.Suffix = " Loading settings..."
	return s
}

// Out is where operator-facing text is written.
func (a *App) Out() io.Writer {
	return a.out
}

// Renderer returns a chart renderer for the app's output and colour setting.
func (a *App) Renderer() *chart.Renderer {
	return chart.NewRenderer(a.out, a.Settings.Color)
}

// Close releases the settings store, if one was opened.
func (a *App) Close() {
	if a.Store == nil {
		return
	}
	if err := a.Store.Close(); err != nil {
		a.Logger.Warn("Error closing settings database.", "error", err)
	}
}
