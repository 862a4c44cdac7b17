package app

import (
	"io"
	"log/slog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	inR    io.Reader
	outW   io.Writer
	logger *slog.Logger
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. Diagnostics go to
// errW; outW carries only the prompt and the single result line.
func NewApp(inR io.Reader, outW, errW io.Writer, appConfig *Config) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &App{
		inR:    inR,
		outW:   outW,
		logger: logger,
	}
}
