// Package logger arma el logger zerolog del servicio de compras: consola
// legible en desarrollo, JSON una línea por evento en producción.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger.
type Config struct {
	Env   string // development activa la salida de consola
	Level string // trace, debug, info, warn, error (otro valor = info)
}

// Logger envuelve zerolog para inyectarlo por las capas de la aplicación.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger según el entorno y lo fija también como logger
// global de zerolog, para las librerías que escriben vía log.Logger.
func New(cfg Config) *Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	base := zerolog.New(os.Stdout)
	if cfg.Env == "development" {
		base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"})
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zl := base.Level(level).With().Timestamp().Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With abre un sublogger con campos fijos (ej. el módulo que lo usa).
func (l *Logger) With() zerolog.Context { return l.zl.With() }

// Zerolog expone el logger interno cuando se necesita la API directa.
func (l *Logger) Zerolog() zerolog.Logger { return l.zl }
