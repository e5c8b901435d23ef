// Package logger logging estruturado do console: JSON em produção, saída
// legível em desenvolvimento.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opções do logger.
type Config struct {
	Env   string // development -> console legível; demais -> JSON
	Level string // info, warn, error
}

// Logger wrapper fino sobre zerolog para injeção nos usecases e adapters.
type Logger struct {
	zl zerolog.Logger
}

// New cria o logger e redireciona o logger global do zerolog para o mesmo
// destino, cobrindo bibliotecas que loguem por conta própria.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Info, Warn, Error e Fatal delegam ao zerolog; os níveis abaixo de info não
// são usados neste serviço.
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
