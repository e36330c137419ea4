package logsvc

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/schoolmed/console/core"
	"github.com/schoolmed/console/core/auth"
)

type ZerologLogger struct {
	log zerolog.Logger
}

var _ core.Logger = (*ZerologLogger)(nil)

func NewZerologLogger(w io.Writer, conf *core.Config) *ZerologLogger {
	level := zerolog.InfoLevel
	if conf.Debug {
		level = zerolog.DebugLevel
	}
	l := zerolog.New(w).Level(level).With().
		Timestamp().
		Str("app", conf.AppName).
		Logger()
	return &ZerologLogger{log: l}
}

func (l *ZerologLogger) Enable(enabled bool) {
	if enabled {
		l.log = l.log.Level(zerolog.DebugLevel)
	} else {
		l.log = l.log.Level(zerolog.Disabled)
	}
}

// expected fmt: msg | error, auth.Session, any contextual value
func (l *ZerologLogger) emit(ev *zerolog.Event, msg string, args []interface{}) {
	n := 0
	for _, arg := range args {
		switch v := arg.(type) {
		case error:
			ev = ev.AnErr("error", v)
		case auth.Session:
			ev = ev.Str("subject", v.Subject).Str("role", v.Role)
		default:
			ev = ev.Interface(fmt.Sprintf("ctx%d", n), v)
			n++
		}
	}
	ev.Msg(msg)
}

func (l *ZerologLogger) Debug(msg string, args ...interface{}) { l.emit(l.log.Debug(), msg, args) }
func (l *ZerologLogger) Info(msg string, args ...interface{})  { l.emit(l.log.Info(), msg, args) }
func (l *ZerologLogger) Warn(msg string, args ...interface{})  { l.emit(l.log.Warn(), msg, args) }
func (l *ZerologLogger) Error(msg string, args ...interface{}) { l.emit(l.log.Error(), msg, args) }
func (l *ZerologLogger) Fatal(msg string, args ...interface{}) { l.emit(l.log.Fatal(), msg, args) }
