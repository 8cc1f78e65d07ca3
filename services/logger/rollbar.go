package logsvc

import (
	"fmt"
	"io"
	"strings"

	"github.com/labstack/gommon/log"
	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"

	"github.com/trezcool/masomo-review/core"
	"github.com/trezcool/masomo-review/core/review"
)

type RollbarLogger struct {
	std     *log.Logger
	enabled bool
}

var _ core.Logger = (*RollbarLogger)(nil)

// NewStdLogger returns the console logger used underneath RollbarLogger.
func NewStdLogger(prefix string, w io.Writer, conf *core.Config) *log.Logger {
	std := log.New(prefix)
	std.SetOutput(w)
	std.SetHeader("${time_rfc3339} ${level} ${prefix} :")
	std.SetLevel(ParseLevel(conf.LogLevel))
	return std
}

// ParseLevel maps a config level name to a gommon level; unknown names fall back to WARN.
func ParseLevel(lvl string) log.Lvl {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return log.DEBUG
	case "info":
		return log.INFO
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.WARN
	}
}

func NewRollbarLogger(std *log.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)

	l := &RollbarLogger{std: std}
	l.Enable(conf.RollbarToken != "" && !conf.Debug)
	return l
}

func (l *RollbarLogger) Enable(enabled bool) {
	l.enabled = enabled
	rollbar.SetEnabled(enabled)
}

// Close waits for queued rollbar items to be sent.
func (l *RollbarLogger) Close() {
	if l.enabled {
		rollbar.Wait()
	}
}

// expected fmt: msg | error, map[string]interface{}, review.Member
func (l *RollbarLogger) prepare(msg string, args []interface{}) []interface{} {
	var mbrSet bool
	newArgs := make([]interface{}, 0, len(args)+1)
	newArgs = append(newArgs, msg)
	for _, arg := range args {
		// set acting Member
		if mbr, ok := arg.(review.Member); ok {
			if !mbrSet { // only set one Member
				rollbar.SetPerson(string(mbr.ID()), mbr.Name(), mbr.Email())
				mbrSet = true
			}
		} else {
			newArgs = append(newArgs, arg)
		}
	}
	if !mbrSet {
		rollbar.ClearPerson()
	}
	return newArgs
}

func (l *RollbarLogger) format(msg string, args []interface{}) string {
	var b strings.Builder
	b.WriteString(msg)
	for _, arg := range args {
		switch a := arg.(type) {
		case review.Member:
			_, _ = fmt.Fprintf(&b, " [%s %s]", a.Profile().Kind, a.ID())
		case error:
			_, _ = fmt.Fprintf(&b, " - %v", a)
		default:
			_, _ = fmt.Fprintf(&b, " - %+v", a)
		}
	}
	return b.String()
}

func (l *RollbarLogger) Debug(msg string, args ...interface{}) {
	if l.enabled {
		rollbar.Debug(l.prepare(msg, args)...)
	}
	l.std.Debug(l.format(msg, args))
}

func (l *RollbarLogger) Info(msg string, args ...interface{}) {
	if l.enabled {
		rollbar.Info(l.prepare(msg, args)...)
	}
	l.std.Info(l.format(msg, args))
}

func (l *RollbarLogger) Warn(msg string, args ...interface{}) {
	if l.enabled {
		rollbar.Warning(l.prepare(msg, args)...)
	}
	l.std.Warn(l.format(msg, args))
}

func (l *RollbarLogger) Error(msg string, args ...interface{}) {
	if l.enabled {
		rollbar.Error(l.prepare(msg, args)...)
	}
	l.std.Error(l.format(msg, args))
}

func (l *RollbarLogger) Fatal(msg string, args ...interface{}) {
	if l.enabled {
		rollbar.Critical(l.prepare(msg, args)...)
		rollbar.Wait()
	}
	l.std.Fatal(l.format(msg, args))
}
