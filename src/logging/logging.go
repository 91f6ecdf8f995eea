package logging

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
)

// Init sets up global logging configuration with compact time format and
// file:line source locations. When logPath is non-empty, records are fanned
// out to that file as well as stdout.
func Init(level slog.Level, logPath string) {
	opts := &slog.HandlerOptions{
		Level:       level,
		AddSource:   true,
		ReplaceAttr: replaceAttr,
	}

	handlers := []slog.Handler{slog.NewTextHandler(os.Stdout, opts)}
	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			panic(err)
		}
		handlers = append(handlers, slog.NewTextHandler(logFile, opts))
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
}

func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		if t, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(t.Format("15:04:05"))
		}
	}
	if a.Key == slog.SourceKey {
		if source, ok := a.Value.Any().(*slog.Source); ok {
			file := source.File
			if lastSlash := strings.LastIndexByte(file, '/'); lastSlash >= 0 {
				file = file[lastSlash+1:]
			}
			a.Value = slog.StringValue(fmt.Sprintf("%s:%d", file, source.Line))
		}
	}
	return a
}
