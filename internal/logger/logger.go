package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorPurple = "\033[35m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
)

type LogType string

const (
	TypeHTTP   LogType = "HTTP"
	TypeDB     LogType = "DB"
	TypeSystem LogType = "SYS"
	TypeLedger LogType = "LEDGER"
	TypeError  LogType = "ERR"
)

type Options struct {
	Name      string
	Level     slog.Leveler
	AddSource bool
	NoColor   bool
	Output    io.Writer
}

// CustomHandler prints one colourised line per record:
// [name] [hh:mm:ss] [LEVEL] [TYPE] message key=value...
type CustomHandler struct {
	opts   Options
	mu     *sync.Mutex
	attrs  []slog.Attr
	groups []string
}

func NewHandler(opts Options) *CustomHandler {
	if opts.Name == "" {
		opts.Name = "perktrack"
	}
	if opts.Level == nil {
		opts.Level = slog.LevelInfo
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	return &CustomHandler{opts: opts, mu: &sync.Mutex{}}
}

func (h *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	for _, a := range attrs {
		merged = append(merged, h.qualify(a))
	}
	return &CustomHandler{opts: h.opts, mu: h.mu, attrs: merged, groups: h.groups}
}

func (h *CustomHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	groups := append(append([]string{}, h.groups...), name)
	return &CustomHandler{opts: h.opts, mu: h.mu, attrs: h.attrs, groups: groups}
}

func (h *CustomHandler) qualify(a slog.Attr) slog.Attr {
	if len(h.groups) == 0 {
		return a
	}
	a.Key = strings.Join(h.groups, ".") + "." + a.Key
	return a
}

func (h *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := append([]slog.Attr{}, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, h.qualify(a))
		return true
	})

	levelColor, levelText := levelStyle(r.Level)
	message := r.Message

	if r.Level >= slog.LevelError {
		if loc := errorLocation(attrs, r); loc != "" && h.opts.AddSource {
			message = fmt.Sprintf("%s (%s)", message, loc)
		}
		if details := attrValue(attrs, "error"); details != "" {
			message = fmt.Sprintf("%s: %s", message, details)
		}
	}
	if status := attrValue(attrs, "status"); status != "" {
		message = fmt.Sprintf("%s [Status: %s]", message, status)
	}
	if took := attrValue(attrs, "took"); took != "" {
		message = fmt.Sprintf("%s (took %s)", message, took)
	}

	var b strings.Builder
	for _, a := range attrs {
		if isInternalAttr(a.Key) {
			continue
		}
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
	}

	line := fmt.Sprintf("[%s] [%s] [%s%s%s] [%s] %s%s",
		h.opts.Name,
		r.Time.Format("15:04:05"),
		levelColor, levelText, colorWhite,
		logType(attrs),
		message,
		b.String(),
	)
	if h.opts.NoColor {
		line = stripColor(line)
	} else {
		line = colorWhite + line + colorReset
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.opts.Output, line)
	return err
}

func levelStyle(level slog.Level) (string, string) {
	switch {
	case level >= slog.LevelError:
		return colorRed, "ERROR"
	case level >= slog.LevelWarn:
		return colorYellow, "WARN"
	case level >= slog.LevelInfo:
		return colorGreen, "INFO"
	default:
		return colorPurple, "DEBUG"
	}
}

func logType(attrs []slog.Attr) LogType {
	switch attrValue(attrs, "type") {
	case "http":
		return TypeHTTP
	case "db":
		return TypeDB
	case "ledger":
		return TypeLedger
	case "error":
		return TypeError
	default:
		return TypeSystem
	}
}

func attrValue(attrs []slog.Attr, key string) string {
	for i := len(attrs) - 1; i >= 0; i-- {
		if attrs[i].Key == key {
			return attrs[i].Value.String()
		}
	}
	return ""
}

func isInternalAttr(key string) bool {
	internal := []string{"type", "status", "took", "error", "error_location"}
	for _, k := range internal {
		if k == key {
			return true
		}
	}
	return false
}

func errorLocation(attrs []slog.Attr, r slog.Record) string {
	if loc := attrValue(attrs, "error_location"); loc != "" {
		return loc
	}
	if r.PC == 0 {
		return ""
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	f, _ := frames.Next()
	if f.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
}

var colors = strings.NewReplacer(
	colorReset, "", colorRed, "", colorGreen, "", colorYellow, "",
	colorPurple, "", colorCyan, "", colorWhite, "",
)

func stripColor(s string) string {
	return colors.Replace(s)
}

// Setup installs the handler as the slog default.
func Setup(opts Options) *slog.Logger {
	l := slog.New(NewHandler(opts))
	slog.SetDefault(l)
	return l
}

// Since is a convenience for the "took" attribute.
func Since(start time.Time) slog.Attr {
	return slog.Duration("took", time.Since(start))
}
