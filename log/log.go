package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

const (
	appName  = "iconwings"
	EnvPath  = "ICONWINGS_LOG_PATH"
	FileName = "iconwings_log.txt"
)

var (
	diagLog  zerolog.Logger
	diagFile *os.File
	logMu    sync.Mutex
	logReady bool
	pid      int
	dir      string
)

// IconMetrics describes one rendered icon.
type IconMetrics struct {
	Size        int
	Path        string
	Bytes       int
	BorderWidth int
	Text        bool
	FontSource  string
	FontPath    string
	FontReason  string
	RenderMs    float64
}

// Requested reports whether a log directory was asked for through the flag
// or the environment. Without one, logging stays off.
func Requested(flagPath string) bool {
	return flagPath != "" || os.Getenv(EnvPath) != ""
}

func ResolveDir(flagPath string) (string, error) {
	// Priority 1: -logpath flag
	if flagPath != "" {
		return absolute(flagPath)
	}

	// Priority 2: ICONWINGS_LOG_PATH environment variable
	if envPath := os.Getenv(EnvPath); envPath != "" {
		return absolute(envPath)
	}

	// Priority 3: Default OS-specific location
	return getDefaultDir()
}

func absolute(p string) (string, error) {
	if filepath.IsAbs(p) {
		return p, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, p), nil
}

func SetDir(d string) {
	dir = d
}

func EnsureDir() error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

func Init() error {
	logMu.Lock()
	defer logMu.Unlock()

	if err := EnsureDir(); err != nil {
		return err
	}

	pid = os.Getpid()

	var err error
	diagFile, err = os.OpenFile(filepath.Join(dir, FileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        diagFile,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", pid).Logger()

	logReady = true
	return nil
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	logReady = false
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Warnf(format string, args ...any) {
	if logReady {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

func RunStart(version, style, outDir string, sizes []int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("version", version).
		Str("style", style).
		Str("out", outDir).
		Ints("sizes", sizes).
		Msg("run_start")
}

func IconRendered(m IconMetrics) {
	if !logReady {
		return
	}
	ev := diagLog.Info().
		Int("size", m.Size).
		Str("path", m.Path).
		Int("bytes", m.Bytes).
		Int("border_px", m.BorderWidth).
		Bool("text", m.Text)
	if m.Text {
		ev = ev.Str("font", m.FontSource)
		if m.FontPath != "" {
			ev = ev.Str("font_path", m.FontPath)
		}
		if m.FontReason != "" {
			ev = ev.Str("font_reason", m.FontReason)
		}
	}
	ev.Float64("render_ms", m.RenderMs).Msg("icon")
}

func RunEnd(count int, err error) {
	if !logReady {
		return
	}
	ev := diagLog.Info()
	if err != nil {
		ev = diagLog.Error().Err(err)
	}
	ev.Int("count", count).Msg("run_end")
}
