package log

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	cblog "github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// Logger embeds the Charm Logger
type Logger struct{ *cblog.Logger }

var (
	logger     *Logger
	initLogger sync.Once
)

// GetLogger returns a logger instance
func GetLogger() *Logger {
	initLogger.Do(func() {
		styles := cblog.DefaultStyles()
		styles.Levels[cblog.FatalLevel] = lipgloss.NewStyle().
			SetString(" FATAL").
			Foreground(lipgloss.Color("1"))
		styles.Levels[cblog.ErrorLevel] = lipgloss.NewStyle().
			SetString(" ERROR").
			Foreground(lipgloss.Color("9"))
		styles.Levels[cblog.WarnLevel] = lipgloss.NewStyle().
			SetString("  WARN").
			Foreground(lipgloss.Color("3"))
		styles.Levels[cblog.InfoLevel] = lipgloss.NewStyle().
			SetString("  INFO").
			Foreground(lipgloss.Color("2"))
		styles.Levels[cblog.DebugLevel] = lipgloss.NewStyle().
			SetString(" DEBUG").
			Foreground(lipgloss.Color("4"))

		base := cblog.New(os.Stderr)
		base.SetStyles(styles)
		base.SetReportTimestamp(false)
		base.SetLevel(cblog.InfoLevel)
		base.SetPrefix(" eos")

		logger = &Logger{base}
	})
	return logger
}

// Options controls where log lines go while the UI owns the terminal.
type Options struct {
	// Fs is the filesystem the log file is opened on. Defaults to the OS filesystem.
	Fs afero.Fs
	// File is appended to when set. Empty discards all output.
	File  string
	Debug bool
}

// Configure points the shared logger at opts.File (or discards output) and
// sets the level. The returned closer releases the file.
func Configure(opts Options) (io.Closer, error) {
	l := GetLogger()

	if opts.Debug {
		l.SetLevel(cblog.DebugLevel)
	} else {
		l.SetLevel(cblog.InfoLevel)
	}

	if opts.File == "" {
		l.SetOutput(io.Discard)
		return nopCloser{}, nil
	}

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	f, err := fs.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	l.SetReportTimestamp(true)
	l.SetOutput(f)
	return f, nil
}

// Reset sends output back to stderr. Used once the terminal is released.
func Reset() {
	l := GetLogger()
	l.SetReportTimestamp(false)
	l.SetOutput(os.Stderr)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// * Convenience wrappers

func Debug(msg interface{}, keyvals ...interface{}) { GetLogger().Logger.Debug(msg, keyvals...) }
func Debugf(format string, v ...interface{})        { GetLogger().Logger.Debugf(format, v...) }
func Info(msg interface{}, keyvals ...interface{})  { GetLogger().Logger.Info(msg, keyvals...) }
func Infof(format string, v ...interface{})         { GetLogger().Logger.Infof(format, v...) }
func Warn(msg interface{}, keyvals ...interface{})  { GetLogger().Logger.Warn(msg, keyvals...) }
func Warnf(format string, v ...interface{})         { GetLogger().Logger.Warnf(format, v...) }
func Error(msg interface{}, keyvals ...interface{}) { GetLogger().Logger.Error(msg, keyvals...) }
func Errorf(format string, v ...interface{})        { GetLogger().Logger.Errorf(format, v...) }
