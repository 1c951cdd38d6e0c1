package utils

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	log1 "github.com/charmbracelet/log"
)

// Log is usable before Init so that packages and tests can log freely.
var Log = newLogger(os.Stderr)

func newLogger(w io.Writer) *log1.Logger {
	l := log1.NewWithOptions(w, log1.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "⭐",
	})
	l.SetStyles(styles())
	return l
}

// Init sets the level of Log. An empty level keeps info.
func Init(level string) error {
	if level == "" {
		Log.SetLevel(log1.InfoLevel)
		return nil
	}
	lv, err := log1.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	Log.SetLevel(lv)
	return nil
}

// SetOutput redirects Log, mostly for tests and the batch command.
func SetOutput(w io.Writer) {
	Log.SetOutput(w)
}

func styles() *log1.Styles {
	styles := log1.DefaultStyles()
	styles.Levels[log1.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Padding(0, 1, 0, 1).
		Foreground(lipgloss.Color("#808080FF"))

	styles.Levels[log1.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO🌟").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("#90EE9080")).
		Foreground(lipgloss.Color("#006400FF")).Bold(true)

	styles.Levels[log1.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("#FFD700FF")).
		Foreground(lipgloss.Color("#000000FF")).Bold(true)

	styles.Levels[log1.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR🔥").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("#FF0000FF")).
		Foreground(lipgloss.Color("#00FFFF00")).Bold(true)

	styles.Levels[log1.FatalLevel] = lipgloss.NewStyle().
		SetString("FATAL⚡️").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("#000000FF")).
		Foreground(lipgloss.Color("#00FFFF00")).Bold(true)

	styles.Keys["actor"] = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	styles.Values["actor"] = lipgloss.NewStyle().Bold(true)
	return styles
}
