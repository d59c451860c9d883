package utils

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	log1 "github.com/charmbracelet/log"
)

// Log 进程级日志，Init 之前也可直接使用（默认配置）
var Log = log1.NewWithOptions(os.Stderr, log1.Options{
	ReportTimestamp: true,
	TimeFormat:      time.DateTime,
	Prefix:          "judgment",
})

// Init 设置日志级别和各级别样式
func Init(level string) {
	InitWithWriter(os.Stderr, level)
}

func InitWithWriter(w io.Writer, level string) {
	Log = log1.NewWithOptions(w, log1.Options{
		//ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "judgment",
	})
	if lvl, err := log1.ParseLevel(level); err == nil {
		Log.SetLevel(lvl)
	} else {
		Log.Warn("unknown log level, using info", "level", level)
	}

	styles := log1.DefaultStyles()
	styles.Levels[log1.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("#90EE9080")).
		Foreground(lipgloss.Color("#006400FF")).Bold(true)

	styles.Levels[log1.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("#FFD700FF")).
		Foreground(lipgloss.Color("#000000FF")).Bold(true)

	styles.Levels[log1.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("#FF0000FF")).
		Foreground(lipgloss.Color("#00FFFF00")).Bold(true)

	styles.Levels[log1.FatalLevel] = lipgloss.NewStyle().
		SetString("FATAL").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("#000000FF")).
		Foreground(lipgloss.Color("#00FFFF00")).Bold(true)
	Log.SetStyles(styles)
}
