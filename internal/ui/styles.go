package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorMagenta  = lipgloss.Color("#FF00FF")
	ColorDarkGray = lipgloss.Color("8") // ANSI 8
)

// LogStyles returns the logger styles: level badges in the palette, dim keys
func LogStyles() *log.Styles {
	styles := log.DefaultStyles()

	styles.Prefix = lipgloss.NewStyle().Foreground(ColorDarkGray)
	styles.Key = lipgloss.NewStyle().Foreground(ColorCyan)
	styles.Levels[log.DebugLevel] = badge("DEBUG", ColorDarkGray)
	styles.Levels[log.InfoLevel] = badge("INFO", ColorCyan)
	styles.Levels[log.WarnLevel] = badge("WARN", ColorYellow)
	styles.Levels[log.ErrorLevel] = badge("ERROR", ColorRed)
	styles.Levels[log.FatalLevel] = badge("FATAL", ColorMagenta)

	styles.Keys["branch"] = lipgloss.NewStyle().Foreground(ColorGreen)
	styles.Values["reference"] = lipgloss.NewStyle().Bold(true).Foreground(ColorGreen)
	styles.Keys["err"] = lipgloss.NewStyle().Foreground(ColorRed)
	styles.Values["err"] = lipgloss.NewStyle().Bold(true)

	return styles
}

func badge(label string, color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(label).
		Bold(true).
		MaxWidth(5).
		Foreground(color)
}
