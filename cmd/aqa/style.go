package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/you-not-fish/aqa/internal/aqa"
)

// Colors
var (
	colorError = lipgloss.Color("#EF4444")
	colorValue = lipgloss.Color("#10B981")
	colorMuted = lipgloss.Color("#6B7280")
)

var (
	stageStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	errMsgStyle = lipgloss.NewStyle().Foreground(colorError)
	valueStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorValue)
	mutedStyle  = lipgloss.NewStyle().Italic(true).Foreground(colorMuted)
)

// styles renders command output. With color off every method returns its
// input unchanged; lipgloss would otherwise pad multi-line text.
type styles struct {
	color bool
}

func newStyles(color bool) styles {
	return styles{color: color}
}

func (s styles) render(st lipgloss.Style, str string) string {
	if !s.color {
		return str
	}
	return st.Render(str)
}

// value formats an evaluation result.
func (s styles) value(str string) string {
	return s.render(valueStyle, str)
}

// diagnostic formats a pipeline error as
// "file: stage error: at line L, column C: message".
func (s styles) diagnostic(filename string, e *aqa.Error) string {
	msg := s.render(stageStyle, e.Stage.String()+" error:") + " " + s.render(errMsgStyle, e.Error())
	if filename == "" {
		return msg
	}
	return filename + ": " + msg
}

// header formats a section title for trace output.
func (s styles) header(title string) string {
	return s.render(mutedStyle, "== "+title+" ==")
}
