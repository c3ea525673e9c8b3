// Package cliui provides reusable terminal UI helpers (event labels, styled
// marks) for chatstream CLI commands.
package cliui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	SuccessMark = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Render("✓")
	FailMark    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("✗")

	// Event labels prefix decoded event lines in text output.
	ContentLabel  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Render("content")
	FunctionLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Render("function_call")
	ToolLabel     = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Render("tool_call")
	DoneLabel     = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Render("done")
	ErrorLabel    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("error")

	DimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	KeyStyle   = lipgloss.NewStyle().Bold(true)
	ValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// Mark returns a ✓ for nil errors or ✗ for non-nil errors.
func Mark(err error) string {
	if err != nil {
		return FailMark
	}
	return SuccessMark
}

// FormatDuration formats a duration for display (e.g. "12ms" or "3.2s").
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
