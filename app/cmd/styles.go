package cmd

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// colorEnabled honors both the settings toggle and the NO_COLOR convention.
func colorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return currentSettings().Color
}

func statusMark() string {
	if colorEnabled() {
		return statusStyle.Render("[+]")
	}
	return "[+]"
}

func warnMark() string {
	if colorEnabled() {
		return warningStyle.Render("[!]")
	}
	return "[!]"
}

func errorMark() string {
	if colorEnabled() {
		return errorStyle.Render("[!]")
	}
	return "[!]"
}
