package wizard

import (
	"fmt"
	"strings"
)

// View renders the current prompt, or the summary at the confirmation step.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("epimake wizard"))
	b.WriteString("\n\n")
	if m.step == StepConfirm {
		b.WriteString(m.summary())
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Generate Makefile?"))
		b.WriteString(" ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(labelStyle.Render(prompts[m.step].label))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("enter: next  esc: cancel  empty answers keep defaults"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) summary() string {
	cfg := m.config
	if cfg == nil {
		return ""
	}
	var b strings.Builder
	line := func(label, value string) {
		if value == "" {
			value = dimStyle.Render("(default)")
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render(label+":"), value))
	}
	line("Project", cfg.ProjectName)
	line("Binary", cfg.BinaryName)
	line("Sources", strings.Join(cfg.SrcFiles, ", "))
	line("Tests", strings.Join(cfg.TestFiles, ", "))
	line("Includes", strings.Join(cfg.IncludeDirs, ", "))
	line("Flags", strings.Join(cfg.ExtraFlags, " "))
	return b.String()
}
