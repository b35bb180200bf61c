package wizard

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updated.(Model)
}

func pressEnter(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model), cmd
}

func TestWizardWalkProducesConfig(t *testing.T) {
	m := New()

	m = typeText(t, m, "demo")
	m, _ = pressEnter(t, m) // project
	m, _ = pressEnter(t, m) // binary: keep default

	m = typeText(t, m, "src/main.c,src/utils.c")
	m, _ = pressEnter(t, m) // sources

	m = typeText(t, m, "tests/test_main.c")
	m, _ = pressEnter(t, m) // tests
	m, _ = pressEnter(t, m) // includes: keep default

	m = typeText(t, m, "-O2 -g")
	m, _ = pressEnter(t, m) // flags

	if m.step != StepConfirm {
		t.Fatalf("expected StepConfirm, got %v", m.step)
	}
	if _, ok := m.Config(); ok {
		t.Fatalf("Config() available before confirmation")
	}

	m, cmd := pressEnter(t, m) // empty answer confirms
	if cmd == nil {
		t.Fatalf("expected quit command after confirmation")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg after confirmation")
	}

	cfg, ok := m.Config()
	if !ok {
		t.Fatalf("Config() not available after confirmation")
	}
	if cfg.ProjectName != "demo" {
		t.Fatalf("ProjectName = %q, want demo", cfg.ProjectName)
	}
	if cfg.BinaryName != "" {
		t.Fatalf("BinaryName = %q, want empty before normalization", cfg.BinaryName)
	}
	if len(cfg.SrcFiles) != 2 || cfg.SrcFiles[0] != "src/main.c" || cfg.SrcFiles[1] != "src/utils.c" {
		t.Fatalf("SrcFiles = %v", cfg.SrcFiles)
	}
	if len(cfg.TestFiles) != 1 || cfg.TestFiles[0] != "tests/test_main.c" {
		t.Fatalf("TestFiles = %v", cfg.TestFiles)
	}
	if len(cfg.IncludeDirs) != 1 || cfg.IncludeDirs[0] != "./include" {
		t.Fatalf("IncludeDirs = %v", cfg.IncludeDirs)
	}
	if len(cfg.ExtraFlags) != 2 || cfg.ExtraFlags[0] != "-O2" || cfg.ExtraFlags[1] != "-g" {
		t.Fatalf("ExtraFlags = %v", cfg.ExtraFlags)
	}
}

func TestWizardEscCancels(t *testing.T) {
	m := New()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model := updated.(Model)

	if !model.Cancelled() {
		t.Fatalf("expected cancelled after esc")
	}
	if _, ok := model.Config(); ok {
		t.Fatalf("Config() available after cancellation")
	}
	if cmd == nil {
		t.Fatalf("expected quit command after esc")
	}
}

func TestWizardDeclineAtConfirm(t *testing.T) {
	m := New()
	for i := 0; i < 6; i++ {
		m, _ = pressEnter(t, m)
	}
	if m.step != StepConfirm {
		t.Fatalf("expected StepConfirm after six answers, got %v", m.step)
	}

	m = typeText(t, m, "n")
	m, _ = pressEnter(t, m)

	if !m.Cancelled() {
		t.Fatalf("expected cancelled after declining")
	}
	if _, ok := m.Config(); ok {
		t.Fatalf("Config() available after declining")
	}
}

func TestWizardViewShowsPromptAndSummary(t *testing.T) {
	m := New()
	view := m.View()
	if !strings.Contains(view, "Project name") {
		t.Fatalf("first view missing project prompt:\n%s", view)
	}

	m = typeText(t, m, "demo")
	for i := 0; i < 6; i++ {
		m, _ = pressEnter(t, m)
	}
	summary := m.View()
	if !strings.Contains(summary, "demo") {
		t.Fatalf("confirmation view missing project name:\n%s", summary)
	}
	if !strings.Contains(summary, "Generate Makefile?") {
		t.Fatalf("confirmation view missing prompt:\n%s", summary)
	}
}
