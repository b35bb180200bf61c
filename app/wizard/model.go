package wizard

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/lexcodex/epimake/makefile"
)

// Step indexes the prompt walk.
type Step int

const (
	StepProject Step = iota
	StepBinary
	StepSources
	StepTests
	StepIncludes
	StepFlags
	StepConfirm
)

// prompt describes one field in the walk.
type prompt struct {
	label       string
	placeholder string
}

var prompts = map[Step]prompt{
	StepProject:  {"Project name", "my_project"},
	StepBinary:   {"Binary name", "defaults to project name"},
	StepSources:  {"Source files (comma-separated)", makefile.DefaultSource},
	StepTests:    {"Test files (comma-separated, empty for none)", makefile.DefaultTestSource},
	StepIncludes: {"Include directories (comma-separated)", makefile.DefaultIncludeDir},
	StepFlags:    {"Extra compiler flags", "-O2 -g"},
}

// Model walks a single textinput through the generator fields, then asks for
// confirmation before handing the Config back to the CLI.
type Model struct {
	input     textinput.Model
	step      Step
	answers   map[Step]string
	config    *makefile.Config
	confirmed bool
	cancelled bool
}

// New returns a model focused on the first prompt.
func New() Model {
	input := textinput.New()
	input.Placeholder = prompts[StepProject].placeholder
	input.Focus()
	return Model{
		input:   input,
		answers: make(map[Step]string),
	}
}

// Config returns the collected configuration once the user has confirmed.
func (m Model) Config() (*makefile.Config, bool) {
	if !m.confirmed || m.config == nil {
		return nil, false
	}
	return m.config, true
}

// Cancelled reports whether the user aborted the walk.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// buildConfig folds the collected answers into a Config, reusing the CLI
// splitting rules so comma lists behave identically in both surfaces.
func (m Model) buildConfig() *makefile.Config {
	cfg := makefile.NewConfig()
	cfg.ProjectName = m.answers[StepProject]
	cfg.BinaryName = m.answers[StepBinary]
	if v := m.answers[StepSources]; v != "" {
		cfg.SrcFiles = makefile.SplitList(v)
	}
	if v := m.answers[StepTests]; v != "" {
		cfg.TestFiles = makefile.SplitList(v)
	}
	if v := m.answers[StepIncludes]; v != "" {
		cfg.IncludeDirs = makefile.SplitList(v)
	}
	if v := m.answers[StepFlags]; v != "" {
		cfg.ExtraFlags = strings.Fields(v)
	}
	return cfg
}
