package makefile

import (
	"fmt"
	"strings"
)

// Toolchain constants baked into every generated Makefile.
const (
	DefaultCC      = "clang-20"
	DefaultCFLAGS  = "-Werror -Wextra"
	CriterionFlags = "-lcriterion --coverage"

	TestBinaryName = "unit_tests"

	// DefaultBuildDir and BuildDirObjects are the two object-directory
	// layouts the tool supports; the active one comes from Settings.
	DefaultBuildDir = "build"
	BuildDirObjects = "objects"

	DefaultOutput = "Makefile"

	sourceSuffix = ".c"
)

// Defaults applied when the corresponding input is absent.
const (
	DefaultIncludeDir = "./include"
	DefaultSource     = "src/main.c"
	DefaultTestSource = "tests/test_main.c"
)

// Config carries everything the renderer needs for one Makefile.
type Config struct {
	ProjectName string   `json:"project"`
	BinaryName  string   `json:"binary"`
	SrcFiles    []string `json:"sources"`
	TestFiles   []string `json:"tests,omitempty"`
	IncludeDirs []string `json:"includes"`
	ExtraFlags  []string `json:"flags,omitempty"`
}

// NewConfig returns a Config with the include-directory default applied.
func NewConfig() *Config {
	return &Config{IncludeDirs: []string{DefaultIncludeDir}}
}

// HasTests reports whether the test sections belong in the output.
func (c *Config) HasTests() bool {
	return len(c.TestFiles) > 0
}

// Validate checks the one field that cannot be defaulted away.
func (c *Config) Validate() error {
	if c.ProjectName == "" {
		return &UsageError{Msg: "Project name is required"}
	}
	return nil
}

// Normalize fills the remaining defaults and returns non-fatal warnings
// about entries that do not look like C sources. Test files are reset to the
// default only when every given entry is empty, so a list like ["", "a.c"]
// survives untouched.
func (c *Config) Normalize() []string {
	if c.BinaryName == "" && c.ProjectName != "" {
		c.BinaryName = c.ProjectName
	}
	if len(c.SrcFiles) == 0 {
		c.SrcFiles = []string{DefaultSource}
	}
	if len(c.TestFiles) > 0 && allEmpty(c.TestFiles) {
		c.TestFiles = []string{DefaultTestSource}
	}
	var warnings []string
	for _, src := range c.SrcFiles {
		if !strings.HasSuffix(src, sourceSuffix) {
			warnings = append(warnings, fmt.Sprintf("'%s' is not a .c file", src))
		}
	}
	for _, test := range c.TestFiles {
		if !strings.HasSuffix(test, sourceSuffix) {
			warnings = append(warnings, fmt.Sprintf("'%s' is not a .c test file", test))
		}
	}
	return warnings
}

func allEmpty(values []string) bool {
	for _, v := range values {
		if v != "" {
			return false
		}
	}
	return true
}

// UsageError reports invalid generator input. An empty message tells the
// caller to show usage without an error line.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	if e.Msg == "" {
		return "invalid usage"
	}
	return e.Msg
}
