package makefile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseArgsPositionals(t *testing.T) {
	cfg, err := ParseArgs([]string{"demo"})
	require.NoError(t, err)
	require.Equal(t, "demo", cfg.ProjectName)
	require.Empty(t, cfg.BinaryName)
	require.Empty(t, cfg.SrcFiles)
	require.Equal(t, []string{DefaultIncludeDir}, cfg.IncludeDirs)

	cfg, err = ParseArgs([]string{"demo", "bin", "src/a.c", "README.md", "src/b.c"})
	require.NoError(t, err)
	require.Equal(t, "demo", cfg.ProjectName)
	require.Equal(t, "bin", cfg.BinaryName)
	require.Equal(t, []string{"src/a.c", "src/b.c"}, cfg.SrcFiles)
}

func TestParseArgsOptions(t *testing.T) {
	cfg, err := ParseArgs([]string{
		"--name", "demo",
		"-b", "prog",
		"--src", "src/a.c",
		"-t", "tests/t.c",
		"--include", "inc",
		"-f", "-O2 -g",
	})
	require.NoError(t, err)
	require.Equal(t, "demo", cfg.ProjectName)
	require.Equal(t, "prog", cfg.BinaryName)
	require.Equal(t, []string{"src/a.c"}, cfg.SrcFiles)
	require.Equal(t, []string{"tests/t.c"}, cfg.TestFiles)
	require.Equal(t, []string{"inc"}, cfg.IncludeDirs)
	require.Equal(t, []string{"-O2", "-g"}, cfg.ExtraFlags)
}

func TestParseArgsSrcCommaReplacesBareAppends(t *testing.T) {
	cfg, err := ParseArgs([]string{"demo", "--src", "old.c", "--src", "a.c,b.c", "--src", "c.c"})
	require.NoError(t, err)
	require.Equal(t, []string{"a.c", "b.c", "c.c"}, cfg.SrcFiles)
}

func TestParseArgsCommaSplitKeepsEmptiesAndTrims(t *testing.T) {
	cfg, err := ParseArgs([]string{"demo", "--src", " a.c ,, b.c "})
	require.NoError(t, err)
	require.Equal(t, []string{"a.c", "", "b.c"}, cfg.SrcFiles)
}

func TestParseArgsIncludeBareReplaces(t *testing.T) {
	cfg, err := ParseArgs([]string{"demo", "-I", "foo", "-I", "bar"})
	require.NoError(t, err)
	require.Equal(t, []string{"bar"}, cfg.IncludeDirs)

	cfg, err = ParseArgs([]string{"demo", "-I", "inc1,inc2"})
	require.NoError(t, err)
	require.Equal(t, []string{"inc1", "inc2"}, cfg.IncludeDirs)
}

func TestParseArgsValueMayStartWithDash(t *testing.T) {
	cfg, err := ParseArgs([]string{"--name", "--binary"})
	require.NoError(t, err)
	require.Equal(t, "--binary", cfg.ProjectName)
}

func TestParseArgsMissingValueNamesLongOption(t *testing.T) {
	for _, args := range [][]string{
		{"demo", "--name"},
		{"demo", "-s"},
	} {
		_, err := ParseArgs(args)
		var usage *UsageError
		require.ErrorAs(t, err, &usage)
		require.NotEmpty(t, usage.Msg)
	}

	_, err := ParseArgs([]string{"demo", "-s"})
	var usage *UsageError
	require.ErrorAs(t, err, &usage)
	require.Equal(t, "--src requires a value", usage.Msg)
}

func TestParseArgsUnknownOption(t *testing.T) {
	for _, arg := range []string{"-x", "--name=demo", "-Iinc"} {
		_, err := ParseArgs([]string{"demo", arg})
		var usage *UsageError
		require.ErrorAs(t, err, &usage)
		require.Equal(t, "Unknown option "+arg, usage.Msg)
	}
}

func TestParseArgsEmpty(t *testing.T) {
	_, err := ParseArgs(nil)
	var usage *UsageError
	require.True(t, errors.As(err, &usage))
	require.Empty(t, usage.Msg)
}

func TestParseArgsPositionalFillsEmptyName(t *testing.T) {
	cfg, err := ParseArgs([]string{"--name", "", "demo"})
	require.NoError(t, err)
	require.Equal(t, "demo", cfg.ProjectName)
}

func TestSplitList(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, SplitList(" a , b "))
	require.Equal(t, []string{"a", "", "b"}, SplitList("a,,b"))
	require.Equal(t, []string{"solo"}, SplitList("solo"))
}
