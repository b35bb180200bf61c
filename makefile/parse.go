package makefile

import "strings"

// ParseArgs folds the raw argument list (program and command names excluded)
// into a Config. Options are exact-token matches consuming the following
// token as their value; spellings like --name=x or -Ifoo are rejected as
// unknown options. Positionals fill the project name, then the binary name,
// then append trailing .c sources; other surplus positionals are ignored.
func ParseArgs(args []string) (*Config, error) {
	if len(args) == 0 {
		return nil, &UsageError{}
	}
	cfg := NewConfig()
	for i := 0; i < len(args); {
		arg := args[i]
		switch arg {
		case "--name", "-n":
			value, err := optionValue(args, i, "--name")
			if err != nil {
				return nil, err
			}
			cfg.ProjectName = value
			i += 2
		case "--binary", "-b":
			value, err := optionValue(args, i, "--binary")
			if err != nil {
				return nil, err
			}
			cfg.BinaryName = value
			i += 2
		case "--src", "-s":
			value, err := optionValue(args, i, "--src")
			if err != nil {
				return nil, err
			}
			// A comma-bearing value replaces the accumulated list; a
			// bare value appends to it.
			if strings.Contains(value, ",") {
				cfg.SrcFiles = SplitList(value)
			} else {
				cfg.SrcFiles = append(cfg.SrcFiles, value)
			}
			i += 2
		case "--tests", "-t":
			value, err := optionValue(args, i, "--tests")
			if err != nil {
				return nil, err
			}
			if strings.Contains(value, ",") {
				cfg.TestFiles = SplitList(value)
			} else {
				cfg.TestFiles = append(cfg.TestFiles, value)
			}
			i += 2
		case "--include", "-I":
			value, err := optionValue(args, i, "--include")
			if err != nil {
				return nil, err
			}
			// Includes always replace, even for a bare value.
			if strings.Contains(value, ",") {
				cfg.IncludeDirs = SplitList(value)
			} else {
				cfg.IncludeDirs = []string{value}
			}
			i += 2
		case "--flags", "-f":
			value, err := optionValue(args, i, "--flags")
			if err != nil {
				return nil, err
			}
			cfg.ExtraFlags = strings.Fields(value)
			i += 2
		default:
			if strings.HasPrefix(arg, "-") {
				return nil, &UsageError{Msg: "Unknown option " + arg}
			}
			switch {
			case cfg.ProjectName == "":
				cfg.ProjectName = arg
			case cfg.BinaryName == "":
				cfg.BinaryName = arg
			case strings.HasSuffix(arg, sourceSuffix):
				cfg.SrcFiles = append(cfg.SrcFiles, arg)
			}
			i++
		}
	}
	return cfg, nil
}

// optionValue returns the token following the option at index i. The error
// always names the long spelling, matching the tool's historical output.
func optionValue(args []string, i int, long string) (string, error) {
	if i+1 >= len(args) {
		return "", &UsageError{Msg: long + " requires a value"}
	}
	return args[i+1], nil
}

// SplitList splits a comma-separated option value, trimming whitespace
// around each element but keeping empty ones.
func SplitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		out = append(out, strings.TrimSpace(part))
	}
	return out
}
