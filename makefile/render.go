package makefile

import (
	"fmt"
	"os"
	"strings"
)

// RenderOptions carries the two render inputs that live outside the Config:
// the copyright year for the header and the object-directory name.
type RenderOptions struct {
	Year     int
	BuildDir string
}

// Render produces the complete Makefile text. Output is deterministic for a
// given Config and options; BuildDir falls back to DefaultBuildDir.
func Render(cfg *Config, opts RenderOptions) string {
	buildDir := opts.BuildDir
	if buildDir == "" {
		buildDir = DefaultBuildDir
	}
	hasTests := cfg.HasTests()

	var b strings.Builder
	fmt.Fprintf(&b, "##\n## EPITECH PROJECT, %d\n## %s\n## File description:\n## Makefile\n##\n\n", opts.Year, cfg.ProjectName)

	fmt.Fprintf(&b, "CC = %s\n\n", DefaultCC)

	cflags := DefaultCFLAGS
	if len(cfg.IncludeDirs) > 0 {
		includes := make([]string, len(cfg.IncludeDirs))
		for i, dir := range cfg.IncludeDirs {
			includes[i] = "-I" + dir
		}
		cflags += " " + strings.Join(includes, " ")
	}
	if len(cfg.ExtraFlags) > 0 {
		cflags += " " + strings.Join(cfg.ExtraFlags, " ")
	}
	fmt.Fprintf(&b, "CFLAGS = %s\n\n", cflags)

	fmt.Fprintf(&b, "SRC = %s\n\n", joinSources(cfg.SrcFiles))

	if hasTests {
		fmt.Fprintf(&b, "TESTS = %s\n\n", joinSources(cfg.TestFiles))
		// Keep main.c out of the test link to avoid duplicate entry points.
		b.WriteString("SRC_NO_MAIN = $(filter-out %main.c, $(SRC))\n\n")
	}

	fmt.Fprintf(&b, "NAME = %s\n\n", cfg.BinaryName)
	fmt.Fprintf(&b, "BUILD_DIR = %s\n\n", buildDir)
	if hasTests {
		fmt.Fprintf(&b, "TEST_NAME = %s\n\n", TestBinaryName)
	}

	b.WriteString("OBJ = $(SRC:%.c=$(BUILD_DIR)/%.o)\n\n")
	if hasTests {
		b.WriteString("TEST_OBJ = $(TESTS:%.c=$(BUILD_DIR)/%.o) $(SRC_NO_MAIN:%.c=$(BUILD_DIR)/%.o)\n\n")
	}

	b.WriteString("all: $(NAME)\n\n")

	b.WriteString("$(NAME): $(OBJ)\n")
	b.WriteString("\t$(CC) -o $(NAME) $(OBJ) -g $(CFLAGS)\n\n")

	if hasTests {
		b.WriteString("tests_run: $(TEST_OBJ)\n")
		fmt.Fprintf(&b, "\t$(CC) -o $(TEST_NAME) $(TEST_OBJ) -g $(CFLAGS) %s\n", CriterionFlags)
		b.WriteString("\t./$(TEST_NAME)\n")
		b.WriteString("\tgcovr --exclude tests/\n")
		b.WriteString("\tgcovr --exclude tests/ --branches\n\n")
	}

	b.WriteString("$(BUILD_DIR)/%.o: %.c\n")
	b.WriteString("\t@mkdir -p $(dir $@)\n")
	b.WriteString("\t$(CC) $(CFLAGS) -c $< -o $@\n\n")

	b.WriteString("clean:\n")
	b.WriteString("\trm -rf $(BUILD_DIR)\n")
	b.WriteString("\trm -Rf *.o\n")
	if hasTests {
		b.WriteString("\trm -rf *.gcda *.gcno\n")
	}
	b.WriteString("\n")

	b.WriteString("fclean: clean\n")
	b.WriteString("\trm -f $(NAME)\n")
	if hasTests {
		b.WriteString("\trm -f $(TEST_NAME)\n")
	}
	b.WriteString("\trm -Rf #*#\n")
	b.WriteString("\trm -Rf #~\n\n")

	b.WriteString("re: fclean all\n\n")

	b.WriteString("cs: clean fclean\n")
	b.WriteString("\tcoding-style . .\n")
	b.WriteString("\tcat *.log\n")
	b.WriteString("\tsudo rm *.log\n\n")

	b.WriteString("ban:\n")
	b.WriteString("\tbanned_functions write\n\n")

	b.WriteString("debug:\n")
	b.WriteString("\t@echo \"CC: $(CC)\"\n")
	b.WriteString("\t@echo \"CFLAGS: $(CFLAGS)\"\n")
	b.WriteString("\t@echo \"SRC: $(SRC)\"\n")
	b.WriteString("\t@echo \"OBJ: $(OBJ)\"\n")
	if hasTests {
		b.WriteString("\t@echo \"TESTS: $(TESTS)\"\n")
		b.WriteString("\t@echo \"TEST_OBJ: $(TEST_OBJ)\"\n")
		b.WriteString("\t@echo \"SRC_NO_MAIN: $(SRC_NO_MAIN)\"\n")
	}
	b.WriteString("\t@echo \"BUILD_DIR: $(BUILD_DIR)\"\n\n")

	phony := "fclean re all cs ban debug"
	if hasTests {
		phony += " tests_run"
	}
	fmt.Fprintf(&b, ".PHONY: %s\n", phony)

	return b.String()
}

// joinSources lays a file list out the way make expects: a single entry stays
// on the assignment line, longer lists continue with a backslash and two tabs.
func joinSources(files []string) string {
	if len(files) == 1 {
		return files[0]
	}
	return strings.Join(files, " \\\n\t\t")
}

// Write renders cfg and replaces the file at path in one call.
func Write(path string, cfg *Config, opts RenderOptions) error {
	return os.WriteFile(path, []byte(Render(cfg, opts)), 0o644)
}
