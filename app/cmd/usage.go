package cmd

// usageText mirrors the historical help block of the generator.
const usageText = `Usage: epimake gen [options] <project_name> [binary_name] [sources...]

Options:
  -n, --name <name>        Project name
  -b, --binary <name>      Binary name (default: project name)
  -s, --src <files>        Source files (comma-separated)
  -t, --tests <files>      Test files for Criterion (comma-separated)
  -I, --include <dirs>     Include directories (default: ./include)
  -f, --flags <flags>      Additional compiler flags

Examples:
  epimake gen my_project
  epimake gen --name my_project --binary my_prog --src src/main.c,src/utils.c
  epimake gen my_project --tests tests/test_main.c,tests/test_utils.c
  epimake gen my_project my_binary src/main.c src/file.c
  epimake gen my_project --src src/core/main.c,src/utils/helper.c --tests tests/test_core.c

Features:
  - Uses clang-20 as default compiler
  - Creates build/ directory for .o files
  - Preserves source directory structure in build/
  - EPITECH coding-style compliant
  - Criterion unit tests support with coverage
  - Automatic main.c exclusion in tests
`
