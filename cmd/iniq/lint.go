package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ZebulonRouseFrantzich/iniq"
)

// runLint handles the `iniq lint` subcommand.
// Returns an exit code (0 = clean, 1 = problems found) and an error.
func runLint(args []string) (int, error) {
	showHelp := false
	collectAll := false
	var file string

	for _, arg := range args {
		switch arg {
		case "--help", "-h":
			showHelp = true
		case "--all", "-a":
			collectAll = true
		default:
			if len(arg) > 0 && arg[0] != '-' {
				if file != "" {
					return 1, fmt.Errorf("unexpected argument: %s", arg)
				}
				file = arg
			} else {
				return 1, fmt.Errorf("unknown option: %s\nRun 'iniq lint --help' for usage", arg)
			}
		}
	}

	if showHelp {
		printLintHelp()
		return 0, nil
	}
	if file == "" {
		return 1, fmt.Errorf("no file specified; run 'iniq lint --help' for usage")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	opts := iniq.DefaultOptions()
	opts.CollectAllErrors = collectAll

	// The File itself carries every problem to report, so the error return
	// is not needed here.
	f, _ := iniq.NewParser(&opts).ParseFile(ctx, file)

	errs := f.Errors()
	if len(errs) == 0 {
		fmt.Printf("%s: no problems found\n", file)
		return 0, nil
	}

	fmt.Print(formatLintReport(file, errs))
	return 1, nil
}

// formatLintReport renders one line per problem plus a summary line.
func formatLintReport(file string, errs []*iniq.ParseError) string {
	var sb strings.Builder
	for _, e := range errs {
		fmt.Fprintf(&sb, "%s: %s [%s]\n", file, e.Error(), e.Kind)
	}
	plural := "s"
	if len(errs) == 1 {
		plural = ""
	}
	fmt.Fprintf(&sb, "%d problem%s found\n", len(errs), plural)
	return sb.String()
}

// printLintHelp prints help for the lint command
func printLintHelp() {
	fmt.Println("Usage: iniq lint [options] <file>")
	fmt.Println()
	fmt.Println("Check an INI file for syntax problems.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -h, --help  Show this help message")
	fmt.Println("  -a, --all   Keep going after the first problem and report every one")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  iniq lint app.ini          Stop at the first problem")
	fmt.Println("  iniq lint --all app.ini    Report every problem in the file")
	fmt.Println()
	fmt.Println("Exit codes:")
	fmt.Println("  0  No problems found")
	fmt.Println("  1  One or more problems found")
}
