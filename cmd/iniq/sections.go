package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ZebulonRouseFrantzich/iniq"
)

// runSections handles the `iniq sections` subcommand
func runSections(args []string) error {
	showHelp := false
	showFields := false
	var file string

	for _, arg := range args {
		switch arg {
		case "--help", "-h":
			showHelp = true
		case "--fields", "-f":
			showFields = true
		default:
			if len(arg) > 0 && arg[0] != '-' {
				if file != "" {
					return fmt.Errorf("unexpected argument: %s", arg)
				}
				file = arg
			} else {
				return fmt.Errorf("unknown option: %s\nRun 'iniq sections --help' for usage", arg)
			}
		}
	}

	if showHelp {
		printSectionsHelp()
		return nil
	}
	if file == "" {
		return fmt.Errorf("no file specified; run 'iniq sections --help' for usage")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	f, err := iniq.NewParser(nil).ParseFile(ctx, file)
	if err != nil {
		return err
	}

	fmt.Print(formatSections(f, showFields))
	return nil
}

// formatSections renders the section listing.
func formatSections(f *iniq.File, showFields bool) string {
	var sb strings.Builder
	for _, name := range f.SectionNames() {
		fmt.Fprintf(&sb, "[%s]\n", name)
		if !showFields {
			continue
		}
		fields, _ := f.SectionFields(name)
		for _, field := range fields {
			fmt.Fprintf(&sb, "  %s=%s\n", field.Key, field.Value)
		}
	}
	return sb.String()
}

// printSectionsHelp prints help for the sections command
func printSectionsHelp() {
	fmt.Println("Usage: iniq sections [options] <file>")
	fmt.Println()
	fmt.Println("List every section of an INI file in sorted order.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -h, --help    Show this help message")
	fmt.Println("  -f, --fields  Also list the key-value pairs of each section")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  iniq sections app.ini             List section names")
	fmt.Println("  iniq sections --fields app.ini    List sections with their fields")
}
