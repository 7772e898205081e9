package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ZebulonRouseFrantzich/iniq"
	"github.com/ZebulonRouseFrantzich/iniq/internal/encode"
)

// runConvert handles the `iniq convert` subcommand
func runConvert(args []string) error {
	showHelp := false
	to := "json"
	out := ""
	var file string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--help", "-h":
			showHelp = true
		case "--to", "-t":
			if i+1 >= len(args) {
				return fmt.Errorf("missing value for %s", arg)
			}
			i++
			to = args[i]
		case "--out", "-o":
			if i+1 >= len(args) {
				return fmt.Errorf("missing value for %s", arg)
			}
			i++
			out = args[i]
		default:
			if len(arg) > 0 && arg[0] != '-' {
				if file != "" {
					return fmt.Errorf("unexpected argument: %s", arg)
				}
				file = arg
			} else {
				return fmt.Errorf("unknown option: %s\nRun 'iniq convert --help' for usage", arg)
			}
		}
	}

	if showHelp {
		printConvertHelp()
		return nil
	}
	if file == "" {
		return fmt.Errorf("no file specified; run 'iniq convert --help' for usage")
	}

	format, err := encode.ParseFormat(to)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	f, err := iniq.NewParser(nil).ParseFile(ctx, file)
	if err != nil {
		return fmt.Errorf("%s is not a valid config: %w", file, err)
	}

	data, err := encode.Encode(f, format)
	if err != nil {
		return fmt.Errorf("encode as %s: %w", format, err)
	}
	data = ensureNewline(data)

	if out == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(out, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Printf("Wrote %s (%s)\n", out, format)
	return nil
}

// ensureNewline guarantees the output ends with a newline.
func ensureNewline(data []byte) []byte {
	if len(data) == 0 || data[len(data)-1] == '\n' {
		return data
	}
	return append(data, '\n')
}

// printConvertHelp prints help for the convert command
func printConvertHelp() {
	fmt.Println("Usage: iniq convert [options] <file>")
	fmt.Println()
	fmt.Println("Re-encode an INI file as JSON, TOML or YAML. The file must parse")
	fmt.Println("cleanly; values are carried over as strings, untyped.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -h, --help          Show this help message")
	fmt.Println("  -t, --to <format>   Target format: json (default), toml or yaml")
	fmt.Println("  -o, --out <path>    Write to a file instead of stdout")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  iniq convert app.ini                      Print JSON to stdout")
	fmt.Println("  iniq convert --to yaml app.ini            Print YAML to stdout")
	fmt.Println("  iniq convert --to toml -o app.toml app.ini")
}
