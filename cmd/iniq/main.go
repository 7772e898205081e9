package main

import (
	"fmt"
	"os"
)

// Version will be set at build time via -ldflags
var Version = "v0.1.0"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version":
			fmt.Printf("iniq %s\n", Version)
			return
		case "sections":
			if err := runSections(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "get":
			if err := runGet(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "lint":
			code, err := runLint(os.Args[2:])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			os.Exit(code)
		case "convert":
			if err := runConvert(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	// Default: show help
	fmt.Println("iniq - inspect, validate and convert INI configuration files")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  iniq version                      Show version information")
	fmt.Println("  iniq sections [options] <file>    List the sections of a file")
	fmt.Println("  iniq get [options] <file> <section> <key>")
	fmt.Println("                                    Print a single value")
	fmt.Println("  iniq lint [options] <file>        Report syntax problems")
	fmt.Println("  iniq convert [options] <file>     Re-encode as JSON, TOML or YAML")
	fmt.Println()
	fmt.Println("Run 'iniq <command> --help' for details on a command.")
}
