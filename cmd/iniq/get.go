package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/valyala/fasttemplate"

	"github.com/ZebulonRouseFrantzich/iniq"
)

// runGet handles the `iniq get` subcommand
func runGet(args []string) error {
	showHelp := false
	typ := "string"
	def := ""
	hasDefault := false
	tmpl := ""
	var positional []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--help", "-h":
			showHelp = true
		case "--type", "-t":
			if i+1 >= len(args) {
				return fmt.Errorf("missing value for %s", arg)
			}
			i++
			typ = args[i]
		case "--default", "-d":
			if i+1 >= len(args) {
				return fmt.Errorf("missing value for %s", arg)
			}
			i++
			def = args[i]
			hasDefault = true
		case "--format", "-f":
			if i+1 >= len(args) {
				return fmt.Errorf("missing value for %s", arg)
			}
			i++
			tmpl = args[i]
		default:
			if len(arg) > 0 && arg[0] != '-' {
				positional = append(positional, arg)
			} else {
				return fmt.Errorf("unknown option: %s\nRun 'iniq get --help' for usage", arg)
			}
		}
	}

	if showHelp {
		printGetHelp()
		return nil
	}
	if len(positional) != 3 {
		return fmt.Errorf("expected <file> <section> <key>; run 'iniq get --help' for usage")
	}
	file, section, key := positional[0], positional[1], positional[2]

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	f, err := iniq.NewParser(nil).ParseFile(ctx, file)
	if err != nil {
		return err
	}

	value, found := lookupValue(f, section, key)
	if !found {
		if !hasDefault {
			return fmt.Errorf("key %q not found in section %q", key, section)
		}
		value = def
	}

	out, err := renderValue(section, key, value, typ)
	if err != nil {
		return err
	}
	if tmpl != "" {
		out, err = renderTemplate(tmpl, section, key, out)
		if err != nil {
			return err
		}
	}
	fmt.Println(out)
	return nil
}

// lookupValue finds the stored value of key, distinguishing a stored empty
// string from an absent key.
func lookupValue(f *iniq.File, section, key string) (string, bool) {
	fields, ok := f.SectionFields(section)
	if !ok {
		return "", false
	}
	for _, field := range fields {
		if field.Key == key {
			return field.Value, true
		}
	}
	return "", false
}

// renderValue converts a raw value to its typed textual form. Unlike the
// library accessors, a value that does not fit the requested type is an
// error here, including for bool.
func renderValue(section, key, value, typ string) (string, error) {
	switch typ {
	case "string":
		return value, nil
	case "int":
		n, err := strconv.Atoi(value)
		if err != nil {
			return "", &iniq.ValueError{Section: section, Key: key, Value: value, Err: err}
		}
		return strconv.Itoa(n), nil
	case "int64":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return "", &iniq.ValueError{Section: section, Key: key, Value: value, Err: err}
		}
		return strconv.FormatInt(n, 10), nil
	case "float":
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return "", &iniq.ValueError{Section: section, Key: key, Value: value, Err: err}
		}
		return strconv.FormatFloat(n, 'g', -1, 64), nil
	case "bool":
		switch strings.ToLower(value) {
		case "true", "yes", "on", "1":
			return "true", nil
		case "false", "no", "off", "0":
			return "false", nil
		default:
			return "", fmt.Errorf("section %q, key %q: %q is not a boolean", section, key, value)
		}
	default:
		return "", fmt.Errorf("unknown type %q (want string, int, int64, float or bool)", typ)
	}
}

// renderTemplate expands {{section}}, {{key}} and {{value}} placeholders.
func renderTemplate(tmpl, section, key, value string) (string, error) {
	t, err := fasttemplate.NewTemplate(tmpl, "{{", "}}")
	if err != nil {
		return "", fmt.Errorf("bad format template: %w", err)
	}
	return t.ExecuteString(map[string]interface{}{
		"section": section,
		"key":     key,
		"value":   value,
	}), nil
}

// printGetHelp prints help for the get command
func printGetHelp() {
	fmt.Println("Usage: iniq get [options] <file> <section> <key>")
	fmt.Println()
	fmt.Println("Print a single value from an INI file.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -h, --help           Show this help message")
	fmt.Println("  -t, --type <type>    Convert before printing: string, int, int64, float, bool")
	fmt.Println("  -d, --default <val>  Value to print when the key is absent")
	fmt.Println("  -f, --format <tpl>   Output template with {{section}}, {{key}} and {{value}}")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  iniq get app.ini server port")
	fmt.Println("  iniq get app.ini server port --type int")
	fmt.Println("  iniq get app.ini server host --default localhost")
	fmt.Println("  iniq get app.ini server port --format '{{section}}.{{key}}={{value}}'")
}
