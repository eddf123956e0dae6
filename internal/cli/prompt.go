package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"syntaxquiz/internal/prompt"
)

func runPrompt(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		language := flags.String("language", "", "Language to build the prompt for (required)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if rejectArgs(cmd, flags, stderr) {
			return ExitUsage
		}
		if *language == "" {
			fmt.Fprintln(stderr, "--language is required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if err := prompt.CheckLanguage(*language); err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		fmt.Fprintln(stdout, prompt.BuildPrompt(*language))
		return ExitOK
	}
}

func runLanguages(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		if len(args) > 1 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(args[1:], " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		matches := prompt.FilterLanguages(query)
		if len(matches) == 0 {
			fmt.Fprintf(stderr, "No languages start with %q.\n", query)
			return ExitError
		}
		for _, language := range matches {
			fmt.Fprintln(stdout, language)
		}
		return ExitOK
	}
}
