package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"syntaxquiz/internal/quiz"
)

func runParse(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		asJSON := flags.Bool("json", false, "Print cards as JSON")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() > 1 {
			fmt.Fprintln(stderr, "parse accepts at most one file")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		source := stdin
		if path := flags.Arg(0); path != "" && path != "-" {
			file, err := os.Open(path)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to open input: %v\n", err)
				return ExitError
			}
			defer file.Close()
			source = file
		}
		deck, err := quiz.ParseQuestionsFrom(source)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitError
		}
		if len(deck) == 0 {
			fmt.Fprintln(stderr, "No questions found.")
		}
		if err := writeDeck(stdout, deck, *asJSON); err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
