package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"syntaxquiz/internal/prompt"
	"syntaxquiz/internal/session"
)

func runGenerate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		language := flags.String("language", "", "Language to generate questions for (required)")
		configPath := flags.String("config", "", "Path to config file (default: search for .syntaxquiz/config.yml)")
		asJSON := flags.Bool("json", false, "Print cards as JSON")
		verbose := flags.Bool("verbose", false, "Log prompts and raw responses to stderr")
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

		cfg, provider, ok := loadProvider(*configPath, stderr)
		if !ok {
			return ExitError
		}
		opts := session.Options{NoColor: cfg.UI.NoColor}
		if *verbose {
			opts.LogWriter = stderr
		}
		ctrl := session.New(provider, opts)
		defer ctrl.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := ctrl.Generate(ctx, *language); err != nil {
			if errors.Is(err, session.ErrNoQuestions) {
				fmt.Fprintln(stderr, "Generation returned no questions.")
			} else {
				fmt.Fprintf(stderr, "Generation failed: %v\n", err)
			}
			return ExitError
		}
		if err := writeDeck(stdout, ctrl.Snapshot().Deck, *asJSON); err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
