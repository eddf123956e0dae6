package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"syntaxquiz/internal/completion"
	"syntaxquiz/internal/prompt"
	"syntaxquiz/internal/session"
	"syntaxquiz/internal/ui/live"
)

// runLive is swapped in tests so the full-screen UI is never started.
var runLive = live.Run

func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		language := flags.String("language", "", "Language to generate questions for")
		configPath := flags.String("config", "", "Path to config file (default: search for .syntaxquiz/config.yml)")
		uiMode := flags.String("ui", "", "UI mode: auto, live, or plain (default: config ui.mode)")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		verbose := flags.Bool("verbose", false, "Log prompts and raw responses to stderr")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if rejectArgs(cmd, flags, stderr) {
			return ExitUsage
		}
		if *language != "" {
			if err := prompt.CheckLanguage(*language); err != nil {
				fmt.Fprintf(stderr, "%v\n", err)
				return ExitUsage
			}
		}

		cfg, provider, ok := loadProvider(*configPath, stderr)
		if !ok {
			return ExitError
		}
		mode := *uiMode
		if mode == "" {
			mode = cfg.UI.Mode
		}
		decision, err := resolveUIMode(mode, *verbose, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}
		colorOff := *noColor || cfg.UI.NoColor

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if decision.useLive {
			feed := live.NewFeed()
			ctrl := session.New(provider, session.Options{OnChange: feed.Publish, NoColor: colorOff})
			err := runLive(ctx, ctrl, feed, live.RunOptions{
				Options: live.Options{NoColor: colorOff, Language: *language},
				Output:  stdout,
			})
			if err != nil {
				fmt.Fprintf(stderr, "Live UI failed: %v\n", err)
				return ExitError
			}
			return ExitOK
		}

		var logWriter io.Writer
		if *verbose {
			logWriter = stderr
		}
		return playPlain(ctx, provider, *language, session.Options{LogWriter: logWriter, NoColor: colorOff}, stdout, stderr)
	}
}

// playPlain runs one quiz over line-oriented stdin and stdout.
func playPlain(ctx context.Context, provider completion.Provider, language string, opts session.Options, stdout, stderr io.Writer) int {
	reader := bufio.NewReader(stdin)
	if language == "" {
		chosen, err := chooseLanguage(reader, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitError
		}
		language = chosen
	}

	ctrl := session.New(provider, opts)
	defer ctrl.Close()

	fmt.Fprintf(stdout, "Generating %s questions...\n", language)
	// A failed generation ends the quiz with no questions; the error has
	// already been logged when verbose output is on.
	_ = ctrl.Generate(ctx, language)

	for {
		snap := ctrl.Snapshot()
		card, ok := snap.Current()
		if !ok {
			break
		}
		fmt.Fprintf(stdout, "\nQuestion %d of %d (score %d)\n%s\n", snap.Answered()+1, snap.Total, snap.Score, card.Question)
		answer, err := promptAnswer(reader, stdout)
		if err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				fmt.Fprintln(stderr, "Input ended before the quiz finished.")
			} else {
				fmt.Fprintf(stderr, "%v\n", err)
			}
			return ExitError
		}
		correct, err := ctrl.SubmitAnswer(answer)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitError
		}
		if correct {
			fmt.Fprintln(stdout, "Correct!")
		} else {
			fmt.Fprintf(stdout, "Wrong, the answer was %t.\n", card.Answer)
		}
	}

	writeSummary(stdout, ctrl.Snapshot())
	return ExitOK
}

// chooseLanguage asks until the user names a supported language.
func chooseLanguage(reader *bufio.Reader, out io.Writer) (string, error) {
	for {
		value, err := promptString(reader, out, "Language")
		if err != nil {
			return "", err
		}
		if prompt.IsSupported(value) {
			return value, nil
		}
		if matches := prompt.FilterLanguages(value); len(matches) > 0 {
			fmt.Fprintf(out, "Did you mean: %s\n", strings.Join(matches, ", "))
			continue
		}
		fmt.Fprintln(out, "Unsupported language. Run \"syntaxquiz languages\" for the list.")
	}
}

func writeSummary(w io.Writer, snap session.Snapshot) {
	fmt.Fprintln(w, "\nQuiz Summary")
	fmt.Fprintf(w, "Correct answers: %d\n", snap.Score)
	fmt.Fprintf(w, "Time taken: %s\n", live.FormatElapsed(snap.Elapsed()))
	if snap.Total > 0 {
		fmt.Fprintf(w, "Percentage: %s\n", live.FormatPercentage(snap.Percentage()))
	}
}
