package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/robalobadob/guessnum/internal/game"
)

func newPlayCmd() *cobra.Command {
	var target int

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Prompt for guesses interactively (Ctrl-C to quit)",
		Long: "Prompt for guesses interactively. Every entry is evaluated on its own,\n" +
			"against a freshly drawn target. Press Ctrl-C to quit.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := sourceForTarget(target)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "I'm thinking of a number between %d and %d.\n", game.MinTarget, game.MaxTarget)
			return playLoop(game.NewEvaluator(src), askGuess, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&target, "target", 0, "fix the target (1-100) instead of drawing one")
	return cmd
}

// askGuess prompts once on the terminal.
func askGuess() (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{Message: "Enter a number:"}, &answer)
	return answer, err
}

// playLoop evaluates answers from ask until it reports an interrupt or EOF.
func playLoop(ev *game.Evaluator, ask func() (string, error), out io.Writer) error {
	for {
		answer, err := ask()
		if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
		fmt.Fprintln(out, ev.Evaluate(answer).Message)
	}
}
