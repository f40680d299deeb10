package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/guessnum/internal/game"
)

func newCheckCmd() *cobra.Command {
	var (
		target int
		input  string
	)

	cmd := &cobra.Command{
		Use:   "check [input]",
		Short: "Evaluate one guess and print the result",
		Long: "Evaluate one guess against a freshly drawn target and print the message.\n" +
			"Omitting input evaluates an empty entry. Pass negative guesses with\n" +
			"--input=-3 or after a double dash: guessnum check -- -3.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := sourceForTarget(target)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				if cmd.Flags().Changed("input") {
					return fmt.Errorf("give the guess either as an argument or with --input, not both")
				}
				input = args[0]
			}
			res := game.NewEvaluator(src).Evaluate(input)
			fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			return nil
		},
	}

	cmd.Flags().IntVar(&target, "target", 0, "fix the target (1-100) instead of drawing one")
	cmd.Flags().StringVar(&input, "input", "", "guess to evaluate (use for values starting with '-')")
	return cmd
}

// sourceForTarget returns nil (random) for 0, a fixed source for 1..100.
func sourceForTarget(target int) (game.Source, error) {
	switch {
	case target == 0:
		return nil, nil
	case target < game.MinTarget || target > game.MaxTarget:
		return nil, fmt.Errorf("--target must be between %d and %d, got %d", game.MinTarget, game.MaxTarget, target)
	default:
		return game.FixedTarget(target), nil
	}
}
