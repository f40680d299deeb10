// internal/game/types.go
//
// Core type definitions for the guess evaluator.
// Defines:
//   - Outcome: classification of a single evaluated guess.
//   - Result: everything one evaluation produced (message + the values behind it).
//   - Source: randomness seam used to draw the target.

package game

// Outcome classifies one evaluation. The string values are also used on the
// wire (/guess responses) and as keys in the outcome tally.
type Outcome string

const (
	OutcomeEmpty   Outcome = "empty"   // no input at all
	OutcomeInvalid Outcome = "invalid" // input has no leading number
	OutcomeCorrect Outcome = "correct" // guess == target
	OutcomeHigher  Outcome = "higher"  // guess < target, user should go higher
	OutcomeLower   Outcome = "lower"   // guess > target, user should go lower
)

// Outcomes lists every Outcome in a stable order.
var Outcomes = []Outcome{OutcomeEmpty, OutcomeInvalid, OutcomeCorrect, OutcomeHigher, OutcomeLower}

// Fixed user-facing messages.
const (
	MsgEmpty   = "Please enter a number."
	MsgInvalid = "Invalid input. Please enter a valid number."
	MsgHigher  = "Try a higher number."
	MsgLower   = "Try a lower number."

	// msgCorrectFmt is rendered with the attempt counter. The counter is
	// per-call so this always reads "1 attempts".
	msgCorrectFmt = "Congratulations! You guessed the number in %d attempts!"
)

// Result is the outcome of a single Evaluate call.
type Result struct {
	Outcome  Outcome // classification
	Message  string  // text written to the result element
	Target   int     // drawn secret, always in [MinTarget, MaxTarget]
	Guess    int     // parsed guess; zero unless Outcome is correct/higher/lower
	Attempts int     // per-call counter: 0 for empty input, otherwise 1
}

// Source provides uniformly distributed integers.
type Source interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(n int) int

// Intn calls f(n).
func (f SourceFunc) Intn(n int) int { return f(n) }
