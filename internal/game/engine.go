// internal/game/engine.go
//
// Guess evaluator.
// Responsibilities:
//   - Draw a fresh target in [1,100] on every evaluation.
//   - Parse raw input using leading-numeric-prefix rules.
//   - Classify the guess and render exactly one of five fixed messages.
//
// Notes:
//   - There is no game state. Each Evaluate call is independent, so two
//     consecutive guesses are judged against two different targets.
//   - The attempt counter lives only inside Evaluate and never exceeds 1.
//   - Evaluate never fails; "errors" are ordinary messages.
package game

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand"
)

const (
	MinTarget = 1
	MaxTarget = 100
)

// Evaluator turns raw input into a Result. It holds no per-game state and is
// safe for concurrent use if its Source is.
type Evaluator struct {
	src Source
}

// NewEvaluator returns an Evaluator drawing from src.
// A nil src selects CryptoSource.
func NewEvaluator(src Source) *Evaluator {
	if src == nil {
		src = CryptoSource{}
	}
	return &Evaluator{src: src}
}

// Evaluate draws a new target and classifies input against it.
//
// Order of checks:
//  1. empty input         → MsgEmpty
//  2. no leading number   → MsgInvalid
//  3. guess == target     → congratulations
//  4. guess <  target     → MsgHigher
//  5. guess >  target     → MsgLower
//
// Out-of-range guesses (negative, > 100) are accepted and compared as-is.
func (e *Evaluator) Evaluate(input string) Result {
	target := DrawTarget(e.src)
	attempts := 0

	if input == "" {
		return Result{Outcome: OutcomeEmpty, Message: MsgEmpty, Target: target, Attempts: attempts}
	}

	guess, ok := ParseGuess(input)
	attempts++
	res := Result{Target: target, Attempts: attempts}

	switch {
	case !ok:
		res.Outcome, res.Message = OutcomeInvalid, MsgInvalid
	case guess == target:
		res.Outcome, res.Message = OutcomeCorrect, fmt.Sprintf(msgCorrectFmt, attempts)
		res.Guess = guess
	case guess < target:
		res.Outcome, res.Message = OutcomeHigher, MsgHigher
		res.Guess = guess
	default:
		res.Outcome, res.Message = OutcomeLower, MsgLower
		res.Guess = guess
	}
	return res
}

// DrawTarget returns a target in [MinTarget, MaxTarget].
// Values a Source returns outside [0, span) are folded back into range.
func DrawTarget(src Source) int {
	span := MaxTarget - MinTarget + 1
	v := src.Intn(span) % span
	if v < 0 {
		v += span
	}
	return MinTarget + v
}

// FixedTarget returns a Source that always yields target (test and CLI seam).
// target is expected to be within [MinTarget, MaxTarget].
func FixedTarget(target int) Source {
	return SourceFunc(func(int) int { return target - MinTarget })
}

// CryptoSource draws from crypto/rand.
type CryptoSource struct{}

// Intn returns a uniform value in [0, n). It falls back to math/rand
// if the system entropy source fails.
func (CryptoSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return mrand.Intn(n)
	}
	return int(nBig.Int64())
}
