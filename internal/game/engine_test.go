package game

import (
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

func TestEvaluate_Messages(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		input  string
		target int
		want   Result
	}{
		{
			name: "empty input", input: "", target: 42,
			want: Result{Outcome: OutcomeEmpty, Message: "Please enter a number.", Target: 42},
		},
		{
			name: "letters only", input: "abc", target: 42,
			want: Result{Outcome: OutcomeInvalid, Message: "Invalid input. Please enter a valid number.", Target: 42, Attempts: 1},
		},
		{
			name: "whitespace only is not empty", input: "   ", target: 42,
			want: Result{Outcome: OutcomeInvalid, Message: "Invalid input. Please enter a valid number.", Target: 42, Attempts: 1},
		},
		{
			name: "exact match", input: "50", target: 50,
			want: Result{Outcome: OutcomeCorrect, Message: "Congratulations! You guessed the number in 1 attempts!", Target: 50, Guess: 50, Attempts: 1},
		},
		{
			name: "too low", input: "10", target: 90,
			want: Result{Outcome: OutcomeHigher, Message: "Try a higher number.", Target: 90, Guess: 10, Attempts: 1},
		},
		{
			name: "too high", input: "90", target: 10,
			want: Result{Outcome: OutcomeLower, Message: "Try a lower number.", Target: 10, Guess: 90, Attempts: 1},
		},
		{
			name: "numeric prefix", input: "42abc", target: 42,
			want: Result{Outcome: OutcomeCorrect, Message: "Congratulations! You guessed the number in 1 attempts!", Target: 42, Guess: 42, Attempts: 1},
		},
		{
			name: "negative accepted", input: "-5", target: 1,
			want: Result{Outcome: OutcomeHigher, Message: "Try a higher number.", Target: 1, Guess: -5, Attempts: 1},
		},
		{
			name: "above range accepted", input: "1000", target: 100,
			want: Result{Outcome: OutcomeLower, Message: "Try a lower number.", Target: 100, Guess: 1000, Attempts: 1},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := NewEvaluator(FixedTarget(tc.target)).Evaluate(tc.input)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Evaluate(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestEvaluate_DrawsTargetEveryCall(t *testing.T) {
	t.Parallel()

	draws := 0
	src := SourceFunc(func(n int) int {
		draws++
		return draws - 1
	})
	ev := NewEvaluator(src)

	first := ev.Evaluate("1")
	second := ev.Evaluate("1")
	empty := ev.Evaluate("")

	if draws != 3 {
		t.Fatalf("expected 3 draws, got %d", draws)
	}
	if first.Target != 1 || second.Target != 2 || empty.Target != 3 {
		t.Fatalf("unexpected targets: %d, %d, %d", first.Target, second.Target, empty.Target)
	}
	if first.Outcome != OutcomeCorrect || second.Outcome != OutcomeHigher {
		t.Fatalf("unexpected outcomes: %s, %s", first.Outcome, second.Outcome)
	}
}

func TestCryptoSource_TargetsInRange(t *testing.T) {
	t.Parallel()

	ev := NewEvaluator(nil)
	seen := make(map[int]bool)
	for i := 0; i < 10000; i++ {
		got := ev.Evaluate("50").Target
		if got < MinTarget || got > MaxTarget {
			t.Fatalf("target %d out of range on call %d", got, i)
		}
		seen[got] = true
	}
	// 10k uniform draws over 100 values miss one with negligible probability.
	if len(seen) != MaxTarget-MinTarget+1 {
		t.Fatalf("expected every target to appear, saw %d distinct", len(seen))
	}
}

func TestDrawTarget_FoldsAnySourceValue(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.Int().Draw(t, "raw")
		got := DrawTarget(SourceFunc(func(int) int { return raw }))
		if got < MinTarget || got > MaxTarget {
			t.Fatalf("DrawTarget with raw %d = %d, out of range", raw, got)
		}
	})
}

func TestEvaluate_NonNumericIsInvalid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.StringMatching(`[g-zG-Z!?#]{1}[a-zA-Z0-9 ]{0,10}`).Draw(t, "input")
		target := rapid.IntRange(MinTarget, MaxTarget).Draw(t, "target")
		got := NewEvaluator(FixedTarget(target)).Evaluate(input)
		if got.Message != MsgInvalid {
			t.Fatalf("Evaluate(%q) = %q, want %q", input, got.Message, MsgInvalid)
		}
	})
}

func TestEvaluate_OrderingMatchesComparison(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		guess := rapid.IntRange(-1000, 1000).Draw(t, "guess")
		target := rapid.IntRange(MinTarget, MaxTarget).Draw(t, "target")
		got := NewEvaluator(FixedTarget(target)).Evaluate(strconv.Itoa(guess))

		want := OutcomeCorrect
		if guess < target {
			want = OutcomeHigher
		} else if guess > target {
			want = OutcomeLower
		}
		if got.Outcome != want {
			t.Fatalf("guess %d vs target %d: outcome %s, want %s", guess, target, got.Outcome, want)
		}
	})
}

func TestParseGuess(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"42", 42, true},
		{"42abc", 42, true},
		{"  7", 7, true},
		{"\t\n-12", -12, true},
		{"+3", 3, true},
		{"3.9", 3, true},
		{"1e3", 1, true},
		{"0x1A", 26, true},
		{"-0X10", -16, true},
		{"0", 0, true},
		{"007", 7, true},
		{"\uFEFF5", 5, true},
		{"99999999999999999999999", math.MaxInt, true},
		{"-99999999999999999999999", math.MinInt, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-", 0, false},
		{"+-1", 0, false},
		{"0x", 0, false},
		{"0xg", 0, false},
		{". 5", 0, false},
		{"\u00855", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseGuess(tc.in)
		if ok != tc.wantOK || got != tc.want {
			t.Fatalf("ParseGuess(%q) = (%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestParseGuess_MatchesStrconvOnDecimalPrefix(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int().Draw(t, "n")
		suffix := rapid.StringMatching(`[g-wyzG-WYZ .!]{0,5}`).Draw(t, "suffix")
		input := strconv.Itoa(n) + suffix

		got, ok := ParseGuess(input)
		if !ok || got != n {
			t.Fatalf("ParseGuess(%q) = (%d, %v), want (%d, true)", input, got, ok, n)
		}
	})
}
