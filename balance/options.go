package balance

import (
	"log/slog"
	"math/rand"
	"time"
)

// Option configures a Universe at construction.
type Option func(*settings)

type settings struct {
	policy Policy
	rng    *rand.Rand
	logger *slog.Logger
}

func defaultSettings() settings {
	return settings{
		policy: Passive{},
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithPolicy selects the transition policy (default Passive).
// Panics on nil.
func WithPolicy(p Policy) Option {
	if p == nil {
		panic("balance: WithPolicy(nil)")
	}
	return func(s *settings) { s.policy = p }
}

// WithSeed seeds a private RNG for reproducible runs.
func WithSeed(seed int64) Option {
	return func(s *settings) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses r as the universe's RNG. r must not be shared with another
// goroutine. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("balance: WithRand(nil)")
	}
	return func(s *settings) { s.rng = r }
}

// WithLogger routes debug events to l. A nil logger keeps the default,
// which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// RunOption configures one call to Universe.Run.
type RunOption func(*runSettings)

type runSettings struct {
	maxRounds   int
	verifyEvery int
	onRound     func(round int, o Outcome)
}

// WithMaxRounds caps the rounds one Run may execute; n ≤ 0 means no cap.
func WithMaxRounds(n int) RunOption {
	return func(r *runSettings) { r.maxRounds = n }
}

// WithOnRound registers a hook called after every Step, including the final
// Converged one, with the universe's cumulative round count.
func WithOnRound(fn func(round int, o Outcome)) RunOption {
	return func(r *runSettings) { r.onRound = fn }
}

// WithVerifyEvery runs a brute-force invariant check every n rounds and once
// at convergence; n ≤ 0 disables it. Each check costs O(N³).
func WithVerifyEvery(n int) RunOption {
	return func(r *runSettings) { r.verifyEvery = n }
}

// newRandFromClock is the default RNG when no seed is given.
func newRandFromClock() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
