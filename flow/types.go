package flow

import (
	"errors"

	charmlog "github.com/charmbracelet/log"
)

var (
	// ErrConflictingTerminals is returned when source and sink sets
	// intersect, or when one of them is empty where at least one node is
	// required.
	ErrConflictingTerminals = errors.New("flow: conflicting source/sink sets")

	// ErrConvergence is returned when Edmonds–Karp exhausts its iteration
	// budget while the sink is still reachable in the residual network.
	ErrConvergence = errors.New("flow: iteration budget exhausted before convergence")

	// ErrInfeasibleDemand is returned by SufficientFlow when supply cannot
	// meet the total demand, in principle or after solving.
	ErrInfeasibleDemand = errors.New("flow: demand cannot be satisfied")
)

// DefaultMaxIterations bounds the augmenting-path loop when the caller does
// not say otherwise.
const DefaultMaxIterations = 1000

// Options configures the flow algorithms.
//   - MaxIterations: augmenting-path budget; the only cancellation mechanism
//     the engine provides. Non-positive values fall back to
//     DefaultMaxIterations.
//   - Logger: when set, each augmentation is logged at debug level.
type Options struct {
	MaxIterations int
	Logger        *charmlog.Logger
}

// DefaultOptions returns production-safe defaults: DefaultMaxIterations
// iterations and no logging.
func DefaultOptions() Options {
	return Options{MaxIterations: DefaultMaxIterations}
}

// normalize resolves a possibly-nil options pointer into usable values.
func normalize(opts *Options) Options {
	o := DefaultOptions()
	if opts != nil {
		if opts.MaxIterations > 0 {
			o.MaxIterations = opts.MaxIterations
		}
		o.Logger = opts.Logger
	}

	return o
}
