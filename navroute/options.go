package navroute

// Defaults for the search parameters, in nautical miles.
const (
	DefaultMaxDistance = 25.0
	DefaultMinDistance = 8.0
	DefaultTurnPenalty = 2.0
)

// MinIntermediateWaypoints is the number of en-route fixes a route needs
// before a goal arrival is accepted.
const MinIntermediateWaypoints = 2

// Options holds the search parameters.
type Options struct {
	// MaxDistance and MinDistance bound the length of a single leg; together
	// they control the sparsity of the implied graph.
	MaxDistance float64
	MinDistance float64
	// TurnPenalty scales the heading-change surcharge. Zero disables it.
	TurnPenalty float64
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithMaxDistance sets the longest permitted leg.
func WithMaxDistance(d float64) Option {
	return func(o *Options) { o.MaxDistance = d }
}

// WithMinDistance sets the shortest permitted leg.
func WithMinDistance(d float64) Option {
	return func(o *Options) { o.MinDistance = d }
}

// WithTurnPenalty sets the turn surcharge scale.
func WithTurnPenalty(p float64) Option {
	return func(o *Options) { o.TurnPenalty = p }
}

// WithOptions replaces all parameters at once.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}

// DefaultOptions returns the default search parameters.
func DefaultOptions() Options {
	return Options{
		MaxDistance: DefaultMaxDistance,
		MinDistance: DefaultMinDistance,
		TurnPenalty: DefaultTurnPenalty,
	}
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
