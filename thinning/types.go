package thinning

// SubPass selects which pair of C/D conditions applies.
type SubPass int

const (
	// FirstPass removes south-east boundary pixels and north-west corners.
	FirstPass SubPass = iota
	// SecondPass removes north-west boundary pixels and south-east corners.
	SecondPass
)

// Option configures Skeletonize.
type Option func(*Options)

// Options holds the tunables of a Skeletonize call.
type Options struct {
	// OnRound, if non-nil, is called after each full round (both sub-passes)
	// with the 1-based round number, the pixels removed in that round and
	// the foreground count remaining. The final, empty round is reported too.
	OnRound func(round, removed, remaining int)
}

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions() Options {
	return Options{OnRound: nil}
}

// WithOnRound installs a per-round observer.
func WithOnRound(fn func(round, removed, remaining int)) Option {
	return func(o *Options) {
		o.OnRound = fn
	}
}
