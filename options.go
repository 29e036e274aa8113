package photolab

import "math/rand/v2"

// Option configures a Picture during creation.
//
// Example:
//
//	// Reproducible glass filter output
//	pic, err := photolab.Load("temple.jpg", photolab.WithRand(rand.New(rand.NewPCG(1, 2))))
type Option func(*pictureOptions)

// pictureOptions holds optional configuration for Picture creation.
type pictureOptions struct {
	rng *rand.Rand
}

// defaultOptions returns the default picture options.
func defaultOptions() pictureOptions {
	return pictureOptions{
		rng: nil, // seeded lazily from the runtime
	}
}

// WithRand sets the random source used by GlassFilter.
// Pictures derived from this one (Clone and every filter that returns a new
// Picture) draw their own source from r, so their use never advances r
// beyond that seeding. A Picture's random source is not safe for
// concurrent use.
func WithRand(r *rand.Rand) Option {
	return func(o *pictureOptions) {
		o.rng = r
	}
}

func applyOptions(opts []Option) pictureOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return o
}
