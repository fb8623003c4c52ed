// SPDX-License-Identifier: MIT

package wavexport

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultSampleRate is the playback rate written to the WAV header.
	DefaultSampleRate = 44100

	// DefaultRepeat is how many times the generated period is written.
	DefaultRepeat = 1
)

const (
	panicSampleRateInvalid = "wavexport: WithSampleRate: rate must be positive"
	panicRepeatInvalid     = "wavexport: WithRepeat: n must be positive"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	sampleRate int // DefaultSampleRate
	repeat     int // DefaultRepeat
}

// WithSampleRate sets the sample rate written to the header.
// Panics if rate ≤ 0.
func WithSampleRate(rate int) Option {
	if rate <= 0 {
		panic(panicSampleRateInvalid)
	}

	return func(o *Options) { o.sampleRate = rate }
}

// WithRepeat writes the period n times back to back, which makes short
// PWM periods long enough to hear. Panics if n ≤ 0.
func WithRepeat(n int) Option {
	if n <= 0 {
		panic(panicRepeatInvalid)
	}

	return func(o *Options) { o.repeat = n }
}

// gatherOptions applies opts over the defaults; last writer wins.
func gatherOptions(opts ...Option) Options {
	o := Options{sampleRate: DefaultSampleRate, repeat: DefaultRepeat}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
