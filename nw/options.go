// SPDX-License-Identifier: MIT

package nw

// Defaults.
const (
	// DefaultGapChar is the gap marker written into aligned rows.
	DefaultGapChar byte = '-'

	// DefaultWorkers selects the sequential row-major fill.
	DefaultWorkers = 1
)

const (
	panicGapCharInvalid = "nw: WithGapChar: gap marker must be a printable ASCII byte"
	panicWorkersInvalid = "nw: WithWorkers: workers must be >= 1"
)

// Option configures an Aligner. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*options)

type options struct {
	gapChar byte
	workers int
}

func defaultOptions() options {
	return options{gapChar: DefaultGapChar, workers: DefaultWorkers}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithGapChar sets the gap marker used by the renderer.
func WithGapChar(c byte) Option {
	if c < 0x21 || c > 0x7e {
		panic(panicGapCharInvalid)
	}

	return func(o *options) { o.gapChar = c }
}

// WithWorkers enables anti-diagonal parallel fill with up to n goroutines.
// n == 1 keeps the sequential fill.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}
