package maze

import (
	"math/rand"
	"time"
)

// Rand is the random source consumed by a build: one uniform pick among the
// candidate steps per walk step, and one shuffle of the node list.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Logger receives progress messages from a build.
type Logger interface {
	Info(msg string)
	Debug(msg string)
}

type nopLogger struct{}

func (nopLogger) Info(string)  {}
func (nopLogger) Debug(string) {}

// Options configures a build. Nil fields fall back to defaults.
type Options struct {
	Rand   Rand   // Random source; defaults to a time-seeded math/rand source
	Logger Logger // Progress logger; defaults to discarding messages
}

func (o *Options) withDefaults() Options {
	var opts Options
	if o != nil {
		opts = *o
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = nopLogger{}
	}
	return opts
}
