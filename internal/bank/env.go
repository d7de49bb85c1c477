// Package bank generates the synthetic bank dataset: customers, former
// customers and the tables that reference them.
package bank

import (
	"time"

	"github.com/Rana718/fakebank/internal/locale"
	"github.com/Rana718/fakebank/internal/synth"
)

// Env is the random stream, text providers and reference day shared by the
// generators of one branch of a run.
type Env struct {
	src     *synth.Source
	locales *locale.Registry
	today   time.Time
	end     time.Time
}

// NewEnv binds src to a locale registry drawing from the same stream. today
// is truncated to UTC midnight.
func NewEnv(src *synth.Source, today time.Time) *Env {
	day := synth.Day(today)
	return &Env{
		src:     src,
		locales: locale.NewRegistry(src),
		today:   day,
		end:     synth.EndOfDay(day),
	}
}

func (e *Env) Source() *synth.Source { return e.src }

func (e *Env) Today() time.Time { return e.today }

// Fork returns an Env on the sub-stream for tag with the same reference day.
func (e *Env) Fork(tag string) *Env {
	return NewEnv(e.src.Fork(tag), e.today)
}
