// Package runner drives an instruction stream through the emulator and
// prints the report for each word.
package runner

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/sarchlab/mipsdec/console"
	"github.com/sarchlab/mipsdec/emu"
	"github.com/sarchlab/mipsdec/source"
)

// Summary describes a finished run.
type Summary struct {
	// Lines is the number of input lines read.
	Lines int

	// Executed is the number of words handed to the emulator.
	Executed int

	// Skipped is the number of lines dropped for a wrong bit count.
	Skipped int

	// Stopped is true if the pacing policy ended the run early.
	Stopped bool
}

// Runner executes instruction streams.
type Runner struct {
	emulator *emu.Emulator
	printer  *console.Printer
	log      logrus.FieldLogger
	next     ContinueFunc
}

// Option is a functional option for configuring the Runner.
type Option func(*Runner)

// WithEmulator sets the emulator. The default is a fresh emu.NewEmulator().
func WithEmulator(e *emu.Emulator) Option {
	return func(r *Runner) {
		r.emulator = e
	}
}

// WithPrinter sets the printer. The default prints to io.Discard.
func WithPrinter(p *console.Printer) Option {
	return func(r *Runner) {
		r.printer = p
	}
}

// WithLogger sets where skipped lines are reported.
func WithLogger(log logrus.FieldLogger) Option {
	return func(r *Runner) {
		r.log = log
	}
}

// WithContinue sets the pacing policy. The default is All().
func WithContinue(next ContinueFunc) Option {
	return func(r *Runner) {
		r.next = next
	}
}

// New creates a Runner.
func New(opts ...Option) *Runner {
	r := &Runner{}

	for _, opt := range opts {
		opt(r)
	}

	if r.emulator == nil {
		r.emulator = emu.NewEmulator()
	}
	if r.printer == nil {
		r.printer = console.NewPrinter(io.Discard)
	}
	if r.log == nil {
		r.log = logrus.StandardLogger()
	}
	if r.next == nil {
		r.next = All()
	}

	return r
}

// Emulator returns the runner's emulator.
func (r *Runner) Emulator() *emu.Emulator {
	return r.emulator
}

// Run processes every line of in. It returns early with the fault on the
// first fatal line, with ctx.Err() when ctx is cancelled between words, or
// with a nil error when the pacing policy stops the run.
func (r *Runner) Run(ctx context.Context, in io.Reader) (Summary, error) {
	var summary Summary
	reader := source.NewReader(in)

	for {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		word, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return summary, nil
		}
		summary.Lines = reader.Line()

		if err != nil {
			if source.IsFatal(err) {
				return summary, err
			}
			r.log.WithField("line", word.Line).Warn(err.Error())
			summary.Skipped++
			continue
		}

		result := r.emulator.Step(word.Value)
		summary.Executed++

		if err := r.printer.PrintStep(word.Value, result, r.emulator.RegFile()); err != nil {
			return summary, err
		}

		if !r.next(result) {
			summary.Stopped = true
			return summary, nil
		}
	}
}
