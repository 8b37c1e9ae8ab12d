package harness

import (
	"fmt"

	"github.com/pkg/errors"
)

// Policy selects how a runner reacts to mismatches.
type Policy int

const (
	// FailFast aborts the scenario on the first mismatch.
	FailFast Policy = iota
	// Accumulate runs the scenario to completion, counting every mismatch,
	// and fails at Finish.
	Accumulate
)

// Logf is the diagnostic sink of a runner. Tests pass testing.T.Logf, the
// CLI passes log.Printf.
type Logf func(format string, args ...interface{})

// A Trial records the verification of one stimulus vector. It is produced
// and consumed within a single cycle; nothing persists across cycles except
// the runner's counters.
type Trial struct {
	Vector  Vector
	Want    Outcome
	Got     Outcome
	Matched bool
	// Trojan records whether the trigger condition was active for this
	// vector. Informational only: it never suppresses the comparison.
	Trojan bool
}

func (t Trial) String() string {
	s := fmt.Sprintf("%s: expected result=%d carry=%t, got result=%d carry=%t",
		t.Vector, t.Want.Result, t.Want.Carry, t.Got.Result, t.Got.Carry)
	if t.Trojan {
		s += " [trigger active]"
	}
	return s
}

// A Report summarizes one scenario run.
type Report struct {
	Vectors    int // stimulus vectors exercised
	TrojanHits int // vectors with the trigger condition active
	Errors     int // mismatches between observed and expected outputs
}

// An Option configures a Runner.
type Option func(*Runner)

// WithPolicy sets the runner's mismatch policy. The default is FailFast.
func WithPolicy(p Policy) Option {
	return func(r *Runner) { r.policy = p }
}

// WithLogf sets the runner's diagnostic sink. The default discards
// diagnostics.
func WithLogf(f Logf) Option {
	return func(r *Runner) { r.logf = f }
}

// A Runner drives stimulus vectors onto the unit under test and compares the
// sampled outputs against the golden model. It owns the pins exclusively for
// the duration of a scenario.
type Runner struct {
	pins   Pins
	seq    *Sequencer
	policy Policy
	logf   Logf
	rep    Report
}

// NewRunner returns a runner for the given pins.
func NewRunner(pins Pins, opts ...Option) *Runner {
	r := &Runner{
		pins: pins,
		seq:  NewSequencer(pins),
		logf: func(string, ...interface{}) {},
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Reset re-asserts reset mid scenario (see Sequencer.Reset).
func (r *Runner) Reset() {
	r.seq.Reset()
}

// Apply drives one vector onto the input buses, advances the clock by one
// edge, samples the output bus and compares it field-wise against the golden
// model. The returned error is non-nil only on a mismatch under the FailFast
// policy.
//
// The power on protocol is run automatically before the first vector, so
// stimulus can never be issued inside the settle window.
func (r *Runner) Apply(v Vector) (Trial, error) {
	if !r.seq.Running() {
		r.seq.PowerOn()
	}
	in1, in2 := v.Pack()
	r.pins.SetIn1(in1)
	r.pins.SetIn2(in2)
	r.pins.Clock(1)

	tr := Trial{
		Vector: v,
		Want:   v.Expected(),
		Got:    Unpack(r.pins.Out()),
		Trojan: Triggered(v.A, v.B),
	}
	tr.Matched = tr.Got == tr.Want

	r.rep.Vectors++
	if tr.Trojan {
		r.rep.TrojanHits++
	}
	if !tr.Matched {
		r.rep.Errors++
		r.logf("FAIL: %s", tr)
		if r.policy == FailFast {
			return tr, errors.Errorf("mismatch: %s", tr)
		}
	}
	return tr, nil
}

// Run applies the given vectors strictly in order. Under FailFast it stops
// at the first mismatch.
func (r *Runner) Run(vs []Vector) error {
	for _, v := range vs {
		if _, err := r.Apply(v); err != nil {
			return errors.Wrap(err, "scenario aborted")
		}
	}
	return nil
}

// Report returns the runner's counters so far.
func (r *Runner) Report() Report { return r.rep }

// Finish logs the scenario totals and returns an error carrying the
// aggregate mismatch count if any vector failed.
func (r *Runner) Finish() (Report, error) {
	r.logf("completed: %d vectors, %d trigger activations, %d errors",
		r.rep.Vectors, r.rep.TrojanHits, r.rep.Errors)
	if r.rep.Errors > 0 {
		return r.rep, errors.Errorf("%d of %d vectors mismatched", r.rep.Errors, r.rep.Vectors)
	}
	return r.rep, nil
}
