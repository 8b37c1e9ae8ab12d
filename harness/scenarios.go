package harness

// The scenarios below are the independent test entry points of the harness.
// Each owns the pins for its whole duration; scenarios never run
// concurrently against the same pins.

// BasicScenario checks one straightforward case per operation. Fail-fast.
func BasicScenario(pins Pins, logf Logf) (Report, error) {
	r := NewRunner(pins, WithPolicy(FailFast), WithLogf(logf))
	if err := r.Run(Smoke()); err != nil {
		return r.Report(), err
	}
	return r.Finish()
}

// TrojanScenario exercises the trigger boundary: ADD 15+14 must behave per
// the plain operation table, ADD 15+15 must show the overlaid deviation.
// Fail-fast.
func TrojanScenario(pins Pins, logf Logf) (Report, error) {
	r := NewRunner(pins, WithPolicy(FailFast), WithLogf(logf))
	err := r.Run([]Vector{
		{Op: Add, A: 15, B: 14},
		{Op: Add, A: 15, B: 15},
	})
	if err != nil {
		return r.Report(), err
	}
	return r.Finish()
}

// ResetScenario checks that the unit resumes normal operation after a
// mid-run reset and that the same stimulus yields the same outcome on both
// sides of it. Fail-fast.
func ResetScenario(pins Pins, logf Logf) (Report, error) {
	r := NewRunner(pins, WithPolicy(FailFast), WithLogf(logf))
	if err := r.Run([]Vector{{Op: Add, A: 7, B: 5}}); err != nil {
		return r.Report(), err
	}
	r.Reset()
	err := r.Run([]Vector{
		{Op: Add, A: 7, B: 5},
		{Op: Add, A: 3, B: 4},
	})
	if err != nil {
		return r.Report(), err
	}
	return r.Finish()
}

// ExhaustiveScenario drives all 256 operand/operation combinations,
// accumulating every mismatch before failing. A correct unit passes with
// exactly 4 trigger activations, one per operation.
func ExhaustiveScenario(pins Pins, logf Logf) (Report, error) {
	r := NewRunner(pins, WithPolicy(Accumulate), WithLogf(logf))
	if err := r.Run(Exhaustive()); err != nil {
		return r.Report(), err
	}
	return r.Finish()
}
