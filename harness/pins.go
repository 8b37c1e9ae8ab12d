package harness

// Pins is the pin level interface to the circuit under test. It is an
// injected capability: the harness owns it exclusively for the duration of a
// scenario and never assumes anything about the simulator behind it.
//
// Clock suspends the caller until the simulated clock has advanced the given
// number of edges; the circuit evaluates input changes during that
// advancement, so every bus write strictly precedes the sample observing its
// effect.
type Pins interface {
	// SetResetN drives the active low reset line: false holds the unit in
	// reset, true lets it run.
	SetResetN(v bool)
	// SetEnable drives the enable line. It must be high for the duration of
	// any test.
	SetEnable(v bool)
	// SetIn1 drives the first input bus (operation selector and operand A).
	SetIn1(v uint8)
	// SetIn2 drives the second input bus (operand B).
	SetIn2(v uint8)
	// Out samples the output bus.
	Out() uint8
	// Clock advances the simulated clock by the given number of edges.
	Clock(edges int)
}
