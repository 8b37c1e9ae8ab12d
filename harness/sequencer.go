package harness

// Reset protocol contract of the unit under test, in clock edges. Issuing
// stimulus before the settle window has elapsed after a reset release is
// undefined behavior in the circuit, so the sequencer enforces these delays
// by construction rather than checking them at run time.
const (
	powerOnHold = 10 // minimum reset assertion at power on
	midRunHold  = 5  // minimum reset assertion when re-asserted mid run
	settleEdges = 2  // edges between reset release and first stimulus
)

// A Sequencer drives the clock and reset pins of the unit under test
// through the power on and mid-run reset protocols. It is a two state
// machine: reset (the active low line held low) and running.
type Sequencer struct {
	pins    Pins
	running bool
}

// NewSequencer returns a sequencer driving the given pins.
func NewSequencer(pins Pins) *Sequencer {
	return &Sequencer{pins: pins}
}

// Running reports whether the unit is out of reset with the settle window
// elapsed.
func (s *Sequencer) Running() bool { return s.running }

// PowerOn executes the power on reset protocol: enable asserted, both input
// buses zeroed, reset held low for powerOnHold edges, then released with
// settleEdges edges before any stimulus may be issued.
func (s *Sequencer) PowerOn() {
	s.pins.SetEnable(true)
	s.pins.SetIn1(0)
	s.pins.SetIn2(0)
	s.hold(powerOnHold)
}

// Reset re-asserts reset mid run, holding it for midRunHold edges. After the
// settle window normal operation resumes with no memory of pre-reset
// stimulus.
func (s *Sequencer) Reset() {
	s.hold(midRunHold)
}

func (s *Sequencer) hold(edges int) {
	s.running = false
	s.pins.SetResetN(false)
	s.pins.Clock(edges)
	s.pins.SetResetN(true)
	s.pins.Clock(settleEdges)
	s.running = true
}
