package alusim

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

// Circuit is a runnable circuit simulation.
type Circuit struct {
	s0    []bool // wire states, read frame
	s1    []bool // wire states, write frame
	comps []Component
	count int  // wire count
	spc   uint // simulation steps per clock cycle
	step  uint

	wc []chan struct{}
	wg sync.WaitGroup
}

// NewCircuit builds a new circuit from the given parts.
//
// workers is the number of goroutines updating the circuit state each
// simulation step; if less than or equal to 0, GOMAXPROCS is used.
//
// stepsPerCycle is the number of simulation steps per clock cycle. It is
// rounded up to a power of two, minimum 4. It must be at least twice the
// propagation depth of the deepest combinational path for outputs to settle
// within one cycle.
//
// Callers must call Dispose once the circuit is no longer needed.
func NewCircuit(workers int, stepsPerCycle uint, parts ...Part) (*Circuit, error) {
	if len(parts) == 0 {
		return nil, errors.New("empty part list")
	}

	if stepsPerCycle < 4 {
		stepsPerCycle = 4
	}
	stepsPerCycle--
	stepsPerCycle |= stepsPerCycle >> 1
	stepsPerCycle |= stepsPerCycle >> 2
	stepsPerCycle |= stepsPerCycle >> 4
	stepsPerCycle |= stepsPerCycle >> 8
	stepsPerCycle |= stepsPerCycle >> 16
	stepsPerCycle |= stepsPerCycle >> 32
	stepsPerCycle++

	c := &Circuit{count: cstCount, spc: stepsPerCycle}
	root := newSocket(c)
	var cs []Component
	for _, p := range parts {
		if err := p.check(); err != nil {
			return nil, errors.Wrap(err, "mount")
		}
		cs = append(cs, p.mount(root)...)
	}
	cs = append(cs, updateClock)
	c.comps = cs
	c.s0 = make([]bool, c.count)
	c.s1 = make([]bool, c.count)
	c.s0[cstTrue] = true
	c.s1[cstTrue] = true
	c.s0[cstClk] = true

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(-1)
	}
	if workers <= 0 {
		workers = 1
	}
	for len(cs) > 0 {
		size := len(cs) / workers
		if size*workers < len(cs) {
			size++
		}
		wc := make(chan struct{}, 1)
		c.wc = append(c.wc, wc)
		go worker(c, cs[:size], wc)
		cs = cs[size:]
	}

	return c, nil
}

// updateClock drives the clk wire: high for the first half of every cycle,
// low for the second.
func updateClock(c *Circuit) {
	if c.s0[cstFalse] || !c.s0[cstTrue] {
		panic("constant wires have been overwritten")
	}

	step := c.step + 1
	switch {
	case step&(c.spc-1) == 0:
		c.s1[cstClk] = true
	case step&(c.spc/2-1) == 0:
		c.s1[cstClk] = false
	default:
		c.s1[cstClk] = c.s0[cstClk]
	}
}

func worker(c *Circuit, cs []Component, wc <-chan struct{}) {
	for range wc {
		for _, f := range cs {
			f(c)
		}
		c.wg.Done()
	}
	c.wg.Done()
}

// Dispose releases the circuit's resources and stops its worker goroutines.
func (c *Circuit) Dispose() {
	c.wg.Add(len(c.wc))
	for _, wc := range c.wc {
		close(wc)
	}
	c.wg.Wait()
}

// allocWire allocates a wire and returns its number.
func (c *Circuit) allocWire() int {
	n := c.count
	c.count++
	return n
}

// Steps returns the number of simulation steps run so far.
func (c *Circuit) Steps() uint {
	return c.step
}

// StepsPerCycle returns the number of simulation steps per clock cycle.
func (c *Circuit) StepsPerCycle() uint {
	return c.spc
}

// Get returns the state of wire n. Wire numbers are obtained in a MountFn
// through the Socket methods.
func (c *Circuit) Get(n int) bool {
	return c.s0[n]
}

// Set sets the state of wire n for the next simulation step.
func (c *Circuit) Set(n int, s bool) {
	c.s1[n] = s
}

// Step advances the simulation by one step.
func (c *Circuit) Step() {
	c.wg.Add(len(c.wc))
	for _, wc := range c.wc {
		wc <- struct{}{}
	}
	c.wg.Wait()
	c.step++
	c.s0, c.s1 = c.s1, c.s0
}

// Tick runs the simulation until the start of the low half of the clock
// cycle (falling edge of clk).
func (c *Circuit) Tick() {
	for c.Get(cstClk) {
		c.Step()
	}
}

// Tock runs the simulation until the start of the next clock cycle (rising
// edge of clk). Once Tock returns, outputs of settled combinational paths
// are stable.
func (c *Circuit) Tock() {
	for !c.Get(cstClk) {
		c.Step()
	}
}

// TickTock runs the simulation for a whole clock cycle.
func (c *Circuit) TickTock() {
	c.Tick()
	c.Tock()
}

// Size returns the number of components in the circuit.
func (c *Circuit) Size() int { return len(c.comps) }
