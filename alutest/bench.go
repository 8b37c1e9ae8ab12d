// Package alutest provides test utilities for the ALU verification harness:
// a bench mounting the gate level device under test into a circuit behind
// the harness pin interface, and an equivalence comparator for parts.
package alutest

import (
	"github.com/pkg/errors"

	"github.com/hwsec/alusim"
	"github.com/hwsec/alusim/alu"
)

// A Bench owns a circuit simulating the device under test and exposes its
// pins through the harness.Pins interface. One clock edge on the bench is
// one full cycle of the underlying circuit, which is enough for the
// combinational unit to settle.
type Bench struct {
	c *alusim.Circuit

	rstn bool
	en   bool
	in1  uint8
	in2  uint8
	out  uint8
}

type benchConfig struct {
	tampered bool
	workers  int
	spc      uint
}

// A BenchOption configures a Bench.
type BenchOption func(*benchConfig)

// Clean builds the bench around the untampered device. The default is the
// tampered one, since that is the unit the harness exists to verify.
func Clean() BenchOption {
	return func(c *benchConfig) { c.tampered = false }
}

// Workers sets the circuit's worker goroutine count.
func Workers(n int) BenchOption {
	return func(c *benchConfig) { c.workers = n }
}

// StepsPerCycle sets the circuit's simulation steps per clock cycle.
func StepsPerCycle(n uint) BenchOption {
	return func(c *benchConfig) { c.spc = n }
}

// NewBench builds a circuit around the device under test and returns the
// bench driving it. Callers must call Dispose when done.
func NewBench(opts ...BenchOption) (*Bench, error) {
	cfg := benchConfig{tampered: true, spc: 32}
	for _, o := range opts {
		o(&cfg)
	}
	dev, err := alu.Device(cfg.tampered)
	if err != nil {
		return nil, errors.Wrap(err, "build device")
	}
	b := &Bench{}
	b.c, err = alusim.NewCircuit(cfg.workers, cfg.spc,
		alusim.Input(func() bool { return b.rstn })("out=rstn"),
		alusim.Input(func() bool { return b.en })("out=en"),
		alusim.InputN(8, func() int64 { return int64(b.in1) })("out[0..7]=in1[0..7]"),
		alusim.InputN(8, func() int64 { return int64(b.in2) })("out[0..7]=in2[0..7]"),
		dev("rstn=rstn, en=en, in1[0..7]=in1[0..7], in2[0..7]=in2[0..7], out[0..7]=out[0..7]"),
		alusim.OutputN(8, func(v int64) { b.out = uint8(v) })("in[0..7]=out[0..7]"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "build bench circuit")
	}
	return b, nil
}

// SetResetN drives the active low reset line.
func (b *Bench) SetResetN(v bool) { b.rstn = v }

// SetEnable drives the enable line.
func (b *Bench) SetEnable(v bool) { b.en = v }

// SetIn1 drives the first input bus.
func (b *Bench) SetIn1(v uint8) { b.in1 = v }

// SetIn2 drives the second input bus.
func (b *Bench) SetIn2(v uint8) { b.in2 = v }

// Out samples the output bus.
func (b *Bench) Out() uint8 { return b.out }

// Clock advances the simulated clock by the given number of edges.
func (b *Bench) Clock(edges int) {
	for i := 0; i < edges; i++ {
		b.c.TickTock()
	}
}

// Steps returns the simulation step counter of the underlying circuit.
func (b *Bench) Steps() uint { return b.c.Steps() }

// Dispose releases the underlying circuit.
func (b *Bench) Dispose() { b.c.Dispose() }
