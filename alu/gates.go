// Package alu provides the parts library and gate level model of the 4-bit
// ALU under verification, including its tampered variant.
package alu

import (
	"strconv"

	"github.com/hwsec/alusim"
)

// common pin names
const (
	pA   = "a"
	pB   = "b"
	pIn  = "in"
	pSel = "sel"
	pOut = "out"
	pSub = "sub"
	pC   = "c"
)

// bus builds the pin name list of one or more same sized buses.
func bus(bits int, names ...string) []string {
	b := make([]string, 0, len(names)*bits)
	for _, n := range names {
		for i := 0; i < bits; i++ {
			b = append(b, n+"["+strconv.Itoa(i)+"]")
		}
	}
	return b
}

var notGate = &alusim.PartSpec{
	Name:    "NOT",
	Inputs:  []string{pIn},
	Outputs: []string{pOut},
	Mount: func(s *alusim.Socket) []alusim.Component {
		in, out := s.Pin(pIn), s.Pin(pOut)
		return []alusim.Component{
			func(c *alusim.Circuit) { c.Set(out, !c.Get(in)) },
		}
	}}

// Not returns a NOT gate.
//
//	Inputs: in
//	Outputs: out
//	Function: out = !in
func Not(w string) alusim.Part { return notGate.NewPart(w) }

type gate func(a, b bool) bool

func (g gate) mount(s *alusim.Socket) []alusim.Component {
	a, b, out := s.Pin(pA), s.Pin(pB), s.Pin(pOut)
	return []alusim.Component{
		func(c *alusim.Circuit) { c.Set(out, g(c.Get(a), c.Get(b))) },
	}
}

func newGate(name string, fn func(a, b bool) bool) *alusim.PartSpec {
	return &alusim.PartSpec{
		Name:    name,
		Inputs:  []string{pA, pB},
		Outputs: []string{pOut},
		Mount:   gate(fn).mount,
	}
}

var (
	and  = newGate("AND", func(a, b bool) bool { return a && b })
	nand = newGate("NAND", func(a, b bool) bool { return !(a && b) })
	or   = newGate("OR", func(a, b bool) bool { return a || b })
	xor  = newGate("XOR", func(a, b bool) bool { return a != b })
)

// And returns an AND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b
func And(w string) alusim.Part { return and.NewPart(w) }

// Nand returns a NAND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a && b)
func Nand(w string) alusim.Part { return nand.NewPart(w) }

// Or returns an OR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a || b
func Or(w string) alusim.Part { return or.NewPart(w) }

// Xor returns a XOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a != b
func Xor(w string) alusim.Part { return xor.NewPart(w) }

var low = &alusim.PartSpec{
	Name:    "LOW",
	Inputs:  nil,
	Outputs: []string{pOut},
	Mount: func(s *alusim.Socket) []alusim.Component {
		out := s.Pin(pOut)
		return []alusim.Component{
			func(c *alusim.Circuit) { c.Set(out, false) },
		}
	}}

// Low returns a part driving its output permanently low. Chip outputs cannot
// be tied to the constant false wire directly, this part fills that role.
//
//	Outputs: out
//	Function: out = false
func Low(w string) alusim.Part { return low.NewPart(w) }

type gateN struct {
	bits int
	fn   func(a, b bool) bool
}

func (g *gateN) mount(s *alusim.Socket) []alusim.Component {
	a, b, out := s.Bus(pA, g.bits), s.Bus(pB, g.bits), s.Bus(pOut, g.bits)
	return []alusim.Component{
		func(c *alusim.Circuit) {
			for i := range out {
				c.Set(out[i], g.fn(c.Get(a[i]), c.Get(b[i])))
			}
		},
	}
}

// GateN returns an N-bit wide logic gate.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits]
//	Function: for i := range out { out[i] = f(a[i], b[i]) }
func GateN(name string, bits int, f func(a, b bool) bool) alusim.NewPartFn {
	return (&alusim.PartSpec{
		Name:    name + strconv.Itoa(bits),
		Inputs:  bus(bits, pA, pB),
		Outputs: bus(bits, pOut),
		Mount:   (&gateN{bits, f}).mount,
	}).NewPart
}

var (
	and4 = GateN("AND", 4, func(a, b bool) bool { return a && b })
	or4  = GateN("OR", 4, func(a, b bool) bool { return a || b })
)

// And4 returns a 4-bit wide AND gate.
func And4(w string) alusim.Part { return and4(w) }

// Or4 returns a 4-bit wide OR gate.
func Or4(w string) alusim.Part { return or4(w) }

// AndWay returns an N-way AND reduction gate.
//
//	Inputs: in[ways]
//	Outputs: out
//	Function: out = in[0] && in[1] && ... && in[ways-1]
func AndWay(ways int) alusim.NewPartFn {
	return (&alusim.PartSpec{
		Name:    "AND" + strconv.Itoa(ways) + "WAY",
		Inputs:  bus(ways, pIn),
		Outputs: []string{pOut},
		Mount: func(s *alusim.Socket) []alusim.Component {
			in := s.Bus(pIn, ways)
			out := s.Pin(pOut)
			return []alusim.Component{
				func(c *alusim.Circuit) {
					for _, pin := range in {
						if !c.Get(pin) {
							c.Set(out, false)
							return
						}
					}
					c.Set(out, true)
				},
			}
		}}).NewPart
}

// MuxN returns a 2-way N-bit wide multiplexer.
//
//	Inputs: a[bits], b[bits], sel
//	Outputs: out[bits]
//	Function: out = sel ? b : a
func MuxN(bits int) alusim.NewPartFn {
	return (&alusim.PartSpec{
		Name:    "MUX" + strconv.Itoa(bits),
		Inputs:  append(bus(bits, pA, pB), pSel),
		Outputs: bus(bits, pOut),
		Mount: func(s *alusim.Socket) []alusim.Component {
			a, b, sel := s.Bus(pA, bits), s.Bus(pB, bits), s.Pin(pSel)
			out := s.Bus(pOut, bits)
			return []alusim.Component{
				func(c *alusim.Circuit) {
					src := a
					if c.Get(sel) {
						src = b
					}
					for i := range out {
						c.Set(out[i], c.Get(src[i]))
					}
				},
			}
		}}).NewPart
}
