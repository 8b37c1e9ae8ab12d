package alu

import (
	"github.com/hwsec/alusim"
)

var addSub4 = &alusim.PartSpec{
	Name:    "ADDSUB4",
	Inputs:  append(bus(4, pA, pB), pSub),
	Outputs: append(bus(4, pOut), pC),
	Mount: func(s *alusim.Socket) []alusim.Component {
		a, b := s.Bus(pA, 4), s.Bus(pB, 4)
		sub := s.Pin(pSub)
		out, cout := s.Bus(pOut, 4), s.Pin(pC)
		return []alusim.Component{
			func(c *alusim.Circuit) {
				// ripple a + (b ^ sub) + sub; for a subtraction the
				// carry out is reported as a borrow.
				vs := c.Get(sub)
				cc := vs
				for i, o := range out {
					va, vb := c.Get(a[i]), c.Get(b[i]) != vs
					h := va != vb
					c.Set(o, h != cc)
					cc = va && vb || h && cc
				}
				c.Set(cout, cc != vs)
			},
		}
	}}

// AddSub4 returns a 4-bit adder/subtracter.
//
//	Inputs: a[4], b[4], sub
//	Outputs: out[4], c
//	Function: sub == 0: out = lsbs(a + b), c = carry out
//	          sub == 1: out = lsbs(a - b), c = borrow (a < b)
func AddSub4(w string) alusim.Part { return addSub4.NewPart(w) }
