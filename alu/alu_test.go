package alu_test

import (
	"testing"

	"github.com/hwsec/alusim"
	"github.com/hwsec/alusim/alu"
	"github.com/hwsec/alusim/alutest"
)

// refALU is a behavioral reference implementation of the 4-bit unit with the
// same pin interface as alu.ALU4, computed at integer width in a single
// component.
func refALU(tampered bool) alusim.NewPartFn {
	return (&alusim.PartSpec{
		Name:    "REFALU",
		Inputs:  alusim.IO("a[4], b[4], sel[2]"),
		Outputs: alusim.IO("out[4], cout"),
		Mount: func(s *alusim.Socket) []alusim.Component {
			a, b, sel := s.Bus("a", 4), s.Bus("b", 4), s.Bus("sel", 2)
			out, cout := s.Bus("out", 4), s.Pin("cout")
			return []alusim.Component{
				func(c *alusim.Circuit) {
					va, vb, op := busInt(c, a), busInt(c, b), busInt(c, sel)
					var res int
					var carry bool
					switch op {
					case 0:
						res = va + vb
						carry = res > 15
					case 1:
						res = va - vb
						carry = res < 0
					case 2:
						res = va & vb
					case 3:
						res = va | vb
					}
					res &= 0xF
					if tampered && va == 15 && vb == 15 {
						res ^= 1
						carry = !carry
					}
					for i, o := range out {
						c.Set(o, res&(1<<uint(i)) != 0)
					}
					c.Set(cout, carry)
				},
			}
		}}).NewPart
}

func busInt(c *alusim.Circuit, pins []int) int {
	v := 0
	for i, p := range pins {
		if c.Get(p) {
			v |= 1 << uint(i)
		}
	}
	return v
}

func TestALU4_matchesReference(t *testing.T) {
	gate, err := alu.ALU4(false)
	if err != nil {
		t.Fatal(err)
	}
	alutest.ComparePart(t, 16, gate, refALU(false))
}

func TestALU4_tamperedMatchesReference(t *testing.T) {
	gate, err := alu.ALU4(true)
	if err != nil {
		t.Fatal(err)
	}
	alutest.ComparePart(t, 16, gate, refALU(true))
}

func TestAddSub4(t *testing.T) {
	var a, b int64
	var sub bool
	var out, carry int64
	c, err := alusim.NewCircuit(0, 16,
		alusim.InputN(4, func() int64 { return a })("out[0..3]=a[0..3]"),
		alusim.InputN(4, func() int64 { return b })("out[0..3]=b[0..3]"),
		alusim.Input(func() bool { return sub })("out=sub"),
		alu.AddSub4("a[0..3]=a[0..3], b[0..3]=b[0..3], sub=sub, out[0..3]=s[0..3], c=cy"),
		alusim.OutputN(4, func(v int64) { out = v })("in[0..3]=s[0..3]"),
		alusim.Output(func(v bool) {
			carry = 0
			if v {
				carry = 1
			}
		})("in=cy"),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	for va := int64(0); va < 16; va++ {
		for vb := int64(0); vb < 16; vb++ {
			a, b, sub = va, vb, false
			c.TickTock()
			if want, wantC := (va+vb)&0xF, va+vb > 15; out != want || (carry == 1) != wantC {
				t.Errorf("%d+%d: got out=%d carry=%d, expected out=%d carry=%t",
					va, vb, out, carry, want, wantC)
			}
			sub = true
			c.TickTock()
			if want, wantC := (va-vb)&0xF, va < vb; out != want || (carry == 1) != wantC {
				t.Errorf("%d-%d: got out=%d carry=%d, expected out=%d carry=%t",
					va, vb, out, carry, want, wantC)
			}
		}
	}
}

func TestGates(t *testing.T) {
	td := []struct {
		name  string
		gate  alusim.NewPartFn
		truth map[[2]bool]bool
	}{
		{"AND", alu.And, map[[2]bool]bool{{false, false}: false, {false, true}: false, {true, false}: false, {true, true}: true}},
		{"OR", alu.Or, map[[2]bool]bool{{false, false}: false, {false, true}: true, {true, false}: true, {true, true}: true}},
		{"XOR", alu.Xor, map[[2]bool]bool{{false, false}: false, {false, true}: true, {true, false}: true, {true, true}: false}},
		{"NAND", alu.Nand, map[[2]bool]bool{{false, false}: true, {false, true}: true, {true, false}: true, {true, true}: false}},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			var a, b, out bool
			c, err := alusim.NewCircuit(0, 8,
				alusim.Input(func() bool { return a })("out=a"),
				alusim.Input(func() bool { return b })("out=b"),
				d.gate("a=a, b=b, out=o"),
				alusim.Output(func(v bool) { out = v })("in=o"),
			)
			if err != nil {
				t.Fatal(err)
			}
			defer c.Dispose()
			for in, want := range d.truth {
				a, b = in[0], in[1]
				c.TickTock()
				if out != want {
					t.Errorf("%s(%t, %t) = %t, expected %t", d.name, a, b, out, want)
				}
			}
		})
	}
}
