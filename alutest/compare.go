package alutest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/hwsec/alusim"
)

// ComparePart drives two parts with identical inputs and fails the test on
// any output divergence. Both parts must expose the same pin interface.
// Input spaces up to 12 bits are checked exhaustively; larger ones get the
// all-low and all-high corners plus 4096 random assignments.
func ComparePart(t *testing.T, spc uint, part1, part2 alusim.NewPartFn) {
	t.Helper()

	p1, p2 := part1(""), part2("")
	if len(p1.Inputs) != len(p2.Inputs) || len(p1.Outputs) != len(p2.Outputs) {
		t.Fatalf("pin interface mismatch: %v/%v vs %v/%v",
			p1.Inputs, p1.Outputs, p2.Inputs, p2.Outputs)
	}
	for i := range p1.Inputs {
		if p1.Inputs[i] != p2.Inputs[i] {
			t.Fatalf("input pin mismatch: %q vs %q", p1.Inputs[i], p2.Inputs[i])
		}
	}
	for i := range p1.Outputs {
		if p1.Outputs[i] != p2.Outputs[i] {
			t.Fatalf("output pin mismatch: %q vs %q", p1.Outputs[i], p2.Outputs[i])
		}
	}

	inputs := make([]bool, len(p1.Inputs))
	outputs := make([][2]bool, len(p1.Outputs))

	var parts alusim.Parts
	var conn1, conn2 strings.Builder
	for i, n := range p1.Inputs {
		k := i
		parts = append(parts, alusim.Input(func() bool { return inputs[k] })("out="+n))
		fmt.Fprintf(&conn1, "%s=%s, ", n, n)
		fmt.Fprintf(&conn2, "%s=%s, ", n, n)
	}
	for i, n := range p1.Outputs {
		k := i
		w1, w2 := fmt.Sprintf("cmpa_%d", i), fmt.Sprintf("cmpb_%d", i)
		parts = append(parts,
			alusim.Output(func(v bool) { outputs[k][0] = v })("in="+w1),
			alusim.Output(func(v bool) { outputs[k][1] = v })("in="+w2))
		fmt.Fprintf(&conn1, "%s=%s, ", n, w1)
		fmt.Fprintf(&conn2, "%s=%s, ", n, w2)
	}
	parts = append(parts,
		part1(strings.TrimSuffix(conn1.String(), ", ")),
		part2(strings.TrimSuffix(conn2.String(), ", ")))

	c, err := alusim.NewCircuit(0, spc, parts...)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	assignment := func() string {
		var b strings.Builder
		for i, n := range p1.Inputs {
			if b.Len() > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%t", n, inputs[i])
		}
		return b.String()
	}
	check := func() {
		t.Helper()
		c.TickTock()
		for o, out := range outputs {
			if out[0] != out[1] {
				t.Fatalf("%s: %s: %s=%t, %s=%t", assignment(),
					p1.Outputs[o], p1.Name, out[0], p2.Name, out[1])
			}
		}
	}

	if bits := len(inputs); bits <= 12 {
		for v := 0; v < 1<<uint(bits); v++ {
			for bit := range inputs {
				inputs[bit] = v&(1<<uint(bit)) != 0
			}
			check()
		}
		return
	}

	for bit := range inputs {
		inputs[bit] = false
	}
	check()
	for bit := range inputs {
		inputs[bit] = true
	}
	check()
	for i := 0; i < 4096; i++ {
		for bit := range inputs {
			inputs[bit] = rand.Int63()&(1<<62) != 0
		}
		check()
	}
}
