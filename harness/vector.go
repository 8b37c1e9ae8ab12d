package harness

import "fmt"

// A Vector is one stimulus vector: the operand/operation combination applied
// to the unit for exactly one clock edge. Vectors are immutable values.
type Vector struct {
	Op Op
	A  uint8
	B  uint8
}

func (v Vector) String() string {
	return fmt.Sprintf("%s A=%d B=%d", v.Op, v.A, v.B)
}

// Pack returns the bus values encoding v on the unit's input pins:
// in1 carries the operation selector in bits 5:4 and operand A in bits 3:0,
// in2 carries operand B in bits 3:0.
func (v Vector) Pack() (in1, in2 uint8) {
	return uint8(v.Op)<<4 | v.A&0xF, v.B & 0xF
}

// Expected returns the golden model outcome for v.
func (v Vector) Expected() Outcome {
	return Compute(v.Op, v.A, v.B)
}

// Unpack decodes the unit's output bus: bits 3:0 are the result, bit 4 the
// carry flag.
func Unpack(out uint8) Outcome {
	return Outcome{Result: out & 0xF, Carry: out>>4&1 == 1}
}
