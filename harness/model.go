// Package harness implements the verification harness for the 4-bit ALU
// under test: a golden reference model of the unit including its concealed
// trigger, the clock/reset sequencing protocol, stimulus generation, and a
// scenario runner comparing observed against expected outputs cycle by
// cycle.
package harness

// Op is an ALU operation, encoded as the 2-bit selector driven on the
// operation pins.
type Op uint8

// ALU operations.
const (
	Add Op = iota
	Sub
	And
	Or
)

var opNames = [...]string{"ADD", "SUB", "AND", "OR"}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "OP?"
}

// An Outcome is the output of one ALU operation: the 4-bit result and the
// carry flag (addition overflow or subtraction borrow).
type Outcome struct {
	Result uint8
	Carry  bool
}

// Triggered reports whether the concealed trigger condition is active for
// the given operand pair.
func Triggered(a, b uint8) bool {
	return a&0xF == 15 && b&0xF == 15
}

// Compute is the golden reference model: it returns the expected outcome of
// one operation, including the effect of the concealed trigger. It is a pure
// total function of its arguments; operands are masked to 4 bits.
//
// The trigger fires for every operation, not only ADD: when both operands
// are 15, the result's least significant bit is flipped and the carry flag
// is logically inverted.
//
// Note that the carry flag of SUB is a borrow (set when a < b), not a two's
// complement carry out. This matches the unit under test and must not be
// "corrected".
func Compute(op Op, a, b uint8) Outcome {
	a, b = a&0xF, b&0xF
	var o Outcome
	switch op {
	case Add:
		raw := int(a) + int(b)
		o = Outcome{Result: uint8(raw) & 0xF, Carry: raw > 15}
	case Sub:
		raw := int(a) - int(b)
		o = Outcome{Result: uint8(raw) & 0xF, Carry: raw < 0}
	case And:
		o = Outcome{Result: a & b}
	case Or:
		o = Outcome{Result: a | b}
	}
	if Triggered(a, b) {
		o.Result ^= 1
		o.Carry = !o.Carry
	}
	return o
}
