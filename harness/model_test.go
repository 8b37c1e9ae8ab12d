package harness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hwsec/alusim/harness"
)

// plainTable is the operation table without the trigger overlay, written out
// independently of the model under test.
func plainTable(op harness.Op, a, b uint8) harness.Outcome {
	switch op {
	case harness.Add:
		raw := int(a) + int(b)
		return harness.Outcome{Result: uint8(raw) & 0xF, Carry: raw > 15}
	case harness.Sub:
		raw := int(a) - int(b)
		return harness.Outcome{Result: uint8(raw) & 0xF, Carry: raw < 0}
	case harness.And:
		return harness.Outcome{Result: a & b}
	default:
		return harness.Outcome{Result: a | b}
	}
}

func TestCompute_concreteCases(t *testing.T) {
	td := []struct {
		v    harness.Vector
		want harness.Outcome
	}{
		{harness.Vector{Op: harness.Add, A: 5, B: 3}, harness.Outcome{Result: 8}},
		{harness.Vector{Op: harness.Sub, A: 10, B: 4}, harness.Outcome{Result: 6}},
		{harness.Vector{Op: harness.And, A: 12, B: 10}, harness.Outcome{Result: 8}},
		{harness.Vector{Op: harness.Or, A: 9, B: 6}, harness.Outcome{Result: 15}},
		// 15+14 = 29: carry set, no trigger since B != 15
		{harness.Vector{Op: harness.Add, A: 15, B: 14}, harness.Outcome{Result: 13, Carry: true}},
		// 15+15 = 30: result 14 carry 1, overlaid to result 15 carry 0
		{harness.Vector{Op: harness.Add, A: 15, B: 15}, harness.Outcome{Result: 15, Carry: false}},
		// subtraction borrow, not two's complement carry
		{harness.Vector{Op: harness.Sub, A: 4, B: 10}, harness.Outcome{Result: 10, Carry: true}},
		{harness.Vector{Op: harness.Sub, A: 0, B: 0}, harness.Outcome{Result: 0, Carry: false}},
	}
	for _, d := range td {
		assert.Equal(t, d.want, d.v.Expected(), "%s", d.v)
	}
}

func TestCompute_totality(t *testing.T) {
	assert := assert.New(t)
	for op := harness.Add; op <= harness.Or; op++ {
		for a := uint8(0); a < 16; a++ {
			for b := uint8(0); b < 16; b++ {
				got := harness.Compute(op, a, b)

				// masking invariant
				assert.LessOrEqual(got.Result, uint8(15), "%s A=%d B=%d", op, a, b)

				want := plainTable(op, a, b)
				if a == 15 && b == 15 {
					// trigger locality: the overlay fires here for every
					// operation, and only here
					assert.True(harness.Triggered(a, b))
					assert.Equal(want.Result^1, got.Result, "%s A=%d B=%d", op, a, b)
					assert.Equal(!want.Carry, got.Carry, "%s A=%d B=%d", op, a, b)
				} else {
					assert.False(harness.Triggered(a, b), "A=%d B=%d", a, b)
					assert.Equal(want, got, "%s A=%d B=%d", op, a, b)
				}
			}
		}
	}
}

func TestCompute_operandMasking(t *testing.T) {
	// operands beyond 4 bits are masked on entry
	assert.Equal(t, harness.Compute(harness.Add, 5, 3), harness.Compute(harness.Add, 0x15, 0xF3))
	assert.True(t, harness.Triggered(0xFF, 0x1F))
}

func TestOp_String(t *testing.T) {
	assert.Equal(t, "ADD", harness.Add.String())
	assert.Equal(t, "SUB", harness.Sub.String())
	assert.Equal(t, "AND", harness.And.String())
	assert.Equal(t, "OR", harness.Or.String())
}
