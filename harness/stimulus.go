package harness

// Exhaustive returns the full stimulus set: every operation, every operand
// pair, 4 x 16 x 16 = 256 vectors. The order is deterministic: operation
// outermost, then operand A, then operand B.
func Exhaustive() []Vector {
	vs := make([]Vector, 0, 4*16*16)
	for op := Add; op <= Or; op++ {
		for a := 0; a < 16; a++ {
			for b := 0; b < 16; b++ {
				vs = append(vs, Vector{Op: op, A: uint8(a), B: uint8(b)})
			}
		}
	}
	return vs
}

// Smoke returns the short curated stimulus set used by the basic operation
// scenario: one straightforward case per operation.
func Smoke() []Vector {
	return []Vector{
		{Op: Add, A: 5, B: 3},
		{Op: Sub, A: 10, B: 4},
		{Op: And, A: 12, B: 10},
		{Op: Or, A: 9, B: 6},
	}
}
