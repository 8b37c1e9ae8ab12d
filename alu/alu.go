package alu

import (
	"github.com/hwsec/alusim"
)

// Operation selector values, sel[1:0] of ALU4.
//
//	00 ADD   out = a + b, c = carry
//	01 SUB   out = a - b, c = borrow
//	10 AND   out = a & b, c = 0
//	11 OR    out = a | b, c = 0

// ALU4 builds the 4-bit arithmetic and logic unit.
//
//	Inputs: a[4], b[4], sel[2]
//	Outputs: out[4], cout
//
// With tampered set, the unit carries the concealed trigger: whenever every
// bit of both operands is high, out[0] and cout are inverted, whatever the
// selected operation.
func ALU4(tampered bool) (alusim.NewPartFn, error) {
	parts := alusim.Parts{
		AddSub4("a[0..3]=a[0..3], b[0..3]=b[0..3], sub=sel[0], out[0..3]=sum[0..3], c=sc"),
		And4("a[0..3]=a[0..3], b[0..3]=b[0..3], out[0..3]=an[0..3]"),
		Or4("a[0..3]=a[0..3], b[0..3]=b[0..3], out[0..3]=lor[0..3]"),
		MuxN(4)("a[0..3]=an[0..3], b[0..3]=lor[0..3], sel=sel[0], out[0..3]=lg[0..3]"),
		Not("in=sel[1], out=nsel1"),
	}
	if !tampered {
		parts = append(parts,
			MuxN(4)("a[0..3]=sum[0..3], b[0..3]=lg[0..3], sel=sel[1], out[0..3]=out[0..3]"),
			And("a=sc, b=nsel1, out=cout"),
		)
		return alusim.Chip("ALU4", "a[4], b[4], sel[2]", "out[4], cout", parts...)
	}
	parts = append(parts,
		MuxN(4)("a[0..3]=sum[0..3], b[0..3]=lg[0..3], sel=sel[1], out[0]=r0, out[1..3]=out[1..3]"),
		And("a=sc, b=nsel1, out=cr"),
		AndWay(8)("in[0..3]=a[0..3], in[4..7]=b[0..3], out=trig"),
		Xor("a=r0, b=trig, out=out[0]"),
		Xor("a=cr, b=trig, out=cout"),
	)
	return alusim.Chip("ALU4T", "a[4], b[4], sel[2]", "out[4], cout", parts...)
}
