package alu

import (
	"github.com/hwsec/alusim"
	"github.com/pkg/errors"
)

// Device builds the top level circuit under test with its external pinout:
//
//	Inputs:  rstn      active low reset
//	         en        enable, must be high for the unit to operate
//	         in1[8]    in1[3:0] = operand A, in1[5:4] = operation selector
//	         in2[8]    in2[3:0] = operand B, upper bits ignored
//	Outputs: out[8]    out[3:0] = result, out[4] = carry, out[7:5] = 0
//
// All output bits are forced low while rstn or en is low. The tampered
// variant embeds the trigger described in ALU4.
func Device(tampered bool) (alusim.NewPartFn, error) {
	core, err := ALU4(tampered)
	if err != nil {
		return nil, errors.Wrap(err, "build ALU core")
	}
	name := "ALUDEV"
	if tampered {
		name = "ALUDEVT"
	}
	return alusim.Chip(name, "rstn, en, in1[8], in2[8]", "out[8]",
		core("a[0..3]=in1[0..3], sel[0]=in1[4], sel[1]=in1[5], b[0..3]=in2[0..3], out[0..3]=y[0..3], cout=yc"),
		And("a=rstn, b=en, out=run"),
		And("a=y[0], b=run, out=out[0]"),
		And("a=y[1], b=run, out=out[1]"),
		And("a=y[2], b=run, out=out[2]"),
		And("a=y[3], b=run, out=out[3]"),
		And("a=yc, b=run, out=out[4]"),
		Low("out=out[5]"),
		Low("out=out[6]"),
		Low("out=out[7]"),
	)
}
