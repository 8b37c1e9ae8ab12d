package alusim

import (
	"github.com/pkg/errors"
)

// Chip composes existing parts into a new reusable part. The inputs and
// outputs specifications (see IO) become the pins of the chip; any other
// wire named in the part connections is internal to the chip.
//
// An Xor gate could be created like this:
//
//	xor, err := alusim.Chip("XOR", "a, b", "out",
//		Nand("a=a, b=b, out=nandAB"),
//		Nand("a=a, b=nandAB, out=w0"),
//		Nand("a=b, b=nandAB, out=w1"),
//		Nand("a=w0, b=w1, out=out"),
//	)
//
// The returned NewPartFn composes the chip into other chips or circuits:
//
//	xnor, err := alusim.Chip("XNOR", "a, b", "out",
//		xor("a=a, b=b, out=x"),
//		Not("in=x, out=out"),
//	)
//
// Chip checks the wiring: every connection must name a pin of its part,
// every internal wire and chip output must be driven by exactly one part
// output, no part output may drive a chip input or a constant wire, and
// every internal wire must feed at least one part input.
func Chip(name string, inputs, outputs string, parts ...Part) (NewPartFn, error) {
	in, err := ioSpec(inputs)
	if err != nil {
		return nil, errors.Wrap(err, name+" inputs")
	}
	out, err := ioSpec(outputs)
	if err != nil {
		return nil, errors.Wrap(err, name+" outputs")
	}

	if err := checkChipWiring(name, in, out, parts); err != nil {
		return nil, err
	}

	spec := &PartSpec{
		Name:    name,
		Inputs:  in,
		Outputs: out,
		Mount: func(s *Socket) []Component {
			var cs []Component
			for _, p := range parts {
				cs = append(cs, p.mount(s)...)
			}
			return cs
		},
	}
	return spec.NewPart, nil
}

func checkChipWiring(name string, in, out []string, parts []Part) error {
	isInput := make(map[string]bool, len(in))
	for _, n := range in {
		isInput[n] = true
	}
	isOutput := make(map[string]bool, len(out))
	for _, n := range out {
		isOutput[n] = true
	}

	driven := map[string]bool{}
	read := map[string]bool{}

	for _, p := range parts {
		if err := p.check(); err != nil {
			return errors.Wrap(err, name)
		}
		for _, o := range p.Outputs {
			w, ok := p.conns[o]
			if !ok {
				continue
			}
			pname := p.Name + "." + o
			switch {
			case w == False || w == True:
				return errors.New(name + ": " + pname + ": output pin connected to constant " + w + " wire")
			case w == Clk:
				return errors.New(name + ": " + pname + ": output pin connected to clock signal")
			case isInput[w]:
				return errors.New(name + ": " + pname + ": chip input pin " + w + " used as output")
			case driven[w]:
				return errors.New(name + ": " + pname + ": wire " + w + " already driven by another output")
			}
			driven[w] = true
		}
	}
	for _, p := range parts {
		for _, i := range p.Inputs {
			w, ok := p.conns[i]
			if !ok {
				continue
			}
			read[w] = true
			if !driven[w] && !isInput[w] && w != False && w != True && w != Clk {
				return errors.New(name + ": pin " + w + " not connected to any output")
			}
		}
	}
	for _, o := range out {
		if !driven[o] {
			return errors.New(name + ": output pin " + o + " not connected to any output")
		}
	}
	for w := range driven {
		if !read[w] && !isOutput[w] {
			return errors.New(name + ": pin " + w + " not connected to any input")
		}
	}
	return nil
}
