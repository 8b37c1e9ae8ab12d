package alusim

import (
	"strconv"
)

// Input returns a function based single pin input.
//
//	Outputs: out
//	Function: out = f()
func Input(f func() bool) NewPartFn {
	p := &PartSpec{
		Name:    "INPUT",
		Inputs:  nil,
		Outputs: []string{"out"},
		Mount: func(s *Socket) []Component {
			pin := s.Pin("out")
			return []Component{
				func(c *Circuit) { c.Set(pin, f()) },
			}
		}}
	return p.NewPart
}

// Output returns an output probe. f is called with the state of the
// connected wire on every simulation step.
//
//	Inputs: in
//	Function: f(in)
func Output(f func(value bool)) NewPartFn {
	p := &PartSpec{
		Name:    "OUTPUT",
		Inputs:  []string{"in"},
		Outputs: nil,
		Mount: func(s *Socket) []Component {
			pin := s.Pin("in")
			return []Component{
				func(c *Circuit) { f(c.Get(pin)) },
			}
		}}
	return p.NewPart
}

// InputN returns a function based input bus of the given size. Bit 0 of the
// returned value drives out[0].
//
//	Outputs: out[bits]
//	Function: out = f()
func InputN(bits int, f func() int64) NewPartFn {
	return (&PartSpec{
		Name:    "INPUT" + strconv.Itoa(bits),
		Inputs:  nil,
		Outputs: IO("out[" + strconv.Itoa(bits) + "]"),
		Mount: func(s *Socket) []Component {
			pins := s.Bus("out", bits)
			return []Component{func(c *Circuit) {
				v := f()
				for bit, pin := range pins {
					c.Set(pin, v&(1<<uint(bit)) != 0)
				}
			}}
		}}).NewPart
}

// OutputN returns an output bus probe of the given size. f is called with
// the bus value on every simulation step, in[0] as bit 0.
//
//	Inputs: in[bits]
//	Function: f(in)
func OutputN(bits int, f func(int64)) NewPartFn {
	return (&PartSpec{
		Name:    "OUTPUT" + strconv.Itoa(bits),
		Inputs:  IO("in[" + strconv.Itoa(bits) + "]"),
		Outputs: nil,
		Mount: func(s *Socket) []Component {
			pins := s.Bus("in", bits)
			return []Component{func(c *Circuit) {
				var v int64
				for bit, pin := range pins {
					if c.Get(pin) {
						v |= 1 << uint(bit)
					}
				}
				f(v)
			}}
		}}).NewPart
}
