/*
Package alusim provides a small synchronous hardware simulation kernel used to
drive a circuit under test pin by pin, clock cycle by clock cycle.

Circuits are built by composing parts. A part is described by a PartSpec whose
Mount function returns closures updating the part's output wires from its
input wires on every simulation step:

	notSpec := &alusim.PartSpec{
		Name:    "NOT",
		Inputs:  alusim.IO("in"),
		Outputs: alusim.IO("out"),
		Mount: func(s *alusim.Socket) []alusim.Component {
			in, out := s.Pin("in"), s.Pin("out")
			return []alusim.Component{
				func(c *alusim.Circuit) { c.Set(out, !c.Get(in)) },
			}
		}}

Parts are wired together with connection strings of the form
"pin=wire, bus[0..3]=w[0..3]" and composed into reusable chips with Chip.
A Circuit runs the composed parts with a free running clock; Tick, Tock and
TickTock advance the simulation by half and full clock cycles.
*/
package alusim
