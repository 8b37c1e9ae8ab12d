package alusim

import (
	"github.com/pkg/errors"
)

// A Component updates the state of zero or more wires in a circuit. All
// components of a circuit run once per simulation step; reads see the wire
// states of the previous step, writes become visible on the next.
type Component func(c *Circuit)

// A MountFn mounts a part into socket s. Implementations query the socket
// for the wire numbers assigned to the part's pins and return closures over
// those numbers.
type MountFn func(s *Socket) []Component

// A PartSpec is the blueprint of a part: its name, I/O pins and mount
// function.
type PartSpec struct {
	// Part name, used in error messages.
	Name string
	// Input pin names. Use IO() to expand a declaration like "a, b, in[4]".
	Inputs []string
	// Output pin names.
	Outputs []string

	// Mount function (see MountFn).
	Mount MountFn
}

// NewPart wraps p together with the given connections into a Part. It panics
// if the connection string is malformed; name resolution against the
// enclosing chip or circuit is deferred to mount time.
func (p *PartSpec) NewPart(connections string) Part {
	conns, err := ParseConnections(connections)
	if err != nil {
		panic(err)
	}
	return Part{p, conns}
}

// A NewPartFn takes a connection configuration string and returns a new Part.
// See ParseConnections for the configuration syntax.
type NewPartFn func(connections string) Part

// A Part is a part specification wired into a host chip or circuit.
type Part struct {
	*PartSpec
	conns map[string]string
}

// Parts is a convenience type for part lists.
type Parts []Part

// check verifies that every connected pin exists in the part's interface.
func (p Part) check() error {
	pins := make(map[string]bool, len(p.Inputs)+len(p.Outputs))
	for _, n := range p.Inputs {
		pins[n] = true
	}
	for _, n := range p.Outputs {
		pins[n] = true
	}
	for n := range p.conns {
		if !pins[n] {
			return errors.New("invalid pin name " + n + " for part " + p.Name)
		}
	}
	return nil
}

// mount resolves the part's connections against the parent socket and mounts
// it. Unconnected inputs read the constant false wire; unconnected outputs
// drive a freshly allocated, unobserved wire.
func (p Part) mount(parent *Socket) []Component {
	sub := newSocket(parent.c)
	for _, n := range p.Inputs {
		if w, ok := p.conns[n]; ok {
			sub.m[n] = parent.PinOrNew(w)
		} else {
			sub.m[n] = cstFalse
		}
	}
	for _, n := range p.Outputs {
		if w, ok := p.conns[n]; ok {
			sub.m[n] = parent.PinOrNew(w)
		} else {
			sub.m[n] = parent.c.allocWire()
		}
	}
	return p.Mount(sub)
}
