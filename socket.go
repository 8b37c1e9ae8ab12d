package alusim

// Names of the wires available to every part in a circuit.
const (
	False = "false" // constant low
	True  = "true"  // constant high
	Clk   = "clk"   // free running clock driven by the circuit
)

const (
	cstFalse = iota
	cstTrue
	cstClk
	cstCount
)

// A Socket maps a part's pin names to wire numbers in a circuit. A fresh
// socket is created for every mounted part instance, so chip internal wires
// never collide across instances.
type Socket struct {
	m map[string]int
	c *Circuit
}

func newSocket(c *Circuit) *Socket {
	return &Socket{
		m: map[string]int{False: cstFalse, True: cstTrue, Clk: cstClk},
		c: c,
	}
}

// Pin returns the wire number assigned to the given pin name. It panics if
// the pin does not exist: MountFn implementations are called only after all
// of the part's declared pins have been assigned.
func (s *Socket) Pin(name string) int {
	n, ok := s.m[name]
	if !ok {
		panic("pin " + name + " does not exist")
	}
	return n
}

// PinOrNew returns the wire number assigned to the given pin name,
// allocating a new wire if none is assigned yet.
func (s *Socket) PinOrNew(name string) int {
	n, ok := s.m[name]
	if !ok {
		n = s.c.allocWire()
		s.m[name] = n
	}
	return n
}

// Bus returns the wire numbers assigned to the given bus. Wire 0 of the
// result is pin name[0].
func (s *Socket) Bus(name string, bits int) []int {
	out := make([]int, bits)
	for i := range out {
		out[i] = s.Pin(busPinName(name, i))
	}
	return out
}
