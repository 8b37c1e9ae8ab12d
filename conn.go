package alusim

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// IO expands an I/O specification string into individual pin names.
// Buses are declared by a name followed by their size in brackets:
//
//	IO("a, b, in[4]") // []string{"a", "b", "in[0]", "in[1]", "in[2]", "in[3]"}
//
// IO panics on malformed specifications. It is meant to be used inline in
// PartSpec literals and Chip declarations where the specification is a
// constant; use ioSpec to handle errors.
func IO(spec string) []string {
	pins, err := ioSpec(spec)
	if err != nil {
		panic(err)
	}
	return pins
}

func ioSpec(spec string) ([]string, error) {
	var out []string
	for _, f := range strings.Split(spec, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			if len(out) == 0 && strings.TrimSpace(spec) == "" {
				return nil, nil
			}
			return nil, errors.Errorf("in %q: empty pin name", spec)
		}
		b := strings.IndexRune(f, '[')
		if b < 0 {
			if !validPinName(f) {
				return nil, errors.Errorf("in %q: invalid pin name %q", spec, f)
			}
			out = append(out, f)
			continue
		}
		name := f[:b]
		if !validPinName(name) {
			return nil, errors.Errorf("in %q: invalid bus name %q", spec, name)
		}
		if !strings.HasSuffix(f, "]") {
			return nil, errors.Errorf("in %q: missing ] in bus declaration %q", spec, f)
		}
		size, err := strconv.Atoi(f[b+1 : len(f)-1])
		if err != nil || size <= 0 {
			return nil, errors.Errorf("in %q: invalid bus size in %q", spec, f)
		}
		for i := 0; i < size; i++ {
			out = append(out, busPinName(name, i))
		}
	}
	return out, nil
}

func validPinName(n string) bool {
	for i, r := range n {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return len(n) > 0
}

// busPinName returns the name of pin i of the named bus.
func busPinName(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}

// expandRange expands a pin or bus-range name to individual pin names:
// "a" yields just "a", "in[2]" yields "in[2]", "in[0..3]" yields
// "in[0]" through "in[3]".
func expandRange(name string) ([]string, error) {
	i := strings.IndexRune(name, '[')
	if i < 0 {
		return []string{name}, nil
	}
	bus := name[:i]
	if bus == "" {
		return nil, errors.New("empty bus name in " + name)
	}
	n := name[i+1:]
	j := strings.Index(n, "..")
	if j < 0 {
		return []string{name}, nil
	}
	start, err := strconv.Atoi(n[:j])
	if err != nil {
		return nil, errors.Wrap(err, "bad bus range start in "+name)
	}
	n = n[j+2:]
	j = strings.IndexRune(n, ']')
	if j < 0 {
		return nil, errors.New("no terminating ] in bus range " + name)
	}
	end, err := strconv.Atoi(n[:j])
	if err != nil {
		return nil, errors.Wrap(err, "bad bus range end in "+name)
	}
	if end < start {
		return nil, errors.New("inverted bus range " + name)
	}
	r := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		r = append(r, busPinName(bus, i))
	}
	return r, nil
}

// ParseConnections parses a connection configuration string and returns the
// resulting pin to wire mapping. Connections are a comma separated list of
// "pin=wire" assignments where both sides may use bus ranges:
//
//	"a=x, b=y, out=result"
//	"in[0..3]=v[0..3], sel=op"
//	"in[0..7]=zero" // every pin of in wired to the same wire
//
// Each pin maps to exactly one wire; fan-out is obtained by connecting
// several part inputs to the same wire.
func ParseConnections(connections string) (map[string]string, error) {
	conns := make(map[string]string)
	s := strings.TrimSpace(connections)
	if s == "" {
		return conns, nil
	}
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		eq := strings.IndexRune(f, '=')
		if eq <= 0 || eq == len(f)-1 {
			return nil, errors.Errorf("in %q: expected pin=wire, got %q", connections, f)
		}
		k, v := strings.TrimSpace(f[:eq]), strings.TrimSpace(f[eq+1:])
		ks, err := expandRange(k)
		if err != nil {
			return nil, errors.Wrap(err, "expand pin "+k)
		}
		vs, err := expandRange(v)
		if err != nil {
			return nil, errors.Wrap(err, "expand wire "+v)
		}
		switch {
		case len(ks) == len(vs):
			for i := range ks {
				if err := addConn(conns, ks[i], vs[i]); err != nil {
					return nil, errors.Wrap(err, "in "+connections)
				}
			}
		case len(vs) == 1:
			for _, k := range ks {
				if err := addConn(conns, k, vs[0]); err != nil {
					return nil, errors.Wrap(err, "in "+connections)
				}
			}
		default:
			return nil, errors.Errorf("in %q: pin count mismatch in %q", connections, f)
		}
	}
	return conns, nil
}

func addConn(conns map[string]string, pin, wire string) error {
	if _, ok := conns[pin]; ok {
		return errors.New("pin " + pin + " connected twice")
	}
	conns[pin] = wire
	return nil
}
