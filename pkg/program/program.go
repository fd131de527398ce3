package program

import (
	"bufio"
	"fmt"
	"strings"
)

// Operand is one typed register of a function signature.
type Operand struct {
	Register string
	Type     string
}

// Record reports whether the operand names a record type, i.e. one whose
// consumption requires a Merkle inclusion proof against the ledger root.
func (o Operand) Record() bool {
	return strings.HasSuffix(o.Type, ".record")
}

// Function is one callable circuit of a program.
type Function struct {
	Name    Identifier
	Inputs  []Operand
	Outputs []Operand
}

// Program is an immutable, named collection of function definitions.
type Program struct {
	id        ID
	functions []*Function
	index     map[Identifier]*Function
}

func (p *Program) ID() ID { return p.id }

// Function looks up a function definition by name.
func (p *Program) Function(name Identifier) (*Function, bool) {
	fn, ok := p.index[name]
	return fn, ok
}

// Functions returns the function definitions in declaration order.
func (p *Program) Functions() []*Function { return p.functions }

// Parse reads a program from its definition text:
//
//	program credits.aleo;
//
//	function transfer_public:
//	    input r0 as address.public;
//	    input r1 as u64.public;
//	    output r2 as future.public;
func Parse(src string) (*Program, error) {
	p := &Program{index: make(map[Identifier]*Function)}
	var cur *Function
	seenID := false

	sc := bufio.NewScanner(strings.NewReader(src))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		keyword, rest, _ := strings.Cut(line, " ")
		switch keyword {
		case "program":
			id, err := ParseID(strings.TrimSuffix(rest, ";"))
			if err != nil {
				return nil, err
			}
			if seenID {
				return nil, fmt.Errorf("%w: duplicate program declaration", ErrMalformed)
			}
			p.id, seenID = id, true

		case "function":
			if !seenID {
				return nil, fmt.Errorf("%w: function before program declaration", ErrMalformed)
			}
			name, err := ParseIdentifier(strings.TrimSuffix(rest, ":"))
			if err != nil {
				return nil, err
			}
			if _, dup := p.index[name]; dup {
				return nil, fmt.Errorf("%w: duplicate function %q", ErrMalformed, name)
			}
			cur = &Function{Name: name}
			p.functions = append(p.functions, cur)
			p.index[name] = cur

		case "input", "output":
			if cur == nil {
				return nil, fmt.Errorf("%w: %s outside function body", ErrMalformed, keyword)
			}
			op, err := parseOperand(rest)
			if err != nil {
				return nil, err
			}
			if keyword == "input" {
				cur.Inputs = append(cur.Inputs, op)
			} else {
				cur.Outputs = append(cur.Outputs, op)
			}

		default:
			return nil, fmt.Errorf("%w: unknown directive %q", ErrMalformed, keyword)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if !seenID {
		return nil, fmt.Errorf("%w: missing program declaration", ErrMalformed)
	}
	return p, nil
}

// parseOperand reads "<register> as <type>;".
func parseOperand(rest string) (Operand, error) {
	reg, typed, ok := strings.Cut(rest, " as ")
	if !ok {
		return Operand{}, fmt.Errorf("%w: operand %q", ErrMalformed, rest)
	}
	typ, ok := strings.CutSuffix(typed, ";")
	if !ok || typ == "" || !validRegister(reg) {
		return Operand{}, fmt.Errorf("%w: operand %q", ErrMalformed, rest)
	}
	for _, r := range typ {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '.', r == '/':
		default:
			return Operand{}, fmt.Errorf("%w: operand type %q", ErrMalformed, typ)
		}
	}
	return Operand{Register: reg, Type: typ}, nil
}

func validRegister(s string) bool {
	if len(s) < 2 || s[0] != 'r' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// String renders the canonical definition text; Parse(p.String()) yields an
// equal program.
func (p *Program) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "program %s;\n", p.id)
	for _, fn := range p.functions {
		fmt.Fprintf(&b, "\nfunction %s:\n", fn.Name)
		for _, in := range fn.Inputs {
			fmt.Fprintf(&b, "    input %s as %s;\n", in.Register, in.Type)
		}
		for _, out := range fn.Outputs {
			fmt.Fprintf(&b, "    output %s as %s;\n", out.Register, out.Type)
		}
	}
	return b.String()
}
