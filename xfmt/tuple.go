package xfmt

import "strconv"

// Char is a rune whose debug form is the single-quoted character
// ('a') rather than its code point.
type Char rune

func (c Char) GoString() string {
	return strconv.QuoteRune(rune(c))
}

// Pair is a two-element tuple. It renders as (a, b).
type Pair[A, B any] struct {
	V0 A
	V1 B
}

// T2 returns the tuple (a, b).
func T2[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{V0: a, V1: b}
}

func (t Pair[A, B]) GoString() string { return sprintTuple(t) }

func (t Pair[A, B]) printTuple(p *pp, depth int) {
	printElems(p, depth, t.V0, t.V1)
}

// Triple is a three-element tuple. It renders as (a, b, c).
type Triple[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

// T3 returns the tuple (a, b, c).
func T3[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{V0: a, V1: b, V2: c}
}

func (t Triple[A, B, C]) GoString() string { return sprintTuple(t) }

func (t Triple[A, B, C]) printTuple(p *pp, depth int) {
	printElems(p, depth, t.V0, t.V1, t.V2)
}

// Tuple is a tuple of any arity. A single element renders with a
// trailing comma, (a,), and the empty tuple renders as ().
type Tuple []any

func (t Tuple) GoString() string { return sprintTuple(t) }

func (t Tuple) printTuple(p *pp, depth int) {
	printElems(p, depth, t...)
}

func sprintTuple(t tuple) string {
	p := newPrinter()
	t.printTuple(p, 0)
	s := string(p.buf)
	p.free()
	return s
}

// printElems writes (e0, e1, ...) with each element one level deeper
// than the tuple itself.
func printElems(p *pp, depth int, elems ...any) {
	if depth > maxDepth {
		p.buf = append(p.buf, "..."...)
		return
	}
	p.buf = append(p.buf, '(')
	for i, v := range elems {
		if i > 0 {
			p.buf = append(p.buf, ", "...)
		}
		p.printArg(v, depth+1)
	}
	if len(elems) == 1 {
		p.buf = append(p.buf, ',')
	}
	p.buf = append(p.buf, ')')
}
