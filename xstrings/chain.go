// Package xstrings provides chainable append helpers over text buffers.
//
// Each helper appends to the buffer it is given and hands the same buffer
// back, so appends compose left to right in one expression:
//
//	var b xstrings.Builder
//	b.Chain().
//		Writeln("hello world!").
//		Write("pink: ").
//		WritelnDebug(xfmt.T3(255, 27, 141))
//
// The free functions Write, Writeln, WriteDebug and WritelnDebug do the same
// for any Buffer, including *strings.Builder and *bytes.Buffer.
//
// A failed append is not returned to the caller: it is logged and raised as
// a panic carrying a *WriteFailure.
package xstrings

import (
	"fmt"
	"io"

	"strext/xfmt"
)

// Buffer is the text sink the helpers append to.
type Buffer interface {
	io.Writer
	io.StringWriter
}

// Write appends s to b verbatim and returns b.
func Write[B Buffer](b B, s string) B {
	if _, err := b.WriteString(s); err != nil {
		fail(err)
	}
	return b
}

// Writeln appends s and a newline to b and returns b.
func Writeln[B Buffer](b B, s string) B {
	Write(b, s)
	return Write(b, "\n")
}

// WriteDebug appends the debug representation of v (see xfmt.Sdebug)
// to b and returns b.
func WriteDebug[B Buffer](b B, v any) B {
	if _, err := xfmt.Fdebug(b, v); err != nil {
		fail(err)
	}
	return b
}

// WritelnDebug appends the debug representation of v and a newline to b
// and returns b.
func WritelnDebug[B Buffer](b B, v any) B {
	WriteDebug(b, v)
	return Write(b, "\n")
}

// Chain is a handle over a Buffer whose methods return the same handle.
// It holds the buffer only; the caller keeps ownership.
type Chain[B Buffer] struct {
	buf B
}

// On returns a chaining handle over b.
func On[B Buffer](b B) *Chain[B] {
	return &Chain[B]{buf: b}
}

func (c *Chain[B]) Write(s string) *Chain[B] {
	Write(c.buf, s)
	return c
}

func (c *Chain[B]) Writeln(s string) *Chain[B] {
	Writeln(c.buf, s)
	return c
}

func (c *Chain[B]) WriteDebug(v any) *Chain[B] {
	WriteDebug(c.buf, v)
	return c
}

func (c *Chain[B]) WritelnDebug(v any) *Chain[B] {
	WritelnDebug(c.buf, v)
	return c
}

// Buffer returns the wrapped buffer.
func (c *Chain[B]) Buffer() B {
	return c.buf
}

// String returns the buffer content if the buffer is a fmt.Stringer,
// and "" otherwise.
func (c *Chain[B]) String() string {
	if s, ok := any(c.buf).(fmt.Stringer); ok {
		return s.String()
	}
	return ""
}
