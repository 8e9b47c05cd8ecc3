// Package xfmt renders values in their debug representation: the
// structural, diagnostic text form of a value, as opposed to its
// user-facing display form.
package xfmt

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"sync"
	"unsafe"

	"strext/xstrconv"
)

// maxDepth bounds pointer and container nesting; deeper values print as "...".
const maxDepth = 32

// pp is used to store a printer's state and is reused with sync.Pool to avoid allocations.
type pp struct {
	buf []byte
}

// free saves used pp structs in ppFree; avoids an allocation per invocation.
func (p *pp) free() {
	// Proper usage of a sync.Pool requires each entry to have approximately
	// the same memory cost. To obtain this property when the stored type
	// contains a variably-sized buffer, we add a hard limit on the maximum buffer
	// to place back in the pool.
	//
	// See https://golang.org/issue/23199
	if cap(p.buf) > 64<<10 {
		return
	}

	p.buf = p.buf[:0]
	ppFree.Put(p)
}

var goStringerType = reflect.TypeOf((*fmt.GoStringer)(nil)).Elem()

// tuple is implemented by the tuple types so nested tuples share the
// caller's printer and depth.
type tuple interface {
	printTuple(p *pp, depth int)
}

var ppFree = sync.Pool{
	New: func() any { return new(pp) },
}

func newPrinter() *pp {
	p := ppFree.Get().(*pp)
	return p
}

// Fdebug writes the debug representation of v to w.
func Fdebug(w io.Writer, v any) (n int, err error) {
	p := newPrinter()
	p.printArg(v, 0)
	n, err = w.Write(p.buf)
	p.free()
	return
}

// Sdebug returns the debug representation of v.
func Sdebug(v any) string {
	p := newPrinter()
	p.printArg(v, 0)
	s := string(p.buf)
	p.free()
	return s
}

// AppendDebug appends the debug representation of v to dst and returns
// the extended buffer.
func AppendDebug(dst []byte, v any) []byte {
	p := newPrinter()
	p.printArg(v, 0)
	dst = append(dst, p.buf...)
	p.free()
	return dst
}

func (p *pp) printArg(arg any, depth int) {
	if arg == nil {
		p.buf = append(p.buf, "nil"...)
		return
	}
	// common cases skip reflection
	switch a := arg.(type) {
	case tuple:
		if isNil(reflect.ValueOf(arg)) {
			p.buf = append(p.buf, "nil"...)
			return
		}
		a.printTuple(p, depth)
	case fmt.GoStringer:
		p.printGoStringer(a, reflect.ValueOf(arg))
	case bool:
		p.buf = strconv.AppendBool(p.buf, a)
	case int:
		p.buf = xstrconv.AppendInt(p.buf, int64(a), 10)
	case int64:
		p.buf = xstrconv.AppendInt(p.buf, a, 10)
	case uint8:
		p.buf = xstrconv.AppendUint(p.buf, uint64(a), 10)
	case string:
		p.buf = strconv.AppendQuote(p.buf, a)
	default:
		p.printValue(addressable(reflect.ValueOf(arg)), depth)
	}
}

// addressable copies a struct or array into an addressable value so
// that its unexported fields can be reached by exposed.
func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() || !v.CanInterface() {
		return v
	}
	switch v.Kind() {
	case reflect.Struct, reflect.Array:
		c := reflect.New(v.Type()).Elem()
		c.Set(v)
		return c
	}
	return v
}

// exposed returns v with the read-only flag of an unexported field
// cleared, so its own GoString can be called and its elements
// interfaced. Non-addressable read-only values are returned as is.
func exposed(v reflect.Value) reflect.Value {
	if v.CanInterface() || !v.CanAddr() {
		return v
	}
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func (p *pp) printGoStringer(s fmt.GoStringer, v reflect.Value) {
	if isNil(v) {
		p.buf = append(p.buf, "nil"...)
		return
	}
	p.buf = append(p.buf, s.GoString()...)
}

// printValue renders v by kind. Values whose type implements
// fmt.GoStringer render through it, unexported fields included.
func (p *pp) printValue(v reflect.Value, depth int) {
	if depth > maxDepth {
		p.buf = append(p.buf, "..."...)
		return
	}
	if !v.IsValid() {
		p.buf = append(p.buf, "nil"...)
		return
	}
	v = exposed(v)
	if depth > 0 && v.CanInterface() && v.Type().Implements(goStringerType) {
		if isNil(v) {
			p.buf = append(p.buf, "nil"...)
			return
		}
		switch a := v.Interface().(type) {
		case tuple:
			a.printTuple(p, depth)
		case fmt.GoStringer:
			p.buf = append(p.buf, a.GoString()...)
		}
		return
	}

	switch v.Kind() {
	case reflect.Bool:
		p.buf = strconv.AppendBool(p.buf, v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		p.buf = xstrconv.AppendInt(p.buf, v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		p.buf = xstrconv.AppendUint(p.buf, v.Uint(), 10)
	case reflect.Float32:
		p.appendFloat(v.Float(), 32)
	case reflect.Float64:
		p.appendFloat(v.Float(), 64)
	case reflect.Complex64:
		p.buf = append(p.buf, strconv.FormatComplex(v.Complex(), 'g', -1, 64)...)
	case reflect.Complex128:
		p.buf = append(p.buf, strconv.FormatComplex(v.Complex(), 'g', -1, 128)...)
	case reflect.String:
		p.buf = strconv.AppendQuote(p.buf, v.String())
	case reflect.Slice:
		if v.IsNil() {
			p.buf = append(p.buf, "[]"...)
			return
		}
		p.printList(v, depth)
	case reflect.Array:
		p.printList(v, depth)
	case reflect.Map:
		if v.IsNil() {
			p.buf = append(p.buf, "nil"...)
			return
		}
		p.printMap(v, depth)
	case reflect.Struct:
		p.printStruct(v, depth)
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			p.buf = append(p.buf, "nil"...)
			return
		}
		p.printValue(addressable(v.Elem()), depth+1)
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if v.IsNil() {
			p.buf = append(p.buf, "nil"...)
			return
		}
		p.buf = append(p.buf, v.Type().String()...)
		p.buf = append(p.buf, "(0x"...)
		p.buf = xstrconv.AppendUint(p.buf, uint64(v.Pointer()), 16)
		p.buf = append(p.buf, ')')
	default:
		p.buf = append(p.buf, v.Type().String()...)
	}
}

// appendFloat uses the shortest representation and marks integral
// values with a trailing ".0" so they never read as integers.
func (p *pp) appendFloat(f float64, bitSize int) {
	start := len(p.buf)
	p.buf = strconv.AppendFloat(p.buf, f, 'g', -1, bitSize)
	for _, c := range p.buf[start:] {
		switch c {
		case '.', 'e', 'I', 'N':
			return
		}
	}
	p.buf = append(p.buf, ".0"...)
}

func (p *pp) printList(v reflect.Value, depth int) {
	p.buf = append(p.buf, '[')
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			p.buf = append(p.buf, ", "...)
		}
		p.printValue(v.Index(i), depth+1)
	}
	p.buf = append(p.buf, ']')
}

type mapEntry struct {
	key, val string
}

func (p *pp) printMap(v reflect.Value, depth int) {
	entries := make([]mapEntry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		entries = append(entries, mapEntry{
			key: p.render(addressable(iter.Key()), depth+1),
			val: p.render(addressable(iter.Value()), depth+1),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	p.buf = append(p.buf, '{')
	for i, e := range entries {
		if i > 0 {
			p.buf = append(p.buf, ", "...)
		}
		p.buf = append(p.buf, e.key...)
		p.buf = append(p.buf, ": "...)
		p.buf = append(p.buf, e.val...)
	}
	p.buf = append(p.buf, '}')
}

// render prints v with a scratch printer so map entries can be sorted
// by their text before being emitted.
func (p *pp) render(v reflect.Value, depth int) string {
	q := newPrinter()
	q.printValue(v, depth)
	s := string(q.buf)
	q.free()
	return s
}

func (p *pp) printStruct(v reflect.Value, depth int) {
	t := v.Type()
	p.buf = append(p.buf, t.Name()...)
	if t.NumField() == 0 {
		return
	}
	if t.Name() != "" {
		p.buf = append(p.buf, ' ')
	}
	p.buf = append(p.buf, "{ "...)
	for i := 0; i < t.NumField(); i++ {
		if i > 0 {
			p.buf = append(p.buf, ", "...)
		}
		p.buf = append(p.buf, t.Field(i).Name...)
		p.buf = append(p.buf, ": "...)
		p.printValue(v.Field(i), depth+1)
	}
	p.buf = append(p.buf, " }"...)
}
