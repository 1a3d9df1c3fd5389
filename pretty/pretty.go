package pretty

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
)

// Tuple is a fixed-arity record of heterogeneous elements. Tuples render as
// "[ e1, e2 ]", or "[]" when empty. A nil Tuple is an empty tuple, not null.
type Tuple []any

// Fprint renders value to w.
func Fprint(w io.Writer, value any) error {
	p := printer{w: w}
	p.render(value)
	return p.err
}

// Sprint renders value to a string.
func Sprint(value any) string {
	var b strings.Builder
	p := printer{w: &b}
	p.render(value)
	return b.String()
}

// FprintWithSeparator renders each value to w, joined by separator. No
// trailing separator is written; zero values write nothing.
func FprintWithSeparator(w io.Writer, separator string, values ...any) error {
	p := printer{w: w}
	for i, value := range values {
		if i > 0 {
			p.writeString(separator)
		}
		p.render(value)
	}
	return p.err
}

// SprintWithSeparator renders each value to a string, joined by separator.
func SprintWithSeparator(separator string, values ...any) string {
	var b strings.Builder
	_ = FprintWithSeparator(&b, separator, values...)
	return b.String()
}

// printer tracks the first write error so rendering code can stay linear.
// Rendering itself never fails; only the sink can.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) writeString(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

// render picks the most specific strategy for value. The order matters:
// explicit shapes before strings, strings before generic containers, and
// the fmt fallback last.
func (p *printer) render(value any) {
	if value == nil {
		p.writeString("null")
		return
	}
	// Nil typed pointers are null too, checked up front so no interface
	// assertion below can dereference one.
	rv := reflect.ValueOf(value)
	if (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.UnsafePointer) && rv.IsNil() {
		p.writeString("null")
		return
	}

	switch v := value.(type) {
	case Tuple:
		p.renderElems([]any(v))
		return
	case string:
		p.renderString(v)
		return
	}

	if pair, ok := value.(pairValue); ok {
		first, second := pair.pairValues()
		p.writeString("(")
		p.render(first)
		p.writeString(", ")
		p.render(second)
		p.writeString(")")
		return
	}

	if queue, ok := value.(queueValue); ok {
		// queueValues is a snapshot copy; the caller's queue is untouched.
		p.renderElems(queue.queueValues())
		return
	}

	switch rv.Kind() {
	case reflect.String:
		p.renderString(rv.String())
	case reflect.Pointer, reflect.UnsafePointer:
		p.writeString(fmt.Sprintf("%p", value))
	case reflect.Slice, reflect.Array:
		p.renderSequence(rv)
	case reflect.Map:
		p.renderMap(rv)
	default:
		if p.err == nil {
			_, p.err = fmt.Fprintf(p.w, "%v", value)
		}
	}
}

// renderString writes text double-quoted. The only translation is the
// literal ESC byte becoming the four characters `\033`; embedded quotes are
// intentionally left alone. This is a narrow display escape, not a string
// literal encoder.
func (p *printer) renderString(s string) {
	p.writeString(`"`)
	p.writeString(strings.ReplaceAll(s, "\x1b", `\033`))
	p.writeString(`"`)
}

func (p *printer) renderElems(elems []any) {
	if len(elems) == 0 {
		p.writeString("[]")
		return
	}
	p.writeString("[ ")
	for i, elem := range elems {
		if i > 0 {
			p.writeString(", ")
		}
		p.render(elem)
	}
	p.writeString(" ]")
}

func (p *printer) renderSequence(rv reflect.Value) {
	n := rv.Len()
	if n == 0 {
		p.writeString("[]")
		return
	}
	p.writeString("[ ")
	for i := 0; i < n; i++ {
		if i > 0 {
			p.writeString(", ")
		}
		p.render(rv.Index(i).Interface())
	}
	p.writeString(" ]")
}

// renderMap writes a map as a sequence of "(key, value)" pairs ordered by
// the rendered key, so the output is deterministic.
func (p *printer) renderMap(rv reflect.Value) {
	if rv.Len() == 0 {
		p.writeString("[]")
		return
	}

	type entry struct {
		sortKey    string
		key, value any
	}
	entries := make([]entry, 0, rv.Len())
	for iter := rv.MapRange(); iter.Next(); {
		key := iter.Key().Interface()
		entries = append(entries, entry{
			sortKey: Sprint(key),
			key:     key,
			value:   iter.Value().Interface(),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].sortKey < entries[j].sortKey })

	p.writeString("[ ")
	for i, e := range entries {
		if i > 0 {
			p.writeString(", ")
		}
		p.writeString("(")
		p.render(e.key)
		p.writeString(", ")
		p.render(e.value)
		p.writeString(")")
	}
	p.writeString(" ]")
}
