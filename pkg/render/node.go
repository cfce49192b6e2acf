// Package render defines the opaque UI node a story produces. Nodes serialize
// to HTML for the host bridge; layout and interactivity belong to the preview
// tool, not this package.
package render

import (
	"html"
	"strings"
)

// Node is the opaque result of rendering a story. The external DOM bridge
// consumes its HTML form.
type Node interface {
	HTML() string
}

type pair struct {
	key   string
	value string
}

// Element is a chainable HTML element builder. Attribute and style order is
// preserved so output stays deterministic.
type Element struct {
	tag      string
	attrs    []pair
	styles   []pair
	text     string
	children []Node
}

// El starts an element with the supplied tag.
func El(tag string) *Element {
	return &Element{tag: tag}
}

// Text sets the escaped text content rendered before any children.
func (e *Element) Text(content string) *Element {
	e.text = content
	return e
}

// Attr appends an attribute. Later values for the same key win at render time.
func (e *Element) Attr(key, value string) *Element {
	e.attrs = append(e.attrs, pair{key: key, value: value})
	return e
}

// Style appends an inline style declaration.
func (e *Element) Style(property, value string) *Element {
	e.styles = append(e.styles, pair{key: property, value: value})
	return e
}

// Child appends child nodes.
func (e *Element) Child(children ...Node) *Element {
	for _, child := range children {
		if child == nil {
			continue
		}
		e.children = append(e.children, child)
	}
	return e
}

var voidTags = map[string]struct{}{
	"br": {}, "hr": {}, "img": {}, "input": {}, "link": {}, "meta": {},
}

// HTML serializes the element and its subtree.
func (e *Element) HTML() string {
	var b strings.Builder
	b.Grow(64)
	b.WriteByte('<')
	b.WriteString(e.tag)

	for _, attr := range collapse(e.attrs) {
		b.WriteByte(' ')
		b.WriteString(attr.key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(attr.value))
		b.WriteByte('"')
	}
	if styles := collapse(e.styles); len(styles) > 0 {
		b.WriteString(` style="`)
		for i, style := range styles {
			if i > 0 {
				b.WriteString("; ")
			}
			b.WriteString(style.key)
			b.WriteString(": ")
			b.WriteString(html.EscapeString(style.value))
		}
		b.WriteByte('"')
	}
	b.WriteByte('>')

	if _, void := voidTags[e.tag]; void {
		return b.String()
	}

	if e.text != "" {
		b.WriteString(html.EscapeString(e.text))
	}
	for _, child := range e.children {
		b.WriteString(child.HTML())
	}
	b.WriteString("</")
	b.WriteString(e.tag)
	b.WriteByte('>')
	return b.String()
}

// collapse keeps the last value per key while preserving first-seen order.
func collapse(pairs []pair) []pair {
	if len(pairs) < 2 {
		return pairs
	}
	index := make(map[string]int, len(pairs))
	out := pairs[:0:0]
	for _, p := range pairs {
		if at, seen := index[p.key]; seen {
			out[at] = p
			continue
		}
		index[p.key] = len(out)
		out = append(out, p)
	}
	return out
}

// Text wraps plain content in a div, mirroring the simplest possible story.
func Text(content string) Node {
	return El("div").Text(content)
}

// Styled wraps content in a lightly chromed div using the supplied text color.
func Styled(content, color string) Node {
	return El("div").
		Text(content).
		Style("color", color).
		Style("padding", "10px").
		Style("border", "1px solid #ccc").
		Style("border-radius", "4px")
}
