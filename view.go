/*
 * Copyright 2023 The gorpsl authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *       http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package gorpsl

import (
	"io"
	"strings"
)

// ValueView is the value of an attribute as a view into the parsed buffer.
// Every line of text it exposes is a sub-range of that buffer; no value
// bytes are copied.
type ValueView struct {
	src   string
	first span
	rest  []span // continuation lines, nil for a single line value
}

// Len returns the number of physical lines the value occupies.
func (v ValueView) Len() int {
	return 1 + len(v.rest)
}

// IsMultiline reports whether the value spans more than one physical line.
func (v ValueView) IsMultiline() bool {
	return len(v.rest) > 0
}

// Line returns the trimmed text of the i-th physical line. ok is false for
// an absent line. Line panics if i is out of range.
func (v ValueView) Line(i int) (text string, ok bool) {
	var s span
	if i == 0 {
		s = v.first
	} else {
		s = v.rest[i-1]
	}
	if s.isAbsent() {
		return "", false
	}
	return s.in(v.src), true
}

// Text returns the text of a single line value. ok is false if the value is
// absent or spans multiple lines.
func (v ValueView) Text() (text string, ok bool) {
	if v.IsMultiline() {
		return "", false
	}
	return v.Line(0)
}

// WithContent returns the text of the lines that are not absent.
func (v ValueView) WithContent() []string {
	return withContent(v)
}

// Equal reports whether two views have the same logical content. The views
// need not reference the same buffer.
func (v ValueView) Equal(other ValueView) bool {
	return valueEqual(v, other)
}

// EqualValue reports whether the view and an owned value have the same
// logical content.
func (v ValueView) EqualValue(other Value) bool {
	return valueEqual(v, other)
}

// ToOwned deep copies the referenced text into a Value which shares nothing
// with the parsed buffer.
func (v ValueView) ToOwned() Value {
	owned := Value{first: cloneLine(v.src, v.first)}
	if len(v.rest) > 0 {
		owned.rest = make([]optText, len(v.rest))
		for i, s := range v.rest {
			owned.rest[i] = cloneLine(v.src, s)
		}
	}
	return owned
}

func cloneLine(src string, s span) optText {
	if s.isAbsent() {
		return optText{}
	}
	return optText{text: strings.Clone(s.in(src)), ok: true}
}

// AttributeView is a name value pair of an ObjectView. The name and every
// value line are sub-ranges of the parsed buffer.
type AttributeView struct {
	src   string
	name  span
	first span
	rest  []span
}

// Name returns the attribute name, byte for byte as written.
func (a AttributeView) Name() string {
	return a.name.in(a.src)
}

// Value returns the attribute value as a view.
func (a AttributeView) Value() ValueView {
	return ValueView{src: a.src, first: a.first, rest: a.rest}
}

// Equal reports whether two views have the same name and value content.
func (a AttributeView) Equal(other AttributeView) bool {
	return a.Name() == other.Name() && valueEqual(a.Value(), other.Value())
}

// EqualAttribute reports whether the view and an owned attribute have the
// same name and value content.
func (a AttributeView) EqualAttribute(other Attribute) bool {
	return a.Name() == other.Name && valueEqual(a.Value(), other.Value)
}

// ToOwned deep copies the attribute into independent storage.
func (a AttributeView) ToOwned() Attribute {
	return Attribute{Name: strings.Clone(a.Name()), Value: a.Value().ToOwned()}
}

// String renders the attribute as canonical RPSL text.
func (a AttributeView) String() string {
	sb := &strings.Builder{}
	if _, err := writeAttribute(sb, a.Name(), a.Value()); err != nil {
		panic(err)
	}
	return sb.String()
}

// ObjectView is one RPSL object as a view into the parsed buffer: an ordered
// sequence of attributes in input order. Repeated names are kept as separate
// attributes. The view is read-only and valid for as long as the buffer it
// was parsed from is reachable.
type ObjectView struct {
	src   string
	attrs []AttributeView
}

// Len returns the number of attributes.
func (o ObjectView) Len() int {
	return len(o.attrs)
}

// Attribute returns the i-th attribute in input order.
// It panics if i is out of range.
func (o ObjectView) Attribute(i int) AttributeView {
	return o.attrs[i]
}

// Attributes returns the attributes in input order.
func (o ObjectView) Attributes() []AttributeView {
	return o.attrs
}

// Get returns the value of the first attribute with the given name.
// The name is matched byte for byte. If no attribute matches, ok is false.
func (o ObjectView) Get(name string) (value ValueView, ok bool) {
	for _, a := range o.attrs {
		if a.Name() == name {
			return a.Value(), true
		}
	}
	return ValueView{}, false
}

// GetAll returns the values of every attribute with the given name, in input order.
func (o ObjectView) GetAll(name string) []ValueView {
	var result []ValueView
	for _, a := range o.attrs {
		if a.Name() == name {
			result = append(result, a.Value())
		}
	}
	return result
}

// Has reports whether the object has an attribute with the given name.
func (o ObjectView) Has(name string) bool {
	for _, a := range o.attrs {
		if a.Name() == name {
			return true
		}
	}
	return false
}

// Equal reports whether two views have the same attributes with the same
// logical content, in the same order.
func (o ObjectView) Equal(other ObjectView) bool {
	if len(o.attrs) != len(other.attrs) {
		return false
	}
	for i, a := range o.attrs {
		if !a.Equal(other.attrs[i]) {
			return false
		}
	}
	return true
}

// EqualObject reports whether the view and an owned object have the same
// attributes with the same logical content, in the same order.
func (o ObjectView) EqualObject(other *Object) bool {
	return other.EqualView(o)
}

// ToOwned deep copies every referenced span into an Object which shares
// nothing with the parsed buffer.
func (o ObjectView) ToOwned() *Object {
	attrs := make([]Attribute, len(o.attrs))
	for i, a := range o.attrs {
		attrs[i] = a.ToOwned()
	}
	return &Object{attrs: attrs}
}

// Write renders the object as canonical RPSL text followed by the
// terminating blank line.
func (o ObjectView) Write(w io.Writer) (bytesWritten int64, err error) {
	var n int64
	for _, a := range o.attrs {
		n, err = writeAttribute(w, a.Name(), a.Value())
		bytesWritten += n
		if err != nil {
			return
		}
	}
	m, err := io.WriteString(w, "\n")
	bytesWritten += int64(m)
	return
}

func (o ObjectView) String() string {
	sb := &strings.Builder{}
	if _, err := o.Write(sb); err != nil {
		panic(err)
	}
	return sb.String()
}
