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

// Object is one RPSL object with independent storage: an ordered sequence of
// attributes in input order. Repeated names are kept as separate attributes.
type Object struct {
	attrs []Attribute
}

// Len returns the number of attributes.
func (o *Object) Len() int {
	return len(o.attrs)
}

// Attribute returns the i-th attribute in input order.
// It panics if i is out of range.
func (o *Object) Attribute(i int) Attribute {
	return o.attrs[i]
}

// Attributes returns the attributes in input order.
func (o *Object) Attributes() []Attribute {
	return o.attrs
}

// Get returns the value of the first attribute with the given name.
// The name is matched byte for byte. If no attribute matches, ok is false.
func (o *Object) Get(name string) (value Value, ok bool) {
	for _, a := range o.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return Value{}, false
}

// GetAll returns the values of every attribute with the given name, in input order.
func (o *Object) GetAll(name string) []Value {
	var result []Value
	for _, a := range o.attrs {
		if a.Name == name {
			result = append(result, a.Value)
		}
	}
	return result
}

// Has reports whether the object has an attribute with the given name.
func (o *Object) Has(name string) bool {
	for _, a := range o.attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

// Equal reports whether two objects have the same attributes with the same
// logical content, in the same order.
func (o *Object) Equal(other *Object) bool {
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

// EqualView reports whether the object and a view have the same attributes
// with the same logical content, in the same order.
func (o *Object) EqualView(other ObjectView) bool {
	if len(o.attrs) != other.Len() {
		return false
	}
	for i, a := range o.attrs {
		if !a.EqualView(other.Attribute(i)) {
			return false
		}
	}
	return true
}

// Write renders the object as canonical RPSL text followed by the
// terminating blank line.
func (o *Object) Write(w io.Writer) (bytesWritten int64, err error) {
	var n int64
	for _, a := range o.attrs {
		n, err = writeAttribute(w, a.Name, a.Value)
		bytesWritten += n
		if err != nil {
			return
		}
	}
	m, err := io.WriteString(w, "\n")
	bytesWritten += int64(m)
	return
}

func (o *Object) String() string {
	sb := &strings.Builder{}
	if _, err := o.Write(sb); err != nil {
		panic(err)
	}
	return sb.String()
}

// ObjectBuilder constructs an Object directly from attribute names and
// values, bypassing the text grammar.
type ObjectBuilder struct {
	attrs []Attribute
	err   error
}

func NewObjectBuilder() *ObjectBuilder {
	return &ObjectBuilder{}
}

// AddAttribute appends an attribute. Each value string is one physical line;
// a single string makes a single line value, several strings make a multiline
// value. Values are trimmed and empty values become absent.
func (b *ObjectBuilder) AddAttribute(name string, values ...string) *ObjectBuilder {
	if b.err == nil {
		b.err = validateName(name)
	}
	b.attrs = append(b.attrs, Attribute{Name: name, Value: NewValue(values...)})
	return b
}

// Build returns the constructed object. It fails if any attribute name was
// invalid or if no attribute was added.
func (b *ObjectBuilder) Build() (*Object, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.attrs) == 0 {
		return nil, newParseError(ErrEmptyObject, &position{})
	}
	return &Object{attrs: b.attrs}, nil
}
