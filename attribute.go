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
	"fmt"
	"io"
	"strings"
)

// nameColumn is the column values start at in canonical rendering.
const nameColumn = 16

// valueLines is the read surface shared by Value and ValueView. Equality and
// rendering are defined on it, so they work across the owned and view forms.
type valueLines interface {
	// Len returns the number of physical lines the value occupies.
	Len() int
	// Line returns the trimmed text contributed by the i-th physical line.
	// ok is false for a line that is empty after trimming.
	// Line panics if i is out of range.
	Line(i int) (text string, ok bool)
}

// optText is the owned value of one physical line. A line that is empty
// after trimming has ok set to false.
type optText struct {
	text string
	ok   bool
}

func optFrom(s string) optText {
	s = strings.TrimSpace(s)
	if s == "" {
		return optText{}
	}
	return optText{text: s, ok: true}
}

// Value holds the value of an attribute with independent storage.
// A value occupying exactly one physical line is a single line value;
// a value with continuation lines holds one entry per physical line.
type Value struct {
	first optText
	rest  []optText // continuation lines, nil for a single line value
}

// NewValue creates a Value from one string per physical line. Each string is
// trimmed; a string that is empty after trimming becomes an absent line.
// Called with no arguments it returns an absent single line value.
func NewValue(lines ...string) Value {
	if len(lines) == 0 {
		return Value{}
	}
	v := Value{first: optFrom(lines[0])}
	if len(lines) > 1 {
		v.rest = make([]optText, len(lines)-1)
		for i, l := range lines[1:] {
			v.rest[i] = optFrom(l)
		}
	}
	return v
}

// Len returns the number of physical lines the value occupies.
func (v Value) Len() int {
	return 1 + len(v.rest)
}

// IsMultiline reports whether the value spans more than one physical line.
func (v Value) IsMultiline() bool {
	return len(v.rest) > 0
}

// Line returns the trimmed text of the i-th physical line. ok is false for
// an absent line. Line panics if i is out of range.
func (v Value) Line(i int) (text string, ok bool) {
	if i == 0 {
		return v.first.text, v.first.ok
	}
	l := v.rest[i-1]
	return l.text, l.ok
}

// Text returns the text of a single line value. ok is false if the value is
// absent or spans multiple lines.
func (v Value) Text() (text string, ok bool) {
	if v.IsMultiline() {
		return "", false
	}
	return v.first.text, v.first.ok
}

// WithContent returns the text of the lines that are not absent.
func (v Value) WithContent() []string {
	return withContent(v)
}

// Equal reports whether two values have the same logical content.
func (v Value) Equal(other Value) bool {
	return valueEqual(v, other)
}

// EqualView reports whether the value and a view have the same logical content.
func (v Value) EqualView(other ValueView) bool {
	return valueEqual(v, other)
}

// Attribute is a name value pair of an Object, with independent storage.
type Attribute struct {
	Name  string
	Value Value
}

// Equal reports whether two attributes have the same name and value content.
func (a Attribute) Equal(other Attribute) bool {
	return a.Name == other.Name && valueEqual(a.Value, other.Value)
}

// EqualView reports whether the attribute and a view have the same name and
// value content.
func (a Attribute) EqualView(other AttributeView) bool {
	return a.Name == other.Name() && valueEqual(a.Value, other.Value())
}

// String renders the attribute as canonical RPSL text.
func (a Attribute) String() string {
	sb := &strings.Builder{}
	if _, err := writeAttribute(sb, a.Name, a.Value); err != nil {
		panic(err)
	}
	return sb.String()
}

func valueEqual(a, b valueLines) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		at, aok := a.Line(i)
		bt, bok := b.Line(i)
		if aok != bok || at != bt {
			return false
		}
	}
	return true
}

func withContent(v valueLines) []string {
	var result []string
	for i := 0; i < v.Len(); i++ {
		if text, ok := v.Line(i); ok {
			result = append(result, text)
		}
	}
	return result
}

// writeAttribute renders one attribute as canonical RPSL: the name and colon
// padded to the value column, continuation lines indented to the same column.
// An absent continuation value is rendered as the bare continuation marker
// '+' so that it survives a round trip instead of reading as a blank line,
// and a continuation whose text starts with '%' or '#' keeps the '+' marker
// so that it does not read back as a comment line.
func writeAttribute(w io.Writer, name string, v valueLines) (bytesWritten int64, err error) {
	var n int
	if first, ok := v.Line(0); ok {
		n, err = fmt.Fprintf(w, "%-*s%s\n", nameColumn, name+":", first)
	} else {
		n, err = fmt.Fprintf(w, "%s:\n", name)
	}
	bytesWritten += int64(n)
	if err != nil {
		return
	}
	for i := 1; i < v.Len(); i++ {
		switch text, ok := v.Line(i); {
		case !ok:
			n, err = fmt.Fprintln(w, "+")
		case text[0] == '%' || text[0] == '#':
			n, err = fmt.Fprintf(w, "+%*s%s\n", nameColumn-1, "", text)
		default:
			n, err = fmt.Fprintf(w, "%*s%s\n", nameColumn, "", text)
		}
		bytesWritten += int64(n)
		if err != nil {
			return
		}
	}
	return
}

// validateName checks that name is a non-empty run of letters, digits and
// hyphens. Names are kept byte for byte; no case folding is applied.
func validateName(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("gorpsl: %w: name is empty", ErrInvalidAttributeName)
	}
	for i := 0; i < len(name); i++ {
		if !isNameChar(name[i]) {
			return fmt.Errorf("gorpsl: %w: %q", ErrInvalidAttributeName, name)
		}
	}
	return nil
}
