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

import "strings"

// span is a byte range into the source buffer.
type span struct {
	start int
	end   int
}

// noValue marks an absent value, i.e. a line position whose text is empty
// after trimming.
var noValue = span{-1, -1}

func (s span) isAbsent() bool {
	return s.start < 0
}

func (s span) in(src string) string {
	return src[s.start:s.end]
}

type lineKind int8

const (
	lineBlank        lineKind = iota // empty or all-whitespace
	lineComment                      // first non-whitespace byte is '%' or '#'
	lineAttrStart                    // attribute name immediately followed by ':'
	lineContinuation                 // starts with space, tab or '+'
	lineInvalid                      // none of the above
)

// line is one classified physical line of input.
type line struct {
	kind   lineKind
	number int  // one based line number
	offset int  // byte offset of the start of the line
	end    int  // byte offset past the last byte of the line, line ending excluded
	name   span // attribute name, set for lineAttrStart
	value  span // trimmed value text, set for lineAttrStart and lineContinuation
}

// scanner lazily classifies the physical lines of an input buffer. It never
// copies line text; classified lines carry byte ranges into the buffer.
type scanner struct {
	src     string
	pos     int
	number  int
	peeked  line
	hasPeek bool
}

func newScanner(src string) *scanner {
	return &scanner{src: src}
}

// next returns the next classified line. ok is false when input is exhausted.
func (s *scanner) next() (ln line, ok bool) {
	if s.hasPeek {
		s.hasPeek = false
		return s.peeked, true
	}
	return s.scan()
}

// peek returns the line a call to next would return, without consuming it.
func (s *scanner) peek() (ln line, ok bool) {
	if !s.hasPeek {
		s.peeked, ok = s.scan()
		if !ok {
			return line{}, false
		}
		s.hasPeek = true
	}
	return s.peeked, true
}

func (s *scanner) scan() (ln line, ok bool) {
	if s.pos >= len(s.src) {
		return line{}, false
	}
	start := s.pos
	end := strings.IndexByte(s.src[s.pos:], '\n')
	if end < 0 {
		end = len(s.src)
		s.pos = end
	} else {
		end += start
		s.pos = end + 1
	}
	if end > start && s.src[end-1] == '\r' {
		end--
	}
	s.number++

	ln = line{number: s.number, offset: start, end: end, name: noValue, value: noValue}
	s.classify(&ln, start, end)
	return ln, true
}

func (s *scanner) classify(ln *line, start, end int) {
	i := start
	for i < end && (s.src[i] == ' ' || s.src[i] == '\t') {
		i++
	}
	if i == end {
		ln.kind = lineBlank
		return
	}
	if s.src[i] == '%' || s.src[i] == '#' {
		ln.kind = lineComment
		return
	}
	if i > start {
		ln.kind = lineContinuation
		ln.value = trimSpan(s.src, i, end)
		return
	}
	if s.src[start] == '+' {
		ln.kind = lineContinuation
		ln.value = trimSpan(s.src, start+1, end)
		return
	}

	j := start
	for j < end && isNameChar(s.src[j]) {
		j++
	}
	if j == start || j == end || s.src[j] != ':' {
		ln.kind = lineInvalid
		return
	}
	ln.kind = lineAttrStart
	ln.name = span{start, j}
	ln.value = trimSpan(s.src, j+1, end)
}

// trimSpan narrows [start, end) to exclude leading and trailing whitespace.
// An empty result is reported as noValue.
func trimSpan(src string, start, end int) span {
	for start < end && isSpace(src[start]) {
		start++
	}
	for end > start && isSpace(src[end-1]) {
		end--
	}
	if start == end {
		return noValue
	}
	return span{start, end}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

// isNameChar reports whether c may appear in an attribute name:
// letters, digits and hyphen.
func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-'
}
