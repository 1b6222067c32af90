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

// Package segment splits whois response text on blank line runs, for callers
// that want to parse each object separately and tolerate individual failures.
package segment

import "strings"

// Segment is one blank line separated chunk of a response buffer.
type Segment struct {
	Offset int    // byte offset of the segment in the buffer
	Line   int    // one based line number the segment starts at
	Text   string // segment text including line endings, a sub-range of the buffer
}

// Split divides src into segments separated by runs of blank lines. Segment
// text is not copied. Blank lines are empty or all-whitespace; anything else,
// comment lines included, belongs to a segment.
func Split(src string) []Segment {
	var segments []Segment
	var pos, lineNumber int
	start := -1
	var startLine int

	for pos < len(src) {
		lineNumber++
		end := strings.IndexByte(src[pos:], '\n')
		var next int
		if end < 0 {
			end = len(src)
			next = end
		} else {
			end += pos
			next = end + 1
		}

		if isBlank(src[pos:end]) {
			if start >= 0 {
				segments = append(segments, Segment{Offset: start, Line: startLine, Text: src[start:pos]})
				start = -1
			}
		} else if start < 0 {
			start = pos
			startLine = lineNumber
		}
		pos = next
	}
	if start >= 0 {
		segments = append(segments, Segment{Offset: start, Line: startLine, Text: src[start:]})
	}
	return segments
}

func isBlank(line string) bool {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ', '\t', '\r':
		default:
			return false
		}
	}
	return true
}
