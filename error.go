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
	"errors"
	"fmt"
)

// The error kinds reported for malformed input. Use errors.Is to match them
// against errors returned from the parse functions.
var (
	ErrInvalidAttributeName         = errors.New("invalid attribute name")
	ErrContinuationWithoutAttribute = errors.New("continuation line without a preceding attribute")
	ErrEmptyObject                  = errors.New("object contains no attributes")
	ErrUnexpectedEOF                = errors.New("unexpected end of input")
)

// ParseError is used for syntactical errors in RPSL input. It wraps one of
// the error kinds above and carries the position of the offending line.
type ParseError struct {
	kind   error
	msg    string
	line   int
	offset int
}

func newParseError(kind error, pos *position) *ParseError {
	return &ParseError{kind: kind, line: pos.lineNumber, offset: pos.offset}
}

func newParseErrorf(kind error, pos *position, msg string, param ...interface{}) *ParseError {
	return &ParseError{kind: kind, msg: fmt.Sprintf(msg, param...), line: pos.lineNumber, offset: pos.offset}
}

func (e *ParseError) Error() string {
	if e.msg != "" {
		return fmt.Sprintf("gorpsl: %v: %s at line %d", e.kind, e.msg, e.line)
	}
	return fmt.Sprintf("gorpsl: %v at line %d", e.kind, e.line)
}

func (e *ParseError) Unwrap() error {
	return e.kind
}

// Line returns the one based line number the error occurred at.
func (e *ParseError) Line() int {
	return e.line
}

// Offset returns the byte offset of the line the error occurred at.
func (e *ParseError) Offset() int {
	return e.offset
}

// ResponseError is used when an object embedded in a whois response fails to
// parse. It carries the index and byte offset of the failing object and wraps
// the underlying ParseError.
type ResponseError struct {
	object  int
	offset  int
	wrapped error
}

func newResponseError(object int, offset int, wrapped error) *ResponseError {
	return &ResponseError{object: object, offset: offset, wrapped: wrapped}
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("gorpsl: object %d at offset %d: %v", e.object, e.offset, e.wrapped)
}

func (e *ResponseError) Unwrap() error {
	return e.wrapped
}

// Object returns the zero based index of the failing object.
func (e *ResponseError) Object() int {
	return e.object
}

// Offset returns the byte offset the failing object starts at.
func (e *ResponseError) Offset() int {
	return e.offset
}
