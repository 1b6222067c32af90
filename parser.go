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
	log "github.com/sirupsen/logrus"
)

// Parser parses RPSL text according to its configured options.
type Parser struct {
	opts *options
}

func NewParser(opts ...Option) *Parser {
	return &Parser{opts: newOptions(opts...)}
}

var defaultParser = NewParser()

// ParseObject parses exactly one object from src and returns a view
// referencing it. Trailing content beyond the terminating blank line is not
// inspected. A blank line or end of input before the first attribute is
// ErrEmptyObject; completely empty input is ErrUnexpectedEOF.
func ParseObject(src string) (ObjectView, error) {
	obj, _, err := defaultParser.ParseObject(src)
	return obj, err
}

// ParseObjectOwned parses exactly one object with the same grammar as
// ParseObject and returns it with independent storage.
func ParseObjectOwned(src string) (*Object, error) {
	obj, err := ParseObject(src)
	if err != nil {
		return nil, err
	}
	return obj.ToOwned(), nil
}

// ParseObject parses exactly one object from src. Lines skipped under a
// lenient syntax error policy are recorded in the returned Validation.
func (p *Parser) ParseObject(src string) (ObjectView, *Validation, error) {
	validation := &Validation{}
	obj, err := p.parseObject(newScanner(src), validation)
	return obj, validation, err
}

// parseObject assembles attributes until a blank line, which is consumed, or
// end of input. Comment lines are transparent throughout: they neither start
// nor continue an attribute and never terminate an object.
func (p *Parser) parseObject(sc *scanner, validation *Validation) (ObjectView, error) {
	var attrs []AttributeView
	for {
		ln, ok := sc.peek()
		if !ok {
			if len(attrs) == 0 {
				pos := &position{lineNumber: sc.number, offset: sc.pos}
				if sc.number == 0 {
					return ObjectView{}, newParseError(ErrUnexpectedEOF, pos)
				}
				return ObjectView{}, newParseError(ErrEmptyObject, pos)
			}
			return ObjectView{src: sc.src, attrs: attrs}, nil
		}
		switch ln.kind {
		case lineComment:
			sc.next()
		case lineBlank:
			sc.next()
			if len(attrs) == 0 {
				return ObjectView{}, newParseError(ErrEmptyObject, linePos(ln))
			}
			return ObjectView{src: sc.src, attrs: attrs}, nil
		case lineAttrStart:
			attrs = append(attrs, p.parseAttribute(sc))
		case lineContinuation:
			err := newParseError(ErrContinuationWithoutAttribute, linePos(ln))
			if e := p.handleSyntaxError(err, validation); e != nil {
				return ObjectView{}, e
			}
			sc.next()
		default: // lineInvalid
			err := newParseErrorf(ErrInvalidAttributeName, linePos(ln), "in %q", sc.src[ln.offset:ln.end])
			if e := p.handleSyntaxError(err, validation); e != nil {
				return ObjectView{}, e
			}
			sc.next()
		}
	}
}

// parseAttribute consumes one attribute start line and every continuation
// line that follows it. Comment lines in between are skipped, not consumed
// as continuations. A whitespace-only line still carries a continuation
// marker and contributes an absent value; only a truly empty line terminates
// the attribute. No value bytes are copied.
func (p *Parser) parseAttribute(sc *scanner) AttributeView {
	start, _ := sc.next()
	attr := AttributeView{src: sc.src, name: start.name, first: start.value}
	for {
		ln, ok := sc.peek()
		if !ok {
			return attr
		}
		switch ln.kind {
		case lineComment:
			sc.next()
		case lineContinuation:
			sc.next()
			attr.rest = append(attr.rest, ln.value)
		case lineBlank:
			if ln.end == ln.offset {
				return attr
			}
			sc.next()
			attr.rest = append(attr.rest, noValue)
		default:
			return attr
		}
	}
}

func (p *Parser) handleSyntaxError(err *ParseError, validation *Validation) error {
	switch p.opts.errSyntax {
	case ErrIgnore:
		log.Debugf("gorpsl: skipping line %d: %v", err.Line(), err)
	case ErrWarn:
		log.Debugf("gorpsl: skipping line %d: %v", err.Line(), err)
		validation.AddError(err)
	default:
		return err
	}
	return nil
}

func linePos(ln line) *position {
	return &position{lineNumber: ln.number, offset: ln.offset}
}
