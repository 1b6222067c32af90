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

import "errors"

// ParseWhoisResponse parses every object contained in a whois server
// response. Objects are separated by one or more blank lines; comment banner
// lines before, between or after objects are skipped. A response with no
// objects yields an empty slice, not an error. If an embedded object fails to
// parse the whole call fails with a ResponseError carrying the position of
// the failing object; callers wanting best effort extraction must
// pre-segment the buffer and parse each segment individually.
func ParseWhoisResponse(src string) ([]ObjectView, error) {
	objects, _, err := defaultParser.ParseWhoisResponse(src)
	return objects, err
}

// ParseWhoisResponseOwned parses every object with the same grammar as
// ParseWhoisResponse and returns them with independent storage.
func ParseWhoisResponseOwned(src string) ([]*Object, error) {
	views, err := ParseWhoisResponse(src)
	if err != nil {
		return nil, err
	}
	objects := make([]*Object, len(views))
	for i, v := range views {
		objects[i] = v.ToOwned()
	}
	return objects, nil
}

// ParseWhoisResponse parses every object contained in a whois server
// response. The returned views all reference src; no per object copies are
// made.
func (p *Parser) ParseWhoisResponse(src string) ([]ObjectView, *Validation, error) {
	validation := &Validation{}
	sc := newScanner(src)
	var objects []ObjectView
	for {
		ln, ok := sc.peek()
		if !ok {
			return objects, validation, nil
		}
		switch ln.kind {
		case lineBlank, lineComment:
			sc.next()
		default:
			obj, err := p.parseObject(sc, validation)
			if err != nil {
				// Under a lenient policy an object may dissolve entirely
				// into skipped lines. That is not a failure of the response.
				if p.opts.errSyntax != ErrFail && errors.Is(err, ErrEmptyObject) {
					continue
				}
				return nil, validation, newResponseError(len(objects), ln.offset, err)
			}
			objects = append(objects, obj)
		}
	}
}
