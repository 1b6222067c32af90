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
	"testing"

	"github.com/stretchr/testify/assert"
)

const arinResponse = "% This query was served by whois.arin.net\n" +
	"\n" +
	"ASNumber:       32934\n" +
	"ASName:         FACEBOOK\n" +
	"ASHandle:       AS32934\n" +
	"RegDate:        2004-08-24\n" +
	"\n" +
	"OrgName:        Facebook, Inc.\n" +
	"OrgId:          THEFA-3\n" +
	"\n" +
	"% Terms of use apply.\n"

func TestParseWhoisResponse(t *testing.T) {
	assert := assert.New(t)

	objects, err := ParseWhoisResponse(arinResponse)
	assert.NoError(err)
	assert.Len(objects, 2)

	first := objects[0].Attribute(0)
	assert.Equal("ASNumber", first.Name())
	text, ok := first.Value().Text()
	assert.True(ok)
	assert.Equal("32934", text)
	assert.Equal(4, objects[0].Len())

	assert.Equal("OrgName", objects[1].Attribute(0).Name())
	assert.Equal(2, objects[1].Len())
}

func TestParseWhoisResponseBoundaries(t *testing.T) {
	tests := []struct {
		name string
		data string
		want int
	}{
		{"empty input", "", 0},
		{"blank lines only", "\n\n   \n", 0},
		{"comments only", "% banner\n% banner\n", 0},
		{"comments and blanks", "% banner\n\n   \n# note\n", 0},
		{"single object", "role: ACME\n", 1},
		{"single object trailing blanks", "role: ACME\n\n\n\n", 1},
		{"many blank separators", "role: ACME\n\n\n\nrole: Umbrella\n", 2},
		{"banner between objects", "role: ACME\n\n% served from cache\n\nrole: Umbrella\n", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)
			objects, err := ParseWhoisResponse(tt.data)
			assert.NoError(err)
			assert.Len(objects, tt.want)
		})
	}
}

func TestParseWhoisResponseViewsShareBuffer(t *testing.T) {
	assert := assert.New(t)

	objects, err := ParseWhoisResponse(arinResponse)
	assert.NoError(err)

	// No per object buffer copies: every view references the response text.
	for _, o := range objects {
		assert.Equal(arinResponse, o.src)
	}
}

func TestParseWhoisResponseError(t *testing.T) {
	assert := assert.New(t)
	data := "role: ACME\n" +
		"\n" +
		"not an attribute\n"

	_, err := ParseWhoisResponse(data)
	assert.ErrorIs(err, ErrInvalidAttributeName)

	var respErr *ResponseError
	assert.ErrorAs(err, &respErr)
	assert.Equal(1, respErr.Object())
	assert.Equal(12, respErr.Offset())

	var parseErr *ParseError
	assert.ErrorAs(err, &parseErr)
	assert.Equal(3, parseErr.Line())
}

func TestParseWhoisResponseLenient(t *testing.T) {
	assert := assert.New(t)
	data := "role: ACME\n" +
		"\n" +
		"garbage here\n" +
		"\n" +
		"source: RIPE\n"

	p := NewParser(WithSyntaxErrorPolicy(ErrWarn))
	objects, validation, err := p.ParseWhoisResponse(data)
	assert.NoError(err)
	assert.Len(objects, 2)
	assert.Len(*validation, 1)
}

func TestParseWhoisResponseOwned(t *testing.T) {
	assert := assert.New(t)

	owned, err := ParseWhoisResponseOwned(arinResponse)
	assert.NoError(err)
	views, err := ParseWhoisResponse(arinResponse)
	assert.NoError(err)

	assert.Len(owned, len(views))
	for i := range owned {
		assert.True(owned[i].EqualView(views[i]))
	}
}
