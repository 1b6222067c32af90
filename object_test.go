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

func TestObjectBuilder(t *testing.T) {
	assert := assert.New(t)

	obj, err := NewObjectBuilder().
		AddAttribute("role", "ACME Company").
		AddAttribute("address", "Packet Street 6", "128 Series of Tubes", "Internet").
		AddAttribute("source", "RIPE").
		Build()
	assert.NoError(err)

	assert.Equal(3, obj.Len())
	assert.Equal("role", obj.Attribute(0).Name)
	assert.True(obj.Attribute(1).Value.IsMultiline())
	assert.Equal(3, obj.Attribute(1).Value.Len())
	assert.Equal([]string{"Packet Street 6", "128 Series of Tubes", "Internet"},
		obj.Attribute(1).Value.WithContent())
}

func TestObjectBuilderErrors(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (*Object, error)
		wantErr error
	}{
		{
			"no attributes",
			func() (*Object, error) { return NewObjectBuilder().Build() },
			ErrEmptyObject,
		},
		{
			"empty name",
			func() (*Object, error) { return NewObjectBuilder().AddAttribute("", "x").Build() },
			ErrInvalidAttributeName,
		},
		{
			"whitespace in name",
			func() (*Object, error) { return NewObjectBuilder().AddAttribute("bad name", "x").Build() },
			ErrInvalidAttributeName,
		},
		{
			"colon in name",
			func() (*Object, error) { return NewObjectBuilder().AddAttribute("name:", "x").Build() },
			ErrInvalidAttributeName,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)
			_, err := tt.build()
			assert.ErrorIs(err, tt.wantErr)
		})
	}
}

func TestObjectRendering(t *testing.T) {
	assert := assert.New(t)

	obj, err := NewObjectBuilder().
		AddAttribute("role", "ACME Company").
		AddAttribute("remarks", "Locations", "LA1 - CoreSite One Wilshire", "", "NY1 - Equinix New York").
		AddAttribute("remarks", "").
		AddAttribute("source", "RIPE").
		Build()
	assert.NoError(err)

	want := "role:           ACME Company\n" +
		"remarks:        Locations\n" +
		"                LA1 - CoreSite One Wilshire\n" +
		"+\n" +
		"                NY1 - Equinix New York\n" +
		"remarks:\n" +
		"source:         RIPE\n" +
		"\n"
	assert.Equal(want, obj.String())
}

func TestObjectRenderingCommentMarkerValues(t *testing.T) {
	assert := assert.New(t)

	obj, err := NewObjectBuilder().
		AddAttribute("remarks", "one", "% two", "# three").
		Build()
	assert.NoError(err)

	// Continuation text starting with a comment marker keeps the '+' marker,
	// otherwise the indented line would read back as a comment.
	want := "remarks:        one\n" +
		"+               % two\n" +
		"+               # three\n" +
		"\n"
	assert.Equal(want, obj.String())

	reparsed, err := ParseObjectOwned(obj.String())
	assert.NoError(err)
	assert.True(obj.Equal(reparsed))
}

func TestObjectRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *ObjectBuilder) *ObjectBuilder
	}{
		{
			"single line attributes",
			func(b *ObjectBuilder) *ObjectBuilder {
				return b.AddAttribute("role", "ACME Company").AddAttribute("source", "RIPE")
			},
		},
		{
			"multiline attribute",
			func(b *ObjectBuilder) *ObjectBuilder {
				return b.AddAttribute("remarks", "one", "two", "three")
			},
		},
		{
			"absent values",
			func(b *ObjectBuilder) *ObjectBuilder {
				return b.AddAttribute("remarks", "").AddAttribute("remarks", "one", "", "three")
			},
		},
		{
			"repeated names",
			func(b *ObjectBuilder) *ObjectBuilder {
				return b.AddAttribute("address", "Packet Street 6").AddAttribute("address", "Internet")
			},
		},
		{
			"continuation starting with a comment marker",
			func(b *ObjectBuilder) *ObjectBuilder {
				return b.AddAttribute("remarks", "one", "% two").AddAttribute("remarks", "# only")
			},
		},
		{
			"long name past the value column",
			func(b *ObjectBuilder) *ObjectBuilder {
				return b.AddAttribute("a-very-long-attribute-name", "value")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)
			obj, err := tt.build(NewObjectBuilder()).Build()
			assert.NoError(err)

			reparsed, err := ParseObjectOwned(obj.String())
			assert.NoError(err)
			assert.True(obj.Equal(reparsed))
		})
	}
}

func TestObjectGet(t *testing.T) {
	assert := assert.New(t)
	obj, err := NewObjectBuilder().
		AddAttribute("role", "ACME Company").
		AddAttribute("address", "Packet Street 6").
		AddAttribute("address", "Internet").
		Build()
	assert.NoError(err)

	v, ok := obj.Get("role")
	assert.True(ok)
	text, ok := v.Text()
	assert.True(ok)
	assert.Equal("ACME Company", text)

	_, ok = obj.Get("email")
	assert.False(ok)
	assert.False(obj.Has("email"))
	assert.True(obj.Has("address"))
	assert.Len(obj.GetAll("address"), 2)
	assert.Nil(obj.GetAll("email"))

	// Names match byte for byte; no case folding.
	assert.False(obj.Has("Role"))
}

func TestObjectEqual(t *testing.T) {
	assert := assert.New(t)

	build := func() *Object {
		obj, err := NewObjectBuilder().
			AddAttribute("role", "ACME Company").
			AddAttribute("remarks", "one", "two").
			Build()
		assert.NoError(err)
		return obj
	}

	a := build()
	b := build()
	assert.True(a.Equal(b))
	assert.True(b.Equal(a))

	differentOrder, err := NewObjectBuilder().
		AddAttribute("remarks", "one", "two").
		AddAttribute("role", "ACME Company").
		Build()
	assert.NoError(err)
	assert.False(a.Equal(differentOrder))

	differentValue, err := NewObjectBuilder().
		AddAttribute("role", "ACME Company").
		AddAttribute("remarks", "one", "2").
		Build()
	assert.NoError(err)
	assert.False(a.Equal(differentValue))
}

func TestValueAccessors(t *testing.T) {
	assert := assert.New(t)

	single := NewValue("from AS12 accept AS12")
	assert.False(single.IsMultiline())
	assert.Equal(1, single.Len())
	text, ok := single.Text()
	assert.True(ok)
	assert.Equal("from AS12 accept AS12", text)

	absent := NewValue("   ")
	_, ok = absent.Text()
	assert.False(ok)
	assert.Empty(absent.WithContent())

	multi := NewValue("I have lots", "  ", "to say.")
	assert.True(multi.IsMultiline())
	assert.Equal(3, multi.Len())
	_, ok = multi.Text()
	assert.False(ok)
	assert.Equal([]string{"I have lots", "to say."}, multi.WithContent())

	// A single element makes a single line value, never a one line multiline.
	one := NewValue("only")
	assert.False(one.IsMultiline())
}
