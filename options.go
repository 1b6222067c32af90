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

type options struct {
	errSyntax ErrorPolicy // How to handle unparseable lines
}

// ErrorPolicy describes how to handle syntax errors in RPSL input.
type ErrorPolicy int8

const (
	ErrIgnore ErrorPolicy = 0 // Skip the offending line.
	ErrWarn   ErrorPolicy = 1 // Skip the offending line, but record a validation error.
	ErrFail   ErrorPolicy = 2 // Fail on the offending line.
)

// Option configures a Parser.
type Option interface {
	apply(*options)
}

// funcOption wraps a function that modifies options into an
// implementation of the Option interface.
type funcOption struct {
	f func(*options)
}

func (fo *funcOption) apply(po *options) {
	fo.f(po)
}

func newFuncOption(f func(*options)) *funcOption {
	return &funcOption{
		f: f,
	}
}

func defaultOptions() options {
	return options{
		errSyntax: ErrFail,
	}
}

func newOptions(opts ...Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}
	return &o
}

// WithSyntaxErrorPolicy sets the policy for handling lines which can not be
// parsed: an invalid attribute name or a continuation line with no attribute
// to continue.
// defaults to ErrFail
func WithSyntaxErrorPolicy(policy ErrorPolicy) Option {
	return newFuncOption(func(o *options) {
		o.errSyntax = policy
	})
}
