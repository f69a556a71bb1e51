// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
)

// fold returns the case-folded form of s, for caseless comparison.
func fold(s string) string {
	return cases.Fold().String(s)
}

// RadioValues is the set of keywords a radio value can take,
// in declaration order, and the default among them.
type RadioValues struct {
	Default string
	Options []string
}

// ParseRadioValues parses a specification such as "{bottom}|top|zero",
// in which the option wrapped in braces is the default. Without braces
// the first option is the default.
func ParseRadioValues(spec string) RadioValues {
	rv := RadioValues{}
	if spec == "" {
		return rv
	}
	for _, t := range strings.Split(spec, "|") {
		if len(t) > 2 && strings.HasPrefix(t, "{") && strings.HasSuffix(t, "}") {
			t = t[1 : len(t)-1]
			rv.Default = t
		}
		rv.Options = append(rv.Options, t)
	}
	if rv.Default == "" {
		rv.Default = rv.Options[0]
	}
	return rv
}

// Len returns the number of options.
func (rv RadioValues) Len() int {
	return len(rv.Options)
}

// Match resolves val against the options, case-insensitively.
// An exact match wins; otherwise val must be a prefix of exactly
// one option. It returns the matching option, and false when val
// matches no option or is a prefix of more than one.
func (rv RadioValues) Match(val string) (string, bool) {
	fv := fold(val)
	first := ""
	n := 0
	for _, o := range rv.Options {
		fo := fold(o)
		if !strings.HasPrefix(fo, fv) {
			continue
		}
		if len(fo) == len(fv) {
			return o, true
		}
		if n == 0 {
			first = o
		}
		n++
	}
	return first, n == 1
}

// Contains returns whether val resolves to an option with [RadioValues.Match].
func (rv RadioValues) Contains(val string) bool {
	_, ok := rv.Match(val)
	return ok
}

// Validate resolves val with [RadioValues.Match], returning an error
// naming the options when it does not resolve to exactly one.
func (rv RadioValues) Validate(val string) (string, error) {
	m, ok := rv.Match(val)
	if ok {
		return m, nil
	}
	if m != "" {
		return "", fmt.Errorf("%w %q, expected one of %s", ErrAmbiguousValue, val, rv.ValuesString())
	}
	return "", fmt.Errorf("%w %q, expected one of %s", ErrInvalidValue, val, rv.ValuesString())
}

// String returns the specification form, such as "{bottom}|top|zero".
func (rv RadioValues) String() string {
	sb := &strings.Builder{}
	for i, o := range rv.Options {
		if i > 0 {
			sb.WriteByte('|')
		}
		if o == rv.Default {
			sb.WriteString("{" + o + "}")
		} else {
			sb.WriteString(o)
		}
	}
	return sb.String()
}

// ValuesString returns the options for display, such as
// "[ {bottom} | top | zero ]".
func (rv RadioValues) ValuesString() string {
	return "[ " + strings.ReplaceAll(rv.String(), "|", " | ") + " ]"
}

// warnAbbreviated logs the use of an abbreviated keyword.
func warnAbbreviated(prop, val, match string) {
	slog.Warn("set: allowing abbreviated property value", "property", prop, "value", val, "match", match)
}

// RadioValue is a [Value] that holds one keyword of a [RadioValues] set.
type RadioValue struct {
	name    string
	values  RadioValues
	current string
}

// NewRadio returns a radio value with the options of the given
// specification (see [ParseRadioValues]), set to its default.
func NewRadio(spec string) *RadioValue {
	rv := ParseRadioValues(spec)
	return &RadioValue{values: rv, current: rv.Default}
}

func (v *RadioValue) setName(name string) { v.name = name }

func (v *RadioValue) Kind() Kind { return KindRadio }

func (v *RadioValue) Get() any { return v.current }

// Current returns the current keyword.
func (v *RadioValue) Current() string { return v.current }

// Is returns whether the current keyword is s, case-insensitively.
func (v *RadioValue) Is(s string) bool { return fold(v.current) == fold(s) }

// Values returns the option set.
func (v *RadioValue) Values() RadioValues { return v.values }

func (v *RadioValue) Set(val any) (bool, error) {
	s, ok := val.(string)
	if !ok {
		return false, fmt.Errorf("%w: expected a string, got %T", ErrInvalidValue, val)
	}
	m, err := v.values.Validate(s)
	if err != nil {
		return false, err
	}
	if len(m) != len(s) {
		warnAbbreviated(v.name, s, m)
	}
	if m == v.current {
		return false, nil
	}
	v.current = m
	return true, nil
}

func (v *RadioValue) Clone() Value {
	c := *v
	c.values.Options = append([]string(nil), v.values.Options...)
	return &c
}

// BoolValue is a [Value] holding "on" or "off". It accepts Go bools
// as well as the keywords.
type BoolValue struct {
	RadioValue
}

// NewBool returns a new boolean value with the given default.
func NewBool(on bool) *BoolValue {
	spec := "on|{off}"
	if on {
		spec = "{on}|off"
	}
	return &BoolValue{RadioValue: *NewRadio(spec)}
}

func (v *BoolValue) Kind() Kind { return KindBool }

// IsOn returns whether the value is "on".
func (v *BoolValue) IsOn() bool { return v.current == "on" }

func (v *BoolValue) Set(val any) (bool, error) {
	if b, ok := val.(bool); ok {
		val = "off"
		if b {
			val = "on"
		}
	}
	return v.RadioValue.Set(val)
}

func (v *BoolValue) Clone() Value {
	return &BoolValue{RadioValue: *v.RadioValue.Clone().(*RadioValue)}
}
