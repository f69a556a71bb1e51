// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objects

import (
	"math"
	"slices"

	"cogentcore.org/graphics/array"
	"cogentcore.org/graphics/base/errors"
	"cogentcore.org/graphics/handle"
	"cogentcore.org/graphics/props"
	"golang.org/x/text/cases"
)

// Flags are the schema flags of a property.
type Flags int64

const (
	// Hidden properties are left out of enumerations
	// that do not ask for all properties.
	Hidden Flags = 1 << iota

	// ReadOnly properties cannot be set by users.
	ReadOnly

	// Mode properties have a companion "<name>mode" radio property
	// that a successful user set switches to "manual".
	Mode

	// Limits properties take part in the automatic axis limits:
	// a change updates the limits of the axes.
	Limits

	// NoToolkit properties are never forwarded to the toolkit.
	NoToolkit
)

// Has returns whether all of the given flags are set.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// Spec is the schema entry of one property: its name, flags,
// and a function returning a new value holding the factory default.
type Spec struct {
	Name  string
	Flags Flags
	New   func() props.Value
}

// With returns the spec with the given flags added.
func (s Spec) With(f Flags) Spec {
	s.Flags |= f
	return s
}

func spec(name string, fn func() props.Value) Spec {
	return Spec{Name: name, New: fn}
}

func str(name, def string) Spec {
	return spec(name, func() props.Value { return props.NewString(def) })
}

func strArray(name, def string) Spec {
	return spec(name, func() props.Value { return props.NewStringArray(def, "|") })
}

func label(name string) Spec {
	return spec(name, func() props.Value { return props.NewTextLabel("") })
}

func radio(name, values string) Spec {
	return spec(name, func() props.Value { return props.NewRadio(values) })
}

func boolean(name string, on bool) Spec {
	return spec(name, func() props.Value { return props.NewBool(on) })
}

func double(name string, f float64) Spec {
	return spec(name, func() props.Value { return props.NewDouble(f) })
}

func doubleRadio(name string, f float64, values string) Spec {
	return spec(name, func() props.Value { return props.NewDoubleRadio(f, values) })
}

func color(name string, r, g, b float64, values string) Spec {
	return spec(name, func() props.Value { return props.NewColor(props.RGB{r, g, b}, values) })
}

func colorRadio(name, values string) Spec {
	return spec(name, func() props.Value { return props.NewColorRadio(values) })
}

// arr is an array property with a constant default. The default
// array is shared by every new value, which clone it.
func arr(name string, a *array.Array) Spec {
	return spec(name, func() props.Value { return props.NewArray(a) })
}

func zeros(rows, cols int) *array.Array {
	return array.New(array.Double, rows, cols)
}

func ones(rows, cols int) *array.Array {
	a := array.New(array.Double, rows, cols)
	for i := range a.Len() {
		a.Set(i, 1)
	}
	return a
}

func row(name string, vals ...float64) Spec {
	return spec(name, func() props.Value { return props.NewRowVector(vals...) })
}

var errLimitNaN = errors.New("limits must not be NaN")

// lim is a limit vector of two values, which may be infinite.
// Inverted and equal limits are fixed by the update hook.
func lim(name string) Spec {
	return spec(name, func() props.Value {
		return props.NewRowVector(0, 1).SetLength(2).SetCheck(func(a *array.Array) error {
			if math.IsNaN(a.At(0)) || math.IsNaN(a.At(1)) {
				return errLimitNaN
			}
			return nil
		})
	})
}

func hnd(name string) Spec {
	return spec(name, func() props.Value { return props.NewHandle(handle.Invalid, nil) })
}

func callback(name string, def any) Spec {
	return spec(name, func() props.Value { return props.NewCallback(def) })
}

func anyValue(name string, def any) Spec {
	return spec(name, func() props.Value { return props.NewAny(def) })
}

// Schema is the list of the static properties of a kind of object:
// the base properties shared by all kinds followed by the
// kind-specific ones.
type Schema struct {
	Kind  Kind
	Specs []Spec

	ids   []int
	index map[string]int
	names []string
}

var schemas [KindN]*Schema

// foldName returns the case-folded form of a property name.
func foldName(name string) string {
	return cases.Fold().String(name)
}

func newSchema(k Kind, specific []Spec) *Schema {
	base := baseSpecs()
	s := &Schema{Kind: k, index: map[string]int{}}
	s.Specs = append(base, specific...)
	for i, sp := range s.Specs {
		id := i
		if i >= len(base) {
			id = int(k)*1000 + i - len(base)
		}
		if sp.Flags.Has(NoToolkit) {
			id = -1
		}
		s.ids = append(s.ids, id)
		s.index[foldName(sp.Name)] = i
		s.names = append(s.names, sp.Name)
	}
	return s
}

// SchemaOf returns the schema of the given kind, or nil
// for [KindInvalid].
func SchemaOf(k Kind) *Schema {
	if k <= KindInvalid || k >= KindN {
		return nil
	}
	return schemas[k]
}

// Names returns the names of the properties in schema order,
// leaving out hidden ones unless all is set.
func (s *Schema) Names(all bool) []string {
	if all {
		return slices.Clone(s.names)
	}
	var names []string
	for _, sp := range s.Specs {
		if !sp.Flags.Has(Hidden) {
			names = append(names, sp.Name)
		}
	}
	return names
}

// Lookup returns the spec with exactly the given name,
// compared case-insensitively, and its toolkit id.
func (s *Schema) Lookup(name string) (Spec, int, bool) {
	i, ok := s.index[foldName(name)]
	if !ok {
		return Spec{}, -1, false
	}
	return s.Specs[i], s.ids[i], true
}

// Factory returns a new, ownerless property holding the factory
// default of the named property.
func (s *Schema) Factory(name string) (props.Property, bool) {
	sp, id, ok := s.Lookup(name)
	if !ok {
		return props.Property{}, false
	}
	return props.New(sp.Name, handle.Invalid, sp.New()).SetID(id).SetHidden(sp.Flags.Has(Hidden)), true
}

func init() {
	for k := KindRoot; k < KindN; k++ {
		schemas[k] = newSchema(k, kindSpecs(k))
	}
}
