// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objects

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/graphics/base/errors"
	"cogentcore.org/graphics/props"
)

// DefaultList holds default property values by object kind. The root,
// figures, axes and toolbars hold one, which applies to the objects
// created below them.
type DefaultList struct {
	kinds map[Kind][]Field
}

// Set sets the default of the named property for the kind.
func (dl *DefaultList) Set(k Kind, name string, v any) {
	if dl.kinds == nil {
		dl.kinds = map[Kind][]Field{}
	}
	fs := dl.kinds[k]
	if i := indexField(fs, name); i >= 0 {
		fs[i].Value = v
		return
	}
	dl.kinds[k] = append(fs, Field{Name: name, Value: v})
}

// Get returns the default of the named property for the kind.
func (dl *DefaultList) Get(k Kind, name string) (any, bool) {
	fs := dl.kinds[k]
	if i := indexField(fs, name); i >= 0 {
		return fs[i].Value, true
	}
	return nil, false
}

// Delete removes the default of the named property for the kind.
func (dl *DefaultList) Delete(k Kind, name string) bool {
	fs := dl.kinds[k]
	i := indexField(fs, name)
	if i < 0 {
		return false
	}
	dl.kinds[k] = slices.Delete(fs, i, i+1)
	return true
}

// Of returns the defaults for the kind, in the order set.
func (dl *DefaultList) Of(k Kind) []Field {
	return slices.Clone(dl.kinds[k])
}

// Len returns the total number of defaults.
func (dl *DefaultList) Len() int {
	n := 0
	for _, fs := range dl.kinds {
		n += len(fs)
	}
	return n
}

func indexField(fs []Field, name string) int {
	return slices.IndexFunc(fs, func(f Field) bool { return strings.EqualFold(f.Name, name) })
}

// parseDefaultName splits names of the forms "<prefix><type><prop>"
// and "<prefix>.<type>.<prop>", such as "defaultlinecolor".
func parseDefaultName(name, prefix string) (Kind, string, bool) {
	lname := strings.ToLower(name)
	rest, ok := strings.CutPrefix(lname, prefix)
	if !ok || rest == "" {
		return KindInvalid, "", false
	}
	if r, dotted := strings.CutPrefix(rest, "."); dotted {
		typ, prop, ok := strings.Cut(r, ".")
		if !ok || prop == "" {
			return KindInvalid, "", false
		}
		k, ok := KindFromName(typ)
		return k, prop, ok
	}
	return splitTypePrefix(rest)
}

// resolveDefault resolves the property part of a default name
// against the properties of the kind.
func resolveDefault(k Kind, prop string) (string, error) {
	return props.MatchName(prop, k.String(), SchemaOf(k).Names(true))
}

// factoryValue returns the factory default of the named property.
func factoryValue(k Kind, name string) (any, bool) {
	sc := SchemaOf(k)
	if sc == nil {
		return nil, false
	}
	p, ok := sc.Factory(name)
	if !ok {
		return nil, false
	}
	defer p.Release()
	return p.Get(), true
}

// FactoryDefaults returns the factory default of every property of
// every kind, keyed "factory<type><prop>".
func FactoryDefaults() []Field {
	var fs []Field
	for k := KindRoot; k < KindN; k++ {
		for _, sp := range SchemaOf(k).Specs {
			fs = append(fs, Field{Name: "factory" + k.String() + sp.Name, Value: sp.New().Get()})
		}
	}
	return fs
}

// defaultValue returns the default of the named property for objects
// of kind k created below o: the closest default set on o or one of
// its ancestors, or else the factory default.
func (o *Object) defaultValue(k Kind, name string) (any, bool) {
	for cur := o; cur.IsValid(); cur = cur.ParentObject() {
		if cur.defaults == nil {
			continue
		}
		if v, ok := cur.defaults.Get(k, name); ok {
			return v, true
		}
	}
	return factoryValue(k, name)
}

// Defaults returns the defaults held by the object, keyed
// "default<type><prop>".
func (o *Object) Defaults() []Field {
	if !o.IsValid() || o.defaults == nil {
		return nil
	}
	var fs []Field
	for k := KindRoot; k < KindN; k++ {
		for _, f := range o.defaults.Of(k) {
			fs = append(fs, Field{Name: "default" + k.String() + f.Name, Value: f.Value})
		}
	}
	return fs
}

// getDefaults handles the default and factory names for [Object.Get].
func (o *Object) getDefaults(name string) (any, bool, error) {
	switch strings.ToLower(name) {
	case "default":
		return o.Defaults(), true, nil
	case "factory":
		return FactoryDefaults(), true, nil
	}
	if k, prop, ok := parseDefaultName(name, "default"); ok {
		n, err := resolveDefault(k, prop)
		if err != nil {
			return nil, true, fmt.Errorf("get: %w", err)
		}
		v, _ := o.defaultValue(k, n)
		return v, true, nil
	}
	if k, prop, ok := parseDefaultName(name, "factory"); ok {
		n, err := resolveDefault(k, prop)
		if err != nil {
			return nil, true, fmt.Errorf("get: %w", err)
		}
		v, _ := factoryValue(k, n)
		return v, true, nil
	}
	return nil, false, nil
}

// setDefaults handles the default and factory names for [Object.Set].
// A default is validated against the property it applies to.
func (o *Object) setDefaults(name string, v any) (bool, error) {
	if _, _, ok := parseDefaultName(name, "factory"); ok {
		return true, fmt.Errorf("set: %w: factory defaults cannot be changed", props.ErrReadOnly)
	}
	k, prop, ok := parseDefaultName(name, "default")
	if !ok {
		return false, nil
	}
	if o.defaults == nil {
		return true, fmt.Errorf("set: %s objects do not hold default values", o.kind)
	}
	n, err := resolveDefault(k, prop)
	if err != nil {
		return true, fmt.Errorf("set: %w", err)
	}
	if s, ok := v.(string); ok && strings.EqualFold(s, "remove") {
		o.defaults.Delete(k, n)
		return true, nil
	}
	p, _ := SchemaOf(k).Factory(n)
	defer p.Release()
	if _, err := p.SetWith(v, false, false); err != nil {
		return true, fmt.Errorf("set: default for %s objects: %w", k, err)
	}
	o.defaults.Set(k, n, p.Get())
	return true, nil
}

// ApplyDefaults sets the properties of a new object from the default
// lists of its ancestors, from the root down to its parent, so that
// the closest default wins. The toolkit is not notified.
func (o *Object) ApplyDefaults() {
	if !o.IsValid() {
		return
	}
	var chain []*Object
	for cur := o.ParentObject(); cur.IsValid(); cur = cur.ParentObject() {
		chain = append(chain, cur)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].defaults == nil {
			continue
		}
		for _, f := range chain[i].defaults.Of(o.kind) {
			p, ok := o.Property(f.Name)
			if !ok {
				continue
			}
			if _, err := o.setProperty(p, f.Value, false); err != nil {
				errors.Log(fmt.Errorf("%s: applying default: %w", o, err))
			}
		}
	}
}
