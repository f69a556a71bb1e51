// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package objects provides the graphics objects of the scene graph:
// the root, figures, axes, the plot objects drawn in axes, and the
// user interface objects of figures.
//
// Every kind of object is a single [Object] type holding a table of
// properties built from the static schema of its [Kind]. The behavior
// that differs between kinds lives in lookup tables of update hooks,
// setters and getters keyed by kind and property name, instead of in
// separate types.
//
// Objects are created and deleted by a manager that implements [Env].
// They are not safe for concurrent use: the manager serializes every
// mutation.
package objects

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/graphics/array"
	"cogentcore.org/graphics/base/errors"
	"cogentcore.org/graphics/handle"
	"cogentcore.org/graphics/props"
)

// ErrInvalidObject is returned by every operation of the null object.
var ErrInvalidObject = errors.New("invalid graphics object")

// Field is a named property value, for ordered enumerations.
type Field struct {
	Name  string
	Value any
}

// Object is a graphics object. The nil *Object and the zero Object
// are the null object, which answers every operation with
// [ErrInvalidObject].
type Object struct {
	kind   Kind
	h      handle.Handle
	env    Env
	schema *Schema

	// table holds the static properties, in schema order.
	table *props.Table

	// dynamic holds the properties added with [Object.AddProperty].
	dynamic *props.Table

	children *props.ChildrenValue

	// tkInit is whether the toolkit accepted the object.
	tkInit bool

	// defaults is the default list of kinds that hold one.
	defaults *DefaultList

	axes *axesState
}

// New returns a new object of the given kind with handle h below the
// given parent, with all of its properties at their factory defaults.
// It returns the null object for an invalid kind.
func New(k Kind, h, parent handle.Handle, env Env) *Object {
	sc := SchemaOf(k)
	if sc == nil || env == nil {
		return &Object{}
	}
	o := &Object{kind: k, h: h, env: env, schema: sc, table: props.NewTable(), dynamic: props.NewTable()}
	for i, sp := range sc.Specs {
		o.table.Add(props.New(sp.Name, h, sp.New()).SetID(sc.ids[i]).SetHidden(sp.Flags.Has(Hidden)))
	}
	o.prop("type").Value().Set(k.String())
	o.prop("parent").Value().Set(parent)
	o.prop("__myhandle__").Value().Set(h)

	live := func(x handle.Handle) bool { return env.Object(x) != nil }
	for _, p := range o.table.Order {
		p.SetOwner(h, o)
		switch v := p.Value().(type) {
		case *props.HandleValue:
			v.SetValidator(live)
		case *props.ChildrenValue:
			v.SetVisibility(env.IsHandleVisible)
			o.children = v
		}
	}
	if k.HoldsDefaults() {
		o.defaults = &DefaultList{}
	}
	if k == KindAxes {
		o.axes = newAxesState()
	}
	return o
}

// IsValid returns whether o is a live object rather than the null object.
func (o *Object) IsValid() bool {
	return o != nil && o.kind != KindInvalid
}

// Kind returns the kind of the object.
func (o *Object) Kind() Kind {
	if o == nil {
		return KindInvalid
	}
	return o.kind
}

// Handle returns the handle of the object.
func (o *Object) Handle() handle.Handle {
	if !o.IsValid() {
		return handle.Invalid
	}
	return o.h
}

// Type returns the type name of the object.
func (o *Object) Type() string {
	if !o.IsValid() {
		return ""
	}
	return o.kind.String()
}

func (o *Object) String() string {
	if !o.IsValid() {
		return "<invalid object>"
	}
	return fmt.Sprintf("%s %v", o.kind, o.h)
}

// Parent returns the handle of the parent object.
func (o *Object) Parent() handle.Handle {
	return o.handleProp("parent")
}

// ParentObject returns the parent object, or nil for the root.
func (o *Object) ParentObject() *Object {
	if !o.IsValid() {
		return nil
	}
	p := o.Parent()
	if !p.IsValid() {
		return nil
	}
	return o.env.Object(p)
}

// Figure returns the figure the object belongs to, which is
// the object itself for figures, or nil.
func (o *Object) Figure() *Object {
	for cur := o; cur.IsValid(); cur = cur.ParentObject() {
		if cur.kind == KindFigure {
			return cur
		}
	}
	return nil
}

// Axes returns the axes the object belongs to, or nil.
func (o *Object) Axes() *Object {
	for cur := o; cur.IsValid(); cur = cur.ParentObject() {
		if cur.kind == KindAxes {
			return cur
		}
	}
	return nil
}

// IsAncestorOf returns whether o is h or one of its ancestors.
func (o *Object) IsAncestorOf(h handle.Handle) bool {
	if !o.IsValid() {
		return false
	}
	for cur := o.env.Object(h); cur.IsValid(); cur = cur.ParentObject() {
		if cur.h.Equal(o.h) {
			return true
		}
	}
	return false
}

// Children returns all of the children, visible and hidden,
// most recently adopted first.
func (o *Object) Children() []handle.Handle {
	if !o.IsValid() {
		return nil
	}
	return o.children.All()
}

// VisibleChildren returns the children whose handles are visible.
func (o *Object) VisibleChildren() []handle.Handle {
	if !o.IsValid() {
		return nil
	}
	return o.children.Visible()
}

// HasChild returns whether h is a child of o.
func (o *Object) HasChild(h handle.Handle) bool {
	return o.IsValid() && o.children.Contains(h)
}

func (o *Object) childObjects() []*Object {
	var objs []*Object
	for _, h := range o.Children() {
		if c := o.env.Object(h); c.IsValid() {
			objs = append(objs, c)
		}
	}
	return objs
}

// Adopt adds h as the first child of the object.
func (o *Object) Adopt(h handle.Handle) {
	if !o.IsValid() {
		return
	}
	o.children.Adopt(h)
	o.MarkModified()
}

// RemoveChild removes h from the children, returning whether it was found.
func (o *Object) RemoveChild(h handle.Handle) bool {
	if !o.IsValid() || !o.children.Remove(h) {
		return false
	}
	o.MarkModified()
	return true
}

// RenumberChild replaces the child old with new.
func (o *Object) RenumberChild(old, new handle.Handle) error {
	if !o.IsValid() {
		return ErrInvalidObject
	}
	return o.children.Renumber(old, new)
}

// Renumber gives the object the new handle h. The manager updates
// its own tables and the parent and children of the object.
func (o *Object) Renumber(h handle.Handle) {
	if !o.IsValid() {
		return
	}
	o.h = h
	for _, p := range o.table.Order {
		p.SetOwner(h, o)
	}
	for _, p := range o.dynamic.Order {
		p.SetOwner(h, o)
	}
	o.prop("__myhandle__").Value().Set(h)
}

// ParentRenumbered records the new handle h of the parent of the
// object, which must already be live.
func (o *Object) ParentRenumbered(h handle.Handle) {
	if o.IsValid() {
		errors.Log1(o.prop("parent").Value().Set(h))
	}
}

// Property returns the static or dynamic property with exactly the
// given name, compared case-insensitively.
func (o *Object) Property(name string) (props.Property, bool) {
	if !o.IsValid() {
		return props.Property{}, false
	}
	if p, ok := o.table.Get(name); ok {
		return p, true
	}
	return o.dynamic.Get(name)
}

func (o *Object) prop(name string) props.Property {
	p, _ := o.Property(name)
	return p
}

// lookup resolves a possibly abbreviated name against the static
// properties, then the dynamic ones.
func (o *Object) lookup(name string) (props.Property, error) {
	if p, ok := o.Property(name); ok {
		return p, nil
	}
	names := append(o.schema.Names(true), o.dynamic.Names(true)...)
	n, err := props.MatchName(name, o.kind.String(), names)
	if err != nil {
		return props.Property{}, err
	}
	return o.prop(n), nil
}

// specOf returns the schema entry of a static property.
func (o *Object) specOf(name string) (Spec, bool) {
	sp, _, ok := o.schema.Lookup(name)
	return sp, ok
}

// MarkModified marks the object and all of its ancestors as modified.
// It is called on every change of a property value.
func (o *Object) MarkModified() {
	for cur := o; cur.IsValid(); cur = cur.ParentObject() {
		cur.prop("__modified__").Value().Set(true)
	}
}

// IsModified returns whether the object changed since
// [Object.ClearModified].
func (o *Object) IsModified() bool {
	return o.boolProp("__modified__")
}

// ClearModified clears the modified flag of the object.
func (o *Object) ClearModified() {
	if o.IsValid() {
		o.prop("__modified__").Value().Set(false)
	}
}

// NotifyToolkit tells the toolkit of the object that the property with
// the given id changed. It does nothing until the toolkit accepted the
// object.
func (o *Object) NotifyToolkit(id int) {
	if !o.IsValid() || !o.tkInit {
		return
	}
	o.logToolkitError("update", o.Toolkit().Update(o, id))
}

// Get returns the value of the named property. Names may be
// abbreviated to a unique prefix. The names "default<type><prop>" and
// "factory<type><prop>" (or "default.<type>.<prop>") return default and
// factory values, and "default" and "factory" return all of them.
func (o *Object) Get(name string) (any, error) {
	if !o.IsValid() {
		return nil, fmt.Errorf("get: %w", ErrInvalidObject)
	}
	if v, ok, err := o.getDefaults(name); ok {
		return v, err
	}
	p, err := o.lookup(name)
	if err != nil {
		return nil, fmt.Errorf("get: %w", err)
	}
	return o.value(p), nil
}

func (o *Object) value(p props.Property) any {
	if fn := getterFor(o.kind, p.Name()); fn != nil {
		return fn(o)
	}
	return p.Get()
}

// GetAll returns the names and values of the static properties in
// schema order followed by the dynamic ones. Hidden properties are
// included only when all is set.
func (o *Object) GetAll(all bool) ([]Field, error) {
	if !o.IsValid() {
		return nil, fmt.Errorf("get: %w", ErrInvalidObject)
	}
	var fs []Field
	for _, tb := range []*props.Table{o.table, o.dynamic} {
		for _, p := range tb.Order {
			if all || !p.Hidden() {
				fs = append(fs, Field{Name: p.Name(), Value: o.value(p)})
			}
		}
	}
	return fs, nil
}

// Names returns the names of the properties of the object,
// including hidden ones when all is set.
func (o *Object) Names(all bool) []string {
	if !o.IsValid() {
		return nil
	}
	return append(o.table.Names(all), o.dynamic.Names(all)...)
}

// Set sets the named property to v, notifying the toolkit. Names may
// be abbreviated to a unique prefix. A value that fails validation
// leaves the property unchanged. See [Object.Get] for default names;
// setting a default to "remove" removes it. For properties that do not
// hold text, the values "default" and "factory" set the property to
// its default or factory value.
func (o *Object) Set(name string, v any) error {
	return o.SetWith(name, v, true)
}

// SetWith is [Object.Set] with control over toolkit notification.
func (o *Object) SetWith(name string, v any, notify bool) error {
	if !o.IsValid() {
		return fmt.Errorf("set: %w", ErrInvalidObject)
	}
	if ok, err := o.setDefaults(name, v); ok {
		return err
	}
	p, err := o.lookup(name)
	if err != nil {
		return fmt.Errorf("set: %w", err)
	}
	if sp, ok := o.specOf(p.Name()); ok && sp.Flags.Has(ReadOnly) {
		return fmt.Errorf("set: %w %q of %s objects", props.ErrReadOnly, p.Name(), o.kind)
	}
	if s, ok := v.(string); ok && holdsKeywordDefault(p.Kind()) {
		switch strings.ToLower(s) {
		case "default":
			v, _ = o.defaultValue(o.kind, p.Name())
		case "factory":
			v, _ = factoryValue(o.kind, p.Name())
		}
	}
	_, err = o.setProperty(p, v, notify)
	return err
}

// holdsKeywordDefault returns whether "default" and "factory" are
// special values for properties of the given kind.
func holdsKeywordDefault(k props.Kind) bool {
	switch k {
	case props.KindString, props.KindStringArray, props.KindTextLabel, props.KindCallback, props.KindAny:
		return false
	}
	return true
}

// setProperty runs the full set of p: the setter of the property or
// a plain set, then on a change the mode flag, the update hook, the
// limits flag, and the PostSet listeners.
func (o *Object) setProperty(p props.Property, v any, notify bool) (bool, error) {
	var changed bool
	var err error
	if fn := setterFor(o.kind, p.Name()); fn != nil {
		changed, err = fn(o, p, v, notify)
	} else {
		changed, err = p.SetWith(v, false, notify)
	}
	if err != nil || !changed {
		return changed, err
	}
	name := strings.ToLower(p.Name())
	sp, static := o.specOf(name)
	if static && sp.Flags.Has(Mode) {
		o.store(name+"mode", "manual")
	}
	if fn := hookFor(o.kind, name); fn != nil {
		fn(o, name)
	}
	if static && sp.Flags.Has(Limits) {
		o.propagateLimits(name)
	}
	return true, p.RunListeners(props.PostSet)
}

// store sets a property without running hooks or listeners and
// without notifying the toolkit, for internal updates. It reports
// whether the value changed.
func (o *Object) store(name string, v any) bool {
	p, ok := o.Property(name)
	if !ok {
		slog.Error("objects: no such property", "object", o.String(), "name", name)
		return false
	}
	changed, err := p.SetWith(v, false, false)
	if err != nil {
		errors.Log(fmt.Errorf("%s: %w", o, err))
	}
	return changed
}

func (o *Object) boolProp(name string) bool {
	bv, ok := props.As[*props.BoolValue](o.prop(name))
	return ok && bv.IsOn()
}

// radioIs returns whether the keyword of a radio, boolean or
// color property is val.
func (o *Object) radioIs(name, val string) bool {
	switch v := o.prop(name).Value().(type) {
	case interface{ Is(string) bool }:
		return v.Is(val)
	case *props.ColorValue:
		return v.IsRadio() && strings.EqualFold(v.Current(), val)
	}
	return false
}

func (o *Object) floatProp(name string) float64 {
	switch v := o.prop(name).Value().(type) {
	case *props.DoubleValue:
		return v.Float()
	case *props.DoubleRadioValue:
		return v.Float()
	}
	return 0
}

func (o *Object) stringProp(name string) string {
	switch v := o.prop(name).Get().(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, "|")
	}
	return ""
}

func (o *Object) handleProp(name string) handle.Handle {
	hv, ok := props.As[*props.HandleValue](o.prop(name))
	if !ok {
		return handle.Invalid
	}
	return hv.Handle()
}

func (o *Object) arrayProp(name string) *array.Array {
	if a, ok := o.prop(name).Get().(*array.Array); ok {
		return a
	}
	return array.Empty()
}

func (o *Object) values(name string) []float64 {
	return o.arrayProp(name).Values()
}

// AddProperty adds a dynamic property of the given type name (see
// [props.Create]). It is an error if the object already has a
// property with that name.
func (o *Object) AddProperty(name, typeName string, args ...any) error {
	if !o.IsValid() {
		return fmt.Errorf("addproperty: %w", ErrInvalidObject)
	}
	if _, ok := o.Property(name); ok {
		return fmt.Errorf("addproperty: a %q property already exists in the %s object", name, o.kind)
	}
	p, err := props.Create(name, o.h, typeName, args...)
	if err != nil {
		return err
	}
	if hv, ok := props.As[*props.HandleValue](p); ok {
		hv.SetValidator(func(x handle.Handle) bool { return o.env.Object(x) != nil })
	}
	p.SetOwner(o.h, o)
	o.dynamic.Add(p)
	return nil
}

// AddListener adds a listener for the given phase
// to the named property.
func (o *Object) AddListener(name string, phase props.ListenerPhases, fn props.Listener) (props.ListenerID, error) {
	if !o.IsValid() {
		return 0, fmt.Errorf("addlistener: %w", ErrInvalidObject)
	}
	p, err := o.lookup(name)
	if err != nil {
		return 0, fmt.Errorf("addlistener: %w", err)
	}
	return p.AddListener(phase, fn), nil
}

// DeleteListener removes a listener of the named property. With
// an id of 0, all listeners of the phase are removed, keeping
// persistent ones unless phase is [props.Persistent].
func (o *Object) DeleteListener(name string, phase props.ListenerPhases, id props.ListenerID) error {
	if !o.IsValid() {
		return fmt.Errorf("dellistener: %w", ErrInvalidObject)
	}
	p, err := o.lookup(name)
	if err != nil {
		return fmt.Errorf("dellistener: %w", err)
	}
	if id == 0 {
		p.DeleteListeners(phase)
		return nil
	}
	if !p.DeleteListener(phase, id) {
		return fmt.Errorf("dellistener: no listener %d on %q", id, p.Name())
	}
	return nil
}

// PrepareDelete runs the PreDelete listeners of all properties and
// then removes all listeners that are not persistent. It is called
// first when the object is deleted.
func (o *Object) PrepareDelete() error {
	if !o.IsValid() {
		return ErrInvalidObject
	}
	var errs []error
	for _, tb := range []*props.Table{o.table, o.dynamic} {
		for _, p := range tb.Order {
			if err := p.RunListeners(props.PreDelete); err != nil {
				errs = append(errs, err)
			}
			p.DeleteListeners(props.PostSet)
			p.DeleteListeners(props.PreDelete)
		}
	}
	return errors.Join(errs...)
}

// IsBeingDeleted returns whether the object is being deleted.
func (o *Object) IsBeingDeleted() bool {
	return o.boolProp("beingdeleted")
}

// MarkBeingDeleted sets the beingdeleted property, without
// notifying the toolkit.
func (o *Object) MarkBeingDeleted() {
	o.store("beingdeleted", true)
}

// Callback returns the callback property with the given name.
func (o *Object) Callback(name string) (*props.CallbackValue, bool) {
	return props.As[*props.CallbackValue](o.prop(name))
}

// Release releases all of the properties of a deleted object,
// which becomes the null object.
func (o *Object) Release() {
	if !o.IsValid() {
		return
	}
	o.table.Release()
	o.dynamic.Release()
	o.kind = KindInvalid
}
