// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"fmt"

	"cogentcore.org/graphics/array"
	"cogentcore.org/graphics/handle"
)

// Create returns a new property of the kind named by typeName, for
// properties added to an object at run time. The optional first
// argument is the initial value. For "radio" the first argument is
// the option specification instead, and for "color" and "doubleradio"
// the second argument is the specification of the allowed keywords.
func Create(name string, owner handle.Handle, typeName string, args ...any) (Property, error) {
	k, ok := KindFromString(typeName)
	if !ok {
		return Property{}, fmt.Errorf("addproperty: unsupported type for dynamic property %q: %q", name, typeName)
	}
	var initial any
	if len(args) > 0 {
		initial = args[0]
	}
	spec := ""
	if len(args) > 1 {
		s, ok := args[1].(string)
		if !ok {
			return Property{}, fmt.Errorf("addproperty: keyword specification for %q must be a string", name)
		}
		spec = s
	}
	var v Value
	switch k {
	case KindAny:
		v = NewAny(initial)
		initial = nil
	case KindString:
		v = NewString("")
	case KindStringArray:
		v = NewStringArray("", "|")
	case KindTextLabel:
		v = NewTextLabel("")
	case KindRadio:
		s, ok := initial.(string)
		if !ok {
			return Property{}, fmt.Errorf("addproperty: missing option specification for radio property %q", name)
		}
		v = NewRadio(s)
		initial = nil
	case KindBool:
		v = NewBool(false)
	case KindColor:
		v = NewColor(RGB{}, spec)
	case KindDouble:
		v = NewDouble(0)
	case KindDoubleRadio:
		v = NewDoubleRadio(0, spec)
	case KindArray:
		v = NewArray(array.Empty())
	case KindRowVector:
		v = NewRowVector()
	case KindHandle:
		v = NewHandle(handle.Invalid, nil)
	case KindCallback:
		v = NewCallback(nil)
	default:
		return Property{}, fmt.Errorf("addproperty: unsupported type for dynamic property %q: %q", name, typeName)
	}
	p := New(name, owner, v)
	if initial != nil {
		if _, err := p.SetWith(initial, false, false); err != nil {
			return Property{}, fmt.Errorf("addproperty: %w", err)
		}
	}
	return p, nil
}
