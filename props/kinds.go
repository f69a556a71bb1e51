// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import "strings"

// Kind is the variant of a property value.
type Kind int32

const (
	// KindAny holds an arbitrary value without validation.
	KindAny Kind = iota

	// KindString holds text.
	KindString

	// KindStringArray holds a list of strings, settable as
	// separator-delimited text.
	KindStringArray

	// KindTextLabel holds a label that can be text, a list of
	// strings, or stringified numbers.
	KindTextLabel

	// KindRadio holds one keyword of a fixed set.
	KindRadio

	// KindBool holds "on" or "off".
	KindBool

	// KindColor holds an RGB triple or a keyword.
	KindColor

	// KindDouble holds a real scalar.
	KindDouble

	// KindDoubleRadio holds a real scalar or a keyword.
	KindDoubleRadio

	// KindArray holds a numeric array.
	KindArray

	// KindRowVector holds a numeric row vector.
	KindRowVector

	// KindHandle holds a graphics object handle.
	KindHandle

	// KindChildren holds the ordered list of child handles.
	KindChildren

	// KindCallback holds an executable callback.
	KindCallback

	KindN
)

var kindNames = [...]string{"any", "string", "stringarray", "textlabel", "radio", "boolean", "color", "double", "doubleradio", "array", "rowvector", "handle", "children", "callback"}

func (k Kind) String() string {
	if k < 0 || k >= KindN {
		return "unknown"
	}
	return kindNames[k]
}

// KindFromString returns the kind with the given name, case-insensitively.
// "data" is accepted as an alias for "array", and "bool" for "boolean".
func KindFromString(s string) (Kind, bool) {
	s = strings.ToLower(s)
	switch s {
	case "data":
		return KindArray, true
	case "bool":
		return KindBool, true
	}
	for i, n := range kindNames {
		if n == s {
			return Kind(i), true
		}
	}
	return KindAny, false
}
