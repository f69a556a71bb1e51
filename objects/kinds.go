// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objects

import (
	"slices"
	"strings"
)

// Kind is the type of a graphics object.
type Kind int32

const (
	// KindInvalid is the kind of the null object, which
	// rejects every operation.
	KindInvalid Kind = iota

	KindRoot
	KindFigure
	KindAxes
	KindLine
	KindText
	KindImage
	KindPatch
	KindSurface
	KindGroup
	KindUIMenu
	KindUIContextMenu
	KindUIControl
	KindUIPanel
	KindUIToolbar
	KindUIPushTool
	KindUIToggleTool

	KindN
)

var kindNames = [...]string{"invalid", "root", "figure", "axes", "line", "text", "image", "patch", "surface", "hggroup", "uimenu", "uicontextmenu", "uicontrol", "uipanel", "uitoolbar", "uipushtool", "uitoggletool"}

func (k Kind) String() string {
	if k < 0 || k >= KindN {
		return "invalid"
	}
	return kindNames[k]
}

// KindFromName returns the kind with the given type name,
// compared case-insensitively.
func KindFromName(name string) (Kind, bool) {
	name = strings.ToLower(name)
	for i, n := range kindNames {
		if i > 0 && n == name {
			return Kind(i), true
		}
	}
	return KindInvalid, false
}

// TypeNames returns the type names of all of the object kinds.
func TypeNames() []string {
	return slices.Clone(kindNames[1:])
}

// HoldsDefaults returns whether objects of the kind hold a default
// list for the objects created below them.
func (k Kind) HoldsDefaults() bool {
	switch k {
	case KindRoot, KindFigure, KindAxes, KindUIToolbar:
		return true
	}
	return false
}

// HasDataLimits returns whether objects of the kind carry data
// limits that contribute to the automatic limits of their axes.
func (k Kind) HasDataLimits() bool {
	switch k {
	case KindLine, KindText, KindImage, KindPatch, KindSurface, KindGroup:
		return true
	}
	return false
}

// splitTypePrefix splits a name such as "linecolor" into the kind
// whose type name it starts with and the rest. The longest type name
// wins, so that "uicontextmenu" is not read as "uicontrol".
func splitTypePrefix(name string) (Kind, string, bool) {
	name = strings.ToLower(name)
	best, rest := KindInvalid, ""
	for i := 1; i < int(KindN); i++ {
		n := kindNames[i]
		if strings.HasPrefix(name, n) && (best == KindInvalid || len(n) > len(kindNames[best])) {
			best, rest = Kind(i), name[len(n):]
		}
	}
	return best, rest, best != KindInvalid && rest != ""
}
