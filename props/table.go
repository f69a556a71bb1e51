// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Table is an ordered collection of properties with case-insensitive
// name lookup. The slice holds the properties in the order added, for
// stable enumeration, and the map holds the index into the slice
// keyed by the folded name.
type Table struct {

	// Order is the list of properties, in the order added.
	Order []Property

	// Map is the folded name to index mapping.
	Map map[string]int
}

// NewTable returns a new, empty table.
func NewTable() *Table {
	return &Table{Map: make(map[string]int)}
}

// Init initializes the table if it isn't already.
func (t *Table) Init() {
	if t.Map == nil {
		t.Map = make(map[string]int)
	}
}

// Add adds the given property. If a property with the same
// name already exists, it is replaced at its existing index
// and its reference released.
func (t *Table) Add(p Property) {
	t.Init()
	key := fold(p.Name())
	if idx, has := t.Map[key]; has {
		t.Order[idx].Release()
		t.Order[idx] = p
		return
	}
	t.Map[key] = len(t.Order)
	t.Order = append(t.Order, p)
}

// Get returns the property with exactly the given name,
// compared case-insensitively.
func (t *Table) Get(name string) (Property, bool) {
	if t == nil {
		return Property{}, false
	}
	idx, ok := t.Map[fold(name)]
	if !ok {
		return Property{}, false
	}
	return t.Order[idx], true
}

// Has returns whether the table has a property with the given name.
func (t *Table) Has(name string) bool {
	_, ok := t.Get(name)
	return ok
}

// Delete removes the property with the given name, releasing
// its reference. This is relatively slow because it needs to
// renumber the index map above the deleted property.
func (t *Table) Delete(name string) bool {
	key := fold(name)
	idx, ok := t.Map[key]
	if !ok {
		return false
	}
	t.Order[idx].Release()
	for o := idx + 1; o < len(t.Order); o++ {
		t.Map[fold(t.Order[o].Name())] = o - 1
	}
	delete(t.Map, key)
	t.Order = slices.Delete(t.Order, idx, idx+1)
	return true
}

// Len returns the number of properties.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Order)
}

// Names returns the names of the properties in order. Hidden
// properties are included only when all is set.
func (t *Table) Names(all bool) []string {
	names := make([]string, 0, t.Len())
	for _, p := range t.Order {
		if all || !p.Hidden() {
			names = append(names, p.Name())
		}
	}
	return names
}

// Release releases the references to all of the properties
// and empties the table.
func (t *Table) Release() {
	for _, p := range t.Order {
		p.Release()
	}
	t.Order = nil
	t.Map = nil
}

// MatchName resolves a possibly abbreviated property name against
// names, case-insensitively. An exact match wins; otherwise name must
// be a prefix of exactly one of the names, in which case a warning is
// logged. The error for an unresolved name suggests the closest name.
func MatchName(name, owner string, names []string) (string, error) {
	fn := fold(name)
	var matches []string
	for _, n := range names {
		f := fold(n)
		if f == fn {
			return n, nil
		}
		if strings.HasPrefix(f, fn) {
			matches = append(matches, n)
		}
	}
	switch len(matches) {
	case 1:
		slog.Warn("set: allowing abbreviated property name", "object", owner, "name", name, "match", matches[0])
		return matches[0], nil
	case 0:
		if s := Suggest(name, names); s != "" {
			return "", fmt.Errorf("%w %q for %s objects, did you mean %q?", ErrUnknownProperty, name, owner, s)
		}
		return "", fmt.Errorf("%w %q for %s objects", ErrUnknownProperty, name, owner)
	}
	return "", fmt.Errorf("%w: ambiguous property name %q for %s objects matches %s", ErrUnknownProperty, name, owner, strings.Join(matches, ", "))
}

// Suggest returns the name most similar to name, using the
// Levenshtein similarity, or "" when none is close enough.
func Suggest(name string, names []string) string {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	best := ""
	score := 0.6
	for _, n := range names {
		if s := strutil.Similarity(name, n, lev); s > score {
			best, score = n, s
		}
	}
	return best
}
