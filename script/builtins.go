// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"cogentcore.org/graphics/handle"
	"cogentcore.org/graphics/objects"
	"gopkg.in/yaml.v3"
)

// InstallBuiltins adds the builtin commands to [Script.Builtins].
func (s *Script) InstallBuiltins() {
	s.Builtins = make(map[string]func(args ...string) error)
	s.Builtins["set"] = s.Set
	s.Builtins["get"] = s.Get
	s.Builtins["delete"] = s.Delete
	s.Builtins["post-set"] = s.PostSet
	s.Builtins["post"] = s.Post
	s.Builtins["flush"] = s.Flush
	s.Builtins["drawnow"] = s.Drawnow
	s.Builtins["tree"] = s.Tree
	s.Builtins["dump"] = s.Dump
	s.Builtins["toolkits"] = s.Toolkits
	s.Builtins["echo"] = s.Echo
	s.Builtins["close"] = s.Close
	s.Builtins["closereq"] = s.CloseReq
}

// Set sets a property: set <h> <prop> <value...>.
func (s *Script) Set(args ...string) error {
	if len(args) < 3 {
		return fmt.Errorf("set: expected a handle, a property name and a value")
	}
	h, err := s.Handle(args[0])
	if err != nil {
		return err
	}
	v, err := s.Value(args[2:]...)
	if err != nil {
		return err
	}
	return s.Manager.Set(h, args[1], v)
}

// Get prints a property: get <h> <prop>.
func (s *Script) Get(args ...string) error {
	if len(args) != 2 {
		return fmt.Errorf("get: expected a handle and a property name")
	}
	h, err := s.Handle(args[0])
	if err != nil {
		return err
	}
	v, err := s.Manager.Get(h, args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(s.Out, Format(v))
	return nil
}

// Delete deletes objects: delete <h...>.
func (s *Script) Delete(args ...string) error {
	if len(args) == 0 {
		return fmt.Errorf("delete: expected at least one handle")
	}
	for _, a := range args {
		h, err := s.Handle(a)
		if err != nil {
			return err
		}
		if err := s.Manager.Free(h); err != nil {
			return err
		}
	}
	return nil
}

// PostSet posts a property change: post-set <h> <prop> <value...>.
func (s *Script) PostSet(args ...string) error {
	if len(args) < 3 {
		return fmt.Errorf("post-set: expected a handle, a property name and a value")
	}
	h, err := s.Handle(args[0])
	if err != nil {
		return err
	}
	v, err := s.Value(args[2:]...)
	if err != nil {
		return err
	}
	return s.Manager.PostSet(h, args[1], v, true)
}

// Post posts a callback: post <h> <callback> [data...].
func (s *Script) Post(args ...string) error {
	if len(args) < 2 {
		return fmt.Errorf("post: expected a handle and a callback name")
	}
	h, err := s.Handle(args[0])
	if err != nil {
		return err
	}
	var data any
	if len(args) > 2 {
		data = strings.Join(args[2:], " ")
	}
	return s.Manager.PostCallback(h, args[1], data)
}

// Flush runs all of the posted events.
func (s *Script) Flush(args ...string) error {
	s.Manager.FlushEvents()
	return nil
}

// Drawnow redraws the given figure, or all changed figures.
func (s *Script) Drawnow(args ...string) error {
	h := handle.Invalid
	if len(args) > 0 {
		var err error
		if h, err = s.Handle(args[0]); err != nil {
			return err
		}
	}
	return s.Manager.Drawnow(h)
}

// Tree prints the object tree below the given object,
// or the root.
func (s *Script) Tree(args ...string) error {
	h := handle.Root
	if len(args) > 0 {
		var err error
		if h, err = s.Handle(args[0]); err != nil {
			return err
		}
	}
	s.Manager.Lock()
	s.tree(h, 0)
	s.Manager.Unlock()
	return nil
}

func (s *Script) tree(h handle.Handle, depth int) {
	o := s.Manager.Object(h)
	if o == nil {
		return
	}
	tag := ""
	if v, err := o.Get("tag"); err == nil && v != "" {
		tag = fmt.Sprintf(" %q", v)
	}
	fmt.Fprintf(s.Out, "%s%s %v%s\n", strings.Repeat("  ", depth), o.Type(), h, tag)
	children := o.Children()
	slices.Reverse(children)
	for _, c := range children {
		s.tree(c, depth+1)
	}
}

// Dump prints the visible properties of an object as YAML.
func (s *Script) Dump(args ...string) error {
	if len(args) != 1 {
		return fmt.Errorf("dump: expected a handle")
	}
	h, err := s.Handle(args[0])
	if err != nil {
		return err
	}
	fs, err := s.Manager.GetAll(h, false)
	if err != nil {
		return err
	}
	b, err := DumpFields(fs)
	if err != nil {
		return err
	}
	_, err = s.Out.Write(b)
	return err
}

// DumpFields returns the given properties as a YAML mapping,
// in order.
func DumpFields(fs []objects.Field) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range fs {
		val := &yaml.Node{}
		if err := val.Encode(plain(f.Value)); err != nil {
			return nil, fmt.Errorf("dump %s: %w", f.Name, err)
		}
		doc.Content = append(doc.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: f.Name}, val)
	}
	return yaml.Marshal(doc)
}

// Toolkits prints the available toolkits, marking the
// loaded ones and the default.
func (s *Script) Toolkits(args ...string) error {
	reg := s.Manager.Toolkits()
	for _, name := range reg.Available() {
		mark := " "
		if name == reg.Default() {
			mark = "*"
		}
		state := ""
		if reg.IsLoaded(name) {
			state = " (loaded)"
		}
		fmt.Fprintf(s.Out, "%s %s%s\n", mark, name, state)
	}
	return nil
}

// Echo prints its arguments, with handle references
// replaced by their handles.
func (s *Script) Echo(args ...string) error {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = a
		if strings.HasPrefix(a, "$") || slices.Contains([]string{"gcf", "gca", "gcbo", "ans"}, a) {
			if h, err := s.Handle(a); err == nil {
				out[i] = h.String()
			}
		}
	}
	fmt.Fprintln(s.Out, strings.Join(out, " "))
	return nil
}

// Close asks the given figures, or the current one, to close
// by running their closerequestfcn.
func (s *Script) Close(args ...string) error {
	if len(args) == 0 {
		args = []string{"gcf"}
	}
	for _, a := range args {
		if a == "all" {
			for _, h := range s.Manager.FigureHandleList(false) {
				if err := s.Manager.ExecuteCallback(h, "closerequestfcn", nil); err != nil {
					return err
				}
			}
			continue
		}
		h, err := s.Handle(a)
		if err != nil {
			return err
		}
		if err := s.Manager.ExecuteCallback(h, "closerequestfcn", nil); err != nil {
			return err
		}
	}
	return nil
}

// CloseReq deletes the figure whose callback is running, or the
// current figure. It is the default closerequestfcn of figures.
func (s *Script) CloseReq(args ...string) error {
	h := s.Manager.CallbackObject()
	if !h.IsValid() {
		h = s.Manager.CurrentFigure()
	}
	if !h.IsValid() {
		return nil
	}
	if o := s.Manager.Object(h); o.Kind() != objects.KindFigure {
		if h = o.Figure().Handle(); !h.IsValid() {
			return nil
		}
	}
	return s.Manager.Free(h)
}

func isFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}
