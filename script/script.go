// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package script provides a small command language for building and
// changing graphics objects, used by the gfx command and to evaluate
// callbacks given as text.
//
// Each line holds one or more statements separated by semicolons.
// A statement is either the name of an object type, optionally
// assigned to a variable and followed by the parent, as in
//
//	l = line $ax
//
// or a builtin command such as set, get or delete. Lines starting
// with # are comments.
package script

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/graphics/handle"
	"cogentcore.org/graphics/manager"
	"cogentcore.org/graphics/objects"
	"github.com/mattn/go-shellwords"
)

// Script runs graphics commands against a [manager.Manager].
type Script struct {

	// Manager is the manager that owns the objects.
	Manager *manager.Manager

	// Out is where commands print their results.
	Out io.Writer

	// Vars are the handles assigned to named variables.
	Vars map[string]handle.Handle

	// Builtins are the builtin commands, keyed by name.
	Builtins map[string]func(args ...string) error

	// Last is the handle of the most recently created object.
	Last handle.Handle
}

// New returns a new script for the given manager, printing to out,
// and makes it the interpreter of the callbacks of the manager.
func New(m *manager.Manager, out io.Writer) *Script {
	if out == nil {
		out = os.Stdout
	}
	s := &Script{Manager: m, Out: out, Vars: map[string]handle.Handle{}, Last: handle.Invalid}
	s.InstallBuiltins()
	m.SetInterpreter(s)
	return s
}

// Eval runs src as the body of a callback of the object h. It
// implements [props.Interpreter].
func (s *Script) Eval(src string, h handle.Handle, data any) error {
	slog.Debug("script callback", "handle", h, "src", src)
	for line := range strings.Lines(src) {
		if err := s.Exec(line); err != nil {
			return err
		}
	}
	return nil
}

// Run runs every line read from r, stopping at the first error,
// which reports the line number.
func (s *Script) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		if err := s.Exec(sc.Text()); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return sc.Err()
}

// RunFile runs the script in the given file.
func (s *Script) RunFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := s.Run(f); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return nil
}

// Exec runs one line, with the objects locked.
func (s *Script) Exec(line string) error {
	stmts, err := Split(line)
	if err != nil {
		return err
	}
	s.Manager.Lock()
	defer s.Manager.Unlock()
	for _, args := range stmts {
		if err := s.exec(args); err != nil {
			return err
		}
	}
	return nil
}

// Split parses a line into statements, each a list of words. It uses
// shell quoting rules; semicolons separate statements, except inside
// brackets where they separate matrix rows.
func Split(line string) ([][]string, error) {
	if t := strings.TrimSpace(line); t == "" || strings.HasPrefix(t, "#") {
		return nil, nil
	}
	var stmts [][]string
	var cur []string
	p := shellwords.NewParser()
	rest := line
	for {
		args, err := p.Parse(rest)
		if err != nil {
			return nil, err
		}
		cur = append(cur, args...)
		if p.Position < 0 {
			break
		}
		rs := []rune(rest)
		sep := rs[p.Position]
		if sep != ';' {
			return nil, fmt.Errorf("unexpected %q: pipes and redirections are not supported", sep)
		}
		if bracketDepth(cur) > 0 {
			cur = append(cur, ";")
		} else if len(cur) > 0 {
			stmts = append(stmts, cur)
			cur = nil
		}
		rest = string(rs[p.Position+1:])
	}
	if len(cur) > 0 {
		stmts = append(stmts, cur)
	}
	return stmts, nil
}

// bracketDepth returns the number of brackets left open in args.
func bracketDepth(args []string) int {
	d := 0
	for _, a := range args {
		d += strings.Count(a, "[") - strings.Count(a, "]")
	}
	return d
}

// exec runs one statement.
func (s *Script) exec(args []string) error {
	name := ""
	if len(args) > 2 && args[1] == "=" {
		name = args[0]
		args = args[2:]
	}
	if _, ok := objects.KindFromName(args[0]); ok {
		h, err := s.create(args[0], args[1:]...)
		if err != nil {
			return err
		}
		if name != "" {
			s.Vars[name] = h
		}
		return nil
	}
	if name != "" {
		h, err := s.Handle(args[0])
		if err != nil {
			return fmt.Errorf("%s = %s: only objects and handles can be assigned: %w", name, args[0], err)
		}
		s.Vars[name] = h
		return nil
	}
	fn, ok := s.Builtins[args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q", args[0])
	}
	return fn(args[1:]...)
}

// create makes a new object of the given type. Figures go below the
// root; axes go below the current figure and other objects below the
// current axes, which are made as needed, unless a parent is given.
func (s *Script) create(typeName string, args ...string) (handle.Handle, error) {
	if len(args) > 1 {
		return handle.Invalid, fmt.Errorf("%s: expected at most one argument, the parent", typeName)
	}
	m := s.Manager
	k, _ := objects.KindFromName(typeName)
	var parent handle.Handle
	var err error
	switch {
	case len(args) == 1:
		parent, err = s.Handle(args[0])
	case k == objects.KindFigure:
		parent = handle.Root
	case k == objects.KindAxes:
		parent, err = s.gcf()
	default:
		parent, err = s.gca()
	}
	if err != nil {
		return handle.Invalid, err
	}
	h, err := m.MakeHandle(typeName, parent, true, true, true)
	if err != nil {
		return handle.Invalid, err
	}
	s.Last = h
	return h, nil
}

// gcf returns the current figure, making one if there is none.
func (s *Script) gcf() (handle.Handle, error) {
	if h := s.Manager.CurrentFigure(); h.IsValid() {
		return h, nil
	}
	return s.Manager.MakeHandle("figure", handle.Root, true, true, true)
}

// gca returns the current axes, making them if there are none.
func (s *Script) gca() (handle.Handle, error) {
	if h := s.Manager.CurrentAxes(); h.IsValid() {
		return h, nil
	}
	fig, err := s.gcf()
	if err != nil {
		return handle.Invalid, err
	}
	return s.Manager.MakeHandle("axes", fig, true, true, true)
}

// Handle resolves a handle reference: a number, a $variable, or one
// of root, gcf, gca, gcbo and ans, the last object made.
func (s *Script) Handle(ref string) (handle.Handle, error) {
	var h handle.Handle
	switch ref {
	case "root":
		return handle.Root, nil
	case "gcf":
		return s.gcf()
	case "gca":
		return s.gca()
	case "gcbo":
		h = s.Manager.CallbackObject()
	case "ans":
		h = s.Last
	default:
		if name, ok := strings.CutPrefix(ref, "$"); ok {
			v, ok := s.Vars[name]
			if !ok {
				return handle.Invalid, fmt.Errorf("undefined variable %q", name)
			}
			h = v
			break
		}
		v, err := handle.Parse(ref)
		if err != nil {
			return handle.Invalid, fmt.Errorf("invalid handle %q", ref)
		}
		h = v
	}
	if !s.Manager.IsValidHandle(h) {
		return handle.Invalid, fmt.Errorf("%s (= %v) is not a graphics object", ref, h)
	}
	return h, nil
}
