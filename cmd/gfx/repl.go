// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"cogentcore.org/graphics/handle"
	"cogentcore.org/graphics/script"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newReplCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl [script]...",
		Short: "Run commands interactively, after running the given scripts",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession()
			if err != nil {
				return err
			}
			defer s.Manager.Shutdown()
			for _, fn := range args {
				if err := s.RunFile(fn); err != nil {
					return err
				}
			}
			return repl(s, os.Stdin, os.Stdout)
		},
	}
}

// repl reads commands from in until it ends or the user types exit.
// When in is a terminal it is put in raw mode for line editing with
// history; otherwise lines are run as a script.
func repl(s *script.Script, in *os.File, out io.Writer) error {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return s.Run(in)
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, old)

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{in, out}, "gfx> ")
	s.Out = t
	for {
		line, err := t.ReadLine()
		if err == io.EOF {
			fmt.Fprintln(t)
			return nil
		}
		if err != nil {
			return err
		}
		switch strings.TrimSpace(line) {
		case "exit", "quit":
			return nil
		}
		if err := s.Exec(line); err != nil {
			fmt.Fprintln(t, "error:", err)
		}
		s.Manager.ProcessEvents()
		if err := s.Manager.Drawnow(handle.Invalid); err != nil {
			fmt.Fprintln(t, "error:", err)
		}
	}
}
