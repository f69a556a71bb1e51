// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gfx builds and inspects graphics objects from scripts.
package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/graphics/base/errors"
	"cogentcore.org/graphics/base/iox/tomlx"
	"cogentcore.org/graphics/base/logx"
	"cogentcore.org/graphics/config"
	"cogentcore.org/graphics/handle"
	"cogentcore.org/graphics/manager"
	"cogentcore.org/graphics/objects"
	"cogentcore.org/graphics/script"
	"github.com/spf13/cobra"
)

// options are the global flags.
type options struct {
	config      string
	toolkit     string
	veryVerbose bool
	verbose     bool
	quiet       bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "gfx",
		Short:        "Build and inspect graphics objects from scripts",
		SilenceUsage: true,
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.config, "config", "c", "", "config file (default ~/.config/gfx/config.toml)")
	pf.StringVarP(&opts.toolkit, "toolkit", "t", "", "graphics toolkit of new figures")
	pf.BoolVar(&opts.veryVerbose, "vv", false, "show debug messages")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "show info messages")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "only show errors")

	cmd.AddCommand(newRunCmd(opts), newReplCmd(opts), newWatchCmd(opts), newConfigCmd(opts), newTypesCmd())
	return cmd
}

// loadConfig opens the config file, falling back to the defaults when
// the default file does not exist, and sets up logging.
func (o *options) loadConfig() (*config.Config, error) {
	fn := o.config
	explicit := fn != ""
	if !explicit {
		var err error
		if fn, err = config.DefaultPath(); err != nil {
			return nil, err
		}
	}
	cfg, err := config.Open(fn)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, fs.ErrNotExist):
		cfg = config.Defaults()
	default:
		return nil, err
	}
	if o.toolkit != "" {
		cfg.Toolkit = o.toolkit
	}

	logx.UserLevel = logx.FlagLevel(o.veryVerbose, o.verbose, o.quiet, cfg.Level())
	logx.SetDefaultLogger()
	return cfg, nil
}

// newSession starts a manager and a script for it.
func (o *options) newSession() (*script.Script, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	m, err := manager.New(cfg, manager.WithLogger(slog.Default()))
	if err != nil {
		return nil, err
	}
	return script.New(m, os.Stdout), nil
}

func newRunCmd(opts *options) *cobra.Command {
	var tree bool
	cmd := &cobra.Command{
		Use:   "run <script>...",
		Short: "Run scripts and draw the resulting figures",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession()
			if err != nil {
				return err
			}
			defer s.Manager.Shutdown()
			return runScripts(s, tree, args...)
		},
	}
	cmd.Flags().BoolVar(&tree, "tree", false, "print the object tree when done")
	return cmd
}

// runScripts runs the given files in order, then runs the posted
// events and redraws the figures.
func runScripts(s *script.Script, tree bool, files ...string) error {
	for _, fn := range files {
		if err := s.RunFile(fn); err != nil {
			return err
		}
	}
	s.Manager.FlushEvents()
	if err := s.Manager.Drawnow(handle.Invalid); err != nil {
		return err
	}
	if tree {
		return s.Tree()
	}
	return nil
}

func newConfigCmd(opts *options) *cobra.Command {
	var save string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective config, or save it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if save != "" {
				return cfg.Save(save)
			}
			return tomlx.Write(cfg, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&save, "save", "", "write the config to this file")
	return cmd
}

func newTypesCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "types [type]",
		Short: "List the object types, or the properties of a type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, strings.Join(objects.TypeNames(), "\n"))
				return nil
			}
			k, ok := objects.KindFromName(args[0])
			if !ok {
				return fmt.Errorf("unknown object type %q", args[0])
			}
			fmt.Fprintln(out, strings.Join(objects.SchemaOf(k).Names(all), "\n"))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include hidden properties")
	return cmd
}
