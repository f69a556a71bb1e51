// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd(opts *options) *cobra.Command {
	var tree bool
	cmd := &cobra.Command{
		Use:   "watch <script>...",
		Short: "Run scripts in a new session whenever they change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watch(ctx, opts, tree, args)
		},
	}
	cmd.Flags().BoolVar(&tree, "tree", true, "print the object tree after each run")
	return cmd
}

// watch runs the scripts, and again each time one of them is written,
// until ctx is done. The directories of the scripts are watched, since
// editors often save by replacing the file.
func watch(ctx context.Context, opts *options, tree bool, files []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	watched := map[string]bool{}
	dirs := map[string]bool{}
	for _, fn := range files {
		watched[filepath.Clean(fn)] = true
		dir := filepath.Dir(fn)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return err
		}
		dirs[dir] = true
	}

	rerun := func() {
		s, err := opts.newSession()
		if err != nil {
			slog.Error("gfx watch", "err", err)
			return
		}
		defer s.Manager.Shutdown()
		if err := runScripts(s, tree, files...); err != nil {
			slog.Error("gfx watch", "err", err)
		}
	}
	rerun()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(ev.Name)] || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			slog.Info("script changed", "file", ev.Name)
			rerun()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("gfx watch", "err", err)
		}
	}
}
