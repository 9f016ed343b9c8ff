package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// watchPaths returns the files to watch; every input must be local.
func watchPaths(inputs []string) ([]string, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("needs at least one input file")
	}
	paths := make([]string, 0, len(inputs))
	for _, raw := range inputs {
		if isRemote(raw) {
			return nil, fmt.Errorf("cannot watch remote input %q", raw)
		}
		paths = append(paths, normalizePath(localPath(raw)))
	}
	return paths, nil
}

// watch renders once, then again after every burst of changes to paths,
// until ctx is done. Render errors are reported and watching continues.
func watch(ctx context.Context, paths []string, stderr io.Writer, render func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	files := make(map[string]bool, len(paths))
	dirs := map[string]bool{}
	for _, p := range paths {
		files[filepath.Clean(p)] = true
		// Editors often replace files on save, so watch the directory.
		dir := filepath.Dir(p)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("add %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	rerender := func() {
		start := time.Now()
		if err := render(); err != nil {
			fmt.Fprintf(stderr, "render: %v\n", err)
			return
		}
		fmt.Fprintf(stderr, "rendered in %s\n", time.Since(start).Round(time.Millisecond))
	}
	rerender()

	timer := time.NewTimer(watchDebounce)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !files[filepath.Clean(ev.Name)] {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(watchDebounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(stderr, "watch: %v\n", err)
		case <-timer.C:
			rerender()
		}
	}
}
