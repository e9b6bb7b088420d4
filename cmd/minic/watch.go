package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/minic-lang/core-compiler/compiler"
	"github.com/minic-lang/core-compiler/config"
)

// sourceExt is the extension watched and checked.
const sourceExt = ".mc"

var watchCmd = &cobra.Command{
	Use:   "watch <path>",
	Short: "Re-check MiniC sources whenever they change",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	target, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	info, err := os.Stat(target)
	if err != nil {
		return err
	}
	root := target
	if !info.IsDir() {
		root = filepath.Dir(target)
	}

	cfg, err := loadConfigFor(target)
	if err != nil {
		return err
	}
	debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
	if debounce <= 0 {
		debounce = time.Duration(config.Default().Watch.DebounceMS) * time.Millisecond
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()
	if err := watchTree(watcher, root); err != nil {
		return err
	}

	fmt.Printf("watching %s (debounce %s)\n", args[0], debounce)
	checkTarget(cfg, target, info.IsDir())

	// Editors fire bursts of events per save; collapse each burst into a
	// single re-check after the debounce window closes.
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-cmd.Context().Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
					if err := watchTree(watcher, event.Name); err != nil {
						return err
					}
				}
			}
			if !strings.HasSuffix(event.Name, sourceExt) {
				continue
			}
			if pending {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
			}
			timer.Reset(debounce)
			pending = true

		case <-timer.C:
			if pending {
				pending = false
				checkTarget(cfg, target, info.IsDir())
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		}
	}
}

// watchTree registers root and every directory under it. Hidden
// directories are skipped.
func watchTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if name := d.Name(); path != root && strings.HasPrefix(name, ".") {
			return filepath.SkipDir
		}
		return w.Add(path)
	})
}

func checkTarget(cfg *config.Config, target string, isDir bool) {
	files := []string{target}
	if isDir {
		files = sourceFiles(target)
		if len(files) == 0 {
			fmt.Printf("no %s files under %s\n", sourceExt, target)
			return
		}
	}

	comp := compiler.NewCompiler(cfg)
	failed := 0
	for _, f := range files {
		_, ctx, err := comp.CheckFile(f)
		if ctx != nil {
			ctx.Diagnostics.Print()
		}
		if err != nil {
			failed++
			continue
		}
		fmt.Printf("%s: ok\n", f)
	}
	if failed > 0 {
		fmt.Printf("%d of %d file(s) failed\n", failed, len(files))
	}
}

func sourceFiles(root string) []string {
	var files []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if name := d.Name(); path != root && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, sourceExt) {
			files = append(files, path)
		}
		return nil
	})
	sort.Strings(files)
	return files
}
