package templates

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch calls onChange with the path of a file template whenever it is
// written, created or renamed. It blocks until ctx is done.
//
// The directories holding the templates are watched rather than the files,
// so editors that save by replacing the file are seen. onChange runs on the
// watcher goroutine; callers should hand the reload back to the driver.
func (t *Templates) Watch(ctx context.Context, onChange func(path string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("templates: watch: %w", err)
	}
	defer watcher.Close()

	tracked := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, p := range t.FilePaths() {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("templates: watch %s: %w", p, err)
		}
		tracked[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("templates: watch %s: %w", dir, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !tracked[abs] {
				continue
			}
			onChange(abs)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("templates: watch: %w", err)
		}
	}
}
