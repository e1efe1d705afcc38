package local

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gobeaver/iokit"
)

// Watch implements iokit.Watcher using fsnotify. The returned token is
// signalled once, on the first write, create, remove or rename touching this
// file; the underlying watcher is released when that happens or when ctx is
// cancelled.
func (f *File) Watch(ctx context.Context) (iokit.ChangeToken, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &iokit.PathError{Op: "watch", Path: f.uri.Name, Err: err}
	}

	// Watch the parent directory: watching the file itself breaks on
	// rename/replace, which is how most tools rewrite files.
	dir := filepath.Dir(f.uri.Name)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, &iokit.PathError{Op: "watch", Path: f.uri.Name, Err: err}
	}

	token := iokit.NewTriggerToken()
	target, err := filepath.Abs(f.uri.Name)
	if err != nil {
		target = f.uri.Name
	}

	go func() {
		defer w.Close()
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				name, err := filepath.Abs(event.Name)
				if err != nil {
					name = event.Name
				}
				if name == target {
					token.Trigger()
					return
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return token, nil
}
