package paths

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WaitServerDir blocks until the configuration root exists and the server
// directory can be named, or ctx is done. It watches the parent of the
// configuration root, so that parent must already exist.
func (c *Context) WaitServerDir(ctx context.Context) (ServerDir, error) {
	sd, err := c.ServerDir()
	if err != nil || sd.Available() {
		return sd, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return sd, fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	parent := filepath.Dir(c.configDir)
	if err := watcher.Add(parent); err != nil {
		return sd, fmt.Errorf("failed to watch %s: %w", parent, err)
	}
	c.logger.WithField("dir", parent).Debug("Waiting for configuration root")

	// the root may have appeared before the watch was in place
	probe := true
	for {
		if probe {
			sd, err = c.ServerDir()
			if err != nil || sd.Available() {
				return sd, err
			}
			probe = false
		}

		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return sd, fmt.Errorf("watcher for %s closed", parent)
			}
			c.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)
			if filepath.Clean(event.Name) == filepath.Clean(c.configDir) && event.Has(fsnotify.Create) {
				probe = true
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return sd, fmt.Errorf("watcher for %s closed", parent)
			}
			c.logger.Warnf("Watcher error: %v", err)
		case <-ctx.Done():
			return sd, ctx.Err()
		}
	}
}
