package pixelcam

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settingsDebounce is how long a settings file must stay quiet before it is
// reloaded. Editors often write a file several times per save.
const settingsDebounce = 100 * time.Millisecond

// SettingsWatcher reloads a settings file whenever it changes on disk and
// delivers the parsed result on Updates. Parse failures go to Errors and the
// previous settings stay in effect.
type SettingsWatcher struct {
	Updates chan Settings
	Errors  chan error

	path    string
	watcher *fsnotify.Watcher
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// WatchSettings starts watching path. The parent directory is watched rather
// than the file itself so that atomic rename-on-save is picked up.
func WatchSettings(path string) (*SettingsWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	sw := &SettingsWatcher{
		Updates: make(chan Settings, 4),
		Errors:  make(chan error, 1),
		path:    abs,
		watcher: w,
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go sw.run()
	return sw, nil
}

// Path returns the absolute path being watched.
func (sw *SettingsWatcher) Path() string {
	return sw.path
}

// Close stops the watcher and closes Updates and Errors.
func (sw *SettingsWatcher) Close() error {
	var err error
	sw.once.Do(func() {
		close(sw.closeCh)
		err = sw.watcher.Close()
		<-sw.done
		close(sw.Updates)
		close(sw.Errors)
	})
	return err
}

// Poll returns the most recent pending settings without blocking.
func (sw *SettingsWatcher) Poll() (Settings, bool) {
	var (
		latest Settings
		ok     bool
	)
	for {
		select {
		case s, open := <-sw.Updates:
			if !open {
				return latest, ok
			}
			latest, ok = s, true
		default:
			return latest, ok
		}
	}
}

// run reloads the file once events for it have been quiet for
// settingsDebounce, so a save that truncates and then writes is read only
// after the last write.
func (sw *SettingsWatcher) run() {
	defer close(sw.done)

	timer := time.NewTimer(settingsDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != sw.path {
				continue
			}
			timer.Reset(settingsDebounce)
		case <-timer.C:
			s, err := LoadSettings(sw.path)
			if err != nil {
				sw.sendErr(err)
				continue
			}
			select {
			case sw.Updates <- s:
			case <-sw.closeCh:
				return
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			sw.sendErr(err)
		case <-sw.closeCh:
			return
		}
	}
}

// sendErr delivers err without blocking; if the previous error has not been
// read yet, err is dropped.
func (sw *SettingsWatcher) sendErr(err error) {
	select {
	case sw.Errors <- err:
	default:
	}
}
