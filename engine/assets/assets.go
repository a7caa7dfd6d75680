package assets

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/quill/engine/assets/loaders"
	"github.com/spaghettifunk/quill/engine/core"
	"github.com/spaghettifunk/quill/engine/renderer/metadata"
)

type DefInfo struct {
	Path       string
	Def        *metadata.RenderDef
	LastLoaded time.Time
}

/**
 * @brief Loads render definitions from a directory of TOML files and keeps
 * them fresh: the directory is watched and changed files are reloaded in
 * place. Consumers can subscribe to reloads to re-register geometry.
 */
type DefManager struct {
	defs   map[string]*DefInfo
	byPath map[string]string
	loader *loaders.RenderDefLoader

	mutex sync.RWMutex

	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
	onReload []func(def *metadata.RenderDef)
}

func NewDefManager() (*DefManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &DefManager{
		defs:     make(map[string]*DefInfo),
		byPath:   make(map[string]string),
		loader:   &loaders.RenderDefLoader{},
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}, nil
}

// Initialize loads every definition under defsDir and starts watching the
// tree for changes.
func (dm *DefManager) Initialize(defsDir string) error {
	go dm.start()

	return dm.watchTree(defsDir)
}

// watchTree adds every directory under root to the watcher and loads the
// definitions already present.
func (dm *DefManager) watchTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return dm.fsnotify.Add(path)
		}
		if isDefFile(path) {
			if err := dm.loadFile(path); err != nil {
				core.LogWarn("skipping render definition '%s': %s", path, err.Error())
			}
		}
		return nil
	})
}

// OnReload registers a callback invoked whenever a definition is loaded or
// reloaded, including during Initialize.
func (dm *DefManager) OnReload(fn func(def *metadata.RenderDef)) {
	dm.mutex.Lock()
	defer dm.mutex.Unlock()
	dm.onReload = append(dm.onReload, fn)
}

// Get returns the definition with the given name.
func (dm *DefManager) Get(name string) (*metadata.RenderDef, bool) {
	dm.mutex.RLock()
	defer dm.mutex.RUnlock()
	info, ok := dm.defs[name]
	if !ok {
		return nil, false
	}
	return info.Def, true
}

// Names returns the names of all loaded definitions.
func (dm *DefManager) Names() []string {
	dm.mutex.RLock()
	defer dm.mutex.RUnlock()
	names := make([]string, 0, len(dm.defs))
	for name := range dm.defs {
		names = append(names, name)
	}
	return names
}

func (dm *DefManager) Shutdown() error {
	dm.mutex.Lock()
	defer dm.mutex.Unlock()
	if dm.isClosed {
		return errors.New("def manager instance already closed")
	}
	dm.isClosed = true
	close(dm.done)
	return dm.fsnotify.Close()
}

func (dm *DefManager) start() {
	for {
		select {
		case event, ok := <-dm.fsnotify.Events:
			if !ok {
				return
			}
			dm.handleEvent(event)
		case err, ok := <-dm.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("def manager watch error: %s", err.Error())
		case <-dm.done:
			return
		}
	}
}

func (dm *DefManager) handleEvent(event fsnotify.Event) {
	if event.Op.Has(fsnotify.Create) {
		// A directory created under the watched tree must be watched too,
		// along with anything already inside it.
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := dm.watchTree(event.Name); err != nil {
				core.LogWarn("failed to watch new directory '%s': %s", event.Name, err.Error())
			}
			return
		}
	}
	if !isDefFile(event.Name) {
		return
	}
	switch {
	case event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write):
		if err := dm.loadFile(event.Name); err != nil {
			core.LogWarn("failed to reload render definition '%s': %s", event.Name, err.Error())
		}
	case event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename):
		dm.removeByPath(event.Name)
	}
}

func (dm *DefManager) loadFile(path string) error {
	def, err := dm.loader.Load(path)
	if err != nil {
		return err
	}

	dm.mutex.Lock()
	// A renamed definition leaves no stale entry behind.
	if old, ok := dm.byPath[path]; ok && old != def.Name {
		delete(dm.defs, old)
	}
	dm.defs[def.Name] = &DefInfo{
		Path:       path,
		Def:        def,
		LastLoaded: time.Now(),
	}
	dm.byPath[path] = def.Name
	callbacks := append([]func(*metadata.RenderDef){}, dm.onReload...)
	dm.mutex.Unlock()

	for _, fn := range callbacks {
		fn(def)
	}
	core.LogDebug("loaded render definition '%s' from '%s'", def.Name, path)
	return nil
}

func (dm *DefManager) removeByPath(path string) {
	dm.mutex.Lock()
	defer dm.mutex.Unlock()
	if name, ok := dm.byPath[path]; ok {
		delete(dm.defs, name)
		delete(dm.byPath, path)
		core.LogDebug("removed render definition '%s'", name)
	}
}

func isDefFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
