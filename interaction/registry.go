// registry.go implements the process cache of interaction instances.
//
// A Registry scans its extension directories for "<Name>.html" assets. Each
// asset whose Name was registered in the catalog becomes one interaction
// instance, stored under Name with the asset as its HTML body. The cache is
// populated lazily and rebuilt wholesale on Refresh.

package interaction

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"sync"
)

// assetExt is the extension of the files that mark an interaction module.
const assetExt = ".html"

// HTMLSeparator joins HTML bodies returned by Registry.HTML.
const HTMLSeparator = " \n"

// Registry caches one instance per discovered interaction type.
type Registry struct {
	mu    sync.Mutex
	fsys  fs.FS
	dirs  []string
	cache map[string]Interaction
	ids   []string // discovery order

	observe Observer
}

// NewRegistry creates a registry that discovers interactions in dirs, which
// are paths within fsys. Nothing is scanned until the first query.
func NewRegistry(fsys fs.FS, dirs []string, opts ...Option) *Registry {
	clean := make([]string, 0, len(dirs))
	for _, d := range dirs {
		clean = append(clean, path.Clean(filepath.ToSlash(d)))
	}
	r := &Registry{
		fsys:  fsys,
		dirs:  clean,
		cache: make(map[string]Interaction),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) notify(e Event) {
	if r.observe != nil {
		r.observe(e)
	}
}

// Dirs returns the extension directories the registry scans.
func (r *Registry) Dirs() []string {
	return slices.Clone(r.dirs)
}

// Refresh clears the cache and rebuilds it from the extension directories.
// On error the cache is left empty.
func (r *Registry) Refresh() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refresh()
}

func (r *Registry) refresh() error {
	r.cache = make(map[string]Interaction)
	r.ids = nil

	ev := Event{Type: EventRefresh, Dirs: len(r.dirs)}

	mods, err := discover(r.fsys, r.dirs)
	if err != nil {
		ev.Err = err
		r.notify(ev)
		return err
	}

	cache := make(map[string]Interaction, len(mods))
	ids := make([]string, 0, len(mods))
	skipped := 0
	for _, m := range mods {
		f, ok := lookup(m.name)
		if !ok {
			skipped++
			continue
		}
		body, err := fs.ReadFile(r.fsys, m.path)
		if err != nil {
			ev.Err = fmt.Errorf("loading interaction %s: %w", m.name, err)
			r.notify(ev)
			return ev.Err
		}
		inst := f()
		if isNil(inst) {
			ev.Err = fmt.Errorf("loading interaction %s: factory returned nil", m.name)
			r.notify(ev)
			return ev.Err
		}
		inst.base().bind(m.name, m.dir, string(body))
		cache[m.name] = inst
		ids = append(ids, m.name)
	}

	r.cache = cache
	r.ids = ids
	ev.Count, ev.Skipped = len(ids), skipped
	r.notify(ev)
	return nil
}

// isNil reports whether i is nil or a nil pointer in an interface.
func isNil(i Interaction) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// ensure populates an empty cache.
func (r *Registry) ensure() error {
	if len(r.cache) == 0 {
		return r.refresh()
	}
	return nil
}

// Len returns the number of cached interactions without triggering a scan.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cache)
}

// IDs returns the ids of all interactions in discovery order. Scans only if
// the cache is empty.
func (r *Registry) IDs() ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensure(); err != nil {
		return nil, err
	}
	return slices.Clone(r.ids), nil
}

// All returns every cached interaction in discovery order. Scans only if the
// cache is empty.
func (r *Registry) All() ([]Interaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensure(); err != nil {
		return nil, err
	}
	out := make([]Interaction, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.cache[id])
	}
	return out, nil
}

// Get returns the interaction stored under id. A missing id triggers one
// refresh; if it is still missing, the error wraps ErrNotFound.
func (r *Registry) Get(id string) (Interaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(id)
}

func (r *Registry) get(id string) (Interaction, error) {
	if i, ok := r.cache[id]; ok {
		return i, nil
	}
	if err := r.refresh(); err != nil {
		return nil, err
	}
	if i, ok := r.cache[id]; ok {
		return i, nil
	}
	err := fmt.Errorf("%w: %s", ErrNotFound, id)
	r.notify(Event{Type: EventMiss, Target: id, Err: err})
	return nil, err
}

// HTML returns the HTML bodies of ids in input order joined by HTMLSeparator.
func (r *Registry) HTML(ids []string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bodies := make([]string, 0, len(ids))
	for _, id := range ids {
		i, err := r.get(id)
		if err != nil {
			return "", err
		}
		bodies = append(bodies, i.HTMLBody())
	}
	return strings.Join(bodies, HTMLSeparator), nil
}

// DependencyIDs returns the union of the dependency ids of the given
// interactions. Each entry is unique; the order carries no meaning.
func (r *Registry) DependencyIDs(ids []string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set := make(map[string]struct{})
	for _, id := range ids {
		i, err := r.get(id)
		if err != nil {
			return nil, err
		}
		for _, dep := range i.base().Def.DependencyIDs {
			set[dep] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(set)), nil
}

// Configs returns the display configuration of every cached interaction,
// keyed by id.
func (r *Registry) Configs() (map[string]Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensure(); err != nil {
		return nil, err
	}
	out := make(map[string]Config, len(r.cache))
	for id, i := range r.cache {
		out[id] = ConfigOf(i)
	}
	return out, nil
}

// module is an asset found while scanning the extension directories.
type module struct {
	name string // file stem, the candidate interaction id
	dir  string
	path string
}

// discover lists the modules in dirs. A name found in an earlier directory
// shadows later ones. Hidden files are ignored, as are dirs that do not
// exist or are not directories.
func discover(fsys fs.FS, dirs []string) ([]module, error) {
	seen := make(map[string]bool)
	var mods []module
	for _, dir := range dirs {
		info, err := fs.Stat(fsys, dir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", dir, err)
		}
		if !info.IsDir() {
			continue
		}
		entries, err := fs.ReadDir(fsys, dir)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", dir, err)
		}
		for _, e := range entries {
			if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
				continue
			}
			name, ok := strings.CutSuffix(e.Name(), assetExt)
			if !ok || name == "" || seen[name] {
				continue
			}
			seen[name] = true
			mods = append(mods, module{
				name: name,
				dir:  dir,
				path: path.Join(dir, e.Name()),
			})
		}
	}
	return mods, nil
}
