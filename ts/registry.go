package ts

import (
	"io/fs"
	"sort"
	"sync"

	"github.com/npillmayer/clts/core"
	"github.com/npillmayer/clts/core/locate/inventories"
	"github.com/npillmayer/clts/sound/inventory"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
)

// SystemKey is the configuration key for the default transcription system.
const SystemKey = "clts.system"

// DefaultSystem is used if no system is configured.
const DefaultSystem = "bipa"

// Registry is a type for holding transcription systems, loaded on demand
// from an inventory file system.
type Registry struct {
	sync.Mutex
	fsys    fs.FS
	systems map[string]*System
}

var globalSystemRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton holding the transcription
// systems of the bundled inventory data.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalSystemRegistry = NewRegistry(inventory.Bundled())
	})
	return globalSystemRegistry
}

// NewRegistry creates a registry for systems found in fsys.
func NewRegistry(fsys fs.FS) *Registry {
	return &Registry{
		fsys:    fsys,
		systems: make(map[string]*System),
	}
}

// System returns the transcription system for id, loading it on first use.
// An unknown id is a configuration error wrapping ErrUnknownSystem.
func (r *Registry) System(id string) (*System, error) {
	r.Lock()
	defer r.Unlock()
	if ts, ok := r.systems[id]; ok {
		return ts, nil
	}
	if !inventory.IsSystem(r.fsys, id) {
		return nil, core.WrapError(ErrUnknownSystem, core.ECONFIG, "no transcription system %q", id)
	}
	ts, err := build(inventories.ResolveTables(r.fsys, id))
	if err != nil {
		return nil, err
	}
	r.systems[id] = ts
	return ts, nil
}

// Preload loads a set of systems concurrently. Systems already loaded are
// skipped.
func (r *Registry) Preload(ids ...string) error {
	r.Lock()
	defer r.Unlock()
	promises := make(map[string]inventories.TablesPromise, len(ids))
	for _, id := range ids {
		if _, ok := r.systems[id]; ok {
			continue
		}
		if !inventory.IsSystem(r.fsys, id) {
			return core.WrapError(ErrUnknownSystem, core.ECONFIG, "no transcription system %q", id)
		}
		promises[id] = inventories.ResolveTables(r.fsys, id)
	}
	for id, p := range promises {
		ts, err := build(p)
		if err != nil {
			return err
		}
		r.systems[id] = ts
	}
	return nil
}

// Systems lists the identifiers of all systems available to the registry.
func (r *Registry) Systems() []string {
	ids, err := inventory.Systems(r.fsys)
	if err != nil {
		tracer().Errorf("cannot list transcription systems: %v", err)
		return nil
	}
	sort.Strings(ids)
	return ids
}

// LogSystemList is a helper function to dump the list of loaded systems to
// the trace-file (log-level Info).
func (r *Registry) LogSystemList() {
	r.Lock()
	defer r.Unlock()
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- transcription systems ---")
	for k, v := range r.systems {
		tracer().Infof("system [%s] = %d symbols, %d generated", k, v.Len(), v.Generated())
	}
	tracer().Infof("-----------------------------")
	tracer().SetTraceLevel(level)
}

func build(p inventories.TablesPromise) (*System, error) {
	tables, err := p.Tables()
	if err != nil {
		return nil, err
	}
	return New(tables)
}

// Open creates a new, independent transcription system from the inventory
// data located by conf. If id is empty, the system given by configuration
// key "clts.system" is opened, defaulting to "bipa".
func Open(conf schuko.Configuration, id string) (*System, error) {
	if id == "" {
		if conf != nil {
			id = conf.GetString(SystemKey)
		}
		if id == "" {
			id = DefaultSystem
		}
	}
	fsys := inventories.Locate(conf)
	if !inventory.IsSystem(fsys, id) {
		tracer().Errorf("transcription system %q not found", id)
		return nil, core.WrapError(ErrUnknownSystem, core.ECONFIG, "no transcription system %q", id)
	}
	return build(inventories.ResolveTables(fsys, id))
}

// Default opens the configured default transcription system.
func Default(conf schuko.Configuration) (*System, error) {
	return Open(conf, "")
}
