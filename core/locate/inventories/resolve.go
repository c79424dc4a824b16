package inventories

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/npillmayer/clts/core"
	"github.com/npillmayer/clts/sound/inventory"
	"github.com/npillmayer/schuko"
)

// DataKey is the configuration key for an external inventory folder.
const DataKey = "clts.data"

type resourceType int

// resource types
const (
	unknownResourceType resourceType = iota
	systemResourceType
	tableResourceType
)

// NotFound returns an application error for a missing resource.
func NotFound(res string, rtype resourceType) error {
	e := fmt.Errorf("resource missing: %v", res)
	var s string
	switch rtype {
	case systemResourceType:
		s = fmt.Sprintf("transcription system not found: %s", res)
	case tableResourceType:
		s = fmt.Sprintf("inventory table not found: %s", res)
	default:
		s = fmt.Sprintf("resource not found: %s", res)
	}
	return core.WrapError(e, core.EMISSING, s)
}

// Locate returns the file system holding inventory data. If conf is nil or
// does not name an existing folder, the bundled data is returned.
func Locate(conf schuko.Configuration) fs.FS {
	if conf == nil {
		return inventory.Bundled()
	}
	dir := conf.GetString(DataKey)
	if dir == "" {
		return inventory.Bundled()
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		tracer().Errorf("inventory folder %q not usable, falling back to bundled data", dir)
		return inventory.Bundled()
	}
	tracer().Infof("inventory data located in %s", dir)
	return os.DirFS(dir)
}

// --- Tables ----------------------------------------------------------------

type tablesPlusErr struct {
	tables *inventory.Tables
	err    error
}

// TablesPromise is a promise for the inventory tables of a system.
type TablesPromise interface {
	Tables() (*inventory.Tables, error)
}

type tablesLoader struct {
	await func() (*inventory.Tables, error)
}

func (loader tablesLoader) Tables() (*inventory.Tables, error) {
	return loader.await()
}

// ResolveTables starts loading the tables of system id in the background.
// A missing system results in an error with code core.EMISSING.
func ResolveTables(fsys fs.FS, id string) TablesPromise {
	ch := make(chan tablesPlusErr, 1)
	go func(ch chan<- tablesPlusErr) {
		result := tablesPlusErr{}
		if !inventory.IsSystem(fsys, id) {
			result.err = NotFound(id, systemResourceType)
		} else {
			result.tables, result.err = inventory.Load(fsys, id)
		}
		ch <- result
		close(ch)
	}(ch)
	loader := tablesLoader{}
	var result tablesPlusErr
	done := false
	loader.await = func() (*inventory.Tables, error) {
		if !done {
			result = <-ch
			done = true
		}
		return result.tables, result.err
	}
	return loader
}

// ReadTable reads an auxiliary table (sound classes, transcription data)
// from fsys.
func ReadTable(fsys fs.FS, name string) ([]inventory.Record, error) {
	if _, err := fs.Stat(fsys, name); err != nil {
		return nil, NotFound(name, tableResourceType)
	}
	return inventory.ReadRecords(fsys, name)
}
