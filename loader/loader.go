package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/spektr-org/momwatch/dataset"
	"github.com/spektr-org/momwatch/engine"
	"github.com/spektr-org/momwatch/helpers"
	"github.com/spektr-org/momwatch/schema"
)

// ============================================================================
// LOADER - Memoized dataset reads
// ============================================================================
// A dataset is read and parsed at most once per process. Later loads of the
// same identifier return the cached Table without touching the Reader, so
// edits to the file after the first successful load are never seen.
// Failed loads are not cached; the next request retries the read.
// ============================================================================

// Reader fetches the raw bytes of a dataset file.
type Reader interface {
	Read(name string) ([]byte, error)
}

// FileReader reads datasets from a directory on disk.
type FileReader struct {
	Dir string
}

// Read returns the contents of Dir/name.
func (r FileReader) Read(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(r.Dir, name))
}

// LoadError reports a dataset that could not be read or parsed.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("Error loading %s: %v", e.File, e.Err)
}

// Cause lets errors.Cause reach the underlying read or parse failure.
func (e *LoadError) Cause() error { return e.Err }

func (e *LoadError) Unwrap() error { return e.Err }

type entry struct {
	table  *engine.Table
	schema *schema.Config
}

// Loader caches parsed datasets by identifier. Safe for concurrent use.
type Loader struct {
	reader Reader

	mu    sync.Mutex
	cache map[dataset.ID]*entry
}

// New returns a Loader reading through r.
func New(r Reader) *Loader {
	return &Loader{
		reader: r,
		cache:  make(map[dataset.ID]*entry),
	}
}

// NewFromDir returns a Loader over the datasets stored in dir.
func NewFromDir(dir string) *Loader {
	return New(FileReader{Dir: dir})
}

// Load returns the Table for id, reading it on first use.
// Any failure is a *LoadError naming the file.
func (l *Loader) Load(id dataset.ID) (*engine.Table, error) {
	e, err := l.get(id)
	if err != nil {
		return nil, err
	}
	return e.table, nil
}

// Schema returns the column metadata discovered when id was loaded.
func (l *Loader) Schema(id dataset.ID) (*schema.Config, error) {
	e, err := l.get(id)
	if err != nil {
		return nil, err
	}
	return e.schema, nil
}

// Cached reports whether id has been loaded successfully.
func (l *Loader) Cached(id dataset.ID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.cache[id]
	return ok
}

func (l *Loader) get(id dataset.ID) (*entry, error) {
	file := id.FileName()
	logger := log.WithField("dataset", file)

	// Held across the read so concurrent first requests read once.
	l.mu.Lock()
	defer l.mu.Unlock()

	if e, ok := l.cache[id]; ok {
		logger.Debug("dataset cache hit")
		return e, nil
	}

	data, err := l.reader.Read(file)
	if err != nil {
		logger.WithError(err).Warn("dataset read failed")
		return nil, &LoadError{File: file, Err: errors.Wrap(err, "read failed")}
	}

	table, sch, err := helpers.ParseCSV(file, data)
	if err != nil {
		logger.WithError(err).Warn("dataset parse failed")
		return nil, &LoadError{File: file, Err: errors.Wrap(err, "parse failed")}
	}

	e := &entry{table: table, schema: sch}
	l.cache[id] = e
	logger.WithFields(log.Fields{
		"rows":    table.Len(),
		"columns": len(table.ColumnNames()),
	}).Info("dataset loaded")
	return e, nil
}
