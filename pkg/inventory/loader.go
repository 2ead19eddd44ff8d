package inventory

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"strings"

	inverr "github.com/base-media-cloud/s3-inventory-compare/errors"
	"github.com/base-media-cloud/s3-inventory-compare/internal/logging"
)

// Loader builds snapshots from inventory sources.
type Loader struct {
	locator *Locator
	fetcher Fetcher
	log     *logging.Logger
}

// NewLoader creates a loader reading through f. A nil log disables
// progress output.
func NewLoader(f Fetcher, log *logging.Logger) *Loader {
	if log == nil {
		log = logging.NewLoggerWithWriter(true, io.Discard)
	}
	return &Loader{locator: NewLocator(f), fetcher: f, log: log}
}

// Load resolves src and folds every resolved data file into one snapshot.
func (l *Loader) Load(ctx context.Context, src Source) (*Snapshot, error) {
	locations, schema, err := l.locator.Resolve(ctx, src)
	if err != nil {
		return nil, err
	}

	snapshot := NewSnapshot()
	for _, loc := range locations {
		if err := l.loadFile(ctx, loc, schema, snapshot); err != nil {
			return nil, err
		}
	}

	if snapshot.SkippedRows > 0 {
		l.log.Warn("skipped %d malformed inventory rows for %s", snapshot.SkippedRows, src.Label())
	}
	return snapshot, nil
}

func (l *Loader) loadFile(ctx context.Context, loc Location, schema Schema, snapshot *Snapshot) error {
	rc, err := l.fetcher.Fetch(ctx, loc)
	if err != nil {
		return err
	}
	defer rc.Close()

	var src io.Reader = rc
	if strings.HasSuffix(loc.Key, ".gz") {
		gz, err := gzip.NewReader(rc)
		if err != nil {
			return locationError("decompress", loc, fmt.Errorf("%w: %v", inverr.ErrFormat, err))
		}
		defer gz.Close()
		src = gz
	}

	reader := NewReader(src, schema)
	rows := 0
	for reader.Next() {
		snapshot.Add(reader.Record())
		rows++
	}
	if err := reader.Err(); err != nil {
		return locationError("read", loc, err)
	}

	snapshot.SkippedRows += reader.Skipped()
	snapshot.Files++
	l.log.Info("read %d objects from %s", rows, loc)
	return nil
}
