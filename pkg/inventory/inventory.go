// Package inventory locates, fetches and parses AWS S3 Inventory exports
// into in-memory snapshots keyed by object key.
package inventory

import (
	"strings"

	inverr "github.com/base-media-cloud/s3-inventory-compare/errors"
	"github.com/base-media-cloud/s3-inventory-compare/pkg/s3client"
)

// Source describes one side's inventory input as given on the command
// line.
type Source struct {
	// Bucket is the bucket under comparison. When it is set and Path is
	// not an s3:// URI, Path is treated as an object key inside it.
	Bucket string

	// Path is the inventory location: an object key, an s3:// URI or a
	// local file path.
	Path string

	// UseManifest marks Path as a manifest.json to expand rather than a
	// single CSV data file.
	UseManifest bool
}

// Remote reports whether resolving the source needs an S3 client.
func (s Source) Remote() bool {
	return s.Bucket != "" || strings.HasPrefix(s.Path, "s3://")
}

// Label returns the name used for this side in reports: the bucket when
// known, otherwise the path itself.
func (s Source) Label() string {
	if s.Bucket != "" {
		return s.Bucket
	}
	if strings.HasPrefix(s.Path, "s3://") {
		if bucket, _, err := s3client.ParseURI(s.Path); err == nil {
			return bucket
		}
	}
	return s.Path
}

// location resolves the file the source addresses directly.
func (s Source) location() (Location, error) {
	if strings.HasPrefix(s.Path, "s3://") {
		bucket, key, err := s3client.ParseURI(s.Path)
		if err != nil {
			return Location{}, inverr.NewError("resolve", err)
		}
		return Location{Bucket: bucket, Key: key}, nil
	}
	if s.Bucket != "" {
		return Location{Bucket: s.Bucket, Key: s.Path}, nil
	}
	return Location{Key: s.Path}, nil
}

// Location identifies one concrete inventory file. Bucket is empty for
// local files, in which case Key is a filesystem path.
type Location struct {
	Bucket string
	Key    string
}

// IsLocal reports whether the location is on the local filesystem.
func (l Location) IsLocal() bool {
	return l.Bucket == ""
}

func (l Location) String() string {
	if l.IsLocal() {
		return l.Key
	}
	return "s3://" + l.Bucket + "/" + l.Key
}

// locationError wraps err with the operation and location it happened at.
func locationError(op string, loc Location, err error) error {
	if loc.IsLocal() {
		return inverr.NewFileError(op, loc.Key, err)
	}
	return inverr.NewObjectError(op, loc.Bucket, loc.Key, err)
}

// Record is one data row of an inventory: an object key and its size in
// bytes.
type Record struct {
	Key  string
	Size int64
}

// Snapshot is one bucket's inventory folded into a key-to-size map.
// When a key appears more than once the last row wins, both within a data
// file and across the files of a manifest.
type Snapshot struct {
	// Objects maps object key to size in bytes.
	Objects map[string]int64

	// SkippedRows counts malformed rows dropped during parsing.
	SkippedRows int

	// Files counts the data files folded into the snapshot.
	Files int
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{Objects: make(map[string]int64)}
}

// Len returns the number of distinct object keys.
func (s *Snapshot) Len() int {
	return len(s.Objects)
}

// Add folds one record into the snapshot.
func (s *Snapshot) Add(rec Record) {
	s.Objects[rec.Key] = rec.Size
}
