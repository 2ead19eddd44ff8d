package inventory

import (
	"context"
	"io"
	"path/filepath"
)

// Locator resolves a Source into the concrete data files to load and the
// column schema to parse them with.
type Locator struct {
	fetcher Fetcher
}

// NewLocator creates a locator that reads manifests through f.
func NewLocator(f Fetcher) *Locator {
	return &Locator{fetcher: f}
}

// Resolve expands src. In direct mode the source names a single data file
// and the standard column layout applies. In manifest mode the manifest
// is fetched and its files entries become the data file list: keys listed
// by a remote manifest live in the manifest's own bucket, keys listed by
// a local manifest are resolved relative to the manifest's directory.
func (l *Locator) Resolve(ctx context.Context, src Source) ([]Location, Schema, error) {
	base, err := src.location()
	if err != nil {
		return nil, Schema{}, err
	}

	if !src.UseManifest {
		return []Location{base}, DefaultSchema(), nil
	}

	manifest, err := l.readManifest(ctx, base)
	if err != nil {
		return nil, Schema{}, err
	}
	schema, err := manifest.Schema()
	if err != nil {
		return nil, Schema{}, locationError("manifest", base, err)
	}

	locations := make([]Location, 0, len(manifest.Files))
	for _, file := range manifest.Files {
		locations = append(locations, resolveSibling(base, file.Key))
	}
	return locations, schema, nil
}

func (l *Locator) readManifest(ctx context.Context, base Location) (*Manifest, error) {
	rc, err := l.fetcher.Fetch(ctx, base)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, locationError("manifest", base, err)
	}
	manifest, err := ParseManifest(data)
	if err != nil {
		return nil, locationError("manifest", base, err)
	}
	return manifest, nil
}

// resolveSibling maps a manifest files[] key onto a loadable location.
func resolveSibling(base Location, key string) Location {
	if base.IsLocal() {
		return Location{Key: filepath.Join(filepath.Dir(base.Key), filepath.FromSlash(key))}
	}
	return Location{Bucket: base.Bucket, Key: key}
}
