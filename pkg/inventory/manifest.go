package inventory

import (
	"encoding/json"
	"fmt"
	"strings"

	inverr "github.com/base-media-cloud/s3-inventory-compare/errors"
)

// ManifestFile is one data file entry in an inventory manifest.
type ManifestFile struct {
	Key         string `json:"key"`
	Size        int64  `json:"size"`
	MD5Checksum string `json:"MD5checksum"`
}

// Manifest is the manifest.json AWS writes next to each inventory export.
type Manifest struct {
	SourceBucket      string         `json:"sourceBucket"`
	DestinationBucket string         `json:"destinationBucket"`
	Version           string         `json:"version"`
	CreationTimestamp string         `json:"creationTimestamp"`
	FileFormat        string         `json:"fileFormat"`
	FileSchema        string         `json:"fileSchema"`
	Files             []ManifestFile `json:"files"`
}

// ParseManifest decodes and validates manifest JSON. Only CSV exports are
// supported; ORC and Parquet manifests are rejected.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", inverr.ErrFormat, err)
	}
	if len(m.Files) == 0 {
		return nil, fmt.Errorf("%w: manifest lists no data files", inverr.ErrFormat)
	}
	if m.FileFormat != "" && !strings.EqualFold(m.FileFormat, "CSV") {
		return nil, fmt.Errorf("%w: unsupported inventory file format %q", inverr.ErrFormat, m.FileFormat)
	}
	return &m, nil
}

// Schema returns the column layout declared by the manifest, falling back
// to the standard layout when fileSchema is absent.
func (m *Manifest) Schema() (Schema, error) {
	if m.FileSchema == "" {
		return DefaultSchema(), nil
	}
	return parseFileSchema(m.FileSchema)
}
