package inventory

import (
	"fmt"
	"strings"

	inverr "github.com/base-media-cloud/s3-inventory-compare/errors"
)

// Schema gives the CSV column positions of the fields the comparison
// needs.
type Schema struct {
	KeyIndex  int
	SizeIndex int
}

// DefaultSchema matches the standard S3 Inventory CSV layout:
// Bucket, Key, VersionId, IsLatest, IsDeleteMarker, Size, ...
func DefaultSchema() Schema {
	return Schema{KeyIndex: 1, SizeIndex: 5}
}

// minFields is the shortest row the schema can read.
func (s Schema) minFields() int {
	if s.KeyIndex > s.SizeIndex {
		return s.KeyIndex + 1
	}
	return s.SizeIndex + 1
}

// parseFileSchema resolves column positions from a manifest's fileSchema
// string, e.g. "Bucket, Key, VersionId, IsLatest, IsDeleteMarker, Size".
func parseFileSchema(fileSchema string) (Schema, error) {
	schema := Schema{KeyIndex: -1, SizeIndex: -1}
	for i, column := range strings.Split(fileSchema, ",") {
		switch strings.TrimSpace(column) {
		case "Key":
			schema.KeyIndex = i
		case "Size":
			schema.SizeIndex = i
		}
	}
	if schema.KeyIndex < 0 || schema.SizeIndex < 0 {
		return Schema{}, fmt.Errorf("%w: file schema %q lacks a Key or Size column", inverr.ErrFormat, fileSchema)
	}
	return schema, nil
}
