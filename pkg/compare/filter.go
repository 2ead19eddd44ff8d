package compare

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/base-media-cloud/s3-inventory-compare/pkg/inventory"
)

// Filter returns a snapshot restricted to keys surviving the include and
// exclude patterns. Patterns use doublestar syntax and match the full
// object key. When includes is non-empty a key must match at least one of
// them; excludes are applied afterwards. With no patterns the snapshot is
// returned unchanged.
func Filter(snapshot *inventory.Snapshot, includes, excludes []string) (*inventory.Snapshot, error) {
	if snapshot == nil || (len(includes) == 0 && len(excludes) == 0) {
		return snapshot, nil
	}

	filtered := inventory.NewSnapshot()
	filtered.SkippedRows = snapshot.SkippedRows
	filtered.Files = snapshot.Files

	for key, size := range snapshot.Objects {
		if len(includes) > 0 {
			included, err := matchAny(key, includes)
			if err != nil {
				return nil, err
			}
			if !included {
				continue
			}
		}
		excluded, err := matchAny(key, excludes)
		if err != nil {
			return nil, err
		}
		if excluded {
			continue
		}
		filtered.Objects[key] = size
	}
	return filtered, nil
}

func matchAny(key string, patterns []string) (bool, error) {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, key)
		if err != nil {
			return false, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}
