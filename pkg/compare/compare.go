// Package compare partitions two inventory snapshots into matching and
// differing object sets.
package compare

import (
	"sort"

	"github.com/base-media-cloud/s3-inventory-compare/pkg/inventory"
)

// SizeMismatch is an object present in both snapshots with different
// sizes.
type SizeMismatch struct {
	Key   string
	Size1 int64
	Size2 int64
}

// Result partitions the union of two snapshots' keys. Every key lands in
// exactly one of the four sets, each sorted lexicographically.
type Result struct {
	OnlyInFirst    []string
	OnlyInSecond   []string
	SizeMismatches []SizeMismatch
	Matched        []string
}

// Snapshots compares two inventory snapshots by key and size. Nil
// snapshots compare as empty.
func Snapshots(first, second *inventory.Snapshot) Result {
	var firstObjects, secondObjects map[string]int64
	if first != nil {
		firstObjects = first.Objects
	}
	if second != nil {
		secondObjects = second.Objects
	}

	result := Result{
		OnlyInFirst:    []string{},
		OnlyInSecond:   []string{},
		SizeMismatches: []SizeMismatch{},
		Matched:        []string{},
	}

	for key, size := range firstObjects {
		otherSize, exists := secondObjects[key]
		if !exists {
			result.OnlyInFirst = append(result.OnlyInFirst, key)
			continue
		}
		if size == otherSize {
			result.Matched = append(result.Matched, key)
		} else {
			result.SizeMismatches = append(result.SizeMismatches, SizeMismatch{
				Key:   key,
				Size1: size,
				Size2: otherSize,
			})
		}
	}

	for key := range secondObjects {
		if _, exists := firstObjects[key]; !exists {
			result.OnlyInSecond = append(result.OnlyInSecond, key)
		}
	}

	sortResult(&result)
	return result
}

// InSync reports whether the snapshots describe the same object set with
// the same sizes.
func (r Result) InSync() bool {
	return len(r.OnlyInFirst) == 0 && len(r.OnlyInSecond) == 0 && len(r.SizeMismatches) == 0
}

// CommonCount returns the number of keys present in both snapshots.
func (r Result) CommonCount() int {
	return len(r.Matched) + len(r.SizeMismatches)
}

// DiffCount returns the number of keys that differ between the snapshots.
func (r Result) DiffCount() int {
	return len(r.OnlyInFirst) + len(r.OnlyInSecond) + len(r.SizeMismatches)
}

func sortResult(result *Result) {
	sort.Strings(result.OnlyInFirst)
	sort.Strings(result.OnlyInSecond)
	sort.Strings(result.Matched)
	sort.Slice(result.SizeMismatches, func(i, j int) bool {
		return result.SizeMismatches[i].Key < result.SizeMismatches[j].Key
	})
}
