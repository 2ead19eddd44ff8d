package report

import (
	"github.com/base-media-cloud/s3-inventory-compare/pkg/compare"
)

// Document is the machine-readable comparison report.
type Document struct {
	Bucket1        string     `json:"bucket1"`
	Bucket2        string     `json:"bucket2"`
	Summary        Totals     `json:"summary"`
	OnlyInBucket1  []string   `json:"onlyInBucket1"`
	OnlyInBucket2  []string   `json:"onlyInBucket2"`
	SizeMismatches []Mismatch `json:"sizeMismatches"`
}

// Totals aggregates the comparison counts.
type Totals struct {
	TotalBucket1   int  `json:"totalBucket1"`
	TotalBucket2   int  `json:"totalBucket2"`
	CommonObjects  int  `json:"commonObjects"`
	MatchedObjects int  `json:"matchedObjects"`
	OnlyInBucket1  int  `json:"onlyInBucket1"`
	OnlyInBucket2  int  `json:"onlyInBucket2"`
	SizeMismatches int  `json:"sizeMismatches"`
	SkippedRows1   int  `json:"skippedRowsBucket1"`
	SkippedRows2   int  `json:"skippedRowsBucket2"`
	InSync         bool `json:"inSync"`
}

// Mismatch is one size difference in the JSON report.
type Mismatch struct {
	Key         string `json:"key"`
	Bucket1Size int64  `json:"bucket1Size"`
	Bucket2Size int64  `json:"bucket2Size"`
}

// Build assembles the JSON document for res. Matched keys appear only as
// a count; difference sections carry their full key lists.
func Build(res compare.Result, sum Summary) Document {
	mismatches := make([]Mismatch, 0, len(res.SizeMismatches))
	for _, m := range res.SizeMismatches {
		mismatches = append(mismatches, Mismatch{
			Key:         m.Key,
			Bucket1Size: m.Size1,
			Bucket2Size: m.Size2,
		})
	}

	return Document{
		Bucket1: sum.Bucket1,
		Bucket2: sum.Bucket2,
		Summary: Totals{
			TotalBucket1:   sum.Total1,
			TotalBucket2:   sum.Total2,
			CommonObjects:  res.CommonCount(),
			MatchedObjects: len(res.Matched),
			OnlyInBucket1:  len(res.OnlyInFirst),
			OnlyInBucket2:  len(res.OnlyInSecond),
			SizeMismatches: len(res.SizeMismatches),
			SkippedRows1:   sum.Skipped1,
			SkippedRows2:   sum.Skipped2,
			InSync:         res.InSync(),
		},
		OnlyInBucket1:  append([]string{}, res.OnlyInFirst...),
		OnlyInBucket2:  append([]string{}, res.OnlyInSecond...),
		SizeMismatches: mismatches,
	}
}
