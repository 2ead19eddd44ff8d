package inventory

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
)

// Reader iterates over the rows of one inventory CSV data file. Rows that
// cannot be interpreted (too few columns, empty key, non-integer or
// negative size) are skipped and counted instead of failing the load.
type Reader struct {
	csv     *csv.Reader
	schema  Schema
	rec     Record
	err     error
	skipped int
}

// NewReader wraps r, which must yield plain CSV. Callers decompress
// gzipped files before constructing the reader.
func NewReader(r io.Reader, schema Schema) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true
	return &Reader{csv: cr, schema: schema}
}

// Next advances to the next valid record. It returns false at end of
// input or on an unrecoverable read error, which Err then reports.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}
	for {
		row, err := r.csv.Read()
		if err == io.EOF {
			return false
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				r.skipped++
				continue
			}
			r.err = err
			return false
		}

		if len(row) < r.schema.minFields() {
			r.skipped++
			continue
		}
		key := row[r.schema.KeyIndex]
		if key == "" {
			r.skipped++
			continue
		}
		size, err := strconv.ParseInt(strings.TrimSpace(row[r.schema.SizeIndex]), 10, 64)
		if err != nil || size < 0 {
			r.skipped++
			continue
		}

		r.rec = Record{Key: key, Size: size}
		return true
	}
}

// Record returns the record read by the last successful Next.
func (r *Reader) Record() Record {
	return r.rec
}

// Err returns the first unrecoverable error hit by Next, if any.
func (r *Reader) Err() error {
	return r.err
}

// Skipped returns the number of malformed rows dropped so far.
func (r *Reader) Skipped() int {
	return r.skipped
}
