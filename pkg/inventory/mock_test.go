package inventory

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"testing"

	inverr "github.com/base-media-cloud/s3-inventory-compare/errors"
)

// fakeFetcher serves inventory files from an in-memory map keyed by
// Location.String().
type fakeFetcher struct {
	files map[string][]byte
	errs  map[string]error
}

func (f *fakeFetcher) Fetch(_ context.Context, loc Location) (io.ReadCloser, error) {
	if err, ok := f.errs[loc.String()]; ok {
		return nil, err
	}
	data, ok := f.files[loc.String()]
	if !ok {
		return nil, locationError("fetch", loc, inverr.ErrNotFound)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// fakeClient implements s3client.Client over an in-memory map keyed by
// bucket/key.
type fakeClient struct {
	objects map[string][]byte
}

func (c *fakeClient) Download(_ context.Context, bucket, key string) (io.ReadCloser, error) {
	data, ok := c.objects[bucket+"/"+key]
	if !ok {
		return nil, inverr.NewObjectError("download", bucket, key, inverr.ErrNotFound)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}
