package inventory

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	inverr "github.com/base-media-cloud/s3-inventory-compare/errors"
	"github.com/base-media-cloud/s3-inventory-compare/pkg/s3client"
)

// Fetcher opens inventory locations for reading.
type Fetcher interface {
	// Fetch returns the contents of loc. The caller closes the reader.
	Fetch(ctx context.Context, loc Location) (io.ReadCloser, error)
}

// NewFetcher builds a fetcher that reads local locations from disk and
// remote ones through client. client may be nil when every source is
// local.
func NewFetcher(client s3client.Client) Fetcher {
	return &fetcher{client: client}
}

type fetcher struct {
	client s3client.Client
}

func (f *fetcher) Fetch(ctx context.Context, loc Location) (io.ReadCloser, error) {
	if loc.IsLocal() {
		return openFile(loc.Key)
	}
	if f.client == nil {
		return nil, inverr.NewObjectError("fetch", loc.Bucket, loc.Key, errors.New("no S3 client configured"))
	}
	return f.client.Download(ctx, loc.Bucket, loc.Key)
}

func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, inverr.NewFileError("open", path, inverr.ErrNotFound)
	case errors.Is(err, fs.ErrPermission):
		return nil, inverr.NewFileError("open", path, inverr.ErrAccessDenied)
	case err != nil:
		return nil, inverr.NewFileError("open", path, err)
	}
	return f, nil
}
