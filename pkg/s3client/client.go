package s3client

import (
	"context"
	"io"
)

// Client is the object-store surface the inventory loader needs. AWSClient
// implements it against the AWS SDK; tests substitute fakes.
type Client interface {
	// Download fetches bucket/key in full and returns a reader over its
	// contents. Missing objects and permission failures are reported as
	// errors matching errors.ErrNotFound and errors.ErrAccessDenied.
	Download(ctx context.Context, bucket, key string) (io.ReadCloser, error)
}
