package s3client

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	inverr "github.com/base-media-cloud/s3-inventory-compare/errors"
)

// AWSClient implements Client on top of the transfer manager, which splits
// large inventory data files into ranged GETs.
type AWSClient struct {
	downloader *manager.Downloader
}

// NewAWSClient creates a client from a resolved AWS config. Extra S3
// options can be supplied, e.g. to point at an S3-compatible endpoint.
func NewAWSClient(cfg aws.Config, optFns ...func(*s3.Options)) *AWSClient {
	return newAWSClient(s3.NewFromConfig(cfg, optFns...))
}

func newAWSClient(api manager.DownloadAPIClient, optFns ...func(*manager.Downloader)) *AWSClient {
	return &AWSClient{downloader: manager.NewDownloader(api, optFns...)}
}

// Download fetches the whole object into memory and returns a reader over
// its contents.
func (c *AWSClient) Download(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	buf := manager.NewWriteAtBuffer(nil)
	_, err := c.downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, classify("download", bucket, key, err)
	}
	return io.NopCloser(bytes.NewReader(buf.Bytes())), nil
}

// classify maps SDK failures onto the tool's error classes. Codes that
// don't map stay wrapped with their location context.
func classify(op, bucket, key string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return inverr.NewObjectError(op, bucket, key, inverr.ErrNotFound)
		case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch", "ExpiredToken":
			return inverr.NewObjectError(op, bucket, key, inverr.ErrAccessDenied)
		}
	}
	return inverr.NewObjectError(op, bucket, key, err)
}
