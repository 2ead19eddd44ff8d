// Package errors provides the error types shared by the inventory
// comparison tool.
package errors

import (
	"errors"
	"fmt"
)

// Error wraps a failure with the operation and the inventory location it
// happened at. For S3 locations both Bucket and Key are set; for local
// files Key holds the filesystem path and Bucket is empty.
type Error struct {
	// Op is the operation that failed (e.g. "download", "open", "manifest")
	Op string

	// Bucket is the S3 bucket name (if applicable)
	Bucket string

	// Key is the object key or local file path (if applicable)
	Key string

	// Err is the underlying error
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Bucket != "" && e.Key != "" {
		return fmt.Sprintf("%s %s/%s: %v", e.Op, e.Bucket, e.Key, e.Err)
	}
	if e.Bucket != "" {
		return fmt.Sprintf("%s bucket %s: %v", e.Op, e.Bucket, e.Err)
	}
	if e.Key != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new Error with the given operation and underlying error.
func NewError(op string, err error) *Error {
	return &Error{
		Op:  op,
		Err: err,
	}
}

// NewObjectError creates a new Error with bucket and key context.
func NewObjectError(op, bucket, key string, err error) *Error {
	return &Error{
		Op:     op,
		Bucket: bucket,
		Key:    key,
		Err:    err,
	}
}

// NewFileError creates a new Error for a local file path.
func NewFileError(op, path string, err error) *Error {
	return &Error{
		Op:  op,
		Key: path,
		Err: err,
	}
}

// Sentinel errors for the failure classes the tool distinguishes.
// These can be used with errors.Is() for error checking.
var (
	// ErrNotFound indicates that an inventory file, manifest, object or
	// bucket does not exist
	ErrNotFound = errors.New("inventory: not found")

	// ErrAccessDenied indicates that the caller is not authorized to read
	// the inventory
	ErrAccessDenied = errors.New("inventory: access denied")

	// ErrFormat indicates that an inventory file or manifest is structurally
	// invalid and cannot be interpreted
	ErrFormat = errors.New("inventory: malformed input")
)

// IsNotFound checks if an error indicates a missing inventory, object or
// bucket. It handles both the bare sentinel and wrapped errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAccessDenied checks if an error indicates access was denied.
func IsAccessDenied(err error) bool {
	return errors.Is(err, ErrAccessDenied)
}

// IsFormat checks if an error indicates structurally invalid input.
func IsFormat(err error) bool {
	return errors.Is(err, ErrFormat)
}
