package s3store

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ErrorKindPathNotValid ErrorKind = "path_not_valid"
	ErrorKindClient       ErrorKind = "client"
)

var (
	// ErrUploader matches every UploaderError.
	ErrUploader     = errors.New("s3 uploader error")
	ErrPathNotValid = errors.New("s3 path is not valid")
	ErrClient       = errors.New("s3 client error")
)

// UploaderError is a failed upload, with the object it was writing when
// known.
type UploaderError struct {
	Kind   ErrorKind
	Op     string
	Path   string
	Bucket string
	Key    string
	Err    error
}

func (e *UploaderError) Error() string {
	switch {
	case e.Bucket != "" && e.Key != "":
		return fmt.Sprintf("s3store.%s s3://%s/%s: %v", e.Op, e.Bucket, e.Key, e.Err)
	case e.Path != "":
		return fmt.Sprintf("s3store.%s %q: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("s3store.%s: %v", e.Op, e.Err)
}

func (e *UploaderError) Unwrap() error {
	return e.Err
}

func (e *UploaderError) Is(target error) bool {
	switch target {
	case ErrUploader:
		return true
	case ErrPathNotValid:
		return e.Kind == ErrorKindPathNotValid
	case ErrClient:
		return e.Kind == ErrorKindClient
	}
	return false
}

func newPathError(path string, err error) *UploaderError {
	return &UploaderError{Kind: ErrorKindPathNotValid, Op: "parsePath", Path: path, Err: err}
}

func newClientError(op, bucket, key string, err error) *UploaderError {
	return &UploaderError{Kind: ErrorKindClient, Op: op, Bucket: bucket, Key: key, Err: err}
}
