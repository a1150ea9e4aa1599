package s3store

import (
	"errors"
	"regexp"
	"strings"
)

const scheme = "s3://"

var bucketName = regexp.MustCompile(`^[a-z0-9][a-z0-9.-]{1,61}[a-z0-9]$`)

// ParsePath splits s3://bucket/some/prefix into its bucket and prefix. The
// prefix has no leading or trailing slash and may be empty.
func ParsePath(s3Path string) (bucket, prefix string, err error) {
	trimmed := strings.TrimSpace(s3Path)
	if !strings.HasPrefix(trimmed, scheme) {
		return "", "", newPathError(s3Path, errors.New("path must start with s3://"))
	}

	bucket, prefix, _ = strings.Cut(strings.TrimPrefix(trimmed, scheme), "/")
	if !bucketName.MatchString(bucket) || strings.Contains(bucket, "..") {
		return "", "", newPathError(s3Path, errors.New("invalid bucket name"))
	}

	prefix = strings.Trim(prefix, "/")
	if strings.Contains(prefix, "//") || strings.Contains(prefix, "..") {
		return "", "", newPathError(s3Path, errors.New("invalid prefix"))
	}

	return bucket, prefix, nil
}

func joinKey(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "/")
}
