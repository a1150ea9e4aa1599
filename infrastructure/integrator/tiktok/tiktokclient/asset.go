package tiktokclient

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cast"
)

const (
	pathImageUpload = "/file/image/ad/upload/"
	pathImageUpdate = "/file/image/ad/update/"
	pathImageInfo   = "/file/image/ad/info/"
	pathVideoUpload = "/file/video/ad/upload/"
	pathVideoUpdate = "/file/video/ad/update/"
	pathVideoInfo   = "/file/video/ad/info/"

	uploadByFile = "UPLOAD_BY_FILE"
)

// ErrUploadPathNotAllowed is returned, before any request, for UPLOAD_BY_FILE
// paths outside the configured upload directory.
var ErrUploadPathNotAllowed = errors.New("tiktok api: upload path not allowed")

func (c *TiktokClient) UploadImage(ctx context.Context, params map[string]any) (map[string]any, error) {
	return c.upload(ctx, pathImageUpload, params, "image_file", "image_signature")
}

func (c *TiktokClient) UpdateImageName(ctx context.Context, params map[string]any) (map[string]any, error) {
	return c.post(c.req(ctx), pathImageUpdate, params)
}

func (c *TiktokClient) GetImagesInfo(ctx context.Context, params map[string]any) (map[string]any, error) {
	return c.get(c.req(ctx), pathImageInfo, params)
}

func (c *TiktokClient) UploadVideo(ctx context.Context, params map[string]any) (map[string]any, error) {
	return c.upload(ctx, pathVideoUpload, params, "video_file", "video_signature")
}

func (c *TiktokClient) UpdateVideoName(ctx context.Context, params map[string]any) (map[string]any, error) {
	return c.post(c.req(ctx), pathVideoUpdate, params)
}

func (c *TiktokClient) GetVideosInfo(ctx context.Context, params map[string]any) (map[string]any, error) {
	return c.get(c.req(ctx), pathVideoInfo, params)
}

// upload sends UPLOAD_BY_FILE requests as multipart, reading fileField as a
// path relative to the upload directory. The other upload types are plain
// JSON posts.
func (c *TiktokClient) upload(ctx context.Context, path string, params map[string]any, fileField, signatureField string) (map[string]any, error) {
	if cast.ToString(params["upload_type"]) != uploadByFile {
		return c.post(c.req(ctx), path, params)
	}

	filePath := cast.ToString(params[fileField])
	if filePath == "" {
		return nil, fmt.Errorf("tiktok api: %s is required when upload_type is %s", fileField, uploadByFile)
	}

	filePath, err := c.resolveUploadPath(filePath)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("tiktok api: opening %s: %w", fileField, err)
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return nil, fmt.Errorf("tiktok api: detecting content type of %s: %w", filePath, err)
	}

	fields := make(map[string]string, len(params))
	for k, v := range params {
		if k == fileField || v == nil {
			continue
		}
		fields[k] = cast.ToString(v)
	}

	if fields[signatureField] == "" {
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		hash := md5.New()
		if _, err := io.Copy(hash, file); err != nil {
			return nil, fmt.Errorf("tiktok api: signing %s: %w", filePath, err)
		}
		fields[signatureField] = hex.EncodeToString(hash.Sum(nil))
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	res, err := handleError(c.req(ctx).
		SetMultipartFormData(fields).
		SetMultipartField(fileField, filepath.Base(filePath), mtype.String(), file).
		Post(path))
	if err != nil {
		return nil, err
	}

	return decode(res)
}

// resolveUploadPath maps name into the upload directory. Absolute names,
// names climbing out with "..", and symlinks pointing outside are refused.
func (c *TiktokClient) resolveUploadPath(name string) (string, error) {
	if c.uploadDir == "" {
		return "", fmt.Errorf("%w: file uploads are disabled", ErrUploadPathNotAllowed)
	}

	cleaned := filepath.Clean(name)
	if !filepath.IsLocal(cleaned) {
		return "", fmt.Errorf("%w: %q must be relative to the upload directory", ErrUploadPathNotAllowed, name)
	}

	root, err := filepath.EvalSymlinks(c.uploadDir)
	if err != nil {
		return "", fmt.Errorf("tiktok api: upload directory: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(filepath.Join(root, cleaned))
	if err != nil {
		return "", fmt.Errorf("tiktok api: opening %q: %w", name, err)
	}

	rel, err := filepath.Rel(root, resolved)
	if err != nil || !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %q resolves outside the upload directory", ErrUploadPathNotAllowed, name)
	}

	return resolved, nil
}
