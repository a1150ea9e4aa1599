package s3store

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/vfg2006/tiktok-manager-api/internal/domain"
	"github.com/vfg2006/tiktok-manager-api/pkg/utils"
)

//go:generate mockgen -source=uploader.go -destination=mocks/uploader.go -package=mocks

// Uploader archives fetched TikTok records as JSON objects.
type Uploader interface {
	UploadResourceDetails(ctx context.Context, records []map[string]any, kind domain.ResourceType, createdAt time.Time) (string, error)
	UploadResourcePerformance(ctx context.Context, records []map[string]any, kind domain.ResourceType, createdAt time.Time) ([]string, error)
}

// UploaderFactory opens an uploader rooted at an s3://bucket/prefix path.
type UploaderFactory func(s3Path string) (Uploader, error)

func NewUploaderFactory(client S3API) UploaderFactory {
	return func(s3Path string) (Uploader, error) {
		uploader, err := NewUploader(client, s3Path)
		if err != nil {
			return nil, err
		}
		return uploader, nil
	}
}

const (
	rootFolder      = "tiktok"
	timestampLayout = "20060102T150405Z"
	statDayField    = "stat_time_day"
	jsonContentType = "application/json"
)

type S3Uploader struct {
	client S3API
	bucket string
	prefix string
}

func NewUploader(client S3API, s3Path string) (*S3Uploader, error) {
	bucket, prefix, err := ParsePath(s3Path)
	if err != nil {
		return nil, err
	}

	return &S3Uploader{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}, nil
}

// UploadResourceDetails writes every record in one object and returns its
// s3:// path. An empty list still produces an object.
func (u *S3Uploader) UploadResourceDetails(ctx context.Context, records []map[string]any, kind domain.ResourceType, createdAt time.Time) (string, error) {
	createdAt = createdAt.UTC()

	key := joinKey(
		u.prefix,
		rootFolder,
		kind.String(),
		"details",
		createdAt.Format("2006"),
		createdAt.Format("01"),
		createdAt.Format("02"),
		fmt.Sprintf("%s_details_%s.json", kind, createdAt.Format(timestampLayout)),
	)

	if records == nil {
		records = []map[string]any{}
	}

	return u.put(ctx, key, records)
}

// UploadResourcePerformance writes one object per report day, ordered by day.
// Records without a readable stat_time_day fall under the creation day.
func (u *S3Uploader) UploadResourcePerformance(ctx context.Context, records []map[string]any, kind domain.ResourceType, createdAt time.Time) ([]string, error) {
	createdAt = createdAt.UTC()

	partitions := make(map[string][]map[string]any)
	for _, record := range records {
		day := statDay(record, createdAt)
		partitions[day] = append(partitions[day], record)
	}

	days := make([]string, 0, len(partitions))
	for day := range partitions {
		days = append(days, day)
	}
	sort.Strings(days)

	paths := make([]string, 0, len(days))
	for _, day := range days {
		key := joinKey(
			u.prefix,
			rootFolder,
			kind.String(),
			"performance",
			"date="+day,
			fmt.Sprintf("%s_performance_%s.json", kind, createdAt.Format(timestampLayout)),
		)

		path, err := u.put(ctx, key, partitions[day])
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func (u *S3Uploader) put(ctx context.Context, key string, records []map[string]any) (string, error) {
	body, err := utils.JSON.Marshal(records)
	if err != nil {
		return "", newClientError("encode", u.bucket, key, err)
	}

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(jsonContentType),
	})
	if err != nil {
		return "", newClientError("upload", u.bucket, key, err)
	}

	path := fmt.Sprintf("%s%s/%s", scheme, u.bucket, key)
	logrus.WithFields(logrus.Fields{
		"path":    path,
		"records": len(records),
	}).Debug("s3store: object uploaded")

	return path, nil
}

func statDay(record map[string]any, fallback time.Time) string {
	value := cast.ToString(record[statDayField])
	if len(value) >= len(utils.TiktokDateLayout) {
		if day, err := utils.ParseDate(value[:len(utils.TiktokDateLayout)]); err == nil {
			return utils.FormatTiktokDate(*day)
		}
	}
	return utils.FormatTiktokDate(fallback)
}
