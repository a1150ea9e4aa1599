package s3store

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/tiktok-manager-api/internal/domain"
	"github.com/vfg2006/tiktok-manager-api/pkg/utils"
)

type putCall struct {
	bucket      string
	key         string
	contentType string
	body        []byte
}

type fakeS3 struct {
	calls []putCall
	err   error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}

	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}

	f.calls = append(f.calls, putCall{
		bucket:      aws.ToString(params.Bucket),
		key:         aws.ToString(params.Key),
		contentType: aws.ToString(params.ContentType),
		body:        body,
	})
	return &s3.PutObjectOutput{}, nil
}

func decodeRecords(t *testing.T, body []byte) []map[string]any {
	t.Helper()

	var records []map[string]any
	require.NoError(t, utils.JSON.Unmarshal(body, &records))
	return records
}

var createdAt = time.Date(2024, 1, 15, 6, 30, 5, 0, time.UTC)

func TestParsePath(t *testing.T) {
	tests := []struct {
		path       string
		wantBucket string
		wantPrefix string
		wantErr    bool
	}{
		{path: "s3://my-bucket/exports/tiktok/", wantBucket: "my-bucket", wantPrefix: "exports/tiktok"},
		{path: "s3://my-bucket", wantBucket: "my-bucket"},
		{path: "s3://my-bucket/", wantBucket: "my-bucket"},
		{path: "my-bucket/exports", wantErr: true},
		{path: "s3://", wantErr: true},
		{path: "s3://Upper_Case/x", wantErr: true},
		{path: "s3://ok-bucket/a//b", wantErr: true},
		{path: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			bucket, prefix, err := ParsePath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPathNotValid)
				assert.ErrorIs(t, err, ErrUploader)
				assert.NotErrorIs(t, err, ErrClient)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantPrefix, prefix)
		})
	}
}

func TestUploadResourceDetails(t *testing.T) {
	client := &fakeS3{}
	uploader, err := NewUploader(client, "s3://reports/exports")
	require.NoError(t, err)

	records := []map[string]any{
		{"campaign_id": "c1", "advertiser_id": "adv1"},
		{"campaign_id": "c2", "advertiser_id": "adv2"},
	}

	path, err := uploader.UploadResourceDetails(context.Background(), records, domain.ResourceTypeCampaign, createdAt)

	require.NoError(t, err)
	wantKey := "exports/tiktok/campaign/details/2024/01/15/campaign_details_20240115T063005Z.json"
	assert.Equal(t, "s3://reports/"+wantKey, path)

	require.Len(t, client.calls, 1)
	assert.Equal(t, "reports", client.calls[0].bucket)
	assert.Equal(t, wantKey, client.calls[0].key)
	assert.Equal(t, "application/json", client.calls[0].contentType)
	assert.Equal(t, records, decodeRecords(t, client.calls[0].body))
}

func TestUploadResourceDetails_EmptyListStillWrites(t *testing.T) {
	client := &fakeS3{}
	uploader, err := NewUploader(client, "s3://reports")
	require.NoError(t, err)

	path, err := uploader.UploadResourceDetails(context.Background(), nil, domain.ResourceTypeAd, createdAt)

	require.NoError(t, err)
	assert.Equal(t, "s3://reports/tiktok/ad/details/2024/01/15/ad_details_20240115T063005Z.json", path)
	require.Len(t, client.calls, 1)
	assert.Equal(t, "[]", string(client.calls[0].body))
	assert.Equal(t, "application/json", client.calls[0].contentType)
}

func TestUploadResourcePerformance(t *testing.T) {
	client := &fakeS3{}
	uploader, err := NewUploader(client, "s3://reports/exports")
	require.NoError(t, err)

	records := []map[string]any{
		{"ad_id": "a1", "stat_time_day": "2024-01-14 00:00:00", "spend": "1.00"},
		{"ad_id": "a2", "stat_time_day": "2024-01-13 00:00:00", "spend": "2.00"},
		{"ad_id": "a3", "stat_time_day": "2024-01-14 00:00:00", "spend": "3.00"},
		{"ad_id": "a4", "spend": "4.00"},
	}

	paths, err := uploader.UploadResourcePerformance(context.Background(), records, domain.ResourceTypeAd, createdAt)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"s3://reports/exports/tiktok/ad/performance/date=2024-01-13/ad_performance_20240115T063005Z.json",
		"s3://reports/exports/tiktok/ad/performance/date=2024-01-14/ad_performance_20240115T063005Z.json",
		"s3://reports/exports/tiktok/ad/performance/date=2024-01-15/ad_performance_20240115T063005Z.json",
	}, paths)

	require.Len(t, client.calls, 3)
	for _, call := range client.calls {
		assert.Equal(t, "application/json", call.contentType)
	}
	assert.Len(t, decodeRecords(t, client.calls[0].body), 1)
	assert.Len(t, decodeRecords(t, client.calls[1].body), 2)
	assert.Equal(t, "a4", decodeRecords(t, client.calls[2].body)[0]["ad_id"])
}

func TestUploadResourcePerformance_Empty(t *testing.T) {
	client := &fakeS3{}
	uploader, err := NewUploader(client, "s3://reports")
	require.NoError(t, err)

	paths, err := uploader.UploadResourcePerformance(context.Background(), []map[string]any{}, domain.ResourceTypeCampaign, createdAt)

	require.NoError(t, err)
	assert.Empty(t, paths)
	assert.Empty(t, client.calls)
}

func TestUpload_ClientError(t *testing.T) {
	cause := errors.New("access denied")
	uploader, err := NewUploader(&fakeS3{err: cause}, "s3://reports")
	require.NoError(t, err)

	_, err = uploader.UploadResourceDetails(context.Background(), nil, domain.ResourceTypeAdGroup, createdAt)

	assert.ErrorIs(t, err, ErrClient)
	assert.ErrorIs(t, err, ErrUploader)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "s3://reports/tiktok/adgroup/details")
}

func TestUploaderFactory_InvalidPath(t *testing.T) {
	factory := NewUploaderFactory(&fakeS3{})

	uploader, err := factory("reports/exports")

	assert.Nil(t, uploader)
	assert.ErrorIs(t, err, ErrPathNotValid)
}
