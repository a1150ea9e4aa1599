package tiktokclient

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/tiktok-manager-api/internal/config"
	"github.com/vfg2006/tiktok-manager-api/pkg/utils"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Gateway {
	t.Helper()

	return newTestClientWithUploadDir(t, "", handler)
}

func newTestClientWithUploadDir(t *testing.T, uploadDir string, handler http.HandlerFunc) Gateway {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(config.Tiktok{BaseURL: server.URL, RetryCount: 0, PageSize: 2, UploadDir: uploadDir}, "tok1")
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, code int64, data any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	body, err := utils.JSON.Marshal(map[string]any{
		"code":       code,
		"message":    "OK",
		"request_id": "req-1",
		"data":       data,
	})
	require.NoError(t, err)
	_, _ = w.Write(body)
}

func TestGetAdvertiserCampaigns_WalksAllPages(t *testing.T) {
	var pages []string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/campaign/get/", r.URL.Path)
		assert.Equal(t, "tok1", r.Header.Get("Access-Token"))
		assert.Equal(t, "adv1", r.URL.Query().Get("advertiser_id"))
		assert.Equal(t, `["campaign_id","campaign_name"]`, r.URL.Query().Get("fields"))
		assert.Equal(t, "2", r.URL.Query().Get("page_size"))

		page := r.URL.Query().Get("page")
		pages = append(pages, page)

		writeEnvelope(t, w, 0, map[string]any{
			"list":      []any{map[string]any{"campaign_id": "c" + page}},
			"page_info": map[string]any{"page": page, "total_page": 2},
		})
	})

	data, err := client.GetAdvertiserCampaigns(context.Background(), map[string]any{
		"advertiser_id": "adv1",
		"fields":        `["campaign_id","campaign_name"]`,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, pages)
	assert.Equal(t, []any{
		map[string]any{"campaign_id": "c1"},
		map[string]any{"campaign_id": "c2"},
	}, data["list"])
}

func TestGetAdAccounts_EnvelopeError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oauth2/advertiser/get/", r.URL.Path)
		assert.Equal(t, "app1", r.URL.Query().Get("app_id"))
		assert.Equal(t, "s1", r.URL.Query().Get("secret"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":40105,"message":"Access token is incorrect","request_id":"req-9","data":{}}`))
	})

	data, err := client.GetAdAccounts(context.Background(), map[string]any{"app_id": "app1", "secret": "s1"})

	assert.Nil(t, data)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, int64(40105), apiErr.Code)
	assert.Equal(t, "req-9", apiErr.RequestID)
	assert.Contains(t, err.Error(), "Access token is incorrect")
}

func TestPost_HTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})

	_, err := client.CreateCampaign(context.Background(), map[string]any{"advertiser_id": "adv1"})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Contains(t, err.Error(), "upstream down")
}

func TestCreateCampaign_SendsJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/campaign/create/", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var body map[string]any
		require.NoError(t, utils.JSON.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "adv1", body["advertiser_id"])
		assert.Equal(t, "Summer", body["campaign_name"])

		writeEnvelope(t, w, 0, map[string]any{"campaign_id": "c9"})
	})

	data, err := client.CreateCampaign(context.Background(), map[string]any{
		"advertiser_id": "adv1",
		"campaign_name": "Summer",
	})

	require.NoError(t, err)
	assert.Equal(t, "c9", data["campaign_id"])
}

func TestUploadVideo_ListPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, 0, []any{map[string]any{"video_id": "v1"}})
	})

	data, err := client.UploadVideo(context.Background(), map[string]any{
		"advertiser_id": "adv1",
		"upload_type":   "UPLOAD_BY_URL",
		"video_url":     "https://cdn.example.com/v.mp4",
	})

	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"video_id": "v1"}}, data["list"])
}

func TestUploadImage_ByFile(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	uploadDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(uploadDir, "creatives"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(uploadDir, "creatives", "banner.png"), png, 0o600))

	sum := md5.Sum(png)
	wantSignature := hex.EncodeToString(sum[:])

	client := newTestClientWithUploadDir(t, uploadDir, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/file/image/ad/upload/", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "adv1", r.FormValue("advertiser_id"))
		assert.Equal(t, "UPLOAD_BY_FILE", r.FormValue("upload_type"))
		assert.Equal(t, wantSignature, r.FormValue("image_signature"))

		file, header, err := r.FormFile("image_file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "banner.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, png, content)

		writeEnvelope(t, w, 0, map[string]any{"image_id": "img1"})
	})

	data, err := client.UploadImage(context.Background(), map[string]any{
		"advertiser_id": "adv1",
		"upload_type":   "UPLOAD_BY_FILE",
		"image_file":    "creatives/banner.png",
	})

	require.NoError(t, err)
	assert.Equal(t, "img1", data["image_id"])
}

func TestUploadImage_ByFileWithoutPath(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := client.UploadImage(context.Background(), map[string]any{
		"advertiser_id": "adv1",
		"upload_type":   "UPLOAD_BY_FILE",
	})

	assert.Error(t, err)
}

func TestQueryParams(t *testing.T) {
	got := queryParams(map[string]any{
		"advertiser_id": "adv1",
		"page":          3,
		"ids":           []string{"a", "b"},
		"skip":          nil,
	})

	assert.Equal(t, map[string]string{
		"advertiser_id": "adv1",
		"page":          "3",
		"ids":           `["a","b"]`,
	}, got)
}

func TestUploadImage_ByFileOutsideUploadDir(t *testing.T) {
	uploadDir := t.TempDir()
	outside := t.TempDir()
	secret := filepath.Join(outside, "secret.env")
	require.NoError(t, os.WriteFile(secret, []byte("AUTH_SECRET=leak"), 0o600))
	require.NoError(t, os.Symlink(secret, filepath.Join(uploadDir, "link.png")))

	tests := []struct {
		name      string
		uploadDir string
		file      string
	}{
		{name: "absolute path", uploadDir: uploadDir, file: secret},
		{name: "system file", uploadDir: uploadDir, file: "/etc/passwd"},
		{name: "climbs out of the directory", uploadDir: uploadDir, file: "../" + filepath.Base(outside) + "/secret.env"},
		{name: "symlink pointing outside", uploadDir: uploadDir, file: "link.png"},
		{name: "uploads disabled", uploadDir: "", file: "banner.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClientWithUploadDir(t, tt.uploadDir, func(w http.ResponseWriter, r *http.Request) {
				t.Error("no request expected")
			})

			_, err := client.UploadImage(context.Background(), map[string]any{
				"advertiser_id": "adv1",
				"upload_type":   "UPLOAD_BY_FILE",
				"image_file":    tt.file,
			})

			assert.ErrorIs(t, err, ErrUploadPathNotAllowed)
		})
	}
}
