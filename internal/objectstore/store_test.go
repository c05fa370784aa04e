package objectstore

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicURL(t *testing.T) {
	s, err := New(Config{Endpoint: "s3.example.com", Bucket: "thumbs", UseSSL: true, AccessKey: "a", SecretKey: "b"})
	require.NoError(t, err)

	assert.Equal(t, "https://s3.example.com/thumbs/thumbnails/x/1.png", s.PublicURL("thumbnails/x/1.png"))

	s, err = New(Config{Endpoint: "minio:9000", Bucket: "thumbs", PublicBaseURL: "https://cdn.example.com/", AccessKey: "a", SecretKey: "b"})
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/thumbs/k.png", s.PublicURL("k.png"))
}

func TestPut(t *testing.T) {
	var gotPath, gotACL, gotType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusOK)
			return
		}
		gotPath = r.URL.Path
		gotACL = r.Header.Get("x-amz-acl")
		gotType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Header().Set("ETag", `"abc"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s, err := New(Config{
		Endpoint:  strings.TrimPrefix(srv.URL, "http://"),
		Bucket:    "thumbs",
		Region:    "us-east-1",
		AccessKey: "a",
		SecretKey: "b",
	})
	require.NoError(t, err)

	url, err := s.Put(context.Background(), "thumbnails/id/1.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, srv.URL+"/thumbs/thumbnails/id/1.png", url)
	assert.Equal(t, "/thumbs/thumbnails/id/1.png", gotPath)
	assert.Equal(t, "public-read", gotACL)
	assert.Equal(t, "image/png", gotType)
	assert.Contains(t, gotBody, "png-bytes")
}
