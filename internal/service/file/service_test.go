package file

import (
	"context"
	"encoding/base64"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	uploads map[string]string
}

func (f *fakeStorage) Upload(_ context.Context, file io.Reader, path string, contentType string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	if f.uploads == nil {
		f.uploads = make(map[string]string)
	}
	f.uploads[path] = string(data)
	return path, nil
}

func (f *fakeStorage) Download(_ context.Context, _ string) (io.ReadCloser, error) { return nil, nil }
func (f *fakeStorage) Delete(_ context.Context, _ string) error                   { return nil }
func (f *fakeStorage) GetURL(_ context.Context, path string, _ time.Duration) (string, error) {
	return path, nil
}

func TestUploadDocuments_RawBase64(t *testing.T) {
	storage := &fakeStorage{}
	svc := NewService(storage)

	payload := base64.StdEncoding.EncodeToString([]byte("hello"))
	keys, err := svc.UploadDocuments(context.Background(), []string{payload})
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.True(t, strings.HasPrefix(keys[0], "reasons/"))
	assert.Equal(t, "hello", storage.uploads[keys[0]])
}

func TestUploadDocuments_DataURL(t *testing.T) {
	storage := &fakeStorage{}
	svc := NewService(storage)

	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte{0x89, 0x50})
	keys, err := svc.UploadDocuments(context.Background(), []string{payload})
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.True(t, strings.HasSuffix(keys[0], ".png"))
}

func TestUploadDocuments_RejectsInvalidBase64(t *testing.T) {
	svc := NewService(&fakeStorage{})

	_, err := svc.UploadDocuments(context.Background(), []string{"not@base64!"})
	require.Error(t, err)
}

func TestUploadDocuments_EmptyInput(t *testing.T) {
	svc := NewService(&fakeStorage{})

	keys, err := svc.UploadDocuments(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, keys)
}
