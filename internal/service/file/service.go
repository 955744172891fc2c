package file

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"path"
	"strings"

	"github.com/aio-wfh/wfh-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
)

// Service stores request attachments sent inline as base64 data URLs and
// hands back the storage keys that go on the request row.
type Service struct {
	storage storage.FileStorage
}

func NewService(fileStorage storage.FileStorage) *Service {
	return &Service{storage: fileStorage}
}

// UploadDocuments decodes each base64-encoded attachment and stores it under
// reasons/ with a generated name. Returns the storage keys in input order.
func (s *Service) UploadDocuments(ctx context.Context, documents []string) ([]string, error) {
	keys := make([]string, 0, len(documents))
	for i, doc := range documents {
		data, contentType, err := decodeDocument(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to decode document %d: %w", i, err)
		}

		key := path.Join("reasons", uuid.NewString()+extensionFor(contentType))
		stored, err := s.storage.Upload(ctx, bytes.NewReader(data), key, contentType)
		if err != nil {
			return nil, fmt.Errorf("failed to upload document %d: %w", i, err)
		}
		keys = append(keys, stored)
	}

	return keys, nil
}

// decodeDocument accepts either a raw base64 string or a data URL
// ("data:<type>;base64,<payload>") and returns the bytes and content type.
func decodeDocument(doc string) ([]byte, string, error) {
	contentType := "application/octet-stream"
	payload := doc

	if strings.HasPrefix(doc, "data:") {
		header, rest, found := strings.Cut(doc, ",")
		if !found {
			return nil, "", fmt.Errorf("malformed data URL")
		}
		payload = rest
		header = strings.TrimPrefix(header, "data:")
		if ct, _, _ := strings.Cut(header, ";"); ct != "" {
			contentType = ct
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", err
	}

	return data, contentType, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "application/pdf":
		return ".pdf"
	default:
		return ""
	}
}
