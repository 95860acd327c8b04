package storage

import (
	"errors"
	"io"
	"os"
	"strings"

	storage_go "github.com/supabase-community/storage-go"
)

// Buckets the portal writes to.
const (
	LogoBucket   = "school-logos"
	LetterBucket = "concession-letters"
)

var client *storage_go.Client

// Connect builds the storage client from STORAGE_URL/STORAGE_SERVICE_KEY
// (or the SUPABASE_* pair). Uploads fail cleanly when unconfigured.
func Connect() {
	url := os.Getenv("STORAGE_URL")
	if url == "" {
		if base := os.Getenv("SUPABASE_URL"); base != "" {
			url = strings.TrimRight(base, "/") + "/storage/v1"
		}
	}
	key := os.Getenv("STORAGE_SERVICE_KEY")
	if key == "" {
		key = os.Getenv("SUPABASE_SERVICE_KEY")
	}
	if url == "" || key == "" {
		return
	}
	client = storage_go.NewClient(url, key, nil)
}

// Upload stores an object and returns its public URL, used verbatim by the
// frontend and in activity-log detail payloads.
func Upload(bucket, path string, r io.Reader, contentType string) (string, error) {
	if client == nil {
		return "", errors.New("object storage not configured")
	}
	upsert := true
	_, err := client.UploadFile(bucket, path, r, storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", err
	}
	return client.GetPublicUrl(bucket, path).SignedURL, nil
}
