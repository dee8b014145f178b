package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gestion_flota/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrMissingAttachmentsBucket = errors.New("missing ATTACHMENTS_BUCKET")

// S3AttachmentStore writes receipt uploads to S3 under a boletas/ prefix and
// returns the object key as the stored reference.
//
// With ATTACHMENT_STORE_LOCAL enabled it writes to a local directory instead,
// which keeps development and CI off the network.

type S3AttachmentStore struct {
	client    *s3.Client
	bucket    string
	localMode bool
	localDir  string
}

var _ interfaces.IAttachmentStorage = (*S3AttachmentStore)(nil)

func NewS3AttachmentStore(client *s3.Client, bucket string) (*S3AttachmentStore, error) {
	if isLocalStoreEnabled() {
		dir := getenvDefault("ATTACHMENTS_LOCAL_DIR", "uploads")
		log.Printf("[expense][storage] local mode enabled dir=%s", dir)
		return &S3AttachmentStore{localMode: true, localDir: dir}, nil
	}

	if bucket == "" {
		log.Printf("[expense][storage] missing ATTACHMENTS_BUCKET")
		return nil, ErrMissingAttachmentsBucket
	}
	log.Printf("[expense][storage] s3 store initialized bucket=%s", bucket)

	return &S3AttachmentStore{client: client, bucket: bucket}, nil
}

func (s *S3AttachmentStore) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	key := objectKey(filename)

	if s.localMode {
		if err := os.MkdirAll(s.localDir, 0o755); err != nil {
			return "", err
		}
		path := filepath.Join(s.localDir, filepath.Base(key))
		f, err := os.Create(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		if _, err := io.Copy(f, content); err != nil {
			return "", err
		}
		log.Printf("[expense][storage] local save success path=%s", path)
		return path, nil
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   content,
	})
	if err != nil {
		log.Printf("[expense][storage] s3 put failed key=%s err=%v", key, err)
		return "", err
	}
	log.Printf("[expense][storage] s3 put success key=%s", key)
	return key, nil
}

// objectKey prefixes a timestamp so repeated uploads of the same filename
// never collide.
func objectKey(filename string) string {
	base := filepath.Base(strings.TrimSpace(filename))
	if base == "" || base == "." {
		base = "boleta"
	}
	return fmt.Sprintf("boletas/%d-%s", time.Now().UTC().UnixNano(), base)
}

func isLocalStoreEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("ATTACHMENT_STORE_LOCAL")))
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
