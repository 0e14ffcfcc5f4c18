package service

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/saucepan-labs/recipebook/backend/config"
)

// MediaStore persists uploaded recipe pictures and returns the URL the
// stored picture is reachable at.
type MediaStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// LocalMediaStore writes uploads under the media root, served
// statically at /media/.
type LocalMediaStore struct {
	root string
}

func NewLocalMediaStore(root string) (*LocalMediaStore, error) {
	if err := os.MkdirAll(filepath.Join(root, "recipes"), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media root: %w", err)
	}
	return &LocalMediaStore{root: root}, nil
}

func (s *LocalMediaStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	name := objectName(filename)
	path := filepath.Join(s.root, "recipes", name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to store picture: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to store picture: %w", err)
	}

	return "/media/recipes/" + name, nil
}

// S3MediaStore stores uploads in the configured bucket.
type S3MediaStore struct {
	client *s3.Client
	bucket string
}

func NewS3MediaStore(cfg *config.S3Config) *S3MediaStore {
	return &S3MediaStore{
		client: cfg.Client,
		bucket: cfg.BucketName,
	}
}

func (s *S3MediaStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	key := "recipes/" + objectName(filename)

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload picture: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key), nil
}

// objectName builds a unique storage name, keeping only the original
// extension.
func objectName(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return uuid.NewString() + ext
}
