package minio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"openadopt/internal/ports/blob"
)

var (
	ErrOutsideBase = errors.New("url outside storage base")
)

// Client es el subconjunto del cliente MinIO que usamos, detrás de una
// interface para poder mockearlo en tests.
type Client interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts miniogo.PutObjectOptions) (miniogo.UploadInfo, error)
	StatObject(ctx context.Context, bucketName, objectName string, opts miniogo.StatObjectOptions) (miniogo.ObjectInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts miniogo.RemoveObjectOptions) error
	ListObjects(ctx context.Context, bucketName string, opts miniogo.ListObjectsOptions) <-chan miniogo.ObjectInfo
}

// Storage implementa blob.Storage contra un object store compatible S3.
type Storage struct {
	client    Client
	bucket    string
	publicURL string
}

type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL es la base pública con la que se construyen las URLs
	// persistidas (CDN o el propio endpoint del bucket).
	PublicURL string
}

func New(opts Options) (*Storage, error) {
	client, err := miniogo.New(opts.Endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return NewWithClient(client, opts.Bucket, opts.PublicURL), nil
}

func NewWithClient(client Client, bucket, publicURL string) *Storage {
	return &Storage{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(strings.TrimSpace(publicURL), "/"),
	}
}

func (s *Storage) Upload(ctx context.Context, r io.Reader, size int64, path string) (string, error) {
	object := strings.Trim(path, "/")
	_, err := s.client.PutObject(ctx, s.bucket, object, r, size, miniogo.PutObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", object, err)
	}
	return s.publicURL + "/" + object, nil
}

func (s *Storage) Delete(ctx context.Context, url string) error {
	object, err := s.objectFromURL(url)
	if err != nil {
		return err
	}

	// RemoveObject no distingue "no existía"; el contrato sí.
	if _, err := s.client.StatObject(ctx, s.bucket, object, miniogo.StatObjectOptions{}); err != nil {
		if isNoSuchKey(err) {
			return blob.ErrNotFound
		}
		return fmt.Errorf("stat object %s: %w", object, err)
	}

	if err := s.client.RemoveObject(ctx, s.bucket, object, miniogo.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %s: %w", object, err)
	}
	return nil
}

func (s *Storage) DeleteNamespace(ctx context.Context, prefix string) error {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return errors.New("empty namespace prefix")
	}

	objects := s.client.ListObjects(ctx, s.bucket, miniogo.ListObjectsOptions{
		Prefix:    prefix + "/",
		Recursive: true,
	})
	for object := range objects {
		if object.Err != nil {
			return fmt.Errorf("list namespace %s: %w", prefix, object.Err)
		}
		if err := s.client.RemoveObject(ctx, s.bucket, object.Key, miniogo.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("remove object %s: %w", object.Key, err)
		}
	}
	return nil
}

func (s *Storage) Exists(ctx context.Context, url string) (bool, error) {
	object, err := s.objectFromURL(url)
	if err != nil {
		return false, err
	}

	_, err = s.client.StatObject(ctx, s.bucket, object, miniogo.StatObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Storage) objectFromURL(url string) (string, error) {
	if !strings.HasPrefix(url, s.publicURL+"/") {
		return "", ErrOutsideBase
	}
	return strings.TrimPrefix(url, s.publicURL+"/"), nil
}

func isNoSuchKey(err error) bool {
	resp := miniogo.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.StatusCode == 404
}
