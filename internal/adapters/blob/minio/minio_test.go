package minio

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	miniogo "github.com/minio/minio-go/v7"

	"openadopt/internal/ports/blob"
)

// fakeClient simula el bucket en un map.
type fakeClient struct {
	objects map[string]string
	removed []string
}

func newFakeClient() *fakeClient {
	return &fakeClient{objects: map[string]string{}}
}

func (f *fakeClient) PutObject(ctx context.Context, bucket, object string, r io.Reader, size int64, opts miniogo.PutObjectOptions) (miniogo.UploadInfo, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return miniogo.UploadInfo{}, err
	}
	f.objects[object] = string(b)
	return miniogo.UploadInfo{Key: object, Size: int64(len(b))}, nil
}

func (f *fakeClient) StatObject(ctx context.Context, bucket, object string, opts miniogo.StatObjectOptions) (miniogo.ObjectInfo, error) {
	if _, ok := f.objects[object]; !ok {
		return miniogo.ObjectInfo{}, miniogo.ErrorResponse{Code: "NoSuchKey", StatusCode: http.StatusNotFound}
	}
	return miniogo.ObjectInfo{Key: object}, nil
}

func (f *fakeClient) RemoveObject(ctx context.Context, bucket, object string, opts miniogo.RemoveObjectOptions) error {
	delete(f.objects, object)
	f.removed = append(f.removed, object)
	return nil
}

func (f *fakeClient) ListObjects(ctx context.Context, bucket string, opts miniogo.ListObjectsOptions) <-chan miniogo.ObjectInfo {
	// Snapshot antes de arrancar la goroutine: el consumidor borra del
	// mismo map mientras recibe.
	keys := make([]string, 0, len(f.objects))
	for key := range f.objects {
		if strings.HasPrefix(key, opts.Prefix) {
			keys = append(keys, key)
		}
	}

	ch := make(chan miniogo.ObjectInfo)
	go func() {
		defer close(ch)
		for _, key := range keys {
			ch <- miniogo.ObjectInfo{Key: key}
		}
	}()
	return ch
}

func TestUpload_ReturnsPublicURL(t *testing.T) {
	fake := newFakeClient()
	s := NewWithClient(fake, "openadopt", "https://cdn.example.com")

	url, err := s.Upload(context.Background(), strings.NewReader("img"), 3, "animals/a1/files/f1.jpg")
	if err != nil {
		t.Fatalf("Upload error: %v", err)
	}
	if url != "https://cdn.example.com/animals/a1/files/f1.jpg" {
		t.Fatalf("unexpected url %s", url)
	}
	if fake.objects["animals/a1/files/f1.jpg"] != "img" {
		t.Fatalf("object not stored")
	}
}

func TestDelete_MissingObject_ReturnsNotFound(t *testing.T) {
	s := NewWithClient(newFakeClient(), "openadopt", "https://cdn.example.com")

	err := s.Delete(context.Background(), "https://cdn.example.com/animals/a1/files/gone.jpg")
	if !errors.Is(err, blob.ErrNotFound) {
		t.Fatalf("expected blob.ErrNotFound, got %v", err)
	}
}

func TestDeleteNamespace_RemovesOnlyPrefix(t *testing.T) {
	fake := newFakeClient()
	s := NewWithClient(fake, "openadopt", "https://cdn.example.com")
	ctx := context.Background()

	_, _ = s.Upload(ctx, strings.NewReader("a"), 1, "animals/a1/files/f1.jpg")
	_, _ = s.Upload(ctx, strings.NewReader("b"), 1, "animals/a1/files/f2.jpg")
	_, _ = s.Upload(ctx, strings.NewReader("c"), 1, "animals/a2/files/f1.jpg")

	if err := s.DeleteNamespace(ctx, "animals/a1"); err != nil {
		t.Fatalf("DeleteNamespace error: %v", err)
	}

	if _, ok := fake.objects["animals/a1/files/f1.jpg"]; ok {
		t.Fatalf("expected a1 objects removed")
	}
	if _, ok := fake.objects["animals/a2/files/f1.jpg"]; !ok {
		t.Fatalf("expected a2 objects kept")
	}
}

func TestExists(t *testing.T) {
	fake := newFakeClient()
	s := NewWithClient(fake, "openadopt", "https://cdn.example.com")
	ctx := context.Background()

	url, _ := s.Upload(ctx, strings.NewReader("a"), 1, "animals/a1/files/f1.jpg")

	ok, err := s.Exists(ctx, url)
	if err != nil || !ok {
		t.Fatalf("expected exists=true, got ok=%v err=%v", ok, err)
	}

	ok, err = s.Exists(ctx, "https://cdn.example.com/animals/a1/files/missing.jpg")
	if err != nil || ok {
		t.Fatalf("expected exists=false, got ok=%v err=%v", ok, err)
	}
}
