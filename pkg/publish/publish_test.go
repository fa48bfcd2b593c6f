package publish

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

func TestDiskStorePutAndKeys(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(filepath.Join(dir, "out"))
	if err != nil {
		t.Fatalf("NewDiskStore() error: %v", err)
	}

	ctx := context.Background()
	artifact, err := store.Put(ctx, "index", "index.html", "text/html; charset=utf-8", strings.NewReader("<p>hi</p>"))
	if err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	if artifact.ID == "" {
		t.Error("artifact has no ID")
	}
	if artifact.Size != int64(len("<p>hi</p>")) {
		t.Errorf("Size = %d", artifact.Size)
	}

	data, err := os.ReadFile(filepath.Join(store.Dir(), "index.html"))
	if err != nil {
		t.Fatalf("artifact file missing: %v", err)
	}
	if string(data) != "<p>hi</p>" {
		t.Errorf("artifact content = %q", data)
	}

	if _, err := store.Put(ctx, "about", "pages/about.html", "text/html", strings.NewReader("x")); err != nil {
		t.Fatal(err)
	}

	keys, err := store.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys() error: %v", err)
	}
	want := []string{"index.html", "pages/about.html"}
	if len(keys) != len(want) || keys[0] != want[0] || keys[1] != want[1] {
		t.Errorf("Keys() = %v, want %v", keys, want)
	}
}

func TestDiskStoreRemove(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	if _, err := store.Put(ctx, "index", "index.html", "text/html", strings.NewReader("x")); err != nil {
		t.Fatal(err)
	}

	if err := store.Remove(ctx, "index.html"); err != nil {
		t.Errorf("Remove() error: %v", err)
	}
	if err := store.Remove(ctx, "index.html"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Remove() = %v, want ErrNotFound", err)
	}
}

// fakeS3 records uploads in memory.
type fakeS3 struct {
	objects map[string][]byte
	meta    map[string]map[string]string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{
		objects: make(map[string][]byte),
		meta:    make(map[string]map[string]string),
	}
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*params.Key] = data
	f.meta[*params.Key] = params.Metadata
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, *params.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	out := &s3.ListObjectsV2Output{}
	for key := range f.objects {
		k := key
		out.Contents = append(out.Contents, s3types.Object{Key: &k})
	}
	return out, nil
}

func TestS3StorePut(t *testing.T) {
	fake := newFakeS3()
	store := NewS3Store(fake, "my-bucket", "us-east-1", "sites/demo")

	ctx := context.Background()
	artifact, err := store.Put(ctx, "index", "index.html", "text/html; charset=utf-8", strings.NewReader("<p>s3</p>"))
	if err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	data, ok := fake.objects["sites/demo/index.html"]
	if !ok {
		t.Fatalf("object not stored, have %v", fake.objects)
	}
	if string(data) != "<p>s3</p>" {
		t.Errorf("object content = %q", data)
	}
	if meta := fake.meta["sites/demo/index.html"]; meta["document"] != "index" {
		t.Errorf("metadata = %v", meta)
	}
	if !strings.Contains(artifact.URL, "my-bucket.s3.us-east-1.amazonaws.com/sites/demo/index.html") {
		t.Errorf("URL = %q", artifact.URL)
	}
}

func TestS3StoreKeysStripsPrefix(t *testing.T) {
	fake := newFakeS3()
	store := NewS3Store(fake, "my-bucket", "", "sites/demo")

	ctx := context.Background()
	if _, err := store.Put(ctx, "index", "index.html", "text/html", strings.NewReader("x")); err != nil {
		t.Fatal(err)
	}

	keys, err := store.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys() error: %v", err)
	}
	if len(keys) != 1 || keys[0] != "index.html" {
		t.Errorf("Keys() = %v", keys)
	}
}
