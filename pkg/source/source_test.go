package source

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func TestDir(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "index.html"), []byte("<p>hi</p>"), 0o644); err != nil {
		t.Fatal(err)
	}

	d := NewDir(root)

	t.Run("open file", func(t *testing.T) {
		rc, err := d.Open(context.Background(), "index.html")
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		defer rc.Close()
		data, _ := io.ReadAll(rc)
		if string(data) != "<p>hi</p>" {
			t.Errorf("content = %q", data)
		}
	})

	t.Run("empty name defaults to index", func(t *testing.T) {
		rc, err := d.Open(context.Background(), "")
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		rc.Close()
	})

	t.Run("escape rejected", func(t *testing.T) {
		if _, err := d.Open(context.Background(), "../secret"); err == nil {
			t.Error("path escaping the root was accepted")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := d.Open(context.Background(), "nope.html"); err == nil {
			t.Error("missing file did not error")
		}
	})
}

type fakeS3 struct {
	bucket, key string
	body        string
}

func (f *fakeS3) GetObject(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.bucket = *params.Bucket
	f.key = *params.Key
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func TestS3(t *testing.T) {
	fake := &fakeS3{body: "<p>remote</p>"}
	src := newS3(fake, "bucket", "pages")

	rc, err := src.Open(context.Background(), "/docs/page.html")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()

	if fake.bucket != "bucket" {
		t.Errorf("bucket = %q", fake.bucket)
	}
	if fake.key != "pages/docs/page.html" {
		t.Errorf("key = %q", fake.key)
	}
	data, _ := io.ReadAll(rc)
	if string(data) != "<p>remote</p>" {
		t.Errorf("content = %q", data)
	}
}
