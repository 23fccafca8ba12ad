package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/minio/minio-go/v7"
)

// Fetch downloads bucket/object into destDir and returns the local path.
// The local file is named after the object's base name so report sinks can
// reference it in output headers.
func Fetch(ctx context.Context, c Client, bucket, object, destDir string) (string, error) {
	reader, err := c.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("get object %s/%s: %w", bucket, object, err)
	}
	defer reader.Close()

	local := filepath.Join(destDir, filepath.Base(object))
	f, err := os.Create(local)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", local, err)
	}
	if _, err := io.Copy(f, reader); err != nil {
		f.Close()
		return "", fmt.Errorf("download %s/%s: %w", bucket, object, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return local, nil
}

// Upload stores the local file under bucket/object.
func Upload(ctx context.Context, c Client, bucket, object, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	_, err = c.PutObject(ctx, bucket, object, f, info.Size(), minio.PutObjectOptions{
		ContentType: "text/plain",
	})
	if err != nil {
		return fmt.Errorf("put object %s/%s: %w", bucket, object, err)
	}
	return nil
}
