// Package publish uploads a finished report to S3-compatible storage
package publish

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bstardust/djicoords/internal/fileinfo"
	"github.com/bstardust/djicoords/internal/logger"
	"github.com/bstardust/djicoords/pkg/s3client"
)

// Publisher uploads report files
type Publisher struct {
	client s3client.S3Interface
	retry  RetryConfig
}

// New creates a Publisher
func New(client s3client.S3Interface, retry RetryConfig) *Publisher {
	return &Publisher{client: client, retry: retry}
}

// Publish uploads the report at path under its base name and returns the
// object key relative to the client prefix. photos is stored as object
// metadata.
func (p *Publisher) Publish(ctx context.Context, path string, photos int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open report: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat report: %w", err)
	}

	key := filepath.Base(path)
	metadata := map[string]string{
		"photos": strconv.Itoa(photos),
	}
	contentType := fileinfo.GetContentType(path)

	err = RetryWithBackoff(ctx, "upload "+key, func() error {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("failed to rewind report: %w", err)
		}
		return p.client.UploadFile(ctx, f, key, info.Size(), metadata, contentType)
	}, p.retry)
	if err != nil {
		return "", err
	}

	logger.Info("Published %s to bucket %s", s3client.ObjectKey(p.client.GetPrefix(), key), p.client.GetBucketName())
	return key, nil
}
