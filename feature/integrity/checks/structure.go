package checks

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"feature-catalog/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// RequiredFolders lists the folders that must exist in the bucket.
var RequiredFolders = []string{"catalog", "reports"}

// ErrBucketMissing is returned when the configured bucket does not exist.
var ErrBucketMissing = fmt.Errorf("bucket does not exist")

// CheckStructure returns a list of missing folders.
func CheckStructure(ctx context.Context, client storage.Client, bucket string) ([]string, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrBucketMissing, bucket)
	}

	var missing []string
	for _, folder := range RequiredFolders {
		opts := minio.ListObjectsOptions{
			Prefix:    folderPath(folder),
			Recursive: false,
			MaxKeys:   1,
		}

		// Cancelling stops the listing goroutine once the first key arrives.
		listCtx, cancel := context.WithCancel(ctx)
		found := false
		for range client.ListObjects(listCtx, bucket, opts) {
			found = true
			break
		}
		cancel()
		if !found {
			missing = append(missing, folder)
		}
	}

	return missing, nil
}

// EnsureBucket creates the bucket when it does not exist.
func EnsureBucket(ctx context.Context, client storage.Client, bucket, region string, logger *zap.Logger) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	logger.Info("Created missing bucket", zap.String("bucket", bucket))
	return nil
}

// FixStructure creates the missing folders.
func FixStructure(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger, missing []string) error {
	for _, folder := range missing {
		_, err := client.PutObject(ctx, bucket, folderPath(folder), bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return err
		}
		logger.Info("Created missing folder", zap.String("folder", folder))
	}
	return nil
}

func folderPath(folder string) string {
	if strings.HasSuffix(folder, "/") {
		return folder
	}
	return folder + "/"
}
