// Package s3 provides a docstore.Store backed by Amazon S3.
package s3

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/hupe1980/snipmatch/docstore"
)

// Store fetches documents from an S3 bucket.
type Store struct {
	downloader *manager.Downloader
	bucket     string
	prefix     string
}

// NewStore creates an S3 document store.
// prefix is prepended to all document names (e.g. "corpus/").
func NewStore(client *s3.Client, bucket, prefix string) *Store {
	return &Store{
		downloader: manager.NewDownloader(client),
		bucket:     bucket,
		prefix:     prefix,
	}
}

// NewFromDefaultConfig builds a Store from the ambient AWS configuration
// (environment, shared config files, instance role).
func NewFromDefaultConfig(ctx context.Context, bucket, prefix string) (*Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewStore(s3.NewFromConfig(cfg), bucket, prefix), nil
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Fetch downloads the full object into memory.
func (s *Store) Fetch(ctx context.Context, name string) ([]byte, error) {
	buf := manager.NewWriteAtBuffer(nil)

	_, err := s.downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		var nf *types.NotFound
		if errors.As(err, &nsk) || errors.As(err, &nf) {
			return nil, fmt.Errorf("s3 %s/%s: %w", s.bucket, s.key(name), docstore.ErrNotFound)
		}
		return nil, err
	}

	return buf.Bytes(), nil
}
