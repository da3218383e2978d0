// Package r2 implements objectstore.Store on Cloudflare R2 through its S3
// compatible API.
package r2

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"studyshare/pkg/objectstore"
	"studyshare/pkg/serrors"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Options configures the R2 connection.
type Options struct {
	// AccountID builds the default endpoint <account>.r2.cloudflarestorage.com.
	AccountID string
	// Endpoint overrides the endpoint host, e.g. for a local MinIO.
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	// Insecure disables TLS. Only meant for local development and tests.
	Insecure bool
}

// Store is an objectstore.Store backed by a single bucket.
type Store struct {
	client *minio.Client
	bucket string
}

// Ensure Store conforms to the objectstore.Store interface at compile time.
var _ objectstore.Store = (*Store)(nil)

// New creates a Store. It does not contact the server.
func New(opts Options) (*Store, error) {
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = opts.AccountID + ".r2.cloudflarestorage.com"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKeyID, opts.SecretAccessKey, ""),
		Secure: !opts.Insecure,
		Region: "auto",
	})
	if err != nil {
		return nil, fmt.Errorf("could not create r2 client: %w", err)
	}

	return &Store{client: client, bucket: opts.Bucket}, nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *Store) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("could not check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("could not create bucket: %w", err)
	}

	return nil
}

func (s *Store) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("could not put object %s: %w", key, err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) (*objectstore.Object, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("could not get object %s: %w", key, err)
	}
	// GetObject is lazy, Stat performs the request.
	info, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, serrors.Wrap(serrors.ErrNotFound, err, "object %s not found", key)
		}

		return nil, fmt.Errorf("could not stat object %s: %w", key, err)
	}

	return &objectstore.Object{
		Body:        obj,
		Size:        info.Size,
		ContentType: info.ContentType,
	}, nil
}

func (s *Store) PresignGet(ctx context.Context, key, fileName string, ttl time.Duration) (string, error) {
	params := url.Values{}
	if fileName != "" {
		params.Set("response-content-disposition",
			mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
	}

	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, ttl, params)
	if err != nil {
		return "", fmt.Errorf("could not presign object %s: %w", key, err)
	}

	return u.String(), nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("could not delete object %s: %w", key, err)
	}

	return nil
}
