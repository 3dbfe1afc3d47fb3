package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/kurin/blazer/b2"

	"koperasi_backend/internals/configs"
)

// B2Store: Backblaze B2 lewat blazer. URL publik memakai download URL bucket.
type B2Store struct {
	Client *b2.Client
	Bucket *b2.Bucket
}

func NewB2StoreFromEnv(ctx context.Context) (*B2Store, error) {
	accountID := configs.GetEnv("B2_ACCOUNT_ID")
	appKey := configs.GetEnv("B2_APPLICATION_KEY")
	bucketName := configs.GetEnv("B2_BUCKET")
	if accountID == "" || appKey == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: B2_ACCOUNT_ID/B2_APPLICATION_KEY/B2_BUCKET")
	}

	client, err := b2.NewClient(ctx, accountID, appKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create b2 client: %w", err)
	}
	bucket, err := client.Bucket(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket: %w", err)
	}
	return &B2Store{Client: client, Bucket: bucket}, nil
}

func (s *B2Store) Name() string { return "b2" }

func (s *B2Store) base() string {
	return fmt.Sprintf("%s/file/%s", strings.TrimRight(s.Bucket.BaseURL(), "/"), s.Bucket.Name())
}

func (s *B2Store) PublicURL(key string) string {
	return s.base() + "/" + key
}

func (s *B2Store) Put(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	obj := s.Bucket.Object(key)
	w := obj.NewWriter(ctx, b2.WithAttrsOption(&b2.Attrs{ContentType: contentType}))
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}
	return s.PublicURL(key), nil
}

func (s *B2Store) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, err := ExtractKeyFromPublicURL(publicURL, s.base())
	if err != nil {
		return err
	}
	if err := s.Bucket.Object(key).Delete(ctx); err != nil && !b2.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *B2Store) Owns(publicURL string) bool {
	return strings.HasPrefix(strings.TrimSpace(publicURL), s.base()+"/")
}

func (s *B2Store) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	var out []ObjectInfo
	it := s.Bucket.List(ctx, b2.ListPrefix(prefix))
	for it.Next() {
		obj := it.Object()
		attrs, err := obj.Attrs(ctx)
		if err != nil {
			return nil, fmt.Errorf("attrs %s: %w", obj.Name(), err)
		}
		out = append(out, ObjectInfo{Key: obj.Name(), LastModified: attrs.UploadTimestamp})
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *B2Store) DeleteKeys(ctx context.Context, keys []string) error {
	for _, k := range keys {
		if err := s.Bucket.Object(k).Delete(ctx); err != nil && !b2.IsNotExist(err) {
			return fmt.Errorf("delete %s: %w", k, err)
		}
	}
	return nil
}
