package media

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const urlCacheSize = 256

type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
	URLTTL    time.Duration
}

// Presigner is the part of *minio.Client the resolver needs.
type Presigner interface {
	PresignedGetObject(ctx context.Context, bucket, object string, expiry time.Duration, reqParams url.Values) (*url.URL, error)
}

// S3Resolver hands out presigned GET URLs for object keys. URLs are cached
// for half their lifetime so a page never renders an expired link.
type S3Resolver struct {
	presigner   Presigner
	bucket      string
	ttl         time.Duration
	placeholder string
	cache       *expirable.LRU[string, string]
}

func NewS3Resolver(cfg S3Config, placeholder string) (*S3Resolver, error) {
	cl, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, err
	}
	return NewS3ResolverWith(cl, cfg.Bucket, cfg.URLTTL, placeholder), nil
}

func NewS3ResolverWith(p Presigner, bucket string, ttl time.Duration, placeholder string) *S3Resolver {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &S3Resolver{
		presigner:   p,
		bucket:      bucket,
		ttl:         ttl,
		placeholder: placeholder,
		cache:       expirable.NewLRU[string, string](urlCacheSize, nil, ttl/2),
	}
}

func (r *S3Resolver) Resolve(ctx context.Context, ref string) string {
	key := strings.TrimPrefix(strings.TrimSpace(ref), "/")
	if key == "" {
		return r.placeholder
	}
	if isAbsoluteURL(key) {
		return key
	}
	if cached, ok := r.cache.Get(key); ok {
		return cached
	}

	u, err := r.presigner.PresignedGetObject(ctx, r.bucket, key, r.ttl, nil)
	if err != nil {
		slog.Warn("image presign failed", "bucket", r.bucket, "key", key, "error", err)
		return r.placeholder
	}

	resolved := u.String()
	r.cache.Add(key, resolved)
	return resolved
}
