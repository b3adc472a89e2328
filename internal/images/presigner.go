package images

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/config"
)

// Presigner resolves menu image references at read time. Object keys become
// short-lived presigned GET URLs; absolute URLs and unconfigured buckets pass
// through untouched.
type Presigner struct {
	presign *s3.PresignClient
	bucket  string
	expires time.Duration
}

func NewPresigner(cfg *config.Config) *Presigner {
	if cfg.S3Bucket == "" {
		return &Presigner{}
	}

	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	})

	return &Presigner{
		presign: s3.NewPresignClient(client),
		bucket:  cfg.S3Bucket,
		expires: 15 * time.Minute,
	}
}

func (p *Presigner) ResolveURL(ctx context.Context, ref string) string {
	if p.presign == nil || ref == "" || strings.HasPrefix(ref, "http") {
		return ref
	}

	out, err := p.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(ref),
	}, func(o *s3.PresignOptions) {
		o.Expires = p.expires
	})
	if err != nil {
		return ref
	}

	return out.URL
}
