package repository

import (
	"context"
	"fmt"
	"net/http"
	"time"

	awsSdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/scripturecast/scripture-backend/internal/videos"
)

const mirrorTimeout = 120 * time.Second

type awsRepository struct {
	s3Client      *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	httpClient    *http.Client
}

func NewAwsRepository(s3Client *s3.Client, presignClient *s3.PresignClient, bucket string) videos.AWSRepository {
	return &awsRepository{
		s3Client:      s3Client,
		presignClient: presignClient,
		bucket:        bucket,
		httpClient:    &http.Client{Timeout: mirrorTimeout},
	}
}

// MirrorFromURL streams the provider file straight into the bucket. The Veo
// file endpoint is a plain GET, so the body can be piped to PutObject.
func (a *awsRepository) MirrorFromURL(ctx context.Context, srcURL, key string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srcURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build download request: %w", err)
	}
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download video: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download video: status %d", resp.StatusCode)
	}

	if _, err = a.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      awsSdk.String(a.bucket),
		Key:         awsSdk.String(key),
		Body:        resp.Body,
		ContentType: awsSdk.String("video/mp4"),
	}); err != nil {
		return fmt.Errorf("failed to upload video to s3: %w", err)
	}
	return nil
}

func (a *awsRepository) GetPresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	req, err := a.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: awsSdk.String(a.bucket),
		Key:    awsSdk.String(key),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign video url: %w", err)
	}
	return req.URL, nil
}
