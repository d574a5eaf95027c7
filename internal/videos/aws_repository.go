package videos

import (
	"context"
	"time"
)

// AWSRepository mirrors finished provider files into object storage and hands
// out presigned playback URLs.
type AWSRepository interface {
	MirrorFromURL(ctx context.Context, srcURL, key string) error
	GetPresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}
