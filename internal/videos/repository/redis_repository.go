package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/scripturecast/scripture-backend/internal/models"
	"github.com/scripturecast/scripture-backend/internal/videos"
)

type videoRedisRepo struct {
	redisClient *redis.Client
	prefix      string
	expire      time.Duration
}

func NewVideoRedisRepo(redisClient *redis.Client, prefix string, expireSeconds int) videos.RedisRepository {
	return &videoRedisRepo{
		redisClient: redisClient,
		prefix:      prefix,
		expire:      time.Duration(expireSeconds) * time.Second,
	}
}

func (v *videoRedisRepo) videoKey(bookNumber, chapter int) string {
	return fmt.Sprintf("%s%d:%d", v.prefix, bookNumber, chapter)
}

func (v *videoRedisRepo) GetVideo(ctx context.Context, bookNumber, chapter int) (*models.ChapterVideo, error) {
	data, err := v.redisClient.Get(ctx, v.videoKey(bookNumber, chapter)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached video: %w", err)
	}
	video := &models.ChapterVideo{}
	if err = json.Unmarshal(data, video); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached video: %w", err)
	}
	return video, nil
}

func (v *videoRedisRepo) SetVideo(ctx context.Context, video *models.ChapterVideo) error {
	if !video.Status.IsTerminal() {
		return fmt.Errorf("refusing to cache non-terminal video %s", video.VideoID)
	}
	data, err := json.Marshal(video)
	if err != nil {
		return fmt.Errorf("failed to marshal video: %w", err)
	}
	return v.redisClient.Set(ctx, v.videoKey(video.BookNumber, video.Chapter), data, v.expire).Err()
}

func (v *videoRedisRepo) DeleteVideo(ctx context.Context, bookNumber, chapter int) error {
	return v.redisClient.Del(ctx, v.videoKey(bookNumber, chapter)).Err()
}
