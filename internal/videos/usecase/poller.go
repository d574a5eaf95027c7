package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/scripturecast/scripture-backend/internal/models"
	"github.com/scripturecast/scripture-backend/internal/videos"
	"github.com/scripturecast/scripture-backend/pkg/logger"
)

// SleepFunc waits for the given duration or until the context is cancelled.
// Injectable so tests drive the loop with a virtual clock.
type SleepFunc func(ctx context.Context, d time.Duration) error

func realSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Poller drives generating jobs toward a terminal state. The same PollOnce
// services both the detached watch loop started after submit and the
// on-demand status check.
type Poller struct {
	videoRepo videos.Repository
	redisRepo videos.RedisRepository
	awsRepo   videos.AWSRepository
	producer  videos.Producer
	interval  time.Duration
	timeout   time.Duration
	sleep     SleepFunc
	logger    logger.Logger
}

func NewPoller(
	videoRepo videos.Repository,
	redisRepo videos.RedisRepository,
	awsRepo videos.AWSRepository,
	producer videos.Producer,
	interval time.Duration,
	timeout time.Duration,
	log logger.Logger,
) *Poller {
	return &Poller{
		videoRepo: videoRepo,
		redisRepo: redisRepo,
		awsRepo:   awsRepo,
		producer:  producer,
		interval:  interval,
		timeout:   timeout,
		sleep:     realSleep,
		logger:    log,
	}
}

// WithSleep overrides the wait between ticks. Test hook.
func (p *Poller) WithSleep(sleep SleepFunc) *Poller {
	p.sleep = sleep
	return p
}

// Watch polls at a fixed interval until the job is terminal or the wall-clock
// ceiling passes. Hitting the ceiling abandons watching without touching the
// row: the job stays generating and a later on-demand check can still finish
// it.
func (p *Poller) Watch(ctx context.Context, video *models.ChapterVideo) {
	ticks := int(p.timeout / p.interval)
	if ticks < 1 {
		// An interval above the ceiling would otherwise never poll at all.
		p.logger.Warnf("watch - poll interval %s exceeds timeout %s, polling once", p.interval, p.timeout)
		ticks = 1
	}
	for tick := 0; tick < ticks; tick++ {
		if err := p.sleep(ctx, p.interval); err != nil {
			return
		}
		updated, err := p.PollOnce(ctx, video)
		if err != nil {
			p.logger.Errorf("watch - poll error for book %d chapter %d: %v",
				video.BookNumber, video.Chapter, err)
			continue
		}
		if updated.Status.IsTerminal() {
			return
		}
	}
	p.logger.Warnf("watch - giving up on book %d chapter %d after %s, job left generating",
		video.BookNumber, video.Chapter, p.timeout)
}

// PollOnce performs a single provider status check and applies the result
// with conditional writes, so duplicate pollers finishing late are no-ops.
// Transient provider errors leave the job generating.
func (p *Poller) PollOnce(ctx context.Context, video *models.ChapterVideo) (*models.ChapterVideo, error) {
	if video.VeoTaskID == nil || *video.VeoTaskID == "" {
		// Generating with no handle cannot make progress.
		return p.applyFailure(ctx, video, "job has no production task handle")
	}

	status, err := p.producer.FetchStatus(ctx, *video.VeoTaskID)
	if err != nil {
		// Recoverable: no handle is lost, the next tick or on-demand check
		// retries against the same operation.
		p.logger.Warnf("pollOnce - status check failed for book %d chapter %d: %v",
			video.BookNumber, video.Chapter, err)
		return video, nil
	}
	if !status.Done {
		return video, nil
	}
	if status.VideoURL != "" {
		return p.applyCompletion(ctx, video, status.VideoURL)
	}
	message := status.ErrMessage
	if message == "" {
		message = "video generation failed"
	}
	return p.applyFailure(ctx, video, message)
}

func (p *Poller) applyCompletion(ctx context.Context, video *models.ChapterVideo, videoURL string) (*models.ChapterVideo, error) {
	storageKey := p.mirror(ctx, video, videoURL)

	duration := defaultDurationSeconds
	if video.DurationSeconds != nil {
		duration = *video.DurationSeconds
	}
	updated, err := p.videoRepo.MarkCompleted(ctx, video.VideoID, videoURL, storageKey, duration)
	if err != nil {
		if errors.Is(err, videos.ErrNotGenerating) {
			// Another poller got there first.
			return p.reread(ctx, video)
		}
		return nil, fmt.Errorf("failed to mark video completed: %v", err)
	}
	p.cacheTerminal(ctx, updated)
	p.logger.Infof("video completed for book %d chapter %d: %s", video.BookNumber, video.Chapter, videoURL)
	return updated, nil
}

func (p *Poller) applyFailure(ctx context.Context, video *models.ChapterVideo, message string) (*models.ChapterVideo, error) {
	updated, err := p.videoRepo.MarkFailed(ctx, video.VideoID, message)
	if err != nil {
		if errors.Is(err, videos.ErrNotGenerating) {
			return p.reread(ctx, video)
		}
		return nil, fmt.Errorf("failed to mark video failed: %v", err)
	}
	p.cacheTerminal(ctx, updated)
	p.logger.Infof("video failed for book %d chapter %d: %s", video.BookNumber, video.Chapter, message)
	return updated, nil
}

// mirror copies the provider file into object storage, best effort. A mirror
// failure keeps the provider URL; it never fails the job.
func (p *Poller) mirror(ctx context.Context, video *models.ChapterVideo, videoURL string) string {
	if p.awsRepo == nil {
		return ""
	}
	key := fmt.Sprintf("videos/%d/%d.mp4", video.BookNumber, video.Chapter)
	if err := p.awsRepo.MirrorFromURL(ctx, videoURL, key); err != nil {
		p.logger.Warnf("failed to mirror video for book %d chapter %d: %v",
			video.BookNumber, video.Chapter, err)
		return ""
	}
	return key
}

func (p *Poller) reread(ctx context.Context, video *models.ChapterVideo) (*models.ChapterVideo, error) {
	stored, err := p.videoRepo.GetByChapter(ctx, video.BookNumber, video.Chapter)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read chapter video: %v", err)
	}
	if stored == nil {
		return video, nil
	}
	return stored, nil
}

func (p *Poller) cacheTerminal(ctx context.Context, video *models.ChapterVideo) {
	if p.redisRepo == nil || !video.Status.IsTerminal() {
		return
	}
	if err := p.redisRepo.SetVideo(ctx, video); err != nil {
		p.logger.Warnf("failed to cache terminal video %s: %v", video.VideoID, err)
	}
}
