package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/scripturecast/scripture-backend/internal/bible"
	"github.com/scripturecast/scripture-backend/internal/config"
	"github.com/scripturecast/scripture-backend/internal/models"
	"github.com/scripturecast/scripture-backend/internal/videos"
	"github.com/scripturecast/scripture-backend/pkg/logger"
)

// Veo clips run a fixed length; the operation status does not report one.
const defaultDurationSeconds = 10

type chapterVideoUC struct {
	cfg         *config.Config
	videoRepo   videos.Repository
	redisRepo   videos.RedisRepository
	awsRepo     videos.AWSRepository
	bibleRepo   bible.Repository
	producer    videos.Producer
	synthesizer videos.Synthesizer
	poller      *Poller
	logger      logger.Logger
}

func NewChapterVideoUseCase(
	cfg *config.Config,
	videoRepo videos.Repository,
	redisRepo videos.RedisRepository,
	awsRepo videos.AWSRepository,
	bibleRepo bible.Repository,
	producer videos.Producer,
	synthesizer videos.Synthesizer,
	poller *Poller,
	log logger.Logger,
) videos.UseCase {
	return &chapterVideoUC{
		cfg:         cfg,
		videoRepo:   videoRepo,
		redisRepo:   redisRepo,
		awsRepo:     awsRepo,
		bibleRepo:   bibleRepo,
		producer:    producer,
		synthesizer: synthesizer,
		poller:      poller,
		logger:      log,
	}
}

func (u *chapterVideoUC) RequestVideo(ctx context.Context, bookNumber, chapter int) (*models.ChapterVideo, error) {
	existing, err := u.videoRepo.GetByChapter(ctx, bookNumber, chapter)
	if err != nil {
		u.logger.Errorf("RequestVideo - GetByChapter error: %v", err)
		return nil, fmt.Errorf("failed to look up chapter video: %v", err)
	}
	if existing != nil && existing.Status != models.VideoStatusFailed {
		// Completed rows are the permanent cache; generating rows mean a
		// kickoff is already in flight. Failed rows fall through and get a
		// fresh attempt.
		u.logger.Infof("RequestVideo - returning stored %s job for book %d chapter %d",
			existing.Status, bookNumber, chapter)
		return existing, nil
	}
	if existing != nil && u.redisRepo != nil {
		// The failed row may be cached; a retry is about to make it stale.
		if err = u.redisRepo.DeleteVideo(ctx, bookNumber, chapter); err != nil {
			u.logger.Warnf("RequestVideo - failed to invalidate cached video for book %d chapter %d: %v",
				bookNumber, chapter, err)
		}
	}

	book, err := u.bibleRepo.GetBookByNumber(ctx, bookNumber)
	if err != nil {
		u.logger.Errorf("RequestVideo - GetBookByNumber error: %v", err)
		return nil, fmt.Errorf("failed to fetch book: %v", err)
	}
	if book == nil {
		return nil, videos.ErrBookNotFound
	}
	verses, err := u.bibleRepo.GetChapterVerses(ctx, bookNumber, chapter)
	if err != nil {
		u.logger.Errorf("RequestVideo - GetChapterVerses error: %v", err)
		return nil, fmt.Errorf("failed to fetch verses: %v", err)
	}
	if len(verses) == 0 {
		return nil, videos.ErrChapterNotFound
	}

	texts := make([]string, 0, len(verses))
	for _, verse := range verses {
		texts = append(texts, verse.Text)
	}

	script, err := u.synthesizer.Synthesize(ctx, book.Name, chapter, strings.Join(texts, " "))
	if err != nil {
		u.logger.Errorf("RequestVideo - Synthesize error for book %d chapter %d: %v", bookNumber, chapter, err)
		return u.recordFailure(ctx, bookNumber, chapter, "",
			fmt.Sprintf("Script generation failed: %v", err))
	}

	taskID, err := u.producer.Submit(ctx, script)
	if err != nil {
		u.logger.Errorf("RequestVideo - Submit error for book %d chapter %d: %v", bookNumber, chapter, err)
		return u.recordFailure(ctx, bookNumber, chapter, script, submitFailureMessage(err))
	}

	duration := defaultDurationSeconds
	job, err := u.videoRepo.CreateGenerating(ctx, &models.ChapterVideo{
		BookNumber:      bookNumber,
		Chapter:         chapter,
		Script:          script,
		VeoTaskID:       &taskID,
		DurationSeconds: &duration,
	})
	if err != nil {
		if errors.Is(err, videos.ErrAlreadyExists) {
			// A concurrent request won the insert. The remote work we just
			// started is redundant; the provider exposes no cancel, so the
			// handle is simply dropped and the stored row stays the single
			// source of truth.
			u.logger.Warnf("RequestVideo - concurrent creation for book %d chapter %d, dropping task %s",
				bookNumber, chapter, taskID)
			return u.videoRepo.GetByChapter(ctx, bookNumber, chapter)
		}
		u.logger.Errorf("RequestVideo - CreateGenerating error: %v", err)
		return nil, fmt.Errorf("failed to persist chapter video: %v", err)
	}

	go u.poller.Watch(context.Background(), job)

	return job, nil
}

func (u *chapterVideoUC) GetVideoStatus(ctx context.Context, bookNumber, chapter int) (*models.ChapterVideo, error) {
	if u.redisRepo != nil {
		cached, err := u.redisRepo.GetVideo(ctx, bookNumber, chapter)
		if err != nil {
			u.logger.Warnf("GetVideoStatus - cache read error: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	job, err := u.videoRepo.GetByChapter(ctx, bookNumber, chapter)
	if err != nil {
		u.logger.Errorf("GetVideoStatus - GetByChapter error: %v", err)
		return nil, fmt.Errorf("failed to look up chapter video: %v", err)
	}
	if job == nil {
		return nil, videos.ErrVideoNotFound
	}
	if job.Status.IsTerminal() {
		u.cacheTerminal(ctx, job)
		return job, nil
	}

	// Still generating: ask the provider once so an abandoned watcher cannot
	// strand the job, then report whatever state resulted.
	updated, err := u.poller.PollOnce(ctx, job)
	if err != nil {
		u.logger.Errorf("GetVideoStatus - PollOnce error for book %d chapter %d: %v", bookNumber, chapter, err)
		return job, nil
	}
	if updated.Status.IsTerminal() {
		u.cacheTerminal(ctx, updated)
	}
	return updated, nil
}

func (u *chapterVideoUC) GetPlaybackURL(ctx context.Context, bookNumber, chapter int) (string, error) {
	job, err := u.GetVideoStatus(ctx, bookNumber, chapter)
	if err != nil {
		return "", err
	}
	if job.Status != models.VideoStatusCompleted {
		return "", fmt.Errorf("video for book %d chapter %d is not completed", bookNumber, chapter)
	}
	if job.StorageKey != nil && *job.StorageKey != "" && u.awsRepo != nil {
		expiry := time.Duration(u.cfg.S3.PresignExpireMinutes) * time.Minute
		url, err := u.awsRepo.GetPresignedURL(ctx, *job.StorageKey, expiry)
		if err != nil {
			u.logger.Errorf("GetPlaybackURL - presign error: %v", err)
		} else {
			return url, nil
		}
	}
	if job.VideoURL != nil && *job.VideoURL != "" {
		return *job.VideoURL, nil
	}
	return "", fmt.Errorf("completed video for book %d chapter %d has no playable location", bookNumber, chapter)
}

// recordFailure persists a terminal failed job for errors that happen before
// a task handle exists. Under a creation race the stored row wins.
func (u *chapterVideoUC) recordFailure(ctx context.Context, bookNumber, chapter int, script, message string) (*models.ChapterVideo, error) {
	duration := defaultDurationSeconds
	job, err := u.videoRepo.CreateFailed(ctx, &models.ChapterVideo{
		BookNumber:      bookNumber,
		Chapter:         chapter,
		Script:          script,
		ErrorMessage:    &message,
		DurationSeconds: &duration,
	})
	if err != nil {
		if errors.Is(err, videos.ErrAlreadyExists) {
			return u.videoRepo.GetByChapter(ctx, bookNumber, chapter)
		}
		u.logger.Errorf("recordFailure - CreateFailed error: %v", err)
		return nil, fmt.Errorf("failed to persist failed chapter video: %v", err)
	}
	u.cacheTerminal(ctx, job)
	return job, nil
}

func (u *chapterVideoUC) cacheTerminal(ctx context.Context, job *models.ChapterVideo) {
	if u.redisRepo == nil || !job.Status.IsTerminal() {
		return
	}
	if err := u.redisRepo.SetVideo(ctx, job); err != nil {
		u.logger.Warnf("failed to cache terminal video %s: %v", job.VideoID, err)
	}
}

func submitFailureMessage(err error) string {
	if errors.Is(err, videos.ErrProducerNotConfigured) {
		return "Video provider API key not configured. Video generation requires a valid veo.APIKey setting."
	}
	return fmt.Sprintf("Video generation unavailable: %v", err)
}
