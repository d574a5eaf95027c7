package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scripturecast/scripture-backend/internal/bible"
	"github.com/scripturecast/scripture-backend/internal/config"
	"github.com/scripturecast/scripture-backend/internal/models"
	"github.com/scripturecast/scripture-backend/internal/videos"
)

func newTestUseCase(repo *fakeVideoRepo, bibleRepo bible.Repository, producer videos.Producer, synth videos.Synthesizer) videos.UseCase {
	return newTestUseCaseWithCache(repo, nil, bibleRepo, producer, synth)
}

func newTestUseCaseWithCache(repo *fakeVideoRepo, cache videos.RedisRepository, bibleRepo bible.Repository, producer videos.Producer, synth videos.Synthesizer) videos.UseCase {
	cfg := &config.Config{}
	poller := NewPoller(repo, cache, nil, producer, time.Second, 5*time.Second, nopLogger{}).WithSleep(haltSleep)
	return NewChapterVideoUseCase(cfg, repo, cache, nil, bibleRepo, producer, synth, poller, nopLogger{})
}

func TestRequestVideo_StartsGeneratingJob(t *testing.T) {
	repo := newFakeVideoRepo()
	producer := &fakeProducer{taskID: "op-123"}
	synth := &fakeSynthesizer{script: "A shepherd leads his flock through green pastures."}
	uc := newTestUseCase(repo, newFakeBibleRepo(), producer, synth)

	job, err := uc.RequestVideo(context.Background(), 19, 23)
	require.NoError(t, err)
	require.NotNil(t, job)

	assert.Equal(t, models.VideoStatusGenerating, job.Status)
	assert.Equal(t, 19, job.BookNumber)
	assert.Equal(t, 23, job.Chapter)
	require.NotNil(t, job.VeoTaskID)
	assert.Equal(t, "op-123", *job.VeoTaskID)
	assert.Equal(t, synth.script, job.Script)
	assert.NotEqual(t, uuid.Nil, job.VideoID)
}

func TestRequestVideo_ReturnsStoredJobWithoutResubmitting(t *testing.T) {
	repo := newFakeVideoRepo()
	producer := &fakeProducer{taskID: "op-123"}
	synth := &fakeSynthesizer{script: "script"}
	uc := newTestUseCase(repo, newFakeBibleRepo(), producer, synth)

	first, err := uc.RequestVideo(context.Background(), 19, 23)
	require.NoError(t, err)
	second, err := uc.RequestVideo(context.Background(), 19, 23)
	require.NoError(t, err)

	assert.Equal(t, first.VideoID, second.VideoID)
	assert.Equal(t, 1, producer.submits)
}

func TestRequestVideo_UnknownBook(t *testing.T) {
	repo := newFakeVideoRepo()
	uc := newTestUseCase(repo, newFakeBibleRepo(), &fakeProducer{}, &fakeSynthesizer{})

	_, err := uc.RequestVideo(context.Background(), 67, 1)
	assert.ErrorIs(t, err, videos.ErrBookNotFound)
}

func TestRequestVideo_UnknownChapterPersistsNothing(t *testing.T) {
	repo := newFakeVideoRepo()
	uc := newTestUseCase(repo, newFakeBibleRepo(), &fakeProducer{}, &fakeSynthesizer{})

	_, err := uc.RequestVideo(context.Background(), 19, 151)
	assert.ErrorIs(t, err, videos.ErrChapterNotFound)

	stored, err := repo.GetByChapter(context.Background(), 19, 151)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestRequestVideo_MissingProviderKeyRecordsFailure(t *testing.T) {
	repo := newFakeVideoRepo()
	producer := &fakeProducer{submitErr: videos.ErrProducerNotConfigured}
	synth := &fakeSynthesizer{script: "script"}
	uc := newTestUseCase(repo, newFakeBibleRepo(), producer, synth)

	job, err := uc.RequestVideo(context.Background(), 19, 23)
	require.NoError(t, err)
	require.NotNil(t, job)

	assert.Equal(t, models.VideoStatusFailed, job.Status)
	require.NotNil(t, job.ErrorMessage)
	assert.Contains(t, *job.ErrorMessage, "API key not configured")
	assert.Equal(t, synth.script, job.Script)
}

func TestRequestVideo_SynthesisFailureRecordsFailure(t *testing.T) {
	repo := newFakeVideoRepo()
	synth := &fakeSynthesizer{err: errors.New("completion rejected")}
	uc := newTestUseCase(repo, newFakeBibleRepo(), &fakeProducer{taskID: "op-123"}, synth)

	job, err := uc.RequestVideo(context.Background(), 19, 23)
	require.NoError(t, err)
	require.NotNil(t, job)

	assert.Equal(t, models.VideoStatusFailed, job.Status)
	require.NotNil(t, job.ErrorMessage)
	assert.Contains(t, *job.ErrorMessage, "Script generation failed")
}

func TestRequestVideo_FailedJobRetriesOnNewRequest(t *testing.T) {
	repo := newFakeVideoRepo()
	producer := &fakeProducer{submitErr: videos.ErrProducerNotConfigured}
	synth := &fakeSynthesizer{script: "script"}
	uc := newTestUseCase(repo, newFakeBibleRepo(), producer, synth)

	failed, err := uc.RequestVideo(context.Background(), 19, 23)
	require.NoError(t, err)
	require.Equal(t, models.VideoStatusFailed, failed.Status)

	producer.submitErr = nil
	producer.taskID = "op-456"
	retried, err := uc.RequestVideo(context.Background(), 19, 23)
	require.NoError(t, err)

	assert.Equal(t, models.VideoStatusGenerating, retried.Status)
	require.NotNil(t, retried.VeoTaskID)
	assert.Equal(t, "op-456", *retried.VeoTaskID)
}

func TestRequestVideo_ConcurrentRequestsShareOneJob(t *testing.T) {
	repo := newFakeVideoRepo()
	producer := &fakeProducer{taskID: "op-123"}
	synth := &fakeSynthesizer{script: "script"}
	uc := newTestUseCase(repo, newFakeBibleRepo(), producer, synth)

	const callers = 8
	results := make([]*models.ChapterVideo, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			job, err := uc.RequestVideo(context.Background(), 19, 23)
			assert.NoError(t, err)
			results[i] = job
		}(i)
	}
	wg.Wait()

	winner := results[0].VideoID
	for _, job := range results {
		require.NotNil(t, job)
		assert.Equal(t, winner, job.VideoID)
		assert.Equal(t, models.VideoStatusGenerating, job.Status)
	}
}

func TestRequestVideo_RetryInvalidatesCachedFailure(t *testing.T) {
	repo := newFakeVideoRepo()
	cache := newFakeRedisRepo()
	producer := &fakeProducer{submitErr: videos.ErrProducerNotConfigured}
	synth := &fakeSynthesizer{script: "script"}
	uc := newTestUseCaseWithCache(repo, cache, newFakeBibleRepo(), producer, synth)

	failed, err := uc.RequestVideo(context.Background(), 19, 23)
	require.NoError(t, err)
	require.Equal(t, models.VideoStatusFailed, failed.Status)

	cached, err := cache.GetVideo(context.Background(), 19, 23)
	require.NoError(t, err)
	require.NotNil(t, cached)
	require.Equal(t, models.VideoStatusFailed, cached.Status)

	producer.submitErr = nil
	producer.taskID = "op-456"
	retried, err := uc.RequestVideo(context.Background(), 19, 23)
	require.NoError(t, err)
	require.Equal(t, models.VideoStatusGenerating, retried.Status)

	// The status check must see the fresh generating row, not the cached
	// failure from the previous attempt.
	status, err := uc.GetVideoStatus(context.Background(), 19, 23)
	require.NoError(t, err)
	assert.Equal(t, models.VideoStatusGenerating, status.Status)

	cached, err = cache.GetVideo(context.Background(), 19, 23)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestGetVideoStatus_MissingJob(t *testing.T) {
	repo := newFakeVideoRepo()
	uc := newTestUseCase(repo, newFakeBibleRepo(), &fakeProducer{}, &fakeSynthesizer{})

	_, err := uc.GetVideoStatus(context.Background(), 19, 23)
	assert.ErrorIs(t, err, videos.ErrVideoNotFound)
}

func TestGetVideoStatus_FinishesGeneratingJobOnDemand(t *testing.T) {
	repo := newFakeVideoRepo()
	taskID := "op-123"
	_, err := repo.CreateGenerating(context.Background(), &models.ChapterVideo{
		BookNumber: 19,
		Chapter:    23,
		VeoTaskID:  &taskID,
	})
	require.NoError(t, err)

	producer := &fakeProducer{statuses: []*videos.OperationStatus{
		{Done: true, VideoURL: "https://cdn.example.com/op-123.mp4"},
	}}
	uc := newTestUseCase(repo, newFakeBibleRepo(), producer, &fakeSynthesizer{})

	job, err := uc.GetVideoStatus(context.Background(), 19, 23)
	require.NoError(t, err)

	assert.Equal(t, models.VideoStatusCompleted, job.Status)
	require.NotNil(t, job.VideoURL)
	assert.Equal(t, "https://cdn.example.com/op-123.mp4", *job.VideoURL)
}

func TestGetPlaybackURL_RequiresCompletion(t *testing.T) {
	repo := newFakeVideoRepo()
	taskID := "op-123"
	_, err := repo.CreateGenerating(context.Background(), &models.ChapterVideo{
		BookNumber: 19,
		Chapter:    23,
		VeoTaskID:  &taskID,
	})
	require.NoError(t, err)

	producer := &fakeProducer{statuses: []*videos.OperationStatus{{Done: false}}}
	uc := newTestUseCase(repo, newFakeBibleRepo(), producer, &fakeSynthesizer{})

	_, err = uc.GetPlaybackURL(context.Background(), 19, 23)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not completed")
}

func TestGetPlaybackURL_FallsBackToProviderURL(t *testing.T) {
	repo := newFakeVideoRepo()
	taskID := "op-123"
	created, err := repo.CreateGenerating(context.Background(), &models.ChapterVideo{
		BookNumber: 19,
		Chapter:    23,
		VeoTaskID:  &taskID,
	})
	require.NoError(t, err)
	_, err = repo.MarkCompleted(context.Background(), created.VideoID, "https://cdn.example.com/op-123.mp4", "", 10)
	require.NoError(t, err)

	uc := newTestUseCase(repo, newFakeBibleRepo(), &fakeProducer{}, &fakeSynthesizer{})

	url, err := uc.GetPlaybackURL(context.Background(), 19, 23)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/op-123.mp4", url)
}
