package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scripturecast/scripture-backend/internal/models"
	"github.com/scripturecast/scripture-backend/internal/videos"
)

func newGeneratingJob(t *testing.T, repo *fakeVideoRepo, taskID string) *models.ChapterVideo {
	t.Helper()
	job, err := repo.CreateGenerating(context.Background(), &models.ChapterVideo{
		BookNumber: 19,
		Chapter:    23,
		VeoTaskID:  &taskID,
	})
	require.NoError(t, err)
	return job
}

func TestWatch_CompletesJobWhenOperationFinishes(t *testing.T) {
	repo := newFakeVideoRepo()
	job := newGeneratingJob(t, repo, "op-123")
	producer := &fakeProducer{statuses: []*videos.OperationStatus{
		{Done: false},
		{Done: true, VideoURL: "https://cdn.example.com/op-123.mp4"},
	}}
	poller := NewPoller(repo, nil, nil, producer, time.Second, 10*time.Second, nopLogger{}).WithSleep(noSleep)

	poller.Watch(context.Background(), job)

	stored, err := repo.GetByChapter(context.Background(), 19, 23)
	require.NoError(t, err)
	assert.Equal(t, models.VideoStatusCompleted, stored.Status)
	require.NotNil(t, stored.VideoURL)
	assert.Equal(t, "https://cdn.example.com/op-123.mp4", *stored.VideoURL)
	assert.Equal(t, 2, producer.fetchCalls)
}

func TestWatch_OperationFailureMarksJobFailed(t *testing.T) {
	repo := newFakeVideoRepo()
	job := newGeneratingJob(t, repo, "op-123")
	producer := &fakeProducer{statuses: []*videos.OperationStatus{
		{Done: true, ErrMessage: "content policy rejection"},
	}}
	poller := NewPoller(repo, nil, nil, producer, time.Second, 10*time.Second, nopLogger{}).WithSleep(noSleep)

	poller.Watch(context.Background(), job)

	stored, err := repo.GetByChapter(context.Background(), 19, 23)
	require.NoError(t, err)
	assert.Equal(t, models.VideoStatusFailed, stored.Status)
	require.NotNil(t, stored.ErrorMessage)
	assert.Equal(t, "content policy rejection", *stored.ErrorMessage)
}

func TestWatch_CeilingLeavesJobGenerating(t *testing.T) {
	repo := newFakeVideoRepo()
	job := newGeneratingJob(t, repo, "op-123")
	producer := &fakeProducer{statuses: []*videos.OperationStatus{{Done: false}}}
	poller := NewPoller(repo, nil, nil, producer, 5*time.Second, 300*time.Second, nopLogger{}).WithSleep(noSleep)

	poller.Watch(context.Background(), job)

	stored, err := repo.GetByChapter(context.Background(), 19, 23)
	require.NoError(t, err)
	assert.Equal(t, models.VideoStatusGenerating, stored.Status)
	assert.Equal(t, 60, producer.fetchCalls)
}

func TestPollOnce_TransientErrorLeavesJobGenerating(t *testing.T) {
	repo := newFakeVideoRepo()
	job := newGeneratingJob(t, repo, "op-123")
	producer := &fakeProducer{fetchErr: errors.New("connection reset")}
	poller := NewPoller(repo, nil, nil, producer, time.Second, 10*time.Second, nopLogger{})

	updated, err := poller.PollOnce(context.Background(), job)
	require.NoError(t, err)
	assert.Equal(t, models.VideoStatusGenerating, updated.Status)

	stored, err := repo.GetByChapter(context.Background(), 19, 23)
	require.NoError(t, err)
	assert.Equal(t, models.VideoStatusGenerating, stored.Status)
}

func TestPollOnce_DuplicateFinishIsNoOp(t *testing.T) {
	repo := newFakeVideoRepo()
	job := newGeneratingJob(t, repo, "op-123")

	// Another poller already settled the row.
	_, err := repo.MarkCompleted(context.Background(), job.VideoID, "https://cdn.example.com/first.mp4", "", 10)
	require.NoError(t, err)

	producer := &fakeProducer{statuses: []*videos.OperationStatus{
		{Done: true, ErrMessage: "late failure report"},
	}}
	poller := NewPoller(repo, nil, nil, producer, time.Second, 10*time.Second, nopLogger{})

	// The stale handle still believes the job is generating.
	updated, err := poller.PollOnce(context.Background(), job)
	require.NoError(t, err)

	assert.Equal(t, models.VideoStatusCompleted, updated.Status)
	require.NotNil(t, updated.VideoURL)
	assert.Equal(t, "https://cdn.example.com/first.mp4", *updated.VideoURL)
	assert.Nil(t, updated.ErrorMessage)
}

func TestWatch_IntervalAboveCeilingStillPollsOnce(t *testing.T) {
	repo := newFakeVideoRepo()
	job := newGeneratingJob(t, repo, "op-123")
	producer := &fakeProducer{statuses: []*videos.OperationStatus{
		{Done: true, VideoURL: "https://cdn.example.com/op-123.mp4"},
	}}
	poller := NewPoller(repo, nil, nil, producer, 10*time.Second, 5*time.Second, nopLogger{}).WithSleep(noSleep)

	poller.Watch(context.Background(), job)

	stored, err := repo.GetByChapter(context.Background(), 19, 23)
	require.NoError(t, err)
	assert.Equal(t, models.VideoStatusCompleted, stored.Status)
	assert.Equal(t, 1, producer.fetchCalls)
}

func TestPollOnce_StaleWatcherCannotTouchRestartedJob(t *testing.T) {
	repo := newFakeVideoRepo()
	firstAttempt := newGeneratingJob(t, repo, "op-1")

	// First attempt settles as failed, then a new request restarts the row.
	_, err := repo.MarkFailed(context.Background(), firstAttempt.VideoID, "provider gave up")
	require.NoError(t, err)
	secondTask := "op-2"
	secondAttempt, err := repo.CreateGenerating(context.Background(), &models.ChapterVideo{
		BookNumber: 19,
		Chapter:    23,
		VeoTaskID:  &secondTask,
	})
	require.NoError(t, err)
	// A restart is a new attempt with its own identity.
	require.NotEqual(t, firstAttempt.VideoID, secondAttempt.VideoID)

	// The first attempt's watcher wakes late holding the old handle and sees
	// the old operation's terminal failure.
	producer := &fakeProducer{statuses: []*videos.OperationStatus{
		{Done: true, ErrMessage: "op-1 failed"},
	}}
	poller := NewPoller(repo, nil, nil, producer, time.Second, 10*time.Second, nopLogger{})

	updated, err := poller.PollOnce(context.Background(), firstAttempt)
	require.NoError(t, err)

	assert.Equal(t, models.VideoStatusGenerating, updated.Status)
	stored, err := repo.GetByChapter(context.Background(), 19, 23)
	require.NoError(t, err)
	assert.Equal(t, models.VideoStatusGenerating, stored.Status)
	require.NotNil(t, stored.VeoTaskID)
	assert.Equal(t, "op-2", *stored.VeoTaskID)
	assert.Nil(t, stored.ErrorMessage)
}

func TestPollOnce_MissingHandleFailsJob(t *testing.T) {
	repo := newFakeVideoRepo()
	job, err := repo.CreateGenerating(context.Background(), &models.ChapterVideo{
		BookNumber: 19,
		Chapter:    23,
	})
	require.NoError(t, err)

	poller := NewPoller(repo, nil, nil, &fakeProducer{}, time.Second, 10*time.Second, nopLogger{})

	updated, err := poller.PollOnce(context.Background(), job)
	require.NoError(t, err)

	assert.Equal(t, models.VideoStatusFailed, updated.Status)
	require.NotNil(t, updated.ErrorMessage)
	assert.Contains(t, *updated.ErrorMessage, "no production task handle")
}
