package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/scripturecast/scripture-backend/internal/models"
	"github.com/scripturecast/scripture-backend/internal/videos"
	"github.com/scripturecast/scripture-backend/pkg/utils"
)

type nopLogger struct{}

func (nopLogger) InitLogger()                          {}
func (nopLogger) Debug(args ...interface{})            {}
func (nopLogger) Debugf(t string, args ...interface{}) {}
func (nopLogger) Info(args ...interface{})             {}
func (nopLogger) Infof(t string, args ...interface{})  {}
func (nopLogger) Warn(args ...interface{})             {}
func (nopLogger) Warnf(t string, args ...interface{})  {}
func (nopLogger) Error(args ...interface{})            {}
func (nopLogger) Errorf(t string, args ...interface{}) {}
func (nopLogger) Fatal(args ...interface{})            {}
func (nopLogger) Fatalf(t string, args ...interface{}) {}

// fakeVideoRepo reproduces the conditional write semantics of the postgres
// repository in memory, so races and duplicate finishes behave like the
// real store.
type fakeVideoRepo struct {
	mu   sync.Mutex
	rows map[string]*models.ChapterVideo
}

func newFakeVideoRepo() *fakeVideoRepo {
	return &fakeVideoRepo{rows: make(map[string]*models.ChapterVideo)}
}

func chapterKey(bookNumber, chapter int) string {
	return fmt.Sprintf("%d:%d", bookNumber, chapter)
}

func (r *fakeVideoRepo) GetByChapter(ctx context.Context, bookNumber, chapter int) (*models.ChapterVideo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[chapterKey(bookNumber, chapter)]
	if !ok {
		return nil, nil
	}
	copied := *row
	return &copied, nil
}

func (r *fakeVideoRepo) create(video *models.ChapterVideo, status models.VideoStatus) (*models.ChapterVideo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := chapterKey(video.BookNumber, video.Chapter)
	if existing, ok := r.rows[key]; ok && existing.Status != models.VideoStatusFailed {
		return nil, videos.ErrAlreadyExists
	}
	row := *video
	row.VideoID = uuid.New()
	row.Status = status
	row.CreatedAt = time.Now()
	row.UpdatedAt = row.CreatedAt
	r.rows[key] = &row
	copied := row
	return &copied, nil
}

func (r *fakeVideoRepo) CreateGenerating(ctx context.Context, video *models.ChapterVideo) (*models.ChapterVideo, error) {
	return r.create(video, models.VideoStatusGenerating)
}

func (r *fakeVideoRepo) CreateFailed(ctx context.Context, video *models.ChapterVideo) (*models.ChapterVideo, error) {
	return r.create(video, models.VideoStatusFailed)
}

func (r *fakeVideoRepo) MarkCompleted(ctx context.Context, videoID uuid.UUID, videoURL, storageKey string, durationSeconds int) (*models.ChapterVideo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.VideoID != videoID {
			continue
		}
		if row.Status != models.VideoStatusGenerating {
			return nil, videos.ErrNotGenerating
		}
		row.Status = models.VideoStatusCompleted
		row.VideoURL = &videoURL
		if storageKey != "" {
			row.StorageKey = &storageKey
		}
		row.DurationSeconds = &durationSeconds
		row.UpdatedAt = time.Now()
		copied := *row
		return &copied, nil
	}
	return nil, videos.ErrNotGenerating
}

func (r *fakeVideoRepo) MarkFailed(ctx context.Context, videoID uuid.UUID, errorMessage string) (*models.ChapterVideo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.VideoID != videoID {
			continue
		}
		if row.Status != models.VideoStatusGenerating {
			return nil, videos.ErrNotGenerating
		}
		row.Status = models.VideoStatusFailed
		row.ErrorMessage = &errorMessage
		row.UpdatedAt = time.Now()
		copied := *row
		return &copied, nil
	}
	return nil, videos.ErrNotGenerating
}

func (r *fakeVideoRepo) GetStaleGenerating(ctx context.Context, olderThan time.Duration) ([]*models.ChapterVideo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := time.Now().Add(-olderThan)
	var stale []*models.ChapterVideo
	for _, row := range r.rows {
		if row.Status == models.VideoStatusGenerating && row.UpdatedAt.Before(cutoff) {
			copied := *row
			stale = append(stale, &copied)
		}
	}
	return stale, nil
}

// fakeRedisRepo is the terminal-only cache in map form.
type fakeRedisRepo struct {
	mu    sync.Mutex
	store map[string]*models.ChapterVideo
}

func newFakeRedisRepo() *fakeRedisRepo {
	return &fakeRedisRepo{store: make(map[string]*models.ChapterVideo)}
}

func (r *fakeRedisRepo) GetVideo(ctx context.Context, bookNumber, chapter int) (*models.ChapterVideo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cached, ok := r.store[chapterKey(bookNumber, chapter)]
	if !ok {
		return nil, nil
	}
	copied := *cached
	return &copied, nil
}

func (r *fakeRedisRepo) SetVideo(ctx context.Context, video *models.ChapterVideo) error {
	if !video.Status.IsTerminal() {
		return fmt.Errorf("refusing to cache non-terminal video %s", video.VideoID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *video
	r.store[chapterKey(video.BookNumber, video.Chapter)] = &copied
	return nil
}

func (r *fakeRedisRepo) DeleteVideo(ctx context.Context, bookNumber, chapter int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.store, chapterKey(bookNumber, chapter))
	return nil
}

type fakeBibleRepo struct {
	books  map[int]*models.BibleBook
	verses map[string][]*models.BibleVerse
}

func newFakeBibleRepo() *fakeBibleRepo {
	psalms := &models.BibleBook{BookID: uuid.New(), BookNumber: 19, Name: "Psalms", Abbrev: "ps", Chapters: 150, Testament: "old"}
	return &fakeBibleRepo{
		books: map[int]*models.BibleBook{19: psalms},
		verses: map[string][]*models.BibleVerse{
			chapterKey(19, 23): {
				{BookNumber: 19, Chapter: 23, Verse: 1, Text: "The LORD is my shepherd; I shall not want."},
				{BookNumber: 19, Chapter: 23, Verse: 2, Text: "He maketh me to lie down in green pastures."},
			},
		},
	}
}

func (r *fakeBibleRepo) GetBooks(ctx context.Context) ([]*models.BibleBook, error) {
	books := make([]*models.BibleBook, 0, len(r.books))
	for _, b := range r.books {
		books = append(books, b)
	}
	return books, nil
}

func (r *fakeBibleRepo) GetBookByNumber(ctx context.Context, bookNumber int) (*models.BibleBook, error) {
	return r.books[bookNumber], nil
}

func (r *fakeBibleRepo) GetChapterVerses(ctx context.Context, bookNumber, chapter int) ([]*models.BibleVerse, error) {
	return r.verses[chapterKey(bookNumber, chapter)], nil
}

func (r *fakeBibleRepo) SearchVerses(ctx context.Context, query string, pq *utils.Pagination) (*models.VerseList, error) {
	return &models.VerseList{}, nil
}

func (r *fakeBibleRepo) UpsertVerses(ctx context.Context, verses []*models.BibleVerse) error {
	return nil
}

type fakeProducer struct {
	mu         sync.Mutex
	taskID     string
	submitErr  error
	submits    int
	statuses   []*videos.OperationStatus
	fetchErr   error
	fetchCalls int
}

func (p *fakeProducer) Submit(ctx context.Context, prompt string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.submits++
	if p.submitErr != nil {
		return "", p.submitErr
	}
	return p.taskID, nil
}

func (p *fakeProducer) FetchStatus(ctx context.Context, taskID string) (*videos.OperationStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fetchCalls++
	if p.fetchErr != nil {
		return nil, p.fetchErr
	}
	if len(p.statuses) == 0 {
		return &videos.OperationStatus{}, nil
	}
	status := p.statuses[0]
	if len(p.statuses) > 1 {
		p.statuses = p.statuses[1:]
	}
	return status, nil
}

type fakeSynthesizer struct {
	script string
	err    error
}

func (s *fakeSynthesizer) Synthesize(ctx context.Context, bookName string, chapter int, chapterText string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.script, nil
}

// noSleep advances the watch loop without waiting.
func noSleep(ctx context.Context, d time.Duration) error {
	return nil
}

// haltSleep stops a watch loop on its first tick, for tests that only
// exercise the synchronous path.
func haltSleep(ctx context.Context, d time.Duration) error {
	return context.Canceled
}
