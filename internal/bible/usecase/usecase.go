package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/scripturecast/scripture-backend/internal/bible"
	"github.com/scripturecast/scripture-backend/internal/config"
	"github.com/scripturecast/scripture-backend/internal/models"
	"github.com/scripturecast/scripture-backend/pkg/logger"
	"github.com/scripturecast/scripture-backend/pkg/utils"
)

const importTimeout = 120 * time.Second

type bibleUC struct {
	cfg       *config.Config
	bibleRepo bible.Repository
	logger    logger.Logger
}

func NewBibleUseCase(cfg *config.Config, bibleRepo bible.Repository, log logger.Logger) bible.UseCase {
	return &bibleUC{
		cfg:       cfg,
		bibleRepo: bibleRepo,
		logger:    log,
	}
}

func (u *bibleUC) ListBooks(ctx context.Context) ([]*models.BibleBook, error) {
	books, err := u.bibleRepo.GetBooks(ctx)
	if err != nil {
		u.logger.Errorf("ListBooks - GetBooks error: %v", err)
		return nil, fmt.Errorf("failed to fetch books: %v", err)
	}
	return books, nil
}

func (u *bibleUC) GetBook(ctx context.Context, bookNumber int) (*models.BibleBook, error) {
	book, err := u.bibleRepo.GetBookByNumber(ctx, bookNumber)
	if err != nil {
		u.logger.Errorf("GetBook - GetBookByNumber error: %v", err)
		return nil, fmt.Errorf("failed to fetch book: %v", err)
	}
	if book == nil {
		return nil, fmt.Errorf("book %d not found", bookNumber)
	}
	return book, nil
}

func (u *bibleUC) GetChapter(ctx context.Context, bookNumber, chapter int) ([]*models.BibleVerse, error) {
	verses, err := u.bibleRepo.GetChapterVerses(ctx, bookNumber, chapter)
	if err != nil {
		u.logger.Errorf("GetChapter - GetChapterVerses error: %v", err)
		return nil, fmt.Errorf("failed to fetch verses: %v", err)
	}
	if len(verses) == 0 {
		return nil, fmt.Errorf("no verses found for book %d chapter %d", bookNumber, chapter)
	}
	return verses, nil
}

func (u *bibleUC) SearchVerses(ctx context.Context, query string, pq *utils.Pagination) (*models.VerseList, error) {
	if query == "" {
		return nil, fmt.Errorf("invalid query: cannot be empty")
	}
	verses, err := u.bibleRepo.SearchVerses(ctx, query, pq)
	if err != nil {
		u.logger.Errorf("SearchVerses - failed to search verses: %v", err)
		return nil, fmt.Errorf("failed to search verses: %v", err)
	}
	return verses, nil
}

// sourceBook is the shape of the public KJV JSON dump: one entry per book,
// chapters as arrays of verse strings in canonical order.
type sourceBook struct {
	Abbrev   string     `json:"abbrev"`
	Name     string     `json:"name"`
	Chapters [][]string `json:"chapters"`
}

func (u *bibleUC) ImportBible(ctx context.Context) (*models.ImportResult, error) {
	books, err := u.bibleRepo.GetBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch books: %v", err)
	}
	if len(books) == 0 {
		return nil, fmt.Errorf("bible books not seeded, nothing to import into")
	}

	source, err := u.fetchSource(ctx)
	if err != nil {
		return nil, err
	}

	batchSize := u.cfg.Bible.ImportBatchSize
	if batchSize <= 0 {
		batchSize = 1000
	}

	result := &models.ImportResult{}
	batch := make([]*models.BibleVerse, 0, batchSize)
	// The dump and the seeded books are both in canonical order, so they are
	// matched by position.
	for bookIndex := 0; bookIndex < len(source) && bookIndex < len(books); bookIndex++ {
		bookRecord := books[bookIndex]
		result.BooksMatched++
		for chapterIndex, chapterVerses := range source[bookIndex].Chapters {
			for verseIndex, text := range chapterVerses {
				batch = append(batch, &models.BibleVerse{
					BookNumber: bookRecord.BookNumber,
					Chapter:    chapterIndex + 1,
					Verse:      verseIndex + 1,
					Text:       text,
				})
				if len(batch) >= batchSize {
					if err = u.bibleRepo.UpsertVerses(ctx, batch); err != nil {
						return nil, fmt.Errorf("failed to import verses: %v", err)
					}
					result.VersesImported += len(batch)
					batch = batch[:0]
				}
			}
		}
	}
	if len(batch) > 0 {
		if err = u.bibleRepo.UpsertVerses(ctx, batch); err != nil {
			return nil, fmt.Errorf("failed to import verses: %v", err)
		}
		result.VersesImported += len(batch)
	}

	u.logger.Infof("bible import finished: %d books, %d verses", result.BooksMatched, result.VersesImported)
	return result, nil
}

func (u *bibleUC) fetchSource(ctx context.Context) ([]sourceBook, error) {
	reqCtx, cancel := context.WithTimeout(ctx, importTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, u.cfg.Bible.SourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build source request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bible data: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch bible data: status %d", resp.StatusCode)
	}

	var source []sourceBook
	if err = json.NewDecoder(resp.Body).Decode(&source); err != nil {
		return nil, fmt.Errorf("failed to decode bible data: %v", err)
	}
	return source, nil
}
