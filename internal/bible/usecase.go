package bible

import (
	"context"

	"github.com/scripturecast/scripture-backend/internal/models"
	"github.com/scripturecast/scripture-backend/pkg/utils"
)

type UseCase interface {
	ListBooks(ctx context.Context) ([]*models.BibleBook, error)
	GetBook(ctx context.Context, bookNumber int) (*models.BibleBook, error)
	GetChapter(ctx context.Context, bookNumber, chapter int) ([]*models.BibleVerse, error)
	SearchVerses(ctx context.Context, query string, pq *utils.Pagination) (*models.VerseList, error)
	ImportBible(ctx context.Context) (*models.ImportResult, error)
}
